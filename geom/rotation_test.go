package geom_test

import (
	"math"
	"testing"

	"deedles.dev/xshape/geom"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func TestRotationCompose(t *testing.T) {
	r := geom.FromDegrees(30)
	s := geom.FromDegrees(60)
	require.True(t, geom.FromDegrees(90).Approx(r*s, epsilon))
	require.True(t, geom.Identity.Approx(r*r.Conj(), epsilon))
	require.InDelta(t, math.Pi/6, r.Angle(), epsilon)
	require.InDelta(t, 1, r.Magnitude(), epsilon)
}

func TestRotationRotate(t *testing.T) {
	r := geom.FromDegrees(90)
	require.True(t, geom.Pt(-2.0, 1.0).Approx(r.Rotate(geom.Pt(1.0, 2.0)), epsilon))
	require.True(t, geom.Pt(0.0, 1.0).Approx(r.Vec(), epsilon))
}

func TestRotationSign(t *testing.T) {
	require.Equal(t, geom.Identity, geom.Sign(3))
	require.Equal(t, geom.Rotation(-1), geom.Sign(-0.5))
	require.Equal(t, geom.Rotation(-1), geom.Sign(math.Copysign(0, -1)))
}

func TestRotationNormalized(t *testing.T) {
	require.True(t, geom.FromDegrees(45).Approx(geom.Rotation(complex(3, 3)).Normalized(), epsilon))
	require.Equal(t, geom.Rotation(0), geom.Rotation(0).Normalized())
	require.True(t, geom.FromPolar(2, math.Pi/2).Approx(geom.Rotation(2i), epsilon))
}

func TestSlerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b     geom.Rotation
		t        float64
		expected geom.Rotation
	}{
		{"start", geom.FromDegrees(10), geom.FromDegrees(70), 0, geom.FromDegrees(10)},
		{"end", geom.FromDegrees(10), geom.FromDegrees(70), 1, geom.FromDegrees(70)},
		{"middle", geom.FromDegrees(10), geom.FromDegrees(70), 0.5, geom.FromDegrees(40)},
		{"quarter", geom.FromDegrees(0), geom.FromDegrees(120), 0.25, geom.FromDegrees(30)},
		{"shortest", geom.FromDegrees(170), geom.FromDegrees(-170), 0.5, geom.FromDegrees(180)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.expected.Approx(geom.Slerp(tt.a, tt.b, tt.t), 1e-6))
		})
	}
}

func TestNlerp(t *testing.T) {
	a, b := geom.FromDegrees(10), geom.FromDegrees(70)
	require.True(t, geom.FromDegrees(40).Approx(geom.Nlerp(a, b, 0.5), 1e-6))
	require.InDelta(t, 1, geom.Nlerp(a, b, 0.3).Magnitude(), 1e-9)

	opposite := geom.FromDegrees(180)
	require.Equal(t, geom.Identity, geom.Nlerp(geom.Identity, opposite, 0.49999999))
	require.Equal(t, opposite, geom.Nlerp(geom.Identity, opposite, 0.50000001))
}

func TestRotationString(t *testing.T) {
	require.Equal(t, "1 + 0i", geom.Identity.String())
	require.Equal(t, "0.5 - 2i", geom.Rotation(complex(0.5, -2)).String())
}

func TestAff3(t *testing.T) {
	r := geom.FromDegrees(90)
	m := r.Aff3(geom.Pt(10.0, 20.0))
	require.True(t, geom.Pt(8.0, 21.0).Approx(geom.Apply(m, geom.Pt(1.0, 2.0)), epsilon))
	require.Equal(t, [2]float64{1, 2}, [2]float64(geom.Vec2(geom.Pt(1.0, 2.0))))
}
