package geom_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"deedles.dev/xshape/geom"
	"github.com/stretchr/testify/require"
)

func TestPointArithmetic(t *testing.T) {
	p := geom.Pt(3.0, 4.0)
	q := geom.Pt(-1.0, 2.0)

	require.Equal(t, geom.Pt(2.0, 6.0), p.Add(q))
	require.Equal(t, geom.Pt(4.0, 2.0), p.Sub(q))
	require.Equal(t, geom.Pt(6.0, 8.0), p.Mul(2))
	require.Equal(t, geom.Pt(1.5, 2.0), p.Div(2))
	require.Equal(t, 5.0, p.Dot(q))
	require.Equal(t, 10.0, p.Cross(q))
	require.Equal(t, 5.0, p.Len())
	require.Equal(t, 25.0, p.LenSq())
	require.InDelta(t, math.Sqrt(20), p.Dist(q), 1e-12)
	require.Equal(t, geom.Pt(-3.0, -4.0), p.Neg())
	require.Equal(t, geom.Pt(3.0, 4.0), p.Neg().Abs())
}

func TestPointInt(t *testing.T) {
	p := geom.Pt(3, -4)
	require.Equal(t, geom.Pt(6, -8), p.Mul(2))
	require.Equal(t, 25, p.LenSq())
	require.Equal(t, 5.0, p.Len())
	require.Equal(t, geom.Pt(3.0, -4.0), geom.Conv[float64](p))
	require.Equal(t, geom.Pt(1, -2), geom.Conv[int](geom.Pt(1.9, -2.9)))
}

func TestPointLerpClamp(t *testing.T) {
	a := geom.Pt(0.0, 0.0)
	b := geom.Pt(10.0, -20.0)
	require.Equal(t, geom.Pt(2.5, -5.0), a.Lerp(b, 0.25))
	require.Equal(t, a, a.Lerp(b, 0))
	require.Equal(t, b, a.Lerp(b, 1))

	lo, hi := geom.Pt(-1.0, -1.0), geom.Pt(1.0, 1.0)
	require.Equal(t, geom.Pt(1.0, -0.5), geom.Pt(3.0, -0.5).Clamp(lo, hi))
}

func TestPointNormalize(t *testing.T) {
	require.True(t, geom.Pt(0.6, 0.8).Approx(geom.Pt(3.0, 4.0).Normalize(), 1e-12))
	require.Equal(t, geom.Vec{}, geom.Vec{}.Normalize())
}

func TestPointIndex(t *testing.T) {
	p := geom.Pt(7.0, 9.0)
	require.Equal(t, 7.0, p.Index(0))
	require.Equal(t, 9.0, p.Index(1))

	for _, i := range []int{-1, 2} {
		func() {
			defer func() {
				err, ok := recover().(error)
				require.True(t, ok)
				require.True(t, errors.Is(err, geom.ErrIndexOutOfRange))
			}()
			p.Index(i)
		}()
	}
}

func TestRect(t *testing.T) {
	r := geom.Rt(4.0, 3.0, 0.0, -1.0)
	require.Equal(t, geom.Pt(0.0, -1.0), r.Min)
	require.Equal(t, geom.Pt(4.0, 3.0), r.Max)
	require.Equal(t, 4.0, r.Dx())
	require.Equal(t, 4.0, r.Dy())
	require.Equal(t, geom.Pt(2.0, 1.0), r.Center())
	require.True(t, r.Contains(geom.Pt(4.0, 3.0)))
	require.False(t, r.Contains(geom.Pt(4.1, 3.0)))

	require.True(t, r.Overlaps(geom.Rt(4.0, 3.0, 5.0, 5.0)))
	require.False(t, r.Overlaps(geom.Rt(4.1, 3.0, 5.0, 5.0)))
	require.Equal(t, geom.Rt(-1.0, -1.0, 4.0, 6.0), r.Union(geom.Rt(-1.0, 2.0, 0.0, 6.0)))
	require.Equal(t, geom.Rt(1.0, 0.0, 3.0, 2.0), r.Inset(1))
}

func TestBoundsOf(t *testing.T) {
	pts := []geom.Vec{geom.Pt(1.0, 2.0), geom.Pt(-3.0, 5.0), geom.Pt(2.0, -1.0)}
	require.Equal(t, geom.Rt(-3.0, -1.0, 2.0, 5.0), geom.BoundsOf(slices.Values(pts)))
	require.Equal(t, geom.Rect[float64]{}, geom.BoundsOf(slices.Values([]geom.Vec(nil))))

	// The origin is not part of the result unless a point is there.
	far := []geom.Vec{geom.Pt(5.0, 6.0), geom.Pt(7.0, 9.0)}
	require.Equal(t, geom.Rt(5.0, 6.0, 7.0, 9.0), geom.BoundsOf(slices.Values(far)))
	require.Equal(t, geom.Rt(5.0, 6.0, 5.0, 6.0), geom.BoundsOf(slices.Values(far[:1])))
}
