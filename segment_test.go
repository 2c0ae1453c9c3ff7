package xshape_test

import (
	"slices"
	"testing"

	"deedles.dev/xshape"
	"deedles.dev/xshape/geom"
	"github.com/stretchr/testify/require"
)

func TestLineSegmentClosestPointTo(t *testing.T) {
	s := xshape.NewLineSegment(geom.Vec{}, geom.Pt(4.0, 0))

	tests := []struct {
		name            string
		point, expected geom.Vec
	}{
		{"above", geom.Pt(2.0, 3), geom.Pt(2.0, 0)},
		{"before a", geom.Pt(-1.0, 1), geom.Vec{}},
		{"past b", geom.Pt(6.0, -2), geom.Pt(4.0, 0)},
		{"on", geom.Pt(1.5, 0), geom.Pt(1.5, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireVec(t, tt.expected, s.ClosestPointTo(tt.point))
		})
	}
}

func TestLineSegmentContains(t *testing.T) {
	s := xshape.NewLineSegment(geom.Pt(-1.0, -1), geom.Pt(1.0, 1))
	require.True(t, s.Contains(geom.Vec{}))
	require.True(t, s.Contains(geom.Pt(1.0, 1)))
	require.False(t, s.Contains(geom.Pt(0.0, 0.01)))
	require.False(t, s.Contains(geom.Pt(1.01, 1.01)))
}

func TestLineSegmentMeasurements(t *testing.T) {
	s := xshape.NewLineSegment(geom.Pt(1.0, 1), geom.Pt(1.0, -1))
	require.Equal(t, 2.0, s.Length())
	require.Equal(t, geom.Pt(1.0, 0), s.Center())
	require.True(t, s.Orientation().Approx(geom.FromDegrees(90), delta))
	require.Equal(t, geom.Rt(1.0, -1, 1, 1), s.Bounds())
	require.Equal(t, []geom.Vec{s.A(), s.B()}, slices.Collect(s.Points()))
	require.Equal(t, "LineSegment(pointA=(1, 1), pointB=(1, -1))", s.String())
}

func TestLineSegmentDegenerate(t *testing.T) {
	p := geom.Pt(2.0, 3)
	s := xshape.NewLineSegment(p, p)

	require.Equal(t, 0.0, s.Length())
	require.Equal(t, geom.Identity, s.Orientation())
	require.Equal(t, p, s.ClosestPointTo(geom.Pt(10.0, -4)))
	require.True(t, s.Contains(p))
}

func TestLineSegmentTransforms(t *testing.T) {
	s := xshape.NewLineSegment(geom.Pt(3.0, 0), geom.Pt(1.0, 0))

	tests := []struct {
		name   string
		got    xshape.LineSegment
		a, b   geom.Vec
		length float64
	}{
		{"moved by", s.MovedBy(geom.Pt(1.0, 2)), geom.Pt(4.0, 2), geom.Pt(2.0, 2), 2},
		{"moved to", s.MovedTo(geom.Vec{}), geom.Pt(1.0, 0), geom.Pt(-1.0, 0), 2},
		{"rotated by", s.RotatedBy(geom.FromDegrees(90)), geom.Pt(2.0, 1), geom.Pt(2.0, -1), 2},
		{"rotated to", s.RotatedTo(geom.FromDegrees(-90)), geom.Pt(2.0, -1), geom.Pt(2.0, 1), 2},
		{"rotated around point by", s.RotatedAroundPointBy(geom.Vec{}, geom.FromDegrees(180)), geom.Pt(-3.0, 0), geom.Pt(-1.0, 0), 2},
		{"rotated around point to", s.RotatedAroundPointTo(geom.Vec{}, geom.FromDegrees(90)), geom.Pt(0.0, 3), geom.Pt(0.0, 1), 2},
		{"rotated around center to", s.RotatedAroundPointTo(geom.Pt(2.0, 0), geom.FromDegrees(90)), geom.Pt(2.0, 1), geom.Pt(2.0, -1), 2},
		{"scaled by", s.ScaledBy(2), geom.Pt(4.0, 0), geom.Vec{}, 4},
		{"scaled by negative", s.ScaledBy(-1), geom.Pt(1.0, 0), geom.Pt(3.0, 0), 2},
		{"dilated by", s.DilatedBy(geom.Vec{}, 2), geom.Pt(6.0, 0), geom.Pt(2.0, 0), 4},
		{"transformed by", s.TransformedBy(geom.Pt(0.0, 1), geom.FromDegrees(90)), geom.Pt(2.0, 2), geom.Pt(2.0, 0), 2},
		{"transformed by scaled", s.TransformedByScaled(geom.Pt(0.0, 1), geom.FromDegrees(90), 3), geom.Pt(2.0, 4), geom.Pt(2.0, -2), 6},
		{"transformed to", s.TransformedTo(geom.Pt(5.0, 5), geom.FromDegrees(180)), geom.Pt(4.0, 5), geom.Pt(6.0, 5), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireVec(t, tt.a, tt.got.A())
			requireVec(t, tt.b, tt.got.B())
			require.InDelta(t, tt.length, tt.got.Length(), delta)
		})
	}
}

func TestLineSegmentInterpolated(t *testing.T) {
	from := xshape.NewLineSegment(geom.Vec{}, geom.Pt(2.0, 0))
	to := xshape.NewLineSegment(geom.Pt(2.0, 2), geom.Pt(4.0, 4))

	mid := from.Interpolated(to, 0.5)
	requireVec(t, geom.Pt(1.0, 1), mid.A())
	requireVec(t, geom.Pt(3.0, 2), mid.B())
	require.True(t, from.Interpolated(to, 0).Equal(from))
	require.True(t, from.Interpolated(to, 1).Equal(to))
}

func TestCircleLineSegment(t *testing.T) {
	s := xshape.NewLineSegment(geom.Vec{}, geom.Pt(4.0, 0))

	require.True(t, xshape.NewCircle(geom.Pt(2.0, 2), geom.Identity, 2.01).IntersectsLineSegment(s))
	require.False(t, xshape.NewCircle(geom.Pt(2.0, 2), geom.Identity, 1.99).IntersectsLineSegment(s))
	require.True(t, xshape.NewCircle(geom.Pt(6.0, 0), geom.Identity, 2.01).IntersectsLineSegment(s))

	require.True(t, xshape.NewCircle(geom.Pt(2.0, 0), geom.Identity, 2).ContainsLineSegment(s))
	require.False(t, xshape.NewCircle(geom.Pt(2.0, 0), geom.Identity, 1.99).ContainsLineSegment(s))
}
