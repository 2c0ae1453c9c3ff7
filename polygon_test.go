package xshape_test

import (
	"math"
	"slices"
	"testing"

	"deedles.dev/xshape"
	"deedles.dev/xshape/geom"
	"github.com/stretchr/testify/require"
)

func TestNewRegularPolygonInvalidSideCount(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		_, err := xshape.NewRegularPolygon(geom.Vec{}, geom.Identity, 1, n)
		require.ErrorIs(t, err, xshape.ErrInvalidSideCount)
	}

	require.PanicsWithError(t, "regular polygon with 1 sides: invalid side count", func() {
		xshape.MustRegularPolygon(geom.Vec{}, geom.Identity, 1, 1)
	})
}

func TestRegularPolygonRadii(t *testing.T) {
	tests := []struct {
		sides                  int
		inradius, circumradius float64
	}{
		{3, math.Sqrt(3) / 6, math.Sqrt(3) / 3},
		{4, 0.5, math.Sqrt2 / 2},
		{6, math.Sqrt(3) / 2, 1},
		{8, (1 + math.Sqrt2) / 2, 1.306563},
	}

	for _, tt := range tests {
		p := xshape.MustRegularPolygon(geom.Vec{}, geom.Identity, 1, tt.sides)
		require.InDelta(t, tt.inradius, p.Inradius(), delta, "%v sides", tt.sides)
		require.InDelta(t, tt.circumradius, p.Circumradius(), delta, "%v sides", tt.sides)
		require.InDelta(t, float64(tt.sides), p.Perimeter(), delta)
		require.InDelta(t, 2*math.Pi/float64(tt.sides), p.ExteriorAngle(), delta)
		require.InDelta(t, math.Pi-2*math.Pi/float64(tt.sides), p.InteriorAngle(), delta)

		for v := range p.Points() {
			require.InDelta(t, tt.circumradius, v.Len(), delta)
		}
	}
}

func TestRegularPolygonPoints(t *testing.T) {
	hex := xshape.MustRegularPolygon(geom.Pt(1.0, 1), geom.Identity, 2, 6)
	s := math.Sqrt(3)
	expected := []geom.Vec{
		geom.Pt(2, 1+s),
		geom.Pt(0, 1+s),
		geom.Pt(-1.0, 1),
		geom.Pt(0, 1-s),
		geom.Pt(2, 1-s),
		geom.Pt(3.0, 1),
	}
	for i, v := range slices.Collect(hex.Points()) {
		requireVec(t, expected[i], v)
		requireVec(t, expected[i], hex.Point(i))
	}

	pent := xshape.MustRegularPolygon(geom.Vec{}, geom.Identity, 1, 5)
	requireVec(t, geom.Pt(0, pent.Circumradius()), pent.Point(0))
	require.Less(t, pent.Point(1).X, 0.0)
	require.Greater(t, pent.Point(4).X, 0.0)
	require.InDelta(t, pent.Point(1).Y, pent.Point(4).Y, delta)
}

func TestRegularPolygonPointOutOfRange(t *testing.T) {
	p := xshape.MustRegularPolygon(geom.Vec{}, geom.Identity, 1, 5)
	requirePanicsIs(t, geom.ErrIndexOutOfRange, func() { p.Point(-1) })
	requirePanicsIs(t, geom.ErrIndexOutOfRange, func() { p.Point(5) })
}

func TestRegularPolygonEdges(t *testing.T) {
	p := xshape.MustRegularPolygon(geom.Pt(2.0, -1), geom.FromDegrees(17), 1.5, 7)
	edges := slices.Collect(p.Edges())
	require.Len(t, edges, 7)
	for i, e := range edges {
		require.InDelta(t, 1.5, e.Length(), delta)
		requireVec(t, p.Point(i), e.A())
		requireVec(t, p.Point((i+1)%7), e.B())
	}

	require.Len(t, slices.Collect(xshape.MustRegularPolygon(geom.Vec{}, geom.Identity, 1, 2).Edges()), 1)
}

// boundarySamples returns points close to the vertices and to the edge
// midpoints of a shape centered at center, on both sides of its
// boundary.
func boundarySamples(center geom.Vec, vertices []geom.Vec) []geom.Vec {
	var samples []geom.Vec
	for i, v := range vertices {
		arm := v.Sub(center)
		for _, a := range []float64{-5e-4, -1e-4, 1e-4, 5e-4} {
			for _, f := range []float64{0.997, 0.9997, 1.0003} {
				samples = append(samples, center.Add(geom.FromAngle(a).Rotate(arm).Mul(f)))
			}
		}

		mid := v.Add(vertices[(i+1)%len(vertices)]).Mul(0.5)
		normal := mid.Sub(center).Normalize()
		samples = append(samples, mid.Add(normal.Mul(1e-4)), mid.Sub(normal.Mul(1e-4)))
	}
	return samples
}

func TestRegularPolygonMatchesTriangle(t *testing.T) {
	center := geom.Pt(1.0, -2)
	orientation := geom.FromDegrees(30)
	poly := xshape.MustRegularPolygon(center, orientation, 3, 3)
	tri := xshape.NewRegularTriangle(center, orientation, 3)

	require.InDelta(t, tri.Inradius(), poly.Inradius(), delta)
	require.InDelta(t, tri.Circumradius(), poly.Circumradius(), delta)
	require.InDelta(t, tri.Area(), poly.Area(), delta)
	for i, v := range slices.Collect(tri.Points()) {
		requireVec(t, v, poly.Point(i))
	}

	samples := append(grid(center, 3), boundarySamples(center, slices.Collect(tri.Points()))...)
	for _, p := range samples {
		require.Equal(t, tri.Contains(p), poly.Contains(p), "%v", p)
		requireVec(t, tri.ClosestPointTo(p), poly.ClosestPointTo(p))
	}
}

func TestRegularPolygonMatchesSquare(t *testing.T) {
	center := geom.Pt(-1.0, 0.5)
	orientation := geom.FromDegrees(-20)
	poly := xshape.MustRegularPolygon(center, orientation, 2.5, 4)
	sq := xshape.NewSquare(center, orientation, 2.5)

	require.InDelta(t, sq.Inradius(), poly.Inradius(), delta)
	require.InDelta(t, sq.Circumradius(), poly.Circumradius(), delta)
	require.InDelta(t, sq.Area(), poly.Area(), delta)
	for i, v := range slices.Collect(sq.Points()) {
		requireVec(t, v, poly.Point(i))
	}

	samples := append(grid(center, 3), boundarySamples(center, slices.Collect(sq.Points()))...)
	for _, p := range samples {
		require.Equal(t, sq.Contains(p), poly.Contains(p), "%v", p)
		requireVec(t, sq.ClosestPointTo(p), poly.ClosestPointTo(p))
	}
}

func TestRegularPolygonHexagon(t *testing.T) {
	p := xshape.MustRegularPolygon(geom.Vec{}, geom.Identity, 2, 6)
	inr := math.Sqrt(3)

	require.True(t, p.Contains(geom.Pt(0, inr-0.01)))
	require.False(t, p.Contains(geom.Pt(0, inr+0.01)))
	require.True(t, p.Contains(geom.Pt(1.99, 0)))
	require.False(t, p.Contains(geom.Pt(2.01, 0)))

	requireVec(t, geom.Pt(0, inr), p.ClosestPointTo(geom.Pt(0, 5.0)))
	requireVec(t, geom.Pt(2.0, 0), p.ClosestPointTo(geom.Pt(5.0, 0)))
	requireVec(t, geom.Pt(-2.0, 0), p.ClosestPointTo(geom.Pt(-5.0, 0)))

	// Perpendicular to the lower right edge.
	normal := geom.FromDegrees(-30).Vec()
	requireVec(t, normal.Mul(inr), p.ClosestPointTo(normal.Mul(4)))
}

func TestRegularPolygonNearVertex(t *testing.T) {
	tests := []struct {
		name  string
		sides int
	}{
		{"triangle", 3},
		{"square", 4},
		{"pentagon", 5},
		{"hexagon", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := xshape.MustRegularPolygon(geom.Vec{}, geom.Identity, 2, tt.sides)
			for i, v := range slices.Collect(p.Points()) {
				// Just clockwise of the vertex, where points are sorted
				// into the following sector.
				outside := geom.FromAngle(-5e-4).Rotate(v).Mul(1.0003)
				require.False(t, p.Contains(outside), "vertex %v", i)
				closest := p.ClosestPointTo(outside)
				require.NotEqual(t, outside, closest)
				require.InDelta(t, 0, closest.Dist(v), 2e-3, "vertex %v", i)

				inside := geom.FromAngle(-5e-4).Rotate(v).Mul(0.995)
				require.True(t, p.Contains(inside), "vertex %v", i)
				require.Equal(t, inside, p.ClosestPointTo(inside))
			}
		})
	}
}

func TestRegularPolygonDegenerate(t *testing.T) {
	p := xshape.MustRegularPolygon(geom.Pt(1.0, 1), geom.FromDegrees(90), 2, 2)

	require.Equal(t, 0.0, p.Inradius())
	require.Equal(t, 1.0, p.Circumradius())
	require.Equal(t, 0.0, p.Area())
	requireVec(t, geom.Pt(1.0, 2), p.Point(0))
	requireVec(t, geom.Pt(1.0, 0), p.Point(1))

	require.True(t, p.Contains(geom.Pt(1.0, 1.5)))
	require.True(t, p.Contains(geom.Pt(1.0, 0)))
	require.False(t, p.Contains(geom.Pt(1.1, 1.5)))
	require.False(t, p.Contains(geom.Pt(1.0, 2.1)))

	requireVec(t, geom.Pt(1.0, 1.5), p.ClosestPointTo(geom.Pt(3.0, 1.5)))
	requireVec(t, geom.Pt(1.0, 2), p.ClosestPointTo(geom.Pt(1.0, 7)))
	requireVec(t, geom.Pt(1.0, 0), p.ClosestPointTo(geom.Pt(0.0, -3)))
}

func TestRegularPolygonDilateNotImplemented(t *testing.T) {
	p := xshape.MustRegularPolygon(geom.Vec{}, geom.Identity, 1, 5)
	requirePanicsIs(t, xshape.ErrNotImplemented, func() { p.DilatedBy(geom.Pt(1.0, 1), 2) })
	requirePanicsIs(t, xshape.ErrNotImplemented, func() { p.DilateBy(geom.Pt(1.0, 1), 2) })
}

func TestRegularPolygonConversions(t *testing.T) {
	center := geom.Pt(2.0, 3)
	orientation := geom.FromDegrees(10)

	tri, ok := xshape.MustRegularPolygon(center, orientation, 2, 3).ToRegularTriangle()
	require.True(t, ok)
	require.True(t, tri.Equal(xshape.NewRegularTriangle(center, orientation, 2)))
	require.True(t, tri.ToRegularPolygon().Equal(xshape.MustRegularPolygon(center, orientation, 2, 3)))

	sq, ok := xshape.MustRegularPolygon(center, orientation, 2, 4).ToSquare()
	require.True(t, ok)
	require.True(t, sq.Equal(xshape.NewSquare(center, orientation, 2)))
	require.True(t, sq.ToRegularPolygon().Equal(xshape.MustRegularPolygon(center, orientation, 2, 4)))

	_, ok = xshape.MustRegularPolygon(center, orientation, 2, 5).ToRegularTriangle()
	require.False(t, ok)
	_, ok = xshape.MustRegularPolygon(center, orientation, 2, 5).ToSquare()
	require.False(t, ok)
}

func TestRegularPolygonCopies(t *testing.T) {
	p := xshape.MustRegularPolygon(geom.Vec{}, geom.Identity, 1, 6)
	q := p
	q.MoveBy(geom.Pt(1.0, 0))

	require.Equal(t, geom.Vec{}, p.Center())
	requireVec(t, geom.Pt(0.5, math.Sqrt(3)/2), p.Point(0))
	requireVec(t, geom.Pt(1.5, math.Sqrt(3)/2), q.Point(0))

	c := p.Clone()
	require.True(t, c.Equal(p))
	require.Equal(t, slices.Collect(p.Points()), slices.Collect(c.Points()))
}

func TestRegularPolygonScaledBy(t *testing.T) {
	p := xshape.MustRegularPolygon(geom.Vec{}, geom.Identity, 1, 6).ScaledBy(3)
	require.Equal(t, 3.0, p.SideLength())
	require.InDelta(t, 3*math.Sqrt(3)/2, p.Inradius(), delta)
	require.InDelta(t, 3.0, p.Circumradius(), delta)
}

func TestRegularPolygonWithSideCount(t *testing.T) {
	p := xshape.MustRegularPolygon(geom.Vec{}, geom.Identity, 1, 6)

	q, err := p.WithSideCount(8)
	require.NoError(t, err)
	require.Equal(t, 8, q.SideCount())
	require.Len(t, slices.Collect(q.Points()), 8)

	_, err = p.WithSideCount(1)
	require.ErrorIs(t, err, xshape.ErrInvalidSideCount)
}
