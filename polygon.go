package xshape

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"deedles.dev/xshape/geom"
	"golang.org/x/image/math/f64"
)

var (
	_ Transformable[RegularPolygon] = RegularPolygon{}
	_ MutableTransformable          = (*RegularPolygon)(nil)
	_ Shape                         = RegularPolygon{}
)

// RegularPolygon is a convex polygon whose sides all have the same
// length and whose interior angles are all equal.
//
// Polygons with an even number of sides have an edge at the top of
// their local frame, running from vertex 0 on the right to vertex 1 on
// the left. Polygons with an odd number of sides have vertex 0 at the
// top, on the positive y axis. In both cases, vertices proceed
// counterclockwise.
//
// A polygon with two sides is degenerate. Its two vertices lie on the
// local x axis and it covers the segment between them.
//
// The vertices of a RegularPolygon are held in a slice, so a copy made
// by assignment shares them with the original until either is
// transformed. Transforms never modify the vertices of their receiver
// in place. Use Clone to get a fully independent copy.
type RegularPolygon struct {
	center      geom.Vec
	orientation geom.Rotation
	sideLength  float64
	sideCount   int

	inradius     float64
	circumradius float64
	points       []geom.Vec
}

// NewRegularPolygon returns a regular polygon. It returns an error
// wrapping ErrInvalidSideCount if sideCount is less than 2.
func NewRegularPolygon(center geom.Vec, orientation geom.Rotation, sideLength float64, sideCount int) (RegularPolygon, error) {
	if sideCount < 2 {
		return RegularPolygon{}, fmt.Errorf("regular polygon with %v sides: %w", sideCount, ErrInvalidSideCount)
	}

	p := RegularPolygon{
		center:      center,
		orientation: orientation,
		sideLength:  sideLength,
		sideCount:   sideCount,
	}
	p.update()
	return p, nil
}

// MustRegularPolygon is like NewRegularPolygon but panics on error.
func MustRegularPolygon(center geom.Vec, orientation geom.Rotation, sideLength float64, sideCount int) RegularPolygon {
	p, err := NewRegularPolygon(center, orientation, sideLength, sideCount)
	if err != nil {
		panic(err)
	}
	return p
}

// update recomputes the radii and vertices of p. The vertices are
// always written to a fresh slice.
func (p *RegularPolygon) update() {
	n := p.sideCount
	h := p.sideLength / 2
	points := make([]geom.Vec, n)

	if n == 2 {
		p.inradius = 0
		p.circumradius = h
		points[0] = geom.Pt(h, 0)
		points[1] = geom.Pt(-h, 0)
		p.points = p.place(points)
		return
	}

	ext := p.ExteriorAngle()
	p.inradius = h / math.Tan(ext/2)
	p.circumradius = h / math.Sin(ext/2)
	rot := geom.FromAngle(ext)

	if n%2 == 0 {
		points[0] = geom.Pt(h, p.inradius)
		points[1] = geom.Pt(-h, p.inradius)
		for i := 2; i <= n/2; i++ {
			points[i] = rot.Rotate(points[i-1])
		}
		for i := n/2 + 1; i < n; i++ {
			m := points[n-i+1]
			points[i] = geom.Pt(-m.X, m.Y)
		}
		p.points = p.place(points)
		return
	}

	points[0] = geom.Pt(0, p.circumradius)
	for i := 1; i <= n/2; i++ {
		points[i] = rot.Rotate(points[i-1])
	}
	for i := n/2 + 1; i < n; i++ {
		m := points[n-i]
		points[i] = geom.Pt(-m.X, m.Y)
	}
	p.points = p.place(points)
}

// place maps local into world space in place and returns it.
func (p *RegularPolygon) place(local []geom.Vec) []geom.Vec {
	for i, v := range local {
		local[i] = toWorld(v, p.center, p.orientation)
	}
	return local
}

func (p RegularPolygon) String() string {
	return fmt.Sprintf(
		"RegularPolygon(center=%v, orientation=%v, sideLength=%v, sideCount=%v)",
		p.center, p.orientation, p.sideLength, p.sideCount,
	)
}

// Clone returns a copy of p that shares no memory with it.
func (p RegularPolygon) Clone() RegularPolygon {
	p.points = slices.Clone(p.points)
	return p
}

// Center returns the center of p.
func (p RegularPolygon) Center() geom.Vec { return p.center }

func (p RegularPolygon) Position() geom.Vec { return p.center }

func (p RegularPolygon) Orientation() geom.Rotation { return p.orientation }

// SideLength returns the length of each side of p.
func (p RegularPolygon) SideLength() float64 { return p.sideLength }

// SideCount returns the number of sides of p.
func (p RegularPolygon) SideCount() int { return p.sideCount }

// Inradius returns the distance from the center of p to the midpoint
// of each of its edges.
func (p RegularPolygon) Inradius() float64 { return p.inradius }

// Circumradius returns the distance from the center of p to each of
// its vertices.
func (p RegularPolygon) Circumradius() float64 { return p.circumradius }

// InteriorAngle returns the angle, in radians, between two adjacent
// edges of p.
func (p RegularPolygon) InteriorAngle() float64 {
	return math.Pi - p.ExteriorAngle()
}

// ExteriorAngle returns the angle, in radians, subtended by a single
// edge of p from its center.
func (p RegularPolygon) ExteriorAngle() float64 {
	return 2 * math.Pi / float64(p.sideCount)
}

// Area returns the area of p.
func (p RegularPolygon) Area() float64 {
	return float64(p.sideCount) * p.sideLength * p.inradius / 2
}

// Perimeter returns the perimeter of p.
func (p RegularPolygon) Perimeter() float64 {
	return float64(p.sideCount) * p.sideLength
}

// Point returns the vertex of p at index i. It panics with an error
// wrapping geom.ErrIndexOutOfRange if i is not in [0, SideCount()).
func (p RegularPolygon) Point(i int) geom.Vec {
	if i < 0 || i >= len(p.points) {
		panic(fmt.Errorf("polygon vertex %v of %v: %w", i, len(p.points), geom.ErrIndexOutOfRange))
	}
	return p.points[i]
}

// Points returns an iterator over the vertices of p in order.
func (p RegularPolygon) Points() iter.Seq[geom.Vec] {
	return slices.Values(p.points)
}

// Edges returns an iterator over the edges of p, starting with the
// one from vertex 0 to vertex 1.
func (p RegularPolygon) Edges() iter.Seq[LineSegment] {
	if p.sideCount == 2 {
		return func(yield func(LineSegment) bool) {
			yield(NewLineSegment(p.points[0], p.points[1]))
		}
	}
	return edges(p.Points())
}

// Bounds returns the axis-aligned bounding box of p.
func (p RegularPolygon) Bounds() geom.Rect[float64] {
	return geom.BoundsOf(p.Points())
}

// Aff3 returns the matrix that maps the local frame of p to world
// space.
func (p RegularPolygon) Aff3() f64.Aff3 { return p.orientation.Aff3(p.center) }

// ToRegularTriangle returns the triangle equivalent to p if p has
// three sides.
func (p RegularPolygon) ToRegularTriangle() (RegularTriangle, bool) {
	if p.sideCount != 3 {
		return RegularTriangle{}, false
	}
	return NewRegularTriangle(p.center, p.orientation, p.sideLength), true
}

// ToSquare returns the square equivalent to p if p has four sides.
func (p RegularPolygon) ToSquare() (Square, bool) {
	if p.sideCount != 4 {
		return Square{}, false
	}
	return NewSquare(p.center, p.orientation, p.sideLength), true
}

// WithCenter returns a copy of p with its center replaced.
func (p RegularPolygon) WithCenter(center geom.Vec) RegularPolygon {
	return p.MovedTo(center)
}

// WithOrientation returns a copy of p with its orientation replaced.
func (p RegularPolygon) WithOrientation(orientation geom.Rotation) RegularPolygon {
	return p.RotatedTo(orientation)
}

// WithSideLength returns a copy of p with its side length replaced.
func (p RegularPolygon) WithSideLength(sideLength float64) RegularPolygon {
	p.sideLength = sideLength
	p.update()
	return p
}

// WithSideCount returns a copy of p with its side count replaced. It
// returns an error wrapping ErrInvalidSideCount if sideCount is less
// than 2.
func (p RegularPolygon) WithSideCount(sideCount int) (RegularPolygon, error) {
	return NewRegularPolygon(p.center, p.orientation, p.sideLength, sideCount)
}

// Equal returns true if p and other have identical canonical
// parameters.
func (p RegularPolygon) Equal(other RegularPolygon) bool {
	return p.center == other.center &&
		p.orientation == other.orientation &&
		p.sideLength == other.sideLength &&
		p.sideCount == other.sideCount
}

// Approx returns true if p and other have the same number of sides and
// the rest of their canonical parameters are each within epsilon of
// one another.
func (p RegularPolygon) Approx(other RegularPolygon, epsilon float64) bool {
	return p.sideCount == other.sideCount &&
		p.center.Approx(other.center, epsilon) &&
		p.orientation.Approx(other.orientation, epsilon) &&
		math.Abs(p.sideLength-other.sideLength) <= epsilon
}

// Hash returns a hash of the canonical parameters of p.
func (p RegularPolygon) Hash() uint64 {
	return hashOf(
		"RegularPolygon",
		p.center.X, p.center.Y,
		p.orientation.Real(), p.orientation.Imag(),
		p.sideLength, float64(p.sideCount),
	)
}

func (p RegularPolygon) MovedBy(offset geom.Vec) RegularPolygon {
	p.center = p.center.Add(offset)
	points := make([]geom.Vec, len(p.points))
	for i, v := range p.points {
		points[i] = v.Add(offset)
	}
	p.points = points
	return p
}

func (p RegularPolygon) MovedTo(position geom.Vec) RegularPolygon {
	p = p.MovedBy(position.Sub(p.center))
	p.center = position
	return p
}

func (p RegularPolygon) RotatedBy(rotation geom.Rotation) RegularPolygon {
	p.orientation *= rotation
	p.update()
	return p
}

func (p RegularPolygon) RotatedTo(orientation geom.Rotation) RegularPolygon {
	p.orientation = orientation
	p.update()
	return p
}

func (p RegularPolygon) RotatedAroundPointBy(point geom.Vec, rotation geom.Rotation) RegularPolygon {
	p.center, p.orientation = aroundPointBy(p.center, point, p.orientation, rotation)
	p.update()
	return p
}

func (p RegularPolygon) RotatedAroundPointTo(point geom.Vec, orientation geom.Rotation) RegularPolygon {
	p.center, p.orientation = aroundPointTo(p.center, point, p.orientation, orientation)
	p.update()
	return p
}

func (p RegularPolygon) ScaledBy(factor float64) RegularPolygon {
	p.orientation *= geom.Sign(factor)
	p.sideLength *= math.Abs(factor)
	p.update()
	return p
}

// DilatedBy is not implemented for regular polygons. It always panics
// with an error wrapping ErrNotImplemented.
func (p RegularPolygon) DilatedBy(point geom.Vec, factor float64) RegularPolygon {
	panic(fmt.Errorf("dilate regular polygon around %v by %v: %w", point, factor, ErrNotImplemented))
}

func (p RegularPolygon) TransformedBy(offset geom.Vec, rotation geom.Rotation) RegularPolygon {
	p.center = p.center.Add(offset)
	p.orientation *= rotation
	p.update()
	return p
}

func (p RegularPolygon) TransformedByScaled(offset geom.Vec, rotation geom.Rotation, factor float64) RegularPolygon {
	p.center = p.center.Add(offset)
	p.orientation *= rotation * geom.Sign(factor)
	p.sideLength *= math.Abs(factor)
	p.update()
	return p
}

func (p RegularPolygon) TransformedTo(position geom.Vec, orientation geom.Rotation) RegularPolygon {
	p.center = position
	p.orientation = orientation
	p.update()
	return p
}

func (p *RegularPolygon) MoveBy(offset geom.Vec) { *p = p.MovedBy(offset) }

func (p *RegularPolygon) MoveTo(position geom.Vec) { *p = p.MovedTo(position) }

func (p *RegularPolygon) RotateBy(rotation geom.Rotation) { *p = p.RotatedBy(rotation) }

func (p *RegularPolygon) RotateTo(orientation geom.Rotation) { *p = p.RotatedTo(orientation) }

func (p *RegularPolygon) RotateAroundPointBy(point geom.Vec, rotation geom.Rotation) {
	*p = p.RotatedAroundPointBy(point, rotation)
}

func (p *RegularPolygon) RotateAroundPointTo(point geom.Vec, orientation geom.Rotation) {
	*p = p.RotatedAroundPointTo(point, orientation)
}

func (p *RegularPolygon) ScaleBy(factor float64) { *p = p.ScaledBy(factor) }

// DilateBy is not implemented for regular polygons. It always panics
// with an error wrapping ErrNotImplemented.
func (p *RegularPolygon) DilateBy(point geom.Vec, factor float64) {
	*p = p.DilatedBy(point, factor)
}

func (p *RegularPolygon) TransformBy(offset geom.Vec, rotation geom.Rotation) {
	*p = p.TransformedBy(offset, rotation)
}

func (p *RegularPolygon) TransformByScaled(offset geom.Vec, rotation geom.Rotation, factor float64) {
	*p = p.TransformedByScaled(offset, rotation, factor)
}

func (p *RegularPolygon) TransformTo(position geom.Vec, orientation geom.Rotation) {
	*p = p.TransformedTo(position, orientation)
}

// Interpolated returns the polygon between p and to at t. The result
// has the side count of p regardless of that of to.
func (p RegularPolygon) Interpolated(to RegularPolygon, t float64) RegularPolygon {
	p.center = p.center.Lerp(to.center, t)
	p.orientation = geom.Slerp(p.orientation, to.orientation, t)
	p.sideLength = lerp(p.sideLength, to.sideLength, t)
	p.update()
	return p
}

// sector returns the angle of the edge whose sector contains the local
// point v. Rotating v by the negation of that angle moves the edge to
// the top of the local frame, where it spans [-s/2, s/2] at a height
// of the inradius.
func (p RegularPolygon) sector(v geom.Vec) float64 {
	ext := p.ExteriorAngle()

	// Measured from the top of the local frame.
	angle := math.Atan2(-v.X, v.Y) + SectorBias
	if p.sideCount%2 == 0 {
		return math.Floor(angle/ext+0.5) * ext
	}
	return math.Floor(angle/ext)*ext + ext/2
}

// frame returns the angle of the edge whose sector contains the local
// point v along with v rotated so that the edge is at the top of the
// frame.
func (p RegularPolygon) frame(v geom.Vec) (float64, geom.Vec) {
	edge := p.sector(v)
	w := geom.FromAngle(-edge).Rotate(v)

	// SectorBias can carry a point lying just clockwise of a vertex
	// into the following sector, where it sits outside the wedge
	// spanned by the edge.
	if math.Abs(w.X)*p.inradius > w.Y*p.sideLength/2 {
		edge -= math.Copysign(p.ExteriorAngle(), w.X)
		w = geom.FromAngle(-edge).Rotate(v)
	}
	return edge, w
}

func (p RegularPolygon) ClosestPointTo(point geom.Vec) geom.Vec {
	local := toLocal(point, p.center, p.orientation)
	h := p.sideLength / 2

	if p.sideCount == 2 {
		x := math.Max(-h, math.Min(h, local.X))
		return toWorld(geom.Pt(x, 0), p.center, p.orientation)
	}

	edge, v := p.frame(local)
	if v.Y <= p.inradius {
		return point
	}

	clamped := geom.Pt(math.Max(-h, math.Min(h, v.X)), p.inradius)
	return toWorld(geom.FromAngle(edge).Rotate(clamped), p.center, p.orientation)
}

func (p RegularPolygon) Contains(point geom.Vec) bool {
	if p.sideCount == 2 {
		return p.ClosestPointTo(point).Approx(point, ApproxEpsilon)
	}

	_, v := p.frame(toLocal(point, p.center, p.orientation))
	return v.Y <= p.inradius
}

// IntersectsCircle returns true if p and c share at least one point.
func (p RegularPolygon) IntersectsCircle(c Circle) bool {
	return intersectsCircle(p, c)
}
