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
	_ Transformable[RegularTriangle] = RegularTriangle{}
	_ MutableTransformable           = (*RegularTriangle)(nil)
	_ Shape                          = RegularTriangle{}
)

const sqrt3 = 1.7320508075688772

// RegularTriangle is an equilateral triangle. In its local frame,
// vertex A is at the top, on the positive y axis, and B and C are the
// lower left and lower right vertices respectively.
type RegularTriangle struct {
	center      geom.Vec
	orientation geom.Rotation
	sideLength  float64

	points [3]geom.Vec
}

// NewRegularTriangle returns a regular triangle.
func NewRegularTriangle(center geom.Vec, orientation geom.Rotation, sideLength float64) RegularTriangle {
	t := RegularTriangle{center: center, orientation: orientation, sideLength: sideLength}
	t.update()
	return t
}

func (t *RegularTriangle) update() {
	h := t.sideLength / 2
	inr := t.Inradius()
	t.points = [...]geom.Vec{
		toWorld(geom.Pt(0, 2*inr), t.center, t.orientation),
		toWorld(geom.Pt(-h, -inr), t.center, t.orientation),
		toWorld(geom.Pt(h, -inr), t.center, t.orientation),
	}
}

func (t RegularTriangle) String() string {
	return fmt.Sprintf(
		"RegularTriangle(center=%v, orientation=%v, sideLength=%v)",
		t.center, t.orientation, t.sideLength,
	)
}

// Center returns the centroid of t.
func (t RegularTriangle) Center() geom.Vec { return t.center }

func (t RegularTriangle) Position() geom.Vec { return t.center }

func (t RegularTriangle) Orientation() geom.Rotation { return t.orientation }

// SideLength returns the length of each side of t.
func (t RegularTriangle) SideLength() float64 { return t.sideLength }

// SideCount returns 3.
func (t RegularTriangle) SideCount() int { return 3 }

// Inradius returns the radius of the circle inscribed in t.
func (t RegularTriangle) Inradius() float64 { return t.sideLength * sqrt3 / 6 }

// Circumradius returns the distance from the center of t to each of
// its vertices.
func (t RegularTriangle) Circumradius() float64 { return t.sideLength * sqrt3 / 3 }

// InteriorAngle returns π/3.
func (t RegularTriangle) InteriorAngle() float64 { return math.Pi / 3 }

// ExteriorAngle returns 2π/3.
func (t RegularTriangle) ExteriorAngle() float64 { return 2 * math.Pi / 3 }

// Area returns the area of t.
func (t RegularTriangle) Area() float64 { return t.sideLength * t.sideLength * sqrt3 / 4 }

// Perimeter returns the perimeter of t.
func (t RegularTriangle) Perimeter() float64 { return 3 * t.sideLength }

func (t RegularTriangle) PointA() geom.Vec { return t.points[0] }
func (t RegularTriangle) PointB() geom.Vec { return t.points[1] }
func (t RegularTriangle) PointC() geom.Vec { return t.points[2] }

// Points returns an iterator over the vertices of t from A to C.
func (t RegularTriangle) Points() iter.Seq[geom.Vec] {
	return slices.Values(t.points[:])
}

// Edges returns an iterator over the edges of t, AB first.
func (t RegularTriangle) Edges() iter.Seq[LineSegment] {
	return edges(t.Points())
}

// Bounds returns the axis-aligned bounding box of t.
func (t RegularTriangle) Bounds() geom.Rect[float64] {
	return geom.BoundsOf(t.Points())
}

// Aff3 returns the matrix that maps the local frame of t to world
// space.
func (t RegularTriangle) Aff3() f64.Aff3 { return t.orientation.Aff3(t.center) }

// ToRegularPolygon returns the three-sided regular polygon equivalent
// to t.
func (t RegularTriangle) ToRegularPolygon() RegularPolygon {
	return MustRegularPolygon(t.center, t.orientation, t.sideLength, 3)
}

// WithCenter returns a copy of t with its center replaced.
func (t RegularTriangle) WithCenter(center geom.Vec) RegularTriangle {
	return t.MovedTo(center)
}

// WithOrientation returns a copy of t with its orientation replaced.
func (t RegularTriangle) WithOrientation(orientation geom.Rotation) RegularTriangle {
	return t.RotatedTo(orientation)
}

// WithSideLength returns a copy of t with its side length replaced.
func (t RegularTriangle) WithSideLength(sideLength float64) RegularTriangle {
	return NewRegularTriangle(t.center, t.orientation, sideLength)
}

// Equal returns true if t and other have identical canonical
// parameters.
func (t RegularTriangle) Equal(other RegularTriangle) bool {
	return t.center == other.center && t.orientation == other.orientation && t.sideLength == other.sideLength
}

// Approx returns true if the canonical parameters of t and other are
// each within epsilon of one another.
func (t RegularTriangle) Approx(other RegularTriangle, epsilon float64) bool {
	return t.center.Approx(other.center, epsilon) &&
		t.orientation.Approx(other.orientation, epsilon) &&
		math.Abs(t.sideLength-other.sideLength) <= epsilon
}

// Hash returns a hash of the canonical parameters of t.
func (t RegularTriangle) Hash() uint64 {
	return hashOf(
		"RegularTriangle",
		t.center.X, t.center.Y,
		t.orientation.Real(), t.orientation.Imag(),
		t.sideLength,
	)
}

func (t RegularTriangle) MovedBy(offset geom.Vec) RegularTriangle {
	t.center = t.center.Add(offset)
	for i := range t.points {
		t.points[i] = t.points[i].Add(offset)
	}
	return t
}

func (t RegularTriangle) MovedTo(position geom.Vec) RegularTriangle {
	t = t.MovedBy(position.Sub(t.center))
	t.center = position
	return t
}

func (t RegularTriangle) RotatedBy(rotation geom.Rotation) RegularTriangle {
	t.orientation *= rotation
	t.update()
	return t
}

func (t RegularTriangle) RotatedTo(orientation geom.Rotation) RegularTriangle {
	t.orientation = orientation
	t.update()
	return t
}

func (t RegularTriangle) RotatedAroundPointBy(point geom.Vec, rotation geom.Rotation) RegularTriangle {
	t.center, t.orientation = aroundPointBy(t.center, point, t.orientation, rotation)
	t.update()
	return t
}

func (t RegularTriangle) RotatedAroundPointTo(point geom.Vec, orientation geom.Rotation) RegularTriangle {
	t.center, t.orientation = aroundPointTo(t.center, point, t.orientation, orientation)
	t.update()
	return t
}

func (t RegularTriangle) ScaledBy(factor float64) RegularTriangle {
	t.orientation *= geom.Sign(factor)
	t.sideLength *= math.Abs(factor)
	t.update()
	return t
}

func (t RegularTriangle) DilatedBy(point geom.Vec, factor float64) RegularTriangle {
	var scale float64
	t.center, t.orientation, scale = dilate(t.center, point, t.orientation, factor)
	t.sideLength *= scale
	t.update()
	return t
}

func (t RegularTriangle) TransformedBy(offset geom.Vec, rotation geom.Rotation) RegularTriangle {
	t.center = t.center.Add(offset)
	t.orientation *= rotation
	t.update()
	return t
}

func (t RegularTriangle) TransformedByScaled(offset geom.Vec, rotation geom.Rotation, factor float64) RegularTriangle {
	t.center = t.center.Add(offset)
	t.orientation *= rotation * geom.Sign(factor)
	t.sideLength *= math.Abs(factor)
	t.update()
	return t
}

func (t RegularTriangle) TransformedTo(position geom.Vec, orientation geom.Rotation) RegularTriangle {
	t.center = position
	t.orientation = orientation
	t.update()
	return t
}

func (t *RegularTriangle) MoveBy(offset geom.Vec) { *t = t.MovedBy(offset) }

func (t *RegularTriangle) MoveTo(position geom.Vec) { *t = t.MovedTo(position) }

func (t *RegularTriangle) RotateBy(rotation geom.Rotation) { *t = t.RotatedBy(rotation) }

func (t *RegularTriangle) RotateTo(orientation geom.Rotation) { *t = t.RotatedTo(orientation) }

func (t *RegularTriangle) RotateAroundPointBy(point geom.Vec, rotation geom.Rotation) {
	*t = t.RotatedAroundPointBy(point, rotation)
}

func (t *RegularTriangle) RotateAroundPointTo(point geom.Vec, orientation geom.Rotation) {
	*t = t.RotatedAroundPointTo(point, orientation)
}

func (t *RegularTriangle) ScaleBy(factor float64) { *t = t.ScaledBy(factor) }

func (t *RegularTriangle) DilateBy(point geom.Vec, factor float64) {
	*t = t.DilatedBy(point, factor)
}

func (t *RegularTriangle) TransformBy(offset geom.Vec, rotation geom.Rotation) {
	*t = t.TransformedBy(offset, rotation)
}

func (t *RegularTriangle) TransformByScaled(offset geom.Vec, rotation geom.Rotation, factor float64) {
	*t = t.TransformedByScaled(offset, rotation, factor)
}

func (t *RegularTriangle) TransformTo(position geom.Vec, orientation geom.Rotation) {
	*t = t.TransformedTo(position, orientation)
}

// Interpolated returns the triangle between t and to at weight w.
func (t RegularTriangle) Interpolated(to RegularTriangle, w float64) RegularTriangle {
	return NewRegularTriangle(
		t.center.Lerp(to.center, w),
		geom.Slerp(t.orientation, to.orientation, w),
		lerp(t.sideLength, to.sideLength, w),
	)
}

// fold returns the rotation that carries the local point p into the
// sector of the bottom edge BC, the wedge between the rays from the
// center through B and C.
func (t RegularTriangle) fold(p geom.Vec) geom.Rotation {
	if p.Y <= -math.Abs(p.X)/sqrt3 {
		return geom.Identity
	}
	return geom.Rotation(complex(-0.5, -math.Copysign(sqrt3/2, p.X)))
}

func (t RegularTriangle) ClosestPointTo(point geom.Vec) geom.Vec {
	local := toLocal(point, t.center, t.orientation)
	fold := t.fold(local)
	p := fold.Rotate(local)

	inr := t.Inradius()
	if p.Y >= -inr {
		return point
	}

	h := t.sideLength / 2
	edge := geom.Pt(math.Max(-h, math.Min(h, p.X)), -inr)
	return toWorld(fold.Conj().Rotate(edge), t.center, t.orientation)
}

func (t RegularTriangle) Contains(point geom.Vec) bool {
	p := toLocal(point, t.center, t.orientation)
	inr := t.Inradius()
	r := 2 * inr
	return p.Y >= -inr &&
		p.Y <= sqrt3*p.X+r &&
		p.Y <= -sqrt3*p.X+r
}

// IntersectsCircle returns true if t and c share at least one point.
func (t RegularTriangle) IntersectsCircle(c Circle) bool {
	return intersectsCircle(t, c)
}
