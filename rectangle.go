package xshape

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"deedles.dev/xiter"
	"deedles.dev/xshape/geom"
	"golang.org/x/image/math/f64"
)

var (
	_ Transformable[Rectangle] = Rectangle{}
	_ MutableTransformable     = (*Rectangle)(nil)
	_ Shape                    = Rectangle{}
)

// Rectangle is a rectangle with an arbitrary orientation. Its corners,
// in the local frame of the rectangle, are
//
//	A (+w/2, +h/2)
//	B (-w/2, +h/2)
//	C (-w/2, -h/2)
//	D (+w/2, -h/2)
//
// and keep that order through every transform.
type Rectangle struct {
	center        geom.Vec
	orientation   geom.Rotation
	width, height float64

	points [4]geom.Vec
}

// NewRectangle returns a rectangle. Negative sizes are not rejected
// and mirror the corners of the rectangle.
func NewRectangle(center geom.Vec, orientation geom.Rotation, width, height float64) Rectangle {
	r := Rectangle{
		center:      center,
		orientation: orientation,
		width:       width,
		height:      height,
	}
	r.update()
	return r
}

func (r *Rectangle) update() {
	hw, hh := r.width/2, r.height/2
	r.points = [...]geom.Vec{
		toWorld(geom.Pt(hw, hh), r.center, r.orientation),
		toWorld(geom.Pt(-hw, hh), r.center, r.orientation),
		toWorld(geom.Pt(-hw, -hh), r.center, r.orientation),
		toWorld(geom.Pt(hw, -hh), r.center, r.orientation),
	}
}

func (r Rectangle) String() string {
	return fmt.Sprintf(
		"Rectangle(center=%v, orientation=%v, width=%v, height=%v)",
		r.center, r.orientation, r.width, r.height,
	)
}

// Center returns the center of r.
func (r Rectangle) Center() geom.Vec { return r.center }

func (r Rectangle) Position() geom.Vec { return r.center }

func (r Rectangle) Orientation() geom.Rotation { return r.orientation }

// Width returns the extent of r along its local x axis.
func (r Rectangle) Width() float64 { return r.width }

// Height returns the extent of r along its local y axis.
func (r Rectangle) Height() float64 { return r.height }

// Area returns the area of r.
func (r Rectangle) Area() float64 { return r.width * r.height }

// Perimeter returns the perimeter of r.
func (r Rectangle) Perimeter() float64 { return 2 * (r.width + r.height) }

// PointA returns the corner of r at (+w/2, +h/2) in its local frame.
func (r Rectangle) PointA() geom.Vec { return r.points[0] }

// PointB returns the corner of r at (-w/2, +h/2) in its local frame.
func (r Rectangle) PointB() geom.Vec { return r.points[1] }

// PointC returns the corner of r at (-w/2, -h/2) in its local frame.
func (r Rectangle) PointC() geom.Vec { return r.points[2] }

// PointD returns the corner of r at (+w/2, -h/2) in its local frame.
func (r Rectangle) PointD() geom.Vec { return r.points[3] }

// Points returns an iterator over the corners of r from A to D.
func (r Rectangle) Points() iter.Seq[geom.Vec] {
	return slices.Values(r.points[:])
}

// Edges returns an iterator over the edges of r, AB first.
func (r Rectangle) Edges() iter.Seq[LineSegment] {
	return edges(r.Points())
}

// Bounds returns the axis-aligned bounding box of r.
func (r Rectangle) Bounds() geom.Rect[float64] {
	return geom.BoundsOf(r.Points())
}

// Aff3 returns the matrix that maps the local frame of r to world
// space.
func (r Rectangle) Aff3() f64.Aff3 { return r.orientation.Aff3(r.center) }

// WithCenter returns a copy of r with its center replaced.
func (r Rectangle) WithCenter(center geom.Vec) Rectangle {
	return r.MovedTo(center)
}

// WithOrientation returns a copy of r with its orientation replaced.
func (r Rectangle) WithOrientation(orientation geom.Rotation) Rectangle {
	return r.RotatedTo(orientation)
}

// WithSize returns a copy of r with its width and height replaced.
func (r Rectangle) WithSize(width, height float64) Rectangle {
	return NewRectangle(r.center, r.orientation, width, height)
}

// Equal returns true if r and other have identical canonical
// parameters.
func (r Rectangle) Equal(other Rectangle) bool {
	return r.center == other.center &&
		r.orientation == other.orientation &&
		r.width == other.width &&
		r.height == other.height
}

// Approx returns true if the canonical parameters of r and other are
// each within epsilon of one another.
func (r Rectangle) Approx(other Rectangle, epsilon float64) bool {
	return r.center.Approx(other.center, epsilon) &&
		r.orientation.Approx(other.orientation, epsilon) &&
		math.Abs(r.width-other.width) <= epsilon &&
		math.Abs(r.height-other.height) <= epsilon
}

// Hash returns a hash of the canonical parameters of r.
func (r Rectangle) Hash() uint64 {
	return hashOf(
		"Rectangle",
		r.center.X, r.center.Y,
		r.orientation.Real(), r.orientation.Imag(),
		r.width, r.height,
	)
}

func (r Rectangle) MovedBy(offset geom.Vec) Rectangle {
	r.center = r.center.Add(offset)
	for i := range r.points {
		r.points[i] = r.points[i].Add(offset)
	}
	return r
}

func (r Rectangle) MovedTo(position geom.Vec) Rectangle {
	r = r.MovedBy(position.Sub(r.center))
	r.center = position
	return r
}

func (r Rectangle) RotatedBy(rotation geom.Rotation) Rectangle {
	r.orientation *= rotation
	r.update()
	return r
}

func (r Rectangle) RotatedTo(orientation geom.Rotation) Rectangle {
	r.orientation = orientation
	r.update()
	return r
}

func (r Rectangle) RotatedAroundPointBy(point geom.Vec, rotation geom.Rotation) Rectangle {
	r.center, r.orientation = aroundPointBy(r.center, point, r.orientation, rotation)
	r.update()
	return r
}

func (r Rectangle) RotatedAroundPointTo(point geom.Vec, orientation geom.Rotation) Rectangle {
	r.center, r.orientation = aroundPointTo(r.center, point, r.orientation, orientation)
	r.update()
	return r
}

func (r Rectangle) ScaledBy(factor float64) Rectangle {
	abs := math.Abs(factor)
	r.orientation *= geom.Sign(factor)
	r.width *= abs
	r.height *= abs
	r.update()
	return r
}

func (r Rectangle) DilatedBy(point geom.Vec, factor float64) Rectangle {
	var scale float64
	r.center, r.orientation, scale = dilate(r.center, point, r.orientation, factor)
	r.width *= scale
	r.height *= scale
	r.update()
	return r
}

func (r Rectangle) TransformedBy(offset geom.Vec, rotation geom.Rotation) Rectangle {
	r.center = r.center.Add(offset)
	r.orientation *= rotation
	r.update()
	return r
}

func (r Rectangle) TransformedByScaled(offset geom.Vec, rotation geom.Rotation, factor float64) Rectangle {
	abs := math.Abs(factor)
	r.center = r.center.Add(offset)
	r.orientation *= rotation * geom.Sign(factor)
	r.width *= abs
	r.height *= abs
	r.update()
	return r
}

func (r Rectangle) TransformedTo(position geom.Vec, orientation geom.Rotation) Rectangle {
	r.center = position
	r.orientation = orientation
	r.update()
	return r
}

func (r *Rectangle) MoveBy(offset geom.Vec) { *r = r.MovedBy(offset) }

func (r *Rectangle) MoveTo(position geom.Vec) { *r = r.MovedTo(position) }

func (r *Rectangle) RotateBy(rotation geom.Rotation) { *r = r.RotatedBy(rotation) }

func (r *Rectangle) RotateTo(orientation geom.Rotation) { *r = r.RotatedTo(orientation) }

func (r *Rectangle) RotateAroundPointBy(point geom.Vec, rotation geom.Rotation) {
	*r = r.RotatedAroundPointBy(point, rotation)
}

func (r *Rectangle) RotateAroundPointTo(point geom.Vec, orientation geom.Rotation) {
	*r = r.RotatedAroundPointTo(point, orientation)
}

func (r *Rectangle) ScaleBy(factor float64) { *r = r.ScaledBy(factor) }

func (r *Rectangle) DilateBy(point geom.Vec, factor float64) { *r = r.DilatedBy(point, factor) }

func (r *Rectangle) TransformBy(offset geom.Vec, rotation geom.Rotation) {
	*r = r.TransformedBy(offset, rotation)
}

func (r *Rectangle) TransformByScaled(offset geom.Vec, rotation geom.Rotation, factor float64) {
	*r = r.TransformedByScaled(offset, rotation, factor)
}

func (r *Rectangle) TransformTo(position geom.Vec, orientation geom.Rotation) {
	*r = r.TransformedTo(position, orientation)
}

// Interpolated returns the rectangle between r and to at t.
func (r Rectangle) Interpolated(to Rectangle, t float64) Rectangle {
	return NewRectangle(
		r.center.Lerp(to.center, t),
		geom.Slerp(r.orientation, to.orientation, t),
		lerp(r.width, to.width, t),
		lerp(r.height, to.height, t),
	)
}

func (r Rectangle) ClosestPointTo(point geom.Vec) geom.Vec {
	local := toLocal(point, r.center, r.orientation)
	clamped, inside := clampBox(local, r.width/2, r.height/2)
	if inside {
		return point
	}
	return toWorld(clamped, r.center, r.orientation)
}

func (r Rectangle) Contains(point geom.Vec) bool {
	local := toLocal(point, r.center, r.orientation)
	return inBox(local, r.width/2, r.height/2)
}

// IntersectsCircle returns true if r and c share at least one point.
func (r Rectangle) IntersectsCircle(c Circle) bool {
	return intersectsCircle(r, c)
}

// ContainsCircle returns true if every point of c lies within r.
func (r Rectangle) ContainsCircle(c Circle) bool {
	local := toLocal(c.center, r.center, r.orientation).Abs()
	return local.X+c.radius <= math.Abs(r.width)/2 && local.Y+c.radius <= math.Abs(r.height)/2
}

// ContainsRectangle returns true if every point of other lies within
// r.
func (r Rectangle) ContainsRectangle(other Rectangle) bool {
	return !xiter.Any(other.Points(), func(p geom.Vec) bool { return !r.Contains(p) })
}

// IntersectsRectangle returns true if r and other share at least one
// point. It is a separating axis test over the edge normals of both
// rectangles.
func (r Rectangle) IntersectsRectangle(other Rectangle) bool {
	axes := [...]geom.Vec{
		r.orientation.Vec(),
		r.orientation.Rotate(geom.Vec{Y: 1}),
		other.orientation.Vec(),
		other.orientation.Rotate(geom.Vec{Y: 1}),
	}
	for _, axis := range axes {
		min1, max1 := project(r.points[:], axis)
		min2, max2 := project(other.points[:], axis)
		if max1 < min2 || max2 < min1 {
			return false
		}
	}
	return true
}

// project returns the extent of points along axis.
func project(points []geom.Vec, axis geom.Vec) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range points {
		d := p.Dot(axis)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

// inBox returns true if the local point p lies within the box with
// half extents hw and hh centered on the origin.
func inBox(p geom.Vec, hw, hh float64) bool {
	return math.Abs(p.X) <= math.Abs(hw) && math.Abs(p.Y) <= math.Abs(hh)
}

// clampBox clamps the local point p into the box with half extents hw
// and hh centered on the origin. It also reports whether p was already
// inside the box.
func clampBox(p geom.Vec, hw, hh float64) (geom.Vec, bool) {
	hw, hh = math.Abs(hw), math.Abs(hh)
	if inBox(p, hw, hh) {
		return p, true
	}
	return geom.Pt(
		math.Max(-hw, math.Min(hw, p.X)),
		math.Max(-hh, math.Min(hh, p.Y)),
	), false
}
