package xshape

import (
	"fmt"
	"math"

	"deedles.dev/xshape/geom"
	"golang.org/x/image/math/f64"
)

var (
	_ Transformable[Circle] = Circle{}
	_ MutableTransformable  = (*Circle)(nil)
	_ Shape                 = Circle{}
)

// Circle is a disk with an orientation. The orientation has no effect
// on the points a circle covers, but it is carried through transforms
// and interpolation so that a circle can stand in for a rotating body.
type Circle struct {
	center      geom.Vec
	orientation geom.Rotation
	radius      float64
}

// NewCircle returns a circle. A negative radius is not rejected, but
// such a circle contains no points.
func NewCircle(center geom.Vec, orientation geom.Rotation, radius float64) Circle {
	return Circle{center: center, orientation: orientation, radius: radius}
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle(center=%v, orientation=%v, radius=%v)", c.center, c.orientation, c.radius)
}

// Center returns the center of c.
func (c Circle) Center() geom.Vec { return c.center }

func (c Circle) Position() geom.Vec { return c.center }

func (c Circle) Orientation() geom.Rotation { return c.orientation }

// Radius returns the radius of c.
func (c Circle) Radius() float64 { return c.radius }

// Diameter returns twice the radius of c.
func (c Circle) Diameter() float64 { return 2 * c.radius }

// Area returns the area of c.
func (c Circle) Area() float64 { return math.Pi * c.radius * c.radius }

// Perimeter returns the circumference of c.
func (c Circle) Perimeter() float64 { return 2 * math.Pi * c.radius }

// Bounds returns the axis-aligned bounding box of c.
func (c Circle) Bounds() geom.Rect[float64] {
	r := geom.Pt(c.radius, c.radius)
	return geom.Rect[float64]{Min: c.center.Sub(r), Max: c.center.Add(r)}
}

// Aff3 returns the matrix that maps the local frame of c, centered on
// the origin and unrotated, to world space.
func (c Circle) Aff3() f64.Aff3 { return c.orientation.Aff3(c.center) }

// WithCenter returns a copy of c with its center replaced.
func (c Circle) WithCenter(center geom.Vec) Circle {
	c.center = center
	return c
}

// WithOrientation returns a copy of c with its orientation replaced.
func (c Circle) WithOrientation(orientation geom.Rotation) Circle {
	c.orientation = orientation
	return c
}

// WithRadius returns a copy of c with its radius replaced.
func (c Circle) WithRadius(radius float64) Circle {
	c.radius = radius
	return c
}

// Equal returns true if c and other have identical canonical
// parameters.
func (c Circle) Equal(other Circle) bool {
	return c == other
}

// Approx returns true if the canonical parameters of c and other are
// each within epsilon of one another.
func (c Circle) Approx(other Circle, epsilon float64) bool {
	return c.center.Approx(other.center, epsilon) &&
		c.orientation.Approx(other.orientation, epsilon) &&
		math.Abs(c.radius-other.radius) <= epsilon
}

// Hash returns a hash of the canonical parameters of c.
func (c Circle) Hash() uint64 {
	return hashOf("Circle", c.center.X, c.center.Y, c.orientation.Real(), c.orientation.Imag(), c.radius)
}

func (c Circle) MovedBy(offset geom.Vec) Circle {
	c.center = c.center.Add(offset)
	return c
}

func (c Circle) MovedTo(position geom.Vec) Circle {
	c.center = position
	return c
}

func (c Circle) RotatedBy(rotation geom.Rotation) Circle {
	c.orientation *= rotation
	return c
}

func (c Circle) RotatedTo(orientation geom.Rotation) Circle {
	c.orientation = orientation
	return c
}

func (c Circle) RotatedAroundPointBy(point geom.Vec, rotation geom.Rotation) Circle {
	c.center, c.orientation = aroundPointBy(c.center, point, c.orientation, rotation)
	return c
}

func (c Circle) RotatedAroundPointTo(point geom.Vec, orientation geom.Rotation) Circle {
	c.center, c.orientation = aroundPointTo(c.center, point, c.orientation, orientation)
	return c
}

func (c Circle) ScaledBy(factor float64) Circle {
	c.orientation *= geom.Sign(factor)
	c.radius *= math.Abs(factor)
	return c
}

func (c Circle) DilatedBy(point geom.Vec, factor float64) Circle {
	var scale float64
	c.center, c.orientation, scale = dilate(c.center, point, c.orientation, factor)
	c.radius *= scale
	return c
}

func (c Circle) TransformedBy(offset geom.Vec, rotation geom.Rotation) Circle {
	c.center = c.center.Add(offset)
	c.orientation *= rotation
	return c
}

func (c Circle) TransformedByScaled(offset geom.Vec, rotation geom.Rotation, factor float64) Circle {
	c.center = c.center.Add(offset)
	c.orientation *= rotation * geom.Sign(factor)
	c.radius *= math.Abs(factor)
	return c
}

func (c Circle) TransformedTo(position geom.Vec, orientation geom.Rotation) Circle {
	c.center = position
	c.orientation = orientation
	return c
}

func (c *Circle) MoveBy(offset geom.Vec) { *c = c.MovedBy(offset) }

func (c *Circle) MoveTo(position geom.Vec) { *c = c.MovedTo(position) }

func (c *Circle) RotateBy(rotation geom.Rotation) { *c = c.RotatedBy(rotation) }

func (c *Circle) RotateTo(orientation geom.Rotation) { *c = c.RotatedTo(orientation) }

func (c *Circle) RotateAroundPointBy(point geom.Vec, rotation geom.Rotation) {
	*c = c.RotatedAroundPointBy(point, rotation)
}

func (c *Circle) RotateAroundPointTo(point geom.Vec, orientation geom.Rotation) {
	*c = c.RotatedAroundPointTo(point, orientation)
}

func (c *Circle) ScaleBy(factor float64) { *c = c.ScaledBy(factor) }

func (c *Circle) DilateBy(point geom.Vec, factor float64) { *c = c.DilatedBy(point, factor) }

func (c *Circle) TransformBy(offset geom.Vec, rotation geom.Rotation) {
	*c = c.TransformedBy(offset, rotation)
}

func (c *Circle) TransformByScaled(offset geom.Vec, rotation geom.Rotation, factor float64) {
	*c = c.TransformedByScaled(offset, rotation, factor)
}

func (c *Circle) TransformTo(position geom.Vec, orientation geom.Rotation) {
	*c = c.TransformedTo(position, orientation)
}

// Interpolated returns the circle between c and to at t, interpolating
// the center and radius linearly and the orientation spherically.
func (c Circle) Interpolated(to Circle, t float64) Circle {
	return Circle{
		center:      c.center.Lerp(to.center, t),
		orientation: geom.Slerp(c.orientation, to.orientation, t),
		radius:      lerp(c.radius, to.radius, t),
	}
}

func (c Circle) ClosestPointTo(point geom.Vec) geom.Vec {
	d := point.Sub(c.center)
	dist := d.Len()
	if dist > c.radius {
		return c.center.Add(d.Mul(c.radius / dist))
	}
	return point
}

func (c Circle) Contains(point geom.Vec) bool {
	return c.center.Dist(point) <= c.radius
}

// IntersectsCircle returns true if c and other share at least one
// point.
func (c Circle) IntersectsCircle(other Circle) bool {
	return c.center.Dist(other.center) <= c.radius+other.radius
}

// IntersectsAnnulus returns true if c and a share at least one point.
func (c Circle) IntersectsAnnulus(a Annulus) bool {
	return a.IntersectsCircle(c)
}

// ContainsCircle returns true if every point of other lies within c.
func (c Circle) ContainsCircle(other Circle) bool {
	return c.center.Dist(other.center) <= c.radius-other.radius
}

// ContainsAnnulus returns true if every point of a lies within c.
func (c Circle) ContainsAnnulus(a Annulus) bool {
	return c.center.Dist(a.center) <= c.radius-a.outerRadius
}
