package xshape

import (
	"fmt"
	"math"

	"deedles.dev/xshape/geom"
	"golang.org/x/image/math/f64"
)

var (
	_ Transformable[Ray]   = Ray{}
	_ MutableTransformable = (*Ray)(nil)
	_ Shape                = Ray{}
)

// Ray is a half-line starting at an origin and extending forever in a
// direction. The direction is the orientation of the ray and rotates
// like one. Translations move the origin.
type Ray struct {
	origin    geom.Vec
	direction geom.Rotation
}

// NewRay returns a ray. The direction is expected to be normalized.
func NewRay(origin geom.Vec, direction geom.Rotation) Ray {
	return Ray{origin: origin, direction: direction}
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray(origin=%v, direction=%v)", r.origin, r.direction.Vec())
}

// Origin returns the point that r starts at.
func (r Ray) Origin() geom.Vec { return r.origin }

// Direction returns the unit vector that r extends along.
func (r Ray) Direction() geom.Vec { return r.direction.Vec() }

func (r Ray) Position() geom.Vec { return r.origin }

func (r Ray) Orientation() geom.Rotation { return r.direction }

// At returns the point of r at distance t from its origin.
func (r Ray) At(t float64) geom.Vec {
	return r.origin.Add(r.direction.Vec().Mul(t))
}

// Aff3 returns the matrix that maps the local frame of r, in which r
// runs along the positive x axis from the origin, to world space.
func (r Ray) Aff3() f64.Aff3 { return r.direction.Aff3(r.origin) }

// WithOrigin returns a copy of r with its origin replaced.
func (r Ray) WithOrigin(origin geom.Vec) Ray {
	r.origin = origin
	return r
}

// WithDirection returns a copy of r with its direction replaced.
func (r Ray) WithDirection(direction geom.Rotation) Ray {
	r.direction = direction
	return r
}

// Equal returns true if r and other have identical origins and
// directions.
func (r Ray) Equal(other Ray) bool {
	return r == other
}

// Approx returns true if the origins and directions of r and other are
// each within epsilon of one another.
func (r Ray) Approx(other Ray, epsilon float64) bool {
	return r.origin.Approx(other.origin, epsilon) && r.direction.Approx(other.direction, epsilon)
}

// Hash returns a hash of the origin and direction of r.
func (r Ray) Hash() uint64 {
	return hashOf("Ray", r.origin.X, r.origin.Y, r.direction.Real(), r.direction.Imag())
}

func (r Ray) MovedBy(offset geom.Vec) Ray {
	r.origin = r.origin.Add(offset)
	return r
}

func (r Ray) MovedTo(position geom.Vec) Ray {
	r.origin = position
	return r
}

func (r Ray) RotatedBy(rotation geom.Rotation) Ray {
	r.direction *= rotation
	return r
}

func (r Ray) RotatedTo(orientation geom.Rotation) Ray {
	r.direction = orientation
	return r
}

func (r Ray) RotatedAroundPointBy(point geom.Vec, rotation geom.Rotation) Ray {
	r.origin, r.direction = aroundPointBy(r.origin, point, r.direction, rotation)
	return r
}

func (r Ray) RotatedAroundPointTo(point geom.Vec, orientation geom.Rotation) Ray {
	r.origin, r.direction = aroundPointTo(r.origin, point, r.direction, orientation)
	return r
}

// ScaledBy returns r reversed if factor is negative. A ray has no size,
// so a positive factor leaves it unchanged.
func (r Ray) ScaledBy(factor float64) Ray {
	r.direction *= geom.Sign(factor)
	return r
}

func (r Ray) DilatedBy(point geom.Vec, factor float64) Ray {
	r.origin, r.direction, _ = dilate(r.origin, point, r.direction, factor)
	return r
}

func (r Ray) TransformedBy(offset geom.Vec, rotation geom.Rotation) Ray {
	r.origin = r.origin.Add(offset)
	r.direction *= rotation
	return r
}

func (r Ray) TransformedByScaled(offset geom.Vec, rotation geom.Rotation, factor float64) Ray {
	r.origin = r.origin.Add(offset)
	r.direction *= rotation * geom.Sign(factor)
	return r
}

func (r Ray) TransformedTo(position geom.Vec, orientation geom.Rotation) Ray {
	r.origin = position
	r.direction = orientation
	return r
}

func (r *Ray) MoveBy(offset geom.Vec) { *r = r.MovedBy(offset) }

func (r *Ray) MoveTo(position geom.Vec) { *r = r.MovedTo(position) }

func (r *Ray) RotateBy(rotation geom.Rotation) { *r = r.RotatedBy(rotation) }

func (r *Ray) RotateTo(orientation geom.Rotation) { *r = r.RotatedTo(orientation) }

func (r *Ray) RotateAroundPointBy(point geom.Vec, rotation geom.Rotation) {
	*r = r.RotatedAroundPointBy(point, rotation)
}

func (r *Ray) RotateAroundPointTo(point geom.Vec, orientation geom.Rotation) {
	*r = r.RotatedAroundPointTo(point, orientation)
}

func (r *Ray) ScaleBy(factor float64) { *r = r.ScaledBy(factor) }

func (r *Ray) DilateBy(point geom.Vec, factor float64) { *r = r.DilatedBy(point, factor) }

func (r *Ray) TransformBy(offset geom.Vec, rotation geom.Rotation) {
	*r = r.TransformedBy(offset, rotation)
}

func (r *Ray) TransformByScaled(offset geom.Vec, rotation geom.Rotation, factor float64) {
	*r = r.TransformedByScaled(offset, rotation, factor)
}

func (r *Ray) TransformTo(position geom.Vec, orientation geom.Rotation) {
	*r = r.TransformedTo(position, orientation)
}

// Interpolated returns the ray between r and to at t, interpolating
// the origin linearly and the direction spherically.
func (r Ray) Interpolated(to Ray, t float64) Ray {
	return Ray{
		origin:    r.origin.Lerp(to.origin, t),
		direction: geom.Slerp(r.direction, to.direction, t),
	}
}

// ClosestPointTo returns the point of r closest to point. Points
// behind the origin project onto the origin.
func (r Ray) ClosestPointTo(point geom.Vec) geom.Vec {
	t := point.Sub(r.origin).Dot(r.direction.Vec())
	return r.At(math.Max(0, t))
}

// Contains returns true if point lies within ApproxEpsilon of r.
func (r Ray) Contains(point geom.Vec) bool {
	return r.ClosestPointTo(point).Approx(point, ApproxEpsilon)
}
