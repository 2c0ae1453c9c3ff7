package xshape

import (
	"fmt"
	"math"

	"deedles.dev/xshape/geom"
	"go.uber.org/zap"
	"golang.org/x/image/math/f64"
)

var (
	_ Transformable[Annulus] = Annulus{}
	_ MutableTransformable   = (*Annulus)(nil)
	_ Shape                  = Annulus{}
)

// Annulus is the ring between two concentric circles.
type Annulus struct {
	center      geom.Vec
	orientation geom.Rotation
	outerRadius float64
	innerRadius float64
}

// NewAnnulus returns an annulus. The inner radius is expected to be
// non-negative and no greater than the outer radius. Radii violating
// that are not rejected, but a warning is logged.
func NewAnnulus(center geom.Vec, orientation geom.Rotation, outerRadius, innerRadius float64) Annulus {
	if innerRadius > outerRadius || innerRadius < 0 {
		Logger().Warn(
			"annulus radii out of order",
			zap.Float64("outerRadius", outerRadius),
			zap.Float64("innerRadius", innerRadius),
		)
	}

	return Annulus{
		center:      center,
		orientation: orientation,
		outerRadius: outerRadius,
		innerRadius: innerRadius,
	}
}

func (a Annulus) String() string {
	return fmt.Sprintf(
		"Annulus(center=%v, orientation=%v, outerRadius=%v, innerRadius=%v)",
		a.center, a.orientation, a.outerRadius, a.innerRadius,
	)
}

// Center returns the common center of the circles bounding a.
func (a Annulus) Center() geom.Vec { return a.center }

func (a Annulus) Position() geom.Vec { return a.center }

func (a Annulus) Orientation() geom.Rotation { return a.orientation }

// OuterRadius returns the radius of the outer boundary of a.
func (a Annulus) OuterRadius() float64 { return a.outerRadius }

// InnerRadius returns the radius of the hole of a.
func (a Annulus) InnerRadius() float64 { return a.innerRadius }

// AnnularRadius returns the width of the ring, the difference between
// the outer and the inner radius.
func (a Annulus) AnnularRadius() float64 { return a.outerRadius - a.innerRadius }

// Area returns the area of the ring.
func (a Annulus) Area() float64 {
	return math.Pi * (a.outerRadius*a.outerRadius - a.innerRadius*a.innerRadius)
}

// Perimeter returns the combined length of both boundaries of a.
func (a Annulus) Perimeter() float64 {
	return 2 * math.Pi * (a.outerRadius + a.innerRadius)
}

// Bounds returns the axis-aligned bounding box of a.
func (a Annulus) Bounds() geom.Rect[float64] {
	r := geom.Pt(a.outerRadius, a.outerRadius)
	return geom.Rect[float64]{Min: a.center.Sub(r), Max: a.center.Add(r)}
}

// Aff3 returns the matrix that maps the local frame of a to world
// space.
func (a Annulus) Aff3() f64.Aff3 { return a.orientation.Aff3(a.center) }

// WithCenter returns a copy of a with its center replaced.
func (a Annulus) WithCenter(center geom.Vec) Annulus {
	a.center = center
	return a
}

// WithOrientation returns a copy of a with its orientation replaced.
func (a Annulus) WithOrientation(orientation geom.Rotation) Annulus {
	a.orientation = orientation
	return a
}

// WithRadii returns a copy of a with both radii replaced.
func (a Annulus) WithRadii(outerRadius, innerRadius float64) Annulus {
	return NewAnnulus(a.center, a.orientation, outerRadius, innerRadius)
}

// Equal returns true if a and other have identical canonical
// parameters.
func (a Annulus) Equal(other Annulus) bool {
	return a == other
}

// Approx returns true if the canonical parameters of a and other are
// each within epsilon of one another.
func (a Annulus) Approx(other Annulus, epsilon float64) bool {
	return a.center.Approx(other.center, epsilon) &&
		a.orientation.Approx(other.orientation, epsilon) &&
		math.Abs(a.outerRadius-other.outerRadius) <= epsilon &&
		math.Abs(a.innerRadius-other.innerRadius) <= epsilon
}

// Hash returns a hash of the canonical parameters of a.
func (a Annulus) Hash() uint64 {
	return hashOf(
		"Annulus",
		a.center.X, a.center.Y,
		a.orientation.Real(), a.orientation.Imag(),
		a.outerRadius, a.innerRadius,
	)
}

func (a Annulus) MovedBy(offset geom.Vec) Annulus {
	a.center = a.center.Add(offset)
	return a
}

func (a Annulus) MovedTo(position geom.Vec) Annulus {
	a.center = position
	return a
}

func (a Annulus) RotatedBy(rotation geom.Rotation) Annulus {
	a.orientation *= rotation
	return a
}

func (a Annulus) RotatedTo(orientation geom.Rotation) Annulus {
	a.orientation = orientation
	return a
}

func (a Annulus) RotatedAroundPointBy(point geom.Vec, rotation geom.Rotation) Annulus {
	a.center, a.orientation = aroundPointBy(a.center, point, a.orientation, rotation)
	return a
}

func (a Annulus) RotatedAroundPointTo(point geom.Vec, orientation geom.Rotation) Annulus {
	a.center, a.orientation = aroundPointTo(a.center, point, a.orientation, orientation)
	return a
}

func (a Annulus) ScaledBy(factor float64) Annulus {
	abs := math.Abs(factor)
	a.orientation *= geom.Sign(factor)
	a.outerRadius *= abs
	a.innerRadius *= abs
	return a
}

func (a Annulus) DilatedBy(point geom.Vec, factor float64) Annulus {
	var scale float64
	a.center, a.orientation, scale = dilate(a.center, point, a.orientation, factor)
	a.outerRadius *= scale
	a.innerRadius *= scale
	return a
}

func (a Annulus) TransformedBy(offset geom.Vec, rotation geom.Rotation) Annulus {
	a.center = a.center.Add(offset)
	a.orientation *= rotation
	return a
}

func (a Annulus) TransformedByScaled(offset geom.Vec, rotation geom.Rotation, factor float64) Annulus {
	return a.TransformedBy(offset, rotation).ScaledBy(factor)
}

func (a Annulus) TransformedTo(position geom.Vec, orientation geom.Rotation) Annulus {
	a.center = position
	a.orientation = orientation
	return a
}

func (a *Annulus) MoveBy(offset geom.Vec) { *a = a.MovedBy(offset) }

func (a *Annulus) MoveTo(position geom.Vec) { *a = a.MovedTo(position) }

func (a *Annulus) RotateBy(rotation geom.Rotation) { *a = a.RotatedBy(rotation) }

func (a *Annulus) RotateTo(orientation geom.Rotation) { *a = a.RotatedTo(orientation) }

func (a *Annulus) RotateAroundPointBy(point geom.Vec, rotation geom.Rotation) {
	*a = a.RotatedAroundPointBy(point, rotation)
}

func (a *Annulus) RotateAroundPointTo(point geom.Vec, orientation geom.Rotation) {
	*a = a.RotatedAroundPointTo(point, orientation)
}

func (a *Annulus) ScaleBy(factor float64) { *a = a.ScaledBy(factor) }

func (a *Annulus) DilateBy(point geom.Vec, factor float64) { *a = a.DilatedBy(point, factor) }

func (a *Annulus) TransformBy(offset geom.Vec, rotation geom.Rotation) {
	*a = a.TransformedBy(offset, rotation)
}

func (a *Annulus) TransformByScaled(offset geom.Vec, rotation geom.Rotation, factor float64) {
	*a = a.TransformedByScaled(offset, rotation, factor)
}

func (a *Annulus) TransformTo(position geom.Vec, orientation geom.Rotation) {
	*a = a.TransformedTo(position, orientation)
}

// Interpolated returns the annulus between a and to at t.
func (a Annulus) Interpolated(to Annulus, t float64) Annulus {
	return Annulus{
		center:      a.center.Lerp(to.center, t),
		orientation: geom.Slerp(a.orientation, to.orientation, t),
		outerRadius: lerp(a.outerRadius, to.outerRadius, t),
		innerRadius: lerp(a.innerRadius, to.innerRadius, t),
	}
}

// ClosestPointTo returns the point of the ring closest to point. A
// point in the hole is projected onto the inner boundary and a point
// outside onto the outer one. The center itself, which is equally far
// from every point of the inner boundary, is projected in the
// direction of the orientation of a.
func (a Annulus) ClosestPointTo(point geom.Vec) geom.Vec {
	d := point.Sub(a.center)
	dist := d.Len()
	switch {
	case dist > a.outerRadius:
		return a.center.Add(d.Mul(a.outerRadius / dist))
	case dist < a.innerRadius:
		if dist == 0 {
			return a.center.Add(a.orientation.Vec().Mul(a.innerRadius))
		}
		return a.center.Add(d.Mul(a.innerRadius / dist))
	default:
		return point
	}
}

func (a Annulus) Contains(point geom.Vec) bool {
	dist := a.center.Dist(point)
	return dist >= a.innerRadius && dist <= a.outerRadius
}

// IntersectsCircle returns true if a and c share at least one point.
func (a Annulus) IntersectsCircle(c Circle) bool {
	dist := a.center.Dist(c.center)
	return dist >= a.innerRadius-c.radius && dist <= a.outerRadius+c.radius
}

// IntersectsAnnulus returns true if a and other share at least one
// point, which is the case when their outer disks overlap and neither
// lies entirely within the hole of the other.
func (a Annulus) IntersectsAnnulus(other Annulus) bool {
	dist := a.center.Dist(other.center)
	return dist <= a.outerRadius+other.outerRadius &&
		dist >= a.innerRadius-other.outerRadius &&
		dist >= other.innerRadius-a.outerRadius
}

// ContainsCircle returns true if every point of c lies within the
// ring.
func (a Annulus) ContainsCircle(c Circle) bool {
	dist := a.center.Dist(c.center)
	return dist+c.radius <= a.outerRadius && dist-c.radius >= a.innerRadius
}

// ContainsAnnulus returns true if every point of other lies within
// the ring of a. Other must fit inside the outer boundary of a, and
// the hole of a must either lie entirely outside of other or entirely
// within its hole.
func (a Annulus) ContainsAnnulus(other Annulus) bool {
	dist := a.center.Dist(other.center)
	if dist+other.outerRadius > a.outerRadius {
		return false
	}
	return dist >= a.innerRadius+other.outerRadius || dist+a.innerRadius <= other.innerRadius
}
