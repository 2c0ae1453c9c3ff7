package xshape

import (
	"math"

	"deedles.dev/xshape/geom"
)

// Transformable is implemented by shapes that can produce rigidly
// transformed, and optionally scaled, copies of themselves. S is the
// type of the shape itself.
type Transformable[S any] interface {
	// Position returns the reference point that translations move
	// and rotations spin the shape around.
	Position() geom.Vec

	// Orientation returns the absolute rotation of the shape.
	Orientation() geom.Rotation

	// MovedBy returns a copy of the shape translated by offset.
	MovedBy(offset geom.Vec) S

	// MovedTo returns a copy of the shape translated so that its
	// position is position.
	MovedTo(position geom.Vec) S

	// RotatedBy returns a copy of the shape rotated around its
	// position by rotation.
	RotatedBy(rotation geom.Rotation) S

	// RotatedTo returns a copy of the shape rotated around its
	// position so that its orientation is orientation.
	RotatedTo(orientation geom.Rotation) S

	// RotatedAroundPointBy returns a copy of the shape rotated around
	// point by rotation. Both the position and the orientation of the
	// shape change.
	RotatedAroundPointBy(point geom.Vec, rotation geom.Rotation) S

	// RotatedAroundPointTo returns a copy of the shape swung around
	// point so that the direction from point to the shape's position
	// is orientation. The shape spins by the same amount that its arm
	// around point does, so its orientation relative to the arm is
	// preserved. If the shape's position is within PivotEpsilon of
	// point, there is no arm and the result is RotatedTo(orientation).
	RotatedAroundPointTo(point geom.Vec, orientation geom.Rotation) S

	// ScaledBy returns a copy of the shape scaled around its position
	// by factor. A negative factor additionally rotates the shape by
	// half a turn, which is equivalent to reflecting it through its
	// position.
	ScaledBy(factor float64) S

	// DilatedBy returns a copy of the shape scaled around point by
	// factor.
	DilatedBy(point geom.Vec, factor float64) S

	// TransformedBy returns a copy of the shape translated by offset
	// and rotated by rotation around its new position.
	TransformedBy(offset geom.Vec, rotation geom.Rotation) S

	// TransformedByScaled is like TransformedBy but additionally
	// scales the shape by factor around its new position.
	TransformedByScaled(offset geom.Vec, rotation geom.Rotation, factor float64) S

	// TransformedTo returns a copy of the shape with its position set
	// to position and its orientation set to orientation.
	TransformedTo(position geom.Vec, orientation geom.Rotation) S
}

// MutableTransformable is implemented by pointers to shapes and is the
// in-place counterpart of Transformable. Each method leaves the shape
// equal to the result of the corresponding Transformable method.
type MutableTransformable interface {
	MoveBy(offset geom.Vec)
	MoveTo(position geom.Vec)
	RotateBy(rotation geom.Rotation)
	RotateTo(orientation geom.Rotation)
	RotateAroundPointBy(point geom.Vec, rotation geom.Rotation)
	RotateAroundPointTo(point geom.Vec, orientation geom.Rotation)
	ScaleBy(factor float64)
	DilateBy(point geom.Vec, factor float64)
	TransformBy(offset geom.Vec, rotation geom.Rotation)
	TransformByScaled(offset geom.Vec, rotation geom.Rotation, factor float64)
	TransformTo(position geom.Vec, orientation geom.Rotation)
}

// Shape is implemented by every shape that can answer point queries.
type Shape interface {
	// ClosestPointTo returns the point of the shape closest to point.
	// If the shape contains point, point is returned.
	ClosestPointTo(point geom.Vec) geom.Vec

	// Contains returns true if point lies within the shape or on its
	// boundary.
	Contains(point geom.Vec) bool
}

// aroundPointBy returns the center and orientation that result from
// rotating a shape at center with orientation around pivot by
// rotation.
func aroundPointBy(center, pivot geom.Vec, orientation, rotation geom.Rotation) (geom.Vec, geom.Rotation) {
	return pivot.Add(rotation.Rotate(center.Sub(pivot))), orientation * rotation
}

// aroundPointTo returns the center and orientation that result from
// swinging a shape at center with orientation around pivot until the
// pivot-to-center direction is target.
func aroundPointTo(center, pivot geom.Vec, orientation, target geom.Rotation) (geom.Vec, geom.Rotation) {
	arm := center.Sub(pivot)
	dist := arm.Len()
	if dist <= PivotEpsilon {
		return center, target
	}

	armRot := geom.FromVec(arm.Div(dist))
	return pivot.Add(target.Vec().Mul(dist)), armRot.Conj() * orientation * target
}

// dilate returns the center and orientation of a shape dilated around
// pivot by factor, along with the absolute scale that its sizes should
// be multiplied by.
func dilate(center, pivot geom.Vec, orientation geom.Rotation, factor float64) (geom.Vec, geom.Rotation, float64) {
	c := pivot.Add(center.Sub(pivot).Mul(factor))
	return c, orientation * geom.Sign(factor), math.Abs(factor)
}

// toLocal maps point into the frame of a shape at center with
// orientation.
func toLocal(point, center geom.Vec, orientation geom.Rotation) geom.Vec {
	return orientation.Conj().Rotate(point.Sub(center))
}

// toWorld is the inverse of toLocal.
func toWorld(point, center geom.Vec, orientation geom.Rotation) geom.Vec {
	return center.Add(orientation.Rotate(point))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func sqr(v float64) float64 { return v * v }
