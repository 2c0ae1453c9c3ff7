// Package geom provides the small value types that the shapes in
// xshape are built from: points, axis-aligned rectangles and
// rotations.
//
// Points and rectangles are patterned after image.Point and
// image.Rectangle, but are generic over their scalar type so that the
// same code serves both float and integer coordinates.
package geom

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Float | Integer
}

// Integer is a constraint for any integer type.
type Integer interface {
	constraints.Integer
}

// ErrIndexOutOfRange is the error that indexed component accessors
// panic with when given an index outside of their component count.
var ErrIndexOutOfRange = errors.New("index out of range")

// Point is a two-dimensional point or vector.
type Point[T Scalar] struct {
	X, Y T
}

// Vec is the float64 point used throughout xshape.
type Vec = Point[float64]

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Conv converts a point from one scalar type to another. Conversion
// to an integer type truncates towards zero.
func Conv[To, From Scalar](p Point[From]) Point[To] {
	return Point[To]{X: To(p.X), Y: To(p.Y)}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Add returns p+q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point[T]) Mul(s T) Point[T] {
	return Point[T]{X: p.X * s, Y: p.Y * s}
}

// Div returns p divided by s.
func (p Point[T]) Div(s T) Point[T] {
	return Point[T]{X: p.X / s, Y: p.Y / s}
}

// MulPt returns the component-wise product of p and q.
func (p Point[T]) MulPt(q Point[T]) Point[T] {
	return Point[T]{X: p.X * q.X, Y: p.Y * q.Y}
}

// Neg returns -p.
func (p Point[T]) Neg() Point[T] {
	return Point[T]{X: -p.X, Y: -p.Y}
}

// Dot returns the dot product of p and q.
func (p Point[T]) Dot(q Point[T]) T {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z component of the cross product of p and q
// treated as three-dimensional vectors lying in the z=0 plane.
func (p Point[T]) Cross(q Point[T]) T {
	return p.X*q.Y - p.Y*q.X
}

// LenSq returns the squared length of p.
func (p Point[T]) LenSq() T {
	return p.X*p.X + p.Y*p.Y
}

// Len returns the length of p.
func (p Point[T]) Len() float64 {
	return math.Sqrt(float64(p.LenSq()))
}

// Dist returns the distance between p and q.
func (p Point[T]) Dist(q Point[T]) float64 {
	return q.Sub(p).Len()
}

// DistSq returns the squared distance between p and q.
func (p Point[T]) DistSq(q Point[T]) T {
	return q.Sub(p).LenSq()
}

// Normalize returns a unit-length point pointing in the same
// direction as p. The zero point is returned unchanged.
func (p Point[T]) Normalize() Point[T] {
	l := p.Len()
	if l == 0 {
		return p
	}
	return Point[T]{X: T(float64(p.X) / l), Y: T(float64(p.Y) / l)}
}

// Lerp linearly interpolates between p and q. A t of 0 returns p and
// a t of 1 returns q.
func (p Point[T]) Lerp(q Point[T], t float64) Point[T] {
	return Point[T]{
		X: lerp(p.X, q.X, t),
		Y: lerp(p.Y, q.Y, t),
	}
}

// Clamp returns p with each component clamped to the corresponding
// components of lo and hi.
func (p Point[T]) Clamp(lo, hi Point[T]) Point[T] {
	return Point[T]{
		X: min(max(p.X, lo.X), hi.X),
		Y: min(max(p.Y, lo.Y), hi.Y),
	}
}

// Min returns the component-wise minimum of p and q.
func (p Point[T]) Min(q Point[T]) Point[T] {
	return Point[T]{X: min(p.X, q.X), Y: min(p.Y, q.Y)}
}

// Max returns the component-wise maximum of p and q.
func (p Point[T]) Max(q Point[T]) Point[T] {
	return Point[T]{X: max(p.X, q.X), Y: max(p.Y, q.Y)}
}

// Abs returns p with each component replaced by its absolute value.
func (p Point[T]) Abs() Point[T] {
	return Point[T]{X: abs(p.X), Y: abs(p.Y)}
}

// Index returns the component of p at index i, X being 0 and Y being
// 1. It panics with an error wrapping ErrIndexOutOfRange for any other
// index.
func (p Point[T]) Index(i int) T {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		panic(fmt.Errorf("point component %v: %w", i, ErrIndexOutOfRange))
	}
}

// Approx returns true if each component of p is within epsilon of the
// corresponding component of q.
func (p Point[T]) Approx(q Point[T], epsilon float64) bool {
	return math.Abs(float64(p.X-q.X)) <= epsilon && math.Abs(float64(p.Y-q.Y)) <= epsilon
}

// IsZero returns true if p is the zero point.
func (p Point[T]) IsZero() bool {
	return p == Point[T]{}
}

func lerp[T Scalar](a, b T, t float64) T {
	return T(float64(a) + (float64(b)-float64(a))*t)
}

func abs[T Scalar](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
