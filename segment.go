package xshape

import (
	"fmt"
	"iter"
	"math"

	"deedles.dev/xiter"
	"deedles.dev/xshape/geom"
	"golang.org/x/image/math/f64"
)

var (
	_ Transformable[LineSegment] = LineSegment{}
	_ MutableTransformable       = (*LineSegment)(nil)
	_ Shape                      = LineSegment{}
)

// LineSegment is the set of points between two end points. Its
// position is its midpoint and its orientation is the direction from
// B to A.
type LineSegment struct {
	a, b geom.Vec
}

// NewLineSegment returns the segment between a and b.
func NewLineSegment(a, b geom.Vec) LineSegment {
	return LineSegment{a: a, b: b}
}

func (s LineSegment) String() string {
	return fmt.Sprintf("LineSegment(pointA=%v, pointB=%v)", s.a, s.b)
}

// A returns the first end point of s.
func (s LineSegment) A() geom.Vec { return s.a }

// B returns the second end point of s.
func (s LineSegment) B() geom.Vec { return s.b }

// Center returns the midpoint of s.
func (s LineSegment) Center() geom.Vec { return s.a.Add(s.b).Mul(0.5) }

// Length returns the distance between the end points of s.
func (s LineSegment) Length() float64 { return s.a.Dist(s.b) }

func (s LineSegment) Position() geom.Vec { return s.Center() }

// Orientation returns the direction from B to A. A segment with
// coincident end points has the identity orientation.
func (s LineSegment) Orientation() geom.Rotation {
	d := s.a.Sub(s.b)
	l := d.Len()
	if l == 0 {
		return geom.Identity
	}
	return geom.FromVec(d.Div(l))
}

// Points returns an iterator over the end points of s, A first.
func (s LineSegment) Points() iter.Seq[geom.Vec] {
	return func(yield func(geom.Vec) bool) {
		_ = yield(s.a) && yield(s.b)
	}
}

// Bounds returns the axis-aligned bounding box of s.
func (s LineSegment) Bounds() geom.Rect[float64] {
	return geom.BoundsOf(s.Points())
}

// Aff3 returns the matrix that maps the local frame of s, in which s
// runs along the x axis from (-l/2, 0) to (l/2, 0), to world space.
func (s LineSegment) Aff3() f64.Aff3 { return s.Orientation().Aff3(s.Center()) }

// WithPoints returns a segment with its end points replaced.
func (s LineSegment) WithPoints(a, b geom.Vec) LineSegment {
	return LineSegment{a: a, b: b}
}

// Equal returns true if s and other have identical end points.
func (s LineSegment) Equal(other LineSegment) bool {
	return s == other
}

// Approx returns true if the end points of s and other are each within
// epsilon of one another.
func (s LineSegment) Approx(other LineSegment, epsilon float64) bool {
	return s.a.Approx(other.a, epsilon) && s.b.Approx(other.b, epsilon)
}

// Hash returns a hash of the end points of s.
func (s LineSegment) Hash() uint64 {
	return hashOf("LineSegment", s.a.X, s.a.Y, s.b.X, s.b.Y)
}

// halfArm returns the vector from the center of s to A.
func (s LineSegment) halfArm() geom.Vec {
	return s.a.Sub(s.b).Mul(0.5)
}

func (s LineSegment) around(center, arm geom.Vec) LineSegment {
	return LineSegment{a: center.Add(arm), b: center.Sub(arm)}
}

func (s LineSegment) MovedBy(offset geom.Vec) LineSegment {
	return LineSegment{a: s.a.Add(offset), b: s.b.Add(offset)}
}

func (s LineSegment) MovedTo(position geom.Vec) LineSegment {
	return s.MovedBy(position.Sub(s.Center()))
}

func (s LineSegment) RotatedBy(rotation geom.Rotation) LineSegment {
	return s.around(s.Center(), rotation.Rotate(s.halfArm()))
}

func (s LineSegment) RotatedTo(orientation geom.Rotation) LineSegment {
	return s.around(s.Center(), orientation.Vec().Mul(s.Length()/2))
}

func (s LineSegment) RotatedAroundPointBy(point geom.Vec, rotation geom.Rotation) LineSegment {
	return LineSegment{
		a: point.Add(rotation.Rotate(s.a.Sub(point))),
		b: point.Add(rotation.Rotate(s.b.Sub(point))),
	}
}

func (s LineSegment) RotatedAroundPointTo(point geom.Vec, orientation geom.Rotation) LineSegment {
	center, rot := aroundPointTo(s.Center(), point, s.Orientation(), orientation)
	return s.around(center, rot.Vec().Mul(s.Length()/2))
}

func (s LineSegment) ScaledBy(factor float64) LineSegment {
	return s.around(s.Center(), s.halfArm().Mul(factor))
}

func (s LineSegment) DilatedBy(point geom.Vec, factor float64) LineSegment {
	return LineSegment{
		a: point.Add(s.a.Sub(point).Mul(factor)),
		b: point.Add(s.b.Sub(point).Mul(factor)),
	}
}

func (s LineSegment) TransformedBy(offset geom.Vec, rotation geom.Rotation) LineSegment {
	return s.around(s.Center().Add(offset), rotation.Rotate(s.halfArm()))
}

func (s LineSegment) TransformedByScaled(offset geom.Vec, rotation geom.Rotation, factor float64) LineSegment {
	return s.around(s.Center().Add(offset), rotation.Rotate(s.halfArm()).Mul(factor))
}

func (s LineSegment) TransformedTo(position geom.Vec, orientation geom.Rotation) LineSegment {
	return s.around(position, orientation.Vec().Mul(s.Length()/2))
}

func (s *LineSegment) MoveBy(offset geom.Vec) { *s = s.MovedBy(offset) }

func (s *LineSegment) MoveTo(position geom.Vec) { *s = s.MovedTo(position) }

func (s *LineSegment) RotateBy(rotation geom.Rotation) { *s = s.RotatedBy(rotation) }

func (s *LineSegment) RotateTo(orientation geom.Rotation) { *s = s.RotatedTo(orientation) }

func (s *LineSegment) RotateAroundPointBy(point geom.Vec, rotation geom.Rotation) {
	*s = s.RotatedAroundPointBy(point, rotation)
}

func (s *LineSegment) RotateAroundPointTo(point geom.Vec, orientation geom.Rotation) {
	*s = s.RotatedAroundPointTo(point, orientation)
}

func (s *LineSegment) ScaleBy(factor float64) { *s = s.ScaledBy(factor) }

func (s *LineSegment) DilateBy(point geom.Vec, factor float64) { *s = s.DilatedBy(point, factor) }

func (s *LineSegment) TransformBy(offset geom.Vec, rotation geom.Rotation) {
	*s = s.TransformedBy(offset, rotation)
}

func (s *LineSegment) TransformByScaled(offset geom.Vec, rotation geom.Rotation, factor float64) {
	*s = s.TransformedByScaled(offset, rotation, factor)
}

func (s *LineSegment) TransformTo(position geom.Vec, orientation geom.Rotation) {
	*s = s.TransformedTo(position, orientation)
}

// Interpolated returns the segment whose end points are linearly
// interpolated between those of s and to.
func (s LineSegment) Interpolated(to LineSegment, t float64) LineSegment {
	return LineSegment{a: s.a.Lerp(to.a, t), b: s.b.Lerp(to.b, t)}
}

// ClosestPointTo returns the point of s closest to point.
func (s LineSegment) ClosestPointTo(point geom.Vec) geom.Vec {
	ab := s.b.Sub(s.a)
	l := ab.LenSq()
	if l == 0 {
		return s.a
	}

	t := point.Sub(s.a).Dot(ab) / l
	return s.a.Add(ab.Mul(math.Max(0, math.Min(1, t))))
}

// Contains returns true if point lies within ApproxEpsilon of s.
func (s LineSegment) Contains(point geom.Vec) bool {
	return s.ClosestPointTo(point).Approx(point, ApproxEpsilon)
}

// edges returns an iterator over the segments joining each point
// yielded by points to the next one, closing the loop from the last
// point back to the first. points is iterated twice.
func edges(points iter.Seq[geom.Vec]) iter.Seq[LineSegment] {
	closed := xiter.Concat(points, xiter.Limit(points, 1))
	return func(yield func(LineSegment) bool) {
		for w := range xiter.Windows(closed, 2) {
			if len(w) < 2 || !yield(NewLineSegment(w[0], w[1])) {
				return
			}
		}
	}
}
