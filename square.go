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
	_ Transformable[Square] = Square{}
	_ MutableTransformable  = (*Square)(nil)
	_ Shape                 = Square{}
)

// Square is a regular polygon with four sides. Its corners are ordered
// the same way as those of a Rectangle.
type Square struct {
	center      geom.Vec
	orientation geom.Rotation
	sideLength  float64

	points [4]geom.Vec
}

// NewSquare returns a square.
func NewSquare(center geom.Vec, orientation geom.Rotation, sideLength float64) Square {
	s := Square{center: center, orientation: orientation, sideLength: sideLength}
	s.update()
	return s
}

func (s *Square) update() {
	h := s.sideLength / 2
	s.points = [...]geom.Vec{
		toWorld(geom.Pt(h, h), s.center, s.orientation),
		toWorld(geom.Pt(-h, h), s.center, s.orientation),
		toWorld(geom.Pt(-h, -h), s.center, s.orientation),
		toWorld(geom.Pt(h, -h), s.center, s.orientation),
	}
}

func (s Square) String() string {
	return fmt.Sprintf("Square(center=%v, orientation=%v, sideLength=%v)", s.center, s.orientation, s.sideLength)
}

// Center returns the center of s.
func (s Square) Center() geom.Vec { return s.center }

func (s Square) Position() geom.Vec { return s.center }

func (s Square) Orientation() geom.Rotation { return s.orientation }

// SideLength returns the length of each side of s.
func (s Square) SideLength() float64 { return s.sideLength }

// SideCount returns 4.
func (s Square) SideCount() int { return 4 }

// Inradius returns half the side length of s.
func (s Square) Inradius() float64 { return s.sideLength / 2 }

// Circumradius returns half the diagonal of s.
func (s Square) Circumradius() float64 { return s.sideLength / math.Sqrt2 }

// InteriorAngle returns π/2.
func (s Square) InteriorAngle() float64 { return math.Pi / 2 }

// ExteriorAngle returns π/2.
func (s Square) ExteriorAngle() float64 { return math.Pi / 2 }

// Area returns the area of s.
func (s Square) Area() float64 { return s.sideLength * s.sideLength }

// Perimeter returns the perimeter of s.
func (s Square) Perimeter() float64 { return 4 * s.sideLength }

func (s Square) PointA() geom.Vec { return s.points[0] }
func (s Square) PointB() geom.Vec { return s.points[1] }
func (s Square) PointC() geom.Vec { return s.points[2] }
func (s Square) PointD() geom.Vec { return s.points[3] }

// Points returns an iterator over the corners of s from A to D.
func (s Square) Points() iter.Seq[geom.Vec] {
	return slices.Values(s.points[:])
}

// Edges returns an iterator over the edges of s, AB first.
func (s Square) Edges() iter.Seq[LineSegment] {
	return edges(s.Points())
}

// Bounds returns the axis-aligned bounding box of s.
func (s Square) Bounds() geom.Rect[float64] {
	return geom.BoundsOf(s.Points())
}

// Aff3 returns the matrix that maps the local frame of s to world
// space.
func (s Square) Aff3() f64.Aff3 { return s.orientation.Aff3(s.center) }

// ToRegularPolygon returns the four-sided regular polygon equivalent to
// s.
func (s Square) ToRegularPolygon() RegularPolygon {
	return MustRegularPolygon(s.center, s.orientation, s.sideLength, 4)
}

// ToRectangle returns the rectangle equivalent to s.
func (s Square) ToRectangle() Rectangle {
	return NewRectangle(s.center, s.orientation, s.sideLength, s.sideLength)
}

// WithCenter returns a copy of s with its center replaced.
func (s Square) WithCenter(center geom.Vec) Square { return s.MovedTo(center) }

// WithOrientation returns a copy of s with its orientation replaced.
func (s Square) WithOrientation(orientation geom.Rotation) Square { return s.RotatedTo(orientation) }

// WithSideLength returns a copy of s with its side length replaced.
func (s Square) WithSideLength(sideLength float64) Square {
	return NewSquare(s.center, s.orientation, sideLength)
}

// Equal returns true if s and other have identical canonical
// parameters.
func (s Square) Equal(other Square) bool {
	return s.center == other.center && s.orientation == other.orientation && s.sideLength == other.sideLength
}

// Approx returns true if the canonical parameters of s and other are
// each within epsilon of one another.
func (s Square) Approx(other Square, epsilon float64) bool {
	return s.center.Approx(other.center, epsilon) &&
		s.orientation.Approx(other.orientation, epsilon) &&
		math.Abs(s.sideLength-other.sideLength) <= epsilon
}

// Hash returns a hash of the canonical parameters of s.
func (s Square) Hash() uint64 {
	return hashOf("Square", s.center.X, s.center.Y, s.orientation.Real(), s.orientation.Imag(), s.sideLength)
}

func (s Square) MovedBy(offset geom.Vec) Square {
	s.center = s.center.Add(offset)
	for i := range s.points {
		s.points[i] = s.points[i].Add(offset)
	}
	return s
}

func (s Square) MovedTo(position geom.Vec) Square {
	s = s.MovedBy(position.Sub(s.center))
	s.center = position
	return s
}

func (s Square) RotatedBy(rotation geom.Rotation) Square {
	s.orientation *= rotation
	s.update()
	return s
}

func (s Square) RotatedTo(orientation geom.Rotation) Square {
	s.orientation = orientation
	s.update()
	return s
}

func (s Square) RotatedAroundPointBy(point geom.Vec, rotation geom.Rotation) Square {
	s.center, s.orientation = aroundPointBy(s.center, point, s.orientation, rotation)
	s.update()
	return s
}

func (s Square) RotatedAroundPointTo(point geom.Vec, orientation geom.Rotation) Square {
	s.center, s.orientation = aroundPointTo(s.center, point, s.orientation, orientation)
	s.update()
	return s
}

func (s Square) ScaledBy(factor float64) Square {
	s.orientation *= geom.Sign(factor)
	s.sideLength *= math.Abs(factor)
	s.update()
	return s
}

func (s Square) DilatedBy(point geom.Vec, factor float64) Square {
	var scale float64
	s.center, s.orientation, scale = dilate(s.center, point, s.orientation, factor)
	s.sideLength *= scale
	s.update()
	return s
}

func (s Square) TransformedBy(offset geom.Vec, rotation geom.Rotation) Square {
	s.center = s.center.Add(offset)
	s.orientation *= rotation
	s.update()
	return s
}

func (s Square) TransformedByScaled(offset geom.Vec, rotation geom.Rotation, factor float64) Square {
	s.center = s.center.Add(offset)
	s.orientation *= rotation * geom.Sign(factor)
	s.sideLength *= math.Abs(factor)
	s.update()
	return s
}

func (s Square) TransformedTo(position geom.Vec, orientation geom.Rotation) Square {
	s.center = position
	s.orientation = orientation
	s.update()
	return s
}

func (s *Square) MoveBy(offset geom.Vec) { *s = s.MovedBy(offset) }

func (s *Square) MoveTo(position geom.Vec) { *s = s.MovedTo(position) }

func (s *Square) RotateBy(rotation geom.Rotation) { *s = s.RotatedBy(rotation) }

func (s *Square) RotateTo(orientation geom.Rotation) { *s = s.RotatedTo(orientation) }

func (s *Square) RotateAroundPointBy(point geom.Vec, rotation geom.Rotation) {
	*s = s.RotatedAroundPointBy(point, rotation)
}

func (s *Square) RotateAroundPointTo(point geom.Vec, orientation geom.Rotation) {
	*s = s.RotatedAroundPointTo(point, orientation)
}

func (s *Square) ScaleBy(factor float64) { *s = s.ScaledBy(factor) }

func (s *Square) DilateBy(point geom.Vec, factor float64) { *s = s.DilatedBy(point, factor) }

func (s *Square) TransformBy(offset geom.Vec, rotation geom.Rotation) {
	*s = s.TransformedBy(offset, rotation)
}

func (s *Square) TransformByScaled(offset geom.Vec, rotation geom.Rotation, factor float64) {
	*s = s.TransformedByScaled(offset, rotation, factor)
}

func (s *Square) TransformTo(position geom.Vec, orientation geom.Rotation) {
	*s = s.TransformedTo(position, orientation)
}

// Interpolated returns the square between s and to at t.
func (s Square) Interpolated(to Square, t float64) Square {
	return NewSquare(
		s.center.Lerp(to.center, t),
		geom.Slerp(s.orientation, to.orientation, t),
		lerp(s.sideLength, to.sideLength, t),
	)
}

func (s Square) ClosestPointTo(point geom.Vec) geom.Vec {
	local := toLocal(point, s.center, s.orientation)
	h := s.sideLength / 2
	clamped, inside := clampBox(local, h, h)
	if inside {
		return point
	}
	return toWorld(clamped, s.center, s.orientation)
}

func (s Square) Contains(point geom.Vec) bool {
	local := toLocal(point, s.center, s.orientation)
	h := s.sideLength / 2
	return inBox(local, h, h)
}

// IntersectsCircle returns true if s and c share at least one point.
func (s Square) IntersectsCircle(c Circle) bool {
	return intersectsCircle(s, c)
}
