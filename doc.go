// Package xshape provides two-dimensional shapes and the geometric
// queries defined over them.
//
// The shape family consists of [Circle], [Annulus], [Rectangle],
// [RoundedRectangle], [RegularPolygon] along with its [RegularTriangle]
// and [Square] specializations, [LineSegment] and [Ray]. Every shape
// stores a small set of canonical parameters, usually a center, an
// orientation and one or more sizes, and caches whatever secondary
// geometry, such as corner points, its queries need.
//
// # Transforms
//
// All shapes implement [Transformable], which returns transformed
// copies, and pointers to them implement [MutableTransformable], which
// transforms them in place. The two forms are interchangeable:
//
//	moved := r.MovedBy(offset)
//	r.MoveBy(offset)
//	// moved.Equal(r) is now true.
//
// Rotations are [geom.Rotation] values, unit complex numbers that
// compose by multiplication. Use [geom.FromAngle] or [geom.FromDegrees]
// to build one from an angle.
//
// # Queries
//
// Shapes that enclose an area answer ClosestPointTo, which returns the
// point of the shape nearest to a given point, or the point itself if
// the shape contains it, and Contains. Boundaries are always
// considered part of a shape. Pairs of shapes for which a closed-form
// answer exists additionally provide IntersectsX and ContainsX
// methods.
//
// # Concurrency
//
// Methods with value receivers never modify their receiver and may be
// called concurrently. Methods with pointer receivers modify the shape
// and must not be called concurrently with any other method on the
// same shape.
package xshape
