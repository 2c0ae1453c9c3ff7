package xshape

import (
	"iter"

	"deedles.dev/xiter"
	"deedles.dev/xshape/geom"
)

// intersectsCircle returns true if the closed, convex shape s shares
// at least one point with c.
func intersectsCircle(s Shape, c Circle) bool {
	return s.ClosestPointTo(c.center).DistSq(c.center) <= c.radius*c.radius
}

// containsPoints returns true if every point yielded by points lies
// within c. For a convex shape, passing its vertices tests whether c
// contains the whole shape.
func (c Circle) containsPoints(points iter.Seq[geom.Vec]) bool {
	return !xiter.Any(points, func(p geom.Vec) bool { return !c.Contains(p) })
}

// ContainsRectangle returns true if every point of r lies within c.
func (c Circle) ContainsRectangle(r Rectangle) bool {
	return c.containsPoints(r.Points())
}

// ContainsSquare returns true if every point of s lies within c.
func (c Circle) ContainsSquare(s Square) bool {
	return c.containsPoints(s.Points())
}

// ContainsRegularTriangle returns true if every point of t lies within
// c.
func (c Circle) ContainsRegularTriangle(t RegularTriangle) bool {
	return c.containsPoints(t.Points())
}

// ContainsRegularPolygon returns true if every point of p lies within
// c.
func (c Circle) ContainsRegularPolygon(p RegularPolygon) bool {
	return c.containsPoints(p.Points())
}

// ContainsLineSegment returns true if both end points of s lie within
// c.
func (c Circle) ContainsLineSegment(s LineSegment) bool {
	return c.containsPoints(s.Points())
}

// IntersectsLineSegment returns true if c and s share at least one
// point.
func (c Circle) IntersectsLineSegment(s LineSegment) bool {
	return intersectsCircle(s, c)
}

// IntersectsRay returns true if c and r share at least one point.
func (c Circle) IntersectsRay(r Ray) bool {
	return intersectsCircle(r, c)
}
