package geom

import (
	"fmt"
	"iter"

	"deedles.dev/xiter"
)

// Rect is an axis-aligned rectangle containing the points (X, Y)
// where Min.X <= X <= Max.X and Min.Y <= Y <= Max.Y. Unlike
// image.Rectangle, the maximum edges are inclusive, as Rect is used
// for the bounding boxes of continuous shapes rather than for pixel
// grids.
type Rect[T Scalar] struct {
	Min, Max Point[T]
}

// Rt is shorthand for Rect[T]{Min: Pt(x0, y0), Max: Pt(x1, y1)}. The
// returned rectangle is canonical.
func Rt[T Scalar](x0, y0, x1, y1 T) Rect[T] {
	return Rect[T]{Min: Pt(x0, y0), Max: Pt(x1, y1)}.Canon()
}

// BoundsOf returns the smallest rectangle containing every point
// yielded by points. If points yields nothing, the zero Rect is
// returned.
func BoundsOf[T Scalar](points iter.Seq[Point[T]]) Rect[T] {
	boxes := xiter.Map(points, func(p Point[T]) Rect[T] { return Rect[T]{Min: p, Max: p} })
	return xiter.Fold(boxes, Rect[T].Union)
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("%v-%v", r.Min, r.Max)
}

// Dx returns the width of r.
func (r Rect[T]) Dx() T {
	return r.Max.X - r.Min.X
}

// Dy returns the height of r.
func (r Rect[T]) Dy() T {
	return r.Max.Y - r.Min.Y
}

// Size returns the width and height of r as a point.
func (r Rect[T]) Size() Point[T] {
	return Pt(r.Dx(), r.Dy())
}

// Canon returns a copy of r with the minimum and maximum coordinates
// swapped where necessary so that Min is less than or equal to Max.
func (r Rect[T]) Canon() Rect[T] {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Center returns the point at the center of r.
func (r Rect[T]) Center() Point[T] {
	return r.Min.Add(r.Max).Div(2)
}

// Add returns r translated by p.
func (r Rect[T]) Add(p Point[T]) Rect[T] {
	return Rect[T]{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}

// Inset returns r shrunk by n on every side. A negative n grows it.
func (r Rect[T]) Inset(n T) Rect[T] {
	return Rect[T]{
		Min: r.Min.Add(Pt(n, n)),
		Max: r.Max.Sub(Pt(n, n)),
	}
}

// Union returns the smallest rectangle that contains both r and s.
func (r Rect[T]) Union(s Rect[T]) Rect[T] {
	return Rect[T]{Min: r.Min.Min(s.Min), Max: r.Max.Max(s.Max)}
}

// Overlaps returns true if r and s share at least one point.
func (r Rect[T]) Overlaps(s Rect[T]) bool {
	return r.Min.X <= s.Max.X && s.Min.X <= r.Max.X &&
		r.Min.Y <= s.Max.Y && s.Min.Y <= r.Max.Y
}

// Contains returns true if p lies within r, edges included.
func (r Rect[T]) Contains(p Point[T]) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}
