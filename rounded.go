package xshape

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"deedles.dev/xshape/geom"
	"go.uber.org/zap"
	"golang.org/x/image/math/f64"
)

var (
	_ Transformable[RoundedRectangle] = RoundedRectangle{}
	_ MutableTransformable            = (*RoundedRectangle)(nil)
	_ Shape                           = RoundedRectangle{}
)

// RoundedRectangle is a rectangle whose corners are replaced by
// quarter circles of a common radius.
//
// Its boundary has eight points where a straight edge meets a corner
// arc. With cw = w/2 - r and ch = h/2 - r, they are, in the local
// frame of the rectangle,
//
//	A (+cw, +h/2)  B (-cw, +h/2)
//	C (-w/2, +ch)  D (-w/2, -ch)
//	E (-cw, -h/2)  F (+cw, -h/2)
//	G (+w/2, -ch)  H (+w/2, +ch)
//
// The centers of the corner arcs are A (+cw, +ch), B (-cw, +ch),
// C (-cw, -ch), and D (+cw, -ch).
type RoundedRectangle struct {
	center        geom.Vec
	orientation   geom.Rotation
	width, height float64
	cornerRadius  float64

	points        [8]geom.Vec
	cornerCenters [4]geom.Vec
}

// NewRoundedRectangle returns a rounded rectangle. The corner radius
// is expected to be non-negative and no more than half of the smaller
// of the width and height. A radius violating that is not rejected,
// but a warning is logged.
func NewRoundedRectangle(center geom.Vec, orientation geom.Rotation, width, height, cornerRadius float64) RoundedRectangle {
	if cornerRadius < 0 || 2*cornerRadius > math.Min(width, height) {
		Logger().Warn(
			"rounded rectangle corner radius out of range",
			zap.Float64("width", width),
			zap.Float64("height", height),
			zap.Float64("cornerRadius", cornerRadius),
		)
	}

	r := RoundedRectangle{
		center:       center,
		orientation:  orientation,
		width:        width,
		height:       height,
		cornerRadius: cornerRadius,
	}
	r.update()
	return r
}

func (r *RoundedRectangle) update() {
	hw, hh := r.width/2, r.height/2
	cw, ch := hw-r.cornerRadius, hh-r.cornerRadius

	local := [...]geom.Vec{
		geom.Pt(cw, hh),
		geom.Pt(-cw, hh),
		geom.Pt(-hw, ch),
		geom.Pt(-hw, -ch),
		geom.Pt(-cw, -hh),
		geom.Pt(cw, -hh),
		geom.Pt(hw, -ch),
		geom.Pt(hw, ch),
	}
	for i, p := range local {
		r.points[i] = toWorld(p, r.center, r.orientation)
	}

	r.cornerCenters = [...]geom.Vec{
		toWorld(geom.Pt(cw, ch), r.center, r.orientation),
		toWorld(geom.Pt(-cw, ch), r.center, r.orientation),
		toWorld(geom.Pt(-cw, -ch), r.center, r.orientation),
		toWorld(geom.Pt(cw, -ch), r.center, r.orientation),
	}
}

func (r RoundedRectangle) String() string {
	return fmt.Sprintf(
		"RoundedRectangle(center=%v, orientation=%v, width=%v, height=%v, cornerRadius=%v)",
		r.center, r.orientation, r.width, r.height, r.cornerRadius,
	)
}

// Center returns the center of r.
func (r RoundedRectangle) Center() geom.Vec { return r.center }

func (r RoundedRectangle) Position() geom.Vec { return r.center }

func (r RoundedRectangle) Orientation() geom.Rotation { return r.orientation }

// Width returns the extent of r along its local x axis.
func (r RoundedRectangle) Width() float64 { return r.width }

// Height returns the extent of r along its local y axis.
func (r RoundedRectangle) Height() float64 { return r.height }

// CornerRadius returns the radius of the corner arcs of r.
func (r RoundedRectangle) CornerRadius() float64 { return r.cornerRadius }

// Area returns the area of r, which is that of the unrounded rectangle
// less the parts cut away at the corners.
func (r RoundedRectangle) Area() float64 {
	return r.width*r.height - (4-math.Pi)*r.cornerRadius*r.cornerRadius
}

// Perimeter returns the length of the boundary of r.
func (r RoundedRectangle) Perimeter() float64 {
	return 2*(r.width+r.height) - 8*r.cornerRadius + 2*math.Pi*r.cornerRadius
}

func (r RoundedRectangle) PointA() geom.Vec { return r.points[0] }
func (r RoundedRectangle) PointB() geom.Vec { return r.points[1] }
func (r RoundedRectangle) PointC() geom.Vec { return r.points[2] }
func (r RoundedRectangle) PointD() geom.Vec { return r.points[3] }
func (r RoundedRectangle) PointE() geom.Vec { return r.points[4] }
func (r RoundedRectangle) PointF() geom.Vec { return r.points[5] }
func (r RoundedRectangle) PointG() geom.Vec { return r.points[6] }
func (r RoundedRectangle) PointH() geom.Vec { return r.points[7] }

func (r RoundedRectangle) CornerCenterA() geom.Vec { return r.cornerCenters[0] }
func (r RoundedRectangle) CornerCenterB() geom.Vec { return r.cornerCenters[1] }
func (r RoundedRectangle) CornerCenterC() geom.Vec { return r.cornerCenters[2] }
func (r RoundedRectangle) CornerCenterD() geom.Vec { return r.cornerCenters[3] }

// Points returns an iterator over the eight boundary points of r from
// A to H.
func (r RoundedRectangle) Points() iter.Seq[geom.Vec] {
	return slices.Values(r.points[:])
}

// CornerCenters returns an iterator over the centers of the corner
// arcs of r from A to D.
func (r RoundedRectangle) CornerCenters() iter.Seq[geom.Vec] {
	return slices.Values(r.cornerCenters[:])
}

// Bounds returns the axis-aligned bounding box of r.
func (r RoundedRectangle) Bounds() geom.Rect[float64] {
	b := geom.BoundsOf(r.CornerCenters())
	return b.Inset(-math.Abs(r.cornerRadius))
}

// Aff3 returns the matrix that maps the local frame of r to world
// space.
func (r RoundedRectangle) Aff3() f64.Aff3 { return r.orientation.Aff3(r.center) }

// WithCenter returns a copy of r with its center replaced.
func (r RoundedRectangle) WithCenter(center geom.Vec) RoundedRectangle {
	return r.MovedTo(center)
}

// WithOrientation returns a copy of r with its orientation replaced.
func (r RoundedRectangle) WithOrientation(orientation geom.Rotation) RoundedRectangle {
	return r.RotatedTo(orientation)
}

// WithSize returns a copy of r with its width, height, and corner
// radius replaced.
func (r RoundedRectangle) WithSize(width, height, cornerRadius float64) RoundedRectangle {
	return NewRoundedRectangle(r.center, r.orientation, width, height, cornerRadius)
}

// Equal returns true if r and other have identical canonical
// parameters.
func (r RoundedRectangle) Equal(other RoundedRectangle) bool {
	return r.center == other.center &&
		r.orientation == other.orientation &&
		r.width == other.width &&
		r.height == other.height &&
		r.cornerRadius == other.cornerRadius
}

// Approx returns true if the canonical parameters of r and other are
// each within epsilon of one another.
func (r RoundedRectangle) Approx(other RoundedRectangle, epsilon float64) bool {
	return r.center.Approx(other.center, epsilon) &&
		r.orientation.Approx(other.orientation, epsilon) &&
		math.Abs(r.width-other.width) <= epsilon &&
		math.Abs(r.height-other.height) <= epsilon &&
		math.Abs(r.cornerRadius-other.cornerRadius) <= epsilon
}

// Hash returns a hash of the canonical parameters of r.
func (r RoundedRectangle) Hash() uint64 {
	return hashOf(
		"RoundedRectangle",
		r.center.X, r.center.Y,
		r.orientation.Real(), r.orientation.Imag(),
		r.width, r.height, r.cornerRadius,
	)
}

func (r RoundedRectangle) MovedBy(offset geom.Vec) RoundedRectangle {
	r.center = r.center.Add(offset)
	for i := range r.points {
		r.points[i] = r.points[i].Add(offset)
	}
	for i := range r.cornerCenters {
		r.cornerCenters[i] = r.cornerCenters[i].Add(offset)
	}
	return r
}

func (r RoundedRectangle) MovedTo(position geom.Vec) RoundedRectangle {
	r = r.MovedBy(position.Sub(r.center))
	r.center = position
	return r
}

func (r RoundedRectangle) RotatedBy(rotation geom.Rotation) RoundedRectangle {
	r.orientation *= rotation
	r.update()
	return r
}

func (r RoundedRectangle) RotatedTo(orientation geom.Rotation) RoundedRectangle {
	r.orientation = orientation
	r.update()
	return r
}

func (r RoundedRectangle) RotatedAroundPointBy(point geom.Vec, rotation geom.Rotation) RoundedRectangle {
	r.center, r.orientation = aroundPointBy(r.center, point, r.orientation, rotation)
	r.update()
	return r
}

func (r RoundedRectangle) RotatedAroundPointTo(point geom.Vec, orientation geom.Rotation) RoundedRectangle {
	r.center, r.orientation = aroundPointTo(r.center, point, r.orientation, orientation)
	r.update()
	return r
}

func (r RoundedRectangle) ScaledBy(factor float64) RoundedRectangle {
	r.orientation *= geom.Sign(factor)
	r.scale(math.Abs(factor))
	r.update()
	return r
}

func (r RoundedRectangle) DilatedBy(point geom.Vec, factor float64) RoundedRectangle {
	var scale float64
	r.center, r.orientation, scale = dilate(r.center, point, r.orientation, factor)
	r.scale(scale)
	r.update()
	return r
}

func (r RoundedRectangle) TransformedBy(offset geom.Vec, rotation geom.Rotation) RoundedRectangle {
	r.center = r.center.Add(offset)
	r.orientation *= rotation
	r.update()
	return r
}

func (r RoundedRectangle) TransformedByScaled(offset geom.Vec, rotation geom.Rotation, factor float64) RoundedRectangle {
	r.center = r.center.Add(offset)
	r.orientation *= rotation * geom.Sign(factor)
	r.scale(math.Abs(factor))
	r.update()
	return r
}

func (r RoundedRectangle) TransformedTo(position geom.Vec, orientation geom.Rotation) RoundedRectangle {
	r.center = position
	r.orientation = orientation
	r.update()
	return r
}

func (r *RoundedRectangle) scale(s float64) {
	r.width *= s
	r.height *= s
	r.cornerRadius *= s
}

func (r *RoundedRectangle) MoveBy(offset geom.Vec) { *r = r.MovedBy(offset) }

func (r *RoundedRectangle) MoveTo(position geom.Vec) { *r = r.MovedTo(position) }

func (r *RoundedRectangle) RotateBy(rotation geom.Rotation) { *r = r.RotatedBy(rotation) }

func (r *RoundedRectangle) RotateTo(orientation geom.Rotation) { *r = r.RotatedTo(orientation) }

func (r *RoundedRectangle) RotateAroundPointBy(point geom.Vec, rotation geom.Rotation) {
	*r = r.RotatedAroundPointBy(point, rotation)
}

func (r *RoundedRectangle) RotateAroundPointTo(point geom.Vec, orientation geom.Rotation) {
	*r = r.RotatedAroundPointTo(point, orientation)
}

func (r *RoundedRectangle) ScaleBy(factor float64) { *r = r.ScaledBy(factor) }

func (r *RoundedRectangle) DilateBy(point geom.Vec, factor float64) {
	*r = r.DilatedBy(point, factor)
}

func (r *RoundedRectangle) TransformBy(offset geom.Vec, rotation geom.Rotation) {
	*r = r.TransformedBy(offset, rotation)
}

func (r *RoundedRectangle) TransformByScaled(offset geom.Vec, rotation geom.Rotation, factor float64) {
	*r = r.TransformedByScaled(offset, rotation, factor)
}

func (r *RoundedRectangle) TransformTo(position geom.Vec, orientation geom.Rotation) {
	*r = r.TransformedTo(position, orientation)
}

// Interpolated returns the rounded rectangle between r and to at t.
func (r RoundedRectangle) Interpolated(to RoundedRectangle, t float64) RoundedRectangle {
	return NewRoundedRectangle(
		r.center.Lerp(to.center, t),
		geom.Slerp(r.orientation, to.orientation, t),
		lerp(r.width, to.width, t),
		lerp(r.height, to.height, t),
		lerp(r.cornerRadius, to.cornerRadius, t),
	)
}

// corner returns the local center of the corner arc whose quadrant the
// local point p falls in, if p lies beyond both straight edges bounding
// that corner.
func (r RoundedRectangle) corner(p geom.Vec) (geom.Vec, bool) {
	cw := math.Abs(r.width/2) - r.cornerRadius
	ch := math.Abs(r.height/2) - r.cornerRadius
	if math.Abs(p.X) <= cw || math.Abs(p.Y) <= ch {
		return geom.Vec{}, false
	}
	return geom.Pt(math.Copysign(cw, p.X), math.Copysign(ch, p.Y)), true
}

func (r RoundedRectangle) ClosestPointTo(point geom.Vec) geom.Vec {
	local := toLocal(point, r.center, r.orientation)
	if cc, ok := r.corner(local); ok {
		d := local.Sub(cc)
		dist := d.Len()
		if dist <= r.cornerRadius {
			return point
		}
		return toWorld(cc.Add(d.Mul(r.cornerRadius/dist)), r.center, r.orientation)
	}

	clamped, inside := clampBox(local, r.width/2, r.height/2)
	if inside {
		return point
	}
	return toWorld(clamped, r.center, r.orientation)
}

func (r RoundedRectangle) Contains(point geom.Vec) bool {
	local := toLocal(point, r.center, r.orientation)
	if cc, ok := r.corner(local); ok {
		return local.DistSq(cc) <= r.cornerRadius*r.cornerRadius
	}
	return inBox(local, r.width/2, r.height/2)
}

// IntersectsCircle returns true if r and c share at least one point.
func (r RoundedRectangle) IntersectsCircle(c Circle) bool {
	return intersectsCircle(r, c)
}
