package geom

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Rotation is a rotation in the plane represented as a complex number
// of unit magnitude, (cos θ, sin θ). Rotations compose by
// multiplication, so r*s is the rotation by r followed by s, and the
// conjugate of a rotation is its inverse.
//
// A Rotation whose magnitude is not one scales as well as rotates the
// points it is applied to. Shapes expect their orientations to be
// normalized.
type Rotation complex128

// Identity is the rotation by zero radians.
const Identity Rotation = 1

// FromAngle returns the rotation by angle radians counterclockwise.
func FromAngle(angle float64) Rotation {
	sin, cos := math.Sincos(angle)
	return Rotation(complex(cos, sin))
}

// FromDegrees returns the rotation by angle degrees counterclockwise.
func FromDegrees(angle float64) Rotation {
	return FromAngle(angle * math.Pi / 180)
}

// FromPolar returns the complex number with the given magnitude and
// phase.
func FromPolar(magnitude, phase float64) Rotation {
	return Rotation(cmplx.Rect(magnitude, phase))
}

// FromVec returns the complex number whose real and imaginary parts
// are the X and Y components of v. It is not normalized.
func FromVec(v Vec) Rotation {
	return Rotation(complex(v.X, v.Y))
}

// Sign returns Identity if f is positive and the rotation by half a
// turn if f is negative, following the sign bit as math.Copysign
// does.
func Sign(f float64) Rotation {
	return Rotation(complex(math.Copysign(1, f), 0))
}

func (r Rotation) String() string {
	re, im := r.Real(), r.Imag()
	if im < 0 {
		return fmt.Sprintf("%v - %vi", re, -im)
	}
	return fmt.Sprintf("%v + %vi", re, im)
}

// Real returns the real part of r, the cosine of its angle.
func (r Rotation) Real() float64 { return real(r) }

// Imag returns the imaginary part of r, the sine of its angle.
func (r Rotation) Imag() float64 { return imag(r) }

// Vec returns r as a vector. For a normalized rotation this is the
// unit vector pointing in the direction of its angle.
func (r Rotation) Vec() Vec {
	return Vec{X: real(r), Y: imag(r)}
}

// Conj returns the complex conjugate of r, which for a normalized
// rotation is its inverse.
func (r Rotation) Conj() Rotation {
	return Rotation(cmplx.Conj(complex128(r)))
}

// Angle returns the angle of r in radians in the range [-π, π].
func (r Rotation) Angle() float64 {
	return cmplx.Phase(complex128(r))
}

// Magnitude returns the absolute value of r.
func (r Rotation) Magnitude() float64 {
	return cmplx.Abs(complex128(r))
}

// Normalized returns r scaled to unit magnitude. A zero r is returned
// unchanged.
func (r Rotation) Normalized() Rotation {
	m := r.Magnitude()
	if m == 0 {
		return r
	}
	return Rotation(complex(real(r)/m, imag(r)/m))
}

// Rotate returns v rotated by r around the origin.
func (r Rotation) Rotate(v Vec) Vec {
	re, im := real(r), imag(r)
	return Vec{
		X: v.X*re - v.Y*im,
		Y: v.Y*re + v.X*im,
	}
}

// Approx returns true if the real and imaginary parts of r are each
// within epsilon of those of s.
func (r Rotation) Approx(s Rotation, epsilon float64) bool {
	return math.Abs(real(r)-real(s)) <= epsilon && math.Abs(imag(r)-imag(s)) <= epsilon
}

// Nlerp returns the normalized linear interpolation between the
// rotations a and b. The linear velocity of the interpolation is
// constant but its angular velocity is not, so it is only a good
// approximation of Slerp for small angles between a and b.
//
// If the interpolated value is too close to zero to be normalized,
// which happens halfway between opposite rotations, a is returned for
// t < 0.5 and b otherwise.
func Nlerp(a, b Rotation, t float64) Rotation {
	re := real(a) + (real(b)-real(a))*t
	im := imag(a) + (imag(b)-imag(a))*t
	m := math.Hypot(re, im)
	if m > 0.00001 {
		return Rotation(complex(re/m, im/m))
	}
	if t < 0.5 {
		return a
	}
	return b
}

// Slerp returns the spherical linear interpolation between the
// rotations a and b, always following the shorter path between them.
// The angular velocity of the interpolation is constant. t is not
// clamped, but results are most accurate for t in [0, 1].
func Slerp(a, b Rotation, t float64) Rotation {
	c := complex128(a.Conj() * b)
	p := math.Pow(cmplx.Abs(c), t)
	sin, cos := math.Sincos(t * cmplx.Phase(c))
	return a * Rotation(complex(p*cos, p*sin))
}
