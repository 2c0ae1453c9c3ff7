package geom

import "golang.org/x/image/math/f64"

// Aff3 returns the affine matrix that rotates by r and then translates
// by t, in the row-major layout used by golang.org/x/image/draw:
//
//	| re -im t.X |
//	| im  re t.Y |
func (r Rotation) Aff3(t Vec) f64.Aff3 {
	re, im := real(r), imag(r)
	return f64.Aff3{
		re, -im, t.X,
		im, re, t.Y,
	}
}

// Apply returns v transformed by the affine matrix m.
func Apply(m f64.Aff3, v Vec) Vec {
	return Vec{
		X: m[0]*v.X + m[1]*v.Y + m[2],
		Y: m[3]*v.X + m[4]*v.Y + m[5],
	}
}

// Vec2 returns p as an f64.Vec2.
func Vec2(p Vec) f64.Vec2 {
	return f64.Vec2{p.X, p.Y}
}
