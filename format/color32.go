package format

import (
	"fmt"
	"image/color"

	"deedles.dev/xshape/geom"
)

// Color32 is a non-premultiplied RGBA color packed into 32 bits, red
// in the lowest byte and alpha in the highest.
type Color32 uint32

// Predefined colors.
const (
	Black       Color32 = 0xFF000000
	White       Color32 = 0xFFFFFFFF
	Transparent Color32 = 0
)

// Color32Model converts arbitrary colors to Color32.
var Color32Model color.Model = color.ModelFunc(func(c color.Color) color.Color {
	if c, ok := c.(Color32); ok {
		return c
	}
	return FromColor(c)
})

// RGBA32 packs the given components into a Color32.
func RGBA32(r, g, b, a uint8) Color32 {
	return Color32(uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24)
}

// FromColor converts c, whose RGBA method returns alpha-premultiplied
// values, to a non-premultiplied Color32.
func FromColor(c color.Color) Color32 {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Transparent
	}
	return RGBA32(
		uint8(min(r*0xFFFF/a, 0xFFFF)>>8),
		uint8(min(g*0xFFFF/a, 0xFFFF)>>8),
		uint8(min(b*0xFFFF/a, 0xFFFF)>>8),
		uint8(a>>8),
	)
}

func (c Color32) String() string {
	return fmt.Sprintf("Color32(r=%v, g=%v, b=%v, a=%v)", c.R(), c.G(), c.B(), c.A())
}

// R returns the red component of c.
func (c Color32) R() uint8 { return uint8(c) }

// G returns the green component of c.
func (c Color32) G() uint8 { return uint8(c >> 8) }

// B returns the blue component of c.
func (c Color32) B() uint8 { return uint8(c >> 16) }

// A returns the alpha component of c.
func (c Color32) A() uint8 { return uint8(c >> 24) }

// Index returns the component of c at index i in the order red,
// green, blue, alpha. It panics with an error wrapping
// geom.ErrIndexOutOfRange if i is not in [0, 3].
func (c Color32) Index(i int) uint8 {
	if uint(i) >= 4 {
		panic(fmt.Errorf("color component %v: %w", i, geom.ErrIndexOutOfRange))
	}
	return uint8(c >> (i << 3))
}

// RGBA implements color.Color.
func (c Color32) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A()) * 0xFFFF / 0xFF
	r = uint32(c.R()) * a / 0xFF
	g = uint32(c.G()) * a / 0xFF
	b = uint32(c.B()) * a / 0xFF
	return
}
