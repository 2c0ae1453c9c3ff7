// Package format packs colors into fixed-size pixel formats.
package format

import (
	"encoding/binary"
)

// Format is a 32-bit pixel format. This package contains several
// predefined formats, such as [RGBA8888].
type Format interface {
	// Size returns the number of bytes per pixel.
	Size() int

	// Read reads raw pixel data and converts it to alpha-premultiplied
	// RGBA values, similar to color.Color's RGBA method.
	Read([]byte) (r, g, b, a uint32)

	// Write writes alpha-premultiplied RGBA values into buf.
	Write(buf []byte, r, g, b, a uint32)
}

// Various predefined Formats.
var (
	RGBA8888 formatRGBA8888
	ARGB8888 formatARGB8888
)

// Pack writes c into buf using f.
func Pack(f Format, buf []byte, c Color32) {
	r, g, b, a := c.RGBA()
	f.Write(buf, r, g, b, a)
}

// Unpack reads a Color32 from buf using f.
func Unpack(f Format, buf []byte) Color32 {
	r, g, b, a := f.Read(buf)
	return FromColor(premultiplied{r, g, b, a})
}

type premultiplied [4]uint32

func (p premultiplied) RGBA() (r, g, b, a uint32) { return p[0], p[1], p[2], p[3] }

// formatRGBA8888 stores pixels with the same byte layout as Color32.
type formatRGBA8888 struct{}

func (formatRGBA8888) String() string { return "RGBA8888" }

func (formatRGBA8888) Size() int { return 4 }

func (formatRGBA8888) Read(data []byte) (r, g, b, a uint32) {
	return Color32(binary.LittleEndian.Uint32(data)).RGBA()
}

func (formatRGBA8888) Write(buf []byte, r, g, b, a uint32) {
	c := FromColor(premultiplied{r, g, b, a})
	binary.LittleEndian.PutUint32(buf, uint32(c))
}

type formatARGB8888 struct{}

func (formatARGB8888) String() string { return "ARGB8888" }

func (formatARGB8888) Size() int { return 4 }

func (formatARGB8888) Read(data []byte) (r, g, b, a uint32) {
	n := binary.LittleEndian.Uint32(data)
	return RGBA32(uint8(n>>16), uint8(n>>8), uint8(n), uint8(n>>24)).RGBA()
}

func (formatARGB8888) Write(buf []byte, r, g, b, a uint32) {
	c := FromColor(premultiplied{r, g, b, a})
	n := uint32(c.B()) | uint32(c.G())<<8 | uint32(c.R())<<16 | uint32(c.A())<<24
	binary.LittleEndian.PutUint32(buf, n)
}
