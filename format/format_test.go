package format_test

import (
	"errors"
	"image/color"
	"testing"

	"deedles.dev/xshape/format"
	"deedles.dev/xshape/geom"
	"github.com/stretchr/testify/require"
)

func TestColor32(t *testing.T) {
	c := format.RGBA32(0x11, 0x22, 0x33, 0xFF)
	require.Equal(t, uint8(0x11), c.R())
	require.Equal(t, uint8(0x22), c.G())
	require.Equal(t, uint8(0x33), c.B())
	require.Equal(t, uint8(0xFF), c.A())
	require.Equal(t, "Color32(r=17, g=34, b=51, a=255)", c.String())

	for i, v := range []uint8{0x11, 0x22, 0x33, 0xFF} {
		require.Equal(t, v, c.Index(i))
	}
}

func TestColor32IndexOutOfRange(t *testing.T) {
	for _, i := range []int{-1, 4} {
		func() {
			defer func() {
				err, ok := recover().(error)
				require.True(t, ok)
				require.True(t, errors.Is(err, geom.ErrIndexOutOfRange))
			}()
			format.White.Index(i)
		}()
	}
}

func TestColor32Model(t *testing.T) {
	require.Equal(t, format.Black, format.Color32Model.Convert(color.Black))
	require.Equal(t, format.White, format.Color32Model.Convert(color.White))
	require.Equal(t, format.Transparent, format.Color32Model.Convert(color.Transparent))

	c := format.RGBA32(1, 2, 3, 0xFF)
	require.Equal(t, c, format.Color32Model.Convert(c))
}

func TestFromColorClampsInvalidPremultiplied(t *testing.T) {
	// Channels larger than alpha are not valid premultiplied values.
	c := format.FromColor(color.RGBA64{R: 0xFFFF, G: 0x4000, B: 0x9000, A: 0x8000})
	require.Equal(t, uint8(0xFF), c.R())
	require.Equal(t, uint8(0x7F), c.G())
	require.Equal(t, uint8(0xFF), c.B())
	require.Equal(t, uint8(0x80), c.A())
}

func TestFormat(t *testing.T) {
	c := format.RGBA32(0x11, 0x22, 0x33, 0xFF)

	var data [4]byte
	format.Pack(format.ARGB8888, data[:], c)
	require.Equal(t, [...]byte{0x33, 0x22, 0x11, 0xFF}, data)
	require.Equal(t, c, format.Unpack(format.ARGB8888, data[:]))

	r, g, b, a := format.ARGB8888.Read(data[:])
	require.Equal(t, uint32(0x1111), r)
	require.Equal(t, uint32(0x2222), g)
	require.Equal(t, uint32(0x3333), b)
	require.Equal(t, uint32(0xFFFF), a)

	format.Pack(format.RGBA8888, data[:], c)
	require.Equal(t, [...]byte{0x11, 0x22, 0x33, 0xFF}, data)
	require.Equal(t, c, format.Unpack(format.RGBA8888, data[:]))
}
