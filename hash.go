package xshape

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// hashOf hashes a shape's kind together with its canonical parameters.
// Negative zero is folded into zero so that shapes which compare equal
// also hash equally.
func hashOf(kind string, values ...float64) uint64 {
	d := xxhash.New()
	d.WriteString(kind)

	var buf [8]byte
	for _, v := range values {
		if v == 0 {
			v = 0
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		d.Write(buf[:])
	}
	return d.Sum64()
}
