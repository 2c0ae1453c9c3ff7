package xshape_test

import (
	"errors"
	"testing"

	"deedles.dev/xshape/geom"
	"github.com/stretchr/testify/require"
)

const delta = 1e-4

func requireVec(t *testing.T, expected, actual geom.Vec) {
	t.Helper()
	require.InDelta(t, expected.X, actual.X, delta, "x of %v", actual)
	require.InDelta(t, expected.Y, actual.Y, delta, "y of %v", actual)
}

// grid returns sample points covering [-extent, extent] on both axes
// offset from center. The step is chosen so that samples do not land
// exactly on the boundaries of the shapes under test.
func grid(center geom.Vec, extent float64) []geom.Vec {
	const step = 0.137
	var points []geom.Vec
	for x := -extent + 0.011; x <= extent; x += step {
		for y := -extent + 0.007; y <= extent; y += step {
			points = append(points, center.Add(geom.Pt(x, y)))
		}
	}
	return points
}

// requirePanicsIs requires that f panics with an error that matches
// target.
func requirePanicsIs(t *testing.T, target error, f func()) {
	t.Helper()

	var err error
	func() {
		defer func() {
			err, _ = recover().(error)
		}()
		f()
	}()
	require.True(t, errors.Is(err, target), "recovered %v", err)
}
