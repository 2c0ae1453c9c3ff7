package xshape

// Tolerances used by shape queries and transforms.
const (
	// PivotEpsilon is the distance under which a shape's center is
	// considered to coincide with the pivot of a RotatedAroundPointTo
	// call. Such a shape has no arm to swing around the pivot and is
	// rotated in place instead.
	PivotEpsilon = 0.00001

	// SectorBias is added, in radians, to the angle of a point before
	// it is assigned to a sector of a regular polygon so that points
	// lying exactly on a sector boundary land in the same sector
	// regardless of floating-point noise.
	SectorBias = 0.001

	// ApproxEpsilon is the tolerance used when a query has to decide
	// whether a point lies on a shape without area, such as a line
	// segment.
	ApproxEpsilon = 0.00001
)
