package advanced

import "math"

// makeSuperTetrahedron builds one oversized cell that strictly contains
// every input point. Its apex sits one unit below the bounding box's
// minimum corner on every axis, and the other three vertices each reach
// out along a single axis. The reach has to clear the plane through the
// far face of the tetrahedron for the box's far corner on all three axes
// at once, so it must beat the sum of the padded extents, not just the
// largest one.
func makeSuperTetrahedron(points []Point) Cell {
	min := points[0]
	max := points[0]
	for _, p := range points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		min.Z = math.Min(min.Z, p.Z)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
		max.Z = math.Max(max.Z, p.Z)
	}

	d := 2 * math.Max(max.X-min.X, math.Max(max.Y-min.Y, max.Z-min.Z))
	reach := 2*d + 4

	a := NewPoint(min.X-1, min.Y-1, min.Z-1)
	return NewCell(
		a,
		NewPoint(a.X+reach, a.Y, a.Z),
		NewPoint(a.X, a.Y+reach, a.Z),
		NewPoint(a.X, a.Y, a.Z+reach),
	)
}
