package advanced

import "math"

// DefaultTolerance is the squared-distance cutoff below which two points
// are considered coincident by the fuzzy comparison. Matching near this
// scale is approximate only: distinct input points closer together than
// the tolerance still keep their own identity in the output, but they will
// both register as "touching" the same super tetrahedron corner if they
// ever get that close to one.
const DefaultTolerance = 0.01

// NaN and infinities poison both the predicate arithmetic and map keys, so
// they are rejected at the boundary.
func validCoordinate(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
