// A 3D Delaunay tetrahedralization package for Go.
//
// This package connects a set of points in space into the edge skeleton of
// their Delaunay tetrahedralization: the graph of point pairs that share
// an edge of some tetrahedron whose circumsphere contains no other input
// point.
package tetrahedralize

import "github.com/osuushi/tetrahedralize/advanced"

type Point = advanced.Point
type Edge = advanced.Edge
type EdgeSet = advanced.EdgeSet

func NewPoint(x, y, z float64) Point {
	return advanced.NewPoint(x, y, z)
}

// Compute the Delaunay tetrahedralization of a set of points and flatten
// it into the set of undirected edges connecting Delaunay neighbors.
//
// The result is nil when points is empty, and an empty set when too few
// distinct points remain to span any tetrahedron. Every edge endpoint is
// one of the input points. Coordinates must be finite: NaN or infinite
// values produce an error.
//
// Repeated points are merged. The order of the points is irrelevant. See
// the readme for more details.
func Tetrahedralize(points []Point) (result EdgeSet, err error) {
	defer func() {
		recoveredErr := advanced.HandleTetrahedralizePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	tz := advanced.Tetrahedralizer{}
	return tz.Tetrahedralize(points), nil
}
