package advanced

// Incremental (Bowyer-Watson) construction of the 3D Delaunay
// tetrahedralization. Points are inserted one at a time into a working
// cell collection seeded with a super tetrahedron: each insertion removes
// every cell whose circumsphere the point violates, and patches the
// resulting cavity with new cells connecting its boundary faces to the
// point. Insertion order is a strict sequential dependency; only the final
// triangulation is order-independent.

// A Tetrahedralizer computes Delaunay tetrahedralizations. The zero value
// is ready to use.
type Tetrahedralizer struct {
	// Tolerance is the squared-distance cutoff for the fuzzy point
	// comparison, used to detect cells touching a super tetrahedron corner.
	// Zero means DefaultTolerance.
	Tolerance float64
}

func (tz *Tetrahedralizer) tolerance() float64 {
	if tz.Tolerance == 0 {
		return DefaultTolerance
	}
	return tz.Tolerance
}

// Tetrahedralize computes the Delaunay tetrahedralization of points and
// flattens it into the set of undirected edges connecting Delaunay
// neighbors. It returns nil for empty input. Otherwise every edge endpoint
// is one of the input points; in particular the set is empty (but not nil)
// when too few distinct points remain to span a tetrahedron. Coordinates
// must be finite, or the validation throws for the public API to recover.
func (tz *Tetrahedralizer) Tetrahedralize(points []Point) EdgeSet {
	if len(points) == 0 {
		return nil
	}

	distinct := dedupePoints(points)
	cells, super := tz.buildCells(distinct)

	// Cells that lean on the super tetrahedron are scaffolding, not part of
	// the triangulation of the input.
	tol := tz.tolerance()
	edges := make(EdgeSet)
	for _, cell := range cells {
		if cell.ContainsVertex(super.A, tol) ||
			cell.ContainsVertex(super.B, tol) ||
			cell.ContainsVertex(super.C, tol) ||
			cell.ContainsVertex(super.D, tol) {
			continue
		}
		for _, e := range cell.Edges() {
			edges[e] = struct{}{}
		}
	}
	return edges
}

// buildCells runs the incremental construction and returns the final cell
// collection along with the super tetrahedron it was seeded with. Cells
// touching the super tetrahedron's corners are still present; the caller
// filters them out.
func (tz *Tetrahedralizer) buildCells(points []Point) ([]Cell, Cell) {
	super := makeSuperTetrahedron(points)
	cells := []Cell{super}

	for _, p := range points {
		// Collect the faces of every cell whose circumsphere p violates,
		// counting occurrences under a canonical key. A face shared by two
		// violated cells is interior to the cavity; a face seen exactly once
		// is on the cavity boundary.
		faceCount := make(map[Face]int)
		var candidates []Face
		kept := cells[:0]
		for _, cell := range cells {
			if InSphereSign(cell.A, cell.B, cell.C, cell.D, p) > 0 {
				for _, f := range cell.Faces() {
					key := f.canonical()
					faceCount[key]++
					if faceCount[key] == 1 {
						candidates = append(candidates, key)
					}
				}
			} else {
				kept = append(kept, cell)
			}
		}
		cells = kept

		// Patch the cavity: one new cell per boundary face.
		for _, f := range candidates {
			if faceCount[f] != 1 {
				continue
			}
			cells = append(cells, NewCell(f.A, f.B, f.C, p))
		}
	}
	return cells, super
}

// dedupePoints validates coordinates and drops structurally repeated
// points. Re-inserting a point that is already a vertex of the
// triangulation would carve an empty cavity and corrupt the cell
// collection, so repeats are merged up front.
func dedupePoints(points []Point) []Point {
	seen := make(PointSet, len(points))
	distinct := make([]Point, 0, len(points))
	for _, p := range points {
		if !validCoordinate(p.X) || !validCoordinate(p.Y) || !validCoordinate(p.Z) {
			fatalf("point has non-finite coordinates: (%v, %v, %v)", p.X, p.Y, p.Z)
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		distinct = append(distinct, p)
	}
	return distinct
}
