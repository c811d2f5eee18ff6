package advanced

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/logrusorgru/aurora"

	"github.com/osuushi/tetrahedralize/dbg"
)

// Everything in the triangulation is a plain value. Points are comparable
// structs, so they can key maps and sets directly with structural equality,
// and no cell ever shares mutable state with the faces or edges derived
// from it.

type Point r3.Vector

func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Vector returns the point as an r3.Vector for vector arithmetic.
func (p Point) Vector() r3.Vector {
	return r3.Vector(p)
}

// AlmostEqual reports whether the squared distance between two points is
// below tolerance. This is a deduplication aid, not an identity: it is not
// transitive, so it must never stand in for the structural equality that
// keys maps and sets.
func (p Point) AlmostEqual(q Point, tolerance float64) bool {
	return p.Vector().Sub(q.Vector()).Norm2() < tolerance
}

// less orders points lexicographically by X, then Y, then Z.
func (p Point) less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.Z < q.Z
}

type PointSet map[Point]struct{}

// An Edge is one undirected segment of the final graph. The constructor
// canonicalizes endpoint order, so an edge compares and hashes the same no
// matter which direction it was built in.
type Edge struct {
	A, B Point
}

func NewEdge(a, b Point) Edge {
	if b.less(a) {
		a, b = b, a
	}
	return Edge{a, b}
}

type EdgeSet map[Edge]struct{}

func (s EdgeSet) Contains(a, b Point) bool {
	_, ok := s[NewEdge(a, b)]
	return ok
}

// A Face is one triangular face of a cell. Faces only live for a single
// insertion step, while the cavity boundary is being worked out.
type Face struct {
	A, B, C Point
}

func NewFace(a, b, c Point) Face {
	return Face{a, b, c}
}

// canonical returns the face with its vertices sorted, so that two faces
// built from the same three points in any order produce the same value.
func (f Face) canonical() Face {
	a, b, c := f.A, f.B, f.C
	if b.less(a) {
		a, b = b, a
	}
	if c.less(b) {
		b, c = c, b
	}
	if b.less(a) {
		a, b = b, a
	}
	return Face{a, b, c}
}

// AlmostEqual reports whether two faces cover the same triangle up to the
// fuzzy point comparison: every vertex of f must match some vertex of g, in
// any pairing.
func (f Face) AlmostEqual(g Face, tolerance float64) bool {
	match := func(p Point) bool {
		return p.AlmostEqual(g.A, tolerance) ||
			p.AlmostEqual(g.B, tolerance) ||
			p.AlmostEqual(g.C, tolerance)
	}
	return match(f.A) && match(f.B) && match(f.C)
}

// A Cell is one tetrahedron of the evolving triangulation.
type Cell struct {
	A, B, C, D Point
}

func NewCell(a, b, c, d Point) Cell {
	return Cell{a, b, c, d}
}

// Faces enumerates the four triangular faces of the cell.
func (c Cell) Faces() [4]Face {
	return [4]Face{
		NewFace(c.A, c.B, c.C),
		NewFace(c.A, c.B, c.D),
		NewFace(c.A, c.C, c.D),
		NewFace(c.B, c.C, c.D),
	}
}

// Edges enumerates the six edges of the cell.
func (c Cell) Edges() [6]Edge {
	return [6]Edge{
		NewEdge(c.A, c.B),
		NewEdge(c.B, c.C),
		NewEdge(c.C, c.A),
		NewEdge(c.D, c.A),
		NewEdge(c.D, c.B),
		NewEdge(c.D, c.C),
	}
}

// ContainsVertex reports whether p fuzzily matches one of the cell's
// vertices. Used to find cells that lean on the super tetrahedron.
func (c Cell) ContainsVertex(p Point, tolerance float64) bool {
	return p.AlmostEqual(c.A, tolerance) ||
		p.AlmostEqual(c.B, tolerance) ||
		p.AlmostEqual(c.C, tolerance) ||
		p.AlmostEqual(c.D, tolerance)
}

func (c Cell) String() string {
	return fmt.Sprintf("Cell %s <%v %v %v %v>", c.DbgName(), c.A, c.B, c.C, c.D)
}

func (c Cell) DbgName() string {
	// Flat (coplanar) cells get no circumsphere, so color them red
	name := dbg.Name(c)
	if Orient3D(c.A, c.B, c.C, c.D) == 0 {
		name = aurora.Red(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return name
}
