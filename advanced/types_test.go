package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointAlmostEqual(t *testing.T) {
	p := NewPoint(0, 0, 0)
	assert.True(t, p.AlmostEqual(NewPoint(0.05, 0.05, 0.05), DefaultTolerance))
	assert.True(t, p.AlmostEqual(NewPoint(0.099, 0, 0), DefaultTolerance))
	// The cutoff is on squared distance, exclusive
	assert.False(t, p.AlmostEqual(NewPoint(0.1, 0, 0), DefaultTolerance))

	// Tightening the tolerance excludes points the default would match
	assert.False(t, p.AlmostEqual(NewPoint(0.05, 0.05, 0.05), 1e-6))
}

func TestPointAlmostEqualIsNotTransitive(t *testing.T) {
	a := NewPoint(0, 0, 0)
	b := NewPoint(0.09, 0, 0)
	c := NewPoint(0.18, 0, 0)
	assert.True(t, a.AlmostEqual(b, DefaultTolerance))
	assert.True(t, b.AlmostEqual(c, DefaultTolerance))
	assert.False(t, a.AlmostEqual(c, DefaultTolerance))
}

func TestPointStructuralIdentity(t *testing.T) {
	set := make(PointSet)
	set[NewPoint(1, 2, 3)] = struct{}{}

	// Bit-for-bit equal coordinates find the same key; almost-equal ones
	// don't
	_, ok := set[NewPoint(1, 2, 3)]
	assert.True(t, ok)
	_, ok = set[NewPoint(1.0000001, 2, 3)]
	assert.False(t, ok)
}

func TestNewEdgeCanonicalizesDirection(t *testing.T) {
	a := NewPoint(1, 0, 0)
	b := NewPoint(0, 1, 0)
	assert.Equal(t, NewEdge(a, b), NewEdge(b, a))

	set := make(EdgeSet)
	set[NewEdge(a, b)] = struct{}{}
	set[NewEdge(b, a)] = struct{}{}
	assert.Len(t, set, 1)
	assert.True(t, set.Contains(a, b))
	assert.True(t, set.Contains(b, a))
}

func TestFaceCanonical(t *testing.T) {
	a := NewPoint(0, 0, 0)
	b := NewPoint(1, 0, 0)
	c := NewPoint(0, 1, 0)
	want := NewFace(a, b, c).canonical()
	orderings := []Face{
		{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a},
	}
	for _, f := range orderings {
		assert.Equal(t, want, f.canonical())
	}
}

func TestFaceAlmostEqual(t *testing.T) {
	f := NewFace(NewPoint(0, 0, 0), NewPoint(1, 0, 0), NewPoint(0, 1, 0))

	// Same triangle, permuted and jittered inside the tolerance
	g := NewFace(NewPoint(1, 0.05, 0), NewPoint(0.05, 1, 0), NewPoint(0, 0, 0.05))
	assert.True(t, f.AlmostEqual(g, DefaultTolerance))
	assert.True(t, g.AlmostEqual(f, DefaultTolerance))

	// Two shared vertices aren't enough
	h := NewFace(NewPoint(0, 0, 0), NewPoint(1, 0, 0), NewPoint(0, 0, 1))
	assert.False(t, f.AlmostEqual(h, DefaultTolerance))
}

func TestCellFacesAndEdges(t *testing.T) {
	a := NewPoint(0, 0, 0)
	b := NewPoint(1, 0, 0)
	c := NewPoint(0, 1, 0)
	d := NewPoint(0, 0, 1)
	cell := NewCell(a, b, c, d)

	faces := cell.Faces()
	assert.Len(t, faces, 4)
	assert.Contains(t, faces, NewFace(a, b, c))
	assert.Contains(t, faces, NewFace(b, c, d))

	set := make(EdgeSet)
	for _, e := range cell.Edges() {
		set[e] = struct{}{}
	}
	assert.Len(t, set, 6)
	assert.True(t, set.Contains(d, a))
	assert.True(t, set.Contains(c, b))
}

func TestCellContainsVertex(t *testing.T) {
	cell := NewCell(
		NewPoint(0, 0, 0),
		NewPoint(1, 0, 0),
		NewPoint(0, 1, 0),
		NewPoint(0, 0, 1),
	)
	assert.True(t, cell.ContainsVertex(NewPoint(0, 0, 1.05), DefaultTolerance))
	assert.False(t, cell.ContainsVertex(NewPoint(0.5, 0.5, 0.5), DefaultTolerance))
}
