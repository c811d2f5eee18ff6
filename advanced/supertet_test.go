package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// containsPoint reports whether p lies strictly inside cell: p must be on
// the same side of each face as the vertex opposite that face.
func containsPoint(c Cell, p Point) bool {
	faces := [4][4]Point{
		{c.A, c.B, c.C, c.D},
		{c.A, c.B, c.D, c.C},
		{c.A, c.C, c.D, c.B},
		{c.B, c.C, c.D, c.A},
	}
	for _, f := range faces {
		if Orient3D(f[0], f[1], f[2], p) != Orient3D(f[0], f[1], f[2], f[3]) {
			return false
		}
	}
	return true
}

func TestMakeSuperTetrahedronContainsPoints(t *testing.T) {
	points := cubePoints()
	super := makeSuperTetrahedron(points)
	for _, p := range points {
		assert.True(t, containsPoint(super, p), "super tetrahedron should contain %v", p)
	}
}

func TestMakeSuperTetrahedronCloud(t *testing.T) {
	points := LoadFixture("cloud")
	super := makeSuperTetrahedron(points)
	for _, p := range points {
		assert.True(t, containsPoint(super, p), "super tetrahedron should contain %v", p)
	}
}

func TestMakeSuperTetrahedronSinglePoint(t *testing.T) {
	p := NewPoint(3, -2, 7)
	super := makeSuperTetrahedron([]Point{p})
	assert.True(t, containsPoint(super, p))
	assert.NotZero(t, Orient3D(super.A, super.B, super.C, super.D))
}
