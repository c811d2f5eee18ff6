package advanced

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 100

// Fold the Z axis into both screen axes for a cheap isometric projection.
func dbgProject(p Point) (x, y float64) {
	return p.X - p.Z*math.Cos(math.Pi/6), p.Y - p.Z*math.Sin(math.Pi/6)
}

func (s EdgeSet) dbgDraw(scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for edge := range s {
		for _, p := range []Point{edge.A, edge.B} {
			x, y := dbgProject(p)
			minX = math.Min(minX, x)
			minY = math.Min(minY, y)
			maxX = math.Max(maxX, x)
			maxY = math.Max(maxY, y)
		}
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for edge := range s {
		x1, y1 := dbgProject(edge.A)
		x2, y2 := dbgProject(edge.B)
		c.MoveTo(x1, y1)
		c.LineTo(x2, y2)
	}
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SavePNG("/tmp/edge_set.png")
	imgcat.CatFile("/tmp/edge_set.png", os.Stdout)
}
