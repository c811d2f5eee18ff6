package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	. "github.com/osuushi/tetrahedralize"
)

// Demo of tetrahedralization from the command line. Input on stdin should
// be newline separated points in the form "x y z". The resulting Delaunay
// edges are printed one per line.
func main() {
	points := readPoints(os.Stdin)
	fmt.Printf("Read %d points\n", len(points))

	edges, err := Tetrahedralize(points)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Found %d edges\n", len(edges))
	for edge := range edges {
		fmt.Printf("(%g %g %g) - (%g %g %g)\n",
			edge.A.X, edge.A.Y, edge.A.Z,
			edge.B.X, edge.B.Y, edge.B.Z)
	}
}

func readPoints(in *os.File) []Point {
	points := []Point{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		points = append(points, parsePoint(line))
	}
	return points
}

func parsePoint(line string) Point {
	parts := strings.Fields(line)
	x, _ := strconv.ParseFloat(parts[0], 64)
	y, _ := strconv.ParseFloat(parts[1], 64)
	z, _ := strconv.ParseFloat(parts[2], 64)
	return NewPoint(x, y, z)
}
