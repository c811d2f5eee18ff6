package advanced

import (
	"embed"
	"log"
	"strconv"
	"strings"
)

// Fixtures are plain text point clouds, one "x y z" point per line, with
// all coordinates on a quarter-unit grid so that affine transforms of them
// stay exact in float64. They are available by name in the fixtures/
// directory, sans extension. If anything goes wrong, the loader bails.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	data, err := fixtures.ReadFile("fixtures/" + name + ".txt")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	points := []Point{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 3 {
			log.Fatalf("Invalid point line %q in fixture %q", line, name)
		}
		var coords [3]float64
		for i, part := range parts {
			v, err := strconv.ParseFloat(part, 64)
			if err != nil {
				log.Fatalf("Invalid coordinate %q in fixture %q: %v", part, name, err)
			}
			coords[i] = v
		}
		points = append(points, NewPoint(coords[0], coords[1], coords[2]))
	}
	return points
}
