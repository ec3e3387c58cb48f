package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polygon is, then converts that into a CCW polygon. If anything goes
// wrong, it exits.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointStrings := strings.Fields(polygons[0].Attributes["points"])
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, Point{x, y})
	}

	// Ensure that the polygon is CCW
	if signedArea(points) < 0 {
		points = reversed(points)
	}
	return points
}

func signedArea(loop []Point) float64 {
	var area float64
	for i, p := range loop {
		area += p.Cross(loop[CircularIndex(i+1, len(loop))])
	}
	return area
}

func reversed(loop []Point) []Point {
	out := make([]Point, 0, len(loop))
	for i := len(loop) - 1; i >= 0; i-- {
		out = append(out, loop[i])
	}
	return out
}

// Some ad hoc code specified fixtures

func SimpleStar() []Point {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		radius := float64(outerRadius)
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{radius * math.Cos(angle), radius * math.Sin(angle)})
	}
	return points
}

// An 8x8 square with a 2x2 hole in the middle, as one vertex array. The outer
// loop is counterclockwise and the hole clockwise.
func SquareWithHole() ([]Point, EdgeList) {
	vertices := []Point{
		{0, 0}, {8, 0}, {8, 8}, {0, 8},
		{3, 3}, {3, 5}, {5, 5}, {5, 3},
	}
	edges := EdgeList{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
	}
	return vertices, edges
}

// A test function with its gradient.
type sampled struct {
	f    func(p Point) float64
	grad func(p Point) Point
}

func (s sampled) data(vertices []Point) ([]float64, []Point) {
	values := make([]float64, len(vertices))
	gradients := make([]Point, len(vertices))
	for i, v := range vertices {
		values[i] = s.f(v)
		gradients[i] = s.grad(v)
	}
	return values, gradients
}

var quadratic = sampled{
	f: func(p Point) float64 {
		return 1 + 2*p.X - p.Y + 0.5*p.X*p.X + 0.3*p.X*p.Y - 0.2*p.Y*p.Y
	},
	grad: func(p Point) Point {
		return Point{2 + p.X + 0.3*p.Y, -1 + 0.3*p.X - 0.4*p.Y}
	},
}

// Cubic whose normal derivative is linear along any axis-aligned edge.
var separableCubic = sampled{
	f: func(p Point) float64 {
		return quadratic.f(p) + 0.1*p.X*p.X*p.X - 0.05*p.Y*p.Y*p.Y
	},
	grad: func(p Point) Point {
		g := quadratic.grad(p)
		return Point{g.X + 0.3*p.X*p.X, g.Y - 0.15*p.Y*p.Y}
	},
}

var affine = sampled{
	f:    func(p Point) float64 { return 3 - 0.5*p.X + 1.25*p.Y },
	grad: func(p Point) Point { return Point{-0.5, 1.25} },
}
