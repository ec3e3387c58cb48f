package advanced

import "github.com/osuushi/cubicmvc/internal"

// Twice the signed area enclosed by a loop. Positive for counterclockwise
// loops.
func SignedArea(loop []Point) float64 {
	var area float64
	for i, p := range loop {
		area += p.Cross(loop[internal.CircularIndex(i+1, len(loop))])
	}
	return area
}

func IsCCW(loop []Point) bool {
	return SignedArea(loop) > 0
}

func Reverse(loop []Point) []Point {
	reversed := make([]Point, 0, len(loop))
	for i := len(loop) - 1; i >= 0; i-- {
		reversed = append(reversed, loop[i])
	}
	return reversed
}

// Loops merges an outer loop and any number of hole loops into one vertex
// array and the edge list that traces them. Loops are reoriented as needed so
// the outer loop runs counterclockwise and holes run clockwise, which puts the
// interior to the left of every edge. The input slices are not modified.
func Loops(outer []Point, holes ...[]Point) ([]Point, []Edge) {
	var vertices []Point
	var edges []Edge
	add := func(loop []Point, ccw bool) {
		if IsCCW(loop) != ccw {
			loop = Reverse(loop)
		}
		offset := len(vertices)
		vertices = append(vertices, loop...)
		for i := range loop {
			edges = append(edges, Edge{I: offset + i, J: offset + internal.CircularIndex(i+1, len(loop))})
		}
	}
	add(outer, true)
	for _, hole := range holes {
		add(hole, false)
	}
	return vertices, edges
}

// Crossing count helper for the even-odd rule. Counts the edges crossed by
// the ray from p toward +x.
func CrossingCount(vertices []Point, edges EdgeSource, p Point) int {
	crossingCount := 0
	for k := 0; k < edges.Len(); k++ {
		e := edges.Edge(k)
		a, b := vertices[e.I], vertices[e.J]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

// Even-odd point containment. Coordinates are only meaningful for points
// inside the domain; this lets callers filter queries before evaluating them.
func Contains(vertices []Point, edges EdgeSource, p Point) bool {
	return CrossingCount(vertices, edges, p)%2 == 1
}
