package internal

import (
	"math"

	"github.com/pkg/errors"
)

const (
	// Relative tolerance on the signed area of an edge seen from the query
	// point, below which the edge counts as pointing straight at it.
	AreaTolerance = 1e-10
	// Relative slack allowed when deciding whether the query point lies
	// between the endpoints of such an edge.
	SegmentTolerance = 1e-10
)

// Edge is a directed boundary edge between two vertex indices. The interior of
// the domain lies to its left.
type Edge struct {
	I, J int
}

// Polygons need at least three vertices and no two cyclically consecutive
// vertices may coincide.
func IsValidPolygon(polygon []Point) bool {
	return ValidatePolygon(polygon) == nil
}

func ValidatePolygon(polygon []Point) error {
	n := len(polygon)
	if n < 3 {
		return errors.Wrapf(ErrInvalidPolygon, "%d vertices", n)
	}
	for i, p := range polygon {
		if p == polygon[CircularIndex(i+1, n)] {
			return errors.Wrapf(ErrInvalidPolygon, "vertex %d repeats vertex %d", CircularIndex(i+1, n), i)
		}
	}
	for i, p := range polygon {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return errors.Wrapf(ErrInvalidPolygon, "vertex %d is not finite", i)
		}
	}
	return nil
}

// ValidateEdges checks an explicit edge list against its vertex array: every
// index must be in range, no edge may have zero length, and every vertex must
// be left by as many edges as enter it, so the edges close into loops.
func ValidateEdges(vertices []Point, edges []Edge) error {
	n := len(vertices)
	if n < 3 {
		return errors.Wrapf(ErrInvalidPolygon, "%d vertices", n)
	}
	if len(edges) < 3 {
		return errors.Wrapf(ErrInvalidPolygon, "%d edges", len(edges))
	}
	for i, p := range vertices {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return errors.Wrapf(ErrInvalidPolygon, "vertex %d is not finite", i)
		}
	}

	balance := make([]int, n)
	for k, e := range edges {
		if e.I < 0 || e.I >= n || e.J < 0 || e.J >= n {
			return errors.Wrapf(ErrInvalidPolygon, "edge %d (%d, %d) is out of range for %d vertices", k, e.I, e.J, n)
		}
		if vertices[e.I] == vertices[e.J] {
			return errors.Wrapf(ErrInvalidPolygon, "edge %d (%d, %d) has zero length", k, e.I, e.J)
		}
		balance[e.I]++
		balance[e.J]--
	}
	for i, b := range balance {
		if b != 0 {
			return errors.Wrapf(ErrInvalidPolygon, "edges do not close at vertex %d", i)
		}
	}
	return nil
}

// IsCollinearThroughOrigin reports whether the segment from a to b passes
// through the origin, up to floating point tolerance. With a and b given
// relative to a query point, this detects the query point lying on the edge.
func IsCollinearThroughOrigin(a, b Vec) bool {
	return nearlyCollinear(a, b) && straddlesOrigin(a, b)
}

// The line through a and b passes (numerically) through the origin.
func nearlyCollinear(a, b Vec) bool {
	return math.Abs(a.Cross(b)) < AreaTolerance*b.Sub(a).AbsSquared()
}

// For collinear a and b, the origin lies between them exactly when
// |a|²+|b|² <= |a-b|², i.e. a·b <= 0.
func straddlesOrigin(a, b Vec) bool {
	return a.AbsSquared()+b.AbsSquared() <= (1+SegmentTolerance)*b.Sub(a).AbsSquared()
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
