// Cubic mean value coordinates for planar polygons.
//
// Given a polygon, which may be non-convex and may contain holes, and a query
// point inside it, this package computes weights that blend values and
// directional derivatives given at the polygon's vertices into a value at the
// query point. The blend interpolates the boundary data, where it is a cubic
// Hermite curve along each edge, and reproduces quadratic functions exactly.
// Every integral involved is evaluated in closed form.
package cubicmvc

import (
	"log/slog"

	"github.com/osuushi/cubicmvc/internal"
)

type Point = internal.Point
type Edge = internal.Edge
type Coordinates = internal.Coordinates

var (
	ErrInvalidPolygon  = internal.ErrInvalidPolygon
	ErrCoincidentQuery = internal.ErrCoincidentQuery
	ErrSingularSystem  = internal.ErrSingularSystem
)

// Compute the coordinates of query inside a simple polygon.
//
// The polygon's points must be given counterclockwise, so that the interior is
// to the left of each edge. Edge k runs from point k to point k+1, wrapping
// around, so the gradient coordinates have 2*len(polygon) entries.
//
// A query point lying on an edge gets the edge's Hermite blend, reported
// through Coordinates.OnBoundary. A query point equal to a vertex fails with
// ErrCoincidentQuery.
func Evaluate(polygon []Point, query Point) (result *Coordinates, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	if err := internal.ValidatePolygon(polygon); err != nil {
		return nil, err
	}
	var workspace internal.Workspace
	result = &Coordinates{}
	if err := workspace.Evaluate(polygon, internal.Cycle(len(polygon)), query, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Compute the coordinates of query inside a domain bounded by one or more
// loops of directed edges over a shared vertex array.
//
// Each edge must have the interior on its left: the outer loop runs
// counterclockwise and holes run clockwise. The gradient coordinates have
// 2*len(edges) entries.
func EvaluateEdges(polygon []Point, edges []Edge, query Point) (result *Coordinates, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	if err := internal.ValidateEdges(polygon, edges); err != nil {
		return nil, err
	}
	var workspace internal.Workspace
	result = &Coordinates{}
	if err := workspace.Evaluate(polygon, internal.EdgeList(edges), query, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Blend vertex values and gradients using coordinates from Evaluate or
// EvaluateEdges. Pass the same polygon and edges (nil for the simple polygon
// form) that produced the coordinates.
func Interpolate(polygon []Point, edges []Edge, c *Coordinates, values []float64, gradients []Point) (float64, error) {
	if edges == nil {
		return internal.Interpolate(polygon, internal.Cycle(len(polygon)), c, values, gradients)
	}
	return internal.Interpolate(polygon, internal.EdgeList(edges), c, values, gradients)
}

// SetLogger enables debug output (boundary hits, skipped edges, singular
// solves). By default nothing is logged. Pass nil to silence it again.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}
