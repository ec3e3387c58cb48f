// Package advanced exposes the pieces behind cubicmvc.Evaluate for callers who
// evaluate many points: reusable workspaces, explicit edge sources, loop
// assembly and parallel evaluation over a fixed domain.
package advanced

import (
	"github.com/osuushi/cubicmvc/internal"
	"github.com/pkg/errors"
)

type Point = internal.Point
type Edge = internal.Edge
type Coordinates = internal.Coordinates
type EdgeSource = internal.EdgeSource
type Cycle = internal.Cycle
type EdgeList = internal.EdgeList

var (
	ErrInvalidPolygon  = internal.ErrInvalidPolygon
	ErrCoincidentQuery = internal.ErrCoincidentQuery
	ErrSingularSystem  = internal.ErrSingularSystem
)

// Workspace owns the scratch tables of an evaluation and the coordinates it
// returns, so repeated evaluations against boundaries of the same size do not
// allocate. A Workspace must not be used from several goroutines at once.
type Workspace struct {
	scratch internal.Workspace
	result  internal.Coordinates
}

// Evaluate computes the coordinates of query. The boundary is not validated;
// see Validate. The returned coordinates belong to the workspace and are
// overwritten by the next call.
func (w *Workspace) Evaluate(vertices []Point, edges EdgeSource, query Point) (result *Coordinates, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	if err := w.scratch.Evaluate(vertices, edges, query, &w.result); err != nil {
		return nil, err
	}
	return &w.result, nil
}

// Validate checks a boundary before it is evaluated repeatedly. A Cycle is
// checked as a simple polygon, anything else as an edge list.
func Validate(vertices []Point, edges EdgeSource) error {
	if c, ok := edges.(Cycle); ok {
		if int(c) != len(vertices) {
			return errors.Wrapf(ErrInvalidPolygon, "cycle of %d edges over %d vertices", int(c), len(vertices))
		}
		return internal.ValidatePolygon(vertices)
	}
	list := make([]Edge, edges.Len())
	for k := range list {
		list[k] = edges.Edge(k)
	}
	return internal.ValidateEdges(vertices, list)
}

// Copy returns coordinates that no longer share storage with a workspace.
func Copy(c *Coordinates) *Coordinates {
	return &Coordinates{
		Value:        append([]float64(nil), c.Value...),
		NormalGrad:   append([]float64(nil), c.NormalGrad...),
		TangentGrad:  append([]float64(nil), c.TangentGrad...),
		OnBoundary:   c.OnBoundary,
		BoundaryEdge: c.BoundaryEdge,
	}
}
