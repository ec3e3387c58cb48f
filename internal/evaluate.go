package internal

import (
	"math"

	"github.com/pkg/errors"
)

// SingularTolerance is the relative size, against the sum of absolute edge
// contributions, below which a moment counts as cancelled to rounding noise.
// A·(B×C) is trilinear in the moments, so it is compared against the cube.
const SingularTolerance = 1e-10

// EdgeSource enumerates the directed boundary edges of a domain.
type EdgeSource interface {
	Len() int
	Edge(k int) Edge
}

// Cycle is the implicit boundary of a simple polygon with n vertices: edge k
// runs from vertex k to vertex k+1 mod n.
type Cycle int

func (c Cycle) Len() int { return int(c) }

func (c Cycle) Edge(k int) Edge { return Edge{k, CircularIndex(k+1, int(c))} }

// EdgeList is an explicit boundary, possibly made of several loops.
type EdgeList []Edge

func (l EdgeList) Len() int { return len(l) }

func (l EdgeList) Edge(k int) Edge { return l[k] }

// Coordinates are the cubic mean value coordinates of one query point.
//
// Value has one entry per vertex. NormalGrad and TangentGrad have two entries
// per edge: slot 2k belongs to the start vertex of edge k and slot 2k+1 to its
// end vertex. Normal slots weigh the derivative along the edge's inward
// normal; tangent slots weigh the derivative along the edge, pointing away
// from the slot's own vertex.
type Coordinates struct {
	Value       []float64
	NormalGrad  []float64
	TangentGrad []float64

	// Set when the query point lies on an edge, in which case only that edge
	// contributes.
	OnBoundary   bool
	BoundaryEdge int
}

func (c *Coordinates) reset(vertices, edges int) {
	c.Value = resize(c.Value, vertices)
	c.NormalGrad = resize(c.NormalGrad, 2*edges)
	c.TangentGrad = resize(c.TangentGrad, 2*edges)
	c.OnBoundary = false
	c.BoundaryEdge = -1
}

// Workspace holds the scratch state of one evaluation: the A, B and C moments
// of the three trial kernels and their coefficient tables. A Workspace may be
// reused for any number of evaluations, but not concurrently.
type Workspace struct {
	a, b, c                [3]float64
	scaleA, scaleB, scaleC [3]float64

	value   [3][]float64
	normal  [3][]float64
	tangent [3][]float64
}

func (w *Workspace) reset(vertices, edges int) {
	w.a, w.b, w.c = [3]float64{}, [3]float64{}, [3]float64{}
	w.scaleA, w.scaleB, w.scaleC = [3]float64{}, [3]float64{}, [3]float64{}
	for t := range w.value {
		w.value[t] = resize(w.value[t], vertices)
		w.normal[t] = resize(w.normal[t], 2*edges)
		w.tangent[t] = resize(w.tangent[t], 2*edges)
	}
}

func resize(s []float64, n int) []float64 {
	if cap(s) < n {
		return make([]float64, n)
	}
	s = s[:n]
	clear(s)
	return s
}

// Evaluate computes the coordinates of query with respect to the boundary
// described by vertices and edges, writing them to out. The boundary is
// assumed valid; see IsValidPolygon and ValidateEdges.
func (w *Workspace) Evaluate(vertices []Point, edges EdgeSource, query Point, out *Coordinates) error {
	for i, v := range vertices {
		if v == query {
			return errors.Wrapf(ErrCoincidentQuery, "vertex %d at (%g, %g)", i, v.X, v.Y)
		}
	}

	n := edges.Len()
	out.reset(len(vertices), n)
	w.reset(len(vertices), n)
	for k := 0; k < n; k++ {
		e := edges.Edge(k)
		a := vertices[e.I].Sub(query)
		b := vertices[e.J].Sub(query)
		if nearlyCollinear(a, b) {
			if straddlesOrigin(a, b) {
				Logger().Debug("query point on boundary", "edge", k, "from", e.I, "to", e.J)
				assignBoundary(vertices, query, e, k, out)
				return nil
			}
			// The edge points straight at the query point and sweeps no angle.
			Logger().Debug("skipping radial edge", "edge", k, "from", e.I, "to", e.J)
			continue
		}
		frame := newEdgeFrame(a, b)
		w.accumulate(&frame, e, k)
	}

	lambda, err := w.solve()
	if err != nil {
		Logger().Debug("singular weight system", "query", query, "error", err)
		return err
	}
	w.combine(lambda, out)

	for i, v := range out.Value {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrSingularSystem, "value coordinate %d is not finite", i)
		}
	}
	return nil
}

// solve picks the blend λ of the three trial kernels with λ·B = λ·C = 0, which
// removes the unknown gradient at the query point, and λ·A = 1.
func (w *Workspace) solve() ([3]float64, error) {
	b, c := w.b, w.c
	lambda := [3]float64{
		b[1]*c[2] - b[2]*c[1],
		b[2]*c[0] - b[0]*c[2],
		b[0]*c[1] - b[1]*c[0],
	}
	s := w.a[0]*lambda[0] + w.a[1]*lambda[1] + w.a[2]*lambda[2]

	scale := norm(w.scaleA) * norm(w.scaleB) * norm(w.scaleC)
	if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) || math.Abs(s) <= SingularTolerance*SingularTolerance*SingularTolerance*scale {
		return lambda, errors.Wrapf(ErrSingularSystem, "A·λ = %g against moment scale %g", s, scale)
	}
	for t := range lambda {
		lambda[t] /= s
	}
	return lambda, nil
}

func (w *Workspace) combine(lambda [3]float64, out *Coordinates) {
	for k := range out.Value {
		out.Value[k] = lambda[0]*w.value[0][k] + lambda[1]*w.value[1][k] + lambda[2]*w.value[2][k]
	}
	for k := range out.NormalGrad {
		out.NormalGrad[k] = lambda[0]*w.normal[0][k] + lambda[1]*w.normal[1][k] + lambda[2]*w.normal[2][k]
		out.TangentGrad[k] = lambda[0]*w.tangent[0][k] + lambda[1]*w.tangent[1][k] + lambda[2]*w.tangent[2][k]
	}
}

func norm(v [3]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}
