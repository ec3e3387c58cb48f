package internal

import "github.com/pkg/errors"

// Interpolate blends vertex values and vertex gradients with coordinates
// computed for the same boundary. Each gradient is projected onto the
// directions its slots measure: the inward normal of the edge, and the edge
// direction pointing away from the slot's vertex.
func Interpolate(vertices []Point, edges EdgeSource, c *Coordinates, values []float64, gradients []Point) (float64, error) {
	if len(values) != len(vertices) || len(gradients) != len(vertices) {
		return 0, errors.Errorf("got %d values and %d gradients for %d vertices", len(values), len(gradients), len(vertices))
	}
	if len(c.Value) != len(vertices) || len(c.NormalGrad) != 2*edges.Len() || len(c.TangentGrad) != 2*edges.Len() {
		return 0, errors.Errorf("coordinates do not match %d vertices and %d edges", len(vertices), edges.Len())
	}

	var sum float64
	for i, v := range values {
		sum += c.Value[i] * v
	}
	for k := 0; k < edges.Len(); k++ {
		e := edges.Edge(k)
		t := vertices[e.J].Sub(vertices[e.I]).Unit()
		n := t.RotateLeft()
		sum += c.NormalGrad[2*k]*gradients[e.I].Dot(n) + c.NormalGrad[2*k+1]*gradients[e.J].Dot(n)
		sum += c.TangentGrad[2*k]*gradients[e.I].Dot(t) - c.TangentGrad[2*k+1]*gradients[e.J].Dot(t)
	}
	return sum, nil
}
