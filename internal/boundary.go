package internal

// assignBoundary handles a query point lying on edge number slot, from vertex
// e.I to vertex e.J. The interpolant there is the cubic Hermite blend along
// the edge, so only the edge's own endpoints and tangential slots take part.
func assignBoundary(vertices []Point, query Point, e Edge, slot int, out *Coordinates) {
	clear(out.Value)
	clear(out.NormalGrad)
	clear(out.TangentGrad)

	distI := vertices[e.I].Sub(query).Abs()
	distJ := vertices[e.J].Sub(query).Abs()
	distIJ := vertices[e.J].Sub(vertices[e.I]).Abs()

	alphaI := distJ / (distI + distJ)
	alphaJ := distI / (distI + distJ)
	cubicI := alphaI * alphaI * alphaJ
	cubicJ := alphaJ * alphaJ * alphaI

	out.Value[e.I] = alphaI + cubicI - cubicJ
	out.Value[e.J] = alphaJ + cubicJ - cubicI
	out.TangentGrad[2*slot] = distIJ * cubicI
	out.TangentGrad[2*slot+1] = distIJ * cubicJ
	out.OnBoundary = true
	out.BoundaryEdge = slot
}
