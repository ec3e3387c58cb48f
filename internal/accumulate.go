package internal

import "math"

// The interpolant is built from three identities that hold exactly for any
// cubic f along every ray leaving the query point x. With F(r) = f(x + r·z)
// and F′ its derivative along the ray, Taylor expansion about x gives
//
//	∫ (2F − rF′)/r³ dθ       = 2f∫r⁻³ + fx∫cos r⁻² + fy∫sin r⁻²
//	∫ cosθ (3F − rF′)/r² dθ  = 3f∫cos r⁻² + 2fx∫cos² r⁻¹ + 2fy∫sin cos r⁻¹
//	∫ sinθ (3F − rF′)/r² dθ  = 3f∫sin r⁻² + 2fx∫sin cos r⁻¹ + 2fy∫sin² r⁻¹
//
// The quadratic Taylor term cancels in the first and integrates to zero
// against cosθ and sinθ in the others; the cubic term does the opposite. The
// right-hand sides are the A, B and C moments. The left-hand sides depend on
// the boundary data only, and are linear in it, which is what the coefficient
// tables record. Rays crossing the boundary several times pick up each
// crossing with the sign of dθ, so holes and non-convex boundaries need no
// special treatment.

type trialKernel struct {
	weight laurent
	alpha  float64
	order  int
}

var (
	cosLaurent = projectionLaurent(Vec{1, 0})
	sinLaurent = projectionLaurent(Vec{0, 1})

	// weight(θ)·(alpha·F − r·F′)/r^order
	trialKernels = [3]trialKernel{
		{constantLaurent(1), 2, 3},
		{cosLaurent, 3, 2},
		{sinLaurent, 3, 2},
	}
)

// Cubic Hermite basis on s ∈ [0, 1], as coefficients of 1, s, s², s³. The slope
// bases are scaled by the edge length when used, and both measure the
// derivative pointing into the edge from their own endpoint.
var (
	valueStart  = [4]float64{1, 0, -3, 2}
	valueEnd    = [4]float64{0, 0, 3, -2}
	slopeStart  = [4]float64{0, 1, -2, 1}
	slopeEnd    = [4]float64{0, 0, 1, -1}
	normalStart = [4]float64{1, -1, 0, 0}
	normalEnd   = [4]float64{0, 1, 0, 0}
)

func derivative(p [4]float64) [4]float64 {
	return [4]float64{p[1], 2 * p[2], 3 * p[3], 0}
}

// accumulate adds the contributions of edge number slot, running from vertex
// e.I to vertex e.J, to the workspace.
//
// Along the edge F is the Hermite blend of the endpoint values and slopes, and
// F′ = F_t·(t·z) + F_n·(n·z), with F_t the derivative of the blend and F_n the
// normal derivatives interpolated linearly.
func (w *Workspace) accumulate(f *edgeFrame, e Edge, slot int) {
	start, end := 2*slot, 2*slot+1
	for t, k := range trialKernels {
		tangential := k.weight.mul(f.tangent)
		normal := k.weight.mul(f.normal)
		radial := k.order - 1

		w.value[t][e.I] += k.alpha*f.integratePoly(k.weight, valueStart, k.order) -
			f.integratePoly(tangential, derivative(valueStart), radial)/f.length
		w.value[t][e.J] += k.alpha*f.integratePoly(k.weight, valueEnd, k.order) -
			f.integratePoly(tangential, derivative(valueEnd), radial)/f.length

		w.tangent[t][start] += k.alpha*f.length*f.integratePoly(k.weight, slopeStart, k.order) -
			f.integratePoly(tangential, derivative(slopeStart), radial)
		w.tangent[t][end] += k.alpha*f.length*f.integratePoly(k.weight, slopeEnd, k.order) -
			f.integratePoly(tangential, derivative(slopeEnd), radial)

		w.normal[t][start] -= f.integratePoly(normal, normalStart, radial)
		w.normal[t][end] -= f.integratePoly(normal, normalEnd, radial)

		var a float64
		if t == 0 {
			a = k.alpha * f.cubeIntegral()
		} else {
			a = k.alpha * f.integrate(k.weight.mul(f.invRPow[k.order])).X
		}
		b := (k.alpha - 1) * f.integrate(k.weight.mul(cosLaurent).mul(f.invRPow[radial])).X
		c := (k.alpha - 1) * f.integrate(k.weight.mul(sinLaurent).mul(f.invRPow[radial])).X
		w.a[t] += a
		w.b[t] += b
		w.c[t] += c
		w.scaleA[t] += math.Abs(a)
		w.scaleB[t] += math.Abs(b)
		w.scaleC[t] += math.Abs(c)
	}
}
