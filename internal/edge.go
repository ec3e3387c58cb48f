package internal

import "math"

// edgeFrame is one boundary edge from a to b, translated so the query point is
// the origin, together with the Laurent forms of the functions of the ray
// angle θ that the trial kernels are built from.
type edgeFrame struct {
	arc
	length       float64
	distA, distB float64

	// Along the edge 1/r = κz + conj(κ)/z. κ is split into the parts
	// contributed by each endpoint.
	kappaI, kappaJ, kappa Vec

	invR    laurent // 1/r
	sOverR  laurent // s/r, with s running from 0 at a to 1 at b
	tangent laurent // t·z, t the unit edge direction
	normal  laurent // n·z, n the inward (left) unit normal

	// ∫ r dθ, the one integral that is not a Laurent polynomial.
	rIntegral Vec

	invRPow   [4]laurent
	sOverRPow [4]laurent
}

// newEdgeFrame expects a and b not to be collinear with the origin.
func newEdgeFrame(a, b Vec) edgeFrame {
	d := b.Sub(a)
	f := edgeFrame{
		arc:    newArc(a.Unit(), b.Unit()),
		length: d.Abs(),
		distA:  a.Abs(),
		distB:  b.Abs(),
	}
	t := d.DivScalar(f.length)
	n := t.RotateLeft()

	area := a.Cross(b)
	f.kappaI = a.Conj().RotateRight().DivScalar(2 * area)
	f.kappaJ = b.Conj().RotateLeft().DivScalar(2 * area)
	f.kappa = f.kappaI.Add(f.kappaJ)

	f.invR = laurent{deg: 1}
	f.invR.set(1, f.kappa)
	f.invR.set(-1, f.kappa.Conj())
	f.tangent = projectionLaurent(t)
	f.normal = projectionLaurent(n)
	f.sOverR = f.tangent.plus(f.invR.scale(-t.Dot(a))).scale(1 / f.length)

	f.invRPow[0] = constantLaurent(1)
	f.sOverRPow[0] = constantLaurent(1)
	for k := 1; k < 4; k++ {
		f.invRPow[k] = f.invRPow[k-1].mul(f.invR)
		f.sOverRPow[k] = f.sOverRPow[k-1].mul(f.sOverR)
	}

	// d/dθ atan(w) = iw/(1+w²) with w = κz/|κ|, which is i|κ|·r.
	absKappa := f.kappa.Abs()
	u := f.kappa.DivScalar(absKappa)
	intgZ0 := u.Mul(a.Unit()).Atan()
	intgZ1 := u.Mul(b.Unit()).Atan()
	f.rIntegral = intgZ1.Sub(intgZ0).RotateRight().DivScalar(absKappa)
	return f
}

// The moments I0 = ∫z² dz, I1 = ∫dz and I2 = ∫z⁻² dz over the arc.
func (f *edgeFrame) moments() (i0, i1, i2 Vec) {
	zi, zj := f.powA[laurentDegree+1], f.powB[laurentDegree+1]
	i0 = f.powB[laurentDegree+3].Sub(f.powA[laurentDegree+3]).Scale(1.0 / 3)
	i1 = zj.Sub(zi)
	i2 = zi.Conj().Sub(zj.Conj())
	return
}

// cubeIntegral returns ∫ 1/r³ dθ. With dθ = dz/(iz) and
// (1/r)³ = κ³z³ + 3κ²κ̄z + 3κκ̄²/z + κ̄³/z³, the first three terms are the
// moments and the last is the conjugate of the first.
func (f *edgeFrame) cubeIntegral() float64 {
	i0, i1, i2 := f.moments()
	k, kc := f.kappa, f.kappa.Conj()
	k2 := k.Mul(k)
	k3 := k2.Mul(k)
	head := k3.Mul(i0).RotateRight()
	sum := head.
		Add(k2.Mul(kc).Mul(i1).Scale(3).RotateRight()).
		Add(k.Mul(kc).Mul(kc).Mul(i2).Scale(3).RotateRight()).
		Add(head.Conj())
	return sum.X
}

// integratePoly returns ∫ w(θ)·P(s)/rᵒʳᵈᵉʳ dθ for the cubic P with the given
// coefficients, using P(s)/rᵐ = Σ cₖ (s/r)ᵏ (1/r)ᵐ⁻ᵏ.
func (f *edgeFrame) integratePoly(w laurent, poly [4]float64, order int) float64 {
	var sum float64
	for k, ck := range poly {
		if ck == 0 {
			continue
		}
		term := w.mul(f.sOverRPow[k])
		switch rest := order - k; {
		case rest >= 0:
			sum += ck * f.integrate(term.mul(f.invRPow[rest])).X
		case rest == -1:
			sum += ck * f.integrateTimesR(term)
		default:
			fatalf("cannot integrate s^%d against 1/r^%d", k, order)
		}
	}
	return sum
}

// integrateTimesR returns ∫ p(z)·r dθ. p is reduced modulo 1/r = κz + κ̄/z,
// so p = q·(1/r) + c₀ + β(κz − κ̄/z). The quotient integrates as a Laurent
// polynomial, c₀ against ∫ r dθ, and (κz − κ̄/z)·r = −i·d/dθ ln(1/r).
func (f *edgeFrame) integrateTimesR(p laurent) float64 {
	k, kc := f.kappa, f.kappa.Conj()
	q := laurent{deg: p.deg}
	for n := p.deg; n >= 2; n-- {
		c := p.at(n)
		q.add(n-1, c.Div(k))
		p.add(n-2, c.Mul(kc).Div(k).Scale(-1))
		p.set(n, Vec{})
	}
	for n := -p.deg; n <= -2; n++ {
		c := p.at(n)
		q.add(n+1, c.Div(kc))
		p.add(n+2, c.Mul(k).Div(kc).Scale(-1))
		p.set(n, Vec{})
	}

	hi, lo := p.at(1).Div(k), p.at(-1).Div(kc)
	alpha := hi.Add(lo).Scale(0.5)
	beta := hi.Sub(lo).Scale(0.5)
	q.add(0, alpha)

	sum := f.integrate(q).
		Add(p.at(0).Mul(f.rIntegral)).
		Add(beta.RotateLeft().Scale(math.Log(f.distB / f.distA)))
	return sum.X
}
