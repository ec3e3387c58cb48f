package internal

// Every integrand along an edge is a trigonometric polynomial in the ray angle
// θ, possibly divided once by 1/r. Writing z = e^{iθ}, a trigonometric
// polynomial is a Laurent polynomial Σ cₙzⁿ with complex coefficients, and
// ∫ zⁿ dθ = zⁿ/(in) for n ≠ 0. That gives every integral in closed form.

const laurentDegree = 6

type laurent struct {
	deg int
	c   [2*laurentDegree + 1]Vec
}

func (p *laurent) at(n int) Vec {
	return p.c[n+laurentDegree]
}

func (p *laurent) add(n int, v Vec) {
	p.c[n+laurentDegree] = p.c[n+laurentDegree].Add(v)
}

func (p *laurent) set(n int, v Vec) {
	p.c[n+laurentDegree] = v
}

func constantLaurent(v float64) laurent {
	var p laurent
	p.set(0, Vec{v, 0})
	return p
}

// The real function θ ↦ u·z, i.e. Re(conj(u)z) = (conj(u)z + u/z)/2.
func projectionLaurent(u Vec) laurent {
	p := laurent{deg: 1}
	p.set(1, u.Conj().Scale(0.5))
	p.set(-1, u.Scale(0.5))
	return p
}

func (p laurent) plus(q laurent) laurent {
	if q.deg > p.deg {
		p.deg = q.deg
	}
	for n := -q.deg; n <= q.deg; n++ {
		p.add(n, q.at(n))
	}
	return p
}

func (p laurent) scale(s float64) laurent {
	for n := -p.deg; n <= p.deg; n++ {
		p.set(n, p.at(n).Scale(s))
	}
	return p
}

func (p laurent) mul(q laurent) laurent {
	r := laurent{deg: p.deg + q.deg}
	if r.deg > laurentDegree {
		fatalf("laurent product of degree %d exceeds %d", r.deg, laurentDegree)
	}
	for n := -p.deg; n <= p.deg; n++ {
		pn := p.at(n)
		if pn == (Vec{}) {
			continue
		}
		for m := -q.deg; m <= q.deg; m++ {
			r.add(n+m, pn.Mul(q.at(m)))
		}
	}
	return r
}

// arc is the angular range swept by an edge as seen from the query point,
// from direction za to direction zb (both unit length).
type arc struct {
	sweep      float64
	powA, powB [2*laurentDegree + 1]Vec
}

func newArc(za, zb Vec) arc {
	a := arc{sweep: Angle(za, zb)}
	fillPowers(&a.powA, za)
	fillPowers(&a.powB, zb)
	return a
}

// Powers zⁿ for |n| <= laurentDegree. z is a unit vector, so z⁻¹ = conj(z).
func fillPowers(pow *[2*laurentDegree + 1]Vec, z Vec) {
	pow[laurentDegree] = Vec{1, 0}
	for n := 1; n <= laurentDegree; n++ {
		pow[laurentDegree+n] = pow[laurentDegree+n-1].Mul(z)
		pow[laurentDegree-n] = pow[laurentDegree-n+1].Mul(z.Conj())
	}
}

// integrate returns ∫ p(e^{iθ}) dθ over the arc.
func (a *arc) integrate(p laurent) Vec {
	var sum Vec
	for n := -p.deg; n <= p.deg; n++ {
		c := p.at(n)
		if c == (Vec{}) {
			continue
		}
		if n == 0 {
			sum = sum.Add(c.Scale(a.sweep))
			continue
		}
		diff := a.powB[laurentDegree+n].Sub(a.powA[laurentDegree+n])
		sum = sum.Add(c.Mul(diff).RotateRight().Scale(1 / float64(n)))
	}
	return sum
}
