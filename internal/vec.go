package internal

import "math"

// Vec is a 2D point. Most of the evaluation treats it as the complex number
// X+iY, so alongside the usual vector operations it carries complex
// multiplication, division and the principal log/arctangent used by the edge
// integrals.
type Vec struct {
	X float64
	Y float64
}

// Point is the name the public API uses for a vertex or query location.
type Point = Vec

func (a Vec) Add(b Vec) Vec {
	return Vec{a.X + b.X, a.Y + b.Y}
}

func (a Vec) Sub(b Vec) Vec {
	return Vec{a.X - b.X, a.Y - b.Y}
}

func (a Vec) Scale(s float64) Vec {
	return Vec{a.X * s, a.Y * s}
}

func (a Vec) DivScalar(s float64) Vec {
	return Vec{a.X / s, a.Y / s}
}

// Complex product.
func (a Vec) Mul(b Vec) Vec {
	return Vec{a.X*b.X - a.Y*b.Y, a.X*b.Y + a.Y*b.X}
}

// Complex quotient a·conj(b)/|b|².
func (a Vec) Div(b Vec) Vec {
	return a.Mul(b.Conj()).DivScalar(b.AbsSquared())
}

func (a Vec) Conj() Vec {
	return Vec{a.X, -a.Y}
}

func (a Vec) Abs() float64 {
	return math.Hypot(a.X, a.Y)
}

func (a Vec) AbsSquared() float64 {
	return a.X*a.X + a.Y*a.Y
}

// Multiplication by i.
func (a Vec) RotateLeft() Vec {
	return Vec{-a.Y, a.X}
}

// Multiplication by -i.
func (a Vec) RotateRight() Vec {
	return Vec{a.Y, -a.X}
}

func (a Vec) Dot(b Vec) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross is the signed area of the parallelogram spanned by a and b, positive
// when b is counterclockwise from a.
func (a Vec) Cross(b Vec) float64 {
	return a.X*b.Y - a.Y*b.X
}

func (a Vec) Unit() Vec {
	return a.DivScalar(a.Abs())
}

// Log is the principal logarithm with the argument taken in [0, 2π), so the
// cut lies on the positive real axis. The arctangent integrals depend on this
// branch; math.Atan2 cuts along the negative real axis instead.
func (a Vec) Log() Vec {
	var theta float64
	switch {
	case a.X > 0 && a.Y >= 0:
		theta = math.Atan(a.Y / a.X)
	case a.X == 0 && a.Y > 0:
		theta = math.Pi / 2
	case a.X == 0 && a.Y < 0:
		theta = 3 * math.Pi / 2
	case a.X > 0 && a.Y < 0:
		theta = math.Atan(a.Y/a.X) + 2*math.Pi
	case a.X < 0:
		theta = math.Atan(a.Y/a.X) + math.Pi
	}
	return Vec{math.Log(a.Abs()), theta}
}

// Atan is the principal arctangent, atan(a) = log((1+ia)/(1-ia))/(2i).
func (a Vec) Atan() Vec {
	one := Vec{1, 0}
	ia := a.RotateLeft()
	return one.Add(ia).Div(one.Sub(ia)).Log().RotateRight().Scale(0.5)
}

// Angle returns the signed angle in (-π, π] swept counterclockwise from a to b.
func Angle(a, b Vec) float64 {
	theta := b.Mul(a.Conj()).Log().Y
	if theta > math.Pi {
		theta -= 2 * math.Pi
	}
	return theta
}
