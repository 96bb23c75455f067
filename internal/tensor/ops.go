package tensor

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Elementwise arithmetic. Operands must hold the same number of elements;
// the result takes the receiver's shape. Length mismatches panic in gonum's
// floats kernels.

// Add returns a + b.
func (a *Array) Add(b *Array) *Array {
	out := a.like()
	floats.AddTo(out.data, a.data, b.data)
	return out
}

// Sub returns a - b.
func (a *Array) Sub(b *Array) *Array {
	out := a.like()
	floats.SubTo(out.data, a.data, b.data)
	return out
}

// Mul returns the elementwise product a ⊙ b.
func (a *Array) Mul(b *Array) *Array {
	out := a.like()
	floats.MulTo(out.data, a.data, b.data)
	return out
}

// Div returns the elementwise quotient a / b.
func (a *Array) Div(b *Array) *Array {
	out := a.like()
	floats.DivTo(out.data, a.data, b.data)
	return out
}

// Square returns a ⊙ a.
func (a *Array) Square() *Array {
	return a.Mul(a)
}

// Scale returns alpha * a.
func (a *Array) Scale(alpha float64) *Array {
	out := a.like()
	floats.ScaleTo(out.data, alpha, a.data)
	return out
}

// AddScaled returns a + alpha*b.
func (a *Array) AddScaled(alpha float64, b *Array) *Array {
	out := a.like()
	floats.AddScaledTo(out.data, a.data, alpha, b.data)
	return out
}

// AddConst returns a + c applied to every element.
func (a *Array) AddConst(c float64) *Array {
	out := a.Clone()
	floats.AddConst(c, out.data)
	return out
}

// Sqrt returns the elementwise square root.
func (a *Array) Sqrt() *Array {
	out := a.like()
	for i, v := range a.data {
		out.data[i] = math.Sqrt(v)
	}
	return out
}

// Apply returns f applied to every element.
func (a *Array) Apply(f func(float64) float64) *Array {
	out := a.like()
	for i, v := range a.data {
		out.data[i] = f(v)
	}
	return out
}

// Norm returns the Euclidean norm of the flattened array.
func (a *Array) Norm() float64 {
	return floats.Norm(a.data, 2)
}

// AllFinite reports whether no element is NaN or ±Inf.
func (a *Array) AllFinite() bool {
	for _, v := range a.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b have the same shape and bit-identical data.
func (a *Array) Equal(b *Array) bool {
	return a.shape.Equal(b.shape) && floats.Equal(a.data, b.data)
}

// EqualApprox reports whether a and b have the same shape and all elements
// agree within tol.
func (a *Array) EqualApprox(b *Array, tol float64) bool {
	return a.shape.Equal(b.shape) && floats.EqualApprox(a.data, b.data, tol)
}

// like allocates an uninitialized result with a's shape.
func (a *Array) like() *Array {
	return &Array{shape: a.shape.Clone(), data: make([]float64, len(a.data))}
}
