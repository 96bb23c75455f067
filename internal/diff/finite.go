package diff

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/born-ml/gradopt/internal/tensor"
)

// FiniteDifference estimates gradients numerically with gonum's fd package.
//
// Like most differentiation engines it hands back a flat 1-D gradient for
// inputs of any rank (a 0-D gradient for scalar inputs); optimizers reshape
// it where needed.
//
// The zero value uses the central difference formula with gonum's default
// step.
type FiniteDifference struct {
	// Formula is the difference stencil (default fd.Central).
	Formula fd.Formula

	// Step is the finite difference step (default: formula's own step).
	Step float64

	// Concurrent evaluates the objective from multiple goroutines.
	// Only enable it for objectives that are safe for concurrent use.
	Concurrent bool
}

// Grad returns a GradFunc that differentiates f numerically.
func (d FiniteDifference) Grad(f Objective) GradFunc {
	return func(x *tensor.Array) (*tensor.Array, error) {
		if x == nil || x.Len() == 0 {
			return nil, errors.New("finite difference: empty point")
		}

		shape := x.Shape()
		flat := func(v []float64) float64 {
			p, err := tensor.FromSlice(v, shape)
			if err != nil {
				panic(err) // fd always passes len(x) values
			}
			return f(p)
		}

		settings := &fd.Settings{
			Formula:    d.Formula,
			Step:       d.Step,
			Concurrent: d.Concurrent,
		}
		if settings.Formula.Stencil == nil {
			settings.Formula = fd.Central
		}

		g := fd.Gradient(nil, flat, x.Data(), settings)

		var out *tensor.Array
		if shape.NDim() == 0 {
			out = tensor.Scalar(g[0])
		} else {
			out = tensor.Vector(g...)
		}
		if !out.AllFinite() {
			return nil, errors.Wrapf(ErrNotDifferentiable, "finite difference gradient %v", g)
		}
		return out, nil
	}
}
