// Package diff defines the gradient capability consumed by the optimizers.
//
// Optimizers never differentiate anything themselves. They either call a
// caller-supplied GradFunc or ask an injected Differentiator to turn the
// objective into one. FiniteDifference is the default Differentiator.
package diff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gradopt/internal/tensor"
)

// ErrNotDifferentiable is returned when an engine cannot produce a finite
// gradient at the requested point.
var ErrNotDifferentiable = errors.New("objective not differentiable at point")

// Objective is a scalar-valued function of the parameter array.
type Objective func(x *tensor.Array) float64

// GradFunc returns the gradient of an objective at x.
//
// The result may be flattened to one dimension regardless of x's shape.
type GradFunc func(x *tensor.Array) (*tensor.Array, error)

// Differentiator turns an objective into its gradient function.
type Differentiator interface {
	Grad(f Objective) GradFunc
}

// DifferentiatorFunc adapts an ordinary function to Differentiator.
type DifferentiatorFunc func(f Objective) GradFunc

// Grad calls d(f).
func (d DifferentiatorFunc) Grad(f Objective) GradFunc {
	return d(f)
}
