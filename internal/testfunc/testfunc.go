// Package testfunc provides benchmark objectives with analytic gradients.
package testfunc

import (
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/optimize/functions"

	"github.com/born-ml/gradopt/internal/diff"
	"github.com/born-ml/gradopt/internal/tensor"
)

// Function is an objective together with its gradient and a customary
// starting point.
type Function struct {
	Name string
	F    diff.Objective
	Grad diff.GradFunc

	// Start returns the starting point for dim parameters.
	Start func(dim int) *tensor.Array

	// MinDim and MaxDim bound the supported dimension (MaxDim 0: unbounded).
	MinDim int
	MaxDim int
}

// CheckDim reports whether the function accepts dim parameters.
func (f Function) CheckDim(dim int) error {
	if dim < f.MinDim || (f.MaxDim > 0 && dim > f.MaxDim) {
		return errors.Errorf("%s: unsupported dimension %d", f.Name, dim)
	}
	return nil
}

var registry = map[string]Function{
	"sphere":     Sphere(),
	"rosenbrock": Rosenbrock(),
	"beale":      Beale(),
}

// Names returns the registered function names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the function registered under name.
func Lookup(name string) (Function, error) {
	fn, ok := registry[name]
	if !ok {
		return Function{}, errors.Errorf("unknown objective %q (have %v)", name, Names())
	}
	return fn, nil
}

// Sphere is f(x) = Σ x², minimized at the origin.
func Sphere() Function {
	return Function{
		Name: "sphere",
		F: func(x *tensor.Array) float64 {
			s := 0.0
			for _, v := range x.Data() {
				s += v * v
			}
			return s
		},
		Grad: func(x *tensor.Array) (*tensor.Array, error) {
			return x.Scale(2), nil
		},
		Start: func(dim int) *tensor.Array {
			return tensor.Full(tensor.Shape{dim}, 1)
		},
		MinDim: 1,
	}
}

// Rosenbrock is gonum's extended Rosenbrock function, minimized at (1, …, 1).
func Rosenbrock() Function {
	return fromGonum("rosenbrock", functions.ExtendedRosenbrock{}, 2, func(dim int) *tensor.Array {
		x := tensor.Zeros(tensor.Shape{dim})
		for i := range x.Data() {
			if i%2 == 0 {
				x.Data()[i] = -1.2
			} else {
				x.Data()[i] = 1
			}
		}
		return x
	})
}

// Beale is gonum's two-dimensional Beale function, minimized at (3, 0.5).
func Beale() Function {
	fn := fromGonum("beale", functions.Beale{}, 2, func(int) *tensor.Array {
		return tensor.Vector(1, 1)
	})
	fn.MaxDim = 2
	return fn
}

type gonumGrad interface {
	Func(x []float64) float64
	Grad(grad, x []float64)
}

func fromGonum(name string, fn gonumGrad, minDim int, start func(int) *tensor.Array) Function {
	return Function{
		Name: name,
		F: func(x *tensor.Array) float64 {
			return fn.Func(x.Data())
		},
		Grad: func(x *tensor.Array) (*tensor.Array, error) {
			g := make([]float64, x.Len())
			fn.Grad(g, x.Data())
			return tensor.New(g, x.Shape())
		},
		Start:  start,
		MinDim: minDim,
	}
}
