// Package optim implements first-order optimizers for minimizing a scalar
// objective over a parameter array.
//
// This package provides:
//   - GradientDescent: plain gradient descent
//   - Momentum and Nesterov: gradient descent with (look-ahead) momentum
//   - Adagrad and RMSProp: per-dimension adaptive step sizes
//   - Adam: bias-corrected first and second moments
//
// Every optimizer is one Optimizer value composed of two policies: where the
// gradient is evaluated and how the step is computed from it. Variants with
// memory keep it between calls until Reset.
//
// Example usage:
//
//	config := optim.DefaultConfig()
//	config.Stepsize = 0.05
//	opt, _ := optim.NewAdam(config)
//
//	x := tensor.Vector(1, 1)
//	for i := 0; i < 100; i++ {
//	    var err error
//	    x, err = opt.Step(cost, x, nil)
//	    if err != nil {
//	        return err
//	    }
//	}
//
// An Optimizer is not safe for concurrent use.
package optim

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gradopt/internal/diff"
	"github.com/born-ml/gradopt/internal/tensor"
)

// Epsilon is added to adaptive denominators to avoid division by zero.
const Epsilon = 1e-8

// Kind names an optimizer variant.
type Kind string

// Optimizer variants.
const (
	GradientDescent Kind = "gd"
	Momentum        Kind = "momentum"
	Nesterov        Kind = "nesterov"
	Adagrad         Kind = "adagrad"
	RMSProp         Kind = "rmsprop"
	Adam            Kind = "adam"
)

// Kinds lists every variant in construction order.
func Kinds() []Kind {
	return []Kind{GradientDescent, Momentum, Nesterov, Adagrad, RMSProp, Adam}
}

// Config holds hyperparameters for all variants.
//
// Fields a variant does not use are ignored. Momentum, Decay and Betas are
// taken literally, so 0 is a valid setting; start from DefaultConfig for
// the usual values. A zero Stepsize selects the default.
type Config struct {
	Stepsize float64    // Base learning rate (default: 0.01)
	Momentum float64    // Momentum factor (range: [0, 1))
	Decay    float64    // RMSProp decay (range: [0, 1))
	Betas    [2]float64 // Adam moment coefficients (range: [0, 1))

	// Engine differentiates objectives when Step gets no gradient function.
	// Nil selects diff.FiniteDifference.
	Engine diff.Differentiator
}

// DefaultConfig returns the customary hyperparameters:
//   - Stepsize: 0.01
//   - Momentum: 0.9
//   - Decay: 0.9
//   - Betas: [0.9, 0.99]
func DefaultConfig() Config {
	return Config{
		Stepsize: 0.01,
		Momentum: 0.9,
		Decay:    0.9,
		Betas:    [2]float64{0.9, 0.99},
	}
}

func (c Config) withDefaults() Config {
	if c.Stepsize == 0 {
		c.Stepsize = 0.01
	}
	if c.Engine == nil {
		c.Engine = diff.FiniteDifference{}
	}
	return c
}

// updateRule turns a gradient into the next point, keeping whatever memory
// the variant needs.
type updateRule interface {
	apply(stepsize float64, g, x *tensor.Array) *tensor.Array
	reset()
}

// Optimizer minimizes an objective by repeated Step calls.
type Optimizer struct {
	kind     Kind
	stepsize float64
	engine   diff.Differentiator
	point    pointPolicy
	rule     updateRule
	state    State
}

// New creates the optimizer variant named by kind.
func New(kind Kind, config Config) (*Optimizer, error) {
	switch kind {
	case GradientDescent:
		return NewGradientDescent(config)
	case Momentum:
		return NewMomentum(config)
	case Nesterov:
		return NewNesterov(config)
	case Adagrad:
		return NewAdagrad(config)
	case RMSProp:
		return NewRMSProp(config)
	case Adam:
		return NewAdam(config)
	default:
		return nil, errors.Errorf("unknown optimizer %q", kind)
	}
}

func newOptimizer(kind Kind, config Config, point pointPolicy, rule updateRule) (*Optimizer, error) {
	if err := checkPositive("stepsize", config.Stepsize); err != nil {
		return nil, err
	}
	return &Optimizer{
		kind:     kind,
		stepsize: config.Stepsize,
		engine:   config.Engine,
		point:    point,
		rule:     rule,
	}, nil
}

// Step performs one optimization step and returns the new point.
//
// The gradient is computed with gradFn when it is non-nil and with the
// configured engine otherwise. Gradients of inputs with more than one
// dimension are reshaped to x's shape before use. x is never modified.
//
// A failing gradient computation is returned wrapped and leaves the
// optimizer's state as it was.
func (o *Optimizer) Step(f diff.Objective, x *tensor.Array, gradFn diff.GradFunc) (*tensor.Array, error) {
	shape := x.Shape()

	g, err := o.computeGrad(f, x, gradFn)
	if err != nil {
		return nil, err
	}

	if len(shape) > 1 {
		if g, err = g.Reshape(shape); err != nil {
			return nil, errors.Wrap(err, "reshape gradient")
		}
	}

	out := o.rule.apply(o.stepsize, g, x)
	o.state = Active
	return out, nil
}

// computeGrad evaluates the gradient at the point chosen by the policy.
func (o *Optimizer) computeGrad(f diff.Objective, x *tensor.Array, gradFn diff.GradFunc) (*tensor.Array, error) {
	at := o.point.at(x)

	if gradFn == nil {
		if o.engine == nil || f == nil {
			return nil, errors.WithStack(ErrNoGradient)
		}
		gradFn = o.engine.Grad(f)
	}

	g, err := gradFn(at)
	if err != nil {
		return nil, errors.Wrap(err, "compute gradient")
	}
	if g == nil {
		return nil, errors.WithStack(ErrNoGradient)
	}
	return g, nil
}

// Reset erases the memory of past steps. Hyperparameters are kept.
func (o *Optimizer) Reset() {
	o.rule.reset()
	o.state = Uninitialized
}

// State reports whether the optimizer has stepped since construction or
// the last Reset.
func (o *Optimizer) State() State {
	return o.state
}

// Kind returns the variant.
func (o *Optimizer) Kind() Kind {
	return o.kind
}

// Stepsize returns the current base learning rate.
func (o *Optimizer) Stepsize() float64 {
	return o.stepsize
}

// SetStepsize updates the base learning rate.
//
// Useful for step size schedules. Accumulated state is kept.
func (o *Optimizer) SetStepsize(stepsize float64) error {
	if err := checkPositive("stepsize", stepsize); err != nil {
		return err
	}
	o.stepsize = stepsize
	return nil
}

// Timestep returns Adam's iteration counter, or 0 for other variants.
func (o *Optimizer) Timestep() int {
	if r, ok := o.rule.(*adamRule); ok {
		return r.t
	}
	return 0
}
