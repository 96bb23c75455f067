package optim

import (
	"math"

	"github.com/born-ml/gradopt/internal/tensor"
)

// adamRule implements Adam (Adaptive Moment Estimation).
//
// Instead of correcting both moments for their initialization bias, the
// correction is folded into the step size:
//
//	t  = t + 1
//	m  = g                                  // first step
//	m  = beta1 * m + (1-beta1) * g          // afterwards
//	v  = g²                                 // first step
//	v  = beta2 * v + (1-beta2) * g²         // afterwards
//	lr = stepsize * sqrt(1 - beta2^t) / (1 - beta1^t)
//	x  = x - lr * m / (sqrt(v) + eps)
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type adamRule struct {
	beta1 float64
	beta2 float64
	t     int // Timestep for bias correction
	m     accumulator
	v     accumulator
}

func (r *adamRule) apply(stepsize float64, g, x *tensor.Array) *tensor.Array {
	r.t++

	m := r.m.update(g,
		func(g *tensor.Array) *tensor.Array {
			return g.Clone()
		},
		func(prev, g *tensor.Array) *tensor.Array {
			return prev.Scale(r.beta1).AddScaled(1-r.beta1, g)
		},
	)

	v := r.v.update(g.Square(),
		func(sq *tensor.Array) *tensor.Array {
			return sq
		},
		func(prev, sq *tensor.Array) *tensor.Array {
			return prev.Scale(r.beta2).AddScaled(1-r.beta2, sq)
		},
	)

	lr := r.adaptedStepsize(stepsize)
	return x.Sub(m.Scale(lr).Div(v.Sqrt().AddConst(Epsilon)))
}

// adaptedStepsize returns the bias-corrected step size for the current t.
func (r *adamRule) adaptedStepsize(stepsize float64) float64 {
	t := float64(r.t)
	return stepsize * math.Sqrt(1-math.Pow(r.beta2, t)) / (1 - math.Pow(r.beta1, t))
}

func (r *adamRule) reset() {
	r.m.reset()
	r.v.reset()
	r.t = 0
}

// NewAdam creates an Adam optimizer.
//
// Uses config.Stepsize and config.Betas. DefaultConfig sets the betas to
// 0.9 and 0.99.
func NewAdam(config Config) (*Optimizer, error) {
	config = config.withDefaults()
	if err := checkUnit("beta1", config.Betas[0]); err != nil {
		return nil, err
	}
	if err := checkUnit("beta2", config.Betas[1]); err != nil {
		return nil, err
	}
	return newOptimizer(Adam, config, current{}, &adamRule{
		beta1: config.Betas[0],
		beta2: config.Betas[1],
	})
}

// AdaptedStepsize returns the bias-corrected Adam step size that the next
// Step would use, or the plain step size for other variants.
func (o *Optimizer) AdaptedStepsize() float64 {
	r, ok := o.rule.(*adamRule)
	if !ok {
		return o.stepsize
	}
	next := *r
	next.t++
	return next.adaptedStepsize(o.stepsize)
}
