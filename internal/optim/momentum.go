package optim

import "github.com/born-ml/gradopt/internal/tensor"

// momentumRule carries a decaying sum of scaled gradients:
//
//	acc = stepsize * g                    // first step
//	acc = momentum * acc + stepsize * g   // afterwards
//	x   = x - acc
//
// The first step is therefore identical to plain gradient descent.
type momentumRule struct {
	momentum float64
	acc      accumulator
}

func (r *momentumRule) apply(stepsize float64, g, x *tensor.Array) *tensor.Array {
	acc := r.acc.update(g,
		func(g *tensor.Array) *tensor.Array {
			return g.Scale(stepsize)
		},
		func(prev, g *tensor.Array) *tensor.Array {
			return prev.Scale(r.momentum).AddScaled(stepsize, g)
		},
	)
	return x.Sub(acc)
}

func (r *momentumRule) reset() {
	r.acc.reset()
}

// NewMomentum creates a gradient descent optimizer with momentum.
//
// Uses config.Stepsize and config.Momentum.
func NewMomentum(config Config) (*Optimizer, error) {
	config = config.withDefaults()
	if err := checkUnit("momentum", config.Momentum); err != nil {
		return nil, err
	}
	return newOptimizer(Momentum, config, current{}, &momentumRule{momentum: config.Momentum})
}

// NewNesterov creates a momentum optimizer that evaluates the gradient at
// the look-ahead point x - momentum*acc instead of at x. Before the first
// step there is no accumulation and the gradient is taken at x.
//
// Uses config.Stepsize and config.Momentum.
func NewNesterov(config Config) (*Optimizer, error) {
	config = config.withDefaults()
	if err := checkUnit("momentum", config.Momentum); err != nil {
		return nil, err
	}
	rule := &momentumRule{momentum: config.Momentum}
	return newOptimizer(Nesterov, config, lookahead{rule: rule}, rule)
}
