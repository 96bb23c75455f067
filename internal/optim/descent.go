package optim

import "github.com/born-ml/gradopt/internal/tensor"

// descentRule is plain gradient descent:
//
//	x = x - stepsize * g
type descentRule struct{}

func (descentRule) apply(stepsize float64, g, x *tensor.Array) *tensor.Array {
	return x.AddScaled(-stepsize, g)
}

func (descentRule) reset() {}

// NewGradientDescent creates a stateless gradient descent optimizer.
//
// Only config.Stepsize and config.Engine are used.
func NewGradientDescent(config Config) (*Optimizer, error) {
	config = config.withDefaults()
	return newOptimizer(GradientDescent, config, current{}, descentRule{})
}
