package optim

import (
	"math"

	"github.com/born-ml/gradopt/internal/tensor"
)

// squaredRule scales each dimension by the root of accumulated squared
// gradients:
//
//	acc = blend * g²                    // first step
//	acc = retain * acc + blend * g²     // afterwards
//	x   = x - (stepsize / sqrt(acc + eps)) * g
//
// Adagrad keeps everything (retain = blend = 1), so per-dimension step
// sizes only shrink. RMSProp forgets with retain = decay, blend = 1 - decay.
type squaredRule struct {
	retain float64
	blend  float64
	acc    accumulator
}

func newAdagradRule() *squaredRule {
	return &squaredRule{retain: 1, blend: 1}
}

func newRMSPropRule(decay float64) *squaredRule {
	return &squaredRule{retain: decay, blend: 1 - decay}
}

func (r *squaredRule) apply(stepsize float64, g, x *tensor.Array) *tensor.Array {
	sq := g.Square()
	acc := r.acc.update(sq,
		func(sq *tensor.Array) *tensor.Array {
			if r.blend == 1 {
				return sq
			}
			return sq.Scale(r.blend)
		},
		func(prev, sq *tensor.Array) *tensor.Array {
			if r.retain == 1 && r.blend == 1 {
				return prev.Add(sq)
			}
			return prev.Scale(r.retain).AddScaled(r.blend, sq)
		},
	)

	scale := acc.AddConst(Epsilon).Apply(func(d float64) float64 {
		return stepsize / math.Sqrt(d)
	})
	return x.Sub(scale.Mul(g))
}

func (r *squaredRule) reset() {
	r.acc.reset()
}

// NewAdagrad creates an optimizer whose per-dimension step size shrinks
// with the sum of all squared gradients seen so far.
//
// Only config.Stepsize and config.Engine are used.
func NewAdagrad(config Config) (*Optimizer, error) {
	config = config.withDefaults()
	return newOptimizer(Adagrad, config, current{}, newAdagradRule())
}

// NewRMSProp creates an Adagrad variant that replaces the running sum with
// an exponential moving average controlled by config.Decay.
func NewRMSProp(config Config) (*Optimizer, error) {
	config = config.withDefaults()
	if err := checkUnit("decay", config.Decay); err != nil {
		return nil, err
	}
	return newOptimizer(RMSProp, config, current{}, newRMSPropRule(config.Decay))
}
