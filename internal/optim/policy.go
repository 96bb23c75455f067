package optim

import "github.com/born-ml/gradopt/internal/tensor"

// pointPolicy chooses where the gradient is evaluated.
type pointPolicy interface {
	at(x *tensor.Array) *tensor.Array
}

// current evaluates the gradient at x itself.
type current struct{}

func (current) at(x *tensor.Array) *tensor.Array {
	return x
}

// lookahead evaluates the gradient at x - momentum*accumulation, the point
// the momentum term is about to move to.
type lookahead struct {
	rule *momentumRule
}

func (p lookahead) at(x *tensor.Array) *tensor.Array {
	acc, ok := p.rule.acc.get()
	if !ok {
		return x
	}
	return x.AddScaled(-p.rule.momentum, acc)
}
