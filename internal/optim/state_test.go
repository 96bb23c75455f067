package optim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/gradopt/internal/tensor"
)

func TestAccumulatorLifecycle(t *testing.T) {
	var acc accumulator

	_, ok := acc.get()
	assert.False(t, ok)
	assert.Equal(t, Uninitialized, acc.state)

	first := func(g *tensor.Array) *tensor.Array { return g.Scale(10) }
	next := func(prev, g *tensor.Array) *tensor.Array { return prev.Add(g) }

	v := acc.update(tensor.Vector(1, 2), first, next)
	assert.Equal(t, []float64{10, 20}, v.Data())
	assert.Equal(t, Active, acc.state)

	v = acc.update(tensor.Vector(1, 1), first, next)
	assert.Equal(t, []float64{11, 21}, v.Data())

	acc.reset()
	_, ok = acc.get()
	assert.False(t, ok)

	v = acc.update(tensor.Vector(3), first, next)
	assert.Equal(t, []float64{30}, v.Data())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "uninitialized", Uninitialized.String())
	assert.Equal(t, "active", Active.String())
	assert.Equal(t, "unknown", State(7).String())
}

func TestNesterovLookaheadSharesMomentumState(t *testing.T) {
	opt, err := NewNesterov(Config{Stepsize: 0.1, Momentum: 0.5})
	assert.NoError(t, err)

	p := opt.point.(lookahead)
	assert.Same(t, opt.rule, p.rule)

	x := tensor.Vector(1)
	assert.Same(t, x, p.at(x))
}
