package optim

import "github.com/born-ml/gradopt/internal/tensor"

// State is the lifecycle state of an optimizer's memory.
type State int

const (
	// Uninitialized means no gradient has been seen since construction or
	// the last Reset.
	Uninitialized State = iota
	// Active means accumulated state holds the shape of the first gradient.
	Active
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// accumulator is per-optimizer memory of past gradients.
//
// It starts Uninitialized and becomes Active on its first update, taking
// the shape of that gradient. value is only meaningful while Active.
type accumulator struct {
	state State
	value *tensor.Array
}

// update stores first(g) on the first call and next(value, g) afterwards.
func (a *accumulator) update(g *tensor.Array, first func(g *tensor.Array) *tensor.Array,
	next func(prev, g *tensor.Array) *tensor.Array) *tensor.Array {
	if a.state == Uninitialized {
		a.value = first(g)
		a.state = Active
	} else {
		a.value = next(a.value, g)
	}
	return a.value
}

// get returns the stored array and whether it is set.
func (a *accumulator) get() (*tensor.Array, bool) {
	return a.value, a.state == Active
}

func (a *accumulator) reset() {
	*a = accumulator{}
}
