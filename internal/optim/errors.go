package optim

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoGradient is returned by Step when neither a gradient function nor a
// differentiation engine is available.
var ErrNoGradient = errors.New("no gradient function or differentiation engine")

// ErrInvalidArgument reports a hyperparameter outside its allowed range.
type ErrInvalidArgument struct {
	Name    string
	Value   float64
	Message string
}

func (e *ErrInvalidArgument) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Name, e.Value, e.Message)
}

func checkPositive(name string, v float64) error {
	if !(v > 0) {
		return errors.WithStack(&ErrInvalidArgument{
			Name:    name,
			Value:   v,
			Message: "outside allowed range (0, Inf)",
		})
	}
	return nil
}

func checkUnit(name string, v float64) error {
	if !(v >= 0 && v < 1) {
		return errors.WithStack(&ErrInvalidArgument{
			Name:    name,
			Value:   v,
			Message: "outside allowed range [0, 1)",
		})
	}
	return nil
}
