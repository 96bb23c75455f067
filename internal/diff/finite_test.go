package diff_test

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/born-ml/gradopt/internal/diff"
	"github.com/born-ml/gradopt/internal/tensor"
)

func square(x *tensor.Array) float64 {
	return x.Mul(x).Data()[0]
}

func sumSquares(x *tensor.Array) float64 {
	s := 0.0
	for _, v := range x.Data() {
		s += v * v
	}
	return s
}

func TestFiniteDifference_Scalar(t *testing.T) {
	grad := diff.FiniteDifference{}.Grad(square)

	g, err := grad(tensor.Scalar(3))
	require.NoError(t, err)

	assert.Equal(t, 0, g.Shape().NDim())
	assert.InDelta(t, 6.0, g.Item(), 1e-6)
}

func TestFiniteDifference_FlattensMatrixInput(t *testing.T) {
	x := tensor.MustFromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})

	var seen tensor.Shape
	f := func(p *tensor.Array) float64 {
		seen = p.Shape()
		return sumSquares(p)
	}

	g, err := diff.FiniteDifference{}.Grad(f)(x)
	require.NoError(t, err)

	// Objective sees the caller's shape, the gradient comes back flat.
	assert.Equal(t, tensor.Shape{2, 2}, seen)
	assert.Equal(t, tensor.Shape{4}, g.Shape())
	for i, want := range []float64{2, 4, 6, 8} {
		assert.InDelta(t, want, g.At(i), 1e-6, "component %d", i)
	}
	assert.Equal(t, []float64{1, 2, 3, 4}, x.Data(), "point must not be modified")
}

func TestFiniteDifference_ForwardFormula(t *testing.T) {
	d := diff.FiniteDifference{Formula: fd.Forward, Step: 1e-7}

	g, err := d.Grad(sumSquares)(tensor.Vector(1, -1))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, g.At(0), 1e-4)
	assert.InDelta(t, -2.0, g.At(1), 1e-4)
}

func TestFiniteDifference_NotDifferentiable(t *testing.T) {
	// sqrt is undefined left of the origin, central differences see NaN.
	f := func(x *tensor.Array) float64 {
		return math.Sqrt(x.At(0))
	}

	_, err := diff.FiniteDifference{}.Grad(f)(tensor.Vector(0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, diff.ErrNotDifferentiable))
}

func TestFiniteDifference_EmptyPoint(t *testing.T) {
	_, err := diff.FiniteDifference{}.Grad(square)(nil)
	assert.Error(t, err)
}

func TestDifferentiatorFunc(t *testing.T) {
	calls := 0
	d := diff.DifferentiatorFunc(func(f diff.Objective) diff.GradFunc {
		return func(x *tensor.Array) (*tensor.Array, error) {
			calls++
			return x.Scale(2), nil
		}
	})

	g, err := d.Grad(square)(tensor.Vector(5))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []float64{10}, g.Data())
}
