// Package tensor provides the dense float64 arrays that optimizers read and
// produce.
//
// An Array is a shape plus row-major data. Arrays returned by the arithmetic
// methods are always freshly allocated; receivers and arguments are never
// modified.
package tensor

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrShapeMismatch is returned when an array cannot take a requested shape.
var ErrShapeMismatch = errors.New("shape mismatch")

// Array is a dense n-dimensional array of float64 values.
type Array struct {
	shape Shape
	data  []float64
}

// New creates an array that takes ownership of data.
//
// Returns ErrShapeMismatch if len(data) does not match the shape.
func New(data []float64, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid shape")
	}
	if len(data) != shape.NumElements() {
		return nil, errors.Wrapf(ErrShapeMismatch, "%d values for shape %v", len(data), shape)
	}
	return &Array{shape: shape.Clone(), data: data}, nil
}

// FromSlice creates an array holding a copy of data.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
func FromSlice(data []float64, shape Shape) (*Array, error) {
	buf := make([]float64, len(data))
	copy(buf, data)
	return New(buf, shape)
}

// MustFromSlice is like FromSlice but panics on error.
func MustFromSlice(data []float64, shape Shape) *Array {
	a, err := FromSlice(data, shape)
	if err != nil {
		panic(err)
	}
	return a
}

// Vector creates a 1-D array holding a copy of values.
func Vector(values ...float64) *Array {
	return MustFromSlice(values, Shape{len(values)})
}

// Scalar creates a 0-D array.
func Scalar(v float64) *Array {
	return &Array{shape: Shape{}, data: []float64{v}}
}

// Zeros creates an array filled with zeros.
func Zeros(shape Shape) *Array {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	return &Array{shape: shape.Clone(), data: make([]float64, shape.NumElements())}
}

// ZerosLike creates a zero array with the shape of a.
func ZerosLike(a *Array) *Array {
	return Zeros(a.shape)
}

// Full creates an array filled with value.
func Full(shape Shape, value float64) *Array {
	a := Zeros(shape)
	for i := range a.data {
		a.data[i] = value
	}
	return a
}

// FromDense creates a 2-D array from a gonum matrix.
func FromDense(m mat.Matrix) *Array {
	r, c := m.Dims()
	a := Zeros(Shape{r, c})
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			a.data[i*c+j] = m.At(i, j)
		}
	}
	return a
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() Shape {
	return a.shape.Clone()
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.data)
}

// Data returns the underlying row-major storage.
//
// The slice aliases the array; callers that keep it must not mutate it.
func (a *Array) Data() []float64 {
	return a.data
}

// At returns the element at flat index i.
func (a *Array) At(i int) float64 {
	return a.data[i]
}

// Item returns the single value of a one-element array.
func (a *Array) Item() float64 {
	if len(a.data) != 1 {
		panic(fmt.Sprintf("tensor: Item on array with %d elements", len(a.data)))
	}
	return a.data[0]
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	data := make([]float64, len(a.data))
	copy(data, a.data)
	return &Array{shape: a.shape.Clone(), data: data}
}

// Reshape returns a copy of the array with a new shape.
//
// Returns ErrShapeMismatch if the element counts differ.
func (a *Array) Reshape(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "reshape")
	}
	if shape.NumElements() != len(a.data) {
		return nil, errors.Wrapf(ErrShapeMismatch, "cannot reshape %v (%d elements) to %v",
			a.shape, len(a.data), shape)
	}
	out := a.Clone()
	out.shape = shape.Clone()
	return out, nil
}

// Flatten returns a 1-D copy of the array.
func (a *Array) Flatten() *Array {
	out := a.Clone()
	out.shape = Shape{len(a.data)}
	return out
}

// Dense returns a gonum matrix view of a 2-D array.
//
// The matrix shares storage with the array. Panics if the array is not 2-D.
func (a *Array) Dense() *mat.Dense {
	if len(a.shape) != 2 {
		panic(fmt.Sprintf("tensor: Dense on %d-D array", len(a.shape)))
	}
	return mat.NewDense(a.shape[0], a.shape[1], a.data)
}

// String formats the array for display.
func (a *Array) String() string {
	switch len(a.shape) {
	case 0:
		return fmt.Sprintf("%g", a.data[0])
	case 2:
		return fmt.Sprintf("%v", mat.Formatted(a.Dense(), mat.Squeeze()))
	default:
		return fmt.Sprintf("%v", a.data)
	}
}
