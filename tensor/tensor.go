// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the parameter arrays that
// optimizers consume and produce.
//
// Example:
//
//	x := tensor.MustFromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	y := x.Scale(2).Add(x) // Element-wise, x is unchanged
package tensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/gradopt/internal/tensor"
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3} is a 2×3 matrix; Shape{} is a scalar.
type Shape = tensor.Shape

// Array is a dense n-dimensional array of float64 values.
type Array = tensor.Array

// ErrShapeMismatch is returned when an array cannot take a requested shape.
var ErrShapeMismatch = tensor.ErrShapeMismatch

// New creates an array that takes ownership of data.
func New(data []float64, shape Shape) (*Array, error) {
	return tensor.New(data, shape)
}

// FromSlice creates an array holding a copy of data.
func FromSlice(data []float64, shape Shape) (*Array, error) {
	return tensor.FromSlice(data, shape)
}

// MustFromSlice is like FromSlice but panics on error.
func MustFromSlice(data []float64, shape Shape) *Array {
	return tensor.MustFromSlice(data, shape)
}

// FromDense creates a 2-D array from a gonum matrix.
func FromDense(m mat.Matrix) *Array {
	return tensor.FromDense(m)
}

// Vector creates a 1-D array.
func Vector(values ...float64) *Array {
	return tensor.Vector(values...)
}

// Scalar creates a 0-D array.
func Scalar(v float64) *Array {
	return tensor.Scalar(v)
}

// Zeros creates an array filled with zeros.
func Zeros(shape Shape) *Array {
	return tensor.Zeros(shape)
}

// ZerosLike creates a zero array with the shape of a.
func ZerosLike(a *Array) *Array {
	return tensor.ZerosLike(a)
}

// Full creates an array filled with value.
func Full(shape Shape, value float64) *Array {
	return tensor.Full(shape, value)
}
