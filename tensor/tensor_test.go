// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/gradopt/tensor"
)

// TestArrayAPI verifies the Array alias exposes the expected API.
func TestArrayAPI(t *testing.T) {
	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 3}, x.Shape())
	assert.Equal(t, 6, x.Len())

	y := x.Scale(2).Sub(x)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, y.Data())
}

// TestConstructors verifies the public constructors.
func TestConstructors(t *testing.T) {
	s := tensor.Scalar(3)
	assert.Equal(t, 0, s.Shape().NDim())
	assert.Equal(t, 3.0, s.Item())

	z := tensor.ZerosLike(tensor.Full(tensor.Shape{2, 2}, 7))
	assert.True(t, z.Equal(tensor.Zeros(tensor.Shape{2, 2})), "ZerosLike = %v", z)

	m := tensor.FromDense(mat.NewDense(1, 2, []float64{5, 6}))
	assert.True(t, m.Equal(tensor.MustFromSlice([]float64{5, 6}, tensor.Shape{1, 2})), "FromDense = %v", m)

	_, err := tensor.New([]float64{1}, tensor.Shape{2})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}
