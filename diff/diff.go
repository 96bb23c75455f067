// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package diff provides the gradient capability used by the optimizers.
//
// Any automatic differentiation engine can be plugged in by implementing
// Differentiator. FiniteDifference, built on gonum's fd package, is the
// default.
//
// Example:
//
//	engine := diff.FiniteDifference{Formula: fd.Central}
//	opt, _ := optim.NewAdam(optim.Config{Engine: engine})
package diff

import (
	"github.com/born-ml/gradopt/internal/diff"
)

// Objective is a scalar-valued function of the parameter array.
type Objective = diff.Objective

// GradFunc returns the gradient of an objective at a point.
type GradFunc = diff.GradFunc

// Differentiator turns an objective into its gradient function.
type Differentiator = diff.Differentiator

// DifferentiatorFunc adapts an ordinary function to Differentiator.
type DifferentiatorFunc = diff.DifferentiatorFunc

// FiniteDifference estimates gradients numerically.
type FiniteDifference = diff.FiniteDifference

// ErrNotDifferentiable is returned when no finite gradient exists at a point.
var ErrNotDifferentiable = diff.ErrNotDifferentiable
