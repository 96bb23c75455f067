// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/gradopt/internal/optim"
)

// Optimizer minimizes an objective by repeated Step calls.
type Optimizer = optim.Optimizer

// Config holds hyperparameters for all variants.
type Config = optim.Config

// Kind names an optimizer variant.
type Kind = optim.Kind

// State is the lifecycle state of an optimizer's memory.
type State = optim.State

// ErrInvalidArgument reports a hyperparameter outside its allowed range.
type ErrInvalidArgument = optim.ErrInvalidArgument

// Optimizer variants.
const (
	GradientDescent = optim.GradientDescent
	Momentum        = optim.Momentum
	Nesterov        = optim.Nesterov
	Adagrad         = optim.Adagrad
	RMSProp         = optim.RMSProp
	Adam            = optim.Adam
)

// Optimizer states.
const (
	Uninitialized = optim.Uninitialized
	Active        = optim.Active
)

// Epsilon is added to adaptive denominators to avoid division by zero.
const Epsilon = optim.Epsilon

// ErrNoGradient is returned by Step when no gradient source is available.
var ErrNoGradient = optim.ErrNoGradient

// DefaultConfig returns the customary hyperparameters (stepsize 0.01,
// momentum 0.9, decay 0.9, betas 0.9 and 0.99).
func DefaultConfig() Config {
	return optim.DefaultConfig()
}

// Kinds lists every variant.
func Kinds() []Kind {
	return optim.Kinds()
}

// New creates the optimizer variant named by kind.
//
// Example:
//
//	opt, err := optim.New(optim.RMSProp, optim.DefaultConfig())
func New(kind Kind, config Config) (*Optimizer, error) {
	return optim.New(kind, config)
}

// NewGradientDescent creates a stateless gradient descent optimizer.
func NewGradientDescent(config Config) (*Optimizer, error) {
	return optim.NewGradientDescent(config)
}

// NewMomentum creates a gradient descent optimizer with momentum.
func NewMomentum(config Config) (*Optimizer, error) {
	return optim.NewMomentum(config)
}

// NewNesterov creates a momentum optimizer that evaluates gradients at the
// look-ahead point.
func NewNesterov(config Config) (*Optimizer, error) {
	return optim.NewNesterov(config)
}

// NewAdagrad creates an Adagrad optimizer.
func NewAdagrad(config Config) (*Optimizer, error) {
	return optim.NewAdagrad(config)
}

// NewRMSProp creates an RMSProp optimizer.
func NewRMSProp(config Config) (*Optimizer, error) {
	return optim.NewRMSProp(config)
}

// NewAdam creates an Adam optimizer.
//
// Example:
//
//	opt, err := optim.NewAdam(optim.Config{
//	    Stepsize: 0.001,
//	    Betas:    [2]float64{0.9, 0.999},
//	})
func NewAdam(config Config) (*Optimizer, error) {
	return optim.NewAdam(config)
}
