// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides first-order optimizers that minimize a scalar
// objective over a parameter array.
//
// # Overview
//
// This package contains:
//   - Gradient descent
//   - Momentum and Nesterov momentum
//   - Adagrad and RMSProp (per-dimension adaptive step sizes)
//   - Adam (bias-corrected first and second moments)
//
// All variants share one Optimizer type and one call pattern: feed the
// result of each Step back in as the next point.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/gradopt/optim"
//	    "github.com/born-ml/gradopt/tensor"
//	)
//
//	func main() {
//	    cost := func(x *tensor.Array) float64 {
//	        return x.At(0)*x.At(0) + 10*x.At(1)*x.At(1)
//	    }
//
//	    config := optim.DefaultConfig()
//	    config.Stepsize = 0.05
//	    opt, err := optim.NewAdam(config)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    x := tensor.Vector(1, 1)
//	    for i := 0; i < 200; i++ {
//	        x, err = opt.Step(cost, x, nil)
//	        if err != nil {
//	            log.Fatal(err)
//	        }
//	    }
//	}
//
// # Gradients
//
// Step takes an optional gradient function. When it is nil the optimizer
// asks its differentiation engine (Config.Engine, finite differences by
// default) for the gradient of the objective:
//
//	grad := func(x *tensor.Array) (*tensor.Array, error) {
//	    return x.Scale(2), nil
//	}
//	x, err = opt.Step(cost, x, grad)
//
// Engines may return gradients flattened to one dimension; the optimizer
// reshapes them to the point's shape for inputs with two or more dimensions.
//
// # Optimizers
//
// Gradient descent:
//
//	opt, _ := optim.NewGradientDescent(optim.Config{Stepsize: 0.1})
//
// Momentum and Nesterov:
//
//	opt, _ := optim.NewMomentum(optim.Config{Stepsize: 0.01, Momentum: 0.9})
//	opt, _ := optim.NewNesterov(optim.Config{Stepsize: 0.01, Momentum: 0.9})
//
// Adagrad and RMSProp:
//
//	opt, _ := optim.NewAdagrad(optim.Config{Stepsize: 0.1})
//	opt, _ := optim.NewRMSProp(optim.Config{Stepsize: 0.01, Decay: 0.9})
//
// Adam:
//
//	opt, _ := optim.NewAdam(optim.Config{
//	    Stepsize: 0.01,
//	    Betas:    [2]float64{0.9, 0.99},
//	})
//
// # Configuration
//
// Config fields are taken literally: a Momentum of 0 really is plain
// gradient descent. Only a zero Stepsize is replaced by the default.
// DefaultConfig returns the customary values to start from.
//
// # State
//
// Variants with memory start Uninitialized, become Active on the first Step
// and return to Uninitialized on Reset. Reuse an optimizer for an
// independent run by calling Reset first.
package optim
