// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides parameter update rules for scalar networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	g := autodiff.NewGraph()
//	preds, _ := model.Predict(g, x)
//	loss, _ := nn.MSE(g, preds, y)
//	loss.Backward()
//	opt.Step()
//
// Each Step writes new parameter values; the next forward pass binds them
// into a new graph. No training loop is provided.
package optim
