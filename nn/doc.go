// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides scalar neural network building blocks.
//
// # Overview
//
// This package contains:
//   - Parameter: trainable scalar bound into a graph per forward pass
//   - Neuron: tanh(b + Σ xi·wi)
//   - Layer, Sequential, MLP: composition of neurons
//   - MSE: sum of squared errors
//   - Initializers: Uniform, Constant
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/micrograd/autodiff"
//	    "github.com/born-ml/micrograd/nn"
//	)
//
//	func main() {
//	    model, err := nn.NewMLP(3, []int{4, 4, 1}, nn.MLPConfig{Seed: 1})
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    g := autodiff.NewGraph()
//	    preds, _ := model.Predict(g, []float64{2, 3, -1})
//	    loss, _ := nn.MSE(g, preds, []float64{1})
//	    loss.Backward()
//
//	    for _, p := range model.Parameters() {
//	        fmt.Println(p.Name(), p.Grad())
//	    }
//	}
package nn
