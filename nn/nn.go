// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
)

// ErrInputSize is returned when a module receives the wrong number of inputs.
var ErrInputSize = nn.ErrInputSize

// Module is anything that owns trainable parameters.
type Module = nn.Module

// Forwarder is a module that maps a vector of values to another vector.
type Forwarder = nn.Forwarder

// Parameter represents a trainable scalar.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and value.
func NewParameter(name string, data float64) *Parameter {
	return nn.NewParameter(name, data)
}

// ZeroGrad resets the gradient of every bound parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// Layers

// Neuron computes tanh(b + Σ xi·wi).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin weights.
func NewNeuron(name string, nin int, initializer Initializer) *Neuron {
	return nn.NewNeuron(name, nin, initializer)
}

// Layer is a set of neurons reading the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(name string, nin, nout int, initializer Initializer) *Layer {
	return nn.NewLayer(name, nin, nout, initializer)
}

// Sequential chains modules.
type Sequential = nn.Sequential

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Forwarder) *Sequential {
	return nn.NewSequential(modules...)
}

// MLP is a multi-layer perceptron of tanh neurons.
type MLP = nn.MLP

// MLPConfig configures NewMLP.
type MLPConfig = nn.MLPConfig

// NewMLP creates a network with nin inputs and one layer per entry of nouts.
//
// Example:
//
//	model, err := nn.NewMLP(3, []int{4, 4, 1}, nn.MLPConfig{Seed: 42})
func NewMLP(nin int, nouts []int, cfg MLPConfig) (*MLP, error) {
	return nn.NewMLP(nin, nouts, cfg)
}

// Loss

// MSE returns the sum of squared errors between preds and targets.
func MSE(g *autodiff.Graph, preds []autodiff.Value, targets []float64) (autodiff.Value, error) {
	return nn.MSE(g, preds, targets)
}

// Initialization

// Initializer produces initial parameter values.
type Initializer = nn.Initializer

// Uniform draws values from U(lo, hi).
type Uniform = nn.Uniform

// NewUniform creates a seeded uniform initializer.
func NewUniform(lo, hi float64, seed int64) *Uniform {
	return nn.NewUniform(lo, hi, seed)
}

// Constant returns the same value every time.
type Constant = nn.Constant
