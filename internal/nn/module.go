// Package nn composes scalar autodiff values into neural network modules.
//
// This package provides building blocks for small multi-layer perceptrons:
//   - Parameter: a trainable scalar bound into a graph for each forward pass
//   - Module interface: anything that owns parameters
//   - Neuron: tanh(b + Σ xi·wi)
//   - Layer: a set of neurons sharing the same inputs
//   - Sequential / MLP: layers applied one after another
//   - MSE: sum of squared errors loss
//
// Parameters hold plain float64 data outside any graph. Every forward pass
// binds them as fresh leaves, so node values stay immutable and the optimizer
// updates the parameter data between passes.
package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/pkg/errors"
)

// ErrInputSize is returned when a module receives the wrong number of inputs.
var ErrInputSize = errors.New("nn: input size mismatch")

// Module is the base interface for all neural network components.
type Module interface {
	// Parameters returns all trainable parameters of this module,
	// including those of nested modules.
	Parameters() []*Parameter
}

// Forwarder is a module that maps a vector of values to another vector.
type Forwarder interface {
	Module

	// Forward binds the module's parameters into g and computes its outputs.
	Forward(g *autodiff.Graph, inputs []autodiff.Value) ([]autodiff.Value, error)
}

// ZeroGrad resets the gradient of every bound parameter of m.
// Unbound parameters are skipped.
func ZeroGrad(m Module) {
	nodes := make([]autodiff.Value, 0, len(m.Parameters()))
	for _, p := range m.Parameters() {
		if v, ok := p.Node(); ok {
			nodes = append(nodes, v)
		}
	}
	autodiff.ZeroGrad(nodes)
}

func checkInputs(module string, want int, inputs []autodiff.Value) error {
	if len(inputs) != want {
		return errors.Wrapf(ErrInputSize, "%s: expected %d inputs, got %d", module, want, len(inputs))
	}
	return nil
}
