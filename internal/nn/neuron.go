package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Neuron computes tanh(b + Σ xi·wi) over its inputs.
type Neuron struct {
	weights []*Parameter
	bias    *Parameter
}

// NewNeuron creates a neuron with nin weights. Weights are drawn from initializer
// first, then the bias.
func NewNeuron(name string, nin int, initializer Initializer) *Neuron {
	n := &Neuron{weights: make([]*Parameter, nin)}
	for i := range n.weights {
		n.weights[i] = NewParameter(fmt.Sprintf("%s.w%d", name, i), initializer.Next())
	}
	n.bias = NewParameter(name+".b", initializer.Next())
	return n
}

// NumInputs returns the number of weights.
func (n *Neuron) NumInputs() int {
	return len(n.weights)
}

// Activate binds the neuron's parameters into g and returns its output.
func (n *Neuron) Activate(g *autodiff.Graph, inputs []autodiff.Value) (autodiff.Value, error) {
	if err := checkInputs("neuron", len(n.weights), inputs); err != nil {
		return autodiff.Value{}, err
	}

	terms := make([]autodiff.Value, len(inputs))
	for i, x := range inputs {
		terms[i] = x.Mul(n.weights[i].Bind(g))
	}
	act := g.Sum(n.bias.Bind(g), terms...)

	return act.Tanh(), nil
}

// Forward implements Forwarder with a single output.
func (n *Neuron) Forward(g *autodiff.Graph, inputs []autodiff.Value) ([]autodiff.Value, error) {
	out, err := n.Activate(g, inputs)
	if err != nil {
		return nil, err
	}
	return []autodiff.Value{out}, nil
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}
