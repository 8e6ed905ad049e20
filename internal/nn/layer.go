package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/pkg/errors"
)

// Layer is a set of neurons that all read the same inputs.
type Layer struct {
	nin     int
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(name string, nin, nout int, initializer Initializer) *Layer {
	l := &Layer{nin: nin, neurons: make([]*Neuron, nout)}
	for i := range l.neurons {
		l.neurons[i] = NewNeuron(fmt.Sprintf("%s.n%d", name, i), nin, initializer)
	}
	return l
}

// NumInputs returns the input width.
func (l *Layer) NumInputs() int {
	return l.nin
}

// NumOutputs returns the number of neurons.
func (l *Layer) NumOutputs() int {
	return len(l.neurons)
}

// Forward returns one output per neuron.
func (l *Layer) Forward(g *autodiff.Graph, inputs []autodiff.Value) ([]autodiff.Value, error) {
	if err := checkInputs("layer", l.nin, inputs); err != nil {
		return nil, err
	}

	outs := make([]autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		out, err := n.Activate(g, inputs)
		if err != nil {
			return nil, errors.Wrapf(err, "neuron %d", i)
		}
		outs[i] = out
	}
	return outs, nil
}

// Parameters returns the parameters of every neuron in order.
func (l *Layer) Parameters() []*Parameter {
	var params []*Parameter
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}
