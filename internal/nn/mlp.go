package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/pkg/errors"
)

// MLPConfig configures NewMLP.
type MLPConfig struct {
	Seed int64       // Seed of the default U(-1, 1) initializer
	Init Initializer // Overrides the default initializer when set
}

// MLP is a multi-layer perceptron of tanh neurons.
type MLP struct {
	seq   *Sequential
	sizes []int
}

// NewMLP creates a network with nin inputs and one layer per entry of nouts.
// Layer i maps sizes[i] inputs to sizes[i+1] outputs, where
// sizes = [nin] + nouts.
func NewMLP(nin int, nouts []int, cfg MLPConfig) (*MLP, error) {
	if nin <= 0 {
		return nil, errors.Errorf("nn: MLP needs a positive input size, got %d", nin)
	}
	if len(nouts) == 0 {
		return nil, errors.New("nn: MLP needs at least one layer")
	}

	initializer := cfg.Init
	if initializer == nil {
		initializer = defaultInit(cfg.Seed)
	}

	sizes := append([]int{nin}, nouts...)
	layers := make([]Forwarder, len(nouts))
	for i := range nouts {
		if sizes[i+1] <= 0 {
			return nil, errors.Errorf("nn: layer %d has non-positive size %d", i, sizes[i+1])
		}
		layers[i] = NewLayer(fmt.Sprintf("l%d", i), sizes[i], sizes[i+1], initializer)
	}

	return &MLP{seq: NewSequential(layers...), sizes: sizes}, nil
}

// Sizes returns [nin] + nouts.
func (m *MLP) Sizes() []int {
	return append([]int(nil), m.sizes...)
}

// Layer returns the i-th layer.
func (m *MLP) Layer(i int) *Layer {
	return m.seq.Module(i).(*Layer)
}

// NumLayers returns the number of layers.
func (m *MLP) NumLayers() int {
	return m.seq.Len()
}

// Forward runs the inputs through every layer.
func (m *MLP) Forward(g *autodiff.Graph, inputs []autodiff.Value) ([]autodiff.Value, error) {
	return m.seq.Forward(g, inputs)
}

// Predict wraps xs as leaves in g and runs Forward.
func (m *MLP) Predict(g *autodiff.Graph, xs []float64) ([]autodiff.Value, error) {
	return m.Forward(g, g.Leaves(xs))
}

// Parameters returns all weights and biases, layer by layer.
func (m *MLP) Parameters() []*Parameter {
	return m.seq.Parameters()
}
