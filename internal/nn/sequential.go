package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/pkg/errors"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's output becomes the next module's input.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLayer("l0", 3, 4, initializer),
//	    nn.NewLayer("l1", 4, 1, initializer),
//	)
//
//	outputs, err := model.Forward(g, inputs)
type Sequential struct {
	modules []Forwarder
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Forwarder) *Sequential {
	return &Sequential{
		modules: modules,
	}
}

// Forward applies all modules in sequence.
func (s *Sequential) Forward(g *autodiff.Graph, inputs []autodiff.Value) ([]autodiff.Value, error) {
	output := inputs

	for i, module := range s.modules {
		var err error
		output, err = module.Forward(g, output)
		if err != nil {
			return nil, errors.Wrapf(err, "module %d", i)
		}
	}

	return output, nil
}

// Parameters returns all parameters from all modules.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// Module returns the i-th module.
func (s *Sequential) Module(i int) Forwarder {
	return s.modules[i]
}
