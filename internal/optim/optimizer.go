// Package optim implements parameter update rules for scalar networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read each parameter's gradient from its bound graph leaf and
// write the updated value back with Parameter.SetData. The next forward pass
// binds the new values as fresh leaves.
//
// Example usage:
//
//	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	g := autodiff.NewGraph()
//	preds, _ := model.Predict(g, x)
//	loss, _ := nn.MSE(g, preds, y)
//	loss.Backward()
//	opt.Step()
package optim

import "github.com/born-ml/micrograd/internal/nn"

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies gradient updates to all parameters.
	Step()

	// ZeroGrad clears the gradients of all bound parameters.
	//
	// Step rebinds nothing, so call ZeroGrad before reusing a graph for
	// another backward pass.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// params is a list of parameters that can clear their gradients.
type params []*nn.Parameter

func (ps params) Parameters() []*nn.Parameter {
	return ps
}

func (ps params) zeroGrad() {
	nn.ZeroGrad(ps)
}
