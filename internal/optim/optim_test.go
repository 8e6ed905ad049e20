package optim

import (
	"math"
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quadratic binds p into a fresh graph and backprops (p - 3)².
func quadratic(p *nn.Parameter) float64 {
	g := autodiff.NewGraph()
	loss := p.Bind(g).SubScalar(3).Pow(2)
	loss.Backward()
	return loss.Data()
}

func TestSGD_Step(t *testing.T) {
	p := nn.NewParameter("x", 1)
	opt := NewSGD([]*nn.Parameter{p}, SGDConfig{LR: 0.1})

	quadratic(p) // grad = 2(1-3) = -4
	opt.Step()

	assert.InDelta(t, 1.4, p.Data(), 1e-12)
	assert.Equal(t, 0.1, opt.GetLR())
}

func TestSGD_Defaults(t *testing.T) {
	opt := NewSGD(nil, SGDConfig{})
	assert.Equal(t, 0.01, opt.GetLR())

	opt.SetLR(0.5)
	assert.Equal(t, 0.5, opt.GetLR())
}

func TestSGD_Momentum(t *testing.T) {
	p := nn.NewParameter("x", 1)
	opt := NewSGD([]*nn.Parameter{p}, SGDConfig{LR: 0.1, Momentum: 0.9})

	quadratic(p) // grad -4, velocity -4
	opt.Step()
	require.InDelta(t, 1.4, p.Data(), 1e-12)

	quadratic(p) // grad 2(1.4-3) = -3.2, velocity 0.9*-4 - 3.2 = -6.8
	opt.Step()
	assert.InDelta(t, 1.4+0.68, p.Data(), 1e-12)
}

func TestSGD_Converges(t *testing.T) {
	p := nn.NewParameter("x", -5)
	opt := NewSGD([]*nn.Parameter{p}, SGDConfig{LR: 0.1})

	for i := 0; i < 200; i++ {
		quadratic(p)
		opt.Step()
	}
	assert.InDelta(t, 3.0, p.Data(), 1e-6)
}

func TestAdam_FirstStep(t *testing.T) {
	p := nn.NewParameter("x", 1)
	opt := NewAdam([]*nn.Parameter{p}, AdamConfig{LR: 0.1})

	quadratic(p)
	opt.Step()

	// The first bias-corrected step moves by lr * sign(grad).
	assert.InDelta(t, 1.1, p.Data(), 1e-6)
	assert.Equal(t, 1, opt.StepCount())
	assert.Equal(t, 0.1, opt.GetLR())
}

func TestAdam_Converges(t *testing.T) {
	p := nn.NewParameter("x", -2)
	opt := NewAdam([]*nn.Parameter{p}, AdamConfig{LR: 0.05})

	var loss float64
	for i := 0; i < 2000; i++ {
		loss = quadratic(p)
		opt.Step()
	}
	assert.Less(t, loss, 1e-2)
	assert.False(t, math.IsNaN(p.Data()))
}

// TestSGD_ZeroGrad reuses one graph across two backward passes.
func TestSGD_ZeroGrad(t *testing.T) {
	p := nn.NewParameter("x", 2)
	opt := NewSGD([]*nn.Parameter{p}, SGDConfig{LR: 0.1})

	g := autodiff.NewGraph()
	y := p.Bind(g).Pow(2)
	y.Backward()
	y.Backward()
	require.Equal(t, 8.0, p.Grad())

	opt.ZeroGrad()
	assert.Zero(t, p.Grad())

	y.Backward()
	assert.Equal(t, 4.0, p.Grad())
}
