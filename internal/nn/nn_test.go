package nn

import (
	"math"
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequence returns the given values in order, then repeats the last one.
type sequence []float64

func (s *sequence) Next() float64 {
	v := (*s)[0]
	if len(*s) > 1 {
		*s = (*s)[1:]
	}
	return v
}

func TestParameter_BindOncePerGraph(t *testing.T) {
	p := NewParameter("w", 0.5)
	assert.Equal(t, 0.0, p.Grad())

	g := autodiff.NewGraph()
	a := p.Bind(g)
	b := p.Bind(g)
	require.Equal(t, a, b)
	assert.Equal(t, "w", a.Label())

	a.Mul(b).Backward()
	assert.Equal(t, 1.0, p.Grad()) // d(w²)/dw = 2w

	p.SetData(2)
	_, ok := p.Node()
	assert.False(t, ok)
	assert.Equal(t, 2.0, p.Bind(g).Data())
}

func TestParameter_GraphReset(t *testing.T) {
	p := NewParameter("w", 1)
	g := autodiff.NewGraph()
	p.Bind(g).MulScalar(4).Backward()
	require.Equal(t, 4.0, p.Grad())

	g.Reset()
	assert.Equal(t, 0.0, p.Grad())
	assert.NotPanics(t, func() { p.Bind(g) })
}

func TestNeuron_Activate(t *testing.T) {
	vals := sequence{-3, 1, 6.8813735870195432}
	n := NewNeuron("n", 2, &vals)

	g := autodiff.NewGraph()
	out, err := n.Activate(g, g.Leaves([]float64{2, 0}))
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2/2, out.Data(), 1e-6)

	out.Backward()
	params := n.Parameters()
	require.Len(t, params, 3)
	assert.InDelta(t, 1.0, params[0].Grad(), 1e-6)
	assert.InDelta(t, 0.0, params[1].Grad(), 1e-6)
	assert.InDelta(t, 0.5, params[2].Grad(), 1e-6)
	assert.Equal(t, "n.b", params[2].Name())
}

func TestNeuron_InputSize(t *testing.T) {
	n := NewNeuron("n", 3, Constant(1))
	g := autodiff.NewGraph()

	_, err := n.Activate(g, g.Leaves([]float64{1, 2}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputSize))
}

func TestLayer_Forward(t *testing.T) {
	l := NewLayer("l", 3, 4, Constant(0.1))
	assert.Equal(t, 3, l.NumInputs())
	assert.Equal(t, 4, l.NumOutputs())
	assert.Len(t, l.Parameters(), 16)

	g := autodiff.NewGraph()
	outs, err := l.Forward(g, g.Leaves([]float64{1, 1, 1}))
	require.NoError(t, err)
	require.Len(t, outs, 4)
	for _, o := range outs {
		assert.InDelta(t, math.Tanh(0.4), o.Data(), 1e-12)
	}
}

func TestMLP_Shapes(t *testing.T) {
	m, err := NewMLP(3, []int{4, 4, 1}, MLPConfig{Seed: 42})
	require.NoError(t, err)

	assert.Equal(t, []int{3, 4, 4, 1}, m.Sizes())
	assert.Equal(t, 3, m.NumLayers())
	assert.Equal(t, 3, m.Layer(0).NumInputs())
	assert.Equal(t, 1, m.Layer(2).NumOutputs())
	// (3+1)*4 + (4+1)*4 + (4+1)*1
	assert.Len(t, m.Parameters(), 41)

	for _, p := range m.Parameters() {
		assert.GreaterOrEqual(t, p.Data(), -1.0)
		assert.Less(t, p.Data(), 1.0)
	}
}

func TestMLP_Deterministic(t *testing.T) {
	a, err := NewMLP(2, []int{3, 1}, MLPConfig{Seed: 7})
	require.NoError(t, err)
	b, err := NewMLP(2, []int{3, 1}, MLPConfig{Seed: 7})
	require.NoError(t, err)

	for i, p := range a.Parameters() {
		assert.Equal(t, p.Data(), b.Parameters()[i].Data())
	}
}

func TestMLP_Errors(t *testing.T) {
	_, err := NewMLP(0, []int{1}, MLPConfig{})
	assert.Error(t, err)
	_, err = NewMLP(2, nil, MLPConfig{})
	assert.Error(t, err)
	_, err = NewMLP(2, []int{3, 0}, MLPConfig{})
	assert.Error(t, err)

	m, err := NewMLP(2, []int{1}, MLPConfig{})
	require.NoError(t, err)
	g := autodiff.NewGraph()
	_, err = m.Predict(g, []float64{1, 2, 3})
	assert.True(t, errors.Is(err, ErrInputSize))
}

// TestMLP_SharedParametersAccumulate runs two samples through one graph and
// checks each parameter gradient is the sum of the per-sample gradients.
func TestMLP_SharedParametersAccumulate(t *testing.T) {
	m, err := NewMLP(2, []int{3, 1}, MLPConfig{Seed: 1})
	require.NoError(t, err)

	xs := [][]float64{{0.5, -1}, {2, 0.25}}
	ys := []float64{1, -1}

	perSample := make([]float64, len(m.Parameters()))
	for i, x := range xs {
		g := autodiff.NewGraph()
		out, err := m.Predict(g, x)
		require.NoError(t, err)
		loss, err := MSE(g, out, ys[i:i+1])
		require.NoError(t, err)
		loss.Backward()
		for j, p := range m.Parameters() {
			perSample[j] += p.Grad()
		}
	}

	g := autodiff.NewGraph()
	var preds []autodiff.Value
	for _, x := range xs {
		out, err := m.Predict(g, x)
		require.NoError(t, err)
		preds = append(preds, out...)
	}
	loss, err := MSE(g, preds, ys)
	require.NoError(t, err)
	loss.Backward()

	for j, p := range m.Parameters() {
		assert.InDelta(t, perSample[j], p.Grad(), 1e-12, p.Name())
	}

	ZeroGrad(m)
	for _, p := range m.Parameters() {
		assert.Zero(t, p.Grad())
	}
}

func TestMLP_GradCheck(t *testing.T) {
	m, err := NewMLP(2, []int{3, 1}, MLPConfig{Seed: 3})
	require.NoError(t, err)

	fn := func(g *autodiff.Graph, in []autodiff.Value) autodiff.Value {
		out, err := m.Forward(g, in)
		require.NoError(t, err)
		return out[0]
	}

	_, err = autodiff.GradCheck(fn, []float64{0.3, -0.8}, autodiff.GradCheckConfig{})
	assert.NoError(t, err)
}

func TestMSE(t *testing.T) {
	g := autodiff.NewGraph()
	preds := g.Leaves([]float64{1, 2})

	loss, err := MSE(g, preds, []float64{0, 4})
	require.NoError(t, err)
	assert.Equal(t, 5.0, loss.Data())

	loss.Backward()
	assert.Equal(t, 2.0, preds[0].Grad())
	assert.Equal(t, -4.0, preds[1].Grad())

	_, err = MSE(g, preds, []float64{1})
	assert.True(t, errors.Is(err, ErrInputSize))

	empty, err := MSE(g, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, empty.Data())
}
