package autodiff_test

import (
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkOrder asserts every node appears once and parents come first.
func checkOrder(t *testing.T, g *autodiff.Graph, order []autodiff.NodeID) {
	t.Helper()

	index := make(map[autodiff.NodeID]int, len(order))
	for i, id := range order {
		_, dup := index[id]
		require.False(t, dup, "node %d appears twice", id)
		index[id] = i
	}

	for i, id := range order {
		for _, p := range g.Value(id).Parents() {
			pi, ok := index[p.ID()]
			require.True(t, ok, "parent %d of %d missing", p.ID(), id)
			assert.Less(t, pi, i, "parent %d after child %d", p.ID(), id)
		}
	}
}

func TestTopologicalOrder_Diamond(t *testing.T) {
	g := autodiff.NewGraph()
	a := g.Leaf(2)
	left := a.MulScalar(3)
	right := a.Exp()
	top := left.Add(right)

	order := g.TopologicalOrder(top)

	checkOrder(t, g, order)
	assert.Equal(t, top.ID(), order[len(order)-1])
	assert.Equal(t, 5, len(order)) // a, 3, left, right, top
}

func TestTopologicalOrder_SkipsUnreachable(t *testing.T) {
	g := autodiff.NewGraph()
	a := g.Leaf(1)
	b := g.Leaf(2)
	unrelated := b.Tanh()
	c := a.Pow(2)

	order := g.TopologicalOrder(c)

	assert.Equal(t, []autodiff.NodeID{a.ID(), c.ID()}, order)
	assert.NotContains(t, order, unrelated.ID())
	assert.NotContains(t, order, b.ID())
}

func TestTopologicalOrder_EqualValuesAreDistinct(t *testing.T) {
	g := autodiff.NewGraph()
	a := g.Leaf(1)
	b := g.Leaf(1)
	c := a.Add(b)

	order := g.TopologicalOrder(c)

	assert.Len(t, order, 3)
	c.Backward()
	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, 1.0, b.Grad())
}

func TestTopologicalOrder_DeepChain(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Leaf(0.1)
	v := x
	for i := 0; i < 10000; i++ {
		v = v.AddScalar(0)
	}

	order := v.Backward()

	checkOrder(t, g, order)
	assert.Equal(t, g.Len(), len(order))
	assert.Equal(t, 1.0, x.Grad())
}

func TestBackward_MatchesGradCheck(t *testing.T) {
	fns := map[string]autodiff.Func{
		"poly": func(_ *autodiff.Graph, in []autodiff.Value) autodiff.Value {
			x, y := in[0], in[1]
			return x.Pow(3).Add(x.Mul(y)).Sub(y.Pow(2).MulScalar(0.5))
		},
		"exp_div": func(_ *autodiff.Graph, in []autodiff.Value) autodiff.Value {
			x, y := in[0], in[1]
			return x.Exp().Div(y.AddScalar(2))
		},
		"tanh_shared": func(g *autodiff.Graph, in []autodiff.Value) autodiff.Value {
			x, y := in[0], in[1]
			h := x.Mul(y).Tanh()
			return g.Sum(h, h.Mul(h), x.Neg())
		},
	}

	for name, fn := range fns {
		t.Run(name, func(t *testing.T) {
			res, err := autodiff.GradCheck(fn, []float64{0.7, -0.3}, autodiff.GradCheckConfig{})
			require.NoError(t, err)
			assert.Len(t, res.Analytic, 2)
			assert.Less(t, res.MaxError, 1e-5)
		})
	}
}
