package nn

import "github.com/born-ml/micrograd/internal/autodiff"

// Parameter represents a trainable scalar of a neural network.
//
// Its data lives outside any graph. Bind wraps the current data as a leaf in a
// graph; after a backward pass over that graph, Grad reports the gradient of
// the bound leaf.
//
// Example:
//
//	w := nn.NewParameter("w", 0.5)
//	g := autodiff.NewGraph()
//	y := w.Bind(g).MulScalar(3)
//	y.Backward()
//	w.Grad() // 3
type Parameter struct {
	name  string         // Parameter name (e.g., "l0.n1.w2")
	data  float64        // Current value
	node  autodiff.Value // Leaf from the most recent Bind
	bound bool
}

// NewParameter creates a new trainable parameter.
func NewParameter(name string, data float64) *Parameter {
	return &Parameter{
		name: name,
		data: data,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Data returns the current value.
func (p *Parameter) Data() float64 {
	return p.data
}

// SetData replaces the value and drops the current binding, so the next
// Bind creates a leaf holding the new value.
func (p *Parameter) SetData(data float64) {
	p.data = data
	p.bound = false
}

// Bind returns the leaf of p in g, creating it on first use.
//
// Repeated calls with the same graph return the same leaf, so a parameter
// used by several forward passes in one graph accumulates the gradient of
// all of them.
func (p *Parameter) Bind(g *autodiff.Graph) autodiff.Value {
	if p.bound && p.node.Graph() == g && p.node.Valid() {
		return p.node
	}
	p.node = g.Leaf(p.data).WithLabel(p.name)
	p.bound = true
	return p.node
}

// Node returns the bound leaf, if it is still live.
func (p *Parameter) Node() (autodiff.Value, bool) {
	if !p.bound || !p.node.Valid() {
		return autodiff.Value{}, false
	}
	return p.node, true
}

// Grad returns the gradient of the bound leaf, or 0 if there is none.
func (p *Parameter) Grad() float64 {
	v, ok := p.Node()
	if !ok {
		return 0
	}
	return v.Grad()
}
