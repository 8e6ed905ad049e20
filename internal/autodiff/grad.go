package autodiff

// ZeroGrad sets the gradient of every supplied value to 0.
// It does not follow parent links.
func ZeroGrad(values []Value) {
	for _, v := range values {
		v.node().grad = 0
	}
}

// ZeroGrad sets the gradient of every node in the arena to 0.
func (g *Graph) ZeroGrad() {
	for i := range g.nodes {
		g.nodes[i].grad = 0
	}
}

// Gradients returns the gradients of values in the same order.
func Gradients(values []Value) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.Grad()
	}
	return out
}
