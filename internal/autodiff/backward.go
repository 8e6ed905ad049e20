package autodiff

import "github.com/born-ml/micrograd/internal/autodiff/ops"

// Backward computes the gradient of root with respect to every node it
// depends on and adds it to each node's accumulated gradient.
//
// Algorithm:
//  1. Order the reachable nodes topologically
//  2. Seed the pass gradient of root with 1
//  3. Walk the order in reverse, adding each node's rule contributions
//     into its parents' pass gradients
//  4. Add every pass gradient into the node's accumulated gradient
//
// Backward does not reset gradients first. After ZeroGrad, each reachable
// node holds d(root)/d(node) and root holds 1. Without a reset every pass
// adds the same amount again, so two passes give exactly twice the
// gradients of one.
//
// Returns the topological order used (parents first).
func (g *Graph) Backward(root Value) []NodeID {
	order := g.TopologicalOrder(root)

	// Pass gradients are indexed by arena position; only reachable
	// entries are ever written.
	pass := make([]float64, len(g.nodes))
	pass[root.id] = 1

	for i := len(order) - 1; i >= 0; i-- {
		g.propagate(order[i], pass)
	}

	for _, id := range order {
		g.nodes[id].grad += pass[id]
	}

	return order
}

// propagate accumulates the contributions of node id into its parents.
func (g *Graph) propagate(id NodeID, pass []float64) {
	n := &g.nodes[id]
	arity := n.op.Arity()
	if arity == 0 {
		return
	}

	gradA, gradB := ops.Backward(n.op, g.operands(n), n.value, pass[id])

	pass[n.parents[0]] += gradA
	if arity == 2 {
		pass[n.parents[1]] += gradB
	}
}
