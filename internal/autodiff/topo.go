package autodiff

// TopologicalOrder returns every node reachable from root through parent
// links, each exactly once, with every parent placed before its children.
// root is always last.
//
// The order is a depth-first post-order. Visited nodes are tracked by arena
// index, so a node shared by several children is emitted once, at the first
// point where all of its own parents are done.
func (g *Graph) TopologicalOrder(root Value) []NodeID {
	root.sameGraph()
	if root.graph != g {
		panic("autodiff: root belongs to a different graph")
	}

	visited := make([]bool, len(g.nodes))
	order := make([]NodeID, 0, len(g.nodes))

	var visit func(id NodeID)
	visit = func(id NodeID) {
		if visited[id] {
			return
		}
		visited[id] = true
		n := &g.nodes[id]
		for i := 0; i < n.op.Arity(); i++ {
			visit(n.parents[i])
		}
		order = append(order, id)
	}
	visit(root.id)

	return order
}
