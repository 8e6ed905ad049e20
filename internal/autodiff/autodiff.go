// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// A Graph is an arena of nodes. Every arithmetic call on a Value appends a
// new node that references its operands by arena index, so the parent
// relation is acyclic by construction and the arena owns every node for the
// lifetime of the graph.
//
// Example:
//
//	g := autodiff.NewGraph()
//	a := g.Leaf(2)
//	b := g.Leaf(-3)
//	c := g.Leaf(10)
//	d := a.Mul(b).Add(c) // d = a*b + c = 4
//
//	d.Backward()
//	a.Grad() // -3
//	b.Grad() // 2
//	c.Grad() // 1
//
// Gradients accumulate: calling Backward twice without ZeroGrad in between
// doubles every gradient.
package autodiff

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// NodeID is the arena index of a node. It is the node's identity: two nodes
// holding the same value are distinct vertices.
type NodeID int

// node is one vertex of the computation graph.
type node struct {
	value    float64
	grad     float64
	op       ops.Kind
	exponent float64   // Only meaningful for ops.Pow
	parents  [2]NodeID // First op.Arity() entries are valid
	label    string
}

// Graph owns the nodes of one or more forward computations.
//
// A Graph is not safe for concurrent use.
type Graph struct {
	nodes      []node
	generation uint64 // Incremented by Reset to invalidate old handles
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make([]node, 0, 64), // Pre-allocate for common case
	}
}

// Len returns the number of nodes in the arena.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Reset discards every node. Values created before Reset must not be used
// afterwards; doing so panics.
func (g *Graph) Reset() {
	g.nodes = g.nodes[:0]
	g.generation++
}

// Value returns the handle of an existing node.
func (g *Graph) Value(id NodeID) Value {
	g.check(id)
	return Value{graph: g, id: id, generation: g.generation}
}

// Values returns handles for ids in the same order.
func (g *Graph) Values(ids []NodeID) []Value {
	out := make([]Value, len(ids))
	for i, id := range ids {
		out[i] = g.Value(id)
	}
	return out
}

// Leaf wraps a constant or input as a node with no parents.
func (g *Graph) Leaf(value float64) Value {
	return g.push(node{value: value, op: ops.Leaf})
}

// Leaves wraps each element of values as a leaf.
func (g *Graph) Leaves(values []float64) []Value {
	out := make([]Value, len(values))
	for i, v := range values {
		out[i] = g.Leaf(v)
	}
	return out
}

// push appends n to the arena and returns its handle.
func (g *Graph) push(n node) Value {
	g.nodes = append(g.nodes, n)
	return Value{graph: g, id: NodeID(len(g.nodes) - 1), generation: g.generation}
}

// apply builds a node for an operation over existing operands.
func (g *Graph) apply(kind ops.Kind, exponent float64, operands ...NodeID) Value {
	n := node{op: kind, exponent: exponent}
	in := ops.Operands{Exponent: exponent}
	in.A = g.nodes[operands[0]].value
	n.parents[0] = operands[0]
	if kind.Arity() == 2 {
		in.B = g.nodes[operands[1]].value
		n.parents[1] = operands[1]
	}
	n.value = ops.Forward(kind, in)
	return g.push(n)
}

// operands collects the rule input of n from its parents.
func (g *Graph) operands(n *node) ops.Operands {
	in := ops.Operands{Exponent: n.exponent}
	switch n.op.Arity() {
	case 2:
		in.B = g.nodes[n.parents[1]].value
		fallthrough
	case 1:
		in.A = g.nodes[n.parents[0]].value
	}
	return in
}

func (g *Graph) check(id NodeID) {
	if id < 0 || int(id) >= len(g.nodes) {
		panic(fmt.Sprintf("autodiff: node %d out of range [0, %d)", id, len(g.nodes)))
	}
}
