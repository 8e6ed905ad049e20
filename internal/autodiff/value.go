package autodiff

import (
	"fmt"
	"strconv"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Value is a handle to a node in a Graph.
//
// Values are cheap to copy. The zero Value is not usable.
type Value struct {
	graph      *Graph
	id         NodeID
	generation uint64
}

// Valid reports whether v refers to a live node: it is not the zero Value
// and its graph has not been Reset since v was created.
func (v Value) Valid() bool {
	return v.graph != nil && v.generation == v.graph.generation && int(v.id) < len(v.graph.nodes)
}

// Graph returns the graph that owns the node.
func (v Value) Graph() *Graph {
	return v.graph
}

// ID returns the arena index of the node.
func (v Value) ID() NodeID {
	return v.id
}

// Data returns the forward value. It never changes after construction.
func (v Value) Data() float64 {
	return v.node().value
}

// Grad returns the accumulated gradient.
//
// It is 0 until a backward pass reaches the node, which means "unset",
// not "no influence".
func (v Value) Grad() float64 {
	return v.node().grad
}

// Op returns the operation that produced the node.
func (v Value) Op() ops.Kind {
	return v.node().op
}

// Exponent returns the exponent of a Pow node, 0 otherwise.
func (v Value) Exponent() float64 {
	return v.node().exponent
}

// Parents returns the operands of the node in construction order.
// The same Value appears twice for a node such as a*a.
func (v Value) Parents() []Value {
	n := v.node()
	arity := n.op.Arity()
	out := make([]Value, arity)
	for i := 0; i < arity; i++ {
		out[i] = Value{graph: v.graph, id: n.parents[i], generation: v.generation}
	}
	return out
}

// Label returns the diagnostic label, if any.
func (v Value) Label() string {
	return v.node().label
}

// WithLabel sets a diagnostic label and returns v.
func (v Value) WithLabel(label string) Value {
	v.node().label = label
	return v
}

// Backward runs a backward pass rooted at v. See Graph.Backward.
func (v Value) Backward() []NodeID {
	return v.mustGraph().Backward(v)
}

// String renders the value as Value(data=<v>).
func (v Value) String() string {
	if v.graph == nil {
		return "Value(<nil>)"
	}
	return "Value(data=" + strconv.FormatFloat(v.Data(), 'g', -1, 64) + ")"
}

func (v Value) mustGraph() *Graph {
	if v.graph == nil {
		panic("autodiff: use of zero Value")
	}
	if v.generation != v.graph.generation {
		panic(fmt.Sprintf("autodiff: Value %d used after Graph.Reset", v.id))
	}
	return v.graph
}

func (v Value) node() *node {
	g := v.mustGraph()
	g.check(v.id)
	return &g.nodes[v.id]
}

// sameGraph panics unless every operand belongs to v's graph.
func (v Value) sameGraph(others ...Value) *Graph {
	g := v.mustGraph()
	for _, o := range others {
		if o.mustGraph() != g {
			panic("autodiff: operands belong to different graphs")
		}
		g.check(o.id)
	}
	g.check(v.id)
	return g
}
