// Package ops defines the differentiation rules of the scalar autodiff engine.
//
// Every node in a computation graph carries a Kind tag. The tag selects a
// stateless Rule that computes:
//   - Forward: the scalar result from the operand values
//   - Backward: the contribution pushed to each operand given the output gradient
//
// Supported operations:
//   - Add: a + b (d/da = 1, d/db = 1)
//   - Mul: a * b (d/da = b, d/db = a)
//   - Pow: a ** n for a fixed real n (d/da = n * a**(n-1))
//   - Exp: e ** a (d/da = e ** a)
//   - Tanh: tanh(a) (d/da = 1 - tanh²(a))
//
// Negation, subtraction and division are composed from these by the graph
// builder and have no rule of their own.
package ops

import "fmt"

// Kind tags the operation that produced a node.
type Kind uint8

// Operation kinds.
const (
	Leaf Kind = iota
	Add
	Mul
	Pow
	Exp
	Tanh
)

var kindNames = [...]string{
	Leaf: "leaf",
	Add:  "+",
	Mul:  "*",
	Pow:  "**",
	Exp:  "exp",
	Tanh: "tanh",
}

// String returns the operator symbol used in graph dumps.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Arity returns the number of operands the operation consumes.
func (k Kind) Arity() int {
	switch k {
	case Add, Mul:
		return 2
	case Pow, Exp, Tanh:
		return 1
	default:
		return 0
	}
}

// Operands carries the operand values a rule reads.
// B is ignored by unary rules; Exponent is only read by Pow.
type Operands struct {
	A, B     float64
	Exponent float64
}

// Rule is the differentiation rule of one operation kind.
//
// Rules read values only. They never see nodes, so they cannot mutate
// the graph.
type Rule interface {
	// Forward returns the result of the operation.
	Forward(in Operands) float64

	// Backward returns the gradient contributions for operands A and B,
	// given the forward result out and the output gradient grad.
	// Unary rules return 0 for B.
	Backward(in Operands, out, grad float64) (gradA, gradB float64)
}

var rules = [...]Rule{
	Add:  AddRule{},
	Mul:  MulRule{},
	Pow:  PowRule{},
	Exp:  ExpRule{},
	Tanh: TanhRule{},
}

// Lookup returns the rule for k. Leaf has no rule.
func Lookup(k Kind) (Rule, bool) {
	if k == Leaf || int(k) >= len(rules) {
		return nil, false
	}
	return rules[k], true
}

// Forward dispatches to the forward rule of k.
// It panics for Leaf and unknown kinds.
func Forward(k Kind, in Operands) float64 {
	r, ok := Lookup(k)
	if !ok {
		panic(fmt.Sprintf("ops: no forward rule for %s", k))
	}
	return r.Forward(in)
}

// Backward dispatches to the backward rule of k.
// Leaf nodes have no operands and receive (0, 0).
func Backward(k Kind, in Operands, out, grad float64) (gradA, gradB float64) {
	r, ok := Lookup(k)
	if !ok {
		return 0, 0
	}
	return r.Backward(in, out, grad)
}
