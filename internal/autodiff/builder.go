package autodiff

import "github.com/born-ml/micrograd/internal/autodiff/ops"

// Add returns v + other.
func (v Value) Add(other Value) Value {
	return v.sameGraph(other).apply(ops.Add, 0, v.id, other.id)
}

// Mul returns v * other.
func (v Value) Mul(other Value) Value {
	return v.sameGraph(other).apply(ops.Mul, 0, v.id, other.id)
}

// Pow returns v ** n. The exponent is a constant, not a node, so no
// gradient flows to it.
func (v Value) Pow(n float64) Value {
	return v.sameGraph().apply(ops.Pow, n, v.id)
}

// Exp returns e ** v.
func (v Value) Exp() Value {
	return v.sameGraph().apply(ops.Exp, 0, v.id)
}

// Tanh returns the hyperbolic tangent of v.
func (v Value) Tanh() Value {
	return v.sameGraph().apply(ops.Tanh, 0, v.id)
}

// Neg returns -v, built as v * -1.
func (v Value) Neg() Value {
	return v.MulScalar(-1)
}

// Sub returns v - other, built as v + (-other).
func (v Value) Sub(other Value) Value {
	return v.Add(other.Neg())
}

// Div returns v / other, built as v * other**-1.
// A zero divisor yields ±Inf or NaN; nothing is guarded.
func (v Value) Div(other Value) Value {
	return v.Mul(other.Pow(-1))
}

// AddScalar returns v + c, promoting c to a fresh leaf.
func (v Value) AddScalar(c float64) Value {
	return v.Add(v.sameGraph().Leaf(c))
}

// MulScalar returns v * c, promoting c to a fresh leaf.
func (v Value) MulScalar(c float64) Value {
	return v.Mul(v.sameGraph().Leaf(c))
}

// SubScalar returns v - c.
func (v Value) SubScalar(c float64) Value {
	return v.Sub(v.sameGraph().Leaf(c))
}

// DivScalar returns v / c.
func (v Value) DivScalar(c float64) Value {
	return v.Div(v.sameGraph().Leaf(c))
}

// RSub returns c - v.
func (v Value) RSub(c float64) Value {
	return v.sameGraph().Leaf(c).Add(v.Neg())
}

// RDiv returns c / v.
func (v Value) RDiv(c float64) Value {
	return v.sameGraph().Leaf(c).Mul(v.Pow(-1))
}

// Sum folds values onto start with Add, left to right.
// With no values it returns start itself.
func (g *Graph) Sum(start Value, values ...Value) Value {
	acc := start
	for _, v := range values {
		acc = acc.Add(v)
	}
	return acc
}
