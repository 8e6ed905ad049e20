package ops

import "math"

// PowRule implements output = a ** n, where n is fixed when the node is built.
//
// A negative base with a fractional exponent yields NaN, and a zero base with
// a negative exponent yields ±Inf. Both follow math.Pow and propagate through
// the backward rule unchanged.
type PowRule struct{}

// Forward returns a ** n.
func (PowRule) Forward(in Operands) float64 {
	return math.Pow(in.A, in.Exponent)
}

// Backward computes d(a**n)/da = n * a**(n-1).
func (PowRule) Backward(in Operands, _, grad float64) (gradA, gradB float64) {
	n := in.Exponent
	return n * math.Pow(in.A, n-1) * grad, 0
}
