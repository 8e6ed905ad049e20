package ops

import "math"

// ExpRule implements output = e ** a.
type ExpRule struct{}

// Forward returns e ** a.
func (ExpRule) Forward(in Operands) float64 {
	return math.Exp(in.A)
}

// Backward reuses the forward result: d(e**a)/da = e**a = out.
func (ExpRule) Backward(_ Operands, out, grad float64) (gradA, gradB float64) {
	return out * grad, 0
}
