package ops

import "math"

// TanhRule implements the hyperbolic tangent: tanh(a) = (e**2a - 1) / (e**2a + 1).
type TanhRule struct{}

// Forward returns tanh(a).
//
// math.Tanh saturates to ±1 where the closed form would divide Inf by Inf.
func (TanhRule) Forward(in Operands) float64 {
	return math.Tanh(in.A)
}

// Backward computes the gradient for tanh.
//
// Since the output tanh(a) is already computed:
// grad_a = grad * (1 - out²).
func (TanhRule) Backward(_ Operands, out, grad float64) (gradA, gradB float64) {
	return (1 - out*out) * grad, 0
}
