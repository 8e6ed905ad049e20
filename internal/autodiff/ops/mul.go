package ops

// MulRule implements output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = b * grad
//   - d(a*b)/db = a, so grad_b = a * grad
type MulRule struct{}

// Forward returns a * b.
func (MulRule) Forward(in Operands) float64 {
	return in.A * in.B
}

// Backward computes input gradients for multiplication.
func (MulRule) Backward(in Operands, _, grad float64) (gradA, gradB float64) {
	return in.B * grad, in.A * grad
}
