package ops

// AddRule implements output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = grad
//   - d(a+b)/db = 1, so grad_b = grad
type AddRule struct{}

// Forward returns a + b.
func (AddRule) Forward(in Operands) float64 {
	return in.A + in.B
}

// Backward passes the output gradient through unchanged to both operands.
func (AddRule) Backward(_ Operands, _, grad float64) (gradA, gradB float64) {
	return grad, grad
}
