package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/pkg/errors"
)

// MSE returns the sum of squared errors Σ (pred - target)².
//
// The loss is the plain sum; it is not divided by the number of samples.
func MSE(g *autodiff.Graph, preds []autodiff.Value, targets []float64) (autodiff.Value, error) {
	if len(preds) != len(targets) {
		return autodiff.Value{}, errors.Wrapf(ErrInputSize, "mse: %d predictions, %d targets", len(preds), len(targets))
	}
	if len(preds) == 0 {
		return g.Leaf(0), nil
	}

	terms := make([]autodiff.Value, len(preds))
	for i, p := range preds {
		terms[i] = p.SubScalar(targets[i]).Pow(2)
	}
	return g.Sum(terms[0], terms[1:]...), nil
}
