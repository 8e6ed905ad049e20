package autodiff

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/diff/fd"
)

// ErrGradientMismatch is returned by GradCheck when the reverse-mode and
// finite-difference gradients disagree.
var ErrGradientMismatch = errors.New("autodiff: gradient mismatch")

// Func builds a scalar expression over inputs in g and returns its root.
type Func func(g *Graph, inputs []Value) Value

// GradCheckConfig controls GradCheck.
type GradCheckConfig struct {
	Step      float64 // Finite-difference step (default: 1e-6)
	Tolerance float64 // Max absolute difference per input (default: 1e-5)
}

// GradCheckResult holds both gradients evaluated by GradCheck.
type GradCheckResult struct {
	Analytic []float64
	Numeric  []float64
	MaxError float64 // Largest |Analytic[i] - Numeric[i]|
	Worst    int     // Index of MaxError
}

const (
	defaultGradCheckStep      = 1e-6
	defaultGradCheckTolerance = 1e-5
)

// GradCheck compares the gradient of fn at the point at computed by Backward
// with a central finite-difference estimate.
//
// fn is rebuilt on a fresh Graph for every evaluation. The result is
// returned even when the check fails so callers can report it.
func GradCheck(fn Func, at []float64, cfg GradCheckConfig) (GradCheckResult, error) {
	if len(at) == 0 {
		return GradCheckResult{}, errors.New("autodiff: GradCheck needs at least one input")
	}
	if cfg.Step <= 0 {
		cfg.Step = defaultGradCheckStep
	}
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = defaultGradCheckTolerance
	}

	g := NewGraph()
	inputs := g.Leaves(at)
	fn(g, inputs).Backward()
	analytic := Gradients(inputs)

	eval := func(x []float64) float64 {
		g := NewGraph()
		return fn(g, g.Leaves(x)).Data()
	}
	numeric := fd.Gradient(nil, eval, at, &fd.Settings{
		Formula: fd.Central,
		Step:    cfg.Step,
	})

	res := GradCheckResult{Analytic: analytic, Numeric: numeric}
	for i := range analytic {
		diff := math.Abs(analytic[i] - numeric[i])
		if math.IsNaN(diff) {
			diff = math.Inf(1)
		}
		if diff > res.MaxError {
			res.MaxError = diff
			res.Worst = i
		}
	}

	if res.MaxError > cfg.Tolerance {
		return res, errors.Wrapf(ErrGradientMismatch,
			"input %d: analytic %g, numeric %g (tolerance %g)",
			res.Worst, analytic[res.Worst], numeric[res.Worst], cfg.Tolerance)
	}
	return res, nil
}
