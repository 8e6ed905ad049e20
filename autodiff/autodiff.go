// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Arithmetic on Values records a directed acyclic graph in a Graph arena.
// Backward then computes the gradient of one node with respect to every
// node it depends on in a single reverse traversal.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    a := g.Leaf(2)
//	    b := g.Leaf(-3)
//	    c := g.Leaf(10)
//	    d := a.Mul(b).Add(c) // 4
//
//	    d.Backward()
//	    fmt.Println(a.Grad(), b.Grad(), c.Grad()) // -3 2 1
//	}
package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Graph is the arena that owns every node of a computation.
type Graph = autodiff.Graph

// Value is a handle to a node in a Graph.
type Value = autodiff.Value

// NodeID is the arena index of a node.
type NodeID = autodiff.NodeID

// Op tags the operation that produced a node.
type Op = ops.Kind

// Operation tags.
const (
	OpLeaf = ops.Leaf
	OpAdd  = ops.Add
	OpMul  = ops.Mul
	OpPow  = ops.Pow
	OpExp  = ops.Exp
	OpTanh = ops.Tanh
)

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

// ZeroGrad sets the gradient of every supplied value to 0.
func ZeroGrad(values []Value) {
	autodiff.ZeroGrad(values)
}

// Gradients returns the gradients of values in the same order.
func Gradients(values []Value) []float64 {
	return autodiff.Gradients(values)
}

// Gradient checking

// Func builds a scalar expression over inputs and returns its root.
type Func = autodiff.Func

// GradCheckConfig controls GradCheck.
type GradCheckConfig = autodiff.GradCheckConfig

// GradCheckResult holds the analytic and finite-difference gradients.
type GradCheckResult = autodiff.GradCheckResult

// ErrGradientMismatch is returned when GradCheck exceeds its tolerance.
var ErrGradientMismatch = autodiff.ErrGradientMismatch

// GradCheck compares Backward against a central finite-difference gradient.
//
// Example:
//
//	square := func(_ *autodiff.Graph, in []autodiff.Value) autodiff.Value {
//	    return in[0].Mul(in[0])
//	}
//	res, err := autodiff.GradCheck(square, []float64{3}, autodiff.GradCheckConfig{})
func GradCheck(fn Func, at []float64, cfg GradCheckConfig) (GradCheckResult, error) {
	return autodiff.GradCheck(fn, at, cfg)
}
