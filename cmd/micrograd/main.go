// Package main provides the micrograd demonstration CLI.
package main

import (
	"fmt"
	"os"

	"github.com/born-ml/micrograd/autodiff"
	"github.com/born-ml/micrograd/nn"
	"github.com/pkg/errors"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch os.Args[1] {
	case "version":
		fmt.Printf("micrograd %s\n", version)
	case "expr":
		runExpr()
	case "mlp":
		err = runMLP()
	case "gradcheck":
		err = runGradCheck()
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("micrograd - scalar reverse-mode autodiff")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  expr       Differentiate d = a*b + c and print the graph")
	fmt.Println("  mlp        One forward/backward pass of a 3-4-4-1 network")
	fmt.Println("  gradcheck  Compare network gradients with finite differences")
}

// runExpr differentiates the expression and dumps the order used.
func runExpr() {
	g := autodiff.NewGraph()
	a := g.Leaf(2).WithLabel("a")
	b := g.Leaf(-3).WithLabel("b")
	c := g.Leaf(10).WithLabel("c")
	e := a.Mul(b).WithLabel("e")
	d := e.Add(c).WithLabel("d")

	order := d.Backward()
	printOrder(g, order)
}

func printOrder(g *autodiff.Graph, order []autodiff.NodeID) {
	for _, id := range order {
		v := g.Value(id)
		label := v.Label()
		if label == "" {
			label = fmt.Sprintf("#%d", id)
		}
		var parents []string
		for _, p := range v.Parents() {
			parents = append(parents, fmt.Sprintf("#%d", p.ID()))
		}
		fmt.Printf("%-6s %-5s data=%-10.4f grad=%-10.4f parents=%v\n",
			label, v.Op(), v.Data(), v.Grad(), parents)
	}
}

var (
	samples = [][]float64{{2, 3, -1}, {3, -1, 0.5}, {0.5, 1, 1}, {1, 1, -1}}
	targets = []float64{1, -1, -1, 1}
)

func runMLP() error {
	model, err := nn.NewMLP(3, []int{4, 4, 1}, nn.MLPConfig{Seed: 1})
	if err != nil {
		return err
	}

	g := autodiff.NewGraph()
	var preds []autodiff.Value
	for _, x := range samples {
		out, err := model.Predict(g, x)
		if err != nil {
			return err
		}
		preds = append(preds, out...)
	}

	loss, err := nn.MSE(g, preds, targets)
	if err != nil {
		return err
	}
	loss.Backward()

	fmt.Printf("nodes: %d  loss: %.6f\n", g.Len(), loss.Data())
	for i, p := range preds {
		fmt.Printf("pred[%d] = %+.4f (target %+.0f)\n", i, p.Data(), targets[i])
	}
	for _, p := range model.Parameters() {
		fmt.Printf("%-10s data=%+.4f grad=%+.6f\n", p.Name(), p.Data(), p.Grad())
	}
	return nil
}

func runGradCheck() error {
	model, err := nn.NewMLP(3, []int{4, 4, 1}, nn.MLPConfig{Seed: 1})
	if err != nil {
		return err
	}

	fn := func(g *autodiff.Graph, in []autodiff.Value) autodiff.Value {
		out, ferr := model.Forward(g, in)
		if ferr != nil {
			panic(ferr)
		}
		return out[0]
	}

	for i, x := range samples {
		res, err := autodiff.GradCheck(fn, x, autodiff.GradCheckConfig{})
		if err != nil {
			return errors.Wrapf(err, "sample %d", i)
		}
		fmt.Printf("sample %d: max |analytic - numeric| = %.3g\n", i, res.MaxError)
	}
	fmt.Println("ok")
	return nil
}
