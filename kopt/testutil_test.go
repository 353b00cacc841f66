// Package kopt_test provides lightweight fixtures shared across *_test.go
// files in this package.
package kopt_test

import (
	"math"

	"github.com/vectorpath/koptsolver/graph"
)

// s1Weights is the 4-city symmetric fixture: A,B,C,D with
// AB=20, AC=42, AD=35, BC=30, BD=34, CD=12 (A=0,B=1,C=2,D=3).
func s1Graph() *graph.Dense {
	w := [][]float64{
		{0, 20, 42, 35},
		{20, 0, 30, 34},
		{42, 30, 0, 12},
		{35, 34, 12, 0},
	}
	g, err := graph.NewDense(w)
	if err != nil {
		panic(err)
	}

	return g
}

// s3Points is the 10 fixed 2-D point fixture used for the nearest-neighbor
// scenario.
var s3Points = [][2]float64{
	{235, 170}, {326, 212}, {215, 430}, {511, 693}, {806, 463},
	{504, 62}, {434, 742}, {487, 614}, {719, 147}, {182, 449},
}

// euclidGraph builds a complete symmetric graph from 2-D points using
// Euclidean distance.
func euclidGraph(pts [][2]float64) *graph.Dense {
	n := len(pts)
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dx := pts[i][0] - pts[j][0]
			dy := pts[i][1] - pts[j][1]
			w[i][j] = math.Hypot(dx, dy)
		}
	}
	g, err := graph.NewDense(w)
	if err != nil {
		panic(err)
	}

	return g
}

// unitWeightGraph builds a complete symmetric graph of n vertices where
// every edge has weight 1 (scenario S2).
func unitWeightGraph(n int) *graph.Dense {
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
		for j := range w[i] {
			if i != j {
				w[i][j] = 1
			}
		}
	}
	g, err := graph.NewDense(w)
	if err != nil {
		panic(err)
	}

	return g
}
