package main

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// print the difference between column vectors got and want
func vecDiff(got, want []float64) {
	fmt.Printf("\n%20s%20s%20s\n", "Got", "Want", "Diff")
	for i := range got {
		fmt.Printf("%20.12f%20.12f%20.12f\n",
			got[i], want[i], got[i]-want[i],
		)
	}
}

func compMat(a, b mat.Matrix, eps float64) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}
	var diff mat.Dense
	diff.Sub(a, b)
	return mat.Norm(&diff, 2) < eps
}

func compFloat(a, b []float64, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			vecDiff(a, b)
			return false
		}
	}
	return true
}
