package main

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ZipGeom formats an N x 3 geometry with one numbered atom per line
func ZipGeom(frame mat.Matrix) string {
	var geom strings.Builder
	r, _ := frame.Dims()
	for i := 0; i < r; i++ {
		fmt.Fprintf(&geom, "%5d%20.12f%20.12f%20.12f\n",
			i+1,
			frame.At(i, 0),
			frame.At(i, 1),
			frame.At(i, 2),
		)
	}
	return geom.String()
}

func WriteVec(w io.Writer, v []float64) {
	for i, f := range v {
		fmt.Fprintf(w, "%5d%20.12f\n", i, f)
	}
}

func WriteMat(w io.Writer, m mat.Matrix) {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		fmt.Fprintf(w, "%5d", i)
		for j := 0; j < c; j++ {
			fmt.Fprintf(w, "%12.8f", m.At(i, j))
		}
		fmt.Fprint(w, "\n")
	}
	fmt.Fprint(w, "\n")
}

// rows copies m into a slice of rows
func rows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	ret := make([][]float64, r)
	for i := range ret {
		ret[i] = make([]float64, c)
		for j := range ret[i] {
			ret[i][j] = m.At(i, j)
		}
	}
	return ret
}
