package main

import (
	"math"
	"testing"

	"bwestbro.com/gparse/extract"
	"gonum.org/v1/gonum/mat"
)

func TestRelative(t *testing.T) {
	got := Relative(mat.NewDense(3, 1, []float64{1, 2, 3}))
	want := mat.NewDense(3, 1, []float64{0, 1, 2})
	if !compMat(got, want, 1e-14) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestRMSD(t *testing.T) {
	a := mat.NewDense(3, 1, []float64{1, 2, 3})
	b := mat.NewDense(3, 1, []float64{4, 5, 6})
	got := RMSD(a, b)
	want := 3.0
	if got != want {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestSummarize(t *testing.T) {
	frame := func(z float64) *mat.Dense {
		return mat.NewDense(2, 3, []float64{0, 0, z, 0, 0, -z})
	}
	res := Results{
		Quantities: []Quantity{
			{Name: "energies", Result: extract.Result{
				Kind:   extract.Scalars,
				Values: []float64{-1.0, -1.5, -1.25},
			}},
			{Name: "coordinates", Result: extract.Result{
				Kind:   extract.Geometries,
				Frames: []*mat.Dense{frame(1), frame(2), frame(2)},
			}},
		},
	}
	got := Summarize(res)
	h := extract.HartreeToWavenumber
	want := []float64{0.5 * h, 0, 0.25 * h}
	if !compFloat(got.Relative, want, 1e-9) {
		t.Errorf("Relative: got %v, wanted %v\n", got.Relative, want)
	}
	want = []float64{math.Sqrt(2.0 / 6.0), 0}
	if !compFloat(got.Steps, want, 1e-14) {
		t.Errorf("Steps: got %v, wanted %v\n", got.Steps, want)
	}
}

func TestSummarizeAtomCountChanges(t *testing.T) {
	res := Results{
		Quantities: []Quantity{
			{Name: "coordinates", Result: extract.Result{
				Kind: extract.Geometries,
				Frames: []*mat.Dense{
					mat.NewDense(1, 3, nil),
					mat.NewDense(2, 3, nil),
				},
			}},
		},
	}
	got := Summarize(res)
	if len(got.Steps) != 0 || len(got.Relative) != 0 {
		t.Errorf("got %v, wanted empty summary\n", got)
	}
}
