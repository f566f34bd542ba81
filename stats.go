package main

import (
	"math"

	"bwestbro.com/gparse/extract"
	"gonum.org/v1/gonum/mat"
)

// Relative makes the values in a relative to its minimum
func Relative(a *mat.Dense) *mat.Dense {
	min := mat.Min(a)
	r, c := a.Dims()
	if c != 1 {
		panic("too many columns")
	}
	ret := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		ret.Set(i, 0, a.At(i, 0)-min)
	}
	return ret
}

// RMSD computes the root-mean-square deviation between matrices a
// and b of the same shape
func RMSD(a, b *mat.Dense) (ret float64) {
	as := a.RawMatrix().Data
	bs := b.RawMatrix().Data
	if len(as) != len(bs) {
		panic("dimension mismatch")
	}
	var count int
	for i := range as {
		// deviation
		diff := as[i] - bs[i]
		// square
		ret += diff * diff
		count++
	}
	// mean
	ret /= float64(count)
	// root
	return math.Sqrt(ret)
}

// Summary describes how a calculation progressed
type Summary struct {
	// Relative SCF energies in cm⁻¹, relative to the lowest
	Relative []float64
	// Steps are the RMSDs in bohr between successive geometries
	Steps []float64
}

// Summarize computes the Summary of res from whichever of its
// energies and coordinates were extracted
func Summarize(res Results) (s Summary) {
	if q, ok := res.Get("energies"); ok && len(q.Values) > 0 {
		rel := Relative(mat.NewDense(len(q.Values), 1, q.Values))
		rel.Scale(extract.HartreeToWavenumber, rel)
		s.Relative = mat.Col(nil, 0, rel)
	}
	if q, ok := res.Get("coordinates"); ok {
		for i := 1; i < len(q.Frames); i++ {
			a, b := q.Frames[i-1], q.Frames[i]
			ar, _ := a.Dims()
			br, _ := b.Dims()
			if ar != br {
				// atom count changed, so steps no longer compare
				break
			}
			s.Steps = append(s.Steps, RMSD(a, b))
		}
	}
	return
}
