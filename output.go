package main

import (
	"encoding/json"
	"fmt"
	"io"

	"bwestbro.com/gparse/extract"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the names WriteResults accepts
var Formats = []string{"text", "json", "yaml"}

type quantityRecord struct {
	Name   string        `json:"name" yaml:"name"`
	Kind   string        `json:"kind" yaml:"kind"`
	Values []float64     `json:"values,omitempty" yaml:"values,omitempty,flow"`
	Matrix [][]float64   `json:"matrix,omitempty" yaml:"matrix,omitempty"`
	Frames [][][]float64 `json:"frames,omitempty" yaml:"frames,omitempty"`
}

type summaryRecord struct {
	Relative []float64 `json:"relative_cm1,omitempty" yaml:"relative_cm1,omitempty,flow"`
	Steps    []float64 `json:"steps_bohr,omitempty" yaml:"steps_bohr,omitempty,flow"`
}

type resultsRecord struct {
	File       string           `json:"file" yaml:"file"`
	Quantities []quantityRecord `json:"quantities" yaml:"quantities"`
	Summary    summaryRecord    `json:"summary" yaml:"summary"`
}

func toRecord(res Results) resultsRecord {
	rec := resultsRecord{
		File:       res.File,
		Quantities: make([]quantityRecord, 0, len(res.Quantities)),
	}
	for _, q := range res.Quantities {
		qr := quantityRecord{
			Name:   q.Name,
			Kind:   q.Kind.String(),
			Values: q.Values,
		}
		switch q.Kind {
		case extract.Symmetric:
			qr.Matrix = rows(q.Matrix)
		case extract.Geometries:
			for _, f := range q.Frames {
				qr.Frames = append(qr.Frames, rows(f))
			}
		}
		rec.Quantities = append(rec.Quantities, qr)
	}
	s := Summarize(res)
	rec.Summary = summaryRecord{Relative: s.Relative, Steps: s.Steps}
	return rec
}

// WriteResults writes results to w in format, one of Formats
func WriteResults(w io.Writer, format string, results []Results) error {
	switch format {
	case "text":
		for _, res := range results {
			writeText(w, res)
		}
		return nil
	case "json":
		recs := make([]resultsRecord, 0, len(results))
		for _, res := range results {
			recs = append(recs, toRecord(res))
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	case "yaml":
		recs := make([]resultsRecord, 0, len(results))
		for _, res := range results {
			recs = append(recs, toRecord(res))
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(recs); err != nil {
			return err
		}
		return enc.Close()
	}
	return errors.Wrapf(ErrUnknownFormat, "%q", format)
}

func writeText(w io.Writer, res Results) {
	fmt.Fprintf(w, "# %s\n", res.File)
	for _, q := range res.Quantities {
		fmt.Fprintf(w, "%s\n", q.Name)
		switch q.Kind {
		case extract.Scalars, extract.Vectors:
			WriteVec(w, q.Values)
		case extract.Symmetric:
			WriteMat(w, q.Matrix)
		case extract.Geometries:
			for i, f := range q.Frames {
				fmt.Fprintf(w, "step %d\n", i+1)
				fmt.Fprint(w, ZipGeom(f))
			}
		}
	}
	s := Summarize(res)
	if len(s.Relative) == 0 && len(s.Steps) == 0 {
		return
	}
	fmt.Fprintf(w, "summary\n%5s%20s%20s\n", "Step", "ΔE/cm-1", "RMSD/bohr")
	n := len(s.Relative)
	if len(s.Steps)+1 > n {
		n = len(s.Steps) + 1
	}
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "%5d", i+1)
		if i < len(s.Relative) {
			fmt.Fprintf(w, "%20.4f", s.Relative[i])
		} else {
			fmt.Fprintf(w, "%20s", "")
		}
		if i > 0 && i-1 < len(s.Steps) {
			fmt.Fprintf(w, "%20.8f", s.Steps[i-1])
		}
		fmt.Fprint(w, "\n")
	}
}
