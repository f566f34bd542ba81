package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

// Line is one line of the stream with its 1-based position
type Line struct {
	Num  int
	Text string
}

// Kind selects how a Collector accumulates and what its Result holds
type Kind int

const (
	// Scalars collects one value per matching line into Result.Values
	Scalars Kind = iota
	// Vectors collects every number after a label into Result.Values
	Vectors
	// Symmetric rebuilds a symmetric matrix from lower-triangle rows
	// into Result.Matrix
	Symmetric
	// Geometries collects one N x 3 frame per episode into
	// Result.Frames
	Geometries
)

func (k Kind) String() string {
	switch k {
	case Scalars:
		return "scalars"
	case Vectors:
		return "vectors"
	case Symmetric:
		return "symmetric"
	case Geometries:
		return "geometries"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Collector accumulates the lines an activation window lets through.
// Only the fields relevant to Kind are used.
type Collector struct {
	Kind Kind
	// Pattern selects data lines for Scalars and Geometries. Scalars
	// read the group named Group, Geometries the groups x, y and z.
	Pattern *regexp.Regexp
	Group   string
	// Label is the prefix of Vectors data lines
	Label string
	// Scale multiplies each Geometries coordinate as it is read
	Scale float64
	// Restart drops the values of earlier episodes when a new one
	// opens
	Restart bool

	values []float64
	rows   [][]float64
	matrix *mat.SymDense
	frame  []float64
	frames []*mat.Dense
}

// NewScalars returns a Scalars collector reading the named group of
// pattern. It panics if pattern has no such group.
func NewScalars(pattern *regexp.Regexp, group string) *Collector {
	if pattern.SubexpIndex(group) < 0 {
		panic(fmt.Sprintf("pattern %q has no group %q", pattern, group))
	}
	return &Collector{Kind: Scalars, Pattern: pattern, Group: group}
}

// NewVectors returns a Vectors collector for lines starting with label
func NewVectors(label string) *Collector {
	return &Collector{Kind: Vectors, Label: label}
}

func NewSymmetric() *Collector {
	return &Collector{Kind: Symmetric}
}

// NewGeometries returns a Geometries collector reading the x, y and z
// groups of pattern and multiplying them by scale. It panics if any
// group is missing.
func NewGeometries(pattern *regexp.Regexp, scale float64) *Collector {
	for _, g := range []string{"x", "y", "z"} {
		if pattern.SubexpIndex(g) < 0 {
			panic(fmt.Sprintf("pattern %q has no group %q", pattern, g))
		}
	}
	return &Collector{Kind: Geometries, Pattern: pattern, Scale: scale}
}

// Result is the finalized output of a Collector. Which field is set
// depends on Kind.
type Result struct {
	Kind   Kind
	Values []float64
	Matrix *mat.SymDense
	Frames []*mat.Dense
}

// fortran turns Fortran double precision exponents into ones
// strconv understands
var fortran = strings.NewReplacer("D", "E", "d", "e")

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(fortran.Replace(s), 64)
	if err != nil {
		return 0, errors.Newf("malformed number %q", s)
	}
	return v, nil
}

func (c *Collector) start() {
	switch c.Kind {
	case Scalars, Vectors:
		if c.Restart {
			c.values = nil
		}
	case Symmetric:
		c.rows = nil
	case Geometries:
		if c.Restart {
			c.frames = nil
		}
		c.frame = nil
	}
}

func (c *Collector) collect(line Line) error {
	switch c.Kind {
	case Scalars:
		m := c.Pattern.FindStringSubmatch(line.Text)
		if m == nil {
			return nil
		}
		v, err := parseFloat(m[c.Pattern.SubexpIndex(c.Group)])
		if err != nil {
			return err
		}
		c.values = append(c.values, v)
	case Vectors:
		if !strings.HasPrefix(line.Text, c.Label) {
			return nil
		}
		for _, f := range strings.Fields(line.Text[len(c.Label):]) {
			v, err := parseFloat(f)
			if err != nil {
				return err
			}
			c.values = append(c.values, v)
		}
	case Symmetric:
		return c.collectRow(line.Text)
	case Geometries:
		m := c.Pattern.FindStringSubmatch(line.Text)
		if m == nil {
			return nil
		}
		var xyz [3]float64
		for i, g := range []string{"x", "y", "z"} {
			v, err := parseFloat(m[c.Pattern.SubexpIndex(g)])
			if err != nil {
				return err
			}
			xyz[i] = v * c.Scale
		}
		c.frame = append(c.frame, xyz[:]...)
	}
	return nil
}

// collectRow reads one line of a lower triangle printed in blocks of
// columns, like
//
//	            1             2
//	  1  0.364423D+00
//	  2  0.000000D+00  0.364423D+00
//
// The column header lines carry no exponent and are skipped. A row
// index seen before extends that row with the next block of columns.
func (c *Collector) collectRow(text string) error {
	fields := strings.Fields(text)
	if len(fields) < 2 || !strings.ContainsAny(fields[1], "DdEe") {
		return nil
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil || row < 1 {
		return nil
	}
	vals := make([]float64, 0, len(fields)-1)
	for _, f := range fields[1:] {
		v, err := parseFloat(f)
		if err != nil {
			return err
		}
		vals = append(vals, v)
	}
	switch {
	case row <= len(c.rows):
		c.rows[row-1] = append(c.rows[row-1], vals...)
	case row == len(c.rows)+1:
		c.rows = append(c.rows, vals)
	default:
		return errors.Newf("row %d follows row %d", row, len(c.rows))
	}
	return nil
}

func (c *Collector) stop() error {
	switch c.Kind {
	case Symmetric:
		rows := c.rows
		c.rows = nil
		if len(rows) == 0 {
			c.matrix = &mat.SymDense{}
			return nil
		}
		m := mat.NewSymDense(len(rows), nil)
		for i, row := range rows {
			if len(row) > i+1 {
				return errors.Newf(
					"row %d has %d columns, more than a lower triangle",
					i+1, len(row),
				)
			}
			for j, v := range row {
				m.SetSym(i, j, v)
			}
		}
		c.matrix = m
	case Geometries:
		if len(c.frame) > 0 {
			c.frames = append(c.frames,
				mat.NewDense(len(c.frame)/3, 3, c.frame))
		}
		c.frame = nil
	}
	return nil
}

// Result returns what has been finalized so far. A Symmetric
// collector that never closed an episode returns an empty matrix.
func (c *Collector) Result() Result {
	r := Result{Kind: c.Kind}
	switch c.Kind {
	case Scalars, Vectors:
		r.Values = c.values
	case Symmetric:
		r.Matrix = c.matrix
		if r.Matrix == nil {
			r.Matrix = &mat.SymDense{}
		}
	case Geometries:
		r.Frames = c.frames
	}
	return r
}

func (c *Collector) reset() {
	c.values = nil
	c.rows = nil
	c.matrix = nil
	c.frame = nil
	c.frames = nil
}
