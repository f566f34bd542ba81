package extract

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectAll(t *testing.T, c *Collector, lines ...string) {
	t.Helper()
	c.start()
	for i, l := range lines {
		require.NoError(t, c.collect(Line{Num: i + 1, Text: l}))
	}
	require.NoError(t, c.stop())
}

func TestSymmetricBlocks(t *testing.T) {
	c := NewSymmetric()
	collectAll(t, c,
		"                1             2             3",
		"      1  0.100000D+01",
		"      2  0.200000D+00  0.300000D+01",
		"      3 -0.400000D-01  0.500000D+00  0.600000D+01",
		"      4  0.700000D+00  0.800000D+00  0.900000D+00",
		"                4",
		"      4  0.100000D+02",
	)
	m := c.Result().Matrix
	n, _ := m.Dims()
	require.Equal(t, 4, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, m.At(i, j), m.At(j, i), "(%d, %d)", i, j)
		}
	}
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 3.0, m.At(1, 1))
	assert.Equal(t, 6.0, m.At(2, 2))
	assert.Equal(t, 10.0, m.At(3, 3))
	assert.Equal(t, -0.04, m.At(0, 2))
	assert.Equal(t, 0.9, m.At(2, 3))
}

func TestSymmetricEmpty(t *testing.T) {
	c := NewSymmetric()
	r := c.Result()
	require.NotNil(t, r.Matrix)
	n, _ := r.Matrix.Dims()
	assert.Zero(t, n)

	// rows seen but never finalized still leave it empty
	c.start()
	require.NoError(t, c.collect(Line{Num: 1, Text: "  1  0.1D+01"}))
	n, _ = c.Result().Matrix.Dims()
	assert.Zero(t, n)
}

func TestSymmetricErrors(t *testing.T) {
	c := NewSymmetric()
	c.start()
	assert.Error(t, c.collect(Line{Num: 1, Text: "  1  0.1DD+01"}))

	c = NewSymmetric()
	c.start()
	require.NoError(t, c.collect(Line{Num: 1, Text: "  1  0.1D+01"}))
	assert.Error(t, c.collect(Line{Num: 2, Text: "  3  0.1D+01"}))

	c = NewSymmetric()
	c.start()
	require.NoError(t, c.collect(Line{Num: 1, Text: "  1  0.1D+01  0.2D+01"}))
	assert.Error(t, c.stop())
}

func TestVectors(t *testing.T) {
	c := NewVectors(" Frequencies --")
	collectAll(t, c,
		" Frequencies --   1595.5110              3657.0432",
		" Red. masses --      1.0827                 1.0452",
		" Frequencies --   3755.6314",
	)
	assert.Equal(t, []float64{1595.5110, 3657.0432, 3755.6314},
		c.Result().Values)

	bad := NewVectors(" Frequencies --")
	assert.Error(t, bad.collect(Line{Text: " Frequencies --   15x5.5"}))
}

func TestScalarsExtendAcrossEpisodes(t *testing.T) {
	c := NewScalars(regexp.MustCompile(`v=(?P<v>\S+)`), "v")
	collectAll(t, c, "v=1", "noise", "v=2")
	collectAll(t, c, "v=3")
	assert.Equal(t, []float64{1, 2, 3}, c.Result().Values)

	c.Restart = true
	collectAll(t, c, "v=4")
	assert.Equal(t, []float64{4}, c.Result().Values)
}

func TestGeometries(t *testing.T) {
	c := NewGeometries(coordRow, 2)
	collectAll(t, c,
		" Center     Atomic      Atomic             Coordinates (Angstroms)",
		"      1          8           0        0.000000    0.000000    0.117790",
		"      2          1           0        0.000000    0.755453   -0.471161",
	)
	collectAll(t, c, "no atoms here")
	collectAll(t, c,
		"      1          8           0        1.000000    2.000000    3.000000",
	)
	frames := c.Result().Frames
	require.Len(t, frames, 2)
	r, cols := frames[0].Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 2*0.755453, frames[0].At(1, 1))
	assert.Equal(t, 6.0, frames[1].At(0, 2))
}

func TestNewScalarsMissingGroup(t *testing.T) {
	assert.Panics(t, func() {
		NewScalars(regexp.MustCompile(`(?P<a>\d)`), "b")
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "symmetric", Symmetric.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
