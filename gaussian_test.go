package main

import (
	"context"
	"testing"

	"bwestbro.com/gparse/extract"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGaussian(t *testing.T) {
	conf, err := DefaultConfig().ToConfig()
	require.NoError(t, err)
	got, err := ParseGaussian(context.Background(), "testfiles/h2.log", conf)
	require.NoError(t, err)
	require.Len(t, got.Quantities, len(extract.Presets()))

	q, ok := got.Get("energies")
	require.True(t, ok)
	want := []float64{-1.11734903, -1.11734950, -1.11734950}
	if !compFloat(q.Values, want, 1e-12) {
		t.Errorf("got %v, wanted %v\n", q.Values, want)
	}
	q, ok = got.Get("hessian")
	require.True(t, ok)
	n, _ := q.Matrix.Dims()
	assert.Equal(t, 6, n)

	_, ok = got.Get("dipole")
	assert.False(t, ok)
}

func TestParseGaussianSelected(t *testing.T) {
	rc := DefaultConfig()
	rc.Quantities = []string{"frequencies"}
	conf, err := rc.ToConfig()
	require.NoError(t, err)
	got, err := ParseGaussian(context.Background(), "testfiles/h2.log", conf)
	require.NoError(t, err)
	require.Len(t, got.Quantities, 1)
	assert.Equal(t, "frequencies", got.Quantities[0].Name)
	assert.Equal(t, []float64{4419.5210}, got.Quantities[0].Values)
}

func TestParseGaussianMissing(t *testing.T) {
	conf, err := DefaultConfig().ToConfig()
	require.NoError(t, err)
	_, err = ParseGaussian(context.Background(), "testfiles/nope.log", conf)
	assert.True(t, errors.Is(err, extract.ErrFileNotFound))
}

func TestParseGaussianMalformed(t *testing.T) {
	conf, err := DefaultConfig().ToConfig()
	require.NoError(t, err)
	_, err = ParseGaussian(context.Background(), "testfiles/bad.log", conf)
	require.Error(t, err)
	var pe *extract.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "energies", pe.Extractor)
	assert.Equal(t, 2, pe.Line.Num)
	assert.Contains(t, err.Error(), "testfiles/bad.log")
}

func TestParseFiles(t *testing.T) {
	conf, err := LoadConfig("testfiles/test.toml")
	require.NoError(t, err)
	got, err := ParseFiles(context.Background(),
		[]string{"testfiles/h2.log", "testfiles/mp2.log"}, conf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "testfiles/h2.log", got[0].File)
	assert.Equal(t, "testfiles/mp2.log", got[1].File)

	q, ok := got[0].Get("coordinates")
	require.True(t, ok)
	assert.Len(t, q.Frames, 3)
	q, ok = got[0].Get("mp2")
	require.True(t, ok)
	assert.Empty(t, q.Values)

	q, ok = got[1].Get("mp2")
	require.True(t, ok)
	assert.Equal(t, []float64{-76.140203714}, q.Values)
	q, ok = got[1].Get("energies")
	require.True(t, ok)
	assert.Equal(t, []float64{-76.0107465}, q.Values)
}

func TestParseFilesFailure(t *testing.T) {
	conf, err := DefaultConfig().ToConfig()
	require.NoError(t, err)
	_, err = ParseFiles(context.Background(),
		[]string{"testfiles/h2.log", "testfiles/bad.log"}, conf)
	assert.Error(t, err)
}
