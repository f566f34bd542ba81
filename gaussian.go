package main

import (
	"context"
	"io/fs"
	"os"

	"bwestbro.com/gparse/extract"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Quantity is one extracted result with the name it was asked for by
type Quantity struct {
	Name string
	extract.Result
}

// Results holds everything extracted from one log file, in the order
// the extractors were registered
type Results struct {
	File       string
	Quantities []Quantity
}

// Get returns the quantity called name and whether it was extracted
func (r Results) Get(name string) (Quantity, bool) {
	for _, q := range r.Quantities {
		if q.Name == name {
			return q, true
		}
	}
	return Quantity{}, false
}

// ParseGaussian extracts the quantities conf asks for from the
// Gaussian log in filename in a single pass
func ParseGaussian(ctx context.Context, filename string, conf Config) (
	ret Results, err error) {
	ret.File = filename
	f, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = extract.ErrFileNotFound
		}
		return ret, errors.Wrapf(err, "%s", filename)
	}
	defer f.Close()
	exts := conf.Extractors(extract.WithLogger(
		logger.Desugar().With(zap.String("file", filename)),
	))
	err = extract.Scan(ctx, f, exts...)
	if err != nil {
		return ret, errors.Wrapf(err, "%s", filename)
	}
	for _, e := range exts {
		if !conf.Wants(e.Name()) {
			continue
		}
		res, err := e.Result()
		if err != nil {
			return ret, errors.Wrapf(err, "%s", filename)
		}
		ret.Quantities = append(ret.Quantities, Quantity{
			Name:   e.Name(),
			Result: res,
		})
	}
	logger.Debugw("parsed log",
		"file", filename,
		"quantities", len(ret.Quantities),
	)
	return ret, nil
}

// ParseFiles runs ParseGaussian over filenames, at most conf.Workers
// at a time, and returns the results in the same order
func ParseFiles(ctx context.Context, filenames []string, conf Config) (
	[]Results, error) {
	ret := make([]Results, len(filenames))
	g, ctx := errgroup.WithContext(ctx)
	if conf.Workers > 0 {
		g.SetLimit(conf.Workers)
	}
	for i, filename := range filenames {
		i, filename := i, filename
		g.Go(func() error {
			res, err := ParseGaussian(ctx, filename, conf)
			if err != nil {
				return err
			}
			ret[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}
