package main

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
)

// settle is how long a log has to stay quiet before it is parsed
// again, since Gaussian writes in bursts
const settle = 250 * time.Millisecond

// Watch parses filename now and again every time it is written,
// writing the results to w, until ctx is done. A failing pass is
// logged rather than returned, since the log may be caught halfway
// through a line.
func Watch(ctx context.Context, filename string, conf Config, w io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "starting watcher")
	}
	defer watcher.Close()
	// the directory survives the log being replaced
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		return errors.Wrapf(err, "watching %s", filename)
	}
	target := filepath.Clean(filename)
	report := func() {
		res, err := ParseGaussian(ctx, filename, conf)
		if err != nil {
			logger.Warnw("pass failed", "file", filename, "error", err)
			return
		}
		if err := WriteResults(w, conf.Format, []Results{res}); err != nil {
			logger.Errorw("writing results", "error", err)
		}
	}
	report()
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				pending = time.After(settle)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("watcher error", "error", err)
		case <-pending:
			pending = nil
			report()
		}
	}
}
