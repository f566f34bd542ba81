// Package extract pulls numeric results out of long, multi-section
// program logs in one forward pass. Each Extractor watches one
// section, opens collection episodes inside it and finalizes what it
// collected into a Result.
package extract

import (
	"regexp"

	"go.uber.org/zap"
)

// Extractor pulls one quantity out of a log. It is fed every line of
// the stream in order and shares no state with other extractors, so
// any number of them can ride the same pass.
type Extractor struct {
	name      string
	section   *Section
	window    Window
	collector *Collector
	condition func() bool
	logger    *zap.Logger
	last      Line
	err       error
}

type Option func(*Extractor)

// WithWindow restricts collection to episodes opened by a line
// matching activator and closed by one matching deactivator. A nil
// deactivator leaves each episode open until the section exits.
func WithWindow(activator, deactivator *regexp.Regexp) Option {
	return func(e *Extractor) {
		e.window.Activator = activator
		e.window.Deactivator = deactivator
	}
}

// WithCondition gates the extractor. cond is called once at the start
// of every pass, and a false result keeps the window shut for the
// whole pass.
func WithCondition(cond func() bool) Option {
	return func(e *Extractor) { e.condition = cond }
}

func WithDialect(d *Dialect) Option {
	return func(e *Extractor) { e.section.Dialect = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Extractor) { e.logger = l }
}

// New returns an Extractor feeding c from section id of a Gaussian
// log, unless WithDialect says otherwise
func New(name string, id SectionID, c *Collector, opts ...Option) *Extractor {
	e := &Extractor{
		name:      name,
		section:   NewSection(id, &Gaussian),
		collector: c,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Reset()
	return e
}

func (e *Extractor) Name() string { return e.name }

func (e *Extractor) Kind() Kind { return e.collector.Kind }

func (e *Extractor) Section() SectionID { return e.section.ID }

func (e *Extractor) Err() error { return e.err }

// Reset prepares e for a fresh pass, discarding everything collected
// and evaluating the condition again
func (e *Extractor) Reset() {
	enabled := e.condition == nil || e.condition()
	e.section.reset()
	e.window.reset(enabled)
	e.collector.reset()
	e.last = Line{}
	e.err = nil
}

// Consume advances e by one line. The returned error is the
// *ParseError that ended this pass, and once set every later line is
// ignored.
func (e *Extractor) Consume(line Line) error {
	if e.err != nil {
		return e.err
	}
	e.last = line
	if e.section.Leaves(line.Text) && e.window.Collecting() {
		e.closeEpisode(line)
	}
	if e.section.Inside() {
		e.step(line)
	}
	if e.section.Enters(line.Text) && e.window.Continuous() &&
		e.window.enabled && !e.window.Collecting() {
		e.openEpisode(line)
	}
	return e.err
}

func (e *Extractor) step(line Line) {
	w := &e.window
	switch {
	case w.Continuous():
		if w.Collecting() {
			e.collect(line)
		}
	case w.deactivates(line.Text):
		e.closeEpisode(line)
	case w.activates(line.Text):
		e.openEpisode(line)
	case w.Collecting():
		e.collect(line)
	}
}

// Finish ends the pass. An episode still open is closed with what it
// has, since some logs stop before the deactivator.
func (e *Extractor) Finish() error {
	if e.err == nil && e.window.Collecting() {
		e.logger.Debug("closing episode at end of stream",
			zap.String("extractor", e.name),
			zap.Int("line", e.last.Num),
		)
		e.closeEpisode(e.last)
	}
	return e.err
}

// Result returns the finalized quantity, or the error that aborted
// the pass
func (e *Extractor) Result() (Result, error) {
	if e.err != nil {
		return Result{Kind: e.collector.Kind}, e.err
	}
	return e.collector.Result(), nil
}

func (e *Extractor) openEpisode(line Line) {
	e.collector.start()
	e.window.open()
	e.logger.Debug("episode opened",
		zap.String("extractor", e.name),
		zap.String("section", string(e.section.ID)),
		zap.Int("line", line.Num),
	)
}

func (e *Extractor) closeEpisode(line Line) {
	e.window.close()
	if err := e.collector.stop(); err != nil {
		e.fail(line, err)
		return
	}
	e.logger.Debug("episode closed",
		zap.String("extractor", e.name),
		zap.String("section", string(e.section.ID)),
		zap.Int("line", line.Num),
	)
}

func (e *Extractor) collect(line Line) {
	if err := e.collector.collect(line); err != nil {
		e.fail(line, err)
	}
}

func (e *Extractor) fail(line Line, err error) {
	e.err = &ParseError{Extractor: e.name, Line: line, Err: err}
	e.logger.Warn("extraction aborted",
		zap.String("extractor", e.name),
		zap.Int("line", line.Num),
		zap.Error(err),
	)
}
