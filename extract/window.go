package extract

import "regexp"

type windowState int

const (
	searching windowState = iota
	collecting
)

// Window is the activation window inside a section. Without an
// Activator the whole section is one episode; otherwise an episode
// runs from a line matching Activator to a line matching Deactivator,
// neither of which is collected.
type Window struct {
	Activator   *regexp.Regexp
	Deactivator *regexp.Regexp
	state       windowState
	// enabled is the gate, decided once per pass
	enabled bool
}

// Continuous reports whether the window spans the whole section
func (w *Window) Continuous() bool { return w.Activator == nil }

func (w *Window) Collecting() bool { return w.state == collecting }

func (w *Window) activates(line string) bool {
	return w.enabled && w.state == searching &&
		w.Activator != nil && w.Activator.MatchString(line)
}

func (w *Window) deactivates(line string) bool {
	return w.state == collecting &&
		w.Deactivator != nil && w.Deactivator.MatchString(line)
}

func (w *Window) open() { w.state = collecting }

func (w *Window) close() { w.state = searching }

func (w *Window) reset(enabled bool) {
	w.state = searching
	w.enabled = enabled
}
