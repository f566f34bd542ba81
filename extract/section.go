package extract

// SectionID names a repeatable section of a log, like the link number
// "502" in a Gaussian log
type SectionID string

// Section tracks whether the stream is currently inside one section.
// Sections with other ids are invisible to it.
type Section struct {
	ID      SectionID
	Dialect *Dialect
	inside  bool
}

// NewSection returns a Section watching for id in the markers of d
func NewSection(id SectionID, d *Dialect) *Section {
	return &Section{ID: id, Dialect: d}
}

// Leaves reports whether line closes the section and, if so, marks
// the section as left. It must be checked before the line is
// collected.
func (s *Section) Leaves(line string) bool {
	if s.Dialect.left(line, s.ID) {
		s.inside = false
		return true
	}
	return false
}

// Enters reports whether line opens the section and, if so, marks the
// section as entered. It must be checked after the line would have
// been collected so the marker itself never is.
func (s *Section) Enters(line string) bool {
	if s.Dialect.entered(line, s.ID) {
		s.inside = true
		return true
	}
	return false
}

func (s *Section) Inside() bool { return s.inside }

func (s *Section) reset() { s.inside = false }
