package extract

import "strings"

// Dialect holds the fixed-format boundary markers of one log flavor.
// Nothing outside this file should know what a marker line looks
// like.
type Dialect struct {
	// EnterPrefix starts every section entry line
	EnterPrefix string
	// EnterLinkPrefix precedes the section id at the end of an
	// entry line, as in the "l" of "l502.exe"
	EnterLinkPrefix string
	// EnterSuffixes are stripped, in order, from the end of an entry
	// line before looking for the id
	EnterSuffixes []string
	// LeavePrefix starts every section exit line, and the first
	// token after it is the section id
	LeavePrefix string
}

// Gaussian is the dialect of Gaussian 98 through 16 log files, where
// sections are links announced like
//
//	 (Enter /opt/g16/l502.exe)
//	 ...
//	 Leave Link  502 at Tue Oct  4 10:11:12 2022, MaxMem= ...
var Gaussian = Dialect{
	EnterPrefix:     " (Enter ",
	EnterLinkPrefix: "l",
	EnterSuffixes:   []string{")", ".exe"},
	LeavePrefix:     " Leave Link",
}

// entered reports whether line is an entry marker naming id
func (d *Dialect) entered(line string, id SectionID) bool {
	if id == "" || !strings.HasPrefix(line, d.EnterPrefix) {
		return false
	}
	rest := strings.TrimRight(line[len(d.EnterPrefix):], " \t\r\n")
	for _, suf := range d.EnterSuffixes {
		rest = strings.TrimSuffix(rest, suf)
	}
	return strings.HasSuffix(rest, d.EnterLinkPrefix+string(id))
}

// left reports whether line is an exit marker naming id
func (d *Dialect) left(line string, id SectionID) bool {
	if id == "" || !strings.HasPrefix(line, d.LeavePrefix) {
		return false
	}
	fields := strings.Fields(line[len(d.LeavePrefix):])
	if len(fields) == 0 {
		return false
	}
	return fields[0] == string(id)
}
