package extract

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	ErrFileNotFound  = errors.New("log file not found")
	ErrUnknownPreset = errors.New("unknown quantity")
)

// ParseError reports a data line that had the right shape but could
// not be read. It ends the pass of the extractor that hit it.
type ParseError struct {
	Extractor string
	Line      Line
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: line %d: %v: %q",
		e.Extractor, e.Line.Num, e.Err, e.Line.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }
