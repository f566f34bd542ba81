package extract

import (
	"bufio"
	"context"
	"io"

	"github.com/cockroachdb/errors"
)

// maxLine bounds a single log line. Gaussian echoes route sections
// and basis sets that can be far longer than bufio's default.
const maxLine = 1 << 20

// Scan feeds every line of r, in order, to each of exts and then
// finishes them. Extractors that fail drop out without disturbing the
// others, and Scan returns the first failure with any later ones
// attached.
func Scan(ctx context.Context, r io.Reader, exts ...*Extractor) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	var num int
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		num++
		line := Line{Num: num, Text: scanner.Text()}
		for _, e := range exts {
			e.Consume(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "reading line %d", num+1)
	}
	var err error
	for _, e := range exts {
		err = errors.CombineErrors(err, e.Finish())
	}
	return err
}
