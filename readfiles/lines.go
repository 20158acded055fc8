package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/notargets/blazek2d/types"
	"github.com/notargets/blazek2d/utils"
)

// lineReader tracks the line number for error messages.
type lineReader struct {
	reader *bufio.Reader
	name   string
	lineNo int
}

func newLineReader(r io.Reader, name string) *lineReader {
	return &lineReader{
		reader: bufio.NewReader(r),
		name:   name,
	}
}

// getLine returns the next line without its line ending, io.EOF once the input
// is exhausted. A final line without a newline is still returned.
func (lr *lineReader) getLine() (line string, err error) {
	line, err = lr.reader.ReadString('\n')
	if err == io.EOF && len(line) != 0 {
		err = nil
	}
	if err != nil {
		return
	}
	lr.lineNo++
	line = strings.TrimRight(line, "\r\n")
	return
}

// getHeaderLine treats the end of the file as a malformed header.
func (lr *lineReader) getHeaderLine(what string) (line string, err error) {
	if line, err = lr.getLine(); err == io.EOF {
		err = fmt.Errorf("%w: %s: early end of file at line %d, expected %s",
			types.ErrMalformedHeader, lr.name, lr.lineNo+1, what)
	}
	return
}

func (lr *lineReader) skipLines(n int, what string) (err error) {
	for i := 0; i < n; i++ {
		if _, err = lr.getHeaderLine(what); err != nil {
			return
		}
	}
	return
}

// readIntPair parses the first two integers of a header line.
func (lr *lineReader) readIntPair(what string) (a, b int, err error) {
	var (
		line  string
		n     int
		nargs = 2
	)
	if line, err = lr.getHeaderLine(what); err != nil {
		return
	}
	if n, err = fmt.Sscanf(line, "%d %d", &a, &b); err != nil || n < nargs {
		err = fmt.Errorf("%w: %s: line %d: expected %s, read %d of %d integers from [%s]",
			types.ErrMalformedHeader, lr.name, lr.lineNo, what, n, nargs, line)
	}
	return
}

// readValues parses the first len(vals) numbers of a data line. Extra trailing
// numbers are ignored.
func (lr *lineReader) readValues(vals []float64, remaining int) (err error) {
	var (
		line string
	)
	if line, err = lr.getLine(); err == io.EOF {
		err = fmt.Errorf("%w: %s: early end of file at line %d, %d data lines missing",
			types.ErrTruncatedData, lr.name, lr.lineNo+1, remaining)
		return
	} else if err != nil {
		return
	}
	fields := strings.Fields(line)
	if len(fields) < len(vals) {
		err = fmt.Errorf("%w: %s: line %d: read %d values, need %d, line: [%s]",
			types.ErrMalformedData, lr.name, lr.lineNo, len(fields), len(vals), line)
		return
	}
	for i := range vals {
		if vals[i], err = utils.ParseFloat(fields[i]); err != nil {
			err = fmt.Errorf("%w: %s: line %d: %v", types.ErrMalformedData, lr.name, lr.lineNo, err)
			return
		}
	}
	return
}

// Header dimensions whose value count goes past maxValues are rejected, no
// structured 2D file comes near it.
const (
	maxValues     = 1 << 30
	preallocLimit = 1 << 16
)

// checkSize fails when the product of the header dimensions overflows maxValues.
func checkSize(name string, dims ...int) (total int, err error) {
	total = 1
	for _, d := range dims {
		if d != 0 && total > maxValues/d {
			err = fmt.Errorf("%w: %s: dimensions %v hold more than %d values",
				types.ErrMalformedHeader, name, dims, maxValues)
			return
		}
		total *= d
	}
	return
}

// newValues allocates for the declared count but grows as lines are read, a
// lying header can not force a large allocation.
func newValues(declared int) []float64 {
	return make([]float64, 0, min(declared, preallocLimit))
}

func openFile(filename string) (file *os.File, err error) {
	if file, err = os.Open(filename); err != nil {
		err = fmt.Errorf("%w %s: %v", types.ErrFileNotFound, filename, err)
	}
	return
}
