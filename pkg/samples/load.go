package samples

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ParseError reports a field of a data row that is not a number.
type ParseError struct {
	Line   int
	Column string
	Field  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("line %d: missing column %s", e.Line, e.Column)
	}
	return fmt.Sprintf("line %d: column %s: cannot parse %q as a number", e.Line, e.Column, e.Field)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsHeader reports whether a record is a header row. Only the first field is
// looked at, and the check runs on every row, wherever it appears.
func IsHeader(record []string) bool {
	return len(record) > 0 && record[0] == Columns[0]
}

// Load reads a dump from r. Fields are assigned to x, y and z by position,
// header rows are skipped and extra trailing fields are ignored.
// Any malformed row fails the whole load.
func Load(r io.Reader) (*Samples, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	s := New()
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "samples: could not read rows")
		}

		line, _ := reader.FieldPos(0)
		if IsHeader(record) {
			log.Tracef("Skipping header row on line %d", line)
			continue
		}

		smp, err := parseRecord(record, line)
		if err != nil {
			return nil, err
		}
		log.Traceln("Read sample", smp)
		s.Append(smp)
	}

	return s, nil
}

func parseRecord(record []string, line int) (Sample, error) {
	var vals [3]float64
	for i, col := range Columns {
		if i >= len(record) {
			return Sample{}, &ParseError{Line: line, Column: col}
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(record[i]), 64)
		if err != nil {
			return Sample{}, &ParseError{Line: line, Column: col, Field: record[i], Err: err}
		}
		vals[i] = v
	}
	return Sample{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

// LoadFile opens path and loads it. The file is closed on every return path.
func LoadFile(path string) (*Samples, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "samples: could not open dump")
	}
	defer f.Close()

	log.Infoln("Opened", path)

	s, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "samples: %s", path)
	}
	return s, nil
}
