package samples

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Write emits s in the dump format written by the sensor test harness: an
// x,y,z header followed by one row per sample. Values are formatted with the
// shortest representation that parses back to the same float64.
func Write(w io.Writer, s *Samples) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns[:]); err != nil {
		return errors.Wrap(err, "samples: could not write header")
	}

	row := make([]string, len(Columns))
	for i := 0; i < s.Len(); i++ {
		smp := s.At(i)
		row[0] = formatFloat(smp.X)
		row[1] = formatFloat(smp.Y)
		row[2] = formatFloat(smp.Z)
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "samples: could not write row %d", i)
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "samples: flush")
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
