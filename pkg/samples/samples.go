package samples

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
)

// Columns are the positional field names of a dump row.
var Columns = [3]string{"x", "y", "z"}

// Sample is one magnetometer reading, one row of a dump.
type Sample struct {
	X, Y, Z float64
}

func (s Sample) String() string { return fmt.Sprintf("(%g, %g, %g)", s.X, s.Y, s.Z) }

// Samples holds the readings of a dump as three parallel sequences in file
// order. The sequences always have the same length.
type Samples struct {
	X []float64
	Y []float64
	Z []float64
}

func New() *Samples { return &Samples{} }

func (s *Samples) Append(smp Sample) {
	s.X = append(s.X, smp.X)
	s.Y = append(s.Y, smp.Y)
	s.Z = append(s.Z, smp.Z)
}

func (s *Samples) Len() int        { return len(s.X) }
func (s *Samples) At(i int) Sample { return Sample{X: s.X[i], Y: s.Y[i], Z: s.Z[i]} }

// XYs returns the x/y pairs for plotting. Z is kept on the Samples but is
// not part of the 2D view.
func (s *Samples) XYs() plotter.XYs {
	pts := make(plotter.XYs, s.Len())
	for i := range pts {
		pts[i].X = s.X[i]
		pts[i].Y = s.Y[i]
	}
	return pts
}
