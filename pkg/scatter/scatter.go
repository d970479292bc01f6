package scatter

import (
	"errors"
	"image"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	log "github.com/sirupsen/logrus"

	"magplot/pkg/samples"
)

// Default figure geometry: 6.4x4.8in at 100dpi, a 640x480 image.
const (
	Width  = 6.4 * vg.Inch
	Height = 4.8 * vg.Inch
	DPI    = 100
)

// New builds a scatter plot of the x/y pairs of s with default axes, no
// title and no labels. Points with a NaN or infinite coordinate are left
// out of the plot.
func New(s *samples.Samples) (*plot.Plot, error) {
	if len(s.X) != len(s.Y) {
		return nil, errors.New("x and y arrays must be of the same size")
	}

	p := plot.New()

	pts := finite(s.XYs())
	if dropped := s.Len() - len(pts); dropped > 0 {
		log.Debugf("Leaving out %d non-finite points", dropped)
	}

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	p.Add(sc)

	return p, nil
}

func finite(pts plotter.XYs) plotter.XYs {
	out := pts[:0]
	for _, pt := range pts {
		if isFinite(pt.X) && isFinite(pt.Y) {
			out = append(out, pt)
		}
	}
	return out
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Render rasterises p into a w x h image.
func Render(p *plot.Plot, w, h vg.Length) image.Image {
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(DPI))
	p.Draw(draw.New(c))
	return c.Image()
}

// Save writes p to path. The format follows the file extension.
func Save(p *plot.Plot, path string) error {
	return p.Save(Width, Height, path)
}
