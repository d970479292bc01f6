package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	cmdUtils "magplot/pkg/cmd-utils"
	"magplot/pkg/samples"
)

var (
	verbose     = flag.Bool("v", false, "Turn on verbose output")
	veryVerbose = flag.Bool("vv", false, "Turn on very verbose output")
	outFile     = flag.String("o", "dump.csv", "Output file, - for stdout")
	count       = flag.Int("n", 720, "Number of samples")
	radius      = flag.Float64("r", 500, "Field strength in raw counts")
	offX        = flag.Float64("ox", 0, "Hard-iron offset on x")
	offY        = flag.Float64("oy", 0, "Hard-iron offset on y")
	offZ        = flag.Float64("oz", 0, "Hard-iron offset on z")
	scaleX      = flag.Float64("sx", 1, "Soft-iron scale on x")
	scaleY      = flag.Float64("sy", 1, "Soft-iron scale on y")
	tilt        = flag.Float64("tilt", 0, "Sensor tilt in degrees")
	noise       = flag.Float64("noise", 0, "Gaussian noise standard deviation in counts")
	seed        = flag.Uint64("seed", 1, "Noise seed")
)

const progressEvery = 10_000

// Params shapes the synthetic rotation: one full turn of the sensor around
// its vertical axis, as seen by a magnetometer with the given distortions.
type Params struct {
	N              int
	Radius         float64
	OffX, OffY     float64
	OffZ           float64
	ScaleX, ScaleY float64
	Tilt           float64 // radians
	Noise          float64
	Seed           uint64
}

// Generate produces p.N samples rounded to whole counts, as the sensor
// reports them.
func Generate(p Params) *samples.Samples {
	rng := rand.New(rand.NewPCG(p.Seed, p.Seed))
	jitter := func() float64 {
		if p.Noise == 0 {
			return 0
		}
		return rng.NormFloat64() * p.Noise
	}

	start := time.Now()
	s := samples.New()
	for i := 0; i < p.N; i++ {
		theta := 2 * math.Pi * float64(i) / float64(p.N)
		hx := p.Radius * math.Cos(theta)
		hy := p.Radius * math.Sin(theta)

		// tilt about the y axis leaks part of x into z
		x := hx*math.Cos(p.Tilt)*p.ScaleX + p.OffX + jitter()
		y := hy*p.ScaleY + p.OffY + jitter()
		z := hx*math.Sin(p.Tilt) + p.OffZ + jitter()

		s.Append(samples.Sample{X: math.Round(x), Y: math.Round(y), Z: math.Round(z)})
		if log.IsLevelEnabled(log.DebugLevel) {
			cmdUtils.PrintProgress(start, uint64(i+1), progressEvery)
		}
	}
	return s
}

func main() {
	flag.Parse()
	cmdUtils.SetupLogging(*verbose, *veryVerbose)

	if *count <= 0 {
		fmt.Println("Sample count must be positive.")
		flag.Usage()
		os.Exit(-1)
	}

	s := Generate(Params{
		N:      *count,
		Radius: *radius,
		OffX:   *offX,
		OffY:   *offY,
		OffZ:   *offZ,
		ScaleX: *scaleX,
		ScaleY: *scaleY,
		Tilt:   *tilt * math.Pi / 180,
		Noise:  *noise,
		Seed:   *seed,
	})

	var out io.Writer
	if *outFile == "-" {
		out = os.Stdout
	} else {
		f, err := os.Create(*outFile)
		cmdUtils.HandleErr("", err)
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	cmdUtils.HandleErr("writing dump: ", samples.Write(w, s))
	cmdUtils.HandleErr("writing dump: ", w.Flush())

	log.Infof("Wrote %d samples to %s", s.Len(), *outFile)
}
