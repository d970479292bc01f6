package cmdUtils

import (
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

var (
	errPrefix   string = "ERR"
	fatalPrefix string = "FATAL"
)

const (
	yellow = "\033[33m"
	red    = "\033[31m"
	reset  = "\033[0m"
)

// Diagnostics go here. Swapped out in tests.
var (
	output io.Writer = os.Stderr
	exit             = os.Exit
)

// SetupLogging sets the logrus level from the -v / -vv flags.
func SetupLogging(verbose, veryVerbose bool) {
	log.SetLevel(log.InfoLevel)

	if verbose {
		log.SetLevel(log.DebugLevel)
		log.Debug("Set log level to debug")
	}

	if veryVerbose {
		log.SetLevel(log.TraceLevel)
		log.Debug("Set log level to trace")
	}
}

func LogError(reason string, err error) {
	// Print in yellow
	fmt.Fprintf(output, "%s%s%s %s%s\n", yellow, errPrefix, reset, reason, err)
}

func LogFatalError(reason string, err error) {
	// Print in red
	fmt.Fprintf(output, "%s%s%s %s%s\n", red, fatalPrefix, reset, reason, err)
	exit(1)
}

// HandleErr is fatal for any non-nil err.
func HandleErr(reason string, err error) {
	if err != nil {
		LogFatalError(reason, err)
	}
}

func PrintProgress(startTime time.Time, count uint64, howOften uint64) {
	if count%howOften == 0 {
		if count > howOften {
			// clear last line
			fmt.Fprint(output, "\033[1A\033[K")
		}

		perSec := float64(count) / time.Since(startTime).Seconds()
		perSec /= 1_000

		fmt.Fprintf(output, "%s wrote %dK samples (%.0f Ksamples/s)\n",
			"gendump: ", count/1000, perSec)
	}
}
