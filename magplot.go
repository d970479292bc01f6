package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	log "github.com/sirupsen/logrus"

	cmdUtils "magplot/pkg/cmd-utils"
	"magplot/pkg/locate"
	"magplot/pkg/samples"
	"magplot/pkg/scatter"
	"magplot/pkg/viewer"
)

var once sync.Once

var (
	csvFile     string
	verbose     = flag.Bool("v", false, "Turn on verbose output")
	veryVerbose = flag.Bool("vv", false, "Turn on very verbose output")
	outFile     = flag.String("o", "", "Save the plot to this image file instead of showing it")
)

func init() {
	flag.StringVar(&csvFile, "csvfile", "dump.csv", "path to CSV file")
	flag.StringVar(&csvFile, "c", "dump.csv", "path to CSV file (shorthand)")
	flag.Parse()

	cmdUtils.SetupLogging(*verbose, *veryVerbose)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		fmt.Fprint(os.Stderr, "\b\b")
		log.Infof("Received signal: %s, stopping...", sig)
		once.Do(epilogue)
		os.Exit(0) // Exit after cleanup
	}()
}

func epilogue() {
	log.Debugln("Done!")
}

func main() {
	defer once.Do(epilogue)

	exeDir, err := locate.ExecutableDir()
	cmdUtils.HandleErr("locating executable: ", err)

	path, err := locate.Resolve(csvFile, exeDir)
	cmdUtils.HandleErr("", err)

	data, err := samples.LoadFile(path)
	cmdUtils.HandleErr("", err)
	log.Infof("Loaded %d samples", data.Len())

	p, err := scatter.New(data)
	cmdUtils.HandleErr("plotting: ", err)

	if *outFile != "" {
		cmdUtils.HandleErr("saving plot: ", scatter.Save(p, *outFile))
		log.Infoln("Saved plot to", *outFile)
		return
	}

	img := scatter.Render(p, scatter.Width, scatter.Height)
	cmdUtils.HandleErr("display: ", viewer.Show(filepath.Base(path), img))
}
