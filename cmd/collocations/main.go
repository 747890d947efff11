package main

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/oklog/ulid/v2"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/cognicore/colloc/pkg/colloc"
	"github.com/cognicore/colloc/pkg/colloc/config"
	"github.com/cognicore/colloc/pkg/colloc/internalerr"
)

const (
	exitOK    = 0
	exitIO    = 1
	exitUsage = 2
)

const invalidMeasureMsg = "Invalid measure. Choose either 'chi-square' or 'PMI'."

type cliArgs struct {
	corpus  string
	config  string
	top     int
	format  string
	verbose bool
	measure string
}

func newApp(args *cliArgs) *kingpin.Application {
	app := kingpin.New("collocations", "Rank adjacent word pairs of a corpus by PMI or chi-square.")
	app.Flag("corpus", "Corpus file (default "+config.DefaultCorpus+")").StringVar(&args.corpus)
	app.Flag("config", "Optional YAML config file").StringVar(&args.config)
	app.Flag("top", "Number of bigrams to print (default 20)").IntVar(&args.top)
	app.Flag("format", "Corpus format: auto, text or html").StringVar(&args.format)
	app.Flag("verbose", "Log run statistics to stderr").Short('v').BoolVar(&args.verbose)
	app.Arg("measure", "Association measure: pmi or chi-square").StringVar(&args.measure)
	return app
}

func run(argv []string, stdout, stderr io.Writer) int {
	var args cliArgs
	app := newApp(&args)
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	exited, exitCode := false, exitOK
	app.Terminate(func(code int) {
		exited, exitCode = true, code
	})

	_, err := app.Parse(argv)
	if exited {
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "collocations: %v\n", err)
		return exitUsage
	}

	logger := log.New(stderr, "collocations: ", 0)
	errColor := color.New(color.FgRed)

	loader := config.Loader{
		ConfigPath: args.config,
		Corpus:     args.corpus,
		Measure:    args.measure,
		Top:        args.top,
		Format:     args.format,
	}
	settings, err := loader.Load()
	if err != nil {
		if errors.Is(err, internalerr.ErrInvalidMeasure) {
			errColor.Fprintln(stderr, invalidMeasureMsg)
		} else {
			errColor.Fprintf(stderr, "collocations: %v\n", err)
		}
		return exitUsage
	}

	start := time.Now()

	res, err := colloc.Run(stdout, settings.CorpusPath, settings.Format, colloc.Options{
		Measure: settings.Measure,
		Limit:   settings.Limit,
	})
	if err != nil {
		errColor.Fprintf(stderr, "collocations: %v\n", err)
		if errors.Is(err, internalerr.ErrInvalidMeasure) {
			return exitUsage
		}
		return exitIO
	}

	if args.verbose {
		runID := ulid.MustNew(ulid.Now(), ulid.Monotonic(rand.Reader, 0)).String()
		logger.Printf("run %s corpus=%s measure=%s tokens=%d unigrams=%d bigrams=%d reported=%d elapsed=%s",
			runID, settings.CorpusPath, settings.Measure, res.Tokens,
			res.Counter.UniqueUnigrams(), res.Counter.UniqueBigrams(), len(res.Top),
			time.Since(start).Round(time.Millisecond))
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
