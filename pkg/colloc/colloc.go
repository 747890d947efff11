package colloc

import (
	"io"

	"github.com/cognicore/colloc/pkg/colloc/assoc"
	"github.com/cognicore/colloc/pkg/colloc/ingest"
	"github.com/cognicore/colloc/pkg/colloc/report"
)

// Options configures a collocation run
type Options struct {
	Tokenizer *ingest.Tokenizer // nil means ingest.NewTokenizer()
	Measure   assoc.Measure
	Limit     int // <= 0 means report.DefaultLimit
}

// Result holds every intermediate table of a run
type Result struct {
	Tokens  int
	Counter *assoc.Counter
	Scores  assoc.ScoreTable
	Top     []report.Entry
}

// Analyze runs the tokenize → count → score → select pipeline over text
func Analyze(text string, opts Options) (*Result, error) {
	tok := opts.Tokenizer
	if tok == nil {
		tok = ingest.NewTokenizer()
	}

	tokens := tok.Tokenize(text)
	counter := assoc.Count(tokens)

	scores, err := assoc.Score(counter, opts.Measure)
	if err != nil {
		return nil, err
	}

	return &Result{
		Tokens:  len(tokens),
		Counter: counter,
		Scores:  scores,
		Top:     report.Top(scores, opts.Limit),
	}, nil
}

// Run loads the corpus at path, analyzes it and writes the report to w
func Run(w io.Writer, path string, format ingest.Format, opts Options) (*Result, error) {
	text, err := ingest.LoadCorpus(path, format)
	if err != nil {
		return nil, err
	}

	res, err := Analyze(text, opts)
	if err != nil {
		return nil, err
	}

	if err := report.Render(w, res.Top); err != nil {
		return nil, err
	}
	return res, nil
}
