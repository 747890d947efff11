package config

import (
	"fmt"

	"github.com/cognicore/colloc/pkg/colloc/assoc"
	"github.com/cognicore/colloc/pkg/colloc/ingest"
	"github.com/cognicore/colloc/pkg/colloc/internalerr"
	"github.com/cognicore/colloc/pkg/colloc/report"
)

// Loader merges command-line values over an optional config file.
// Zero-valued fields are treated as unset.
type Loader struct {
	ConfigPath string
	Corpus     string
	Measure    string
	Top        int
	Format     string
}

// Settings holds the validated values for one run
type Settings struct {
	CorpusPath string
	Measure    assoc.Measure
	Limit      int
	Format     ingest.Format
}

// Load reads the config file (if any), applies overrides and defaults,
// and validates the result
func (l *Loader) Load() (*Settings, error) {
	file := &File{}
	if l.ConfigPath != "" {
		f, err := LoadFile(l.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		file = f
	}

	corpus := firstNonEmpty(l.Corpus, file.Corpus, DefaultCorpus)

	measure, err := assoc.ParseMeasure(firstNonEmpty(l.Measure, file.Measure))
	if err != nil {
		return nil, err
	}

	limit := report.DefaultLimit
	switch {
	case l.Top < 0:
		return nil, fmt.Errorf("top %d must be positive: %w", l.Top, internalerr.ErrInvalidConfig)
	case l.Top > 0:
		limit = l.Top
	case file.Top < 0:
		return nil, fmt.Errorf("top %d must be positive: %w", file.Top, internalerr.ErrInvalidConfig)
	case file.Top > 0:
		limit = file.Top
	}

	format, err := ingest.ParseFormat(firstNonEmpty(l.Format, file.Format))
	if err != nil {
		return nil, err
	}

	return &Settings{
		CorpusPath: corpus,
		Measure:    measure,
		Limit:      limit,
		Format:     format,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
