package assoc

import (
	"fmt"
	"strings"

	"github.com/cognicore/colloc/pkg/colloc/internalerr"
)

// Measure selects the association statistic used to score bigrams
type Measure int

const (
	PMI Measure = iota + 1
	ChiSquare
)

// ParseMeasure accepts "pmi" or "chi-square" in any case
func ParseMeasure(s string) (Measure, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pmi":
		return PMI, nil
	case "chi-square":
		return ChiSquare, nil
	}
	return 0, fmt.Errorf("measure %q: %w", s, internalerr.ErrInvalidMeasure)
}

func (m Measure) String() string {
	switch m {
	case PMI:
		return "pmi"
	case ChiSquare:
		return "chi-square"
	}
	return fmt.Sprintf("Measure(%d)", int(m))
}
