package assoc

import (
	"fmt"
	"math"

	"github.com/cognicore/colloc/pkg/colloc/internalerr"
)

// ScoreTable maps each scored bigram to its association score
type ScoreTable map[Bigram]float64

// PMIScore calculates pointwise mutual information for a bigram
//
// PMI(w1,w2) = log2( p(w1,w2) / (p(w1)·p(w2)) )
//
// Where:
//   - p(w1,w2) = c / totalBi
//   - p(w1) = n1 / totalUni, p(w2) = n2 / totalUni
//
// ok is false when the joint probability or the marginal product is zero,
// in which case the bigram has no score.
func PMIScore(c, n1, n2, totalUni, totalBi int64) (score float64, ok bool) {
	if c <= 0 || totalBi <= 0 || totalUni <= 0 {
		return 0, false
	}

	pJoint := float64(c) / float64(totalBi)
	pMarg := (float64(n1) / float64(totalUni)) * (float64(n2) / float64(totalUni))
	if pMarg == 0 {
		return 0, false
	}

	return math.Log2(pJoint / pMarg), true
}

// ChiSquareScore calculates the chi-square statistic for a bigram
//
// expected = n1·n2 / totalUni
// χ² = (c - expected)² / expected
//
// ok is false when expected is zero.
func ChiSquareScore(c, n1, n2, totalUni int64) (score float64, ok bool) {
	if totalUni <= 0 {
		return 0, false
	}

	expected := float64(n1) * float64(n2) / float64(totalUni)
	if expected == 0 {
		return 0, false
	}

	d := float64(c) - expected
	return d * d / expected, true
}

// Score computes the association score of every bigram in the counter.
// Bigrams for which the measure is undefined are left out of the table.
func Score(counter *Counter, m Measure) (ScoreTable, error) {
	if counter == nil {
		return nil, fmt.Errorf("score with nil counter: %w", internalerr.ErrInvalidInput)
	}

	var fn func(c, n1, n2, totalUni, totalBi int64) (float64, bool)
	switch m {
	case PMI:
		fn = PMIScore
	case ChiSquare:
		fn = func(c, n1, n2, totalUni, _ int64) (float64, bool) {
			return ChiSquareScore(c, n1, n2, totalUni)
		}
	default:
		return nil, fmt.Errorf("score with %v: %w", m, internalerr.ErrInvalidMeasure)
	}

	totalUni := counter.TotalUnigrams()
	totalBi := counter.TotalBigrams()

	scores := make(ScoreTable, len(counter.Bigrams))
	for bg, c := range counter.Bigrams {
		s, ok := fn(c, counter.Unigrams[bg.W1], counter.Unigrams[bg.W2], totalUni, totalBi)
		if !ok {
			continue
		}
		scores[bg] = s
	}
	return scores, nil
}
