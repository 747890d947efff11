package report

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/cognicore/colloc/pkg/colloc/assoc"
)

// DefaultLimit is the number of bigrams reported when no limit is given
const DefaultLimit = 20

// Entry is a scored bigram selected for output
type Entry struct {
	Bigram assoc.Bigram
	Score  float64
}

// Top returns the limit highest-scoring bigrams, best first. Equal scores
// are ordered by (W1, W2) ascending so output does not depend on map order.
// A limit <= 0 means DefaultLimit.
func Top(table assoc.ScoreTable, limit int) []Entry {
	if limit <= 0 {
		limit = DefaultLimit
	}

	entries := make([]Entry, 0, len(table))
	for bg, s := range table {
		entries = append(entries, Entry{Bigram: bg, Score: s})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Bigram.W1 != b.Bigram.W1 {
			return a.Bigram.W1 < b.Bigram.W1
		}
		return a.Bigram.W2 < b.Bigram.W2
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// Line formats an entry as "<w1> <w2> <score>" with four decimal places
func Line(e Entry) string {
	return fmt.Sprintf("%s %s %.4f", e.Bigram.W1, e.Bigram.W2, e.Score)
}

// Render writes one line per entry
func Render(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintln(bw, Line(e)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
