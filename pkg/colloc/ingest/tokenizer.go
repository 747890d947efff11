package ingest

import (
	"sort"
	"strings"
)

// discardTokens are whole tokens dropped after whitespace splitting.
// Punctuation attached to a word ("word,") is not touched.
var discardTokens = []string{
	",", ".", "!", "?", ":", ";", "-", "`", `"`, "'", "’", "(", ")", "/",
}

// Tokenizer splits corpus text into word tokens
type Tokenizer struct {
	discard map[string]struct{}
}

// NewTokenizer creates a tokenizer with the fixed punctuation discard set
func NewTokenizer() *Tokenizer {
	discard := make(map[string]struct{}, len(discardTokens))
	for _, d := range discardTokens {
		discard[d] = struct{}{}
	}
	return &Tokenizer{discard: discard}
}

// Tokenize splits text on whitespace and drops tokens that are exactly a
// discard-set member. Token order is preserved and tokens are kept verbatim,
// so "word" and "word," count as different words.
func (t *Tokenizer) Tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if t.IsDiscarded(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// IsDiscarded reports whether tok is dropped by the tokenizer
func (t *Tokenizer) IsDiscarded(tok string) bool {
	_, ok := t.discard[tok]
	return ok
}

// DiscardSet returns the discard set in sorted order
func (t *Tokenizer) DiscardSet() []string {
	out := make([]string, 0, len(t.discard))
	for d := range t.discard {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
