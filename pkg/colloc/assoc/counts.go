package assoc

// Counter holds unigram and adjacent-bigram occurrence counts for a corpus.
// The maps are exported for reading; callers must not mutate a Counter
// returned by Count.
type Counter struct {
	Unigrams map[string]int64 // occurrences per word
	Bigrams  map[Bigram]int64 // occurrences per ordered adjacent pair
}

// Bigram represents an ordered pair of adjacent words (W1 precedes W2)
type Bigram struct {
	W1, W2 string
}

// NewCounter creates an empty counter
func NewCounter() *Counter {
	return &Counter{
		Unigrams: make(map[string]int64),
		Bigrams:  make(map[Bigram]int64),
	}
}

// Count builds unigram and bigram tables from a token sequence.
// Pairs are taken from consecutive positions of tokens as given, so
// anything the tokenizer dropped is invisible to pairing.
func Count(tokens []string) *Counter {
	c := NewCounter()
	for i, t := range tokens {
		c.Unigrams[t]++
		if i+1 < len(tokens) {
			c.Bigrams[Bigram{W1: t, W2: tokens[i+1]}]++
		}
	}
	return c
}

// UnigramCount returns the occurrence count of a word
func (c *Counter) UnigramCount(w string) int64 {
	return c.Unigrams[w]
}

// BigramCount returns the occurrence count of the ordered pair (w1, w2)
func (c *Counter) BigramCount(w1, w2 string) int64 {
	return c.Bigrams[Bigram{W1: w1, W2: w2}]
}

// TotalUnigrams returns the sum of all unigram counts
func (c *Counter) TotalUnigrams() int64 {
	var n int64
	for _, v := range c.Unigrams {
		n += v
	}
	return n
}

// TotalBigrams returns the sum of all bigram counts
func (c *Counter) TotalBigrams() int64 {
	var n int64
	for _, v := range c.Bigrams {
		n += v
	}
	return n
}

// UniqueUnigrams returns the number of distinct words
func (c *Counter) UniqueUnigrams() int {
	return len(c.Unigrams)
}

// UniqueBigrams returns the number of distinct bigrams
func (c *Counter) UniqueBigrams() int {
	return len(c.Bigrams)
}
