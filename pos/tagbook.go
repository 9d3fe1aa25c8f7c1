package pos

import (
	"strings"

	"text2phenotype.com/aptag/types"
)

// Default thresholds for tag book membership: a word must be seen at least
// DefaultFrequencyThreshold times and carry one tag in at least
// DefaultAmbiguityThreshold of its occurrences.
const (
	DefaultFrequencyThreshold = 20
	DefaultAmbiguityThreshold = 0.97
)

type tagCounter struct {
	counts map[string]int
	// tags in first-encountered order, so mode ties resolve the same way
	// for the whole run
	order []string
}

func (c *tagCounter) inc(tag string) {
	if _, seen := c.counts[tag]; !seen {
		c.order = append(c.order, tag)
	}
	c.counts[tag]++
}

func (c *tagCounter) mode() (string, int) {
	best, bestCount := "", 0
	for _, tag := range c.order {
		if c.counts[tag] > bestCount {
			best, bestCount = tag, c.counts[tag]
		}
	}
	return best, bestCount
}

func (c *tagCounter) total() int {
	n := 0
	for _, cnt := range c.counts {
		n += cnt
	}
	return n
}

// BuildTagBook scans the gold corpus and returns the word→tag shortcut map
// for words whose tag distribution is frequent and skewed enough to trust
// without classification. Keys are lowercased; lookups must lowercase too.
func BuildTagBook(sentences []types.TaggedSentence, frequencyThreshold int, ambiguityThreshold float64) map[string]string {
	counters := make(map[string]*tagCounter)
	var words []string

	for _, sent := range sentences {
		for i, word := range sent.Words {
			key := strings.ToLower(word)
			counter, ok := counters[key]
			if !ok {
				counter = &tagCounter{counts: make(map[string]int)}
				counters[key] = counter
				words = append(words, key)
			}
			counter.inc(sent.Tags[i])
		}
	}

	book := make(map[string]string)
	for _, word := range words {
		counter := counters[word]
		tag, mode := counter.mode()
		n := counter.total()
		if n >= frequencyThreshold && float64(mode)/float64(n) >= ambiguityThreshold {
			book[word] = tag
		}
	}
	return book
}
