package pos

import (
	"strings"

	"text2phenotype.com/aptag/types"
)

// Tagger decodes sentences greedily left to right against a finalized
// model. With resetHistory false the two-tag context carries across Tag
// calls, reproducing the reference batch behavior; a Tagger used that way
// is stateful and must not be shared between goroutines. The model itself
// is read-only and safely shared.
type Tagger struct {
	model        *Model
	resetHistory bool
	prev, prev2  string
}

func NewTagger(model *Model, resetHistory bool) *Tagger {
	return &Tagger{
		model:        model,
		resetHistory: resetHistory,
		prev:         StartMarker,
		prev2:        Start2Marker,
	}
}

// Tag assigns a tag to every word, resolving through the tag book first
// and falling back to the classifier on a miss.
func (t *Tagger) Tag(words []string) []types.TaggedWord {
	if t.resetHistory {
		t.prev, t.prev2 = StartMarker, Start2Marker
	}
	tagged := make([]types.TaggedWord, len(words))
	context := BuildContext(words)
	for i, word := range words {
		tag, ok := t.model.TagBook[strings.ToLower(word)]
		if !ok {
			tag = t.model.Predict(Extract(i, word, context, t.prev, t.prev2))
		}
		tagged[i] = types.TaggedWord{Word: word, Tag: tag}
		t.prev2, t.prev = t.prev, tag
	}
	return tagged
}
