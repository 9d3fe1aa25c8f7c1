package types

import "fmt"

// TaggedWord pairs a word with its tag, either as gold annotation or as
// tagger output.
type TaggedWord struct {
	Word string `json:"word"`
	Tag  string `json:"tag"`
}

// TaggedSentence holds a sentence's words index-aligned with their gold
// tags.
type TaggedSentence struct {
	Words []string
	Tags  []string
}

// Validate checks the word/tag alignment invariant.
func (sent TaggedSentence) Validate() error {
	if len(sent.Words) != len(sent.Tags) {
		return fmt.Errorf("got %d words but %d tags", len(sent.Words), len(sent.Tags))
	}
	return nil
}
