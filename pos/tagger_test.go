package pos

import (
	"testing"

	"github.com/stretchr/testify/require"

	"text2phenotype.com/aptag/types"
)

func bookOnlyModel() *Model {
	model := NewModel()
	model.AddClass("DET")
	model.AddClass("NOUN")
	model.TagBook = map[string]string{"the": "DET", "dog": "NOUN"}
	model.Average()
	return model
}

func TestTaggerUsesTagBookFirst(t *testing.T) {
	tagger := NewTagger(bookOnlyModel(), true)
	tagged := tagger.Tag([]string{"The", "dog"})
	require.Equal(t, []types.TaggedWord{
		{Word: "The", Tag: "DET"},
		{Word: "dog", Tag: "NOUN"},
	}, tagged)
}

func TestTaggerEmptySentence(t *testing.T) {
	tagger := NewTagger(bookOnlyModel(), true)
	require.Empty(t, tagger.Tag(nil))
}

func TestTaggerFallsBackToModel(t *testing.T) {
	model := NewModel()
	model.AddClass("NOUN")
	model.AddClass("VERB")
	model.Weights["i word unknownword"] = map[string]float64{"VERB": 1}
	model.Average()

	tagger := NewTagger(model, true)
	tagged := tagger.Tag([]string{"unknownword"})
	require.Equal(t, "VERB", tagged[0].Tag)
}

func TestTaggerHistoryResetPerSentence(t *testing.T) {
	model := NewModel()
	model.AddClass("NOUN")
	model.AddClass("VERB")
	// the i-1 tag feature only fires like this when history was reset
	model.Weights["i-1 tag -START-"] = map[string]float64{"NOUN": 1}
	model.Weights["i-1 tag NOUN"] = map[string]float64{"VERB": 5}
	model.Average()

	resetting := NewTagger(model, true)
	first := resetting.Tag([]string{"alpha"})
	second := resetting.Tag([]string{"beta"})
	require.Equal(t, "NOUN", first[0].Tag)
	require.Equal(t, "NOUN", second[0].Tag)

	carrying := NewTagger(model, false)
	first = carrying.Tag([]string{"alpha"})
	second = carrying.Tag([]string{"beta"})
	require.Equal(t, "NOUN", first[0].Tag)
	// history leaked across the sentence boundary
	require.Equal(t, "VERB", second[0].Tag)
}
