package pipeline

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"text2phenotype.com/aptag/pos"
	"text2phenotype.com/aptag/types"
)

// carrySensitiveModel tags differently depending on whether tag history
// survives the sentence boundary.
func carrySensitiveModel() *pos.Model {
	model := pos.NewModel()
	model.AddClass("NOUN")
	model.AddClass("VERB")
	model.Weights["i-1 tag -START-"] = map[string]float64{"NOUN": 1}
	model.Weights["i-1 tag NOUN"] = map[string]float64{"VERB": 5}
	model.Weights["i-1 tag VERB"] = map[string]float64{"VERB": 5}
	model.Average()
	return model
}

func wordSentence(word string, begin int32) types.Sentence {
	end := begin + int32(len([]rune(word)))
	span := types.Span{Begin: begin, End: end, Text: &word}
	return types.Sentence{
		Span:   span,
		Tokens: []*types.Token{{Span: span, IsWord: true}},
	}
}

func collectInSpanOrder(out <-chan types.Sentence) []types.Sentence {
	var sentences []types.Sentence
	for sent := range out {
		sentences = append(sentences, sent)
	}
	sort.Slice(sentences, func(i, j int) bool {
		return types.SpanSortFunction(&sentences[i].Span, &sentences[j].Span)
	})
	return sentences
}

func TestPOSTaggerStageResetsHistoryPerSentence(t *testing.T) {
	in := make(chan types.Sentence, 2)
	in <- wordSentence("alpha", 0)
	in <- wordSentence("beta", 6)
	close(in)

	sentences := collectInSpanOrder(NewPOSTagger(carrySensitiveModel(), true)(in))
	require.Len(t, sentences, 2)
	require.Equal(t, "NOUN", *sentences[0].Tokens[0].Tag)
	require.Equal(t, "NOUN", *sentences[1].Tokens[0].Tag)
}

func TestPOSTaggerStageCarriesHistoryAcrossSentences(t *testing.T) {
	// fed out of document order; the carry tagger must restore span order
	// before threading history through the sentences
	in := make(chan types.Sentence, 2)
	in <- wordSentence("beta", 6)
	in <- wordSentence("alpha", 0)
	close(in)

	sentences := collectInSpanOrder(NewPOSTagger(carrySensitiveModel(), false)(in))
	require.Len(t, sentences, 2)
	require.Equal(t, "NOUN", *sentences[0].Tokens[0].Tag)
	require.Equal(t, "VERB", *sentences[1].Tokens[0].Tag)
}

func TestPOSTaggerStageSkipsNewlineTokens(t *testing.T) {
	word := "alpha"
	newline := "\n"
	sent := types.Sentence{
		Span: types.Span{Begin: 0, End: 7, Text: nil},
		Tokens: []*types.Token{
			{Span: types.Span{Begin: 0, End: 5, Text: &word}, IsWord: true},
			{Span: types.Span{Begin: 5, End: 6, Text: &newline}, IsNewline: true},
		},
	}
	in := make(chan types.Sentence, 1)
	in <- sent
	close(in)

	sentences := collectInSpanOrder(NewPOSTagger(carrySensitiveModel(), true)(in))
	require.Len(t, sentences, 1)
	require.NotNil(t, sentences[0].Tokens[0].Tag)
	require.Nil(t, sentences[0].Tokens[1].Tag)
}
