package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"text2phenotype.com/aptag/types"
)

func tokenize(t *testing.T, text string) []*types.Token {
	t.Helper()
	sent := types.Sentence{
		Span: types.Span{Begin: 0, End: int32(len([]rune(text))), Text: &text},
	}
	require.NoError(t, NewTokenizer()(&sent))
	return sent.Tokens
}

func tokenTexts(tokens []*types.Token) []string {
	texts := make([]string, len(tokens))
	for i, token := range tokens {
		texts[i] = *token.Text
	}
	return texts
}

func TestTokenizeWordsAndPunct(t *testing.T) {
	tokens := tokenize(t, "The dog barks.")
	require.Equal(t, []string{"The", "dog", "barks", "."}, tokenTexts(tokens))
	require.True(t, tokens[0].IsWord)
	require.True(t, tokens[3].IsPunct)
}

func TestTokenizeContractionStaysWhole(t *testing.T) {
	tokens := tokenize(t, "don't well-known")
	require.Equal(t, []string{"don't", "well-known"}, tokenTexts(tokens))
}

func TestTokenizeNumbers(t *testing.T) {
	tokens := tokenize(t, "12.5 mg, 1,000 units")
	require.Equal(t, []string{"12.5", "mg", ",", "1,000", "units"}, tokenTexts(tokens))
	require.True(t, tokens[0].IsNumber)
	require.True(t, tokens[3].IsNumber)
}

func TestTokenizeNewlineToken(t *testing.T) {
	tokens := tokenize(t, "a\nb")
	require.Equal(t, []string{"a", "\n", "b"}, tokenTexts(tokens))
	require.True(t, tokens[1].IsNewline)
}

func TestTokenizeSpans(t *testing.T) {
	text := "The dog"
	tokens := tokenize(t, text)
	require.Equal(t, int32(0), tokens[0].Begin)
	require.Equal(t, int32(3), tokens[0].End)
	require.Equal(t, int32(4), tokens[1].Begin)
	require.Equal(t, int32(7), tokens[1].End)
}

func TestTokenizeSpansResolveToSentenceText(t *testing.T) {
	text := "Häuser, 12.5 mg"
	sent := types.Sentence{
		Span: types.Span{Begin: 0, End: int32(len([]rune(text))), Text: &text},
	}
	require.NoError(t, NewTokenizer()(&sent))
	require.NotEmpty(t, sent.Tokens)
	for _, token := range sent.Tokens {
		fromSpan, ok := token.Span.GetTextFromSentence(&sent)
		require.True(t, ok)
		require.Equal(t, *token.Text, fromSpan)
	}
}

func TestGetTextFromSentenceOutOfRange(t *testing.T) {
	text := "short"
	sent := types.Sentence{
		Span: types.Span{Begin: 10, End: 15, Text: &text},
	}
	span := types.Span{Begin: 0, End: 5}
	_, ok := span.GetTextFromSentence(&sent)
	require.False(t, ok)
}

func TestTokenizeShape(t *testing.T) {
	tokens := tokenize(t, "NASA 2024")
	require.Equal(t, "XXXX", tokens[0].Shape)
	require.Equal(t, "dddd", tokens[1].Shape)
}

func TestTokenizeEmptySentence(t *testing.T) {
	sent := types.Sentence{}
	require.NoError(t, NewTokenizer()(&sent))
	require.Empty(t, sent.Tokens)
}
