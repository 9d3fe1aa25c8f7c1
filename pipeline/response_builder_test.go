package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"text2phenotype.com/aptag/types"
)

func TestTaggingResultDropsDuplicateSentenceSpans(t *testing.T) {
	in := make(chan types.Sentence, 3)
	in <- types.Sentence{Span: types.Span{Begin: 0, End: 5}}
	in <- types.Sentence{Span: types.Span{Begin: 0, End: 5}}
	in <- types.Sentence{Span: types.Span{Begin: 6, End: 10}}
	close(in)

	result := <-NewTaggingResult()(in, Request{Tid: "dup"})
	response, ok := result.Data.(types.TaggingResponse)
	require.True(t, ok)
	require.Len(t, response.Sentences, 2)
	require.Equal(t, []int32{0, 5}, response.Sentences[0].Sentence)
	require.Equal(t, []int32{6, 10}, response.Sentences[1].Sentence)
}
