package pipeline

import (
	"sort"

	"text2phenotype.com/aptag/types"
)

type Result struct {
	Data interface{}
}

// NewTaggingResult collects tagged sentences into a response ordered by
// document position. Stages upstream emit sentences as they finish, so the
// collector restores input order before building sections.
func NewTaggingResult() func(in <-chan types.Sentence, request Request) <-chan Result {
	return func(in <-chan types.Sentence, request Request) <-chan Result {
		out := make(chan Result)
		go func() {
			defer close(out)

			var sentences []types.Sentence
			for sent := range in {
				sentences = append(sentences, sent)
			}
			sort.Slice(sentences, func(i, j int) bool {
				return types.SpanSortFunction(&sentences[i].Span, &sentences[j].Span)
			})

			response := types.TaggingResponse{
				DocId:     request.Tid,
				Sentences: make([]types.SentenceSection, 0, len(sentences)),
			}
			seenSpans := make(map[uint64]bool, len(sentences))
			for _, sent := range sentences {
				spanHash := sent.Span.GetHashCode()
				if seenSpans[spanHash] {
					continue
				}
				seenSpans[spanHash] = true
				section := types.SentenceSection{
					Sentence: []int32{sent.Begin, sent.End},
					Tokens:   make([]types.TokenSection, 0, len(sent.Tokens)),
				}
				for _, token := range sent.Tokens {
					if token.Tag == nil {
						continue
					}
					section.Tokens = append(section.Tokens, types.TokenSection{
						Text: []interface{}{
							*token.Text,
							token.Begin,
							token.End,
						},
						Tag: *token.Tag,
					})
				}
				response.Sentences = append(response.Sentences, section)
			}

			out <- Result{Data: response}
		}()
		return out
	}
}
