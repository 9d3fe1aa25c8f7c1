package pipeline

import (
	"sort"
	"sync"

	"text2phenotype.com/aptag/pos"
	"text2phenotype.com/aptag/types"
	"text2phenotype.com/aptag/utils"
)

type Tagger func(in <-chan types.Sentence) <-chan types.Sentence

// NewPOSTagger tags every sentence's tokens with a shared finalized model.
// With per-sentence history reset each sentence gets its own decoder, so
// sentences tag concurrently. In carry mode a single decoder threads its
// tag history through the whole document, so sentences must be tagged
// sequentially in span order.
func NewPOSTagger(model *pos.Model, resetHistory bool) Tagger {
	if resetHistory {
		return newParallelTagger(model)
	}
	return newCarryTagger(model)
}

func newParallelTagger(model *pos.Model) Tagger {
	return func(in <-chan types.Sentence) <-chan types.Sentence {
		out := make(chan types.Sentence)
		go func() {
			defer close(out)
			var wg sync.WaitGroup
			for sent := range in {

				wg.Add(1)
				go func(sent types.Sentence) {
					defer wg.Done()
					tagSentence(pos.NewTagger(model, true), &sent)
					out <- sent
				}(sent)

			}

			wg.Wait()

		}()
		return out
	}
}

func newCarryTagger(model *pos.Model) Tagger {
	return func(in <-chan types.Sentence) <-chan types.Sentence {
		out := make(chan types.Sentence)
		go func() {
			defer close(out)

			// upstream stages emit sentences as they finish, so restore
			// document order before threading history through them
			var sentences []types.Sentence
			for sent := range in {
				sentences = append(sentences, sent)
			}
			sort.Slice(sentences, func(i, j int) bool {
				return types.SpanSortFunction(&sentences[i].Span, &sentences[j].Span)
			})

			tagger := pos.NewTagger(model, false)
			for _, sent := range sentences {
				tagSentence(tagger, &sent)
				out <- sent
			}
		}()
		return out
	}
}

func tagSentence(tagger *pos.Tagger, sent *types.Sentence) {
	if len(sent.Tokens) == 0 {
		return
	}

	words := make([]string, 0, len(sent.Tokens))
	wordsIndex := make([]int, 0, len(sent.Tokens))
	for i, token := range sent.Tokens {
		if token.IsNewline {
			continue
		}
		words = append(words, *token.Text)
		wordsIndex = append(wordsIndex, i)
	}

	tagged := tagger.Tag(words)

	tags := make([]string, len(tagged))
	for i, taggedWord := range tagged {
		tags[i] = taggedWord.Tag
	}
	for i, ptr := range utils.GlobalStringStore().GetPointers(tags) {
		sent.Tokens[wordsIndex[i]].Tag = ptr
	}
}
