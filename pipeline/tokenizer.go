package pipeline

import (
	"sync"

	"text2phenotype.com/aptag/logger"
	"text2phenotype.com/aptag/tokenizer"
	"text2phenotype.com/aptag/types"
)

type Tokenizer func(in <-chan types.Sentence) <-chan types.Sentence

func NewTokenizer() (Tokenizer, error) {
	tokenize := tokenizer.NewTokenizer()
	aptLogger := logger.NewLogger("Tokenizer")

	return func(in <-chan types.Sentence) <-chan types.Sentence {
		out := make(chan types.Sentence)

		go func() {
			defer close(out)
			var wg sync.WaitGroup
			for sent := range in {
				wg.Add(1)
				go func(sent types.Sentence) {
					defer wg.Done()
					if err := tokenize(&sent); err != nil {
						aptLogger.Error().Err(err)
					}

					out <- sent
				}(sent)
			}

			wg.Wait()
		}()

		return out
	}, nil
}
