package nlp

import (
	"unicode"

	"text2phenotype.com/aptag/types"
)

type SentenceDetector func(in <-chan string) <-chan types.Sentence

// NewSentenceDetector returns a rule-based splitter: a sentence ends at a
// terminal punctuation run followed by whitespace, or at a line break.
// Spans are rune-indexed into the original text.
func NewSentenceDetector() SentenceDetector {
	return func(in <-chan string) <-chan types.Sentence {
		out := make(chan types.Sentence)

		go func() {
			defer close(out)
			for text := range in {
				if len(text) == 0 {
					continue
				}
				emitSentences(text, out)
			}
		}()

		return out
	}
}

func emitSentences(text string, out chan<- types.Sentence) {
	runes := []rune(text)
	start := 0

	for i := 0; i < len(runes); i++ {
		switch {
		case runes[i] == '\n':
			emitSpan(runes, start, i, out)
			start = i + 1
		case isTerminal(runes[i]):
			// consume the whole punctuation run
			end := i + 1
			for end < len(runes) && isTerminal(runes[end]) {
				end++
			}
			if end == len(runes) || unicode.IsSpace(runes[end]) {
				emitSpan(runes, start, end, out)
				start = end
				i = end - 1
			}
		}
	}
	emitSpan(runes, start, len(runes), out)
}

func emitSpan(runes []rune, begin, end int, out chan<- types.Sentence) {
	for begin < end && unicode.IsSpace(runes[begin]) {
		begin++
	}
	for end > begin && unicode.IsSpace(runes[end-1]) {
		end--
	}
	if begin >= end {
		return
	}
	sentTxt := string(runes[begin:end])
	out <- types.Sentence{
		Span: types.Span{
			Begin: int32(begin),
			End:   int32(end),
			Text:  &sentTxt,
		},
	}
}

func isTerminal(ch rune) bool {
	return ch == '.' || ch == '!' || ch == '?'
}
