package types

import (
	"fmt"

	"text2phenotype.com/aptag/utils"
)

type HasSpan interface {
	GetSpan() *Span
}

type Span struct {
	Begin int32
	End   int32
	Text  *string
}

func (span Span) GetHashCode() uint64 {
	key := fmt.Sprintf("%d_%d", span.Begin, span.End)
	return utils.HashString(key)
}

func (span Span) GetTextFromSentence(sent *Sentence) (string, bool) {
	if span.Begin < sent.Begin || span.End > sent.End {
		return "", false
	}

	localBegin := span.Begin - sent.Begin
	localEnd := span.End - sent.Begin

	runes := []rune(*sent.Text)
	return string(runes[localBegin:localEnd]), true
}

func SpanSortFunction(spanA *Span, spanB *Span) bool {
	if spanA.Begin == spanB.Begin {
		return spanA.End < spanB.End
	}
	return spanA.Begin < spanB.Begin
}
