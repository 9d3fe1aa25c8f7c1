package types

type Sentence struct {
	Span
	Tokens []*Token
}

func (sent *Sentence) GetSpan() *Span {
	return &sent.Span
}
