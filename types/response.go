package types

// TokenSection is one tagged token in a response, with its rune span
// within the document.
type TokenSection struct {
	Text []interface{} `json:"text"`
	Tag  string        `json:"tag"`
}

type SentenceSection struct {
	Sentence []int32        `json:"sentence"`
	Tokens   []TokenSection `json:"tokens"`
}

type TaggingResponse struct {
	DocId     string            `json:"docid"`
	Sentences []SentenceSection `json:"sentences"`
}
