package tokenizer

import (
	"unicode"

	"text2phenotype.com/aptag/types"
	"text2phenotype.com/aptag/utils"
)

const (
	newline    = '\n'
	cr         = '\r'
	apostrophe = '\''
	period     = '.'
	comma      = ','
)

// Tokenizer fills a sentence with classified tokens. Spans are rune
// offsets into the whole document (the sentence span supplies the base).
type Tokenizer func(sent *types.Sentence) error

func NewTokenizer() Tokenizer {
	return func(sent *types.Sentence) error {
		return tokenizeSentence(sent)
	}
}

func createToken(txt string, begin int32, end int32, isWord bool, isNumber bool, isSymbol bool, isNewline bool, isPunct bool) *types.Token {
	newToken := types.Token{
		Span: types.Span{
			Begin: begin,
			End:   end,
			Text:  utils.GlobalStringStore().GetPointer(txt),
		},
		IsPunct:   isPunct,
		IsWord:    isWord,
		IsNumber:  isNumber,
		IsSymbol:  isSymbol,
		IsNewline: isNewline,
		Shape:     types.GetShape(txt),
	}

	return &newToken
}

func tokenizeSentence(sent *types.Sentence) error {
	if sent.Text == nil || len(*sent.Text) == 0 {
		return nil
	}

	runes := []rune(*sent.Text)
	base := sent.Begin

	var tokens []*types.Token
	i := 0
	for i < len(runes) {
		ch := runes[i]
		switch {
		case ch == newline || ch == cr:
			tokens = append(tokens, createToken(string(ch), base+int32(i), base+int32(i+1), false, false, false, true, false))
			i++
		case unicode.IsSpace(ch):
			i++
		case unicode.IsDigit(ch):
			end := scanNumber(runes, i)
			tokens = append(tokens, createToken(string(runes[i:end]), base+int32(i), base+int32(end), false, true, false, false, false))
			i = end
		case unicode.IsLetter(ch):
			end := scanWord(runes, i)
			tokens = append(tokens, createToken(string(runes[i:end]), base+int32(i), base+int32(end), true, false, false, false, false))
			i = end
		case unicode.IsPunct(ch):
			tokens = append(tokens, createToken(string(ch), base+int32(i), base+int32(i+1), false, false, false, false, true))
			i++
		default:
			tokens = append(tokens, createToken(string(ch), base+int32(i), base+int32(i+1), false, false, true, false, false))
			i++
		}
	}

	for _, token := range tokens {
		token.Sentence = sent
	}
	sent.Tokens = tokens
	return nil
}

// scanWord accepts letters, digits and inner apostrophes/hyphens, so
// "don't" and "well-known" stay single tokens.
func scanWord(runes []rune, start int) int {
	i := start
	for i < len(runes) {
		ch := runes[i]
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			i++
			continue
		}
		if (ch == apostrophe || ch == '-') && i > start && i+1 < len(runes) && unicode.IsLetter(runes[i+1]) {
			i++
			continue
		}
		break
	}
	return i
}

// scanNumber accepts digit runs with inner decimal points and thousands
// separators: "12.5", "1,000".
func scanNumber(runes []rune, start int) int {
	i := start
	for i < len(runes) {
		ch := runes[i]
		if unicode.IsDigit(ch) {
			i++
			continue
		}
		if (ch == period || ch == comma) && i+1 < len(runes) && unicode.IsDigit(runes[i+1]) {
			i++
			continue
		}
		break
	}
	return i
}
