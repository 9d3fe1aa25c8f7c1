package pos

import (
	"strings"
	"unicode"
)

// Context window padding markers. Two on each side so every token has
// two neighbors to look up.
const (
	StartMarker  = "-START-"
	Start2Marker = "-START2-"
	EndMarker    = "-END-"
	End2Marker   = "-END2-"
)

// Features maps a feature name to its occurrence count within one token's
// extraction. Counts multiply weights during scoring, so the multiset
// contract is kept even though each template fires once per token.
type Features map[string]float64

func (feats Features) add(parts ...string) {
	feats[strings.Join(parts, " ")]++
}

// Normalize maps raw token text to its context-window form: hyphenated
// words collapse to !HYPEN, four-digit numbers to !YEAR, other numbers to
// !DIGITS, everything else lowercases. Already-normalized synthetic tokens
// pass through unchanged.
func Normalize(word string) string {
	if len(word) == 0 {
		return word
	}
	switch word {
	case "!HYPEN", "!YEAR", "!DIGITS":
		return word
	}
	switch {
	case strings.ContainsRune(word, '-') && word[0] != '-':
		return "!HYPEN"
	case isYear(word):
		return "!YEAR"
	case unicode.IsDigit(firstRune(word)):
		return "!DIGITS"
	}
	return strings.ToLower(word)
}

// BuildContext returns the padded window for a sentence: two start markers,
// the normalized tokens, two end markers. Length is always len(words)+4.
func BuildContext(words []string) []string {
	context := make([]string, len(words)+4)
	context[0] = StartMarker
	context[1] = Start2Marker
	for i, w := range words {
		context[i+2] = Normalize(w)
	}
	context[len(context)-2] = EndMarker
	context[len(context)-1] = End2Marker
	return context
}

// Extract produces the feature multiset for the token at sentence position
// i. The current word keeps its original case for the suffix and prefix
// templates; every neighbor lookup goes through the normalized context
// window at the padded index i+2.
func Extract(i int, word string, context []string, prevTag, prevTag2 string) Features {
	feats := make(Features, 14)
	j := i + 2

	feats.add("bias")
	feats.add("i suffix", suffix3(word))
	feats.add("i pref1", pref1(word))
	feats.add("i-1 tag", prevTag)
	feats.add("i-2 tag", prevTag2)
	feats.add("i tag+i-2 tag", prevTag, prevTag2)
	feats.add("i word", context[j])
	feats.add("i-1 tag+i word", prevTag, context[j])
	feats.add("i-1 word", context[j-1])
	feats.add("i-1 suffix", suffix3(context[j-1]))
	feats.add("i-2 word", context[j-2])
	feats.add("i+1 word", context[j+1])
	feats.add("i+1 suffix", suffix3(context[j+1]))
	feats.add("i+2 word", context[j+2])

	return feats
}

func suffix3(s string) string {
	runes := []rune(s)
	if len(runes) <= 3 {
		return s
	}
	return string(runes[len(runes)-3:])
}

func pref1(s string) string {
	if len(s) == 0 {
		return s
	}
	return string(firstRune(s))
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func isYear(word string) bool {
	count := 0
	for _, ch := range word {
		if !unicode.IsDigit(ch) {
			return false
		}
		count++
	}
	return count == 4
}
