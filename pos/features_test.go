package pos

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"The":        "the",
		"well-known": "!HYPEN",
		"-":          "-",
		"-LRB-":      "-lrb-",
		"1984":       "!YEAR",
		"19842":      "!DIGITS",
		"3rd":        "!DIGITS",
		"12.5":       "!DIGITS",
		"":           "",
	}
	for word, expected := range cases {
		require.Equal(t, expected, Normalize(word), "word %q", word)
	}
}

func TestSuffix3KeepsRunesWhole(t *testing.T) {
	cases := map[string]string{
		"barks":  "rks",
		"dog":    "dog",
		"a":      "a",
		"":       "",
		"привет": "вет",
		"häuser": "ser",
		"über":   "ber",
	}
	for word, expected := range cases {
		require.Equal(t, expected, suffix3(word), "word %q", word)
	}
}

func TestIsYearCountsRunes(t *testing.T) {
	require.True(t, isYear("1984"))
	require.True(t, isYear("١٩٨٤"))
	require.False(t, isYear("198"))
	require.False(t, isYear("19842"))
	require.False(t, isYear("198x"))
	require.False(t, isYear(""))
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, token := range []string{"!HYPEN", "!YEAR", "!DIGITS"} {
		require.Equal(t, token, Normalize(token))
		require.Equal(t, token, Normalize(Normalize(token)))
	}
}

func TestBuildContextLength(t *testing.T) {
	for _, words := range [][]string{
		{},
		{"one"},
		{"The", "dog", "barks"},
	} {
		context := BuildContext(words)
		require.Len(t, context, len(words)+4)
		require.Equal(t, StartMarker, context[0])
		require.Equal(t, Start2Marker, context[1])
		require.Equal(t, EndMarker, context[len(context)-2])
		require.Equal(t, End2Marker, context[len(context)-1])
	}
}

func TestExtractTemplates(t *testing.T) {
	words := []string{"The", "dog", "barks"}
	context := BuildContext(words)

	feats := Extract(1, "dog", context, "DET", StartMarker)

	expected := Features{
		"bias":                      1,
		"i suffix dog":              1,
		"i pref1 d":                 1,
		"i-1 tag DET":               1,
		"i-2 tag -START-":           1,
		"i tag+i-2 tag DET -START-": 1,
		"i word dog":                1,
		"i-1 tag+i word DET the":    1,
		"i-1 word the":              1,
		"i-1 suffix the":            1,
		"i-2 word -START2-":         1,
		"i+1 word barks":            1,
		"i+1 suffix rks":            1,
		"i+2 word -END-":            1,
	}
	if diff := cmp.Diff(expected, feats); diff != "" {
		t.Errorf("unexpected features (-want +got):\n%s", diff)
	}
}

func TestExtractKeepsOriginalCaseForCurrentWord(t *testing.T) {
	words := []string{"NASA"}
	context := BuildContext(words)

	feats := Extract(0, "NASA", context, StartMarker, Start2Marker)

	// raw word feeds suffix/prefix, normalized word feeds window lookups
	require.Contains(t, feats, "i suffix ASA")
	require.Contains(t, feats, "i pref1 N")
	require.Contains(t, feats, "i word nasa")
}
