package corpus

import (
	"io/ioutil"
	"path"
	"testing"

	"github.com/stretchr/testify/require"

	"text2phenotype.com/aptag/types"
)

func TestReadTagged(t *testing.T) {
	text := "the_DET dog_NOUN barks_VERB\n\nNew_NNP York_NNP\n"
	sentences, err := ReadTagged(text, "_")
	require.NoError(t, err)
	require.Equal(t, []types.TaggedSentence{
		{Words: []string{"the", "dog", "barks"}, Tags: []string{"DET", "NOUN", "VERB"}},
		{Words: []string{"New", "York"}, Tags: []string{"NNP", "NNP"}},
	}, sentences)
}

func TestReadTaggedSeparatorInWord(t *testing.T) {
	// only the last separator splits word from tag
	sentences, err := ReadTagged("vice_president_NOUN", "_")
	require.NoError(t, err)
	require.Equal(t, "vice_president", sentences[0].Words[0])
	require.Equal(t, "NOUN", sentences[0].Tags[0])
}

func TestReadTaggedRejectsUntaggedToken(t *testing.T) {
	_, err := ReadTagged("the_DET dog", "_")
	require.Error(t, err)
	require.Contains(t, err.Error(), `"dog"`)
}

func TestReadTaggedCustomSeparator(t *testing.T) {
	sentences, err := ReadTagged("the|DET", "|")
	require.NoError(t, err)
	require.Equal(t, "DET", sentences[0].Tags[0])
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, ioutil.WriteFile(path.Join(dir, "a.txt"), []byte("the_DET\n"), 0644))
	require.NoError(t, ioutil.WriteFile(path.Join(dir, "b.txt"), []byte("dog_NOUN\n"), 0644))
	require.NoError(t, ioutil.WriteFile(path.Join(dir, "notes.md"), []byte("ignore me"), 0644))

	sentences, err := LoadDir(dir, "_")
	require.NoError(t, err)
	require.Len(t, sentences, 2)
}
