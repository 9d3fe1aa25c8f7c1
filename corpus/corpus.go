// Package corpus loads pre-tagged training text. The expected layout is
// one sentence per line, tokens separated by spaces, each token carrying
// its tag after a separator: "the_DET dog_NOUN barks_VERB".
package corpus

import (
	"fmt"
	"io/ioutil"
	"path"
	"strings"

	"text2phenotype.com/aptag/types"
	"text2phenotype.com/aptag/utils"
)

const DefaultSeparator = "_"

// ReadTagged parses tagged text into sentences. A token without the
// separator fails the whole parse; misreading it as an untagged word would
// misalign every following gold label.
func ReadTagged(text, sep string) ([]types.TaggedSentence, error) {
	if sep == "" {
		sep = DefaultSeparator
	}
	var sentences []types.TaggedSentence
	for lineNo, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		sent := types.TaggedSentence{
			Words: make([]string, len(fields)),
			Tags:  make([]string, len(fields)),
		}
		for i, field := range fields {
			cut := strings.LastIndex(field, sep)
			if cut <= 0 || cut == len(field)-len(sep) {
				return nil, fmt.Errorf("line %d: token %q has no %q-separated tag", lineNo+1, field, sep)
			}
			sent.Words[i] = field[:cut]
			sent.Tags[i] = field[cut+len(sep):]
		}
		sentences = append(sentences, sent)
	}
	return sentences, nil
}

// LoadFile reads one tagged corpus file.
func LoadFile(filePath, sep string) ([]types.TaggedSentence, error) {
	lines, err := utils.ReadNonEmptyLines(filePath)
	if err != nil {
		return nil, err
	}
	sentences, err := ReadTagged(strings.Join(lines, "\n"), sep)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return sentences, nil
}

// LoadDir reads every .txt file in a corpus directory, in directory
// listing order.
func LoadDir(dirPath, sep string) ([]types.TaggedSentence, error) {
	files, err := ioutil.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}
	var sentences []types.TaggedSentence
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".txt") {
			continue
		}
		fileSentences, err := LoadFile(path.Join(dirPath, f.Name()), sep)
		if err != nil {
			return nil, err
		}
		sentences = append(sentences, fileSentences...)
	}
	return sentences, nil
}
