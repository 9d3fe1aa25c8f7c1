package pos

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"text2phenotype.com/aptag/types"
)

const DefaultIterations = 5

// TrainerConfig controls the online learning run. Rand drives the
// per-epoch shuffle; seed it for reproducible training. ResetHistory
// restarts the two-tag context at every sentence instead of carrying it
// across sentence boundaries within an epoch.
type TrainerConfig struct {
	Iterations         int
	FrequencyThreshold int
	AmbiguityThreshold float64
	ResetHistory       bool
	Rand               *rand.Rand
}

func DefaultTrainerConfig() TrainerConfig {
	return TrainerConfig{
		Iterations:         DefaultIterations,
		FrequencyThreshold: DefaultFrequencyThreshold,
		AmbiguityThreshold: DefaultAmbiguityThreshold,
		ResetHistory:       true,
	}
}

// Train runs multi-epoch online learning over the gold corpus and returns
// the finalized averaged model. A sentence whose word and tag counts
// disagree fails the whole call; silently misaligning features against
// labels would corrupt every downstream update.
func Train(sentences []types.TaggedSentence, config TrainerConfig) (*Model, error) {
	for i, sent := range sentences {
		if err := sent.Validate(); err != nil {
			return nil, fmt.Errorf("training sentence %d: %w", i, err)
		}
	}
	if config.Iterations <= 0 {
		config.Iterations = DefaultIterations
	}
	rnd := config.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	model := NewModel()
	model.TagBook = BuildTagBook(sentences, config.FrequencyThreshold, config.AmbiguityThreshold)
	for _, sent := range sentences {
		for _, tag := range sent.Tags {
			model.AddClass(tag)
		}
	}

	order := make([]types.TaggedSentence, len(sentences))
	copy(order, sentences)

	for it := 0; it < config.Iterations; it++ {
		rnd.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
		prev, prev2 := StartMarker, Start2Marker
		for _, sent := range order {
			if config.ResetHistory {
				prev, prev2 = StartMarker, Start2Marker
			}
			context := BuildContext(sent.Words)
			for i, word := range sent.Words {
				tag, ok := model.TagBook[strings.ToLower(word)]
				if !ok {
					feats := Extract(i, word, context, prev, prev2)
					tag = model.Predict(feats)
					model.Update(sent.Tags[i], tag, feats)
				}
				prev2, prev = prev, tag
			}
		}
	}

	model.Average()
	return model, nil
}
