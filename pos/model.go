package pos

import (
	"encoding/json"
	"io/ioutil"
	"math"
	"sort"
)

// Model is an averaged perceptron over sparse string features. During
// training it additionally tracks, for every (feature, class) pair, the
// running total of held weight values and the update step at which the
// weight last changed; those let Average compute the time-average of the
// whole weight trajectory without touching every pair on every step.
//
// Once Average has run the model is immutable and safe for concurrent
// readers.
type Model struct {
	Classes []string                      `json:"classes"`
	Weights map[string]map[string]float64 `json:"weights"`
	TagBook map[string]string             `json:"tag_book"`

	totals    map[string]map[string]float64
	stamps    map[string]map[string]float64
	instances float64
	finalized bool
}

func NewModel() *Model {
	return &Model{
		Weights: make(map[string]map[string]float64),
		TagBook: make(map[string]string),
		totals:  make(map[string]map[string]float64),
		stamps:  make(map[string]map[string]float64),
	}
}

// AddClass registers a tag in the label alphabet. Classes stay sorted so
// prediction ties always break toward the lexicographically smallest tag.
func (m *Model) AddClass(tag string) {
	idx := sort.SearchStrings(m.Classes, tag)
	if idx < len(m.Classes) && m.Classes[idx] == tag {
		return
	}
	m.Classes = append(m.Classes, "")
	copy(m.Classes[idx+1:], m.Classes[idx:])
	m.Classes[idx] = tag
}

// Scores sums weight×count per class for the given features. Unknown
// features and classes contribute zero.
func (m *Model) Scores(feats Features) map[string]float64 {
	scores := make(map[string]float64, len(m.Classes))
	for feat, count := range feats {
		if count == 0 {
			continue
		}
		classWeights, ok := m.Weights[feat]
		if !ok {
			continue
		}
		for class, weight := range classWeights {
			scores[class] += count * weight
		}
	}
	return scores
}

// Predict returns the highest-scoring class. Classes are scanned in sorted
// order and only a strictly greater score wins, which makes tie-breaking
// deterministic. With no classes the result is the empty string.
func (m *Model) Predict(feats Features) string {
	scores := m.Scores(feats)
	best := ""
	bestScore := math.Inf(-1)
	for _, class := range m.Classes {
		if score := scores[class]; score > bestScore {
			best, bestScore = class, score
		}
	}
	return best
}

// Update applies one online step. The step counter ticks for every token
// that reaches the classifier; weights move only on a mistake. Before a
// weight changes, the value it held since its last change is folded into
// the totals so averaging stays exact.
func (m *Model) Update(truth, guess string, feats Features) {
	if m.finalized {
		panic("pos: update on finalized model")
	}
	m.instances++
	if truth == guess {
		return
	}
	for feat, count := range feats {
		if count == 0 {
			continue
		}
		if m.Weights[feat] == nil {
			m.Weights[feat] = make(map[string]float64)
		}
		m.shift(feat, truth, count)
		m.shift(feat, guess, -count)
	}
}

// shift settles the pending total for (feat, class) and then moves the
// weight by delta.
func (m *Model) shift(feat, class string, delta float64) {
	weight := m.Weights[feat][class]
	if m.totals[feat] == nil {
		m.totals[feat] = make(map[string]float64)
		m.stamps[feat] = make(map[string]float64)
	}
	m.totals[feat][class] += (m.instances - m.stamps[feat][class]) * weight
	m.stamps[feat][class] = m.instances
	m.Weights[feat][class] = weight + delta
}

// Average collapses the model into its time-averaged form: each weight
// becomes its trajectory total divided by the final step count, rounded to
// three decimal places. Zero results are dropped to keep the model sparse.
// After this the model only serves predictions.
func (m *Model) Average() {
	if m.finalized {
		return
	}
	m.finalized = true
	if m.instances == 0 {
		return
	}
	for feat, classWeights := range m.Weights {
		averaged := make(map[string]float64, len(classWeights))
		for class, weight := range classWeights {
			total := m.totals[feat][class]
			total += (m.instances - m.stamps[feat][class]) * weight
			value := round3(total / m.instances)
			if value != 0 {
				averaged[class] = value
			}
		}
		if len(averaged) > 0 {
			m.Weights[feat] = averaged
		} else {
			delete(m.Weights, feat)
		}
	}
	m.totals = nil
	m.stamps = nil
}

// Finalized reports whether Average has run.
func (m *Model) Finalized() bool {
	return m.finalized
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Save writes the finalized model as JSON.
func (m *Model) Save(modelFilePath string) error {
	buf, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(modelFilePath, buf, 0644)
}

// LoadModelFromFile reads a finalized model saved by Save.
func LoadModelFromFile(modelFilePath string) (*Model, error) {
	buf, err := ioutil.ReadFile(modelFilePath)
	if err != nil {
		return nil, err
	}
	m := NewModel()
	if err := json.Unmarshal(buf, m); err != nil {
		return nil, err
	}
	m.finalized = true
	return m, nil
}
