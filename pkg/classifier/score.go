package classifier

import (
	"fmt"
	"math"
)

// LogPrior returns ln(labelCount/totalPosts), the log-probability of label
// before any content is considered. The label must have been observed in
// training.
func (m *Model) LogPrior(label string) (float64, error) {
	if m.totalPosts == 0 {
		return 0, ErrNoTrainingData
	}
	count, ok := m.labelCount[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	return math.Log(float64(count) / float64(m.totalPosts)), nil
}

// LogLikelihood returns the log-probability contribution of one word given
// a label. Three cases, checked in this order:
//
//  1. The word never occurs under this label but occurs elsewhere in
//     training: fall back to its global document frequency.
//  2. The word never occurs anywhere in training: a fixed floor of one
//     pseudo-post.
//  3. The word occurs under this label: the plain conditional frequency.
//
// Case 1 must be checked before case 3 so that a word with a zero joint
// count never reaches the ln(0) of the conditional formula.
func (m *Model) LogLikelihood(label, word string) float64 {
	joint := m.jointCount[label][word]
	global := m.wordCount[word]

	switch {
	case joint == 0 && global > 0:
		return math.Log(float64(global) / float64(m.totalPosts))
	case global == 0:
		return math.Log(1 / float64(m.totalPosts))
	default:
		return math.Log(float64(joint) / float64(m.labelCount[label]))
	}
}

// LogScore returns the log-probability score of content under label: the
// log-prior plus the log-likelihood of each unique word. The sum is taken
// in log space so long posts cannot underflow.
func (m *Model) LogScore(label, content string) (float64, error) {
	score, err := m.LogPrior(label)
	if err != nil {
		return 0, err
	}
	for _, w := range UniqueWords(content) {
		score += m.LogLikelihood(label, w)
	}
	return score, nil
}

// Prediction pairs a predicted label with its log-probability score. The
// score ranks labels for a single post only; it is not comparable across
// posts.
type Prediction struct {
	Label string
	Score float64
}

// Predict scores content against every trained label and returns the label
// with the highest log-probability score. Ties resolve to the label whose
// first training post came earliest.
func (m *Model) Predict(content string) (Prediction, error) {
	if len(m.labels) == 0 {
		return Prediction{}, ErrNoTrainingData
	}

	var best Prediction
	for i, label := range m.labels {
		score, err := m.LogScore(label, content)
		if err != nil {
			return Prediction{}, err
		}
		if i == 0 || score > best.Score {
			best = Prediction{Label: label, Score: score}
		}
	}
	return best, nil
}
