package classifier

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

// Post is one training or test example: a category label paired with the
// raw text content of the post.
type Post struct {
	Label   string
	Content string
}

// RecordSource is a pull-based stream of posts. Next returns io.EOF after
// the last record.
type RecordSource interface {
	Next() (Post, error)
}

var (
	// ErrNoTrainingData is returned when a prediction is requested from a
	// model that has not seen any training posts.
	ErrNoTrainingData = errors.New("classifier: model has no training data")

	// ErrUnknownLabel is returned when a score is requested for a label
	// that never occurred in the training data.
	ErrUnknownLabel = errors.New("classifier: label not in training data")
)

// Trainer accumulates word and label frequencies from a stream of labeled
// posts. It is the mutable build phase of the classifier: feed it posts with
// Learn, then call Model to freeze the counts into an immutable Model.
type Trainer struct {
	totalPosts int
	wordCount  map[string]int
	labelCount map[string]int
	jointCount map[string]map[string]int

	// Labels in the order their first training post appeared. Prediction
	// ties resolve to the earliest label in this list, so the order is a
	// contract, not an accident of map iteration.
	labels []string
}

// NewTrainer creates an empty trainer.
func NewTrainer() *Trainer {
	return &Trainer{
		wordCount:  make(map[string]int),
		labelCount: make(map[string]int),
		jointCount: make(map[string]map[string]int),
	}
}

// Learn folds one labeled post into the frequency counts. Every word is
// counted at most once per post. Empty content is legal: the post still
// counts toward the total and its label.
func (t *Trainer) Learn(p Post) error {
	if p.Label == "" {
		return fmt.Errorf("classifier: training post %d has an empty label", t.totalPosts+1)
	}

	if _, seen := t.labelCount[p.Label]; !seen {
		t.labels = append(t.labels, p.Label)
		t.jointCount[p.Label] = make(map[string]int)
	}
	t.labelCount[p.Label]++

	joint := t.jointCount[p.Label]
	for _, w := range UniqueWords(p.Content) {
		t.wordCount[w]++
		joint[w]++
	}

	t.totalPosts++
	return nil
}

// Model freezes the accumulated counts into a Model. The trainer should not
// be fed further posts afterwards; the returned model never changes.
func (t *Trainer) Model() *Model {
	return &Model{
		totalPosts: t.totalPosts,
		vocabSize:  len(t.wordCount),
		wordCount:  t.wordCount,
		labelCount: t.labelCount,
		jointCount: t.jointCount,
		labels:     t.labels,
	}
}

// Train builds a model from a slice of posts in one pass.
func Train(posts []Post) (*Model, error) {
	t := NewTrainer()
	for _, p := range posts {
		if err := t.Learn(p); err != nil {
			return nil, err
		}
	}
	return t.Model(), nil
}

// TrainFrom builds a model by draining a record source.
func TrainFrom(src RecordSource) (*Model, error) {
	t := NewTrainer()
	for {
		post, err := src.Next()
		if errors.Is(err, io.EOF) {
			return t.Model(), nil
		}
		if err != nil {
			return nil, err
		}
		if err := t.Learn(post); err != nil {
			return nil, err
		}
	}
}

// Model holds the frequency statistics of a fully trained classifier. It is
// read-only: all mutation happens in the Trainer before the model exists, so
// concurrent predictions need no locking.
type Model struct {
	totalPosts int
	vocabSize  int
	wordCount  map[string]int
	labelCount map[string]int
	jointCount map[string]map[string]int
	labels     []string
}

// TotalPosts returns the number of training posts ingested.
func (m *Model) TotalPosts() int {
	return m.totalPosts
}

// VocabSize returns the number of distinct words seen across all training
// posts.
func (m *Model) VocabSize() int {
	return m.vocabSize
}

// Labels returns the trained labels in the order each was first seen.
func (m *Model) Labels() []string {
	labels := make([]string, len(m.labels))
	copy(labels, m.labels)
	return labels
}

// LabelCount returns the number of training posts carrying label.
func (m *Model) LabelCount(label string) int {
	return m.labelCount[label]
}

// WordCount returns the number of training posts whose unique-word set
// contains word.
func (m *Model) WordCount(word string) int {
	return m.wordCount[word]
}

// JointCount returns the number of training posts labeled label whose
// unique-word set contains word.
func (m *Model) JointCount(label, word string) int {
	return m.jointCount[label][word]
}

// LabelWords returns every word observed under label, sorted, for
// diagnostic display.
func (m *Model) LabelWords(label string) []string {
	joint := m.jointCount[label]
	words := make([]string, 0, len(joint))
	for w := range joint {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
