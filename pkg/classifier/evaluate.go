package classifier

import (
	"errors"
	"io"
)

// Result is the reportable outcome of evaluating one test post.
type Result struct {
	TrueLabel string
	Predicted string
	Score     float64
	Content   string
}

// Summary counts how many test posts were predicted correctly.
type Summary struct {
	Correct int
	Total   int
}

// Evaluate runs the predictor over every post from src and tallies exact
// label matches. Each per-post result is handed to report as it is
// produced; report may be nil when only the summary is wanted.
func (m *Model) Evaluate(src RecordSource, report func(Result)) (Summary, error) {
	var sum Summary
	for {
		post, err := src.Next()
		if errors.Is(err, io.EOF) {
			return sum, nil
		}
		if err != nil {
			return sum, err
		}

		pred, err := m.Predict(post.Content)
		if err != nil {
			return sum, err
		}

		if report != nil {
			report(Result{
				TrueLabel: post.Label,
				Predicted: pred.Label,
				Score:     pred.Score,
				Content:   post.Content,
			})
		}

		sum.Total++
		if pred.Label == post.Label {
			sum.Correct++
		}
	}
}
