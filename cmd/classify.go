package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/topiclass/post-classifier/pkg/classifier"
	"github.com/topiclass/post-classifier/pkg/config"
	"github.com/topiclass/post-classifier/pkg/dataset"
)

var (
	classifyConfigFile string
	classifyDebug      bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify [train-csv] [test-csv]",
	Short: "Train on a labeled CSV and evaluate predictions on a test CSV",
	Long: `Train the classifier on a labeled training file, then predict a topic for
every post in the test file and report per-post predictions plus the overall
accuracy.

With --debug the command also echoes the training data and dumps the trained
model: each class with its log-prior, and each class/word pair with its count
and log-likelihood.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		trainPath, testPath := args[0], args[1]

		cfg, err := config.LoadConfig(classifyConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %v", err)
		}

		if classifyDebug {
			if err := printTrainingData(trainPath, cfg); err != nil {
				return err
			}
		}

		model, err := trainModel(trainPath, cfg)
		if err != nil {
			return err
		}

		fmt.Printf("trained on %d examples\n", model.TotalPosts())
		if classifyDebug {
			fmt.Printf("vocabulary size = %d\n", model.VocabSize())
		}
		fmt.Println()

		if classifyDebug {
			printModelDump(model, cfg.Output.ScorePrecision)
		}

		src, err := dataset.Open(testPath, cfg.Input.TagColumn, cfg.Input.ContentColumn)
		if err != nil {
			return err
		}
		defer src.Close()

		fmt.Println("test data:")
		summary, err := model.Evaluate(src, func(r classifier.Result) {
			fmt.Printf("  correct = %s, predicted = %s, log-probability score = %s\n",
				r.TrueLabel, r.Predicted, formatScore(r.Score, cfg.Output.ScorePrecision))
			fmt.Printf("  content = %s\n\n", r.Content)
		})
		if err != nil {
			return err
		}

		fmt.Printf("performance: %d / %d posts predicted correctly\n",
			summary.Correct, summary.Total)

		return nil
	},
}

// trainModel builds a frequency model from a labeled CSV file.
func trainModel(path string, cfg *config.Config) (*classifier.Model, error) {
	src, err := dataset.Open(path, cfg.Input.TagColumn, cfg.Input.ContentColumn)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	model, err := classifier.TrainFrom(src)
	if err != nil {
		return nil, fmt.Errorf("failed to train on %s: %v", path, err)
	}
	return model, nil
}

// printTrainingData echoes every training record before training starts.
func printTrainingData(path string, cfg *config.Config) error {
	src, err := dataset.Open(path, cfg.Input.TagColumn, cfg.Input.ContentColumn)
	if err != nil {
		return err
	}
	defer src.Close()

	fmt.Println("training data:")
	for {
		post, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("  label = %s, content = %s\n", post.Label, post.Content)
	}
}

// printModelDump prints the classes and per-word parameters of a trained
// model. Labels appear in first-seen training order, words sorted.
func printModelDump(model *classifier.Model, precision int) {
	fmt.Println("classes:")
	for _, label := range model.Labels() {
		prior, err := model.LogPrior(label)
		if err != nil {
			continue
		}
		fmt.Printf("  %s, %d examples, log-prior = %s\n",
			label, model.LabelCount(label), formatScore(prior, precision))
	}

	fmt.Println("classifier parameters:")
	for _, label := range model.Labels() {
		for _, word := range model.LabelWords(label) {
			fmt.Printf("  %s:%s, count = %d, log-likelihood = %s\n",
				label, word, model.JointCount(label, word),
				formatScore(model.LogLikelihood(label, word), precision))
		}
	}
	fmt.Println()
}

// formatScore renders a log-probability with the configured number of
// significant digits.
func formatScore(score float64, precision int) string {
	return strconv.FormatFloat(score, 'g', precision, 64)
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyConfigFile, "config", "c", "", "Configuration file path")
	classifyCmd.Flags().BoolVar(&classifyDebug, "debug", false, "Print training data and model parameters")
}
