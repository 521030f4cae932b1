package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
	"github.com/topiclass/post-classifier/pkg/classifier"
	"github.com/topiclass/post-classifier/pkg/config"
)

var (
	predictConfigFile  string
	predictText        string
	predictInteractive bool
)

var predictCmd = &cobra.Command{
	Use:   "predict [train-csv]",
	Short: "Train and predict the topic of ad-hoc post content",
	Long: `Train the classifier on a labeled training file and predict a topic for
content supplied on the command line, or interactively: with --interactive
the command prompts for post content in a loop until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if predictText == "" && !predictInteractive {
			return fmt.Errorf("one of --text or --interactive must be specified")
		}

		cfg, err := config.LoadConfig(predictConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %v", err)
		}

		model, err := trainModel(args[0], cfg)
		if err != nil {
			return err
		}
		fmt.Printf("trained on %d examples\n\n", model.TotalPosts())

		if predictText != "" {
			return printPrediction(model, predictText, cfg.Output.ScorePrecision)
		}
		return predictLoop(model, cfg.Output.ScorePrecision)
	},
}

func printPrediction(model *classifier.Model, content string, precision int) error {
	pred, err := model.Predict(content)
	if err != nil {
		return err
	}
	fmt.Printf("predicted = %s, log-probability score = %s\n",
		pred.Label, formatScore(pred.Score, precision))
	return nil
}

// predictLoop prompts for post content until the user interrupts or submits
// an empty line.
func predictLoop(model *classifier.Model, precision int) error {
	for {
		prompt := &survey.Input{
			Message: "Post content:",
		}

		var content string
		if err := survey.AskOne(prompt, &content); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}
		if strings.TrimSpace(content) == "" {
			return nil
		}

		if err := printPrediction(model, content, precision); err != nil {
			return err
		}
		fmt.Println()
	}
}

func init() {
	predictCmd.Flags().StringVarP(&predictConfigFile, "config", "c", "", "Configuration file path")
	predictCmd.Flags().StringVarP(&predictText, "text", "t", "", "Post content to classify")
	predictCmd.Flags().BoolVarP(&predictInteractive, "interactive", "i", false, "Prompt for post content in a loop")
}
