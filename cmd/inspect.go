package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/topiclass/post-classifier/pkg/config"
)

var inspectConfigFile string

var inspectCmd = &cobra.Command{
	Use:   "inspect [train-csv]",
	Short: "Train and print the model's frequency tables and parameters",
	Long: `Train the classifier on a labeled training file and print its diagnostics:
the number of examples, the vocabulary size, each class with its example
count and log-prior, and each class/word pair with its count and
log-likelihood.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(inspectConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %v", err)
		}

		model, err := trainModel(args[0], cfg)
		if err != nil {
			return err
		}

		fmt.Printf("trained on %d examples\n", model.TotalPosts())
		fmt.Printf("vocabulary size = %d\n", model.VocabSize())
		fmt.Println()
		printModelDump(model, cfg.Output.ScorePrecision)

		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectConfigFile, "config", "c", "", "Configuration file path")
}
