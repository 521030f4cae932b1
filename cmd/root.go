package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "topiclass",
	Short: "Topiclass - Naive Bayes topic classifier for short posts",
	Long: `Topiclass learns which words go with which topics from a labeled CSV of
posts, then predicts the most probable topic for unseen posts.

Training and test files are CSVs with a header row containing 'tag' and
'content' columns. The model is rebuilt from the training file on every run.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Topiclass - Naive Bayes post classifier")
		fmt.Println("Use 'topiclass --help' for usage information")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(predictCmd)
}
