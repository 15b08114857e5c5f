package cli

import (
	"github.com/spf13/cobra"

	"github.com/clerktree/arbor/internal/logger"
)

var (
	flagVerbose bool
	flagConfig  string
	flagDir     string
)

var rootCmd = &cobra.Command{
	Use:   "arbor",
	Short: "Hybrid document search engine",
	Long: `Arbor indexes a directory of documents (txt, md, pdf, docx, pptx)
and searches them with a hybrid of BM25 keyword scoring and semantic
embedding similarity, enriched with extracted metadata such as claim
numbers, urgency, and document type.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path (default ~/.arbor/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "documents directory (overrides config)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
