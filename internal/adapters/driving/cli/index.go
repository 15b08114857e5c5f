package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index [dir]",
	Short: "Build the document index",
	Long: `Scans the documents directory, extracts text and metadata from
every supported file, and builds the lexical and semantic indexes.
The directory argument overrides the configured documents_dir.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		config.DocumentsDir = args[0]
	}

	engine := buildEngine(cmd.Context(), config)
	count, err := engine.Index(cmd.Context(), config.DocumentsDir)
	if err != nil {
		return fmt.Errorf("index failed: %w", err)
	}

	cmd.Printf("Indexed %d documents from %s\n", count, config.DocumentsDir)
	if engine.SemanticEnabled() {
		cmd.Println("Semantic search: enabled")
	} else {
		cmd.Println("Semantic search: disabled (lexical-only)")
	}
	return nil
}
