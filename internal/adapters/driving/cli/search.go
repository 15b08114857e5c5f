package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clerktree/arbor/internal/core/domain"
)

var (
	searchLimit     int
	searchType      string
	searchUrgency   string
	searchSummaries bool
	searchJSON      bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the document corpus",
	Long: `Performs a hybrid search across the documents directory.
BM25 keyword scores and semantic embedding similarity are normalised and
combined with fixed 65/35 weights.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().StringVar(&searchType, "type", "", "filter by document type (claim, policy, guideline, regulation, general)")
	searchCmd.Flags().StringVar(&searchUrgency, "urgency", "", "filter by urgency level (critical, high, medium, normal)")
	searchCmd.Flags().BoolVar(&searchSummaries, "summaries", false, "generate document summaries")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	config, err := loadConfig()
	if err != nil {
		return err
	}

	engine := buildEngine(cmd.Context(), config)
	if _, err := engine.Index(cmd.Context(), config.DocumentsDir); err != nil {
		return fmt.Errorf("index failed: %w", err)
	}

	results, err := engine.Search(cmd.Context(), query, domain.SearchOptions{
		TopK:          searchLimit,
		TypeFilter:    domain.DocType(searchType),
		UrgencyFilter: domain.UrgencyLevel(searchUrgency),
		Summaries:     searchSummaries,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results *domain.RankedResults) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results *domain.RankedResults) error {
	if results.TotalResults == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Printf("Results for %q (%.3fs):\n", results.Query, results.ProcessingTime)
	cmd.Println()
	for i := range results.Results {
		r := &results.Results[i]

		title := r.Document.Title
		if title == "" {
			title = r.Document.ID
		}

		cmd.Printf("  [%d] %s (%.3f)\n", i+1, title, r.CombinedScore)
		cmd.Printf("      Type: %s  Urgency: %s  BM25: %.3f  Semantic: %.3f\n",
			r.Document.Metadata.DocumentType.Type,
			r.Document.Metadata.Urgency.Level,
			r.NormBM25, r.NormSemantic)
		if len(r.Document.Metadata.ClaimNumbers) > 0 {
			cmd.Printf("      Claims: %v\n", r.Document.Metadata.ClaimNumbers)
		}
		if len(r.Snippets) > 0 {
			cmd.Printf("      %s\n", r.Snippets[0])
		}
		if r.Summary != "" {
			cmd.Printf("      Summary: %s\n", r.Summary)
		}
		cmd.Println()
	}
	return nil
}
