package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clerktree/arbor/internal/core/domain"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	engine := buildEngine(cmd.Context(), config)
	if _, err := engine.Index(cmd.Context(), config.DocumentsDir); err != nil {
		return fmt.Errorf("index failed: %w", err)
	}

	stats := engine.Stats()

	if statsJSON {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Documents: %d\n", stats.TotalDocuments)
	cmd.Println("By type:")
	for docType, count := range stats.ByType {
		cmd.Printf("  %-16s %d\n", docType, count)
	}
	cmd.Println("By urgency:")
	for _, level := range []domain.UrgencyLevel{
		domain.UrgencyCritical, domain.UrgencyHigh,
		domain.UrgencyMedium, domain.UrgencyNormal,
	} {
		cmd.Printf("  %-16s %d\n", level, stats.ByUrgency[level])
	}
	cmd.Printf("With claim numbers: %d\n", stats.WithClaimNumbers)
	cmd.Printf("With amounts:       %d\n", stats.WithAmounts)
	cmd.Printf("With contacts:      %d\n", stats.WithContacts)
	return nil
}
