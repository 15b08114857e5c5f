package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clerktree/arbor/internal/adapters/driving/httpapi"
	"github.com/clerktree/arbor/internal/logger"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP search API",
	Long: `Builds the index once at startup and serves search, stats, and
reindex endpoints over HTTP.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		config.Server.Addr = serveAddr
	}

	engine := buildEngine(cmd.Context(), config)
	count, err := engine.Index(cmd.Context(), config.DocumentsDir)
	if err != nil {
		return fmt.Errorf("index failed: %w", err)
	}
	logger.Info("Serving %d documents", count)

	server := httpapi.NewServer(engine, config.DocumentsDir)
	cmd.Printf("Listening on %s\n", config.Server.Addr)
	return server.ListenAndServe(cmd.Context(), config.Server.Addr)
}
