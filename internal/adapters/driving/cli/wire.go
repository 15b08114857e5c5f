package cli

import (
	"context"
	"time"

	configfile "github.com/clerktree/arbor/internal/adapters/driven/config/file"
	ollamaembed "github.com/clerktree/arbor/internal/adapters/driven/embedding/ollama"
	openaiembed "github.com/clerktree/arbor/internal/adapters/driven/embedding/openai"
	ollamasum "github.com/clerktree/arbor/internal/adapters/driven/summariser/ollama"
	"github.com/clerktree/arbor/internal/core/ports/driven"
	"github.com/clerktree/arbor/internal/core/services"
	"github.com/clerktree/arbor/internal/extractors"
	"github.com/clerktree/arbor/internal/logger"
	"github.com/clerktree/arbor/internal/metadata"
	"github.com/clerktree/arbor/internal/text"
)

const pingTimeout = 3 * time.Second

// loadConfig resolves the config path and reads the configuration.
func loadConfig() (configfile.Config, error) {
	path := flagConfig
	if path == "" {
		var err error
		path, err = configfile.DefaultPath()
		if err != nil {
			return configfile.Default(), err
		}
	}
	config, err := configfile.Load(path)
	if err != nil {
		return config, err
	}
	if flagDir != "" {
		config.DocumentsDir = flagDir
	}
	return config, nil
}

// buildEngine assembles the engine from configuration. An unreachable
// embedding backend downgrades to lexical-only rather than failing.
func buildEngine(ctx context.Context, config configfile.Config) *services.Engine {
	embedder := newEmbedder(ctx, config.Embedding)

	var summariser driven.Summariser
	if config.Summariser.Enabled {
		summariser = ollamasum.New(ollamasum.Config{
			BaseURL: config.Summariser.BaseURL,
			Model:   config.Summariser.Model,
			Timeout: config.Summariser.Timeout(),
		})
	}

	return services.NewEngine(
		extractors.DefaultRegistry(),
		text.NewPreprocessor(),
		metadata.NewExtractor(),
		embedder,
		summariser,
	)
}

// newEmbedder creates the configured embedding client, or nil when the
// provider is disabled or unreachable.
func newEmbedder(ctx context.Context, config configfile.EmbeddingConfig) driven.EmbeddingService {
	var embedder driven.EmbeddingService
	switch config.Provider {
	case "", "none":
		return nil
	case "openai":
		embedder = openaiembed.New(openaiembed.Config{
			BaseURL:           config.BaseURL,
			APIKey:            config.APIKey,
			Model:             config.Model,
			Timeout:           config.Timeout(),
			Dimensions:        config.Dimensions,
			RequestsPerSecond: config.RequestsPerSecond,
		})
	case "ollama":
		embedder = ollamaembed.New(ollamaembed.Config{
			BaseURL:           config.BaseURL,
			Model:             config.Model,
			Timeout:           config.Timeout(),
			Dimensions:        config.Dimensions,
			RequestsPerSecond: config.RequestsPerSecond,
		})
	default:
		logger.Warn("Unknown embedding provider %q, running lexical-only", config.Provider)
		return nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := embedder.Ping(pingCtx); err != nil {
		logger.Warn("Embedding backend unavailable, running lexical-only: %v", err)
		_ = embedder.Close()
		return nil
	}
	logger.Info("Embedding backend ready: %s", embedder.ModelName())
	return embedder
}
