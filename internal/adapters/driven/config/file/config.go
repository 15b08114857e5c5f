// Package file loads engine configuration from a TOML file.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full engine configuration.
type Config struct {
	// DocumentsDir is the directory scanned during index builds.
	DocumentsDir string           `toml:"documents_dir"`
	Embedding    EmbeddingConfig  `toml:"embedding"`
	Summariser   SummariserConfig `toml:"summariser"`
	Server       ServerConfig     `toml:"server"`
}

// EmbeddingConfig selects and configures the embedding backend.
type EmbeddingConfig struct {
	// Provider is "ollama", "openai", or "none".
	Provider          string  `toml:"provider"`
	BaseURL           string  `toml:"base_url"`
	Model             string  `toml:"model"`
	APIKey            string  `toml:"api_key"`
	TimeoutSeconds    int     `toml:"timeout_seconds"`
	Dimensions        int     `toml:"dimensions"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// SummariserConfig configures the optional summarisation model.
type SummariserConfig struct {
	// Enabled turns abstractive summaries on. Off, the engine still
	// produces extractive fallback summaries.
	Enabled        bool   `toml:"enabled"`
	BaseURL        string `toml:"base_url"`
	Model          string `toml:"model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Timeout converts the configured seconds to a duration.
func (c EmbeddingConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Timeout converts the configured seconds to a duration.
func (c SummariserConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		DocumentsDir: "documents",
		Embedding: EmbeddingConfig{
			Provider: "ollama",
		},
		Summariser: SummariserConfig{
			Enabled: false,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// DefaultPath returns ~/.arbor/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".arbor", "config.toml"), nil
}

// Load reads the configuration at path, applying defaults for anything
// unset. A missing file is not an error: defaults are returned.
func Load(path string) (Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse config %s: %w", path, err)
	}
	return config, nil
}

// Save writes the configuration to path, creating parent directories.
func Save(path string, config Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
