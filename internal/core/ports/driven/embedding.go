package driven

import "context"

// EmbeddingService generates vector embeddings from text.
// This is an optional service: when nil, semantic scoring is disabled and
// the engine runs in lexical-only mode.
//
// Implementations may include:
//   - Ollama (nomic-embed-text, all-minilm)
//   - OpenAI (text-embedding-3-small, text-embedding-3-large)
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts in one call.
	// The semantic index build encodes all chunks through a single batch.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector size (e.g. 384, 768, 1536).
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	// Used at startup to decide whether semantic indexing is attempted.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
