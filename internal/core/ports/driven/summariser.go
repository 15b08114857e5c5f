package driven

import "context"

// Summariser produces abstractive summaries of document content.
// This is an optional service: when nil, or on any error, the enricher
// falls back to an extractive first-sentences summary.
type Summariser interface {
	// Summarise returns a summary of content of at most maxLength
	// characters. Content is already truncated by the caller.
	Summarise(ctx context.Context, content string, maxLength int) (string, error)

	// ModelName returns the name of the summarisation model.
	ModelName() string

	// Close releases resources.
	Close() error
}
