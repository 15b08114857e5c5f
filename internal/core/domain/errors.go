package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a file extension no extractor handles.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrNotIndexed indicates no index pass has completed yet.
	ErrNotIndexed = errors.New("no index available")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured or failed; semantic search is disabled for the session.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrSummariserUnavailable indicates the summariser service is not
	// configured; summaries fall back to extractive mode.
	ErrSummariserUnavailable = errors.New("summariser service unavailable")
)
