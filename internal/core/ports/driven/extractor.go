package driven

import "context"

// TextExtractor converts a file of a specific format into raw text.
// Extraction failure is non-fatal to an index pass: the indexer logs the
// error and skips the file.
type TextExtractor interface {
	// Extensions returns the lower-case file extensions this extractor
	// handles, including the leading dot (e.g. ".pdf").
	Extensions() []string

	// Extract reads the file at path and returns its text content.
	// A corrupt or unreadable file returns an error; callers treat any
	// error as "skip this file".
	Extract(ctx context.Context, path string) (string, error)
}
