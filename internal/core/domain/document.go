package domain

// Document represents one indexed unit produced by a full index pass.
// It is immutable after indexing; a re-index replaces documents wholesale.
type Document struct {
	// ID is the stable identifier (the source file path).
	ID string

	// Title is the display name (the file stem).
	Title string

	// Content is the full extracted text.
	Content string

	// Tokens is the ordered sequence of preprocessed terms.
	// Insertion order matches document order; duplicates are allowed.
	Tokens []string

	// Metadata contains structured facts derived from the content.
	Metadata Metadata

	// FileType is the file extension including the dot (e.g. ".pdf").
	FileType string

	// FilePath is the path the document was read from.
	FilePath string

	// SemanticEmbedding is the mean of the document's chunk embeddings.
	// Nil when semantic indexing produced no chunks for this document;
	// such documents fall back to a semantic score of 0.
	SemanticEmbedding []float32
}
