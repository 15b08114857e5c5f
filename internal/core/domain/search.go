package domain

// Fusion weights. These are fixed constants of the design, not tunable
// per query: 65% keyword relevance, 35% semantic similarity.
const (
	BM25Weight     = 0.65
	SemanticWeight = 0.35
)

// SearchOptions configures a search query.
type SearchOptions struct {
	// TopK is the maximum number of results (default 10).
	TopK int

	// TypeFilter restricts results to an exact document type.
	// Empty means no filter.
	TypeFilter DocType

	// UrgencyFilter restricts results to an exact urgency level.
	// Empty means no filter.
	UrgencyFilter UrgencyLevel

	// Summaries requests an abstractive summary per result.
	Summaries bool
}

// RelevantChunk is one embedded chunk attached to a result, identified
// within the current index generation.
type RelevantChunk struct {
	// ChunkID is the chunk's identifier in the semantic index.
	ChunkID string `json:"chunk_id"`

	// Text is the chunk content.
	Text string `json:"text"`

	// Score is the cosine similarity to the query embedding.
	Score float64 `json:"score"`
}

// SearchResult is a single ranked hit with its score breakdown.
type SearchResult struct {
	// Document is the matched document.
	Document Document `json:"document"`

	// BM25Score is the raw BM25 score before normalisation.
	BM25Score float64 `json:"bm25_score"`

	// SemanticScore is the raw cosine similarity before normalisation.
	SemanticScore float64 `json:"semantic_score"`

	// NormBM25 is BM25Score divided by the candidate-set maximum.
	NormBM25 float64 `json:"norm_bm25"`

	// NormSemantic is SemanticScore divided by the candidate-set maximum.
	NormSemantic float64 `json:"norm_semantic"`

	// CombinedScore is the weighted fusion of the normalised scores.
	CombinedScore float64 `json:"combined_score"`

	// Snippets are up to 3 query-relevant text fragments.
	Snippets []string `json:"snippets"`

	// RelevantChunks are up to 3 chunks ranked by semantic similarity.
	// Only present when semantic search is enabled for the document.
	RelevantChunks []RelevantChunk `json:"relevant_chunks,omitempty"`

	// Summary is the optional abstractive summary.
	Summary string `json:"summary,omitempty"`
}

// FilterApplied echoes the filters that were in effect for a search.
type FilterApplied struct {
	DocType DocType      `json:"doc_type"`
	Urgency UrgencyLevel `json:"urgency"`
}

// RankedResults is the complete response for one search.
type RankedResults struct {
	Query           string         `json:"query"`
	Results         []SearchResult `json:"results"`
	TotalResults    int            `json:"total_results"`
	BM25Weight      float64        `json:"bm25_weight"`
	SemanticWeight  float64        `json:"semantic_weight"`
	SemanticEnabled bool           `json:"semantic_enabled"`

	// ProcessingTime is wall-clock seconds, rounded to milliseconds.
	ProcessingTime float64 `json:"processing_time"`

	FilterApplied FilterApplied `json:"filter_applied"`
}
