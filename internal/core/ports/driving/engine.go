package driving

import (
	"context"

	"github.com/clerktree/arbor/internal/core/domain"
)

// Engine is the hybrid search engine: full index builds over a directory
// snapshot, fused lexical+semantic queries, and corpus statistics.
type Engine interface {
	// Index performs a full rebuild over the directory snapshot and
	// atomically replaces the previous index. It returns the number of
	// documents indexed. Concurrent builds are serialised; queries
	// against the previous snapshot remain valid during a build.
	Index(ctx context.Context, dir string) (int, error)

	// Search scores every candidate document under both indexes, fuses
	// the normalised scores, and returns the ranked, enriched top-k.
	// An empty corpus yields an empty result set, not an error.
	Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.RankedResults, error)

	// Stats returns aggregate counts over the current snapshot.
	Stats() domain.CorpusStats

	// SemanticEnabled reports whether semantic scoring is available for
	// this session. It becomes false permanently if the embedding model
	// fails during an index build.
	SemanticEnabled() bool
}
