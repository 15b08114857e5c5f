// Package semantic builds the chunk-level embedding index: sentence (or
// word-window) chunks with embedding vectors, a chunk-to-document mapping,
// and a per-document mean embedding written back onto the documents.
package semantic

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/clerktree/arbor/internal/core/domain"
	"github.com/clerktree/arbor/internal/core/ports/driven"
	"github.com/clerktree/arbor/internal/logger"
)

// Chunk is one embedded text span. Every chunk belongs to exactly one
// document.
type Chunk struct {
	// ID is a unique identifier for the chunk.
	ID string

	// DocIndex is the owning document's position in the corpus slice.
	DocIndex int

	// Text is the chunk content.
	Text string

	// Embedding is the chunk's vector representation.
	Embedding []float32
}

// Index holds the semantic structures for one corpus snapshot.
type Index struct {
	chunks    []Chunk
	docChunks map[int][]int // document index -> chunk indices
}

// Build chunks every document, encodes all chunks through a single
// batched embedding call, and assigns each document its mean embedding.
// Documents with no extractable chunks keep a nil embedding and are
// excluded from semantic scoring.
//
// Any embedding failure returns an error; the caller disables semantic
// scoring for the whole session and continues in lexical-only mode.
func Build(ctx context.Context, docs []domain.Document, embedder driven.EmbeddingService, degraded bool) (*Index, error) {
	if embedder == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}

	ix := &Index{docChunks: make(map[int][]int)}

	var texts []string
	for i := range docs {
		for _, chunk := range ChunkContent(docs[i].Content, degraded) {
			ix.docChunks[i] = append(ix.docChunks[i], len(ix.chunks))
			ix.chunks = append(ix.chunks, Chunk{
				ID:       uuid.New().String(),
				DocIndex: i,
				Text:     chunk,
			})
			texts = append(texts, chunk)
		}
	}

	if len(texts) == 0 {
		logger.Debug("Semantic index: no chunks extracted from %d documents", len(docs))
		return ix, nil
	}

	logger.Debug("Semantic index: encoding %d chunks in one batch", len(texts))
	embeddings, err := embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("encode chunks: %w", err)
	}
	if len(embeddings) != len(texts) {
		return nil, fmt.Errorf("encode chunks: got %d embeddings for %d chunks", len(embeddings), len(texts))
	}

	for i := range ix.chunks {
		ix.chunks[i].Embedding = embeddings[i]
	}

	// Document embedding = mean of its chunk embeddings.
	for docIdx, chunkIdxs := range ix.docChunks {
		vectors := make([][]float32, 0, len(chunkIdxs))
		for _, ci := range chunkIdxs {
			vectors = append(vectors, ix.chunks[ci].Embedding)
		}
		docs[docIdx].SemanticEmbedding = Mean(vectors)
	}

	return ix, nil
}

// ChunkCount returns the number of chunks in the index.
func (ix *Index) ChunkCount() int {
	return len(ix.chunks)
}

// DocumentChunks returns the chunks belonging to the given document, in
// document order.
func (ix *Index) DocumentChunks(docIndex int) []Chunk {
	idxs := ix.docChunks[docIndex]
	chunks := make([]Chunk, 0, len(idxs))
	for _, ci := range idxs {
		chunks = append(chunks, ix.chunks[ci])
	}
	return chunks
}
