// Package lexical builds the inverted-index statistics used for BM25
// keyword scoring: vocabulary, per-term document frequencies, and
// document lengths. The index is rebuilt wholesale on every index pass.
package lexical

import (
	"math"

	"github.com/clerktree/arbor/internal/core/domain"
)

// BM25 parameters. k1 controls term-frequency saturation, b controls
// document-length normalisation.
const (
	k1 = 1.2
	b  = 0.75
)

// Index holds the global lexical statistics for one corpus snapshot.
type Index struct {
	// DocFrequencies maps each term to the number of documents that
	// contain it (presence, not multiplicity).
	DocFrequencies map[string]int

	// DocLengths is the token count per document, aligned by document
	// index in the corpus slice.
	DocLengths []int

	// AvgDocLength is the mean of DocLengths, 0 for an empty corpus.
	AvgDocLength float64

	// TotalDocs is the number of documents in the snapshot.
	TotalDocs int
}

// Build constructs the index from the corpus in a single pass.
func Build(docs []domain.Document) *Index {
	ix := &Index{
		DocFrequencies: make(map[string]int),
		DocLengths:     make([]int, len(docs)),
		TotalDocs:      len(docs),
	}

	totalLength := 0
	for i := range docs {
		ix.DocLengths[i] = len(docs[i].Tokens)
		totalLength += len(docs[i].Tokens)

		seen := make(map[string]struct{}, len(docs[i].Tokens))
		for _, tok := range docs[i].Tokens {
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			ix.DocFrequencies[tok]++
		}
	}

	if len(docs) > 0 {
		ix.AvgDocLength = float64(totalLength) / float64(len(docs))
	}
	return ix
}

// VocabularySize returns the number of distinct terms in the corpus.
func (ix *Index) VocabularySize() int {
	return len(ix.DocFrequencies)
}

// Score computes the BM25 score of one document for the query tokens.
//
// Terms absent from the corpus (document frequency 0) contribute nothing.
// Terms present in every document yield a negative idf; the raw formula is
// applied without flooring, so very common terms can subtract from the
// score.
func (ix *Index) Score(queryTokens []string, docTokens []string, docLength int) float64 {
	if len(queryTokens) == 0 || docLength == 0 {
		return 0
	}

	tf := make(map[string]int, docLength)
	for _, tok := range docTokens {
		tf[tok]++
	}

	score := 0.0
	n := float64(ix.TotalDocs)
	for _, tok := range queryTokens {
		freq, inDoc := tf[tok]
		if !inDoc {
			continue
		}
		df := ix.DocFrequencies[tok]
		if df == 0 {
			continue
		}

		idf := math.Log((n - float64(df) + 0.5) / (float64(df) + 0.5))
		tfNorm := float64(freq) * (k1 + 1) /
			(float64(freq) + k1*(1-b+b*float64(docLength)/ix.AvgDocLength))
		score += idf * tfNorm
	}
	return score
}
