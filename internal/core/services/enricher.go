package services

import (
	"context"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/clerktree/arbor/internal/core/domain"
	"github.com/clerktree/arbor/internal/core/ports/driven"
	"github.com/clerktree/arbor/internal/index/semantic"
	"github.com/clerktree/arbor/internal/logger"
	"github.com/clerktree/arbor/internal/text"
)

const (
	// maxSnippets caps the snippets attached to one result.
	maxSnippets = 3
	// maxRelevantChunks caps the semantic chunks attached to one result.
	maxRelevantChunks = 3

	// DefaultSummaryLength is the target summary length in characters.
	DefaultSummaryLength = 150

	// Content shorter than this goes straight to the extractive fallback.
	minSummariseChars = 100
	// Content sent to the summariser is truncated to this many characters.
	maxSummariseChars = 1024

	// Half-width of the context window around a keyword hit in degraded
	// snippet mode.
	snippetWindow = 100

	summaryTimeout = 30 * time.Second
)

// Enricher attaches snippets, relevant chunks, and summaries to results.
type Enricher struct {
	degraded   bool
	summariser driven.Summariser // optional
}

// NewEnricher creates an enricher. In degraded mode snippets fall back to
// raw keyword windows instead of sentence scoring.
func NewEnricher(degraded bool, summariser driven.Summariser) *Enricher {
	return &Enricher{degraded: degraded, summariser: summariser}
}

// Snippets returns up to max query-relevant excerpts of the content.
func (e *Enricher) Snippets(content, query string, max int) []string {
	if e.degraded {
		return keywordSnippets(content, query, max)
	}
	return sentenceSnippets(content, query, max)
}

// keywordSnippets finds the first occurrence of each query word and cuts
// a fixed-width window around it.
func keywordSnippets(content, query string, max int) []string {
	contentLower := strings.ToLower(content)
	var snippets []string
	for _, word := range strings.Fields(strings.ToLower(query)) {
		idx := strings.Index(contentLower, word)
		if idx < 0 {
			continue
		}
		start := idx - snippetWindow
		if start < 0 {
			start = 0
		}
		end := idx + snippetWindow
		if end > len(content) {
			end = len(content)
		}
		// Byte windows can split a multi-byte rune at either edge.
		snippet := strings.TrimSpace(strings.ToValidUTF8(content[start:end], ""))
		if snippet != "" {
			snippets = append(snippets, snippet)
		}
		if len(snippets) >= max {
			break
		}
	}
	return snippets
}

// sentenceSnippets scores each sentence by query term overlap and keeps
// the best-scoring ones. Ties keep document order.
func sentenceSnippets(content, query string, max int) []string {
	queryTerms := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(query)) {
		queryTerms[w] = struct{}{}
	}
	if len(queryTerms) == 0 {
		return nil
	}

	sentences := text.SplitSentences(content)

	type scoredSentence struct {
		sentence string
		score    float64
	}
	scored := make([]scoredSentence, 0, len(sentences))
	for _, s := range sentences {
		seen := make(map[string]struct{})
		overlap := 0
		for _, w := range strings.Fields(strings.ToLower(s)) {
			if _, hit := queryTerms[w]; !hit {
				continue
			}
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			overlap++
		}
		scored = append(scored, scoredSentence{
			sentence: s,
			score:    float64(overlap) / float64(len(queryTerms)),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	var snippets []string
	for _, ss := range scored {
		if ss.score <= 0 || len(snippets) >= max {
			break
		}
		snippets = append(snippets, ss.sentence)
	}
	return snippets
}

// RelevantChunks returns the chunks most similar to the query embedding,
// best first, each carrying its chunk identifier and similarity score.
func (e *Enricher) RelevantChunks(queryEmbedding []float32, chunks []semantic.Chunk, max int) []domain.RelevantChunk {
	if len(chunks) == 0 {
		return nil
	}

	scored := make([]domain.RelevantChunk, 0, len(chunks))
	for _, c := range chunks {
		scored = append(scored, domain.RelevantChunk{
			ChunkID: c.ID,
			Text:    c.Text,
			Score:   semantic.Cosine(queryEmbedding, c.Embedding),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	if len(scored) > max {
		scored = scored[:max]
	}
	return scored
}

// Summary produces an abstractive summary via the configured model, with
// an extractive fallback when no summariser is available, the content is
// short, or the model call fails.
func (e *Enricher) Summary(ctx context.Context, content string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultSummaryLength
	}
	if e.summariser == nil || utf8.RuneCountInString(content) < minSummariseChars {
		return e.fallbackSummary(content, maxLength)
	}

	ctx, cancel := context.WithTimeout(ctx, summaryTimeout)
	defer cancel()

	summary, err := e.summariser.Summarise(ctx, truncateRunes(content, maxSummariseChars), maxLength)
	if err != nil || strings.TrimSpace(summary) == "" {
		logger.Warn("Summarisation failed, using extractive fallback: %v", err)
		return e.fallbackSummary(content, maxLength)
	}
	return strings.TrimSpace(summary)
}

// fallbackSummary takes the first two sentences, or a plain truncation in
// degraded mode.
func (e *Enricher) fallbackSummary(content string, maxLength int) string {
	if e.degraded {
		return truncateRunes(content, maxLength) + "..."
	}
	sentences := text.SplitSentences(content)
	if len(sentences) == 0 {
		return truncateRunes(content, maxLength)
	}
	if len(sentences) > 2 {
		sentences = sentences[:2]
	}
	return strings.Join(sentences, " ")
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
