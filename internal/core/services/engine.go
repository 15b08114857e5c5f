package services

import (
	"context"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/clerktree/arbor/internal/core/domain"
	"github.com/clerktree/arbor/internal/core/ports/driven"
	"github.com/clerktree/arbor/internal/core/ports/driving"
	"github.com/clerktree/arbor/internal/extractors"
	"github.com/clerktree/arbor/internal/index/lexical"
	"github.com/clerktree/arbor/internal/index/semantic"
	"github.com/clerktree/arbor/internal/logger"
	"github.com/clerktree/arbor/internal/metadata"
	"github.com/clerktree/arbor/internal/text"
)

// Ensure Engine implements the interface.
var _ driving.Engine = (*Engine)(nil)

// Documents with at most this many characters of trimmed text are
// excluded from indexing.
const minContentChars = 50

// DefaultTopK is the result count when SearchOptions.TopK is not set.
const DefaultTopK = 10

// snapshot is one immutable index generation. Queries hold a snapshot
// pointer for their whole lifetime, so a concurrent rebuild never
// exposes a partially built index.
type snapshot struct {
	docs    []domain.Document
	lexical *lexical.Index
	sem     *semantic.Index
}

// Engine is the hybrid search engine service.
type Engine struct {
	registry   *extractors.Registry
	pre        *text.Preprocessor
	meta       *metadata.Extractor
	embedder   driven.EmbeddingService // optional, nil disables semantic
	summariser driven.Summariser       // optional, nil forces fallback
	enricher   *Enricher

	buildMu sync.Mutex // serialises index builds

	mu              sync.RWMutex // guards snap and semanticEnabled
	snap            *snapshot
	semanticEnabled bool
}

// NewEngine creates the engine. The embedder and summariser are optional
// (can be nil); without an embedder the engine runs lexical-only.
func NewEngine(
	registry *extractors.Registry,
	pre *text.Preprocessor,
	meta *metadata.Extractor,
	embedder driven.EmbeddingService,
	summariser driven.Summariser,
) *Engine {
	return &Engine{
		registry:        registry,
		pre:             pre,
		meta:            meta,
		embedder:        embedder,
		summariser:      summariser,
		enricher:        NewEnricher(pre.Degraded(), summariser),
		semanticEnabled: embedder != nil,
	}
}

// SemanticEnabled reports whether semantic scoring is available.
func (e *Engine) SemanticEnabled() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.semanticEnabled
}

// Index performs a full rebuild over the directory snapshot.
// Per-file extraction and metadata derivation run on a worker pool; the
// finished snapshot replaces the previous one atomically.
func (e *Engine) Index(ctx context.Context, dir string) (int, error) {
	e.buildMu.Lock()
	defer e.buildMu.Unlock()

	logger.Section("Index Build")
	defer logger.Timing("index build", time.Now())

	paths, err := e.collectPaths(dir)
	if err != nil {
		return 0, err
	}
	logger.Debug("Found %d candidate files in %s", len(paths), dir)

	docs, err := e.loadDocuments(ctx, paths)
	if err != nil {
		return 0, err
	}
	logger.Info("Indexing %d documents", len(docs))

	lexIx := lexical.Build(docs)
	logger.Debug("Lexical index: %d terms, avg doc length %.1f",
		lexIx.VocabularySize(), lexIx.AvgDocLength)

	var semIx *semantic.Index
	if e.embedder != nil && e.SemanticEnabled() {
		semIx, err = semantic.Build(ctx, docs, e.embedder, e.pre.Degraded())
		if err != nil {
			// Semantic indexing is disabled for the whole session, not
			// per document. The engine continues in lexical-only mode.
			logger.Warn("Semantic indexing failed, continuing lexical-only: %v", err)
			semIx = nil
		} else {
			logger.Debug("Semantic index: %d chunks", semIx.ChunkCount())
		}
	}

	e.mu.Lock()
	e.snap = &snapshot{docs: docs, lexical: lexIx, sem: semIx}
	if e.embedder != nil && semIx == nil {
		e.semanticEnabled = false
	}
	e.mu.Unlock()

	return len(docs), nil
}

// collectPaths walks the directory and returns supported file paths in
// walk order, which is deterministic (lexical by path).
func (e *Engine) collectPaths(dir string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("document directory: %w", err)
	}

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && e.registry.Supported(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	return paths, nil
}

// loadDocuments extracts, tokenises, and derives metadata for every file
// in parallel, preserving path order in the result.
func (e *Engine) loadDocuments(ctx context.Context, paths []string) ([]domain.Document, error) {
	poolSize := runtime.NumCPU()
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, fmt.Errorf("worker pool: %w", err)
	}
	defer pool.Release()

	// Each slot is written by exactly one task; nil means skipped.
	loaded := make([]*domain.Document, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		i, path := i, path
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			loaded[i] = e.loadDocument(ctx, path)
		})
		if submitErr != nil {
			wg.Done()
			logger.Warn("Submit %s: %v", path, submitErr)
		}
	}
	wg.Wait()

	docs := make([]domain.Document, 0, len(paths))
	for _, doc := range loaded {
		if doc != nil {
			docs = append(docs, *doc)
		}
	}
	return docs, nil
}

// loadDocument builds a single Document, or nil when the file is skipped
// (extraction failure or too little text). Extraction failure is
// deliberately non-fatal.
func (e *Engine) loadDocument(ctx context.Context, path string) *domain.Document {
	content, err := e.registry.Extract(ctx, path)
	if err != nil {
		logger.Warn("Extract %s: %v (skipping)", path, err)
		return nil
	}
	if len(strings.TrimSpace(content)) <= minContentChars {
		logger.Debug("Skipping %s: too little text", path)
		return nil
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)

	return &domain.Document{
		ID:       path,
		Title:    stem,
		Content:  content,
		Tokens:   e.pre.Tokenize(content),
		Metadata: e.meta.ExtractAll(content, stem),
		FileType: ext,
		FilePath: path,
	}
}

// scoredDoc carries the per-document score breakdown through fusion.
type scoredDoc struct {
	docIdx        int
	bm25          float64
	semanticScore float64
	normBM25      float64
	normSemantic  float64
	combined      float64
}

// Search scores every surviving candidate under both indexes, fuses the
// normalised scores with the fixed 65/35 weights, and returns the ranked
// top-k enriched with snippets and optional summaries.
func (e *Engine) Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.RankedResults, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)
	start := time.Now()

	e.mu.RLock()
	snap := e.snap
	semEnabled := e.semanticEnabled
	e.mu.RUnlock()

	results := &domain.RankedResults{
		Query:           query,
		Results:         []domain.SearchResult{},
		BM25Weight:      domain.BM25Weight,
		SemanticWeight:  domain.SemanticWeight,
		SemanticEnabled: semEnabled,
		FilterApplied: domain.FilterApplied{
			DocType: opts.TypeFilter,
			Urgency: opts.UrgencyFilter,
		},
	}

	// Empty corpus is not an error: well-defined empty results.
	if snap == nil || len(snap.docs) == 0 {
		logger.Debug("Empty corpus, returning no results")
		return results, nil
	}

	topK := opts.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}

	queryTokens := e.pre.Tokenize(query)
	logger.Debug("Query tokens: %v", queryTokens)

	// The raw (non-preprocessed) query is encoded once per search.
	var queryEmbedding []float32
	if semEnabled && snap.sem != nil && snap.sem.ChunkCount() > 0 {
		emb, err := e.embedder.Embed(ctx, query)
		if err != nil {
			logger.Warn("Query embedding failed, semantic scores are 0: %v", err)
		} else {
			queryEmbedding = emb
		}
	}

	scored := e.scoreCandidates(snap, queryTokens, queryEmbedding, opts)
	logger.Debug("Scored %d candidates", len(scored))

	normaliseAndFuse(scored)

	// Stable sort: ties keep original corpus order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].combined > scored[j].combined
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}

	for _, sd := range scored {
		doc := snap.docs[sd.docIdx]
		result := domain.SearchResult{
			Document:      doc,
			BM25Score:     sd.bm25,
			SemanticScore: sd.semanticScore,
			NormBM25:      round3(sd.normBM25),
			NormSemantic:  round3(sd.normSemantic),
			CombinedScore: sd.combined,
			Snippets:      e.enricher.Snippets(doc.Content, query, maxSnippets),
		}
		if semEnabled && queryEmbedding != nil && doc.SemanticEmbedding != nil && snap.sem != nil {
			result.RelevantChunks = e.enricher.RelevantChunks(
				queryEmbedding, snap.sem.DocumentChunks(sd.docIdx), maxRelevantChunks)
		}
		if opts.Summaries {
			result.Summary = e.enricher.Summary(ctx, doc.Content, DefaultSummaryLength)
		}
		results.Results = append(results.Results, result)
	}

	results.TotalResults = len(results.Results)
	results.ProcessingTime = round3(time.Since(start).Seconds())
	logger.Info("Final results: %d in %.3fs", results.TotalResults, results.ProcessingTime)

	return results, nil
}

// scoreCandidates computes raw BM25 and semantic scores for every
// document that survives the filters. Filtered-out documents are excluded
// from scoring entirely, including normalisation.
func (e *Engine) scoreCandidates(
	snap *snapshot, queryTokens []string, queryEmbedding []float32, opts domain.SearchOptions,
) []scoredDoc {
	scored := make([]scoredDoc, 0, len(snap.docs))

	for i := range snap.docs {
		doc := &snap.docs[i]

		if opts.TypeFilter != "" && doc.Metadata.DocumentType.Type != opts.TypeFilter {
			continue
		}
		if opts.UrgencyFilter != "" && doc.Metadata.Urgency.Level != opts.UrgencyFilter {
			continue
		}

		sd := scoredDoc{
			docIdx: i,
			bm25:   snap.lexical.Score(queryTokens, doc.Tokens, snap.lexical.DocLengths[i]),
		}
		if queryEmbedding != nil && doc.SemanticEmbedding != nil {
			sd.semanticScore = semantic.Cosine(queryEmbedding, doc.SemanticEmbedding)
		}
		scored = append(scored, sd)
	}
	return scored
}

// normaliseAndFuse divides each raw score by the candidate-set maximum
// (0 when the maximum is 0) and combines with the fixed weights.
func normaliseAndFuse(scored []scoredDoc) {
	var maxBM25, maxSemantic float64
	for i := range scored {
		if scored[i].bm25 > maxBM25 {
			maxBM25 = scored[i].bm25
		}
		if scored[i].semanticScore > maxSemantic {
			maxSemantic = scored[i].semanticScore
		}
	}

	for i := range scored {
		if maxBM25 > 0 {
			scored[i].normBM25 = scored[i].bm25 / maxBM25
		}
		if maxSemantic > 0 {
			scored[i].normSemantic = scored[i].semanticScore / maxSemantic
		}
		scored[i].combined = domain.BM25Weight*scored[i].normBM25 +
			domain.SemanticWeight*scored[i].normSemantic
	}
}

// Stats returns aggregate counts over the current snapshot.
func (e *Engine) Stats() domain.CorpusStats {
	e.mu.RLock()
	snap := e.snap
	e.mu.RUnlock()

	stats := domain.CorpusStats{
		ByType: make(map[domain.DocType]int),
		ByUrgency: map[domain.UrgencyLevel]int{
			domain.UrgencyCritical: 0,
			domain.UrgencyHigh:     0,
			domain.UrgencyMedium:   0,
			domain.UrgencyNormal:   0,
		},
	}
	if snap == nil {
		return stats
	}

	stats.TotalDocuments = len(snap.docs)
	for i := range snap.docs {
		meta := &snap.docs[i].Metadata
		stats.ByType[meta.DocumentType.Type]++
		stats.ByUrgency[meta.Urgency.Level]++
		if len(meta.ClaimNumbers) > 0 {
			stats.WithClaimNumbers++
		}
		if len(meta.Amounts) > 0 {
			stats.WithAmounts++
		}
		if len(meta.Contacts.Emails) > 0 || len(meta.Contacts.Phones) > 0 {
			stats.WithContacts++
		}
	}
	return stats
}

// round3 rounds to three decimal places.
func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
