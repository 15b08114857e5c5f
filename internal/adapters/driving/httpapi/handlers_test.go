package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clerktree/arbor/internal/core/domain"
)

// stubEngine implements driving.Engine for handler tests.
type stubEngine struct {
	indexCount int
	indexErr   error
	results    *domain.RankedResults
	searchErr  error
	stats      domain.CorpusStats
	semantic   bool

	lastQuery string
	lastOpts  domain.SearchOptions
}

func (s *stubEngine) Index(_ context.Context, _ string) (int, error) {
	return s.indexCount, s.indexErr
}

func (s *stubEngine) Search(_ context.Context, query string, opts domain.SearchOptions) (*domain.RankedResults, error) {
	s.lastQuery = query
	s.lastOpts = opts
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.results, nil
}

func (s *stubEngine) Stats() domain.CorpusStats { return s.stats }
func (s *stubEngine) SemanticEnabled() bool     { return s.semantic }

func doRequest(t *testing.T, engine *stubEngine, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	server := NewServer(engine, "/docs")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := doRequest(t, &stubEngine{semantic: true}, http.MethodGet, "/health")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["semantic_enabled"])
}

func TestHandleSearch(t *testing.T) {
	engine := &stubEngine{
		results: &domain.RankedResults{
			Query:        "fraud",
			TotalResults: 1,
			Results: []domain.SearchResult{
				{Document: domain.Document{ID: "a", Title: "alpha"}, CombinedScore: 0.65},
			},
		},
	}

	rec := doRequest(t, engine, http.MethodGet,
		"/api/search?q=fraud&limit=5&type=claim&urgency=high&summaries=true")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fraud", engine.lastQuery)
	assert.Equal(t, 5, engine.lastOpts.TopK)
	assert.Equal(t, domain.TypeClaim, engine.lastOpts.TypeFilter)
	assert.Equal(t, domain.UrgencyHigh, engine.lastOpts.UrgencyFilter)
	assert.True(t, engine.lastOpts.Summaries)

	var body domain.RankedResults
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.TotalResults)
}

func TestHandleSearch_MissingQuery(t *testing.T) {
	rec := doRequest(t, &stubEngine{}, http.MethodGet, "/api/search")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSearch_InvalidLimit(t *testing.T) {
	rec := doRequest(t, &stubEngine{}, http.MethodGet, "/api/search?q=x&limit=zero")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSearch_EngineError(t *testing.T) {
	engine := &stubEngine{searchErr: errors.New("boom")}

	rec := doRequest(t, engine, http.MethodGet, "/api/search?q=x")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleStats(t *testing.T) {
	engine := &stubEngine{stats: domain.CorpusStats{TotalDocuments: 7}}

	rec := doRequest(t, engine, http.MethodGet, "/api/stats")

	require.Equal(t, http.StatusOK, rec.Code)

	var body domain.CorpusStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 7, body.TotalDocuments)
}

func TestHandleIndex(t *testing.T) {
	engine := &stubEngine{indexCount: 42}

	rec := doRequest(t, engine, http.MethodPost, "/api/index")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(42), body["indexed"])
}

func TestHandleIndex_Error(t *testing.T) {
	engine := &stubEngine{indexErr: errors.New("no such directory")}

	rec := doRequest(t, engine, http.MethodPost, "/api/index")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
