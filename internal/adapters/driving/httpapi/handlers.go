package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/clerktree/arbor/internal/core/domain"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":           "ok",
		"semantic_enabled": s.engine.SemanticEnabled(),
	})
}

// handleSearch serves GET /api/search?q=...&limit=&type=&urgency=&summaries=.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		jsonError(w, "missing query parameter q", http.StatusBadRequest)
		return
	}

	opts := domain.SearchOptions{
		TypeFilter:    domain.DocType(r.URL.Query().Get("type")),
		UrgencyFilter: domain.UrgencyLevel(r.URL.Query().Get("urgency")),
		Summaries:     r.URL.Query().Get("summaries") == "true",
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			jsonError(w, "invalid limit", http.StatusBadRequest)
			return
		}
		opts.TopK = limit
	}

	results, err := s.engine.Search(r.Context(), query, opts)
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Stats())
}

// handleIndex triggers a full rebuild of the index.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	count, err := s.engine.Index(r.Context(), s.docsDir)
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"indexed":          count,
		"semantic_enabled": s.engine.SemanticEnabled(),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func jsonError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}
