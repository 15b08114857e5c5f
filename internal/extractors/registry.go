package extractors

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/clerktree/arbor/internal/core/domain"
	"github.com/clerktree/arbor/internal/core/ports/driven"
	"github.com/clerktree/arbor/internal/extractors/docx"
	"github.com/clerktree/arbor/internal/extractors/markdown"
	"github.com/clerktree/arbor/internal/extractors/pdf"
	"github.com/clerktree/arbor/internal/extractors/plaintext"
	"github.com/clerktree/arbor/internal/extractors/pptx"
)

// Registry maps file extensions to their text extractor.
type Registry struct {
	byExt map[string]driven.TextExtractor
}

// NewRegistry builds a registry from the given extractors. A later
// extractor claiming an already-registered extension wins.
func NewRegistry(extractors ...driven.TextExtractor) *Registry {
	r := &Registry{byExt: make(map[string]driven.TextExtractor)}
	for _, ex := range extractors {
		for _, ext := range ex.Extensions() {
			r.byExt[ext] = ex
		}
	}
	return r
}

// DefaultRegistry returns a registry covering all supported formats:
// .txt, .md, .pdf, .docx, .pptx.
func DefaultRegistry() *Registry {
	return NewRegistry(
		plaintext.New(),
		markdown.New(),
		pdf.New(),
		docx.New(),
		pptx.New(),
	)
}

// Supported reports whether the path's extension has an extractor.
func (r *Registry) Supported(path string) bool {
	_, ok := r.byExt[normalisedExt(path)]
	return ok
}

// Extract dispatches to the extractor for the path's extension.
// Unrecognised extensions yield domain.ErrUnsupportedType.
func (r *Registry) Extract(ctx context.Context, path string) (string, error) {
	ex, ok := r.byExt[normalisedExt(path)]
	if !ok {
		return "", domain.ErrUnsupportedType
	}
	return ex.Extract(ctx, path)
}

func normalisedExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
