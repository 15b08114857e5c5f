package extractors

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clerktree/arbor/internal/core/domain"
)

func TestDefaultRegistry_Supported(t *testing.T) {
	r := DefaultRegistry()

	assert.True(t, r.Supported("notes.txt"))
	assert.True(t, r.Supported("README.md"))
	assert.True(t, r.Supported("claim.pdf"))
	assert.True(t, r.Supported("letter.docx"))
	assert.True(t, r.Supported("deck.pptx"))

	// Extension matching is case-insensitive.
	assert.True(t, r.Supported("REPORT.TXT"))

	assert.False(t, r.Supported("image.png"))
	assert.False(t, r.Supported("noextension"))
}

func TestRegistry_Extract_Unsupported(t *testing.T) {
	r := DefaultRegistry()

	_, err := r.Extract(context.Background(), "archive.zip")

	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestRegistry_Extract_Dispatches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain content"), 0600))

	content, err := DefaultRegistry().Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "plain content", content)
}
