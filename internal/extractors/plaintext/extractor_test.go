package plaintext

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("line one\nline two"), 0600))

	content, err := New().Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "line one\nline two", content)
}

func TestExtract_MissingFile(t *testing.T) {
	_, err := New().Extract(context.Background(), "/nonexistent.txt")

	assert.Error(t, err)
}

func TestExtensions(t *testing.T) {
	assert.Equal(t, []string{".txt"}, New().Extensions())
}
