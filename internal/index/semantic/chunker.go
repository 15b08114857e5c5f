package semantic

import (
	"strings"

	"github.com/clerktree/arbor/internal/text"
)

// Chunking limits. Sentence chunks shorter than minChunkChars are
// discarded; the degraded path falls back to fixed word windows.
const (
	minChunkChars = 20
	windowWords   = 100
)

// ChunkContent splits document content into embedding-sized spans.
// Sentence-level splitting is preferred; when the preprocessor runs in
// degraded mode the splitter falls back to fixed windows of 100 words.
func ChunkContent(content string, degraded bool) []string {
	if degraded {
		return windowChunks(content)
	}
	return sentenceChunks(content)
}

func sentenceChunks(content string) []string {
	var chunks []string
	for _, sentence := range text.SplitSentences(content) {
		if len(sentence) > minChunkChars {
			chunks = append(chunks, sentence)
		}
	}
	return chunks
}

func windowChunks(content string) []string {
	words := strings.Fields(content)
	var chunks []string
	for i := 0; i < len(words); i += windowWords {
		end := i + windowWords
		if end > len(words) {
			end = len(words)
		}
		chunk := strings.Join(words[i:end], " ")
		if len(chunk) > minChunkChars {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}
