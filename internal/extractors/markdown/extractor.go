// Package markdown extracts text from Markdown files using goldmark.
// The Markdown is parsed to an AST and flattened to plain text so that
// formatting syntax never reaches the index.
package markdown

import (
	"context"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/clerktree/arbor/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor handles Markdown files.
type Extractor struct {
	md goldmark.Markdown
}

// New creates a Markdown extractor.
func New() *Extractor {
	return &Extractor{md: goldmark.New()}
}

// Extensions returns the file extensions this extractor handles.
func (e *Extractor) Extensions() []string {
	return []string{".md"}
}

// Extract parses the Markdown AST and collects its text content.
func (e *Extractor) Extract(_ context.Context, path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	doc := e.md.Parser().Parse(gmtext.NewReader(src))

	var buf strings.Builder
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			buf.Write(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				buf.WriteByte('\n')
			}
		case *ast.CodeBlock:
			writeLines(&buf, node.Lines(), src)
		case *ast.FencedCodeBlock:
			writeLines(&buf, node.Lines(), src)
		case *ast.Paragraph, *ast.Heading, *ast.ListItem, *ast.Blockquote:
			if buf.Len() > 0 && !strings.HasSuffix(buf.String(), "\n") {
				buf.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

func writeLines(buf *strings.Builder, lines *gmtext.Segments, src []byte) {
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
}
