// Package pptx extracts text from PPTX files. A PPTX archive is a ZIP of
// OOXML parts; slide text lives in the <a:t> elements of
// ppt/slides/slideN.xml, which this extractor walks in slide order.
package pptx

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/clerktree/arbor/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

var slideName = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// Extractor handles PPTX files.
type Extractor struct{}

// New creates a PPTX extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extensions returns the file extensions this extractor handles.
func (e *Extractor) Extensions() []string {
	return []string{".pptx"}
}

// Extract concatenates the text of every slide, one shape per line.
func (e *Extractor) Extract(_ context.Context, path string) (string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open pptx: %w", err)
	}
	defer reader.Close()

	type slide struct {
		number int
		file   *zip.File
	}

	var slides []slide
	for _, file := range reader.File {
		m := slideName.FindStringSubmatch(file.Name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		slides = append(slides, slide{number: n, file: file})
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].number < slides[j].number })

	var buf strings.Builder
	for _, s := range slides {
		text, err := slideText(s.file)
		if err != nil {
			return "", fmt.Errorf("slide %d: %w", s.number, err)
		}
		if text != "" {
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			buf.WriteString(text)
		}
	}
	return buf.String(), nil
}

// slideText pulls the character data of every <a:t> element in the slide.
func slideText(file *zip.File) (string, error) {
	rc, err := file.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	var buf strings.Builder
	decoder := xml.NewDecoder(rc)
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
			// Paragraph boundaries become newlines.
			if t.Name.Local == "p" && buf.Len() > 0 && !strings.HasSuffix(buf.String(), "\n") {
				buf.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				buf.Write(t)
			}
		}
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
