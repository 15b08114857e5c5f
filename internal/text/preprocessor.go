package text

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kljensen/snowball/english"
)

// allowedChars strips everything outside a Latin-extended alphabet
// allow-list (German, French, Spanish diacritics) plus whitespace.
var allowedChars = regexp.MustCompile(`[^a-zA-ZäöüßÄÖÜàèéêëîïôûùÀÈÉÊËÎÏÔÛÙáéíóúñÁÉÍÓÚÑ\s]`)

// Preprocessor normalises raw text into stemmed, stop-word-filtered terms.
// The same instance must be used at index time and at query time so that
// query tokens land in the index vocabulary.
//
// A degraded preprocessor lower-cases and whitespace-splits only, with no
// stemming or stop-word removal. Callers tolerate this lower-quality mode
// without failing; it exists so the engine keeps working when linguistic
// resources are deliberately disabled.
type Preprocessor struct {
	degraded  bool
	stopWords map[string]struct{}
}

// NewPreprocessor returns the full multilingual preprocessor.
func NewPreprocessor() *Preprocessor {
	return &Preprocessor{stopWords: stopWordSet()}
}

// NewDegradedPreprocessor returns the whitespace-split fallback mode.
func NewDegradedPreprocessor() *Preprocessor {
	return &Preprocessor{degraded: true}
}

// Degraded reports whether this preprocessor runs in fallback mode.
func (p *Preprocessor) Degraded() bool {
	return p.degraded
}

// Tokenize converts text into an ordered sequence of terms. It is
// deterministic and side-effect-free.
func (p *Preprocessor) Tokenize(text string) []string {
	if p.degraded {
		return strings.Fields(strings.ToLower(text))
	}

	cleaned := allowedChars.ReplaceAllString(text, " ")
	words := strings.Fields(strings.ToLower(cleaned))

	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if utf8.RuneCountInString(w) < 3 {
			continue
		}
		if _, stop := p.stopWords[w]; stop {
			continue
		}
		tokens = append(tokens, english.Stem(w, false))
	}
	return tokens
}
