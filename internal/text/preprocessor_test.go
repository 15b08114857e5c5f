package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreprocessor_Tokenize_StemsAndFilters(t *testing.T) {
	p := NewPreprocessor()

	tokens := p.Tokenize("The adjusters were processing claims quickly.")

	// Stop words and short words are gone, the rest is stemmed.
	assert.Equal(t, []string{"adjust", "process", "claim", "quick"}, tokens)
}

func TestPreprocessor_Tokenize_StripsPunctuationAndDigits(t *testing.T) {
	p := NewPreprocessor()

	tokens := p.Tokenize("Payment: $5,000.00 (settlement)!")

	assert.Equal(t, []string{"payment", "settlement"}, tokens)
}

func TestPreprocessor_Tokenize_KeepsDiacritics(t *testing.T) {
	p := NewPreprocessor()

	tokens := p.Tokenize("prioritát sofort")

	for _, tok := range tokens {
		assert.NotEmpty(t, tok)
	}
	assert.Len(t, tokens, 2)
}

func TestPreprocessor_Tokenize_DropsShortWords(t *testing.T) {
	p := NewPreprocessor()

	assert.Empty(t, p.Tokenize("it is an ok"))
}

func TestPreprocessor_Tokenize_MultilingualStopWords(t *testing.T) {
	p := NewPreprocessor()

	// "der"/"die" (German) and "les" (French) are stop words.
	tokens := p.Tokenize("der Schaden die Police les documents")

	assert.NotContains(t, tokens, "der")
	assert.NotContains(t, tokens, "die")
	assert.NotContains(t, tokens, "les")
}

func TestPreprocessor_Tokenize_Deterministic(t *testing.T) {
	p := NewPreprocessor()

	input := "Urgent claim processing required immediately"
	assert.Equal(t, p.Tokenize(input), p.Tokenize(input))
}

func TestPreprocessor_Tokenize_Empty(t *testing.T) {
	p := NewPreprocessor()

	assert.Empty(t, p.Tokenize(""))
	assert.Empty(t, p.Tokenize("   \n\t "))
}

func TestDegradedPreprocessor_Tokenize(t *testing.T) {
	p := NewDegradedPreprocessor()

	tokens := p.Tokenize("The Claims Were Processed")

	// No stemming, no stop-word removal, just lower-cased fields.
	assert.Equal(t, []string{"the", "claims", "were", "processed"}, tokens)
	assert.True(t, p.Degraded())
}

func TestSplitSentences(t *testing.T) {
	sentences := SplitSentences("First sentence. Second one! A question?\nA line")

	assert.Equal(t, []string{
		"First sentence.",
		"Second one!",
		"A question?",
		"A line",
	}, sentences)
}

func TestSplitSentences_Empty(t *testing.T) {
	assert.Empty(t, SplitSentences(""))
	assert.Empty(t, SplitSentences(" \n \n "))
}
