package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clerktree/arbor/internal/index/semantic"
)

// mockSummariser implements driven.Summariser for testing.
type mockSummariser struct {
	result string
	err    error
	calls  int
}

func (m *mockSummariser) Summarise(_ context.Context, _ string, _ int) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.result, nil
}

func (m *mockSummariser) ModelName() string { return "mock-summarise" }
func (m *mockSummariser) Close() error      { return nil }

func TestEnricher_Snippets_SentenceMode(t *testing.T) {
	e := NewEnricher(false, nil)
	content := "The weather was fine. The warehouse fire damaged the inventory. Nothing else happened."

	snippets := e.Snippets(content, "warehouse fire", 3)

	require.NotEmpty(t, snippets)
	assert.Equal(t, "The warehouse fire damaged the inventory.", snippets[0])
}

func TestEnricher_Snippets_NoOverlap(t *testing.T) {
	e := NewEnricher(false, nil)

	assert.Empty(t, e.Snippets("Entirely unrelated sentences here.", "quantum physics", 3))
	assert.Empty(t, e.Snippets("Some content.", "", 3))
}

func TestEnricher_Snippets_Capped(t *testing.T) {
	e := NewEnricher(false, nil)
	content := strings.Repeat("The claim was noted. ", 10)

	snippets := e.Snippets(content, "claim", 3)

	assert.Len(t, snippets, 3)
}

func TestEnricher_Snippets_DegradedMode(t *testing.T) {
	e := NewEnricher(true, nil)
	content := strings.Repeat("x", 300) + " needle " + strings.Repeat("y", 300)

	snippets := e.Snippets(content, "needle", 3)

	require.Len(t, snippets, 1)
	assert.Contains(t, snippets[0], "needle")
	// Window of 100 characters either side of the hit.
	assert.LessOrEqual(t, len(snippets[0]), 2*snippetWindow)
}

func TestEnricher_Snippets_DegradedNoHit(t *testing.T) {
	e := NewEnricher(true, nil)

	assert.Empty(t, e.Snippets("nothing relevant", "needle", 3))
}

func TestEnricher_RelevantChunks_RanksBySimilarity(t *testing.T) {
	e := NewEnricher(false, nil)
	chunks := []semantic.Chunk{
		{ID: "c1", Text: "orthogonal", Embedding: []float32{0, 1}},
		{ID: "c2", Text: "aligned", Embedding: []float32{1, 0}},
		{ID: "c3", Text: "diagonal", Embedding: []float32{1, 1}},
	}

	relevant := e.RelevantChunks([]float32{1, 0}, chunks, 2)

	require.Len(t, relevant, 2)
	assert.Equal(t, "aligned", relevant[0].Text)
	assert.Equal(t, "diagonal", relevant[1].Text)
	// Chunk identifiers travel with the ranked texts.
	assert.Equal(t, "c2", relevant[0].ChunkID)
	assert.Equal(t, "c3", relevant[1].ChunkID)
	assert.Greater(t, relevant[0].Score, relevant[1].Score)
}

func TestEnricher_RelevantChunks_Empty(t *testing.T) {
	e := NewEnricher(false, nil)

	assert.Empty(t, e.RelevantChunks([]float32{1, 0}, nil, 3))
}

func TestEnricher_Summary_FallbackFirstTwoSentences(t *testing.T) {
	e := NewEnricher(false, nil)
	content := "First sentence here. Second sentence here. Third sentence here."

	summary := e.Summary(context.Background(), content, 150)

	assert.Equal(t, "First sentence here. Second sentence here.", summary)
}

func TestEnricher_Summary_DegradedTruncates(t *testing.T) {
	e := NewEnricher(true, nil)
	content := strings.Repeat("a", 500)

	summary := e.Summary(context.Background(), content, 150)

	assert.Equal(t, strings.Repeat("a", 150)+"...", summary)
}

func TestEnricher_Summary_ShortContentSkipsModel(t *testing.T) {
	summariser := &mockSummariser{result: "model summary"}
	e := NewEnricher(false, summariser)

	summary := e.Summary(context.Background(), "Short note. Nothing more.", 150)

	assert.Equal(t, "Short note. Nothing more.", summary)
	assert.Zero(t, summariser.calls, "content under 100 chars must not hit the model")
}

func TestEnricher_Summary_UsesModel(t *testing.T) {
	summariser := &mockSummariser{result: "A concise model summary."}
	e := NewEnricher(false, summariser)
	content := strings.Repeat("Sentence with sufficient length for the model. ", 5)

	summary := e.Summary(context.Background(), content, 150)

	assert.Equal(t, "A concise model summary.", summary)
	assert.Equal(t, 1, summariser.calls)
}

func TestEnricher_Summary_ModelErrorFallsBack(t *testing.T) {
	summariser := &mockSummariser{err: errors.New("model offline")}
	e := NewEnricher(false, summariser)
	content := "First sentence with plenty of characters inside of it, easily enough. " +
		"Second sentence also has plenty of characters. Third one."

	summary := e.Summary(context.Background(), content, 150)

	assert.Equal(t,
		"First sentence with plenty of characters inside of it, easily enough. "+
			"Second sentence also has plenty of characters.",
		summary)
}
