package summarize

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/snipfeed/snipfeed/errors"
	"github.com/snipfeed/snipfeed/model"
	"github.com/snipfeed/snipfeed/textgen"
)

// stubGenerator routes every prompt through fn. Shared by the tests in this
// package.
type stubGenerator struct {
	fn func(req textgen.Request) (string, error)
}

func (s *stubGenerator) Generate(_ context.Context, req textgen.Request) (string, error) {
	return s.fn(req)
}

func fixedReply(reply string) *stubGenerator {
	return &stubGenerator{fn: func(textgen.Request) (string, error) {
		return reply, nil
	}}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard))
}

var testMetadata = model.VideoMetadata{
	ID:          "dQw4w9WgXcQ",
	Title:       "T",
	Description: "A video about things.",
	Channel:     "C",
	Duration:    "PT3M33S",
	ViewCount:   100,
}

func TestSummarize(t *testing.T) {
	t.Run("returns generated text", func(t *testing.T) {
		gen := fixedReply("A short and engaging summary.")
		hg := NewHighlightGenerator(gen, testLogger())

		summary, err := hg.Summarize(context.Background(), testMetadata)
		require.NoError(t, err)
		assert.Equal(t, "A short and engaging summary.", summary)
	})

	t.Run("upstream failure is fatal", func(t *testing.T) {
		gen := &stubGenerator{fn: func(textgen.Request) (string, error) {
			return "", errors.New(errors.CodeUpstream, "boom")
		}}
		hg := NewHighlightGenerator(gen, testLogger())

		_, err := hg.Summarize(context.Background(), testMetadata)
		require.Error(t, err)
		assert.Equal(t, errors.CodeGeneration, errors.CodeOf(err))
	})
}

func TestExtractHighlights(t *testing.T) {
	t.Run("parses the first json array and keeps order", func(t *testing.T) {
		reply := `Sure, here are the key moments:
[
  {"time": "00:45", "description": "Introduction of the main concept", "reason": "Sets up the video context"},
  {"time": "02:13", "description": "Demonstration of the key technique", "reason": "Shows the most valuable information"}
]
Let me know if you need more.`
		hg := NewHighlightGenerator(fixedReply(reply), testLogger())

		highlights := hg.ExtractHighlights(context.Background(), testMetadata)
		require.Len(t, highlights, 2)
		assert.Equal(t, "00:45", highlights[0].Time)
		assert.Equal(t, "02:13", highlights[1].Time)
		assert.Equal(t, "Demonstration of the key technique", highlights[1].Description)
	})

	t.Run("reply without an array degrades to empty", func(t *testing.T) {
		hg := NewHighlightGenerator(fixedReply("I cannot find any interesting moments here."), testLogger())

		highlights := hg.ExtractHighlights(context.Background(), testMetadata)
		assert.NotNil(t, highlights)
		assert.Empty(t, highlights)
	})

	t.Run("unparseable array degrades to empty", func(t *testing.T) {
		hg := NewHighlightGenerator(fixedReply(`[{"time": "00:45", "description": }]`), testLogger())

		highlights := hg.ExtractHighlights(context.Background(), testMetadata)
		assert.Empty(t, highlights)
	})

	t.Run("entries with malformed times are dropped", func(t *testing.T) {
		reply := `[
  {"time": "00:45", "description": "good", "reason": "r"},
  {"time": "1:2:3", "description": "bad format", "reason": "r"},
  {"time": "oops", "description": "not a time", "reason": "r"},
  {"time": "03:10", "description": "also good", "reason": "r"}
]`
		hg := NewHighlightGenerator(fixedReply(reply), testLogger())

		highlights := hg.ExtractHighlights(context.Background(), testMetadata)
		require.Len(t, highlights, 2)
		assert.Equal(t, "00:45", highlights[0].Time)
		assert.Equal(t, "03:10", highlights[1].Time)
	})

	t.Run("generation failure degrades to empty", func(t *testing.T) {
		gen := &stubGenerator{fn: func(textgen.Request) (string, error) {
			return "", fmt.Errorf("connection refused")
		}}
		hg := NewHighlightGenerator(gen, testLogger())

		highlights := hg.ExtractHighlights(context.Background(), testMetadata)
		assert.Empty(t, highlights)
	})
}

func TestPromptContextTruncatesDescription(t *testing.T) {
	md := testMetadata
	for i := 0; i < 100; i++ {
		md.Description += "0123456789"
	}

	got := promptContext(md)
	assert.LessOrEqual(t, len(got), 700)
	assert.Contains(t, got, "Title: T")
	assert.Contains(t, got, "Views: 100")
}
