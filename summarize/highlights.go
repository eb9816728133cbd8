package summarize

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"golang.org/x/exp/slog"

	"github.com/snipfeed/snipfeed/errors"
	"github.com/snipfeed/snipfeed/model"
	"github.com/snipfeed/snipfeed/textgen"
)

const summaryPromptFmt = `
Create a short, engaging summary of this YouTube video. Make it informative and concise in 2-3 sentences.

%s
Summary:`

const highlightsPromptFmt = `
Analyze this YouTube video information and predict 5 key timestamp moments that would be good for creating a short preview.
For each timestamp, provide: a time in the format MM:SS, a short description of what happens at that moment, and why it's interesting.
Return the result as a JSON array of objects with "time", "description", and "reason" fields.

%s
Example of expected response format:
[
  {"time": "00:45", "description": "Introduction of the main concept", "reason": "Sets up the video context"},
  {"time": "02:13", "description": "Demonstration of the key technique", "reason": "Shows the most valuable information"},
  ...
]
`

const promptDescriptionLimit = 500

var objectArrayPattern = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)

// HighlightGenerator derives a summary and timestamped highlights for one
// video from the text generation provider.
type HighlightGenerator struct {
	gen    textgen.Generator
	logger *slog.Logger
}

func NewHighlightGenerator(gen textgen.Generator, logger *slog.Logger) *HighlightGenerator {
	return &HighlightGenerator{
		gen:    gen,
		logger: logger,
	}
}

// Summarize produces the 2-3 sentence summary. There is no video detail
// response without one, so failures propagate as GENERATION_FAILED.
func (h *HighlightGenerator) Summarize(ctx context.Context, md model.VideoMetadata) (string, error) {
	reply, err := h.gen.Generate(ctx, textgen.Request{
		Prompt:      fmt.Sprintf(summaryPromptFmt, promptContext(md)),
		Temperature: 0.7,
		MaxTokens:   150,
	})
	if err != nil {
		return "", errors.Wrap(err, errors.CodeGeneration, "failed to generate summary")
	}

	return reply, nil
}

// ExtractHighlights asks for 5 key moments and parses the first JSON array
// found in the reply, keeping the model's order. Any failure degrades to an
// empty set; a video without highlights is still a valid response.
func (h *HighlightGenerator) ExtractHighlights(ctx context.Context, md model.VideoMetadata) []model.HighlightTimestamp {
	reply, err := h.gen.Generate(ctx, textgen.Request{
		Prompt:      fmt.Sprintf(highlightsPromptFmt, promptContext(md)),
		Temperature: 0.2,
		MaxTokens:   1000,
	})
	if err != nil {
		h.logger.Error("highlight generation failed, continuing without highlights", err, slog.String("video", md.ID))
		return []model.HighlightTimestamp{}
	}

	highlights, err := parseHighlights(reply)
	if err != nil {
		h.logger.Error("could not parse highlights, continuing without them", err, slog.String("video", md.ID))
		return []model.HighlightTimestamp{}
	}

	return highlights
}

func parseHighlights(text string) ([]model.HighlightTimestamp, error) {
	raw := objectArrayPattern.FindString(text)
	if raw == "" {
		return nil, errors.New(errors.CodeGenerationParse, "no json array in generation output")
	}

	var parsed []model.HighlightTimestamp
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, errors.Wrap(err, errors.CodeGenerationParse, "invalid highlight json")
	}

	highlights := make([]model.HighlightTimestamp, 0, len(parsed))
	for _, h := range parsed {
		// entries without a usable MM:SS offset are dropped, not fatal
		if _, err := h.Seconds(); err != nil {
			continue
		}
		highlights = append(highlights, h)
	}

	return highlights, nil
}

func promptContext(md model.VideoMetadata) string {
	return fmt.Sprintf("Title: %s\nDescription: %s...\nChannel: %s\nDuration: %s\nViews: %d\n",
		md.Title, truncate(md.Description, promptDescriptionLimit), md.Channel, md.Duration, md.ViewCount)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
