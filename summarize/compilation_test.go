package summarize

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipfeed/snipfeed/model"
	"github.com/snipfeed/snipfeed/textgen"
)

const compilationHighlightsReply = `[
  {"time": "00:30", "description": "Hook", "reason": "grabs attention"},
  {"time": "01:10", "description": "Peak", "reason": "best moment"},
  {"time": "02:40", "description": "Outro", "reason": "wrap up"}
]`

func compilationCandidates(n int) []model.VideoSummary {
	candidates := make([]model.VideoSummary, 0, n)
	for i := 1; i <= n; i++ {
		candidates = append(candidates, model.VideoSummary{
			ID:        fmt.Sprintf("video-%02d-aa", i),
			Title:     fmt.Sprintf("Video %02d", i),
			Channel:   "C",
			ViewCount: uint64(i * 10),
			YoutubeID: fmt.Sprintf("video-%02d-aa", i),
		})
	}
	return candidates
}

func TestCompilationBuild(t *testing.T) {
	t.Run("caps videos at ten and highlights at two", func(t *testing.T) {
		builder := NewCompilationPlanBuilder(NewHighlightGenerator(fixedReply(compilationHighlightsReply), testLogger()), testLogger())

		plan := builder.Build(context.Background(), compilationCandidates(15))

		require.Len(t, plan.Videos, 10)
		// ranked by view count descending
		assert.Equal(t, "Video 15", plan.Videos[0].Title)
		assert.Equal(t, "Video 06", plan.Videos[9].Title)
		for _, video := range plan.Videos {
			assert.Len(t, video.Timestamps, 2)
			assert.Equal(t, "00:30", video.Timestamps[0].Time)
		}
		assert.Equal(t, "Trending Videos Compilation", plan.Title)
		assert.Equal(t, 60, plan.TargetDuration)
		assert.Len(t, plan.ProcessingSteps, 6)
	})

	t.Run("renders ffmpeg instructions for every selected clip", func(t *testing.T) {
		builder := NewCompilationPlanBuilder(NewHighlightGenerator(fixedReply(compilationHighlightsReply), testLogger()), testLogger())

		plan := builder.Build(context.Background(), compilationCandidates(3))

		require.NotEmpty(t, plan.FFmpegInstructions)
		assert.Contains(t, plan.FFmpegInstructions, "create_compilation(output_file=\"trending_compilation.mp4\", target_duration=60)")
		for _, video := range plan.Videos {
			assert.Contains(t, plan.FFmpegInstructions, "https://www.youtube.com/watch?v="+video.YoutubeID)
			assert.Contains(t, plan.FFmpegInstructions, fmt.Sprintf("From %s", video.Title))
		}
		assert.Contains(t, plan.FFmpegInstructions, `start="00:30"`)
		assert.Contains(t, plan.FFmpegInstructions, `start="01:10"`)
	})

	t.Run("failing candidate is skipped, not fatal", func(t *testing.T) {
		gen := &stubGenerator{fn: func(req textgen.Request) (string, error) {
			if strings.Contains(req.Prompt, "Video 10") {
				return "", fmt.Errorf("connection reset")
			}
			return compilationHighlightsReply, nil
		}}
		builder := NewCompilationPlanBuilder(NewHighlightGenerator(gen, testLogger()), testLogger())

		plan := builder.Build(context.Background(), compilationCandidates(15))

		require.Len(t, plan.Videos, 9)
		for _, video := range plan.Videos {
			assert.NotEqual(t, "Video 10", video.Title)
		}
	})

	t.Run("no candidates yields an empty but complete plan", func(t *testing.T) {
		builder := NewCompilationPlanBuilder(NewHighlightGenerator(fixedReply(compilationHighlightsReply), testLogger()), testLogger())

		plan := builder.Build(context.Background(), nil)

		assert.Empty(t, plan.Videos)
		assert.Equal(t, "Trending Videos Compilation", plan.Title)
	})
}
