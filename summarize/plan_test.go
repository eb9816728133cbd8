package summarize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipfeed/snipfeed/model"
)

func TestBuildProcessingPlan(t *testing.T) {
	t.Run("highlights map one to one onto segments", func(t *testing.T) {
		highlights := []model.HighlightTimestamp{
			{Time: "00:45", Description: "Introduction", Reason: "context"},
			{Time: "02:13", Description: "Demonstration", Reason: "core"},
			{Time: "04:01", Description: "Results", Reason: "payoff"},
		}

		plan := BuildProcessingPlan("dQw4w9WgXcQ", testMetadata, highlights)

		require.Len(t, plan.Segments, 3)
		for i, seg := range plan.Segments {
			assert.Equal(t, highlights[i].Time, seg.StartTime)
			assert.Equal(t, highlights[i].Description, seg.Description)
			assert.Equal(t, "00:00:12", seg.Duration)
		}
		assert.Equal(t, "dQw4w9WgXcQ", plan.VideoID)
		assert.Equal(t, "T", plan.VideoTitle)
		assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", plan.VideoURL)
		assert.Equal(t, "mp4", plan.OutputFormat)
		assert.Equal(t, 1.25, plan.ClipSpeed)
		assert.True(t, plan.AddCaptions)
		assert.Len(t, plan.ProcessingSteps, 6)
		assert.Contains(t, plan.ProcessingCode, "dQw4w9WgXcQ")
	})

	t.Run("empty highlights get the default skeleton", func(t *testing.T) {
		plan := BuildProcessingPlan("dQw4w9WgXcQ", testMetadata, nil)

		require.Len(t, plan.Segments, 5)
		assert.Equal(t, "00:00:30", plan.Segments[0].StartTime)
		assert.Equal(t, "Intro segment", plan.Segments[0].Description)
		assert.Equal(t, "Conclusion", plan.Segments[4].Description)
		for _, seg := range plan.Segments {
			assert.Equal(t, "00:00:12", seg.Duration)
		}
	})
}
