package summarize

import (
	"fmt"
	"strings"

	"github.com/snipfeed/snipfeed/model"
)

// Every segment is cut at a fixed nominal length; start times are taken as
// given and never validated against the video's real duration.
const segmentDuration = "00:00:12"

// Fallback skeleton used when no highlights could be derived, so a plan is
// always structurally complete.
var defaultSegments = []model.Segment{
	{StartTime: "00:00:30", Duration: segmentDuration, Description: "Intro segment"},
	{StartTime: "00:01:45", Duration: segmentDuration, Description: "Key point 1"},
	{StartTime: "00:03:20", Duration: segmentDuration, Description: "Key point 2"},
	{StartTime: "00:04:10", Duration: segmentDuration, Description: "Key point 3"},
	{StartTime: "00:05:30", Duration: segmentDuration, Description: "Conclusion"},
}

var processingSteps = []string{
	"Extract the specified segments from the YouTube video",
	"Apply caption generation to each segment",
	"Merge the segments into a coherent preview",
	"Speed up the final video to 1.25x",
	"Add an AI-generated intro voiceover",
	"Apply engagement-optimized transitions between segments",
}

// BuildProcessingPlan turns a video's highlights into a declarative edit
// plan for the simulated downstream pipeline. Pure, no I/O.
func BuildProcessingPlan(videoID string, md model.VideoMetadata, highlights []model.HighlightTimestamp) model.ProcessingPlan {
	segments := make([]model.Segment, 0, len(highlights))
	for _, h := range highlights {
		segments = append(segments, model.Segment{
			StartTime:   h.Time,
			Duration:    segmentDuration,
			Description: h.Description,
		})
	}
	if len(segments) == 0 {
		segments = append(segments, defaultSegments...)
	}

	plan := model.ProcessingPlan{
		VideoID:         videoID,
		VideoTitle:      md.Title,
		VideoURL:        "https://www.youtube.com/watch?v=" + videoID,
		OutputFormat:    "mp4",
		ClipSpeed:       1.25,
		AddCaptions:     true,
		Segments:        segments,
		ProcessingSteps: processingSteps,
	}
	plan.ProcessingCode = processingScript(videoID, plan)

	return plan
}

// processingScript renders the pseudo-code a real FFmpeg-backed pipeline
// would run. It is descriptive output only and is never executed.
func processingScript(videoID string, plan model.ProcessingPlan) string {
	var b strings.Builder
	b.WriteString("# Pseudo-code for the preview pipeline, for reference only\n\n")
	b.WriteString("import subprocess\nfrom moviepy.editor import *\n\n")
	fmt.Fprintf(&b, "def build_preview(url=%q, speed=%.2f):\n", plan.VideoURL, plan.ClipSpeed)
	b.WriteString("    clips = []\n")
	for i, seg := range plan.Segments {
		fmt.Fprintf(&b, "    # %s\n", seg.Description)
		fmt.Fprintf(&b, "    clips.append(download_segment(url, start=%q, duration=%q, out=\"segment_%d.mp4\"))\n",
			seg.StartTime, seg.Duration, i+1)
	}
	b.WriteString("    final = concatenate_videoclips(clips).speedx(speed)\n")
	fmt.Fprintf(&b, "    final.write_videofile(\"final_video_%s.mp4\", codec=\"libx264\")\n", videoID)
	b.WriteString("\nbuild_preview()\n")

	return b.String()
}
