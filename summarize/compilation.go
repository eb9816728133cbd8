package summarize

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/slog"

	"github.com/snipfeed/snipfeed/model"
)

const (
	compilationTitle        = "Trending Videos Compilation"
	compilationTargetSecs   = 60
	maxCompilationVideos    = 10
	maxHighlightsPerVideo   = 2
	compilationDurationHint = "PT5M" // placeholder, search results carry no duration
)

var compilationSteps = []string{
	"Extract the specified segments from each YouTube video",
	"Add a short intro voice clip before each video segment",
	"Apply caption generation to all segments",
	"Speed up segments to fit within the target duration",
	"Add transitions between segments",
	"Add background music (optional)",
}

// CompilationPlanBuilder assembles a multi-video edit plan from ranked
// discovery candidates.
type CompilationPlanBuilder struct {
	highlights *HighlightGenerator
	logger     *slog.Logger
}

func NewCompilationPlanBuilder(highlights *HighlightGenerator, logger *slog.Logger) *CompilationPlanBuilder {
	return &CompilationPlanBuilder{
		highlights: highlights,
		logger:     logger,
	}
}

// Build takes the top candidates by view count and collects up to two
// highlights for each. Candidates without any usable highlight are skipped;
// the build itself never fails.
func (b *CompilationPlanBuilder) Build(ctx context.Context, candidates []model.VideoSummary) model.CompilationPlan {
	ranked := make([]model.VideoSummary, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ViewCount > ranked[j].ViewCount
	})
	if len(ranked) > maxCompilationVideos {
		ranked = ranked[:maxCompilationVideos]
	}

	videos := make([]model.CompilationEntry, 0, len(ranked))
	for _, candidate := range ranked {
		md := model.VideoMetadata{
			ID:           candidate.ID,
			Title:        candidate.Title,
			Description:  candidate.Description,
			ThumbnailURL: candidate.ThumbnailURL,
			Channel:      candidate.Channel,
			Duration:     compilationDurationHint,
			ViewCount:    candidate.ViewCount,
			LikeCount:    candidate.LikeCount,
		}
		highlights := b.highlights.ExtractHighlights(ctx, md)
		if len(highlights) == 0 {
			b.logger.Info("skipping compilation candidate without highlights", slog.String("video", candidate.ID))
			continue
		}
		if len(highlights) > maxHighlightsPerVideo {
			highlights = highlights[:maxHighlightsPerVideo]
		}
		videos = append(videos, model.CompilationEntry{
			YoutubeID:  candidate.ID,
			Title:      candidate.Title,
			Channel:    candidate.Channel,
			Timestamps: highlights,
		})
	}

	plan := model.CompilationPlan{
		Title:           compilationTitle,
		Videos:          videos,
		TargetDuration:  compilationTargetSecs,
		ProcessingSteps: compilationSteps,
	}
	plan.FFmpegInstructions = compilationScript(plan)

	return plan
}

// compilationScript renders the pseudo-code a real FFmpeg-backed pipeline
// would run to stitch the compilation. Descriptive output only, like the
// single-video processing script.
func compilationScript(plan model.CompilationPlan) string {
	var b strings.Builder
	b.WriteString("# Pseudo-code for the compilation pipeline, for reference only\n\n")
	b.WriteString("import subprocess\nfrom moviepy.editor import *\nfrom gtts import gTTS\n\n")
	fmt.Fprintf(&b, "def create_compilation(output_file=\"trending_compilation.mp4\", target_duration=%d):\n", plan.TargetDuration)
	b.WriteString("    clips = []\n")
	for _, video := range plan.Videos {
		fmt.Fprintf(&b, "    # %s (%s)\n", video.Title, video.Channel)
		fmt.Fprintf(&b, "    intro = gTTS(text=\"From %s\", lang=\"en\")\n", video.Title)
		for _, ts := range video.Timestamps {
			fmt.Fprintf(&b, "    clips.append(download_clip(\"https://www.youtube.com/watch?v=%s\", start=%q, caption=%q))\n",
				video.YoutubeID, ts.Time, ts.Description)
		}
	}
	b.WriteString("    final = concatenate_videoclips(clips, method=\"compose\")\n")
	b.WriteString("    if final.duration > target_duration:\n")
	b.WriteString("        final = final.speedx(final.duration / target_duration)\n")
	b.WriteString("    final.write_videofile(output_file, codec=\"libx264\")\n")
	b.WriteString("\ncreate_compilation()\n")

	return b.String()
}
