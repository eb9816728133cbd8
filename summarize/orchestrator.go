package summarize

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"github.com/snipfeed/snipfeed/config"
	"github.com/snipfeed/snipfeed/errors"
	"github.com/snipfeed/snipfeed/model"
	"github.com/snipfeed/snipfeed/textgen"
	"github.com/snipfeed/snipfeed/youtube"
)

const trendingBaseQuery = "shorts"

var trendingSearchOptions = youtube.SearchOptions{
	MaxResults: 30,
	Duration:   "short",
	Order:      "viewCount",
}

// Request is the single inbound shape. All fields are optional: without a
// URL only discovery runs, and the compilation is built only on demand.
type Request struct {
	YoutubeURL          string `json:"youtubeUrl"`
	UserEmail           string `json:"userEmail"`
	GenerateCompilation bool   `json:"generateCompilation"`
}

// Response is the aggregate success envelope. The single-video fields stay
// null on the discovery-only path.
type Response struct {
	Success                 bool                       `json:"success"`
	VideoID                 *string                    `json:"videoId"`
	VideoDetails            *model.VideoMetadata       `json:"videoDetails"`
	Summary                 *string                    `json:"summary"`
	Timestamps              []model.HighlightTimestamp `json:"timestamps"`
	ProcessingInstructions  *model.ProcessingPlan      `json:"processingInstructions"`
	TrendingVideos          []model.VideoSummary       `json:"trendingVideos"`
	CompilationInstructions *model.CompilationPlan     `json:"compilationInstructions"`
}

// Orchestrator sequences the processing pipeline for one request and owns
// the split between required-path and best-effort operations.
type Orchestrator struct {
	cfg        config.Config
	metadata   MetadataProvider
	interests  *InterestInferer
	highlights *HighlightGenerator
	compiler   *CompilationPlanBuilder
	store      VideoStore
	logger     *slog.Logger
}

func NewOrchestrator(cfg config.Config, metadata MetadataProvider, gen textgen.Generator, store VideoStore, logger *slog.Logger) *Orchestrator {
	highlights := NewHighlightGenerator(gen, logger)
	return &Orchestrator{
		cfg:        cfg,
		metadata:   metadata,
		interests:  NewInterestInferer(gen, logger),
		highlights: highlights,
		compiler:   NewCompilationPlanBuilder(highlights, logger),
		store:      store,
		logger:     logger,
	}
}

// Process runs the full pipeline. Any returned error belongs to the required
// path and maps to the failure envelope at the HTTP boundary; best-effort
// branches degrade internally and never surface here.
func (o *Orchestrator) Process(ctx context.Context, req Request) (Response, error) {
	if err := o.cfg.ValidateKeys(); err != nil {
		return Response{}, err
	}

	resp := Response{
		Success:        true,
		TrendingVideos: []model.VideoSummary{},
	}

	if req.YoutubeURL != "" {
		videoID, ok := youtube.ExtractVideoID(req.YoutubeURL)
		if !ok {
			return Response{}, errors.New(errors.CodeInvalidInput, "invalid youtube url")
		}

		md, err := o.metadata.FetchByID(ctx, videoID)
		if err != nil {
			return Response{}, err
		}

		// summary and highlights both depend only on the metadata; the
		// summary error stays fatal, highlights degrade on their own
		var summary string
		var highlights []model.HighlightTimestamp
		group, groupCtx := errgroup.WithContext(ctx)
		group.Go(func() error {
			var sumErr error
			summary, sumErr = o.highlights.Summarize(groupCtx, md)
			return sumErr
		})
		group.Go(func() error {
			highlights = o.highlights.ExtractHighlights(groupCtx, md)
			return nil
		})
		if err := group.Wait(); err != nil {
			return Response{}, err
		}

		plan := BuildProcessingPlan(videoID, md, highlights)
		o.storeVideo(ctx, md, summary)

		resp.VideoID = &videoID
		resp.VideoDetails = &md
		resp.Summary = &summary
		resp.Timestamps = highlights
		resp.ProcessingInstructions = &plan
	}

	query := trendingBaseQuery
	if req.UserEmail != "" {
		interests := o.interests.Infer(ctx, req.UserEmail)
		query = trendingBaseQuery + " " + interests[0]
	}
	resp.TrendingVideos = bestEffort(o.logger, "trending search", []model.VideoSummary{}, func() ([]model.VideoSummary, error) {
		return o.metadata.Search(ctx, query, trendingSearchOptions)
	})

	if req.GenerateCompilation {
		plan := o.compiler.Build(ctx, resp.TrendingVideos)
		resp.CompilationInstructions = &plan
	}

	return resp, nil
}

// storeVideo refreshes the durable record after a fully successful
// single-video run. The store is a cache, so failures only get logged.
func (o *Orchestrator) storeVideo(ctx context.Context, md model.VideoMetadata, summary string) {
	record := &model.StoredVideo{
		ID:           uuid.New(),
		YoutubeID:    md.ID,
		Title:        md.Title,
		Description:  md.Description,
		ThumbnailURL: md.ThumbnailURL,
		Channel:      md.Channel,
		PublishedAt:  md.PublishedAt,
		Duration:     md.Duration,
		ViewCount:    md.ViewCount,
		LikeCount:    md.LikeCount,
		Summary:      summary,
	}
	if err := o.store.Upsert(ctx, record); err != nil {
		o.logger.Error("failed to store processed video", err, slog.String("youtube_id", md.ID))
	}
}
