// Package summarize holds the request orchestration core: it resolves a
// video URL, gathers metadata, derives AI highlights and a summary, builds
// processing plans and assembles the response envelope.
package summarize

import (
	"context"

	"github.com/snipfeed/snipfeed/model"
	"github.com/snipfeed/snipfeed/youtube"
)

// MetadataProvider is what the core needs from the video metadata service.
type MetadataProvider interface {
	FetchByID(ctx context.Context, id string) (model.VideoMetadata, error)
	Search(ctx context.Context, query string, opts youtube.SearchOptions) ([]model.VideoSummary, error)
}

// VideoStore persists processed videos, upserting on the provider video ID.
type VideoStore interface {
	Upsert(ctx context.Context, video *model.StoredVideo) error
}
