// Package youtube wraps the YouTube Data API as the metadata provider for
// the summarize core.
package youtube

import (
	"context"
	"strings"

	yt "google.golang.org/api/youtube/v3"

	"github.com/snipfeed/snipfeed/errors"
	"github.com/snipfeed/snipfeed/model"
)

var videoParts = []string{"snippet", "contentDetails", "statistics"}

// SearchOptions control the discovery query. Duration and Order take the
// values the Data API accepts ("short", "viewCount", ...).
type SearchOptions struct {
	MaxResults int64
	Duration   string
	Order      string
}

type Service struct {
	client *yt.Service
}

func NewService(client *yt.Service) *Service {
	return &Service{client: client}
}

// FetchByID returns the metadata snapshot for one video. A valid ID unknown
// to the provider is UPSTREAM_NOT_FOUND; transport and API failures are
// UPSTREAM_ERROR.
func (s *Service) FetchByID(ctx context.Context, id string) (model.VideoMetadata, error) {
	resp, err := s.client.Videos.
		List(videoParts).
		Id(id).
		Context(ctx).
		Do()
	if err != nil {
		return model.VideoMetadata{}, errors.Wrap(err, errors.CodeUpstream, "failed to fetch video details")
	}
	if len(resp.Items) == 0 {
		return model.VideoMetadata{}, errors.New(errors.CodeUpstreamNotFound, "video not found")
	}

	return metadataFromItem(resp.Items[0]), nil
}

// Search runs the two-step discovery protocol: a keyword search that yields
// IDs only, then one batched lookup to hydrate snippet, statistics and
// content details. A failure in either step fails the whole operation.
func (s *Service) Search(ctx context.Context, query string, opts SearchOptions) ([]model.VideoSummary, error) {
	found, err := s.client.Search.
		List([]string{"snippet"}).
		Q(query).
		Type("video").
		VideoDuration(opts.Duration).
		Order(opts.Order).
		MaxResults(opts.MaxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstream, "video search failed")
	}

	ids := make([]string, 0, len(found.Items))
	for _, item := range found.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		ids = append(ids, item.Id.VideoId)
	}
	if len(ids) == 0 {
		return nil, errors.New(errors.CodeUpstream, "search returned no videos")
	}

	details, err := s.client.Videos.
		List(videoParts).
		Id(strings.Join(ids, ",")).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstream, "failed to hydrate search results")
	}

	summaries := make([]model.VideoSummary, 0, len(details.Items))
	for _, item := range details.Items {
		md := metadataFromItem(item)
		summaries = append(summaries, model.VideoSummary{
			ID:           md.ID,
			Title:        md.Title,
			Description:  md.Description,
			ThumbnailURL: md.ThumbnailURL,
			Channel:      md.Channel,
			PublishedAt:  md.PublishedAt,
			ViewCount:    md.ViewCount,
			LikeCount:    md.LikeCount,
			YoutubeID:    md.ID,
		})
	}

	return summaries, nil
}

func metadataFromItem(item *yt.Video) model.VideoMetadata {
	md := model.VideoMetadata{ID: item.Id}
	if item.Snippet != nil {
		md.Title = item.Snippet.Title
		md.Description = item.Snippet.Description
		md.Channel = item.Snippet.ChannelTitle
		md.PublishedAt = item.Snippet.PublishedAt
		md.ThumbnailURL = thumbnailURL(item.Snippet.Thumbnails)
	}
	if item.ContentDetails != nil {
		md.Duration = item.ContentDetails.Duration
	}
	if item.Statistics != nil {
		md.ViewCount = item.Statistics.ViewCount
		md.LikeCount = item.Statistics.LikeCount
	}

	return md
}

func thumbnailURL(thumbs *yt.ThumbnailDetails) string {
	if thumbs == nil {
		return ""
	}
	if thumbs.High != nil {
		return thumbs.High.Url
	}
	if thumbs.Default != nil {
		return thumbs.Default.Url
	}
	return ""
}
