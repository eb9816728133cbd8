package model

import "github.com/google/uuid"

// VideoMetadata is a snapshot of a single video's attributes as reported by
// the metadata provider. It is fetched fresh per request and never cached
// here; the durable store keeps its own copy.
type VideoMetadata struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Channel      string `json:"channel"`
	PublishedAt  string `json:"publishedAt"`
	Duration     string `json:"duration"`
	ViewCount    uint64 `json:"viewCount"`
	LikeCount    uint64 `json:"likeCount"`
}

// VideoSummary is the trimmed-down shape returned for discovery results. The
// snake_case tags match what the feed client consumes.
type VideoSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
	Channel      string `json:"channel"`
	PublishedAt  string `json:"published_at"`
	ViewCount    uint64 `json:"view_count"`
	LikeCount    uint64 `json:"like_count"`
	YoutubeID    string `json:"youtube_id"`
}

// InterestProfile is an ordered list of topic strings inferred for a user.
// It only ever feeds a discovery query and is not persisted.
type InterestProfile []string

// StoredVideo is the durable record for a processed video, keyed naturally
// by the provider-assigned youtube ID.
type StoredVideo struct {
	ID           uuid.UUID
	YoutubeID    string
	Title        string
	Description  string
	ThumbnailURL string
	Channel      string
	PublishedAt  string
	Duration     string
	ViewCount    uint64
	LikeCount    uint64
	Summary      string
	PreviewURL   string
}
