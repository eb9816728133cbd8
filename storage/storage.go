package storage

import (
	"context"

	"github.com/snipfeed/snipfeed/model"
)

// VideoRepository persists processed videos. Records are created or
// refreshed by upsert on the youtube ID and never deleted.
type VideoRepository interface {
	Upsert(ctx context.Context, video *model.StoredVideo) error
}
