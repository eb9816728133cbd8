package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/snipfeed/snipfeed/model"
)

type PostgresInfo struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

type Postgres struct {
	db *sql.DB
}

func NewPostgres(info PostgresInfo) (*Postgres, error) {
	db, err := sql.Open("postgres", fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		info.Host, info.Port, info.User, info.Password, info.Database))
	if err != nil {
		return &Postgres{}, err
	}
	if err := db.Ping(); err != nil {
		return &Postgres{}, err
	}

	p := &Postgres{db: db}
	if err := p.migrate(pgMigration); err != nil {
		return &Postgres{}, err
	}

	return p, nil
}

func (p *Postgres) migrate(wanted []string) error {
	query := `CREATE TABLE IF NOT EXISTS migration
("id" SERIAL PRIMARY KEY, "query" TEXT)`
	_, err := p.db.Exec(query)
	if err != nil {
		return err
	}

	// find existing
	rows, err := p.db.Query(`SELECT query FROM migration ORDER BY id`)
	if err != nil {
		return err
	}

	existing := []string{}
	for rows.Next() {
		var query string
		if err := rows.Scan(&query); err != nil {
			return err
		}
		existing = append(existing, query)
	}
	rows.Close()

	// compare
	missing, err := compareMigrations(wanted, existing)
	if err != nil {
		return err
	}

	// execute missing
	for _, query := range missing {
		if _, err := p.db.Exec(query); err != nil {
			return err
		}

		// register
		if _, err := p.db.Exec(`
INSERT INTO migration
(query) VALUES ($1)
`, query); err != nil {
			return err
		}
	}

	return nil
}

func compareMigrations(wanted, existing []string) ([]string, error) {
	needed := []string{}
	if len(wanted) < len(existing) {
		return []string{}, fmt.Errorf("not enough migrations")
	}

	for i, want := range wanted {
		switch {
		case i >= len(existing):
			needed = append(needed, want)
		case want == existing[i]:
			// do nothing
		case want != existing[i]:
			return []string{}, fmt.Errorf("incompatible migration: %v", want)
		}
	}

	return needed, nil
}

type PostgresVideoRepository struct {
	postgres *Postgres
}

func NewPostgresVideoRepository(postgres *Postgres) *PostgresVideoRepository {
	return &PostgresVideoRepository{postgres: postgres}
}

// Upsert inserts the record or refreshes the row already holding its
// youtube ID. The original uuid primary key is kept on refresh.
func (r *PostgresVideoRepository) Upsert(ctx context.Context, video *model.StoredVideo) error {
	_, err := r.postgres.db.ExecContext(ctx, `
INSERT INTO video (id, youtube_id, title, description, thumbnail_url, channel, published_at, youtube_duration, view_count, like_count, summary, preview_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (youtube_id) DO UPDATE SET
title = EXCLUDED.title,
description = EXCLUDED.description,
thumbnail_url = EXCLUDED.thumbnail_url,
channel = EXCLUDED.channel,
published_at = EXCLUDED.published_at,
youtube_duration = EXCLUDED.youtube_duration,
view_count = EXCLUDED.view_count,
like_count = EXCLUDED.like_count,
summary = EXCLUDED.summary,
preview_url = EXCLUDED.preview_url
`,
		video.ID, video.YoutubeID, video.Title, video.Description, video.ThumbnailURL,
		video.Channel, video.PublishedAt, video.Duration, video.ViewCount, video.LikeCount,
		video.Summary, video.PreviewURL)
	if err != nil {
		return fmt.Errorf("failed to upsert video: %w", err)
	}

	return nil
}
