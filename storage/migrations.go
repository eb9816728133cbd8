package storage

var pgMigration = []string{
	`CREATE TABLE video (
id uuid PRIMARY KEY,
youtube_id VARCHAR(255) NOT NULL UNIQUE,
title VARCHAR(511) NOT NULL DEFAULT '',
description TEXT NOT NULL DEFAULT '',
thumbnail_url VARCHAR(511) NOT NULL DEFAULT '',
channel VARCHAR(255) NOT NULL DEFAULT '',
published_at VARCHAR(255) NOT NULL DEFAULT '',
youtube_duration VARCHAR(255) NOT NULL DEFAULT '',
view_count BIGINT NOT NULL DEFAULT 0,
like_count BIGINT NOT NULL DEFAULT 0,
summary TEXT NOT NULL DEFAULT '',
preview_url VARCHAR(511) NOT NULL DEFAULT ''
)`,
}
