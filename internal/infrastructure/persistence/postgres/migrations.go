package postgres

import (
	"context"
	"fmt"
)

// migrations are applied in order at startup. Idempotent: every statement is
// IF NOT EXISTS.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		display_name  TEXT NOT NULL,
		bio           TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS posts (
		id         UUID PRIMARY KEY,
		author_id  UUID NOT NULL,
		title      TEXT NOT NULL,
		content    TEXT NOT NULL,
		tags       TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_author ON posts (author_id)`,

	`CREATE TABLE IF NOT EXISTS comments (
		id         UUID PRIMARY KEY,
		post_id    UUID NOT NULL,
		author_id  UUID NOT NULL,
		content    TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_post ON comments (post_id)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_author ON comments (author_id)`,

	`CREATE TABLE IF NOT EXISTS likes (
		id          UUID PRIMARY KEY,
		target_id   UUID NOT NULL,
		target_kind TEXT NOT NULL CHECK (target_kind IN ('post', 'comment')),
		author_id   UUID NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL,
		UNIQUE (target_id, author_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_likes_target ON likes (target_id, target_kind)`,

	`CREATE TABLE IF NOT EXISTS follows (
		id           UUID PRIMARY KEY,
		follower_id  UUID NOT NULL,
		following_id UUID NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL,
		UNIQUE (follower_id, following_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_follows_following ON follows (following_id)`,
}

// Migrate applies the schema. No foreign key constraints: referential
// integrity is a use-case concern, dangling references are filtered lazily
// at read time, matching the reference store.
func Migrate(ctx context.Context, conn *Connection) error {
	for i, stmt := range migrations {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("postgres: migration %d: %w", i, err)
		}
	}
	return nil
}
