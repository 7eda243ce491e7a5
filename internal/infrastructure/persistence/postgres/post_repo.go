package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pulseboard/pulseboard-backend/internal/domain/post"
	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
)

// PostRepository implements post.Repository for PostgreSQL.
type PostRepository struct {
	conn *Connection
}

// NewPostRepository creates a new PostRepository.
func NewPostRepository(conn *Connection) *PostRepository {
	return &PostRepository{conn: conn}
}

const postColumns = `id, author_id, title, content, tags, created_at, updated_at`

// Insert adds a new post.
func (r *PostRepository) Insert(ctx context.Context, p *post.Post) error {
	query := `
		INSERT INTO posts (` + postColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.conn.Exec(ctx, query,
		p.ID,
		p.AuthorID,
		p.Title,
		p.Content,
		p.Tags,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: insert post: %w", err)
	}
	return nil
}

// FindByID returns a post by id, or (nil, nil) when absent.
func (r *PostRepository) FindByID(ctx context.Context, id string) (*post.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	return r.scanPost(r.conn.QueryRow(ctx, query, id))
}

// FindMany returns all posts in insertion order.
func (r *PostRepository) FindMany(ctx context.Context) ([]*post.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at, id`
	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: list posts: %w", err)
	}
	defer rows.Close()

	var posts []*post.Post
	for rows.Next() {
		p, err := r.scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// Update replaces the attributes of an existing post.
func (r *PostRepository) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	query := `
		UPDATE posts
		SET title = $2, content = $3, tags = $4, updated_at = $5
		WHERE id = $1
	`
	tag, err := r.conn.Exec(ctx, query, p.ID, p.Title, p.Content, p.Tags, p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("postgres: update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, shared.NotFound("post", "Update", "post with id %s not found", p.ID)
	}
	return p, nil
}

// Delete removes a post by id. Comments and likes are not cascaded.
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("postgres: delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.NotFound("post", "Delete", "post with id %s not found", id)
	}
	return nil
}

func (r *PostRepository) scanPost(row pgx.Row) (*post.Post, error) {
	var p post.Post
	err := row.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Content, &p.Tags, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: scan post: %w", err)
	}
	return &p, nil
}
