package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pulseboard/pulseboard-backend/internal/domain/comment"
	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
)

// CommentRepository implements comment.Repository for PostgreSQL.
type CommentRepository struct {
	conn *Connection
}

// NewCommentRepository creates a new CommentRepository.
func NewCommentRepository(conn *Connection) *CommentRepository {
	return &CommentRepository{conn: conn}
}

const commentColumns = `id, post_id, author_id, content, created_at, updated_at`

// Insert adds a new comment.
func (r *CommentRepository) Insert(ctx context.Context, c *comment.Comment) error {
	query := `
		INSERT INTO comments (` + commentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.conn.Exec(ctx, query, c.ID, c.PostID, c.AuthorID, c.Content, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("postgres: insert comment: %w", err)
	}
	return nil
}

// FindByID returns a comment by id, or (nil, nil) when absent.
func (r *CommentRepository) FindByID(ctx context.Context, id string) (*comment.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`
	return r.scanComment(r.conn.QueryRow(ctx, query, id))
}

// FindMany returns all comments in insertion order.
func (r *CommentRepository) FindMany(ctx context.Context) ([]*comment.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments ORDER BY created_at, id`
	return r.list(ctx, query)
}

// FindByPostID returns all comments of a post in insertion order.
func (r *CommentRepository) FindByPostID(ctx context.Context, postID string) ([]*comment.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE post_id = $1 ORDER BY created_at, id`
	return r.list(ctx, query, postID)
}

// Update replaces the attributes of an existing comment.
func (r *CommentRepository) Update(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	query := `
		UPDATE comments
		SET content = $2, updated_at = $3
		WHERE id = $1
	`
	tag, err := r.conn.Exec(ctx, query, c.ID, c.Content, c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("postgres: update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, shared.NotFound("comment", "Update", "comment with id %s not found", c.ID)
	}
	return c, nil
}

// Delete removes a comment by id.
func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("postgres: delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.NotFound("comment", "Delete", "comment with id %s not found", id)
	}
	return nil
}

func (r *CommentRepository) list(ctx context.Context, query string, args ...any) ([]*comment.Comment, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: list comments: %w", err)
	}
	defer rows.Close()

	var comments []*comment.Comment
	for rows.Next() {
		c, err := r.scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) scanComment(row pgx.Row) (*comment.Comment, error) {
	var c comment.Comment
	err := row.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: scan comment: %w", err)
	}
	return &c, nil
}
