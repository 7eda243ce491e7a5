package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pulseboard/pulseboard-backend/internal/domain/like"
	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
)

// LikeRepository implements like.Repository for PostgreSQL.
type LikeRepository struct {
	conn *Connection
}

// NewLikeRepository creates a new LikeRepository.
func NewLikeRepository(conn *Connection) *LikeRepository {
	return &LikeRepository{conn: conn}
}

const likeColumns = `id, target_id, target_kind, author_id, created_at, updated_at`

// Insert adds a new like. The (target_id, author_id) unique index backs up
// the use-case-level invariant.
func (r *LikeRepository) Insert(ctx context.Context, l *like.Like) error {
	query := `
		INSERT INTO likes (` + likeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.conn.Exec(ctx, query, l.ID, l.TargetID, string(l.TargetKind), l.AuthorID, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return shared.NewDomainError("like", "Insert", shared.ErrAlreadyExists, "target already liked")
		}
		return fmt.Errorf("postgres: insert like: %w", err)
	}
	return nil
}

// FindByID returns a like by id, or (nil, nil) when absent.
func (r *LikeRepository) FindByID(ctx context.Context, id string) (*like.Like, error) {
	query := `SELECT ` + likeColumns + ` FROM likes WHERE id = $1`
	return r.scanLike(r.conn.QueryRow(ctx, query, id))
}

// FindMany returns all likes in insertion order.
func (r *LikeRepository) FindMany(ctx context.Context) ([]*like.Like, error) {
	query := `SELECT ` + likeColumns + ` FROM likes ORDER BY created_at, id`
	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: list likes: %w", err)
	}
	defer rows.Close()

	var likes []*like.Like
	for rows.Next() {
		l, err := r.scanLike(rows)
		if err != nil {
			return nil, err
		}
		likes = append(likes, l)
	}
	return likes, rows.Err()
}

// Update replaces the attributes of an existing like.
func (r *LikeRepository) Update(ctx context.Context, l *like.Like) (*like.Like, error) {
	query := `
		UPDATE likes
		SET target_id = $2, target_kind = $3, author_id = $4, updated_at = $5
		WHERE id = $1
	`
	tag, err := r.conn.Exec(ctx, query, l.ID, l.TargetID, string(l.TargetKind), l.AuthorID, l.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("postgres: update like: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, shared.NotFound("like", "Update", "like with id %s not found", l.ID)
	}
	return l, nil
}

// Delete removes a like by id.
func (r *LikeRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM likes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("postgres: delete like: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.NotFound("like", "Delete", "like with id %s not found", id)
	}
	return nil
}

// CountByPost returns the number of likes on a post.
func (r *LikeRepository) CountByPost(ctx context.Context, postID string) (int, error) {
	return r.countByTarget(ctx, postID, like.TargetPost)
}

// CountByComment returns the number of likes on a comment.
func (r *LikeRepository) CountByComment(ctx context.Context, commentID string) (int, error) {
	return r.countByTarget(ctx, commentID, like.TargetComment)
}

func (r *LikeRepository) countByTarget(ctx context.Context, targetID string, kind like.TargetKind) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM likes WHERE target_id = $1 AND target_kind = $2`
	if err := r.conn.QueryRow(ctx, query, targetID, string(kind)).Scan(&n); err != nil {
		return 0, fmt.Errorf("postgres: count likes: %w", err)
	}
	return n, nil
}

// GetByCommentAndAuthor returns the like a user placed on a comment, or
// (nil, nil).
func (r *LikeRepository) GetByCommentAndAuthor(ctx context.Context, commentID, authorID string) (*like.Like, error) {
	query := `SELECT ` + likeColumns + ` FROM likes WHERE target_id = $1 AND target_kind = $2 AND author_id = $3`
	return r.scanLike(r.conn.QueryRow(ctx, query, commentID, string(like.TargetComment), authorID))
}

// GetByTargetAndAuthor returns the like a user placed on any target, or
// (nil, nil).
func (r *LikeRepository) GetByTargetAndAuthor(ctx context.Context, targetID, authorID string) (*like.Like, error) {
	query := `SELECT ` + likeColumns + ` FROM likes WHERE target_id = $1 AND author_id = $2`
	return r.scanLike(r.conn.QueryRow(ctx, query, targetID, authorID))
}

func (r *LikeRepository) scanLike(row pgx.Row) (*like.Like, error) {
	var (
		l    like.Like
		kind string
	)
	err := row.Scan(&l.ID, &l.TargetID, &kind, &l.AuthorID, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: scan like: %w", err)
	}
	l.TargetKind = like.TargetKind(kind)
	return &l, nil
}
