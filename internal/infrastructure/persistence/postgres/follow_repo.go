package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pulseboard/pulseboard-backend/internal/domain/follow"
	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
)

// FollowRepository implements follow.Repository for PostgreSQL.
type FollowRepository struct {
	conn *Connection
}

// NewFollowRepository creates a new FollowRepository.
func NewFollowRepository(conn *Connection) *FollowRepository {
	return &FollowRepository{conn: conn}
}

const followColumns = `id, follower_id, following_id, created_at, updated_at`

// Insert adds a new follow. The (follower_id, following_id) unique index
// backs up the use-case-level invariant.
func (r *FollowRepository) Insert(ctx context.Context, f *follow.Follow) error {
	query := `
		INSERT INTO follows (` + followColumns + `)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.conn.Exec(ctx, query, f.ID, f.FollowerID, f.FollowingID, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return shared.NewDomainError("follow", "Insert", shared.ErrAlreadyExists, "already following this user")
		}
		return fmt.Errorf("postgres: insert follow: %w", err)
	}
	return nil
}

// FindByID returns a follow by id, or (nil, nil) when absent.
func (r *FollowRepository) FindByID(ctx context.Context, id string) (*follow.Follow, error) {
	query := `SELECT ` + followColumns + ` FROM follows WHERE id = $1`
	return r.scanFollow(r.conn.QueryRow(ctx, query, id))
}

// FindMany returns all follows in insertion order.
func (r *FollowRepository) FindMany(ctx context.Context) ([]*follow.Follow, error) {
	query := `SELECT ` + followColumns + ` FROM follows ORDER BY created_at, id`
	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: list follows: %w", err)
	}
	defer rows.Close()

	var follows []*follow.Follow
	for rows.Next() {
		f, err := r.scanFollow(rows)
		if err != nil {
			return nil, err
		}
		follows = append(follows, f)
	}
	return follows, rows.Err()
}

// Update replaces the attributes of an existing follow.
func (r *FollowRepository) Update(ctx context.Context, f *follow.Follow) (*follow.Follow, error) {
	query := `
		UPDATE follows
		SET follower_id = $2, following_id = $3, updated_at = $4
		WHERE id = $1
	`
	tag, err := r.conn.Exec(ctx, query, f.ID, f.FollowerID, f.FollowingID, f.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("postgres: update follow: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, shared.NotFound("follow", "Update", "follow with id %s not found", f.ID)
	}
	return f, nil
}

// Delete removes a follow by id.
func (r *FollowRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM follows WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("postgres: delete follow: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.NotFound("follow", "Delete", "follow with id %s not found", id)
	}
	return nil
}

// GetByPair returns the follow for an ordered (follower, following) pair, or
// (nil, nil).
func (r *FollowRepository) GetByPair(ctx context.Context, followerID, followingID string) (*follow.Follow, error) {
	query := `SELECT ` + followColumns + ` FROM follows WHERE follower_id = $1 AND following_id = $2`
	return r.scanFollow(r.conn.QueryRow(ctx, query, followerID, followingID))
}

// CountFollowers returns how many users follow the given user.
func (r *FollowRepository) CountFollowers(ctx context.Context, userID string) (int, error) {
	return r.countWhere(ctx, `following_id`, userID)
}

// CountFollowing returns how many users the given user follows.
func (r *FollowRepository) CountFollowing(ctx context.Context, userID string) (int, error) {
	return r.countWhere(ctx, `follower_id`, userID)
}

func (r *FollowRepository) countWhere(ctx context.Context, column, userID string) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM follows WHERE ` + column + ` = $1`
	if err := r.conn.QueryRow(ctx, query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("postgres: count follows: %w", err)
	}
	return n, nil
}

func (r *FollowRepository) scanFollow(row pgx.Row) (*follow.Follow, error) {
	var f follow.Follow
	err := row.Scan(&f.ID, &f.FollowerID, &f.FollowingID, &f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: scan follow: %w", err)
	}
	return &f, nil
}
