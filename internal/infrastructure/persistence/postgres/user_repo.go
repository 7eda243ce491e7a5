package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
	"github.com/pulseboard/pulseboard-backend/internal/domain/user"
)

// UserRepository implements user.Repository for PostgreSQL.
type UserRepository struct {
	conn *Connection
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(conn *Connection) *UserRepository {
	return &UserRepository{conn: conn}
}

const userColumns = `id, username, password_hash, display_name, bio, created_at, updated_at`

// Insert adds a new user.
func (r *UserRepository) Insert(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.conn.Exec(ctx, query,
		u.ID,
		u.Username.String(),
		u.PasswordHash,
		u.DisplayName,
		u.Bio,
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return shared.NewDomainError("user", "Insert", shared.ErrAlreadyExists, "username already taken")
		}
		return fmt.Errorf("postgres: insert user: %w", err)
	}
	return nil
}

// FindByID returns a user by id, or (nil, nil) when absent.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.conn.QueryRow(ctx, query, id))
}

// FindByUsername returns a user by username, or (nil, nil) when absent.
func (r *UserRepository) FindByUsername(ctx context.Context, username user.Username) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.scanUser(r.conn.QueryRow(ctx, query, username.String()))
}

// FindMany returns all users in insertion order.
func (r *UserRepository) FindMany(ctx context.Context) ([]*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`
	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: list users: %w", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Update replaces the attributes of an existing user.
func (r *UserRepository) Update(ctx context.Context, u *user.User) (*user.User, error) {
	query := `
		UPDATE users
		SET password_hash = $2, display_name = $3, bio = $4, updated_at = $5
		WHERE id = $1
	`
	tag, err := r.conn.Exec(ctx, query, u.ID, u.PasswordHash, u.DisplayName, u.Bio, u.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("postgres: update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, shared.NotFound("user", "Update", "user with id %s not found", u.ID)
	}
	return u, nil
}

// Delete removes a user by id.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("postgres: delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.NotFound("user", "Delete", "user with id %s not found", id)
	}
	return nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*user.User, error) {
	var (
		u        user.User
		username string
	)
	err := row.Scan(&u.ID, &username, &u.PasswordHash, &u.DisplayName, &u.Bio, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: scan user: %w", err)
	}
	u.Username = user.Username(username)
	return &u, nil
}
