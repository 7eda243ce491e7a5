package memory

import (
	"context"

	"github.com/pulseboard/pulseboard-backend/internal/domain/user"
)

// UserRepository implements user.Repository in memory.
type UserRepository struct {
	*Store[*user.User]
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{Store: NewStore[*user.User]("user")}
}

// FindByUsername returns the user with a matching username, or (nil, nil).
func (r *UserRepository) FindByUsername(_ context.Context, username user.Username) (*user.User, error) {
	return r.first(func(u *user.User) bool { return u.Username == username }), nil
}
