package follow

import "context"

// Repository defines the follow storage contract.
type Repository interface {
	// Insert adds a new follow.
	Insert(ctx context.Context, f *Follow) error

	// FindByID returns a follow by id. Absence is (nil, nil), not an error.
	FindByID(ctx context.Context, id string) (*Follow, error)

	// FindMany returns all follows in insertion order.
	FindMany(ctx context.Context) ([]*Follow, error)

	// Update replaces the attributes of an existing follow.
	// Returns shared.ErrNotFound when the follow does not exist.
	Update(ctx context.Context, f *Follow) (*Follow, error)

	// Delete removes a follow by id.
	// Returns shared.ErrNotFound when the follow does not exist.
	Delete(ctx context.Context, id string) error

	// GetByPair returns the follow for an ordered (follower, following)
	// pair, or (nil, nil) when the relationship does not exist.
	GetByPair(ctx context.Context, followerID, followingID string) (*Follow, error)

	// CountFollowers returns how many users follow the given user.
	CountFollowers(ctx context.Context, userID string) (int, error)

	// CountFollowing returns how many users the given user follows.
	CountFollowing(ctx context.Context, userID string) (int, error)
}
