package memory

import (
	"context"

	"github.com/pulseboard/pulseboard-backend/internal/domain/follow"
)

// FollowRepository implements follow.Repository in memory.
type FollowRepository struct {
	*Store[*follow.Follow]
}

// NewFollowRepository creates an empty in-memory follow repository.
func NewFollowRepository() *FollowRepository {
	return &FollowRepository{Store: NewStore[*follow.Follow]("follow")}
}

// GetByPair returns the follow for an ordered (follower, following) pair, or
// (nil, nil).
func (r *FollowRepository) GetByPair(_ context.Context, followerID, followingID string) (*follow.Follow, error) {
	return r.first(func(f *follow.Follow) bool {
		return f.FollowerID == followerID && f.FollowingID == followingID
	}), nil
}

// CountFollowers returns how many users follow the given user.
func (r *FollowRepository) CountFollowers(_ context.Context, userID string) (int, error) {
	return r.count(func(f *follow.Follow) bool { return f.FollowingID == userID }), nil
}

// CountFollowing returns how many users the given user follows.
func (r *FollowRepository) CountFollowing(_ context.Context, userID string) (int, error) {
	return r.count(func(f *follow.Follow) bool { return f.FollowerID == userID }), nil
}
