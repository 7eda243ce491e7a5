// Package follow contains the follow relationship between two users.
// Invariants: no self-follow, at most one follow per ordered pair. The pair
// uniqueness is enforced by the use case layer, not the store.
package follow

import (
	"errors"
	"time"

	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
)

// Validation errors.
var (
	ErrFollowerRequired  = errors.New("follow: follower id is required")
	ErrFollowingRequired = errors.New("follow: following id is required")
	ErrSelfFollow        = errors.New("follow: cannot follow self")
)

// Follow is a directed relationship: follower → following.
type Follow struct {
	shared.Entity

	// FollowerID is the user who follows.
	FollowerID string

	// FollowingID is the user being followed.
	FollowingID string
}

// New creates a follow, validating the pair.
func New(followerID, followingID string) (*Follow, error) {
	if followerID == "" {
		return nil, ErrFollowerRequired
	}
	if followingID == "" {
		return nil, ErrFollowingRequired
	}
	if followerID == followingID {
		return nil, ErrSelfFollow
	}
	return &Follow{
		Entity:      shared.NewEntity(),
		FollowerID:  followerID,
		FollowingID: followingID,
	}, nil
}

// View is the plain serializable snapshot of a follow.
type View struct {
	ID          string    `json:"id"`
	FollowerID  string    `json:"followerId"`
	FollowingID string    `json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToView returns a snapshot of the follow's current attributes.
func (f *Follow) ToView() View {
	return View{
		ID:          f.ID,
		FollowerID:  f.FollowerID,
		FollowingID: f.FollowingID,
		CreatedAt:   f.CreatedAt,
	}
}
