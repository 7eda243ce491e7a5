package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/pulseboard/pulseboard-backend/internal/domain/follow"
	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
	"github.com/pulseboard/pulseboard-backend/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// FOLLOW / UNFOLLOW COMMANDS
// Invariants: no self-follow, at most one follow per ordered pair.
// ══════════════════════════════════════════════════════════════════════════════

// FollowCommand creates a follower → following relationship.
type FollowCommand struct {
	FollowerID  string
	FollowingID string
}

// FollowHandler handles FollowCommand.
type FollowHandler struct {
	followRepo follow.Repository
	userRepo   user.Repository
	events     shared.EventPublisher
}

// NewFollowHandler creates a new FollowHandler.
func NewFollowHandler(followRepo follow.Repository, userRepo user.Repository, events shared.EventPublisher) *FollowHandler {
	return &FollowHandler{followRepo: followRepo, userRepo: userRepo, events: events}
}

// Handle creates the relationship after resolving both users and checking
// pair uniqueness.
func (h *FollowHandler) Handle(ctx context.Context, cmd FollowCommand) (*follow.View, error) {
	f, err := follow.New(cmd.FollowerID, cmd.FollowingID)
	if err != nil {
		if errors.Is(err, follow.ErrSelfFollow) {
			return nil, shared.NewDomainError("follow", "Follow", shared.ErrInvalidInput, "cannot follow yourself")
		}
		return nil, shared.WrapError("follow", "Follow", shared.ErrInvalidInput, "invalid follow", err)
	}

	for _, id := range []string{cmd.FollowerID, cmd.FollowingID} {
		u, err := h.userRepo.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("follow: fetch user: %w", err)
		}
		if u == nil {
			return nil, shared.NotFound("follow", "Follow", "user with id %s not found", id)
		}
	}

	existing, err := h.followRepo.GetByPair(ctx, cmd.FollowerID, cmd.FollowingID)
	if err != nil {
		return nil, fmt.Errorf("follow: check existing: %w", err)
	}
	if existing != nil {
		return nil, shared.NewDomainError("follow", "Follow", shared.ErrAlreadyExists, "already following this user")
	}

	if err := h.followRepo.Insert(ctx, f); err != nil {
		return nil, fmt.Errorf("follow: insert: %w", err)
	}

	_ = h.events.Publish(ctx, shared.FollowCreatedEvent{
		BaseEvent:   shared.NewBaseEvent(shared.EventFollowCreated, f.ID),
		FollowerID:  f.FollowerID,
		FollowingID: f.FollowingID,
	})

	v := f.ToView()
	return &v, nil
}

// UnfollowCommand removes the relationship for an ordered pair.
type UnfollowCommand struct {
	FollowerID  string
	FollowingID string
}

// UnfollowHandler handles UnfollowCommand.
type UnfollowHandler struct {
	followRepo follow.Repository
}

// NewUnfollowHandler creates a new UnfollowHandler.
func NewUnfollowHandler(followRepo follow.Repository) *UnfollowHandler {
	return &UnfollowHandler{followRepo: followRepo}
}

// Handle removes the relationship. The caller can only unfollow on their own
// behalf, so the pair lookup doubles as the ownership check.
func (h *UnfollowHandler) Handle(ctx context.Context, cmd UnfollowCommand) error {
	f, err := h.followRepo.GetByPair(ctx, cmd.FollowerID, cmd.FollowingID)
	if err != nil {
		return fmt.Errorf("unfollow: fetch follow: %w", err)
	}
	if f == nil {
		return shared.NotFound("follow", "Unfollow", "follow of user %s not found", cmd.FollowingID)
	}

	if err := h.followRepo.Delete(ctx, f.ID); err != nil {
		return fmt.Errorf("unfollow: delete: %w", err)
	}
	return nil
}
