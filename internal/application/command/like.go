package command

import (
	"context"
	"fmt"

	"github.com/pulseboard/pulseboard-backend/internal/domain/comment"
	"github.com/pulseboard/pulseboard-backend/internal/domain/like"
	"github.com/pulseboard/pulseboard-backend/internal/domain/post"
	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// LIKE / UNLIKE COMMANDS
// The "at most one like per (author, target)" invariant lives here, not in
// the store: the store stays a dumb collection.
// ══════════════════════════════════════════════════════════════════════════════

// LikeCommand likes a post or a comment.
type LikeCommand struct {
	TargetID   string
	TargetKind like.TargetKind
	AuthorID   string
}

// LikeHandler handles LikeCommand.
type LikeHandler struct {
	likeRepo    like.Repository
	postRepo    post.Repository
	commentRepo comment.Repository
}

// NewLikeHandler creates a new LikeHandler.
func NewLikeHandler(likeRepo like.Repository, postRepo post.Repository, commentRepo comment.Repository) *LikeHandler {
	return &LikeHandler{likeRepo: likeRepo, postRepo: postRepo, commentRepo: commentRepo}
}

// Handle creates a like after resolving the target and checking uniqueness.
func (h *LikeHandler) Handle(ctx context.Context, cmd LikeCommand) (*like.View, error) {
	if !cmd.TargetKind.IsValid() {
		return nil, shared.NewDomainError("like", "Like", shared.ErrInvalidInput, "target kind must be post or comment")
	}

	if err := h.resolveTarget(ctx, cmd); err != nil {
		return nil, err
	}

	existing, err := h.likeRepo.GetByTargetAndAuthor(ctx, cmd.TargetID, cmd.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("like: check existing: %w", err)
	}
	if existing != nil {
		return nil, shared.NewDomainError("like", "Like", shared.ErrAlreadyExists,
			fmt.Sprintf("target %s already liked", cmd.TargetID))
	}

	l, err := like.New(cmd.TargetID, cmd.TargetKind, cmd.AuthorID)
	if err != nil {
		return nil, shared.WrapError("like", "Like", shared.ErrInvalidInput, "invalid like", err)
	}

	if err := h.likeRepo.Insert(ctx, l); err != nil {
		return nil, fmt.Errorf("like: insert: %w", err)
	}

	v := l.ToView()
	return &v, nil
}

func (h *LikeHandler) resolveTarget(ctx context.Context, cmd LikeCommand) error {
	switch cmd.TargetKind {
	case like.TargetPost:
		p, err := h.postRepo.FindByID(ctx, cmd.TargetID)
		if err != nil {
			return fmt.Errorf("like: fetch post: %w", err)
		}
		if p == nil {
			return shared.NotFound("like", "Like", "post with id %s not found", cmd.TargetID)
		}
	case like.TargetComment:
		c, err := h.commentRepo.FindByID(ctx, cmd.TargetID)
		if err != nil {
			return fmt.Errorf("like: fetch comment: %w", err)
		}
		if c == nil {
			return shared.NotFound("like", "Like", "comment with id %s not found", cmd.TargetID)
		}
	}
	return nil
}

// UnlikeCommand removes a like by id.
type UnlikeCommand struct {
	LikeID      string
	RequesterID string
}

// UnlikeHandler handles UnlikeCommand.
type UnlikeHandler struct {
	likeRepo like.Repository
}

// NewUnlikeHandler creates a new UnlikeHandler.
func NewUnlikeHandler(likeRepo like.Repository) *UnlikeHandler {
	return &UnlikeHandler{likeRepo: likeRepo}
}

// Handle removes the like after the ownership check.
func (h *UnlikeHandler) Handle(ctx context.Context, cmd UnlikeCommand) error {
	l, err := h.likeRepo.FindByID(ctx, cmd.LikeID)
	if err != nil {
		return fmt.Errorf("unlike: fetch like: %w", err)
	}
	if l == nil {
		return shared.NotFound("like", "Unlike", "like with id %s not found", cmd.LikeID)
	}

	if l.AuthorID != cmd.RequesterID {
		return shared.Forbidden("like", "Unlike", "you do not have permission to remove this like")
	}

	if err := h.likeRepo.Delete(ctx, cmd.LikeID); err != nil {
		return fmt.Errorf("unlike: delete: %w", err)
	}
	return nil
}
