package command

import (
	"context"
	"fmt"

	"github.com/pulseboard/pulseboard-backend/internal/domain/post"
	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// DELETE POST COMMAND
// Ownership-gated. Deletion does not cascade: the post's comments and likes
// stay behind as orphans and are filtered out lazily by aggregated reads.
// ══════════════════════════════════════════════════════════════════════════════

// DeletePostCommand identifies the post and the caller.
type DeletePostCommand struct {
	PostID      string
	RequesterID string
}

// DeletePostHandler handles DeletePostCommand.
type DeletePostHandler struct {
	postRepo post.Repository
	events   shared.EventPublisher
}

// NewDeletePostHandler creates a new DeletePostHandler.
func NewDeletePostHandler(postRepo post.Repository, events shared.EventPublisher) *DeletePostHandler {
	return &DeletePostHandler{postRepo: postRepo, events: events}
}

// Handle deletes the post after the ownership check.
func (h *DeletePostHandler) Handle(ctx context.Context, cmd DeletePostCommand) error {
	p, err := h.postRepo.FindByID(ctx, cmd.PostID)
	if err != nil {
		return fmt.Errorf("delete_post: fetch post: %w", err)
	}
	if p == nil {
		return shared.NotFound("post", "DeletePost", "post with id %s not found", cmd.PostID)
	}

	if p.AuthorID != cmd.RequesterID {
		return shared.Forbidden("post", "DeletePost", "you do not have permission to delete this post")
	}

	if err := h.postRepo.Delete(ctx, cmd.PostID); err != nil {
		return fmt.Errorf("delete_post: delete: %w", err)
	}

	_ = h.events.Publish(ctx, shared.PostDeletedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventPostDeleted, p.ID),
		AuthorID:  p.AuthorID,
	})
	return nil
}
