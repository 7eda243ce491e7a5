package command

import (
	"context"
	"fmt"

	"github.com/pulseboard/pulseboard-backend/internal/domain/post"
	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// UPDATE POST COMMAND
// Ownership-gated: only the post's author may edit it.
// ══════════════════════════════════════════════════════════════════════════════

// UpdatePostCommand contains the replacement attributes of a post.
type UpdatePostCommand struct {
	PostID      string
	RequesterID string
	Title       string
	Content     string
	Tags        []string
}

// UpdatePostHandler handles UpdatePostCommand.
type UpdatePostHandler struct {
	postRepo post.Repository
}

// NewUpdatePostHandler creates a new UpdatePostHandler.
func NewUpdatePostHandler(postRepo post.Repository) *UpdatePostHandler {
	return &UpdatePostHandler{postRepo: postRepo}
}

// Handle edits a post after the ownership check.
func (h *UpdatePostHandler) Handle(ctx context.Context, cmd UpdatePostCommand) (*post.View, error) {
	p, err := h.postRepo.FindByID(ctx, cmd.PostID)
	if err != nil {
		return nil, fmt.Errorf("update_post: fetch post: %w", err)
	}
	if p == nil {
		return nil, shared.NotFound("post", "UpdatePost", "post with id %s not found", cmd.PostID)
	}

	if p.AuthorID != cmd.RequesterID {
		return nil, shared.Forbidden("post", "UpdatePost", "you do not have permission to update this post")
	}

	if err := p.Edit(cmd.Title, cmd.Content, cmd.Tags); err != nil {
		return nil, shared.WrapError("post", "UpdatePost", shared.ErrInvalidInput, "invalid post", err)
	}

	updated, err := h.postRepo.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("update_post: update: %w", err)
	}

	v := updated.ToView()
	return &v, nil
}
