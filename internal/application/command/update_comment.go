package command

import (
	"context"
	"fmt"

	"github.com/pulseboard/pulseboard-backend/internal/domain/comment"
	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// UPDATE COMMENT COMMAND
// Same ownership pattern as DeletePost, compared against the comment's author.
// ══════════════════════════════════════════════════════════════════════════════

// UpdateCommentCommand contains the replacement content of a comment.
type UpdateCommentCommand struct {
	CommentID   string
	RequesterID string
	Content     string
}

// UpdateCommentHandler handles UpdateCommentCommand.
type UpdateCommentHandler struct {
	commentRepo comment.Repository
}

// NewUpdateCommentHandler creates a new UpdateCommentHandler.
func NewUpdateCommentHandler(commentRepo comment.Repository) *UpdateCommentHandler {
	return &UpdateCommentHandler{commentRepo: commentRepo}
}

// Handle edits a comment after the ownership check.
func (h *UpdateCommentHandler) Handle(ctx context.Context, cmd UpdateCommentCommand) (*comment.View, error) {
	c, err := h.commentRepo.FindByID(ctx, cmd.CommentID)
	if err != nil {
		return nil, fmt.Errorf("update_comment: fetch comment: %w", err)
	}
	if c == nil {
		return nil, shared.NotFound("comment", "UpdateComment", "comment with id %s not found", cmd.CommentID)
	}

	if c.AuthorID != cmd.RequesterID {
		return nil, shared.Forbidden("comment", "UpdateComment", "you do not have permission to update this comment")
	}

	if err := c.Edit(cmd.Content); err != nil {
		return nil, shared.WrapError("comment", "UpdateComment", shared.ErrInvalidInput, "invalid comment", err)
	}

	updated, err := h.commentRepo.Update(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("update_comment: update: %w", err)
	}

	v := updated.ToView()
	return &v, nil
}
