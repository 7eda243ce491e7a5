package command

import (
	"context"
	"fmt"

	"github.com/pulseboard/pulseboard-backend/internal/domain/comment"
	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// DELETE COMMENT COMMAND
// ══════════════════════════════════════════════════════════════════════════════

// DeleteCommentCommand identifies the comment and the caller.
type DeleteCommentCommand struct {
	CommentID   string
	RequesterID string
}

// DeleteCommentHandler handles DeleteCommentCommand.
type DeleteCommentHandler struct {
	commentRepo comment.Repository
}

// NewDeleteCommentHandler creates a new DeleteCommentHandler.
func NewDeleteCommentHandler(commentRepo comment.Repository) *DeleteCommentHandler {
	return &DeleteCommentHandler{commentRepo: commentRepo}
}

// Handle deletes the comment after the ownership check. Likes pointing at
// the comment are not cascaded; they become orphans.
func (h *DeleteCommentHandler) Handle(ctx context.Context, cmd DeleteCommentCommand) error {
	c, err := h.commentRepo.FindByID(ctx, cmd.CommentID)
	if err != nil {
		return fmt.Errorf("delete_comment: fetch comment: %w", err)
	}
	if c == nil {
		return shared.NotFound("comment", "DeleteComment", "comment with id %s not found", cmd.CommentID)
	}

	if c.AuthorID != cmd.RequesterID {
		return shared.Forbidden("comment", "DeleteComment", "you do not have permission to delete this comment")
	}

	if err := h.commentRepo.Delete(ctx, cmd.CommentID); err != nil {
		return fmt.Errorf("delete_comment: delete: %w", err)
	}
	return nil
}
