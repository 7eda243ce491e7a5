package command

import (
	"context"
	"fmt"

	"github.com/pulseboard/pulseboard-backend/internal/domain/comment"
	"github.com/pulseboard/pulseboard-backend/internal/domain/post"
	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
	"github.com/pulseboard/pulseboard-backend/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD COMMENT COMMAND
// ══════════════════════════════════════════════════════════════════════════════

// AddCommentCommand contains the data to comment on a post.
type AddCommentCommand struct {
	PostID   string
	AuthorID string
	Content  string
}

// AddCommentHandler handles AddCommentCommand.
type AddCommentHandler struct {
	commentRepo comment.Repository
	postRepo    post.Repository
	userRepo    user.Repository
	events      shared.EventPublisher
}

// NewAddCommentHandler creates a new AddCommentHandler.
func NewAddCommentHandler(
	commentRepo comment.Repository,
	postRepo post.Repository,
	userRepo user.Repository,
	events shared.EventPublisher,
) *AddCommentHandler {
	return &AddCommentHandler{commentRepo: commentRepo, postRepo: postRepo, userRepo: userRepo, events: events}
}

// Handle creates a comment after verifying its references resolve.
func (h *AddCommentHandler) Handle(ctx context.Context, cmd AddCommentCommand) (*comment.View, error) {
	p, err := h.postRepo.FindByID(ctx, cmd.PostID)
	if err != nil {
		return nil, fmt.Errorf("add_comment: fetch post: %w", err)
	}
	if p == nil {
		return nil, shared.NotFound("comment", "AddComment", "post with id %s not found", cmd.PostID)
	}

	author, err := h.userRepo.FindByID(ctx, cmd.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("add_comment: fetch author: %w", err)
	}
	if author == nil {
		return nil, shared.NotFound("comment", "AddComment", "author with id %s not found", cmd.AuthorID)
	}

	c, err := comment.New(cmd.PostID, cmd.AuthorID, cmd.Content)
	if err != nil {
		return nil, shared.WrapError("comment", "AddComment", shared.ErrInvalidInput, "invalid comment", err)
	}

	if err := h.commentRepo.Insert(ctx, c); err != nil {
		return nil, fmt.Errorf("add_comment: insert: %w", err)
	}

	_ = h.events.Publish(ctx, shared.CommentAddedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventCommentAdded, c.ID),
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
	})

	v := c.ToView()
	return &v, nil
}
