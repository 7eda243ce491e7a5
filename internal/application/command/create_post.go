package command

import (
	"context"
	"fmt"

	"github.com/pulseboard/pulseboard-backend/internal/domain/post"
	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
	"github.com/pulseboard/pulseboard-backend/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// CREATE POST COMMAND
// ══════════════════════════════════════════════════════════════════════════════

// CreatePostCommand contains the data to publish a post.
type CreatePostCommand struct {
	AuthorID string
	Title    string
	Content  string
	Tags     []string
}

// CreatePostHandler handles CreatePostCommand.
type CreatePostHandler struct {
	postRepo post.Repository
	userRepo user.Repository
	events   shared.EventPublisher
}

// NewCreatePostHandler creates a new CreatePostHandler.
func NewCreatePostHandler(postRepo post.Repository, userRepo user.Repository, events shared.EventPublisher) *CreatePostHandler {
	return &CreatePostHandler{postRepo: postRepo, userRepo: userRepo, events: events}
}

// Handle creates a post after verifying the author resolves.
func (h *CreatePostHandler) Handle(ctx context.Context, cmd CreatePostCommand) (*post.View, error) {
	author, err := h.userRepo.FindByID(ctx, cmd.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("create_post: fetch author: %w", err)
	}
	if author == nil {
		return nil, shared.NotFound("post", "CreatePost", "author with id %s not found", cmd.AuthorID)
	}

	p, err := post.New(cmd.AuthorID, cmd.Title, cmd.Content, cmd.Tags)
	if err != nil {
		return nil, shared.WrapError("post", "CreatePost", shared.ErrInvalidInput, "invalid post", err)
	}

	if err := h.postRepo.Insert(ctx, p); err != nil {
		return nil, fmt.Errorf("create_post: insert: %w", err)
	}

	_ = h.events.Publish(ctx, shared.PostCreatedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventPostCreated, p.ID),
		AuthorID:  p.AuthorID,
		Title:     p.Title,
	})

	v := p.ToView()
	return &v, nil
}
