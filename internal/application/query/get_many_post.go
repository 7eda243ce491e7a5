package query

import (
	"context"
	"fmt"

	"github.com/pulseboard/pulseboard-backend/internal/domain/post"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET MANY POST QUERY
// A lightweight listing: plain post views in insertion order, no enrichment,
// no authorization. The deep single-post read is GetPost.
// ══════════════════════════════════════════════════════════════════════════════

// GetManyPostHandler handles the post listing.
type GetManyPostHandler struct {
	postRepo post.Repository
}

// NewGetManyPostHandler creates a new GetManyPostHandler.
func NewGetManyPostHandler(postRepo post.Repository) *GetManyPostHandler {
	return &GetManyPostHandler{postRepo: postRepo}
}

// Handle returns the plain views of all posts.
func (h *GetManyPostHandler) Handle(ctx context.Context) ([]post.View, error) {
	posts, err := h.postRepo.FindMany(ctx)
	if err != nil {
		return nil, fmt.Errorf("get_many_post: fetch posts: %w", err)
	}

	views := make([]post.View, 0, len(posts))
	for _, p := range posts {
		views = append(views, p.ToView())
	}
	return views, nil
}
