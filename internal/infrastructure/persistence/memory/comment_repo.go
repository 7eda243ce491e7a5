package memory

import (
	"context"

	"github.com/pulseboard/pulseboard-backend/internal/domain/comment"
)

// CommentRepository implements comment.Repository in memory.
type CommentRepository struct {
	*Store[*comment.Comment]
}

// NewCommentRepository creates an empty in-memory comment repository.
func NewCommentRepository() *CommentRepository {
	return &CommentRepository{Store: NewStore[*comment.Comment]("comment")}
}

// FindByPostID returns all comments of a post in insertion order.
func (r *CommentRepository) FindByPostID(_ context.Context, postID string) ([]*comment.Comment, error) {
	return r.filter(func(c *comment.Comment) bool { return c.PostID == postID }), nil
}
