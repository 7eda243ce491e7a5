package memory

import (
	"github.com/pulseboard/pulseboard-backend/internal/domain/post"
)

// PostRepository implements post.Repository in memory. Posts carry no
// specialized queries beyond the generic surface.
type PostRepository struct {
	*Store[*post.Post]
}

// NewPostRepository creates an empty in-memory post repository.
func NewPostRepository() *PostRepository {
	return &PostRepository{Store: NewStore[*post.Post]("post")}
}
