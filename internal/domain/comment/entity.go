// Package comment contains the comment domain model. A comment belongs to a
// post and an author by back-reference; likes point at it via commentId.
package comment

import (
	"errors"
	"strings"
	"time"

	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
)

// Validation errors.
var (
	ErrPostRequired    = errors.New("comment: post id is required")
	ErrAuthorRequired  = errors.New("comment: author id is required")
	ErrContentRequired = errors.New("comment: content is required")
)

// Comment is a user's comment on a post.
type Comment struct {
	shared.Entity

	// PostID is the owning post. Required.
	PostID string

	// AuthorID is the owning user. Required.
	AuthorID string

	// Content is the comment body.
	Content string
}

// New creates a comment, validating required fields.
func New(postID, authorID, content string) (*Comment, error) {
	if postID == "" {
		return nil, ErrPostRequired
	}
	if authorID == "" {
		return nil, ErrAuthorRequired
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}
	return &Comment{
		Entity:   shared.NewEntity(),
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
	}, nil
}

// Edit replaces the comment body.
func (c *Comment) Edit(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrContentRequired
	}
	c.Content = content
	c.Touch()
	return nil
}

// View is the plain serializable snapshot of a comment.
type View struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToView returns a snapshot of the comment's current attributes.
func (c *Comment) ToView() View {
	return View{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
