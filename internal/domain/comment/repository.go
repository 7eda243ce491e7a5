package comment

import "context"

// Repository defines the comment storage contract.
type Repository interface {
	// Insert adds a new comment.
	Insert(ctx context.Context, c *Comment) error

	// FindByID returns a comment by id. Absence is (nil, nil), not an error.
	FindByID(ctx context.Context, id string) (*Comment, error)

	// FindMany returns all comments in insertion order.
	FindMany(ctx context.Context) ([]*Comment, error)

	// Update replaces the attributes of an existing comment.
	// Returns shared.ErrNotFound when the comment does not exist.
	Update(ctx context.Context, c *Comment) (*Comment, error)

	// Delete removes a comment by id.
	// Returns shared.ErrNotFound when the comment does not exist.
	Delete(ctx context.Context, id string) error

	// FindByPostID returns all comments of a post in insertion order.
	FindByPostID(ctx context.Context, postID string) ([]*Comment, error)
}
