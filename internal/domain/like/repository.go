package like

import "context"

// Repository defines the like storage contract.
type Repository interface {
	// Insert adds a new like.
	Insert(ctx context.Context, l *Like) error

	// FindByID returns a like by id. Absence is (nil, nil), not an error.
	FindByID(ctx context.Context, id string) (*Like, error)

	// FindMany returns all likes in insertion order.
	FindMany(ctx context.Context) ([]*Like, error)

	// Update replaces the attributes of an existing like.
	// Returns shared.ErrNotFound when the like does not exist.
	Update(ctx context.Context, l *Like) (*Like, error)

	// Delete removes a like by id.
	// Returns shared.ErrNotFound when the like does not exist.
	Delete(ctx context.Context, id string) error

	// CountByPost returns the number of likes on a post.
	CountByPost(ctx context.Context, postID string) (int, error)

	// CountByComment returns the number of likes on a comment.
	CountByComment(ctx context.Context, commentID string) (int, error)

	// GetByCommentAndAuthor returns the like a user placed on a comment,
	// or (nil, nil) when the user has not liked it. Drives the per-viewer
	// like state in enriched reads.
	GetByCommentAndAuthor(ctx context.Context, commentID, authorID string) (*Like, error)

	// GetByTargetAndAuthor returns the like a user placed on any target,
	// or (nil, nil). Used to enforce like uniqueness at the use case layer.
	GetByTargetAndAuthor(ctx context.Context, targetID, authorID string) (*Like, error)
}
