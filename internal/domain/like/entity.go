// Package like contains the like domain model. A like points at a post or a
// comment through a target id plus a kind discriminator. At most one like may
// exist per (author, target) pair; the use case layer enforces that, not the
// store.
package like

import (
	"errors"
	"time"

	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
)

// Validation errors.
var (
	ErrTargetRequired = errors.New("like: target id is required")
	ErrAuthorRequired = errors.New("like: author id is required")
	ErrInvalidKind    = errors.New("like: invalid target kind")
)

// TargetKind discriminates what a like points at.
type TargetKind string

const (
	// TargetPost marks a like on a post.
	TargetPost TargetKind = "post"
	// TargetComment marks a like on a comment.
	TargetComment TargetKind = "comment"
)

// IsValid reports whether the kind is one of the known discriminators.
func (k TargetKind) IsValid() bool {
	return k == TargetPost || k == TargetComment
}

// Like is a single user's like of a post or comment.
type Like struct {
	shared.Entity

	// TargetID is the liked post or comment.
	TargetID string

	// TargetKind tells whether TargetID refers to a post or a comment.
	TargetKind TargetKind

	// AuthorID is the user who liked.
	AuthorID string
}

// New creates a like, validating required fields.
func New(targetID string, kind TargetKind, authorID string) (*Like, error) {
	if targetID == "" {
		return nil, ErrTargetRequired
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if authorID == "" {
		return nil, ErrAuthorRequired
	}
	return &Like{
		Entity:     shared.NewEntity(),
		TargetID:   targetID,
		TargetKind: kind,
		AuthorID:   authorID,
	}, nil
}

// View is the plain serializable snapshot of a like.
type View struct {
	ID         string    `json:"id"`
	TargetID   string    `json:"targetId"`
	TargetKind string    `json:"targetKind"`
	AuthorID   string    `json:"authorId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToView returns a snapshot of the like's current attributes.
func (l *Like) ToView() View {
	return View{
		ID:         l.ID,
		TargetID:   l.TargetID,
		TargetKind: string(l.TargetKind),
		AuthorID:   l.AuthorID,
		CreatedAt:  l.CreatedAt,
	}
}
