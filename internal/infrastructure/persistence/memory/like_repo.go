package memory

import (
	"context"

	"github.com/pulseboard/pulseboard-backend/internal/domain/like"
)

// LikeRepository implements like.Repository in memory.
type LikeRepository struct {
	*Store[*like.Like]
}

// NewLikeRepository creates an empty in-memory like repository.
func NewLikeRepository() *LikeRepository {
	return &LikeRepository{Store: NewStore[*like.Like]("like")}
}

// CountByPost returns the number of likes on a post.
func (r *LikeRepository) CountByPost(_ context.Context, postID string) (int, error) {
	return r.count(func(l *like.Like) bool {
		return l.TargetKind == like.TargetPost && l.TargetID == postID
	}), nil
}

// CountByComment returns the number of likes on a comment.
func (r *LikeRepository) CountByComment(_ context.Context, commentID string) (int, error) {
	return r.count(func(l *like.Like) bool {
		return l.TargetKind == like.TargetComment && l.TargetID == commentID
	}), nil
}

// GetByCommentAndAuthor returns the like a user placed on a comment, or
// (nil, nil) when the user has not liked it.
func (r *LikeRepository) GetByCommentAndAuthor(_ context.Context, commentID, authorID string) (*like.Like, error) {
	return r.first(func(l *like.Like) bool {
		return l.TargetKind == like.TargetComment && l.TargetID == commentID && l.AuthorID == authorID
	}), nil
}

// GetByTargetAndAuthor returns the like a user placed on any target, or
// (nil, nil).
func (r *LikeRepository) GetByTargetAndAuthor(_ context.Context, targetID, authorID string) (*like.Like, error) {
	return r.first(func(l *like.Like) bool {
		return l.TargetID == targetID && l.AuthorID == authorID
	}), nil
}
