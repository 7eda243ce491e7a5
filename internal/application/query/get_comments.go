package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/pulseboard/pulseboard-backend/internal/domain/comment"
	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// COMMENT LISTING QUERIES
// Each applies a single filter predicate over the comment collection and
// returns plain views in insertion order, unenriched.
// ══════════════════════════════════════════════════════════════════════════════

// CommentQueries bundles the filtered comment listings; they all read from
// the same repository and none of them enriches.
type CommentQueries struct {
	commentRepo comment.Repository
}

// NewCommentQueries creates the comment listing handlers.
func NewCommentQueries(commentRepo comment.Repository) *CommentQueries {
	return &CommentQueries{commentRepo: commentRepo}
}

// ByPost returns all comments of a post.
func (h *CommentQueries) ByPost(ctx context.Context, postID string) ([]comment.View, error) {
	if postID == "" {
		return nil, shared.NewDomainError("comment", "GetCommentByPost", shared.ErrInvalidInput, "post id is required")
	}
	comments, err := h.commentRepo.FindByPostID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("get_comment_by_post: %w", err)
	}
	return toViews(comments), nil
}

// ByAuthor returns all comments written by a user.
func (h *CommentQueries) ByAuthor(ctx context.Context, authorID string) ([]comment.View, error) {
	if authorID == "" {
		return nil, shared.NewDomainError("comment", "GetCommentByAuthor", shared.ErrInvalidInput, "author id is required")
	}
	return h.listWhere(ctx, "get_comment_by_author", func(c *comment.Comment) bool {
		return c.AuthorID == authorID
	})
}

// ByContent returns all comments whose content contains the given fragment.
func (h *CommentQueries) ByContent(ctx context.Context, content string) ([]comment.View, error) {
	if content == "" {
		return nil, shared.NewDomainError("comment", "GetCommentByContent", shared.ErrInvalidInput, "content is required")
	}
	return h.listWhere(ctx, "get_comment_by_content", func(c *comment.Comment) bool {
		return strings.Contains(c.Content, content)
	})
}

// ByAuthorInPost returns a user's comments within one post: the conjunction
// of the post and author filters.
func (h *CommentQueries) ByAuthorInPost(ctx context.Context, postID, authorID string) ([]comment.View, error) {
	if postID == "" || authorID == "" {
		return nil, shared.NewDomainError("comment", "GetCommentAuthorInPost", shared.ErrInvalidInput, "post id and author id are required")
	}
	return h.listWhere(ctx, "get_comment_author_in_post", func(c *comment.Comment) bool {
		return c.PostID == postID && c.AuthorID == authorID
	})
}

func (h *CommentQueries) listWhere(ctx context.Context, op string, pred func(*comment.Comment) bool) ([]comment.View, error) {
	comments, err := h.commentRepo.FindMany(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var matched []*comment.Comment
	for _, c := range comments {
		if pred(c) {
			matched = append(matched, c)
		}
	}
	return toViews(matched), nil
}

func toViews(comments []*comment.Comment) []comment.View {
	views := make([]comment.View, 0, len(comments))
	for _, c := range comments {
		views = append(views, c.ToView())
	}
	return views
}
