// Package query contains read operations following CQRS pattern.
// Queries never modify state - they only read and return data.
// Each query is a self-contained use case with its own request/response types.
package query

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pulseboard/pulseboard-backend/internal/domain/comment"
	"github.com/pulseboard/pulseboard-backend/internal/domain/like"
	"github.com/pulseboard/pulseboard-backend/internal/domain/post"
	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
	"github.com/pulseboard/pulseboard-backend/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET POST QUERY
// Returns a single post enriched with its author's name, like count, and the
// full comment list, each comment carrying its own like count, author name,
// and the requesting viewer's like state.
// ══════════════════════════════════════════════════════════════════════════════

// unknownAuthor is substituted when a comment's author record no longer
// resolves. Comments tolerate a missing author (the account may have been
// deleted); the post's own author is a hard data-integrity requirement.
const unknownAuthor = "unknown"

// GetPostQuery contains the parameters of the single-post read.
type GetPostQuery struct {
	// PostID - the post to fetch.
	PostID string

	// ViewerID - the requesting user, if authenticated. Optional: when
	// empty, per-viewer like state comes back false/null.
	ViewerID string
}

// Validate validates the query.
func (q GetPostQuery) Validate() error {
	if q.PostID == "" {
		return shared.NewDomainError("post", "GetPost", shared.ErrInvalidInput, "post id is required")
	}
	return nil
}

// CommentEntry is a comment view enriched with cross-entity data.
type CommentEntry struct {
	ID             string    `json:"id"`
	PostID         string    `json:"postId"`
	AuthorID       string    `json:"authorId"`
	AuthorUsername string    `json:"authorUsername"`
	Content        string    `json:"content"`
	Likes          int       `json:"likes"`
	LikedByViewer  bool      `json:"likedByUser"`
	ViewerLikeID   *string   `json:"currentUserLikeId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// GetPostResult is the denormalized single-post view. Every field is named
// explicitly; nothing is merged by spreading.
type GetPostResult struct {
	ID             string         `json:"id"`
	AuthorID       string         `json:"authorId"`
	AuthorUsername string         `json:"authorUsername"`
	Title          string         `json:"title"`
	Content        string         `json:"content"`
	Tags           []string       `json:"tags,omitempty"`
	Likes          int            `json:"likes"`
	Comments       []CommentEntry `json:"comments"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// GetPostHandler handles GetPostQuery.
type GetPostHandler struct {
	postRepo    post.Repository
	commentRepo comment.Repository
	likeRepo    like.Repository
	userRepo    user.Repository
}

// NewGetPostHandler creates a new GetPostHandler.
func NewGetPostHandler(
	postRepo post.Repository,
	commentRepo comment.Repository,
	likeRepo like.Repository,
	userRepo user.Repository,
) *GetPostHandler {
	return &GetPostHandler{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		userRepo:    userRepo,
	}
}

// Handle executes the query. The aggregation is recomputed on every call;
// nothing is cached.
func (h *GetPostHandler) Handle(ctx context.Context, q GetPostQuery) (*GetPostResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	p, err := h.postRepo.FindByID(ctx, q.PostID)
	if err != nil {
		return nil, fmt.Errorf("get_post: fetch post: %w", err)
	}
	if p == nil {
		return nil, shared.NotFound("post", "GetPost", "post with id %s not found", q.PostID)
	}

	author, err := h.userRepo.FindByID(ctx, p.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("get_post: fetch author: %w", err)
	}
	if author == nil {
		// A post whose author does not resolve is a data-integrity fault,
		// not a user error. Comments below are treated more leniently.
		return nil, shared.NotFound("post", "GetPost", "author of post %s not found", q.PostID)
	}

	likes, err := h.likeRepo.CountByPost(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("get_post: count likes: %w", err)
	}

	comments, err := h.commentRepo.FindByPostID(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("get_post: fetch comments: %w", err)
	}

	entries, err := h.enrichComments(ctx, comments, q.ViewerID)
	if err != nil {
		return nil, err
	}

	return &GetPostResult{
		ID:             p.ID,
		AuthorID:       p.AuthorID,
		AuthorUsername: author.Username.String(),
		Title:          p.Title,
		Content:        p.Content,
		Tags:           p.Tags,
		Likes:          likes,
		Comments:       entries,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}, nil
}

// enrichComments resolves per-comment like counts, author names, and viewer
// like state. Each comment's reads are independent, so they fan out
// concurrently; results land in an index-addressed slice, which keeps the
// output in the comments' insertion order regardless of completion order.
func (h *GetPostHandler) enrichComments(ctx context.Context, comments []*comment.Comment, viewerID string) ([]CommentEntry, error) {
	entries := make([]CommentEntry, len(comments))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i, c := range comments {
		wg.Add(1)
		go func(i int, c *comment.Comment) {
			defer wg.Done()
			entry, err := h.enrichComment(ctx, c, viewerID)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			entries[i] = entry
		}(i, c)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return entries, nil
}

func (h *GetPostHandler) enrichComment(ctx context.Context, c *comment.Comment, viewerID string) (CommentEntry, error) {
	likes, err := h.likeRepo.CountByComment(ctx, c.ID)
	if err != nil {
		return CommentEntry{}, fmt.Errorf("get_post: count comment likes: %w", err)
	}

	authorName := unknownAuthor
	author, err := h.userRepo.FindByID(ctx, c.AuthorID)
	if err != nil {
		return CommentEntry{}, fmt.Errorf("get_post: fetch comment author: %w", err)
	}
	if author != nil {
		authorName = author.Username.String()
	}

	var (
		likedByViewer bool
		viewerLikeID  *string
	)
	if viewerID != "" {
		viewerLike, err := h.likeRepo.GetByCommentAndAuthor(ctx, c.ID, viewerID)
		if err != nil {
			return CommentEntry{}, fmt.Errorf("get_post: fetch viewer like: %w", err)
		}
		if viewerLike != nil {
			likedByViewer = true
			id := viewerLike.ID
			viewerLikeID = &id
		}
	}

	return CommentEntry{
		ID:             c.ID,
		PostID:         c.PostID,
		AuthorID:       c.AuthorID,
		AuthorUsername: authorName,
		Content:        c.Content,
		Likes:          likes,
		LikedByViewer:  likedByViewer,
		ViewerLikeID:   viewerLikeID,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}, nil
}
