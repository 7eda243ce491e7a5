package query

import (
	"context"
	"fmt"
	"time"

	"github.com/pulseboard/pulseboard-backend/internal/domain/comment"
	"github.com/pulseboard/pulseboard-backend/internal/domain/follow"
	"github.com/pulseboard/pulseboard-backend/internal/domain/like"
	"github.com/pulseboard/pulseboard-backend/internal/domain/post"
	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
	"github.com/pulseboard/pulseboard-backend/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET PROFILE QUERY
// The user-side counterpart of GetPost: a profile view enriched with the
// user's posts, activity counts, audience counts, and the viewer's follow
// relationship.
// ══════════════════════════════════════════════════════════════════════════════

// GetProfileQuery contains the parameters of the profile read.
type GetProfileQuery struct {
	// Username - business key of the profile owner.
	Username string

	// ViewerID - the requesting user, if authenticated. Optional.
	ViewerID string
}

// Validate validates the query.
func (q GetProfileQuery) Validate() error {
	if q.Username == "" {
		return shared.NewDomainError("user", "GetProfile", shared.ErrInvalidInput, "username is required")
	}
	return nil
}

// GetProfileResult is the denormalized profile view.
type GetProfileResult struct {
	ID               string      `json:"id"`
	Username         string      `json:"username"`
	DisplayName      string      `json:"displayName"`
	Bio              string      `json:"bio,omitempty"`
	Posts            []post.View `json:"posts"`
	CommentCount     int         `json:"commentCount"`
	LikesReceived    int         `json:"likesReceived"`
	Followers        int         `json:"followers"`
	Following        int         `json:"following"`
	FollowedByViewer bool        `json:"followedByUser"`
	ViewerFollowID   *string     `json:"currentUserFollowId"`
	CreatedAt        time.Time   `json:"createdAt"`
}

// GetProfileHandler handles GetProfileQuery.
type GetProfileHandler struct {
	userRepo    user.Repository
	postRepo    post.Repository
	commentRepo comment.Repository
	likeRepo    like.Repository
	followRepo  follow.Repository
}

// NewGetProfileHandler creates a new GetProfileHandler.
func NewGetProfileHandler(
	userRepo user.Repository,
	postRepo post.Repository,
	commentRepo comment.Repository,
	likeRepo like.Repository,
	followRepo follow.Repository,
) *GetProfileHandler {
	return &GetProfileHandler{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		followRepo:  followRepo,
	}
}

// Handle executes the query.
func (h *GetProfileHandler) Handle(ctx context.Context, q GetProfileQuery) (*GetProfileResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	u, err := h.userRepo.FindByUsername(ctx, user.Username(q.Username))
	if err != nil {
		return nil, fmt.Errorf("get_profile: fetch user: %w", err)
	}
	if u == nil {
		return nil, shared.NotFound("user", "GetProfile", "user with username %s not found", q.Username)
	}

	allPosts, err := h.postRepo.FindMany(ctx)
	if err != nil {
		return nil, fmt.Errorf("get_profile: fetch posts: %w", err)
	}
	var postViews []post.View
	var ownPosts []*post.Post
	for _, p := range allPosts {
		if p.AuthorID == u.ID {
			ownPosts = append(ownPosts, p)
			postViews = append(postViews, p.ToView())
		}
	}
	if postViews == nil {
		postViews = []post.View{}
	}

	allComments, err := h.commentRepo.FindMany(ctx)
	if err != nil {
		return nil, fmt.Errorf("get_profile: fetch comments: %w", err)
	}
	commentCount := 0
	var ownComments []*comment.Comment
	for _, c := range allComments {
		if c.AuthorID == u.ID {
			commentCount++
			ownComments = append(ownComments, c)
		}
	}

	likesReceived, err := h.countLikesReceived(ctx, ownPosts, ownComments)
	if err != nil {
		return nil, err
	}

	followers, err := h.followRepo.CountFollowers(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("get_profile: count followers: %w", err)
	}
	following, err := h.followRepo.CountFollowing(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("get_profile: count following: %w", err)
	}

	var (
		followedByViewer bool
		viewerFollowID   *string
	)
	if q.ViewerID != "" && q.ViewerID != u.ID {
		f, err := h.followRepo.GetByPair(ctx, q.ViewerID, u.ID)
		if err != nil {
			return nil, fmt.Errorf("get_profile: fetch viewer follow: %w", err)
		}
		if f != nil {
			followedByViewer = true
			id := f.ID
			viewerFollowID = &id
		}
	}

	return &GetProfileResult{
		ID:               u.ID,
		Username:         u.Username.String(),
		DisplayName:      u.DisplayName,
		Bio:              u.Bio,
		Posts:            postViews,
		CommentCount:     commentCount,
		LikesReceived:    likesReceived,
		Followers:        followers,
		Following:        following,
		FollowedByViewer: followedByViewer,
		ViewerFollowID:   viewerFollowID,
		CreatedAt:        u.CreatedAt,
	}, nil
}

// countLikesReceived sums the likes on everything the user authored.
func (h *GetProfileHandler) countLikesReceived(ctx context.Context, posts []*post.Post, comments []*comment.Comment) (int, error) {
	total := 0
	for _, p := range posts {
		n, err := h.likeRepo.CountByPost(ctx, p.ID)
		if err != nil {
			return 0, fmt.Errorf("get_profile: count post likes: %w", err)
		}
		total += n
	}
	for _, c := range comments {
		n, err := h.likeRepo.CountByComment(ctx, c.ID)
		if err != nil {
			return 0, fmt.Errorf("get_profile: count comment likes: %w", err)
		}
		total += n
	}
	return total, nil
}
