package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pulseboard/pulseboard-backend/internal/application/command"
	"github.com/pulseboard/pulseboard-backend/internal/application/query"
	"github.com/pulseboard/pulseboard-backend/internal/domain/like"
)

// ══════════════════════════════════════════════════════════════════════════════
// DEPENDENCIES
// ══════════════════════════════════════════════════════════════════════════════

// TokenRefresher exchanges a refresh token for a new token pair.
type TokenRefresher interface {
	Refresh(ctx context.Context, refreshToken string) (*command.TokenPair, error)
}

// Dependencies groups the use case handlers the server routes to.
type Dependencies struct {
	Tokens    TokenVerifier
	Refresher TokenRefresher

	CreateAccount  *command.CreateAccountHandler
	Login          *command.LoginHandler
	UpdateUser     *command.UpdateUserHandler
	UpdatePassword *command.UpdateUserPasswordHandler

	CreatePost *command.CreatePostHandler
	UpdatePost *command.UpdatePostHandler
	DeletePost *command.DeletePostHandler

	AddComment    *command.AddCommentHandler
	UpdateComment *command.UpdateCommentHandler
	DeleteComment *command.DeleteCommentHandler

	Like   *command.LikeHandler
	Unlike *command.UnlikeHandler

	Follow   *command.FollowHandler
	Unfollow *command.UnfollowHandler

	Me          *query.MeHandler
	GetProfile  *query.GetProfileHandler
	GetPost     *query.GetPostHandler
	GetManyPost *query.GetManyPostHandler
	Comments    *query.CommentQueries
}

// routes mounts all endpoints.
func (s *Server) routes(mux *http.ServeMux) {
	// Account.
	mux.HandleFunc("POST /api/user/create", s.handleCreateAccount)
	mux.HandleFunc("POST /api/user/login", s.handleLogin)
	mux.HandleFunc("POST /api/user/refresh", s.handleRefresh)
	mux.HandleFunc("GET /api/user/me", s.requireAuth(s.handleMe))
	mux.HandleFunc("PUT /api/user", s.requireAuth(s.handleUpdateUser))
	mux.HandleFunc("PATCH /api/user/password", s.requireAuth(s.handleUpdatePassword))
	mux.HandleFunc("GET /api/user/profile/{username}", s.optionalAuth(s.handleGetProfile))

	// Posts.
	mux.HandleFunc("GET /api/post", s.handleListPosts)
	mux.HandleFunc("POST /api/post", s.requireAuth(s.handleCreatePost))
	mux.HandleFunc("GET /api/post/{id}", s.optionalAuth(s.handleGetPost))
	mux.HandleFunc("PUT /api/post/{id}", s.requireAuth(s.handleUpdatePost))
	mux.HandleFunc("DELETE /api/post/{id}", s.requireAuth(s.handleDeletePost))

	// Comments.
	mux.HandleFunc("POST /api/comment", s.requireAuth(s.handleAddComment))
	mux.HandleFunc("GET /api/comment", s.handleListComments)
	mux.HandleFunc("PUT /api/comment/{id}", s.requireAuth(s.handleUpdateComment))
	mux.HandleFunc("DELETE /api/comment/{id}", s.requireAuth(s.handleDeleteComment))

	// Likes.
	mux.HandleFunc("POST /api/like", s.requireAuth(s.handleLike))
	mux.HandleFunc("DELETE /api/like/{id}", s.requireAuth(s.handleUnlike))

	// Follows.
	mux.HandleFunc("POST /api/follow/{userId}", s.requireAuth(s.handleFollow))
	mux.HandleFunc("DELETE /api/follow/{userId}", s.requireAuth(s.handleUnfollow))

	mux.HandleFunc("GET /health", s.handleHealth)
}

func decode(r *http.Request, dst any) bool {
	return json.NewDecoder(r.Body).Decode(dst) == nil
}

// ══════════════════════════════════════════════════════════════════════════════
// ACCOUNT HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

type createAccountRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	Bio         string `json:"bio"`
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if !decode(r, &req) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	view, err := s.deps.CreateAccount.Handle(r.Context(), command.CreateAccountCommand{
		Username:    req.Username,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decode(r, &req) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result, err := s.deps.Login.Handle(r.Context(), command.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !decode(r, &req) || req.RefreshToken == "" {
		writeError(w, http.StatusBadRequest, "refresh token is required")
		return
	}
	pair, err := s.deps.Refresher.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}
	writeJSON(w, http.StatusOK, pair)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	view, err := s.deps.Me.Handle(r.Context(), query.MeQuery{UserID: userFrom(r)})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type updateUserRequest struct {
	DisplayName string `json:"displayName"`
	Bio         string `json:"bio"`
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if !decode(r, &req) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	view, err := s.deps.UpdateUser.Handle(r.Context(), command.UpdateUserCommand{
		UserID:      userFrom(r),
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req updatePasswordRequest
	if !decode(r, &req) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	err := s.deps.UpdatePassword.Handle(r.Context(), command.UpdateUserPasswordCommand{
		UserID:          userFrom(r),
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	result, err := s.deps.GetProfile.Handle(r.Context(), query.GetProfileQuery{
		Username: r.PathValue("username"),
		ViewerID: userFrom(r),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ══════════════════════════════════════════════════════════════════════════════
// POST HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

type postRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	views, err := s.deps.GetManyPost.Handle(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if !decode(r, &req) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	view, err := s.deps.CreatePost.Handle(r.Context(), command.CreatePostCommand{
		AuthorID: userFrom(r),
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	result, err := s.deps.GetPost.Handle(r.Context(), query.GetPostQuery{
		PostID:   r.PathValue("id"),
		ViewerID: userFrom(r),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if !decode(r, &req) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	view, err := s.deps.UpdatePost.Handle(r.Context(), command.UpdatePostCommand{
		PostID:      r.PathValue("id"),
		RequesterID: userFrom(r),
		Title:       req.Title,
		Content:     req.Content,
		Tags:        req.Tags,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	err := s.deps.DeletePost.Handle(r.Context(), command.DeletePostCommand{
		PostID:      r.PathValue("id"),
		RequesterID: userFrom(r),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ══════════════════════════════════════════════════════════════════════════════
// COMMENT HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

type addCommentRequest struct {
	PostID  string `json:"postId"`
	Content string `json:"content"`
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	var req addCommentRequest
	if !decode(r, &req) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	view, err := s.deps.AddComment.Handle(r.Context(), command.AddCommentCommand{
		PostID:   req.PostID,
		AuthorID: userFrom(r),
		Content:  req.Content,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// handleListComments serves the comment listings. Filter selection is
// priority-ordered: postId+authorId, then postId, then authorId, then
// content. A content filter alongside an id filter is ignored.
func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	var (
		postID   = r.URL.Query().Get("postId")
		authorID = r.URL.Query().Get("authorId")
		content  = r.URL.Query().Get("content")
	)
	ctx := r.Context()
	var (
		views any
		err   error
	)
	switch {
	case postID != "" && authorID != "":
		views, err = s.deps.Comments.ByAuthorInPost(ctx, postID, authorID)
	case postID != "":
		views, err = s.deps.Comments.ByPost(ctx, postID)
	case authorID != "":
		views, err = s.deps.Comments.ByAuthor(ctx, authorID)
	case content != "":
		views, err = s.deps.Comments.ByContent(ctx, content)
	default:
		writeError(w, http.StatusBadRequest, "at least one filter is required: postId, authorId or content")
		return
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

type updateCommentRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleUpdateComment(w http.ResponseWriter, r *http.Request) {
	var req updateCommentRequest
	if !decode(r, &req) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	view, err := s.deps.UpdateComment.Handle(r.Context(), command.UpdateCommentCommand{
		CommentID:   r.PathValue("id"),
		RequesterID: userFrom(r),
		Content:     req.Content,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	err := s.deps.DeleteComment.Handle(r.Context(), command.DeleteCommentCommand{
		CommentID:   r.PathValue("id"),
		RequesterID: userFrom(r),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ══════════════════════════════════════════════════════════════════════════════
// LIKE HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

type likeRequest struct {
	TargetID   string `json:"targetId"`
	TargetKind string `json:"targetKind"`
}

func (s *Server) handleLike(w http.ResponseWriter, r *http.Request) {
	var req likeRequest
	if !decode(r, &req) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	view, err := s.deps.Like.Handle(r.Context(), command.LikeCommand{
		TargetID:   req.TargetID,
		TargetKind: like.TargetKind(req.TargetKind),
		AuthorID:   userFrom(r),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (s *Server) handleUnlike(w http.ResponseWriter, r *http.Request) {
	err := s.deps.Unlike.Handle(r.Context(), command.UnlikeCommand{
		LikeID:      r.PathValue("id"),
		RequesterID: userFrom(r),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ══════════════════════════════════════════════════════════════════════════════
// FOLLOW HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

func (s *Server) handleFollow(w http.ResponseWriter, r *http.Request) {
	view, err := s.deps.Follow.Handle(r.Context(), command.FollowCommand{
		FollowerID:  userFrom(r),
		FollowingID: r.PathValue("userId"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (s *Server) handleUnfollow(w http.ResponseWriter, r *http.Request) {
	err := s.deps.Unfollow.Handle(r.Context(), command.UnfollowCommand{
		FollowerID:  userFrom(r),
		FollowingID: r.PathValue("userId"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
