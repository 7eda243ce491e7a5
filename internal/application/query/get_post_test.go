package query

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseboard/pulseboard-backend/internal/domain/comment"
	"github.com/pulseboard/pulseboard-backend/internal/domain/like"
	"github.com/pulseboard/pulseboard-backend/internal/domain/post"
	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
	"github.com/pulseboard/pulseboard-backend/internal/domain/user"
	"github.com/pulseboard/pulseboard-backend/internal/infrastructure/persistence/memory"
)

// postFixture wires the in-memory repositories a single-post read needs.
type postFixture struct {
	users    *memory.UserRepository
	posts    *memory.PostRepository
	comments *memory.CommentRepository
	likes    *memory.LikeRepository
	handler  *GetPostHandler
}

func newPostFixture() *postFixture {
	f := &postFixture{
		users:    memory.NewUserRepository(),
		posts:    memory.NewPostRepository(),
		comments: memory.NewCommentRepository(),
		likes:    memory.NewLikeRepository(),
	}
	f.handler = NewGetPostHandler(f.posts, f.comments, f.likes, f.users)
	return f
}

func (f *postFixture) addUser(t *testing.T, username string) *user.User {
	t.Helper()
	u, err := user.New(user.Username(username), "hash", username)
	require.NoError(t, err)
	require.NoError(t, f.users.Insert(context.Background(), u))
	return u
}

func (f *postFixture) addPost(t *testing.T, authorID, title string) *post.Post {
	t.Helper()
	p, err := post.New(authorID, title, "content", nil)
	require.NoError(t, err)
	require.NoError(t, f.posts.Insert(context.Background(), p))
	return p
}

func (f *postFixture) addComment(t *testing.T, postID, authorID, content string) *comment.Comment {
	t.Helper()
	c, err := comment.New(postID, authorID, content)
	require.NoError(t, err)
	require.NoError(t, f.comments.Insert(context.Background(), c))
	return c
}

func (f *postFixture) addLike(t *testing.T, targetID string, kind like.TargetKind, authorID string) *like.Like {
	t.Helper()
	l, err := like.New(targetID, kind, authorID)
	require.NoError(t, err)
	require.NoError(t, f.likes.Insert(context.Background(), l))
	return l
}

func TestGetPost_NoComments(t *testing.T) {
	f := newPostFixture()
	author := f.addUser(t, "alice")
	p := f.addPost(t, author.ID, "lonely post")

	result, err := f.handler.Handle(context.Background(), GetPostQuery{PostID: p.ID})
	require.NoError(t, err)

	assert.Equal(t, p.ID, result.ID)
	assert.Equal(t, "alice", result.AuthorUsername)
	assert.Equal(t, 0, result.Likes)
	assert.NotNil(t, result.Comments)
	assert.Empty(t, result.Comments)
}

func TestGetPost_UnknownPost(t *testing.T) {
	f := newPostFixture()
	viewer := f.addUser(t, "viewer")

	for _, viewerID := range []string{"", viewer.ID} {
		_, err := f.handler.Handle(context.Background(), GetPostQuery{PostID: "missing", ViewerID: viewerID})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	}
}

func TestGetPost_MissingPostAuthor(t *testing.T) {
	f := newPostFixture()
	p := f.addPost(t, "deleted-user", "orphaned")

	_, err := f.handler.Handle(context.Background(), GetPostQuery{PostID: p.ID})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGetPost_ViewerLikeState(t *testing.T) {
	f := newPostFixture()
	author := f.addUser(t, "author")
	u1 := f.addUser(t, "liker")
	u2 := f.addUser(t, "bystander")
	p := f.addPost(t, author.ID, "post")
	c := f.addComment(t, p.ID, author.ID, "a comment")
	l := f.addLike(t, c.ID, like.TargetComment, u1.ID)

	ctx := context.Background()

	// u1 liked the comment, so it sees its own like.
	result, err := f.handler.Handle(ctx, GetPostQuery{PostID: p.ID, ViewerID: u1.ID})
	require.NoError(t, err)
	require.Len(t, result.Comments, 1)
	assert.Equal(t, 1, result.Comments[0].Likes)
	assert.True(t, result.Comments[0].LikedByViewer)
	require.NotNil(t, result.Comments[0].ViewerLikeID)
	assert.Equal(t, l.ID, *result.Comments[0].ViewerLikeID)

	// u2 did not like it. The count is unchanged, the viewer state is off.
	result, err = f.handler.Handle(ctx, GetPostQuery{PostID: p.ID, ViewerID: u2.ID})
	require.NoError(t, err)
	require.Len(t, result.Comments, 1)
	assert.Equal(t, 1, result.Comments[0].Likes)
	assert.False(t, result.Comments[0].LikedByViewer)
	assert.Nil(t, result.Comments[0].ViewerLikeID)

	// Anonymous viewer, same thing.
	result, err = f.handler.Handle(ctx, GetPostQuery{PostID: p.ID})
	require.NoError(t, err)
	require.Len(t, result.Comments, 1)
	assert.False(t, result.Comments[0].LikedByViewer)
	assert.Nil(t, result.Comments[0].ViewerLikeID)
}

func TestGetPost_CommentsKeepInsertionOrder(t *testing.T) {
	f := newPostFixture()
	author := f.addUser(t, "author")
	liker := f.addUser(t, "liker")
	p := f.addPost(t, author.ID, "post")

	var ids []string
	for i := 0; i < 5; i++ {
		c := f.addComment(t, p.ID, author.ID, fmt.Sprintf("comment %d", i))
		ids = append(ids, c.ID)
	}
	// Like later comments first. Enrichment order must not leak into output.
	f.addLike(t, ids[4], like.TargetComment, liker.ID)
	f.addLike(t, ids[2], like.TargetComment, liker.ID)

	result, err := f.handler.Handle(context.Background(), GetPostQuery{PostID: p.ID, ViewerID: liker.ID})
	require.NoError(t, err)
	require.Len(t, result.Comments, 5)
	for i, entry := range result.Comments {
		assert.Equal(t, ids[i], entry.ID)
	}
	assert.Equal(t, 1, result.Comments[2].Likes)
	assert.Equal(t, 1, result.Comments[4].Likes)
	assert.Equal(t, 0, result.Comments[0].Likes)
}

func TestGetPost_MissingCommentAuthorFallsBackToUnknown(t *testing.T) {
	f := newPostFixture()
	author := f.addUser(t, "author")
	p := f.addPost(t, author.ID, "post")
	f.addComment(t, p.ID, "deleted-user", "orphaned comment")

	result, err := f.handler.Handle(context.Background(), GetPostQuery{PostID: p.ID})
	require.NoError(t, err)
	require.Len(t, result.Comments, 1)
	assert.Equal(t, "unknown", result.Comments[0].AuthorUsername)
}

func TestGetPost_PostLikeCount(t *testing.T) {
	f := newPostFixture()
	author := f.addUser(t, "author")
	u1 := f.addUser(t, "u1")
	u2 := f.addUser(t, "u2")
	p := f.addPost(t, author.ID, "post")
	f.addLike(t, p.ID, like.TargetPost, u1.ID)
	f.addLike(t, p.ID, like.TargetPost, u2.ID)

	result, err := f.handler.Handle(context.Background(), GetPostQuery{PostID: p.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Likes)
}
