package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseboard/pulseboard-backend/internal/domain/comment"
	"github.com/pulseboard/pulseboard-backend/internal/domain/like"
	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
	"github.com/pulseboard/pulseboard-backend/internal/infrastructure/persistence/memory"
)

type likeFixture struct {
	likes    *memory.LikeRepository
	posts    *memory.PostRepository
	comments *memory.CommentRepository
	like     *LikeHandler
	unlike   *UnlikeHandler
}

func newLikeFixture() *likeFixture {
	f := &likeFixture{
		likes:    memory.NewLikeRepository(),
		posts:    memory.NewPostRepository(),
		comments: memory.NewCommentRepository(),
	}
	f.like = NewLikeHandler(f.likes, f.posts, f.comments)
	f.unlike = NewUnlikeHandler(f.likes)
	return f
}

func TestLike_Post(t *testing.T) {
	f := newLikeFixture()
	ctx := context.Background()
	p := seedPost(t, f.posts, "author-1", "likeable")

	view, err := f.like.Handle(ctx, LikeCommand{TargetID: p.ID, TargetKind: like.TargetPost, AuthorID: "fan-1"})
	require.NoError(t, err)
	assert.Equal(t, p.ID, view.TargetID)
	assert.Equal(t, "fan-1", view.AuthorID)

	n, err := f.likes.CountByPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLike_Comment(t *testing.T) {
	f := newLikeFixture()
	ctx := context.Background()
	p := seedPost(t, f.posts, "author-1", "post")
	c, err := comment.New(p.ID, "author-1", "comment")
	require.NoError(t, err)
	require.NoError(t, f.comments.Insert(ctx, c))

	_, err = f.like.Handle(ctx, LikeCommand{TargetID: c.ID, TargetKind: like.TargetComment, AuthorID: "fan-1"})
	require.NoError(t, err)

	n, err := f.likes.CountByComment(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLike_DuplicateSameAuthor(t *testing.T) {
	f := newLikeFixture()
	ctx := context.Background()
	p := seedPost(t, f.posts, "author-1", "post")

	_, err := f.like.Handle(ctx, LikeCommand{TargetID: p.ID, TargetKind: like.TargetPost, AuthorID: "fan-1"})
	require.NoError(t, err)

	_, err = f.like.Handle(ctx, LikeCommand{TargetID: p.ID, TargetKind: like.TargetPost, AuthorID: "fan-1"})
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)

	// A different user can still like the same target.
	_, err = f.like.Handle(ctx, LikeCommand{TargetID: p.ID, TargetKind: like.TargetPost, AuthorID: "fan-2"})
	assert.NoError(t, err)
}

func TestLike_UnknownTarget(t *testing.T) {
	f := newLikeFixture()
	ctx := context.Background()

	_, err := f.like.Handle(ctx, LikeCommand{TargetID: "missing", TargetKind: like.TargetPost, AuthorID: "fan-1"})
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = f.like.Handle(ctx, LikeCommand{TargetID: "missing", TargetKind: like.TargetComment, AuthorID: "fan-1"})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestLike_InvalidKind(t *testing.T) {
	f := newLikeFixture()

	_, err := f.like.Handle(context.Background(), LikeCommand{TargetID: "x", TargetKind: "story", AuthorID: "fan-1"})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestUnlike(t *testing.T) {
	f := newLikeFixture()
	ctx := context.Background()
	p := seedPost(t, f.posts, "author-1", "post")

	view, err := f.like.Handle(ctx, LikeCommand{TargetID: p.ID, TargetKind: like.TargetPost, AuthorID: "fan-1"})
	require.NoError(t, err)

	// Only the like's author may remove it.
	err = f.unlike.Handle(ctx, UnlikeCommand{LikeID: view.ID, RequesterID: "someone-else"})
	assert.ErrorIs(t, err, shared.ErrForbidden)

	require.NoError(t, f.unlike.Handle(ctx, UnlikeCommand{LikeID: view.ID, RequesterID: "fan-1"}))

	n, err := f.likes.CountByPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	err = f.unlike.Handle(ctx, UnlikeCommand{LikeID: view.ID, RequesterID: "fan-1"})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
