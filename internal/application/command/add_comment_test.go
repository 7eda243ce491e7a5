package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
	"github.com/pulseboard/pulseboard-backend/internal/infrastructure/persistence/memory"
)

type commentFixture struct {
	users    *memory.UserRepository
	posts    *memory.PostRepository
	comments *memory.CommentRepository
	add      *AddCommentHandler
	update   *UpdateCommentHandler
	remove   *DeleteCommentHandler
}

func newCommentFixture() *commentFixture {
	f := &commentFixture{
		users:    memory.NewUserRepository(),
		posts:    memory.NewPostRepository(),
		comments: memory.NewCommentRepository(),
	}
	f.add = NewAddCommentHandler(f.comments, f.posts, f.users, shared.NopPublisher{})
	f.update = NewUpdateCommentHandler(f.comments)
	f.remove = NewDeleteCommentHandler(f.comments)
	return f
}

func TestAddComment(t *testing.T) {
	f := newCommentFixture()
	ctx := context.Background()
	u := seedUser(t, f.users, "commenter")
	p := seedPost(t, f.posts, u.ID, "post")

	view, err := f.add.Handle(ctx, AddCommentCommand{PostID: p.ID, AuthorID: u.ID, Content: "first!"})
	require.NoError(t, err)
	assert.Equal(t, p.ID, view.PostID)
	assert.Equal(t, "first!", view.Content)

	list, err := f.comments.FindByPostID(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAddComment_UnknownPost(t *testing.T) {
	f := newCommentFixture()
	u := seedUser(t, f.users, "commenter")

	_, err := f.add.Handle(context.Background(), AddCommentCommand{PostID: "missing", AuthorID: u.ID, Content: "hi"})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestAddComment_UnknownAuthor(t *testing.T) {
	f := newCommentFixture()
	p := seedPost(t, f.posts, "someone", "post")

	_, err := f.add.Handle(context.Background(), AddCommentCommand{PostID: p.ID, AuthorID: "ghost", Content: "hi"})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestUpdateComment_Ownership(t *testing.T) {
	f := newCommentFixture()
	ctx := context.Background()
	u := seedUser(t, f.users, "commenter")
	p := seedPost(t, f.posts, u.ID, "post")

	view, err := f.add.Handle(ctx, AddCommentCommand{PostID: p.ID, AuthorID: u.ID, Content: "typo"})
	require.NoError(t, err)

	_, err = f.update.Handle(ctx, UpdateCommentCommand{CommentID: view.ID, RequesterID: "intruder", Content: "hijacked"})
	assert.ErrorIs(t, err, shared.ErrForbidden)

	fixed, err := f.update.Handle(ctx, UpdateCommentCommand{CommentID: view.ID, RequesterID: u.ID, Content: "fixed"})
	require.NoError(t, err)
	assert.Equal(t, "fixed", fixed.Content)
}

func TestDeleteComment_Ownership(t *testing.T) {
	f := newCommentFixture()
	ctx := context.Background()
	u := seedUser(t, f.users, "commenter")
	p := seedPost(t, f.posts, u.ID, "post")

	view, err := f.add.Handle(ctx, AddCommentCommand{PostID: p.ID, AuthorID: u.ID, Content: "bye"})
	require.NoError(t, err)

	err = f.remove.Handle(ctx, DeleteCommentCommand{CommentID: view.ID, RequesterID: "intruder"})
	assert.ErrorIs(t, err, shared.ErrForbidden)

	require.NoError(t, f.remove.Handle(ctx, DeleteCommentCommand{CommentID: view.ID, RequesterID: u.ID}))

	err = f.remove.Handle(ctx, DeleteCommentCommand{CommentID: view.ID, RequesterID: u.ID})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
