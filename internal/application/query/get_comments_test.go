package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
)

func TestCommentListings_ByPost(t *testing.T) {
	f := newPostFixture()
	q := NewCommentQueries(f.comments)
	ctx := context.Background()

	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	p1 := f.addPost(t, alice.ID, "first")
	p2 := f.addPost(t, alice.ID, "second")

	c1 := f.addComment(t, p1.ID, alice.ID, "opening remark")
	c2 := f.addComment(t, p1.ID, bob.ID, "a reply")
	f.addComment(t, p2.ID, bob.ID, "elsewhere")

	views, err := q.ByPost(ctx, p1.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, c1.ID, views[0].ID)
	assert.Equal(t, c2.ID, views[1].ID)
}

func TestCommentListings_ByAuthor(t *testing.T) {
	f := newPostFixture()
	q := NewCommentQueries(f.comments)
	ctx := context.Background()

	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	p1 := f.addPost(t, alice.ID, "first")
	p2 := f.addPost(t, alice.ID, "second")

	c1 := f.addComment(t, p1.ID, bob.ID, "here")
	f.addComment(t, p1.ID, alice.ID, "not bob")
	c2 := f.addComment(t, p2.ID, bob.ID, "and here")

	views, err := q.ByAuthor(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, c1.ID, views[0].ID)
	assert.Equal(t, c2.ID, views[1].ID)
}

func TestCommentListings_ByContent(t *testing.T) {
	f := newPostFixture()
	q := NewCommentQueries(f.comments)
	ctx := context.Background()

	alice := f.addUser(t, "alice")
	p := f.addPost(t, alice.ID, "post")

	match := f.addComment(t, p.ID, alice.ID, "the quick brown fox")
	f.addComment(t, p.ID, alice.ID, "something else entirely")

	views, err := q.ByContent(ctx, "quick brown")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, match.ID, views[0].ID)
}

func TestCommentListings_ByAuthorInPost(t *testing.T) {
	f := newPostFixture()
	q := NewCommentQueries(f.comments)
	ctx := context.Background()

	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	p1 := f.addPost(t, alice.ID, "first")
	p2 := f.addPost(t, alice.ID, "second")

	// Only the comment matching both the post and the author qualifies.
	match := f.addComment(t, p1.ID, bob.ID, "both match")
	f.addComment(t, p1.ID, alice.ID, "wrong author")
	f.addComment(t, p2.ID, bob.ID, "wrong post")

	views, err := q.ByAuthorInPost(ctx, p1.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, match.ID, views[0].ID)
}

func TestCommentListings_EmptyResult(t *testing.T) {
	f := newPostFixture()
	q := NewCommentQueries(f.comments)
	ctx := context.Background()

	alice := f.addUser(t, "alice")
	p := f.addPost(t, alice.ID, "quiet post")

	byPost, err := q.ByPost(ctx, p.ID)
	require.NoError(t, err)
	assert.NotNil(t, byPost)
	assert.Empty(t, byPost)

	byAuthor, err := q.ByAuthor(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, byAuthor)

	byContent, err := q.ByContent(ctx, "nothing says this")
	require.NoError(t, err)
	assert.Empty(t, byContent)

	both, err := q.ByAuthorInPost(ctx, p.ID, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, both)
}

func TestCommentListings_MissingFilter(t *testing.T) {
	f := newPostFixture()
	q := NewCommentQueries(f.comments)
	ctx := context.Background()

	_, err := q.ByPost(ctx, "")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = q.ByAuthor(ctx, "")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = q.ByContent(ctx, "")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = q.ByAuthorInPost(ctx, "p", "")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}
