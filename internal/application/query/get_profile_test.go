package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseboard/pulseboard-backend/internal/domain/follow"
	"github.com/pulseboard/pulseboard-backend/internal/domain/like"
	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
	"github.com/pulseboard/pulseboard-backend/internal/infrastructure/persistence/memory"
)

type profileFixture struct {
	*postFixture
	follows *memory.FollowRepository
	handler *GetProfileHandler
}

func newProfileFixture() *profileFixture {
	base := newPostFixture()
	f := &profileFixture{
		postFixture: base,
		follows:     memory.NewFollowRepository(),
	}
	f.handler = NewGetProfileHandler(base.users, base.posts, base.comments, base.likes, f.follows)
	return f
}

func (f *profileFixture) addFollow(t *testing.T, followerID, followingID string) *follow.Follow {
	t.Helper()
	fl, err := follow.New(followerID, followingID)
	require.NoError(t, err)
	require.NoError(t, f.follows.Insert(context.Background(), fl))
	return fl
}

func TestGetProfile_UnknownUser(t *testing.T) {
	f := newProfileFixture()

	_, err := f.handler.Handle(context.Background(), GetProfileQuery{Username: "ghost"})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGetProfile_EmptyProfile(t *testing.T) {
	f := newProfileFixture()
	f.addUser(t, "newcomer")

	result, err := f.handler.Handle(context.Background(), GetProfileQuery{Username: "newcomer"})
	require.NoError(t, err)

	assert.Equal(t, "newcomer", result.Username)
	assert.NotNil(t, result.Posts)
	assert.Empty(t, result.Posts)
	assert.Equal(t, 0, result.CommentCount)
	assert.Equal(t, 0, result.LikesReceived)
	assert.Equal(t, 0, result.Followers)
	assert.Equal(t, 0, result.Following)
	assert.False(t, result.FollowedByViewer)
	assert.Nil(t, result.ViewerFollowID)
}

func TestGetProfile_Counts(t *testing.T) {
	f := newProfileFixture()
	owner := f.addUser(t, "owner")
	fan := f.addUser(t, "fan")
	other := f.addUser(t, "other")

	p1 := f.addPost(t, owner.ID, "first")
	p2 := f.addPost(t, owner.ID, "second")
	foreign := f.addPost(t, other.ID, "not mine")

	c := f.addComment(t, p1.ID, owner.ID, "self reply")
	f.addComment(t, p2.ID, fan.ID, "nice one")

	// Likes received: two on posts, one on the owner's own comment.
	f.addLike(t, p1.ID, like.TargetPost, fan.ID)
	f.addLike(t, p1.ID, like.TargetPost, other.ID)
	f.addLike(t, c.ID, like.TargetComment, fan.ID)
	// A like on someone else's content does not count.
	f.addLike(t, foreign.ID, like.TargetPost, owner.ID)

	f.addFollow(t, fan.ID, owner.ID)
	f.addFollow(t, other.ID, owner.ID)
	f.addFollow(t, owner.ID, fan.ID)

	result, err := f.handler.Handle(context.Background(), GetProfileQuery{Username: "owner"})
	require.NoError(t, err)

	assert.Len(t, result.Posts, 2)
	assert.Equal(t, "first", result.Posts[0].Title)
	assert.Equal(t, "second", result.Posts[1].Title)
	assert.Equal(t, 1, result.CommentCount)
	assert.Equal(t, 3, result.LikesReceived)
	assert.Equal(t, 2, result.Followers)
	assert.Equal(t, 1, result.Following)
}

func TestGetProfile_ViewerFollowState(t *testing.T) {
	f := newProfileFixture()
	owner := f.addUser(t, "owner")
	fan := f.addUser(t, "fan")
	stranger := f.addUser(t, "stranger")
	fl := f.addFollow(t, fan.ID, owner.ID)

	ctx := context.Background()

	result, err := f.handler.Handle(ctx, GetProfileQuery{Username: "owner", ViewerID: fan.ID})
	require.NoError(t, err)
	assert.True(t, result.FollowedByViewer)
	require.NotNil(t, result.ViewerFollowID)
	assert.Equal(t, fl.ID, *result.ViewerFollowID)

	result, err = f.handler.Handle(ctx, GetProfileQuery{Username: "owner", ViewerID: stranger.ID})
	require.NoError(t, err)
	assert.False(t, result.FollowedByViewer)
	assert.Nil(t, result.ViewerFollowID)

	// Viewing your own profile never reports a self-follow.
	result, err = f.handler.Handle(ctx, GetProfileQuery{Username: "owner", ViewerID: owner.ID})
	require.NoError(t, err)
	assert.False(t, result.FollowedByViewer)
	assert.Nil(t, result.ViewerFollowID)
}
