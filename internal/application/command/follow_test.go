package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
	"github.com/pulseboard/pulseboard-backend/internal/infrastructure/persistence/memory"
)

type followFixture struct {
	users    *memory.UserRepository
	follows  *memory.FollowRepository
	follow   *FollowHandler
	unfollow *UnfollowHandler
}

func newFollowFixture() *followFixture {
	f := &followFixture{
		users:   memory.NewUserRepository(),
		follows: memory.NewFollowRepository(),
	}
	f.follow = NewFollowHandler(f.follows, f.users, shared.NopPublisher{})
	f.unfollow = NewUnfollowHandler(f.follows)
	return f
}

func TestFollow(t *testing.T) {
	f := newFollowFixture()
	ctx := context.Background()
	alice := seedUser(t, f.users, "alice")
	bob := seedUser(t, f.users, "bob")

	view, err := f.follow.Handle(ctx, FollowCommand{FollowerID: alice.ID, FollowingID: bob.ID})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, view.FollowerID)
	assert.Equal(t, bob.ID, view.FollowingID)

	n, err := f.follows.CountFollowers(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFollow_Self(t *testing.T) {
	f := newFollowFixture()
	alice := seedUser(t, f.users, "alice")

	_, err := f.follow.Handle(context.Background(), FollowCommand{FollowerID: alice.ID, FollowingID: alice.ID})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestFollow_Duplicate(t *testing.T) {
	f := newFollowFixture()
	ctx := context.Background()
	alice := seedUser(t, f.users, "alice")
	bob := seedUser(t, f.users, "bob")

	_, err := f.follow.Handle(ctx, FollowCommand{FollowerID: alice.ID, FollowingID: bob.ID})
	require.NoError(t, err)

	_, err = f.follow.Handle(ctx, FollowCommand{FollowerID: alice.ID, FollowingID: bob.ID})
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)

	// The reverse direction is a distinct pair.
	_, err = f.follow.Handle(ctx, FollowCommand{FollowerID: bob.ID, FollowingID: alice.ID})
	assert.NoError(t, err)
}

func TestFollow_UnknownUsers(t *testing.T) {
	f := newFollowFixture()
	ctx := context.Background()
	alice := seedUser(t, f.users, "alice")

	_, err := f.follow.Handle(ctx, FollowCommand{FollowerID: alice.ID, FollowingID: "ghost"})
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = f.follow.Handle(ctx, FollowCommand{FollowerID: "ghost", FollowingID: alice.ID})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestUnfollow(t *testing.T) {
	f := newFollowFixture()
	ctx := context.Background()
	alice := seedUser(t, f.users, "alice")
	bob := seedUser(t, f.users, "bob")

	_, err := f.follow.Handle(ctx, FollowCommand{FollowerID: alice.ID, FollowingID: bob.ID})
	require.NoError(t, err)

	require.NoError(t, f.unfollow.Handle(ctx, UnfollowCommand{FollowerID: alice.ID, FollowingID: bob.ID}))

	n, err := f.follows.CountFollowers(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	err = f.unfollow.Handle(ctx, UnfollowCommand{FollowerID: alice.ID, FollowingID: bob.ID})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
