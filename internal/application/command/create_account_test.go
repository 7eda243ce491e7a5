package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
	"github.com/pulseboard/pulseboard-backend/internal/infrastructure/persistence/memory"
)

// fakeHasher marks hashes deterministically so tests can assert without
// paying for bcrypt.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Compare(hash, password string) bool { return hash == "hashed:"+password }

func TestCreateAccount(t *testing.T) {
	users := memory.NewUserRepository()
	h := NewCreateAccountHandler(users, fakeHasher{}, shared.NopPublisher{})

	view, err := h.Handle(context.Background(), CreateAccountCommand{
		Username:    "alice",
		Password:    "s3cret",
		DisplayName: "Alice",
		Bio:         "hi there",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", view.Username)
	assert.Equal(t, "Alice", view.DisplayName)
	assert.Equal(t, "hi there", view.Bio)

	stored, err := users.FindByID(context.Background(), view.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "hashed:s3cret", stored.PasswordHash)
}

func TestCreateAccount_DuplicateUsername(t *testing.T) {
	users := memory.NewUserRepository()
	h := NewCreateAccountHandler(users, fakeHasher{}, shared.NopPublisher{})
	ctx := context.Background()

	_, err := h.Handle(ctx, CreateAccountCommand{Username: "alice", Password: "one"})
	require.NoError(t, err)

	_, err = h.Handle(ctx, CreateAccountCommand{Username: "alice", Password: "two"})
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
}

func TestCreateAccount_MissingFields(t *testing.T) {
	h := NewCreateAccountHandler(memory.NewUserRepository(), fakeHasher{}, shared.NopPublisher{})
	ctx := context.Background()

	_, err := h.Handle(ctx, CreateAccountCommand{Password: "pw"})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = h.Handle(ctx, CreateAccountCommand{Username: "alice"})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	users := memory.NewUserRepository()
	create := NewCreateAccountHandler(users, fakeHasher{}, shared.NopPublisher{})
	login := NewLoginHandler(users, fakeHasher{}, staticTokens{})
	ctx := context.Background()

	_, err := create.Handle(ctx, CreateAccountCommand{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	result, err := login.Handle(ctx, LoginCommand{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", result.User.Username)
	assert.Equal(t, "access", result.Tokens.AccessToken)
}

func TestLogin_BadCredentials(t *testing.T) {
	users := memory.NewUserRepository()
	create := NewCreateAccountHandler(users, fakeHasher{}, shared.NopPublisher{})
	login := NewLoginHandler(users, fakeHasher{}, staticTokens{})
	ctx := context.Background()

	_, err := create.Handle(ctx, CreateAccountCommand{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	// Wrong password and unknown user fail identically.
	_, err = login.Handle(ctx, LoginCommand{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, shared.ErrUnauthorized)

	_, err = login.Handle(ctx, LoginCommand{Username: "nobody", Password: "s3cret"})
	assert.ErrorIs(t, err, shared.ErrUnauthorized)
}

type staticTokens struct{}

func (staticTokens) Issue(context.Context, string) (*TokenPair, error) {
	return &TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
}
