package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
)

func TestMe(t *testing.T) {
	f := newPostFixture()
	h := NewMeHandler(f.users)
	u := f.addUser(t, "alice")

	view, err := h.Handle(context.Background(), MeQuery{UserID: u.ID})
	require.NoError(t, err)
	assert.Equal(t, "alice", view.Username)
}

func TestMe_UnknownUser(t *testing.T) {
	f := newPostFixture()
	h := NewMeHandler(f.users)

	_, err := h.Handle(context.Background(), MeQuery{UserID: "missing"})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestMe_EmptyID(t *testing.T) {
	f := newPostFixture()
	h := NewMeHandler(f.users)

	_, err := h.Handle(context.Background(), MeQuery{})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}
