package query

import (
	"context"
	"fmt"

	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
	"github.com/pulseboard/pulseboard-backend/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// ME QUERY
// Returns the authenticated user's own plain view.
// ══════════════════════════════════════════════════════════════════════════════

// MeQuery contains the parameters of the self-lookup.
type MeQuery struct {
	// UserID - the authenticated user's id.
	UserID string
}

// Validate validates the query.
func (q MeQuery) Validate() error {
	if q.UserID == "" {
		return shared.NewDomainError("user", "Me", shared.ErrInvalidInput, "user id is required")
	}
	return nil
}

// MeHandler handles MeQuery.
type MeHandler struct {
	userRepo user.Repository
}

// NewMeHandler creates a new MeHandler.
func NewMeHandler(userRepo user.Repository) *MeHandler {
	return &MeHandler{userRepo: userRepo}
}

// Handle returns the view of the requesting user.
func (h *MeHandler) Handle(ctx context.Context, q MeQuery) (*user.View, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	u, err := h.userRepo.FindByID(ctx, q.UserID)
	if err != nil {
		return nil, fmt.Errorf("me: fetch user: %w", err)
	}
	if u == nil {
		return nil, shared.NotFound("user", "Me", "user with id %s not found", q.UserID)
	}
	v := u.ToView()
	return &v, nil
}
