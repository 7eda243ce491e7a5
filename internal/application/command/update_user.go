package command

import (
	"context"
	"fmt"

	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
	"github.com/pulseboard/pulseboard-backend/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// UPDATE USER / UPDATE PASSWORD COMMANDS
// Both operate on the authenticated caller's own record; the boundary layer
// supplies UserID from the verified token, so no ownership comparison is
// needed here.
// ══════════════════════════════════════════════════════════════════════════════

// UpdateUserCommand contains the mutable profile fields.
type UpdateUserCommand struct {
	UserID      string
	DisplayName string
	Bio         string
}

// UpdateUserHandler handles UpdateUserCommand.
type UpdateUserHandler struct {
	userRepo user.Repository
}

// NewUpdateUserHandler creates a new UpdateUserHandler.
func NewUpdateUserHandler(userRepo user.Repository) *UpdateUserHandler {
	return &UpdateUserHandler{userRepo: userRepo}
}

// Handle replaces the profile attributes of the caller's record. Username
// stays immutable.
func (h *UpdateUserHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*user.View, error) {
	if cmd.UserID == "" {
		return nil, shared.NewDomainError("user", "UpdateUser", shared.ErrInvalidInput, "user id is required")
	}

	u, err := h.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("update_user: fetch user: %w", err)
	}
	if u == nil {
		return nil, shared.NotFound("user", "UpdateUser", "user with id %s not found", cmd.UserID)
	}

	u.UpdateProfile(cmd.DisplayName, cmd.Bio)

	updated, err := h.userRepo.Update(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("update_user: update: %w", err)
	}

	v := updated.ToView()
	return &v, nil
}

// UpdateUserPasswordCommand carries a password change request.
type UpdateUserPasswordCommand struct {
	UserID          string
	CurrentPassword string
	NewPassword     string
}

// Validate validates the command.
func (c UpdateUserPasswordCommand) Validate() error {
	if c.UserID == "" {
		return shared.NewDomainError("user", "UpdatePassword", shared.ErrInvalidInput, "user id is required")
	}
	if c.CurrentPassword == "" || c.NewPassword == "" {
		return shared.NewDomainError("user", "UpdatePassword", shared.ErrInvalidInput, "current and new passwords are required")
	}
	return nil
}

// UpdateUserPasswordHandler handles UpdateUserPasswordCommand.
type UpdateUserPasswordHandler struct {
	userRepo user.Repository
	hasher   PasswordHasher
}

// NewUpdateUserPasswordHandler creates a new UpdateUserPasswordHandler.
func NewUpdateUserPasswordHandler(userRepo user.Repository, hasher PasswordHasher) *UpdateUserPasswordHandler {
	return &UpdateUserPasswordHandler{userRepo: userRepo, hasher: hasher}
}

// Handle verifies the current password and stores the new hash.
func (h *UpdateUserPasswordHandler) Handle(ctx context.Context, cmd UpdateUserPasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	u, err := h.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return fmt.Errorf("update_password: fetch user: %w", err)
	}
	if u == nil {
		return shared.NotFound("user", "UpdatePassword", "user with id %s not found", cmd.UserID)
	}

	if !h.hasher.Compare(u.PasswordHash, cmd.CurrentPassword) {
		return shared.Forbidden("user", "UpdatePassword", "current password does not match")
	}

	hash, err := h.hasher.Hash(cmd.NewPassword)
	if err != nil {
		return fmt.Errorf("update_password: hash password: %w", err)
	}
	if err := u.ChangePassword(hash); err != nil {
		return shared.WrapError("user", "UpdatePassword", shared.ErrInvalidInput, "invalid password", err)
	}

	if _, err := h.userRepo.Update(ctx, u); err != nil {
		return fmt.Errorf("update_password: update: %w", err)
	}
	return nil
}
