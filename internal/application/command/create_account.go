package command

import (
	"context"
	"fmt"

	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
	"github.com/pulseboard/pulseboard-backend/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// CREATE ACCOUNT COMMAND
// ══════════════════════════════════════════════════════════════════════════════

// CreateAccountCommand contains the data to register a user. DTO shape checks
// (password strength, formats) happen at the boundary; here only domain
// existence and required fields are verified.
type CreateAccountCommand struct {
	Username    string
	Password    string
	DisplayName string
	Bio         string
}

// Validate validates the command.
func (c CreateAccountCommand) Validate() error {
	if c.Username == "" {
		return shared.NewDomainError("user", "CreateAccount", shared.ErrInvalidInput, "username is required")
	}
	if c.Password == "" {
		return shared.NewDomainError("user", "CreateAccount", shared.ErrInvalidInput, "password is required")
	}
	return nil
}

// CreateAccountHandler handles CreateAccountCommand.
type CreateAccountHandler struct {
	userRepo user.Repository
	hasher   PasswordHasher
	events   shared.EventPublisher
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(userRepo user.Repository, hasher PasswordHasher, events shared.EventPublisher) *CreateAccountHandler {
	return &CreateAccountHandler{userRepo: userRepo, hasher: hasher, events: events}
}

// Handle registers a new account. Usernames are unique business keys.
func (h *CreateAccountHandler) Handle(ctx context.Context, cmd CreateAccountCommand) (*user.View, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	existing, err := h.userRepo.FindByUsername(ctx, user.Username(cmd.Username))
	if err != nil {
		return nil, fmt.Errorf("create_account: check username: %w", err)
	}
	if existing != nil {
		return nil, shared.NewDomainError("user", "CreateAccount", shared.ErrAlreadyExists,
			fmt.Sprintf("username %s is already taken", cmd.Username))
	}

	hash, err := h.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("create_account: hash password: %w", err)
	}

	u, err := user.New(user.Username(cmd.Username), hash, cmd.DisplayName)
	if err != nil {
		return nil, shared.WrapError("user", "CreateAccount", shared.ErrInvalidInput, "invalid user", err)
	}
	u.Bio = cmd.Bio

	if err := h.userRepo.Insert(ctx, u); err != nil {
		return nil, fmt.Errorf("create_account: insert user: %w", err)
	}

	// Best-effort: a failed event must not fail the registration.
	_ = h.events.Publish(ctx, shared.UserRegisteredEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventUserRegistered, u.ID),
		Username:  u.Username.String(),
	})

	v := u.ToView()
	return &v, nil
}
