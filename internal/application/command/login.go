package command

import (
	"context"
	"fmt"

	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
	"github.com/pulseboard/pulseboard-backend/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// LOGIN COMMAND
// ══════════════════════════════════════════════════════════════════════════════

// LoginCommand contains the credentials.
type LoginCommand struct {
	Username string
	Password string
}

// Validate validates the command.
func (c LoginCommand) Validate() error {
	if c.Username == "" || c.Password == "" {
		return shared.NewDomainError("user", "Login", shared.ErrInvalidInput, "username and password are required")
	}
	return nil
}

// LoginResult carries the authenticated user and their tokens.
type LoginResult struct {
	User   user.View  `json:"user"`
	Tokens *TokenPair `json:"tokens"`
}

// LoginHandler handles LoginCommand.
type LoginHandler struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(userRepo user.Repository, hasher PasswordHasher, tokens TokenIssuer) *LoginHandler {
	return &LoginHandler{userRepo: userRepo, hasher: hasher, tokens: tokens}
}

// Handle verifies the credentials and issues a token pair. A wrong password
// and an unknown username both surface as unauthorized so that the response
// does not reveal which usernames exist.
func (h *LoginHandler) Handle(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	u, err := h.userRepo.FindByUsername(ctx, user.Username(cmd.Username))
	if err != nil {
		return nil, fmt.Errorf("login: fetch user: %w", err)
	}
	if u == nil || !h.hasher.Compare(u.PasswordHash, cmd.Password) {
		return nil, shared.NewDomainError("user", "Login", shared.ErrUnauthorized, "invalid credentials")
	}

	pair, err := h.tokens.Issue(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("login: issue tokens: %w", err)
	}

	return &LoginResult{User: u.ToView(), Tokens: pair}, nil
}
