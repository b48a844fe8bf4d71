package command

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dhaba/restaurant-pos/internal/user/domain"
	"github.com/dhaba/restaurant-pos/pkg/auth"
)

// LoginUserCommand represents the command to log in a staff member
type LoginUserCommand struct {
	Username string
	Password string
}

// LoginResult is returned on a successful login
type LoginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// LoginUserHandler handles login command
type LoginUserHandler struct {
	repo domain.UserRepository
}

// NewLoginUserHandler creates a new login handler
func NewLoginUserHandler(repo domain.UserRepository) *LoginUserHandler {
	return &LoginUserHandler{repo: repo}
}

// Handle executes the login command
func (h *LoginUserHandler) Handle(cmd LoginUserCommand) (*LoginResult, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	user, err := h.repo.FindByUsername(cmd.Username)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(cmd.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := auth.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResult{Token: token, User: user}, nil
}
