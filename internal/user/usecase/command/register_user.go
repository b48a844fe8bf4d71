package command

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dhaba/restaurant-pos/internal/user/domain"
)

// RegisterUserCommand represents the command to register a staff account
type RegisterUserCommand struct {
	Username string
	Email    string
	Password string
	FullName string
	Role     string
}

// RegisterUserHandler handles register user command
type RegisterUserHandler struct {
	repo domain.UserRepository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

// Handle executes the register user command
func (h *RegisterUserHandler) Handle(cmd RegisterUserCommand) (*domain.User, error) {
	if cmd.Username == "" || cmd.Email == "" || cmd.Password == "" {
		return nil, fmt.Errorf("username, email and password are required")
	}

	if _, err := h.repo.FindByUsername(cmd.Username); err == nil {
		return nil, fmt.Errorf("username already taken")
	}
	if _, err := h.repo.FindByEmail(cmd.Email); err == nil {
		return nil, fmt.Errorf("email already registered")
	}

	role := cmd.Role
	if role == "" {
		role = domain.RoleStaff
	}
	if role != domain.RoleStaff && role != domain.RoleAdmin {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username: cmd.Username,
		Email:    cmd.Email,
		Password: string(hashed),
		FullName: cmd.FullName,
		Role:     role,
	}

	if err := h.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
