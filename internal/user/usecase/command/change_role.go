package command

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/user/domain"
)

// ChangeRoleCommand represents the command to change a staff member's role
type ChangeRoleCommand struct {
	UserID uint
	Role   string
}

// ChangeRoleHandler handles change role command
type ChangeRoleHandler struct {
	repo domain.UserRepository
}

// NewChangeRoleHandler creates a new change role handler
func NewChangeRoleHandler(repo domain.UserRepository) *ChangeRoleHandler {
	return &ChangeRoleHandler{repo: repo}
}

// Handle executes the change role command
func (h *ChangeRoleHandler) Handle(cmd ChangeRoleCommand) error {
	if cmd.UserID == 0 {
		return fmt.Errorf("user id is required")
	}
	if cmd.Role != domain.RoleStaff && cmd.Role != domain.RoleAdmin {
		return fmt.Errorf("invalid role: %s", cmd.Role)
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	user.Role = cmd.Role
	if err := h.repo.Update(user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}
