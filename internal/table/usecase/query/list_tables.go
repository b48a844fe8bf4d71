package query

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/table/domain"
)

// ListTablesQuery represents the query to list tables, optionally by status
type ListTablesQuery struct {
	Status string
}

// ListTablesHandler handles list tables query
type ListTablesHandler struct {
	repo domain.TableRepository
}

// NewListTablesHandler creates a new list tables handler
func NewListTablesHandler(repo domain.TableRepository) *ListTablesHandler {
	return &ListTablesHandler{repo: repo}
}

// Handle executes the list tables query
func (h *ListTablesHandler) Handle(query ListTablesQuery) ([]domain.Table, error) {
	if query.Status != "" {
		if !domain.ValidStatus(query.Status) {
			return nil, fmt.Errorf("invalid status: %s", query.Status)
		}
		tables, err := h.repo.FindByStatus(query.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to list tables: %w", err)
		}
		return tables, nil
	}

	tables, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return tables, nil
}
