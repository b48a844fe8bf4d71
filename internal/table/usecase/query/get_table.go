package query

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/table/domain"
)

// GetTableQuery represents the query to get a table by ID
type GetTableQuery struct {
	TableID uint
}

// GetTableHandler handles get table query
type GetTableHandler struct {
	repo domain.TableRepository
}

// NewGetTableHandler creates a new get table handler
func NewGetTableHandler(repo domain.TableRepository) *GetTableHandler {
	return &GetTableHandler{repo: repo}
}

// Handle executes the get table query
func (h *GetTableHandler) Handle(query GetTableQuery) (*domain.Table, error) {
	if query.TableID == 0 {
		return nil, fmt.Errorf("table id is required")
	}

	table, err := h.repo.FindByID(query.TableID)
	if err != nil {
		return nil, fmt.Errorf("table not found: %w", err)
	}

	return table, nil
}
