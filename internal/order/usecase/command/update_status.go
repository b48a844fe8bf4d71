package command

import (
	"context"
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/order/domain"
	tabledomain "github.com/dhaba/restaurant-pos/internal/table/domain"
	"github.com/dhaba/restaurant-pos/kafka"
	"github.com/dhaba/restaurant-pos/pkg/logger"
)

// UpdateStatusCommand moves an order through the kitchen pipeline
type UpdateStatusCommand struct {
	OrderID uint
	Status  string
}

// contextUpdater is satisfied by repositories that record spans around
// the load and save (the traced gorm repository does).
type contextUpdater interface {
	FindByIDWithContext(ctx context.Context, id uint) (*domain.Order, error)
	UpdateWithContext(ctx context.Context, order *domain.Order) error
}

// UpdateStatusHandler handles update status command
type UpdateStatusHandler struct {
	repo      domain.OrderRepository
	tables    domain.TableGateway
	publisher domain.EventPublisher
}

// NewUpdateStatusHandler creates a new update status handler
func NewUpdateStatusHandler(repo domain.OrderRepository, tables domain.TableGateway, publisher domain.EventPublisher) *UpdateStatusHandler {
	return &UpdateStatusHandler{
		repo:      repo,
		tables:    tables,
		publisher: publisher,
	}
}

// stageForStatus maps kitchen progress onto the floor-plan stage
func stageForStatus(status string) string {
	switch status {
	case domain.StatusPreparing:
		return tabledomain.StagePreparing
	case domain.StatusReady:
		return tabledomain.StageServed
	default:
		return ""
	}
}

// Handle executes the update status command
func (h *UpdateStatusHandler) Handle(ctx context.Context, cmd UpdateStatusCommand) (*domain.Order, error) {
	if cmd.OrderID == 0 {
		return nil, fmt.Errorf("order id is required")
	}

	traced, isTraced := h.repo.(contextUpdater)

	var order *domain.Order
	var err error
	if isTraced {
		order, err = traced.FindByIDWithContext(ctx, cmd.OrderID)
	} else {
		order, err = h.repo.FindByID(cmd.OrderID)
	}
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}

	from := order.Status
	if err := order.Transition(cmd.Status); err != nil {
		return nil, err
	}

	if isTraced {
		err = traced.UpdateWithContext(ctx, order)
	} else {
		err = h.repo.Update(order)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	// Mirror kitchen progress onto the table's floor-plan stage
	if stage := stageForStatus(order.Status); stage != "" && order.TableNumber > 0 && h.tables != nil {
		if err := h.tables.SetStageForTable(order.TableNumber, stage); err != nil {
			logger.Logger.Error().
				Err(err).
				Int("table_number", order.TableNumber).
				Str("stage", stage).
				Msg("Failed to update table stage")
		}
	}

	if h.publisher != nil {
		event := kafka.OrderStatusChangedEvent{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			FromStatus:  from,
			ToStatus:    order.Status,
		}
		if err := h.publisher.PublishOrderStatusChanged(ctx, event); err != nil {
			logger.Logger.Error().
				Err(err).
				Uint("order_id", order.ID).
				Msg("Failed to publish order status changed event")
		}
	}

	return order, nil
}
