package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dhaba/restaurant-pos/internal/order/cart"
	"github.com/dhaba/restaurant-pos/internal/order/domain"
	"github.com/dhaba/restaurant-pos/kafka"
	"github.com/dhaba/restaurant-pos/pkg/logger"
)

// SubmitOrderCommand turns a cart into a pending order
type SubmitOrderCommand struct {
	CartID       string
	TableNumber  int
	CustomerName string
}

// contextCreator is satisfied by repositories that record a span around
// the insert (the traced gorm repository does).
type contextCreator interface {
	CreateWithContext(ctx context.Context, order *domain.Order) error
}

// SubmitOrderHandler handles submit order command
type SubmitOrderHandler struct {
	carts     *cart.Store
	repo      domain.OrderRepository
	tables    domain.TableGateway
	publisher domain.EventPublisher
}

// NewSubmitOrderHandler creates a new submit order handler
func NewSubmitOrderHandler(carts *cart.Store, repo domain.OrderRepository, tables domain.TableGateway, publisher domain.EventPublisher) *SubmitOrderHandler {
	return &SubmitOrderHandler{
		carts:     carts,
		repo:      repo,
		tables:    tables,
		publisher: publisher,
	}
}

// Handle executes the submit order command
func (h *SubmitOrderHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (*domain.Order, error) {
	if cmd.CartID == "" {
		return nil, fmt.Errorf("cart id is required")
	}

	c := h.carts.Get(cmd.CartID)
	if len(c.Lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	items := make([]domain.OrderItem, 0, len(c.Lines))
	for _, line := range c.Lines {
		items = append(items, domain.OrderItem{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			UnitPrice:  line.UnitPrice,
			Quantity:   line.Quantity,
			Subtotal:   line.Subtotal,
		})
	}

	subtotal := c.Subtotal()
	tax := domain.TaxRate * subtotal

	order := &domain.Order{
		OrderNumber:   fmt.Sprintf("ORD-%s", uuid.New().String()[:8]),
		TableNumber:   cmd.TableNumber,
		CustomerName:  cmd.CustomerName,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentPending,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         subtotal + tax,
		Items:         items,
	}

	var createErr error
	if traced, ok := h.repo.(contextCreator); ok {
		createErr = traced.CreateWithContext(ctx, order)
	} else {
		createErr = h.repo.Create(order)
	}
	if createErr != nil {
		return nil, fmt.Errorf("failed to create order: %w", createErr)
	}

	// Dine-in: mark the table occupied and point it at this order.
	// The order stands even if the table update fails.
	if cmd.TableNumber > 0 && h.tables != nil {
		if err := h.tables.BlockForOrder(cmd.TableNumber, order.ID, cmd.CustomerName); err != nil {
			logger.Logger.Error().
				Err(err).
				Int("table_number", cmd.TableNumber).
				Uint("order_id", order.ID).
				Msg("Failed to block table for order")
		}
	}

	h.carts.Clear(cmd.CartID)

	if h.publisher != nil {
		event := kafka.OrderPlacedEvent{
			OrderID:      order.ID,
			OrderNumber:  order.OrderNumber,
			TableNumber:  order.TableNumber,
			CustomerName: order.CustomerName,
			ItemCount:    len(order.Items),
			Subtotal:     order.Subtotal,
			Tax:          order.Tax,
			Total:        order.Total,
		}
		if err := h.publisher.PublishOrderPlaced(ctx, event); err != nil {
			logger.Logger.Error().
				Err(err).
				Uint("order_id", order.ID).
				Msg("Failed to publish order placed event")
		}
	}

	return order, nil
}
