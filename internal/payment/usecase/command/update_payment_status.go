package command

import (
	"context"
	"fmt"

	orderdomain "github.com/dhaba/restaurant-pos/internal/order/domain"
	"github.com/dhaba/restaurant-pos/internal/payment/domain"
	"github.com/dhaba/restaurant-pos/pkg/logger"
)

// UpdatePaymentStatusCommand overrides an order's payment status
// directly, without tendering. Used for manual corrections at the
// counter.
type UpdatePaymentStatusCommand struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}

// UpdatePaymentStatusHandler handles payment status overrides
type UpdatePaymentStatusHandler struct {
	orders orderdomain.OrderRepository
	tables domain.TableReleaser
}

// NewUpdatePaymentStatusHandler creates a new handler
func NewUpdatePaymentStatusHandler(orders orderdomain.OrderRepository, tables domain.TableReleaser) *UpdatePaymentStatusHandler {
	return &UpdatePaymentStatusHandler{orders: orders, tables: tables}
}

// Handle executes the update payment status command
func (h *UpdatePaymentStatusHandler) Handle(ctx context.Context, cmd UpdatePaymentStatusCommand) (*orderdomain.Order, error) {
	if !orderdomain.ValidPaymentStatus(cmd.Status) {
		return nil, fmt.Errorf("invalid payment status: %s", cmd.Status)
	}

	order, err := h.orders.FindByID(cmd.OrderID)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}

	order.PaymentStatus = cmd.Status
	if err := h.orders.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	if cmd.Status == orderdomain.PaymentPaid && h.tables != nil && order.TableNumber > 0 {
		if err := h.tables.ReleaseByOrder(order.TableNumber); err != nil {
			logger.Error(ctx).Err(err).Int("table_number", order.TableNumber).Msg("Failed to release table after settlement")
		}
	}

	logger.Info(ctx).Uint("order_id", order.ID).Str("payment_status", cmd.Status).Msg("Payment status updated")
	return order, nil
}
