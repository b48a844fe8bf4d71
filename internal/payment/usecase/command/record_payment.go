package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	orderdomain "github.com/dhaba/restaurant-pos/internal/order/domain"
	"github.com/dhaba/restaurant-pos/internal/payment/domain"
	"github.com/dhaba/restaurant-pos/kafka"
	"github.com/dhaba/restaurant-pos/pkg/logger"
)

// RecordPaymentCommand represents the intent to tender against an order
type RecordPaymentCommand struct {
	OrderID uint    `json:"order_id"`
	Method  string  `json:"method"`
	Amount  float64 `json:"amount"`
}

// RecordPaymentResult carries the stored payment plus the running
// balance of the order it settles.
type RecordPaymentResult struct {
	Payment       *domain.Payment `json:"payment"`
	PaymentStatus string          `json:"payment_status"`
	PaidTotal     float64         `json:"paid_total"`
	Outstanding   float64         `json:"outstanding"`
}

// RecordPaymentHandler handles payment recording
type RecordPaymentHandler struct {
	payments  domain.PaymentRepository
	orders    orderdomain.OrderRepository
	tables    domain.TableReleaser
	publisher domain.EventPublisher
}

// NewRecordPaymentHandler creates a new handler
func NewRecordPaymentHandler(
	payments domain.PaymentRepository,
	orders orderdomain.OrderRepository,
	tables domain.TableReleaser,
	publisher domain.EventPublisher,
) *RecordPaymentHandler {
	return &RecordPaymentHandler{
		payments:  payments,
		orders:    orders,
		tables:    tables,
		publisher: publisher,
	}
}

// Handle executes the record payment command. An order may settle in
// several tenders; the sum of tenders may never exceed the order total.
func (h *RecordPaymentHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) (*RecordPaymentResult, error) {
	if cmd.Amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}
	if !domain.ValidMethod(cmd.Method) {
		return nil, fmt.Errorf("invalid payment method: %s", cmd.Method)
	}

	order, err := h.orders.FindByID(cmd.OrderID)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}
	if order.Status == orderdomain.StatusCancelled {
		return nil, fmt.Errorf("cannot record payment for cancelled order %s", order.OrderNumber)
	}
	if order.PaymentStatus == orderdomain.PaymentPaid {
		return nil, fmt.Errorf("order %s is already settled", order.OrderNumber)
	}

	paidSoFar, err := h.payments.SumByOrderID(order.ID)
	if err != nil {
		return nil, err
	}
	if paidSoFar+cmd.Amount > order.Total {
		return nil, fmt.Errorf("%w: total %.2f, tendered %.2f, attempted %.2f",
			domain.ErrOverpayment, order.Total, paidSoFar, cmd.Amount)
	}

	payment := &domain.Payment{
		OrderID:       order.ID,
		Method:        cmd.Method,
		Amount:        cmd.Amount,
		TransactionID: "TXN-" + uuid.New().String()[:12],
		CreatedAt:     time.Now(),
	}
	if err := h.payments.Record(payment); err != nil {
		return nil, err
	}

	paidTotal := paidSoFar + cmd.Amount
	status := orderdomain.PaymentPartial
	if paidTotal >= order.Total {
		status = orderdomain.PaymentPaid
	}
	order.PaymentStatus = status
	if err := h.orders.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order payment status: %w", err)
	}

	if status == orderdomain.PaymentPaid && h.tables != nil && order.TableNumber > 0 {
		if err := h.tables.ReleaseByOrder(order.TableNumber); err != nil {
			logger.Error(ctx).Err(err).
				Int("table_number", order.TableNumber).
				Uint("order_id", order.ID).
				Msg("Failed to release table after settlement")
		}
	}

	if h.publisher != nil {
		event := kafka.PaymentRecordedEvent{
			PaymentID:     payment.ID,
			OrderID:       order.ID,
			OrderNumber:   order.OrderNumber,
			Method:        payment.Method,
			Amount:        payment.Amount,
			PaymentStatus: status,
		}
		if err := h.publisher.PublishPaymentRecorded(ctx, event); err != nil {
			logger.Error(ctx).Err(err).Uint("payment_id", payment.ID).Msg("Failed to publish payment recorded event")
		}
	}

	logger.Info(ctx).
		Uint("order_id", order.ID).
		Str("method", payment.Method).
		Float64("amount", payment.Amount).
		Str("payment_status", status).
		Msg("Payment recorded")

	return &RecordPaymentResult{
		Payment:       payment,
		PaymentStatus: status,
		PaidTotal:     paidTotal,
		Outstanding:   order.Total - paidTotal,
	}, nil
}
