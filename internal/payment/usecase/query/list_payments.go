package query

import (
	"github.com/dhaba/restaurant-pos/internal/payment/domain"
)

// ListPaymentsQuery represents the intent to list payments, either
// scoped to one order or paginated across all.
type ListPaymentsQuery struct {
	OrderID uint
	Limit   int
	Offset  int
}

// ListPaymentsHandler handles payment listing
type ListPaymentsHandler struct {
	payments domain.PaymentRepository
}

// NewListPaymentsHandler creates a new handler
func NewListPaymentsHandler(payments domain.PaymentRepository) *ListPaymentsHandler {
	return &ListPaymentsHandler{payments: payments}
}

// Handle executes the list payments query
func (h *ListPaymentsHandler) Handle(q ListPaymentsQuery) ([]domain.Payment, error) {
	if q.OrderID > 0 {
		return h.payments.FindByOrderID(q.OrderID)
	}
	if q.Limit <= 0 {
		q.Limit = 50
	}
	return h.payments.FindAll(q.Limit, q.Offset)
}
