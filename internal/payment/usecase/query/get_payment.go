package query

import (
	"github.com/dhaba/restaurant-pos/internal/payment/domain"
)

// GetPaymentQuery represents the intent to fetch one payment
type GetPaymentQuery struct {
	PaymentID uint
}

// GetPaymentHandler handles payment retrieval
type GetPaymentHandler struct {
	payments domain.PaymentRepository
}

// NewGetPaymentHandler creates a new handler
func NewGetPaymentHandler(payments domain.PaymentRepository) *GetPaymentHandler {
	return &GetPaymentHandler{payments: payments}
}

// Handle executes the get payment query
func (h *GetPaymentHandler) Handle(q GetPaymentQuery) (*domain.Payment, error) {
	return h.payments.FindByID(q.PaymentID)
}
