package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/dhaba/restaurant-pos/kafka"
)

// Order statuses
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Payment statuses
const (
	PaymentPending = "pending"
	PaymentPartial = "partial"
	PaymentPaid    = "paid"
)

// TaxRate is applied to the order subtotal (GST, 18%)
const TaxRate = 0.18

// ErrIllegalTransition is returned when an order status change is not
// allowed from the current status.
var ErrIllegalTransition = errors.New("illegal order status transition")

// ErrEmptyCart is returned when a cart with no lines is submitted.
var ErrEmptyCart = errors.New("cart is empty")

// statusTransitions maps each status to the statuses reachable from it.
// completed and cancelled are terminal.
var statusTransitions = map[string][]string{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusCompleted},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ValidStatus reports whether s is a known order status
func ValidStatus(s string) bool {
	_, ok := statusTransitions[s]
	return ok
}

// ValidPaymentStatus reports whether s is a known payment status
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentPartial, PaymentPaid:
		return true
	}
	return false
}

// Order represents a submitted order
type Order struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	OrderNumber   string         `json:"order_number" gorm:"uniqueIndex;not null"`
	TableNumber   int            `json:"table_number"`
	CustomerName  string         `json:"customer_name"`
	Status        string         `json:"status" gorm:"not null;default:'pending';index"`
	PaymentStatus string         `json:"payment_status" gorm:"not null;default:'pending';index"`
	Subtotal      float64        `json:"subtotal" gorm:"not null"`
	Tax           float64        `json:"tax" gorm:"not null"`
	Total         float64        `json:"total" gorm:"not null"`
	Items         []OrderItem    `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	CompletedAt   *time.Time     `json:"completed_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a line frozen into an order at submission time.
// Name and unit price are duplicated from the menu item so later menu
// edits do not rewrite history.
type OrderItem struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	OrderID    uint    `json:"order_id" gorm:"not null;index"`
	MenuItemID uint    `json:"menu_item_id" gorm:"not null"`
	Name       string  `json:"name" gorm:"not null"`
	UnitPrice  float64 `json:"unit_price" gorm:"not null"`
	Quantity   int     `json:"quantity" gorm:"not null"`
	Subtotal   float64 `json:"subtotal" gorm:"not null"`
}

// TableName specifies the table name
func (OrderItem) TableName() string {
	return "order_items"
}

// CanTransition reports whether the order may move to the given status
func (o *Order) CanTransition(to string) bool {
	for _, next := range statusTransitions[o.Status] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves the order to the given status, stamping CompletedAt
// when the order completes.
func (o *Order) Transition(to string) error {
	if !ValidStatus(to) {
		return fmt.Errorf("unknown order status %q", to)
	}
	if !o.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, o.Status, to)
	}
	o.Status = to
	if to == StatusCompleted {
		now := time.Now()
		o.CompletedAt = &now
	}
	return nil
}

// IsOpen reports whether the order is still in the kitchen pipeline
func (o *Order) IsOpen() bool {
	return o.Status != StatusCompleted && o.Status != StatusCancelled
}

// OrderStats is the counter set shown on the dashboard
type OrderStats struct {
	TotalOrders     int64 `json:"total_orders"`
	PendingOrders   int64 `json:"pending_orders"`
	CompletedOrders int64 `json:"completed_orders"`
}

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	Create(order *Order) error
	FindByID(id uint) (*Order, error)
	FindAll(limit, offset int) ([]Order, error)
	FindByStatus(status string, limit, offset int) ([]Order, error)
	Update(order *Order) error
	Count() (int64, error)
	CountByStatus(status string) (int64, error)
	SumTotalByPaymentStatus(paymentStatus string) (float64, error)
}

// TableGateway is the slice of the table module the order flow needs:
// blocking a table when an order lands on it and mirroring the kitchen
// stage onto the floor plan.
type TableGateway interface {
	BlockForOrder(tableNumber int, orderID uint, customerName string) error
	SetStageForTable(tableNumber int, stage string) error
}

// EventPublisher publishes order lifecycle events. It is nil-safe at the
// call sites so demo mode can run without a broker.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error
	PublishOrderStatusChanged(ctx context.Context, event kafka.OrderStatusChangedEvent) error
}
