package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dhaba/restaurant-pos/kafka"
)

// Payment methods
const (
	MethodCash   = "cash"
	MethodCard   = "card"
	MethodUPI    = "upi"
	MethodWallet = "wallet"
)

// ErrOverpayment is returned when a tender would push the sum of payments
// past the order total.
var ErrOverpayment = errors.New("payment exceeds outstanding order balance")

// ValidMethod reports whether m is an accepted payment method
func ValidMethod(m string) bool {
	switch m {
	case MethodCash, MethodCard, MethodUPI, MethodWallet:
		return true
	}
	return false
}

// Payment represents one tender against an order. Split bills produce
// several payments for the same order.
type Payment struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	OrderID       uint           `json:"order_id" gorm:"not null;index"`
	Method        string         `json:"method" gorm:"not null"`
	Amount        float64        `json:"amount" gorm:"not null"`
	TransactionID string         `json:"transaction_id" gorm:"uniqueIndex"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Payment) TableName() string {
	return "payments"
}

// DailyCollection is the per-calendar-day revenue rollup. It only ever
// grows; there is no refund correction path.
type DailyCollection struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Date         string    `json:"date" gorm:"uniqueIndex;not null"` // YYYY-MM-DD
	TotalAmount  float64   `json:"total_amount" gorm:"not null"`
	TotalOrders  int       `json:"total_orders" gorm:"not null"`
	CashAmount   float64   `json:"cash_amount"`
	CardAmount   float64   `json:"card_amount"`
	UpiAmount    float64   `json:"upi_amount"`
	WalletAmount float64   `json:"wallet_amount"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (DailyCollection) TableName() string {
	return "daily_collections"
}

// Add folds one payment into the bucket
func (d *DailyCollection) Add(method string, amount float64) {
	d.TotalAmount += amount
	d.TotalOrders++
	switch method {
	case MethodCash:
		d.CashAmount += amount
	case MethodCard:
		d.CardAmount += amount
	case MethodUPI:
		d.UpiAmount += amount
	case MethodWallet:
		d.WalletAmount += amount
	}
}

// MethodAmount returns the accumulated amount for a payment method
func (d *DailyCollection) MethodAmount(method string) float64 {
	switch method {
	case MethodCash:
		return d.CashAmount
	case MethodCard:
		return d.CardAmount
	case MethodUPI:
		return d.UpiAmount
	case MethodWallet:
		return d.WalletAmount
	}
	return 0
}

// PaymentRepository defines the contract for payment data access.
// Record persists the payment and folds it into the matching daily
// collection bucket in one transaction.
type PaymentRepository interface {
	Record(payment *Payment) error
	FindByID(id uint) (*Payment, error)
	FindByOrderID(orderID uint) ([]Payment, error)
	FindAll(limit, offset int) ([]Payment, error)
	SumByOrderID(orderID uint) (float64, error)
	FindCollectionByDate(date string) (*DailyCollection, error)
	FindCollectionsSince(date string) ([]DailyCollection, error)
	FindAllCollections() ([]DailyCollection, error)
}

// TableReleaser frees the table linked to an order once the bill is
// settled.
type TableReleaser interface {
	ReleaseByOrder(tableNumber int) error
}

// EventPublisher publishes payment events; nil-safe at call sites.
type EventPublisher interface {
	PublishPaymentRecorded(ctx context.Context, event kafka.PaymentRecordedEvent) error
}
