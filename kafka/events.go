package kafka

import "time"

// OrderPlacedEvent is emitted when a cart is submitted as an order
type OrderPlacedEvent struct {
	EventID      string    `json:"event_id"`
	EventType    string    `json:"event_type"`
	OrderID      uint      `json:"order_id"`
	OrderNumber  string    `json:"order_number"`
	TableNumber  int       `json:"table_number,omitempty"`
	CustomerName string    `json:"customer_name,omitempty"`
	ItemCount    int       `json:"item_count"`
	Subtotal     float64   `json:"subtotal"`
	Tax          float64   `json:"tax"`
	Total        float64   `json:"total"`
	Timestamp    time.Time `json:"timestamp"`
}

// OrderStatusChangedEvent is emitted on every order status transition
type OrderStatusChangedEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	OrderID     uint      `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	FromStatus  string    `json:"from_status"`
	ToStatus    string    `json:"to_status"`
	Timestamp   time.Time `json:"timestamp"`
}

// PaymentRecordedEvent is emitted when a tender is recorded against an order
type PaymentRecordedEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	PaymentID     uint      `json:"payment_id"`
	OrderID       uint      `json:"order_id"`
	OrderNumber   string    `json:"order_number"`
	Method        string    `json:"method"`
	Amount        float64   `json:"amount"`
	PaymentStatus string    `json:"payment_status"`
	Timestamp     time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderPlaced        = "order.placed"
	EventTypeOrderStatusChanged = "order.status_changed"
	EventTypePaymentRecorded    = "payment.recorded"
)

// Kafka topics
const (
	TopicOrders   = "pos-orders"
	TopicPayments = "pos-payments"
)
