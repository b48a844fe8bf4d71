package command

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	orderdomain "github.com/dhaba/restaurant-pos/internal/order/domain"
	orderrepo "github.com/dhaba/restaurant-pos/internal/order/repository"
	"github.com/dhaba/restaurant-pos/internal/payment/domain"
	paymentrepo "github.com/dhaba/restaurant-pos/internal/payment/repository"
	tabledomain "github.com/dhaba/restaurant-pos/internal/table/domain"
	tablegw "github.com/dhaba/restaurant-pos/internal/table/gateway"
	tablerepo "github.com/dhaba/restaurant-pos/internal/table/repository"
)

func getTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&orderdomain.Order{}, &orderdomain.OrderItem{},
		&domain.Payment{}, &domain.DailyCollection{},
		&tabledomain.Table{},
	))
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, total float64, tableNumber int) *orderdomain.Order {
	order := &orderdomain.Order{
		OrderNumber:   "ORD-test0001",
		TableNumber:   tableNumber,
		Status:        orderdomain.StatusReady,
		PaymentStatus: orderdomain.PaymentPending,
		Subtotal:      total / (1 + orderdomain.TaxRate),
		Tax:           total - total/(1+orderdomain.TaxRate),
		Total:         total,
	}
	require.NoError(t, orderrepo.NewGormOrderRepository(db).Create(order))
	return order
}

func TestRecordPaymentSettlesInSplitTenders(t *testing.T) {
	db := getTestDB(t)
	orders := orderrepo.NewGormOrderRepository(db)
	order := seedOrder(t, db, 660.80, 0)

	handler := NewRecordPaymentHandler(paymentrepo.NewGormPaymentRepository(db), orders, nil, nil)

	result, err := handler.Handle(context.Background(), RecordPaymentCommand{
		OrderID: order.ID, Method: domain.MethodCash, Amount: 300,
	})
	require.NoError(t, err)
	assert.Equal(t, orderdomain.PaymentPartial, result.PaymentStatus)
	assert.InDelta(t, 300.0, result.PaidTotal, 0.001)
	assert.InDelta(t, 360.80, result.Outstanding, 0.001)
	assert.True(t, strings.HasPrefix(result.Payment.TransactionID, "TXN-"))

	result, err = handler.Handle(context.Background(), RecordPaymentCommand{
		OrderID: order.ID, Method: domain.MethodUPI, Amount: 360.80,
	})
	require.NoError(t, err)
	assert.Equal(t, orderdomain.PaymentPaid, result.PaymentStatus)
	assert.InDelta(t, 0.0, result.Outstanding, 0.001)

	reloaded, err := orders.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, orderdomain.PaymentPaid, reloaded.PaymentStatus)
}

func TestRecordPaymentRejectsOverpayment(t *testing.T) {
	db := getTestDB(t)
	order := seedOrder(t, db, 500, 0)
	payments := paymentrepo.NewGormPaymentRepository(db)
	handler := NewRecordPaymentHandler(payments, orderrepo.NewGormOrderRepository(db), nil, nil)

	_, err := handler.Handle(context.Background(), RecordPaymentCommand{
		OrderID: order.ID, Method: domain.MethodCash, Amount: 400,
	})
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), RecordPaymentCommand{
		OrderID: order.ID, Method: domain.MethodCard, Amount: 200,
	})
	assert.ErrorIs(t, err, domain.ErrOverpayment)

	// The rejected tender left no trace
	sum, err := payments.SumByOrderID(order.ID)
	require.NoError(t, err)
	assert.InDelta(t, 400.0, sum, 0.001)
}

func TestRecordPaymentRejectsCancelledAndSettledOrders(t *testing.T) {
	db := getTestDB(t)
	orders := orderrepo.NewGormOrderRepository(db)
	handler := NewRecordPaymentHandler(paymentrepo.NewGormPaymentRepository(db), orders, nil, nil)

	cancelled := seedOrder(t, db, 400, 0)
	cancelled.Status = orderdomain.StatusCancelled
	require.NoError(t, orders.Update(cancelled))

	_, err := handler.Handle(context.Background(), RecordPaymentCommand{
		OrderID: cancelled.ID, Method: domain.MethodCash, Amount: 400,
	})
	assert.ErrorContains(t, err, "cancelled")

	settled := &orderdomain.Order{
		OrderNumber:   "ORD-test0002",
		Status:        orderdomain.StatusCompleted,
		PaymentStatus: orderdomain.PaymentPaid,
		Total:         400,
	}
	require.NoError(t, orders.Create(settled))

	_, err = handler.Handle(context.Background(), RecordPaymentCommand{
		OrderID: settled.ID, Method: domain.MethodCash, Amount: 400,
	})
	assert.ErrorContains(t, err, "already settled")
}

func TestRecordPaymentValidatesInput(t *testing.T) {
	db := getTestDB(t)
	order := seedOrder(t, db, 400, 0)
	handler := NewRecordPaymentHandler(paymentrepo.NewGormPaymentRepository(db), orderrepo.NewGormOrderRepository(db), nil, nil)

	_, err := handler.Handle(context.Background(), RecordPaymentCommand{OrderID: order.ID, Method: domain.MethodCash, Amount: 0})
	assert.ErrorContains(t, err, "positive")

	_, err = handler.Handle(context.Background(), RecordPaymentCommand{OrderID: order.ID, Method: "cheque", Amount: 100})
	assert.ErrorContains(t, err, "invalid payment method")
}

func TestFullSettlementReleasesTable(t *testing.T) {
	db := getTestDB(t)
	tables := tablerepo.NewGormTableRepository(db)
	require.NoError(t, tables.Create(&tabledomain.Table{Number: 4, Status: tabledomain.StatusOccupied, Stage: tabledomain.StageBilling, CustomerName: "Asha"}))

	order := seedOrder(t, db, 250, 4)
	handler := NewRecordPaymentHandler(
		paymentrepo.NewGormPaymentRepository(db),
		orderrepo.NewGormOrderRepository(db),
		tablegw.NewTableGateway(tables),
		nil,
	)

	_, err := handler.Handle(context.Background(), RecordPaymentCommand{
		OrderID: order.ID, Method: domain.MethodWallet, Amount: 250,
	})
	require.NoError(t, err)

	table, err := tables.FindByNumber(4)
	require.NoError(t, err)
	assert.NotEqual(t, tabledomain.StatusOccupied, table.Status)
	assert.Nil(t, table.CurrentOrderID)
}
