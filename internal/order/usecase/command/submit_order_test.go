package command

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dhaba/restaurant-pos/internal/order/cart"
	"github.com/dhaba/restaurant-pos/internal/order/domain"
	orderrepo "github.com/dhaba/restaurant-pos/internal/order/repository"
	tabledomain "github.com/dhaba/restaurant-pos/internal/table/domain"
	tablegw "github.com/dhaba/restaurant-pos/internal/table/gateway"
	tablerepo "github.com/dhaba/restaurant-pos/internal/table/repository"
)

func getTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Order{}, &domain.OrderItem{}, &tabledomain.Table{}))
	return db
}

func seedCart(carts *cart.Store, cartID string) {
	carts.AddItem(cartID, 1, "Paneer Tikka", 280)
	carts.AddItem(cartID, 1, "Paneer Tikka", 280)
	carts.AddItem(cartID, 2, "Butter Naan", 60)
}

func TestSubmitOrderComputesTotals(t *testing.T) {
	db := getTestDB(t)
	carts := cart.NewStore()
	seedCart(carts, "t1")

	handler := NewSubmitOrderHandler(carts, orderrepo.NewGormOrderRepository(db), nil, nil)

	order, err := handler.Handle(context.Background(), SubmitOrderCommand{
		CartID:       "t1",
		CustomerName: "Asha",
	})
	require.NoError(t, err)

	assert.InDelta(t, 620.0, order.Subtotal, 0.001)
	assert.InDelta(t, 111.6, order.Tax, 0.001)
	assert.InDelta(t, 731.6, order.Total, 0.001)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, domain.PaymentPending, order.PaymentStatus)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
	assert.Len(t, order.Items, 2)

	// Lines are frozen into the order at submission time
	assert.Equal(t, "Paneer Tikka", order.Items[0].Name)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.InDelta(t, 560.0, order.Items[0].Subtotal, 0.001)

	// Cart is consumed by a successful submit
	assert.Empty(t, carts.Get("t1").Lines)
}

func TestSubmitOrderThroughTracedRepository(t *testing.T) {
	db := getTestDB(t)
	carts := cart.NewStore()
	seedCart(carts, "t1")

	repo := orderrepo.NewGormOrderRepositoryWithTracing(db)
	submit := NewSubmitOrderHandler(carts, repo, nil, nil)
	update := NewUpdateStatusHandler(repo, nil, nil)

	order, err := submit.Handle(context.Background(), SubmitOrderCommand{CartID: "t1"})
	require.NoError(t, err)
	require.NotZero(t, order.ID)

	order, err = update.Handle(context.Background(), UpdateStatusCommand{OrderID: order.ID, Status: domain.StatusPreparing})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, order.Status)
}

func TestSubmitOrderRejectsEmptyCart(t *testing.T) {
	db := getTestDB(t)
	handler := NewSubmitOrderHandler(cart.NewStore(), orderrepo.NewGormOrderRepository(db), nil, nil)

	_, err := handler.Handle(context.Background(), SubmitOrderCommand{CartID: "empty"})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestSubmitOrderBlocksTable(t *testing.T) {
	db := getTestDB(t)
	tables := tablerepo.NewGormTableRepository(db)
	require.NoError(t, tables.Create(&tabledomain.Table{Number: 3, Capacity: 4}))

	carts := cart.NewStore()
	seedCart(carts, "t1")

	handler := NewSubmitOrderHandler(carts, orderrepo.NewGormOrderRepository(db), tablegw.NewTableGateway(tables), nil)

	order, err := handler.Handle(context.Background(), SubmitOrderCommand{
		CartID:       "t1",
		TableNumber:  3,
		CustomerName: "Asha",
	})
	require.NoError(t, err)

	table, err := tables.FindByNumber(3)
	require.NoError(t, err)
	assert.Equal(t, tabledomain.StatusOccupied, table.Status)
	assert.Equal(t, tabledomain.StageWaiting, table.Stage)
	require.NotNil(t, table.CurrentOrderID)
	assert.Equal(t, order.ID, *table.CurrentOrderID)
	assert.Equal(t, "Asha", table.CustomerName)
}

func TestSubmitOrderSeatsReservedTable(t *testing.T) {
	db := getTestDB(t)
	tables := tablerepo.NewGormTableRepository(db)
	require.NoError(t, tables.Create(&tabledomain.Table{Number: 7, Status: tabledomain.StatusReserved}))

	carts := cart.NewStore()
	seedCart(carts, "t1")

	handler := NewSubmitOrderHandler(carts, orderrepo.NewGormOrderRepository(db), tablegw.NewTableGateway(tables), nil)

	_, err := handler.Handle(context.Background(), SubmitOrderCommand{CartID: "t1", TableNumber: 7})
	require.NoError(t, err)

	table, err := tables.FindByNumber(7)
	require.NoError(t, err)
	assert.Equal(t, tabledomain.StatusOccupied, table.Status)
}

func TestUpdateStatusMirrorsStageOntoTable(t *testing.T) {
	db := getTestDB(t)
	tables := tablerepo.NewGormTableRepository(db)
	require.NoError(t, tables.Create(&tabledomain.Table{Number: 3}))

	carts := cart.NewStore()
	seedCart(carts, "t1")

	orders := orderrepo.NewGormOrderRepository(db)
	gateway := tablegw.NewTableGateway(tables)
	submit := NewSubmitOrderHandler(carts, orders, gateway, nil)
	update := NewUpdateStatusHandler(orders, gateway, nil)

	order, err := submit.Handle(context.Background(), SubmitOrderCommand{CartID: "t1", TableNumber: 3})
	require.NoError(t, err)

	order, err = update.Handle(context.Background(), UpdateStatusCommand{OrderID: order.ID, Status: domain.StatusPreparing})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, order.Status)

	table, _ := tables.FindByNumber(3)
	assert.Equal(t, tabledomain.StagePreparing, table.Stage)

	order, err = update.Handle(context.Background(), UpdateStatusCommand{OrderID: order.ID, Status: domain.StatusReady})
	require.NoError(t, err)

	table, _ = tables.FindByNumber(3)
	assert.Equal(t, tabledomain.StageServed, table.Stage)
}

func TestUpdateStatusRejectsIllegalMove(t *testing.T) {
	db := getTestDB(t)
	carts := cart.NewStore()
	seedCart(carts, "t1")

	orders := orderrepo.NewGormOrderRepository(db)
	submit := NewSubmitOrderHandler(carts, orders, nil, nil)
	update := NewUpdateStatusHandler(orders, nil, nil)

	order, err := submit.Handle(context.Background(), SubmitOrderCommand{CartID: "t1"})
	require.NoError(t, err)

	_, err = update.Handle(context.Background(), UpdateStatusCommand{OrderID: order.ID, Status: domain.StatusCompleted})
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)

	// Nothing was persisted for the rejected move
	reloaded, err := orders.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, reloaded.Status)
}
