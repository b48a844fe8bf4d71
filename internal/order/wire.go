//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	menudomain "github.com/dhaba/restaurant-pos/internal/menu/domain"
	"github.com/dhaba/restaurant-pos/internal/order/cart"
	"github.com/dhaba/restaurant-pos/internal/order/domain"
	"github.com/dhaba/restaurant-pos/internal/order/handler"
	"github.com/dhaba/restaurant-pos/internal/order/repository"
	"github.com/dhaba/restaurant-pos/internal/order/usecase/command"
	"github.com/dhaba/restaurant-pos/internal/order/usecase/query"
)

// ProvideOrderRepository provides the order repository, wrapped with
// repository-level tracing spans
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewGormOrderRepositoryWithTracing(db)
}

// ProvideAddItemHandler provides the add item command handler
func ProvideAddItemHandler(carts *cart.Store, menu menudomain.MenuRepository) *command.AddItemHandler {
	return command.NewAddItemHandler(carts, menu)
}

// ProvideUpdateQuantityHandler provides the update quantity command handler
func ProvideUpdateQuantityHandler(carts *cart.Store) *command.UpdateQuantityHandler {
	return command.NewUpdateQuantityHandler(carts)
}

// ProvideRemoveItemHandler provides the remove item command handler
func ProvideRemoveItemHandler(carts *cart.Store) *command.RemoveItemHandler {
	return command.NewRemoveItemHandler(carts)
}

// ProvideClearCartHandler provides the clear cart command handler
func ProvideClearCartHandler(carts *cart.Store) *command.ClearCartHandler {
	return command.NewClearCartHandler(carts)
}

// ProvideSubmitOrderHandler provides the submit order command handler
func ProvideSubmitOrderHandler(carts *cart.Store, repo domain.OrderRepository, tables domain.TableGateway, publisher domain.EventPublisher) *command.SubmitOrderHandler {
	return command.NewSubmitOrderHandler(carts, repo, tables, publisher)
}

// ProvideUpdateStatusHandler provides the update status command handler
func ProvideUpdateStatusHandler(repo domain.OrderRepository, tables domain.TableGateway, publisher domain.EventPublisher) *command.UpdateStatusHandler {
	return command.NewUpdateStatusHandler(repo, tables, publisher)
}

// ProvideGetCartHandler provides the get cart query handler
func ProvideGetCartHandler(carts *cart.Store) *query.GetCartHandler {
	return query.NewGetCartHandler(carts)
}

// ProvideGetOrderHandler provides the get order query handler
func ProvideGetOrderHandler(repo domain.OrderRepository) *query.GetOrderHandler {
	return query.NewGetOrderHandler(repo)
}

// ProvideListOrdersHandler provides the list orders query handler
func ProvideListOrdersHandler(repo domain.OrderRepository) *query.ListOrdersHandler {
	return query.NewListOrdersHandler(repo)
}

// ProvideGetStatsHandler provides the get stats query handler
func ProvideGetStatsHandler(repo domain.OrderRepository) *query.GetStatsHandler {
	return query.NewGetStatsHandler(repo)
}

// ProvideGetRevenueHandler provides the get revenue query handler
func ProvideGetRevenueHandler(repo domain.OrderRepository) *query.GetRevenueHandler {
	return query.NewGetRevenueHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideAddItemHandler,
	ProvideUpdateQuantityHandler,
	ProvideRemoveItemHandler,
	ProvideClearCartHandler,
	ProvideSubmitOrderHandler,
	ProvideUpdateStatusHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetCartHandler,
	ProvideGetOrderHandler,
	ProvideListOrdersHandler,
	ProvideGetStatsHandler,
	ProvideGetRevenueHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHandler initializes the order handler with all dependencies
func InitializeHandler(db *gorm.DB, carts *cart.Store, menu menudomain.MenuRepository, tables domain.TableGateway, publisher domain.EventPublisher) (*handler.OrderHandler, error) {
	wire.Build(
		AllHandlersSet,
		handler.NewOrderHandlerWithDI,
	)
	return nil, nil
}
