//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/dhaba/restaurant-pos/internal/inventory/domain"
	"github.com/dhaba/restaurant-pos/internal/inventory/handler"
	"github.com/dhaba/restaurant-pos/internal/inventory/repository"
	"github.com/dhaba/restaurant-pos/internal/inventory/usecase/command"
	"github.com/dhaba/restaurant-pos/internal/inventory/usecase/query"
)

// ProvideInventoryRepository provides the inventory repository
func ProvideInventoryRepository(db *gorm.DB) domain.InventoryRepository {
	return repository.NewGormInventoryRepository(db)
}

// ProvideCreateItemHandler provides the create item command handler
func ProvideCreateItemHandler(repo domain.InventoryRepository) *command.CreateItemHandler {
	return command.NewCreateItemHandler(repo)
}

// ProvideUpdateItemHandler provides the update item command handler
func ProvideUpdateItemHandler(repo domain.InventoryRepository) *command.UpdateItemHandler {
	return command.NewUpdateItemHandler(repo)
}

// ProvideDeleteItemHandler provides the delete item command handler
func ProvideDeleteItemHandler(repo domain.InventoryRepository) *command.DeleteItemHandler {
	return command.NewDeleteItemHandler(repo)
}

// ProvideAdjustQuantityHandler provides the adjust quantity command handler
func ProvideAdjustQuantityHandler(repo domain.InventoryRepository) *command.AdjustQuantityHandler {
	return command.NewAdjustQuantityHandler(repo)
}

// ProvideGetItemHandler provides the get item query handler
func ProvideGetItemHandler(repo domain.InventoryRepository) *query.GetItemHandler {
	return query.NewGetItemHandler(repo)
}

// ProvideListItemsHandler provides the list items query handler
func ProvideListItemsHandler(repo domain.InventoryRepository) *query.ListItemsHandler {
	return query.NewListItemsHandler(repo)
}

// ProvideLowStockHandler provides the low stock query handler
func ProvideLowStockHandler(repo domain.InventoryRepository) *query.LowStockHandler {
	return query.NewLowStockHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideInventoryRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideCreateItemHandler,
	ProvideUpdateItemHandler,
	ProvideDeleteItemHandler,
	ProvideAdjustQuantityHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetItemHandler,
	ProvideListItemsHandler,
	ProvideLowStockHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHandler initializes the inventory handler with all dependencies
func InitializeHandler(db *gorm.DB) (*handler.InventoryHandler, error) {
	wire.Build(
		AllHandlersSet,
		handler.NewInventoryHandlerWithDI,
	)
	return nil, nil
}
