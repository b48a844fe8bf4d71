//go:build wireinject
// +build wireinject

package payment

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	orderdomain "github.com/dhaba/restaurant-pos/internal/order/domain"
	"github.com/dhaba/restaurant-pos/internal/payment/domain"
	"github.com/dhaba/restaurant-pos/internal/payment/handler"
	"github.com/dhaba/restaurant-pos/internal/payment/repository"
	"github.com/dhaba/restaurant-pos/internal/payment/usecase/command"
	"github.com/dhaba/restaurant-pos/internal/payment/usecase/query"
)

// ProvidePaymentRepository provides the payment repository
func ProvidePaymentRepository(db *gorm.DB) domain.PaymentRepository {
	return repository.NewGormPaymentRepository(db)
}

// ProvideRecordPaymentHandler provides the record payment command handler
func ProvideRecordPaymentHandler(payments domain.PaymentRepository, orders orderdomain.OrderRepository, tables domain.TableReleaser, publisher domain.EventPublisher) *command.RecordPaymentHandler {
	return command.NewRecordPaymentHandler(payments, orders, tables, publisher)
}

// ProvideUpdatePaymentStatusHandler provides the update payment status command handler
func ProvideUpdatePaymentStatusHandler(orders orderdomain.OrderRepository, tables domain.TableReleaser) *command.UpdatePaymentStatusHandler {
	return command.NewUpdatePaymentStatusHandler(orders, tables)
}

// ProvideGetPaymentHandler provides the get payment query handler
func ProvideGetPaymentHandler(payments domain.PaymentRepository) *query.GetPaymentHandler {
	return query.NewGetPaymentHandler(payments)
}

// ProvideListPaymentsHandler provides the list payments query handler
func ProvideListPaymentsHandler(payments domain.PaymentRepository) *query.ListPaymentsHandler {
	return query.NewListPaymentsHandler(payments)
}

// ProvideDailyCollectionsHandler provides the daily collections query handler
func ProvideDailyCollectionsHandler(payments domain.PaymentRepository) *query.DailyCollectionsHandler {
	return query.NewDailyCollectionsHandler(payments)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvidePaymentRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideRecordPaymentHandler,
	ProvideUpdatePaymentStatusHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetPaymentHandler,
	ProvideListPaymentsHandler,
	ProvideDailyCollectionsHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHandler initializes the payment handler with all dependencies
func InitializeHandler(db *gorm.DB, orders orderdomain.OrderRepository, tables domain.TableReleaser, publisher domain.EventPublisher) (*handler.PaymentHandler, error) {
	wire.Build(
		AllHandlersSet,
		handler.NewPaymentHandlerWithDI,
	)
	return nil, nil
}
