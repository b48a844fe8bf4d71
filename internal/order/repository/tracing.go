package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/dhaba/restaurant-pos/internal/order/domain"
)

var tracer = otel.Tracer("order-repository")

// GormOrderRepositoryWithTracing wraps GormOrderRepository with tracing
type GormOrderRepositoryWithTracing struct {
	*GormOrderRepository
}

// NewGormOrderRepositoryWithTracing creates a new repository with tracing
func NewGormOrderRepositoryWithTracing(db *gorm.DB) *GormOrderRepositoryWithTracing {
	return &GormOrderRepositoryWithTracing{
		GormOrderRepository: NewGormOrderRepository(db),
	}
}

// CreateWithContext persists an order under a span
func (r *GormOrderRepositoryWithTracing) CreateWithContext(ctx context.Context, order *domain.Order) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("order.number", order.OrderNumber),
			attribute.Int("order.table_number", order.TableNumber),
			attribute.Float64("order.total", order.Total),
		),
	)
	defer span.End()

	err := r.GormOrderRepository.Create(order)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("order.id", int(order.ID)))
	return nil
}

// FindByIDWithContext loads an order under a span
func (r *GormOrderRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id uint) (*domain.Order, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("order.id", int(id)),
		),
	)
	defer span.End()

	order, err := r.GormOrderRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("order.status", order.Status))
	return order, nil
}

// UpdateWithContext saves an order under a span
func (r *GormOrderRepositoryWithTracing) UpdateWithContext(ctx context.Context, order *domain.Order) error {
	_, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.Int("order.id", int(order.ID)),
			attribute.String("order.status", order.Status),
		),
	)
	defer span.End()

	err := r.GormOrderRepository.Update(order)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
