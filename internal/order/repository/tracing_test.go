package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dhaba/restaurant-pos/internal/order/domain"
)

func tracedTestRepo(t *testing.T) *GormOrderRepositoryWithTracing {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Order{}, &domain.OrderItem{}))
	return NewGormOrderRepositoryWithTracing(db)
}

func TestTracedRepositoryRoundTrip(t *testing.T) {
	repo := tracedTestRepo(t)
	ctx := context.Background()

	order := &domain.Order{
		OrderNumber:   "ORD-trace001",
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentPending,
		Total:         660.80,
	}
	require.NoError(t, repo.CreateWithContext(ctx, order))
	require.NotZero(t, order.ID)

	loaded, err := repo.FindByIDWithContext(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "ORD-trace001", loaded.OrderNumber)

	loaded.Status = domain.StatusPreparing
	require.NoError(t, repo.UpdateWithContext(ctx, loaded))

	reloaded, err := repo.FindByIDWithContext(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, reloaded.Status)
}

func TestTracedRepositoryReportsMissingOrder(t *testing.T) {
	repo := tracedTestRepo(t)

	_, err := repo.FindByIDWithContext(context.Background(), 99)
	assert.Error(t, err)
}
