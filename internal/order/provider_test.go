package order

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dhaba/restaurant-pos/internal/order/repository"
)

func TestProvideOrderRepositoryIsTraced(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	repo := ProvideOrderRepository(db)
	_, ok := repo.(*repository.GormOrderRepositoryWithTracing)
	require.True(t, ok, "order repository should carry the tracing wrapper")
}
