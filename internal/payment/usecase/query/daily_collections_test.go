package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dhaba/restaurant-pos/internal/payment/domain"
	"github.com/dhaba/restaurant-pos/internal/payment/repository"
)

func collectionsHandler(t *testing.T, now time.Time) (*DailyCollectionsHandler, *repository.GormPaymentRepository) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Payment{}, &domain.DailyCollection{}))

	repo := repository.NewGormPaymentRepository(db)
	handler := NewDailyCollectionsHandler(repo)
	handler.now = func() time.Time { return now }
	return handler, repo
}

func recordOn(t *testing.T, repo *repository.GormPaymentRepository, day time.Time, amount float64) {
	t.Helper()
	require.NoError(t, repo.Record(&domain.Payment{
		OrderID:       1,
		Method:        domain.MethodCash,
		Amount:        amount,
		TransactionID: "TXN-" + day.Format("20060102") + t.Name(),
		CreatedAt:     day,
	}))
}

func TestDailyCollectionsDefaultsToToday(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)
	handler, repo := collectionsHandler(t, now)

	recordOn(t, repo, now, 500)
	recordOn(t, repo, now.AddDate(0, 0, -1), 900)

	result, err := handler.Handle(DailyCollectionsQuery{})
	require.NoError(t, err)
	assert.Equal(t, RangeToday, result.Range)
	require.Len(t, result.Collections, 1)
	assert.InDelta(t, 500.0, result.TotalAmount, 0.001)
	assert.Equal(t, 1, result.TotalOrders)
}

func TestDailyCollectionsEmptyDayIsNotAnError(t *testing.T) {
	handler, _ := collectionsHandler(t, time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC))

	result, err := handler.Handle(DailyCollectionsQuery{Range: RangeToday})
	require.NoError(t, err)
	assert.Empty(t, result.Collections)
	assert.Zero(t, result.TotalAmount)
}

func TestDailyCollectionsWeekWindow(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)
	handler, repo := collectionsHandler(t, now)

	recordOn(t, repo, now, 100)
	recordOn(t, repo, now.AddDate(0, 0, -6), 200)
	// Just outside the window
	recordOn(t, repo, now.AddDate(0, 0, -7), 400)

	result, err := handler.Handle(DailyCollectionsQuery{Range: RangeWeek})
	require.NoError(t, err)
	require.Len(t, result.Collections, 2)
	assert.InDelta(t, 300.0, result.TotalAmount, 0.001)
	assert.Equal(t, 2, result.TotalOrders)
}

func TestDailyCollectionsAll(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)
	handler, repo := collectionsHandler(t, now)

	recordOn(t, repo, now.AddDate(0, 0, -40), 100)
	recordOn(t, repo, now, 200)

	result, err := handler.Handle(DailyCollectionsQuery{Range: RangeAll})
	require.NoError(t, err)
	assert.Len(t, result.Collections, 2)
	assert.InDelta(t, 300.0, result.TotalAmount, 0.001)
}

func TestDailyCollectionsRejectsUnknownRange(t *testing.T) {
	handler, _ := collectionsHandler(t, time.Now())

	_, err := handler.Handle(DailyCollectionsQuery{Range: "fortnight"})
	assert.ErrorContains(t, err, "invalid range")
}
