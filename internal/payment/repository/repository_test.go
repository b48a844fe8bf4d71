package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dhaba/restaurant-pos/internal/payment/domain"
)

func getTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Payment{}, &domain.DailyCollection{}))
	return db
}

func record(t *testing.T, repo *GormPaymentRepository, method string, amount float64, at time.Time) {
	t.Helper()
	require.NoError(t, repo.Record(&domain.Payment{
		OrderID:       1,
		Method:        method,
		Amount:        amount,
		TransactionID: "TXN-" + method + at.Format("20060102150405") + t.Name(),
		CreatedAt:     at,
	}))
}

func TestRecordCreatesDailyBucketOnFirstPayment(t *testing.T) {
	repo := NewGormPaymentRepository(getTestDB(t))
	day := time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)

	record(t, repo, domain.MethodCash, 450, day)

	collection, err := repo.FindCollectionByDate("2026-03-14")
	require.NoError(t, err)
	assert.InDelta(t, 450.0, collection.TotalAmount, 0.001)
	assert.Equal(t, 1, collection.TotalOrders)
	assert.InDelta(t, 450.0, collection.CashAmount, 0.001)
}

func TestRecordAccumulatesIntoExistingBucket(t *testing.T) {
	repo := NewGormPaymentRepository(getTestDB(t))
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	record(t, repo, domain.MethodCash, 450, day.Add(10*time.Hour))
	record(t, repo, domain.MethodUPI, 220.50, day.Add(13*time.Hour))
	record(t, repo, domain.MethodCard, 129.50, day.Add(21*time.Hour))

	collection, err := repo.FindCollectionByDate("2026-03-14")
	require.NoError(t, err)
	assert.InDelta(t, 800.0, collection.TotalAmount, 0.001)
	assert.Equal(t, 3, collection.TotalOrders)
	assert.InDelta(t, 450.0, collection.CashAmount, 0.001)
	assert.InDelta(t, 220.50, collection.UpiAmount, 0.001)
	assert.InDelta(t, 129.50, collection.CardAmount, 0.001)
	assert.InDelta(t, 0.0, collection.WalletAmount, 0.001)
}

func TestPaymentsOnDifferentDaysLandInSeparateBuckets(t *testing.T) {
	repo := NewGormPaymentRepository(getTestDB(t))

	record(t, repo, domain.MethodCash, 100, time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC))
	record(t, repo, domain.MethodCash, 200, time.Date(2026, 3, 15, 0, 1, 0, 0, time.UTC))

	collections, err := repo.FindAllCollections()
	require.NoError(t, err)
	require.Len(t, collections, 2)

	// Newest first
	assert.Equal(t, "2026-03-15", collections[0].Date)
	assert.InDelta(t, 200.0, collections[0].TotalAmount, 0.001)
	assert.Equal(t, "2026-03-14", collections[1].Date)
	assert.InDelta(t, 100.0, collections[1].TotalAmount, 0.001)
}

func TestFindCollectionsSince(t *testing.T) {
	repo := NewGormPaymentRepository(getTestDB(t))

	record(t, repo, domain.MethodCash, 100, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	record(t, repo, domain.MethodCash, 200, time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
	record(t, repo, domain.MethodCash, 300, time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))

	collections, err := repo.FindCollectionsSince("2026-03-14")
	require.NoError(t, err)
	require.Len(t, collections, 2)
	assert.Equal(t, "2026-03-15", collections[0].Date)
	assert.Equal(t, "2026-03-14", collections[1].Date)
}

func TestSumByOrderID(t *testing.T) {
	repo := NewGormPaymentRepository(getTestDB(t))
	now := time.Now()

	record(t, repo, domain.MethodCash, 300, now)
	record(t, repo, domain.MethodUPI, 360.80, now)

	sum, err := repo.SumByOrderID(1)
	require.NoError(t, err)
	assert.InDelta(t, 660.80, sum, 0.001)

	sum, err = repo.SumByOrderID(42)
	require.NoError(t, err)
	assert.Zero(t, sum)
}
