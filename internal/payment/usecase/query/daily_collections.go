package query

import (
	"fmt"
	"time"

	"github.com/dhaba/restaurant-pos/internal/payment/domain"
)

// Collection range filters
const (
	RangeToday     = "today"
	RangeYesterday = "yesterday"
	RangeWeek      = "7d"
	RangeMonth     = "30d"
	RangeAll       = "all"
)

// DailyCollectionsQuery represents the intent to fetch revenue rollups
type DailyCollectionsQuery struct {
	Range string
}

// DailyCollectionsResult aggregates the selected buckets
type DailyCollectionsResult struct {
	Range       string                   `json:"range"`
	TotalAmount float64                  `json:"total_amount"`
	TotalOrders int                      `json:"total_orders"`
	Collections []domain.DailyCollection `json:"collections"`
}

// DailyCollectionsHandler handles daily collection queries
type DailyCollectionsHandler struct {
	payments domain.PaymentRepository
	now      func() time.Time
}

// NewDailyCollectionsHandler creates a new handler
func NewDailyCollectionsHandler(payments domain.PaymentRepository) *DailyCollectionsHandler {
	return &DailyCollectionsHandler{payments: payments, now: time.Now}
}

// Handle executes the daily collections query. Unknown ranges are
// rejected; an empty range means today.
func (h *DailyCollectionsHandler) Handle(q DailyCollectionsQuery) (*DailyCollectionsResult, error) {
	if q.Range == "" {
		q.Range = RangeToday
	}

	collections, err := h.fetch(q.Range)
	if err != nil {
		return nil, err
	}

	result := &DailyCollectionsResult{Range: q.Range, Collections: collections}
	for _, c := range collections {
		result.TotalAmount += c.TotalAmount
		result.TotalOrders += c.TotalOrders
	}
	return result, nil
}

func (h *DailyCollectionsHandler) fetch(rng string) ([]domain.DailyCollection, error) {
	today := h.now()
	switch rng {
	case RangeToday:
		collection, err := h.payments.FindCollectionByDate(today.Format("2006-01-02"))
		if err != nil {
			// No sales yet today is not an error
			return []domain.DailyCollection{}, nil
		}
		return []domain.DailyCollection{*collection}, nil
	case RangeYesterday:
		collection, err := h.payments.FindCollectionByDate(today.AddDate(0, 0, -1).Format("2006-01-02"))
		if err != nil {
			return []domain.DailyCollection{}, nil
		}
		return []domain.DailyCollection{*collection}, nil
	case RangeWeek:
		return h.payments.FindCollectionsSince(today.AddDate(0, 0, -6).Format("2006-01-02"))
	case RangeMonth:
		return h.payments.FindCollectionsSince(today.AddDate(0, 0, -29).Format("2006-01-02"))
	case RangeAll:
		return h.payments.FindAllCollections()
	}
	return nil, fmt.Errorf("invalid range: %s", rng)
}
