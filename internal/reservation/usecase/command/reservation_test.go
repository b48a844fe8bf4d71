package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dhaba/restaurant-pos/internal/reservation/domain"
	"github.com/dhaba/restaurant-pos/internal/reservation/repository"
)

// fakeTableMarker records the table calls the handlers make
type fakeTableMarker struct {
	reservedTable int
	reservedName  string
	reopenedTable int
}

func (f *fakeTableMarker) MarkReserved(tableNumber int, customerName string) error {
	f.reservedTable = tableNumber
	f.reservedName = customerName
	return nil
}

func (f *fakeTableMarker) MarkAvailableIfReserved(tableNumber int) error {
	f.reopenedTable = tableNumber
	return nil
}

func getTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Reservation{}))
	return db
}

func seedReservation(t *testing.T, repo domain.ReservationRepository) *domain.Reservation {
	t.Helper()
	reservation, err := NewCreateReservationHandler(repo).Handle(CreateReservationCommand{
		CustomerName:  "Meera",
		CustomerPhone: "9876543210",
		TableNumber:   6,
		Date:          "2026-09-05",
		Time:          "19:30",
		PartySize:     4,
	})
	require.NoError(t, err)
	return reservation
}

func TestCreateReservationStartsPending(t *testing.T) {
	repo := repository.NewGormReservationRepository(getTestDB(t))
	reservation := seedReservation(t, repo)

	assert.Equal(t, domain.StatusPending, reservation.Status)
	assert.Equal(t, 4, reservation.PartySize)
}

func TestCreateReservationValidatesSlot(t *testing.T) {
	repo := repository.NewGormReservationRepository(getTestDB(t))
	handler := NewCreateReservationHandler(repo)

	_, err := handler.Handle(CreateReservationCommand{
		CustomerName: "Meera", CustomerPhone: "9876543210", TableNumber: 6,
		Date: "05-09-2026", Time: "19:30",
	})
	assert.ErrorContains(t, err, "invalid date")

	_, err = handler.Handle(CreateReservationCommand{
		CustomerName: "Meera", CustomerPhone: "9876543210", TableNumber: 6,
		Date: "2026-09-05", Time: "7pm",
	})
	assert.ErrorContains(t, err, "invalid time")
}

func TestCreateReservationDefaultsPartySize(t *testing.T) {
	repo := repository.NewGormReservationRepository(getTestDB(t))

	reservation, err := NewCreateReservationHandler(repo).Handle(CreateReservationCommand{
		CustomerName: "Solo", CustomerPhone: "9000000000", TableNumber: 2,
		Date: "2026-09-05", Time: "12:00",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, reservation.PartySize)
}

func TestConfirmHoldsTable(t *testing.T) {
	repo := repository.NewGormReservationRepository(getTestDB(t))
	reservation := seedReservation(t, repo)
	tables := &fakeTableMarker{}

	confirmed, err := NewConfirmReservationHandler(repo, tables).Handle(context.Background(), ConfirmReservationCommand{ReservationID: reservation.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, confirmed.Status)
	assert.Equal(t, 6, tables.reservedTable)
	assert.Equal(t, "Meera", tables.reservedName)
}

func TestConfirmIsIdempotent(t *testing.T) {
	repo := repository.NewGormReservationRepository(getTestDB(t))
	reservation := seedReservation(t, repo)
	tables := &fakeTableMarker{}
	handler := NewConfirmReservationHandler(repo, tables)

	_, err := handler.Handle(context.Background(), ConfirmReservationCommand{ReservationID: reservation.ID})
	require.NoError(t, err)

	tables.reservedTable = 0
	confirmed, err := handler.Handle(context.Background(), ConfirmReservationCommand{ReservationID: reservation.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, confirmed.Status)
	assert.Zero(t, tables.reservedTable)
}

func TestCancelConfirmedReopensTable(t *testing.T) {
	repo := repository.NewGormReservationRepository(getTestDB(t))
	reservation := seedReservation(t, repo)
	tables := &fakeTableMarker{}

	_, err := NewConfirmReservationHandler(repo, tables).Handle(context.Background(), ConfirmReservationCommand{ReservationID: reservation.ID})
	require.NoError(t, err)

	cancelled, err := NewCancelReservationHandler(repo, tables).Handle(context.Background(), CancelReservationCommand{ReservationID: reservation.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
	assert.Equal(t, 6, tables.reopenedTable)
}

func TestCancelPendingLeavesTableAlone(t *testing.T) {
	repo := repository.NewGormReservationRepository(getTestDB(t))
	reservation := seedReservation(t, repo)
	tables := &fakeTableMarker{}

	cancelled, err := NewCancelReservationHandler(repo, tables).Handle(context.Background(), CancelReservationCommand{ReservationID: reservation.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
	assert.Zero(t, tables.reopenedTable)
}

func TestConfirmCancelledFails(t *testing.T) {
	repo := repository.NewGormReservationRepository(getTestDB(t))
	reservation := seedReservation(t, repo)
	tables := &fakeTableMarker{}

	_, err := NewCancelReservationHandler(repo, tables).Handle(context.Background(), CancelReservationCommand{ReservationID: reservation.ID})
	require.NoError(t, err)

	_, err = NewConfirmReservationHandler(repo, tables).Handle(context.Background(), ConfirmReservationCommand{ReservationID: reservation.ID})
	assert.ErrorContains(t, err, "cancelled")
}
