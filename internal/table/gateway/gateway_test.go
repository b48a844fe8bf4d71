package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dhaba/restaurant-pos/internal/table/domain"
	"github.com/dhaba/restaurant-pos/internal/table/repository"
)

func setupGateway(t *testing.T) (*TableGateway, domain.TableRepository) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Table{}))

	repo := repository.NewGormTableRepository(db)
	return NewTableGateway(repo), repo
}

func TestMarkReservedHoldsTable(t *testing.T) {
	gateway, repo := setupGateway(t)
	require.NoError(t, repo.Create(&domain.Table{Number: 8}))

	require.NoError(t, gateway.MarkReserved(8, "Meera"))

	table, err := repo.FindByNumber(8)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReserved, table.Status)
	assert.Equal(t, "Meera", table.CustomerName)
}

func TestMarkReservedFailsOnOccupiedTable(t *testing.T) {
	gateway, repo := setupGateway(t)
	require.NoError(t, repo.Create(&domain.Table{Number: 8, Status: domain.StatusOccupied}))

	err := gateway.MarkReserved(8, "Meera")
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestMarkAvailableIfReserved(t *testing.T) {
	gateway, repo := setupGateway(t)
	require.NoError(t, repo.Create(&domain.Table{Number: 8, Status: domain.StatusReserved, CustomerName: "Meera"}))

	require.NoError(t, gateway.MarkAvailableIfReserved(8))

	table, err := repo.FindByNumber(8)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAvailable, table.Status)
	assert.Empty(t, table.CustomerName)
}

func TestMarkAvailableLeavesSeatedWalkInAlone(t *testing.T) {
	gateway, repo := setupGateway(t)
	require.NoError(t, repo.Create(&domain.Table{Number: 8, Status: domain.StatusOccupied, CustomerName: "Walk In"}))

	require.NoError(t, gateway.MarkAvailableIfReserved(8))

	table, err := repo.FindByNumber(8)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOccupied, table.Status)
	assert.Equal(t, "Walk In", table.CustomerName)
}

func TestMarkReservedUnknownTable(t *testing.T) {
	gateway, _ := setupGateway(t)
	assert.Error(t, gateway.MarkReserved(42, "Ghost"))
}
