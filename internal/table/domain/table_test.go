package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatAndClearCycle(t *testing.T) {
	tbl := &Table{Number: 5, Status: StatusAvailable}

	require.NoError(t, tbl.Transition(StatusOccupied))
	require.NoError(t, tbl.Transition(StatusCleaning))
	require.NoError(t, tbl.Transition(StatusAvailable))
	assert.Equal(t, StatusAvailable, tbl.Status)
}

func TestReservedTableCanBeSeatedOrFreed(t *testing.T) {
	tbl := &Table{Status: StatusReserved}
	require.NoError(t, tbl.Transition(StatusOccupied))

	tbl = &Table{Status: StatusReserved}
	require.NoError(t, tbl.Transition(StatusAvailable))
}

func TestIllegalTableTransitions(t *testing.T) {
	cases := []struct {
		from, to string
	}{
		{StatusOccupied, StatusReserved},
		{StatusOccupied, StatusOccupied},
		{StatusCleaning, StatusOccupied},
		{StatusCleaning, StatusReserved},
	}
	for _, tc := range cases {
		tbl := &Table{Status: tc.from}
		err := tbl.Transition(tc.to)
		assert.ErrorIs(t, err, ErrIllegalTransition, "%s -> %s", tc.from, tc.to)
		assert.Equal(t, tc.from, tbl.Status)
	}
}

func TestTransitionRejectsUnknownTableStatus(t *testing.T) {
	tbl := &Table{Status: StatusAvailable}
	err := tbl.Transition("flooded")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrIllegalTransition)
}

func TestValidStage(t *testing.T) {
	assert.True(t, ValidStage(StageWaiting))
	assert.True(t, ValidStage(StageBilling))
	assert.False(t, ValidStage("eating"))
}
