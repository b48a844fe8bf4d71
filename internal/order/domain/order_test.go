package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderLifecycle(t *testing.T) {
	o := &Order{Status: StatusPending}

	require.NoError(t, o.Transition(StatusPreparing))
	require.NoError(t, o.Transition(StatusReady))
	require.NoError(t, o.Transition(StatusCompleted))

	assert.Equal(t, StatusCompleted, o.Status)
	assert.NotNil(t, o.CompletedAt)
	assert.False(t, o.IsOpen())
}

func TestCancelFromPendingAndPreparing(t *testing.T) {
	o := &Order{Status: StatusPending}
	require.NoError(t, o.Transition(StatusCancelled))

	o = &Order{Status: StatusPreparing}
	require.NoError(t, o.Transition(StatusCancelled))
	assert.False(t, o.IsOpen())
}

func TestIllegalTransitions(t *testing.T) {
	cases := []struct {
		from, to string
	}{
		{StatusPending, StatusReady},
		{StatusPending, StatusCompleted},
		{StatusReady, StatusCancelled},
		{StatusCompleted, StatusPreparing},
		{StatusCancelled, StatusPending},
	}
	for _, tc := range cases {
		o := &Order{Status: tc.from}
		err := o.Transition(tc.to)
		assert.ErrorIs(t, err, ErrIllegalTransition, "%s -> %s", tc.from, tc.to)
	}
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	o := &Order{Status: StatusPending}
	err := o.Transition("burnt")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrIllegalTransition)
}
