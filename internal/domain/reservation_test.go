package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatus(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())

	for _, s := range []ReservationStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		assert.True(t, s.IsValid())
	}
	assert.False(t, ReservationStatus("UNKNOWN").IsValid())
	assert.False(t, ReservationStatus("").IsValid())
}

func TestReservationTransitions(t *testing.T) {
	active := Reservation{Status: StatusConfirmed}
	assert.True(t, active.CanBeCancelled())
	assert.True(t, active.CanBeCompleted())

	done := Reservation{Status: StatusCompleted}
	assert.False(t, done.CanBeCancelled())
	assert.False(t, done.CanBeCompleted())
}
