package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name     string
		from     AppointmentStatus
		to       AppointmentStatus
		expected bool
	}{
		{"booked to confirmed", StatusBooked, StatusConfirmed, true},
		{"booked to cancelled", StatusBooked, StatusCancelled, true},
		{"booked to noshow", StatusBooked, StatusNoShow, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to noshow", StatusConfirmed, StatusNoShow, true},
		{"confirmed back to booked", StatusConfirmed, StatusBooked, false},
		{"cancelled is terminal", StatusCancelled, StatusBooked, false},
		{"noshow is terminal", StatusNoShow, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := &Appointment{Type: TypeBooking, Status: tt.from}
			assert.Equal(t, tt.expected, appt.CanTransitionTo(tt.to))
		})
	}

	t.Run("only bookings transition", func(t *testing.T) {
		block := &Appointment{Type: TypeBlock, Status: StatusBlocked}
		assert.False(t, block.CanTransitionTo(StatusCancelled))
	})
}

func TestCanBeCancelled(t *testing.T) {
	assert.True(t, (&Appointment{Type: TypeBooking, Status: StatusBooked}).CanBeCancelled())
	assert.True(t, (&Appointment{Type: TypeBooking, Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Appointment{Type: TypeBooking, Status: StatusCancelled}).CanBeCancelled())
	assert.False(t, (&Appointment{Type: TypeVacation, Status: StatusVacation}).CanBeCancelled())
}

func TestIsActive(t *testing.T) {
	// Отмененные и неявки не занимают время на шкале
	assert.True(t, (&Appointment{Status: StatusBooked}).IsActive())
	assert.True(t, (&Appointment{Status: StatusBlocked}).IsActive())
	assert.False(t, (&Appointment{Status: StatusCancelled}).IsActive())
	assert.False(t, (&Appointment{Status: StatusNoShow}).IsActive())
}
