package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDING"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCompleted ReservationStatus = "COMPLETED"
	StatusCancelled ReservationStatus = "CANCELLED"
)

// IsTerminal returns true if no further status transition is accepted
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// IsValid returns true if the status is one of the known enumeration values
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Reservation represents a single dining reservation as the backend returns it.
// The numeric ID is server-internal; customer flows address a reservation only
// by its opaque token.
type Reservation struct {
	ID              int64             `json:"id"`
	Token           string            `json:"token"`
	UserName        string            `json:"userName"`
	UserEmail       string            `json:"userEmail"`
	UserPhone       string            `json:"userPhone"`
	ReservationDate time.Time         `json:"reservationDate"`
	RestaurantID    int64             `json:"restaurantId"`
	Status          ReservationStatus `json:"status"`
}

// CanBeCancelled returns true if the reservation may still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return !r.Status.IsTerminal()
}

// CanBeCompleted returns true if a worker may still mark the reservation completed
func (r *Reservation) CanBeCompleted() bool {
	return !r.Status.IsTerminal()
}
