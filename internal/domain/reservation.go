package domain

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled, ReservationCompleted:
		return true
	}
	return false
}

// Active reservations are the ones that occupy a slot. Cancelled and
// completed ones do not block new bookings.
func (s ReservationStatus) Active() bool {
	return s == ReservationPending || s == ReservationConfirmed
}

// Reservation is a booking of a salon for a given calendar date and
// time of day. Date is a naive "2006-01-02" date and Time a "15:04"
// time; no time zone resolution is attempted.
type Reservation struct {
	ID              int64             `json:"id"`
	UserID          int64             `json:"user_id"`
	SalonID         int64             `json:"salon_id" validate:"required"`
	ServiceType     string            `json:"service_type" validate:"required"`
	Date            string            `json:"reservation_date" validate:"required"`
	Time            string            `json:"reservation_time" validate:"required"`
	DurationMinutes int               `json:"duration"`
	Status          ReservationStatus `json:"status"`
	Notes           string            `json:"notes,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
