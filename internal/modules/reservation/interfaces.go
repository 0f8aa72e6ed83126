package reservation

import (
	"context"

	"salonbook/internal/domain"
	"salonbook/internal/repository"
)

// ReservationRepository is the store contract the slot manager needs.
type ReservationRepository interface {
	FindActiveBySalonAndDate(ctx context.Context, salonID int64, date string, excludeID int64) ([]domain.Reservation, error)
	Insert(ctx context.Context, r *domain.Reservation) error
	FindByID(ctx context.Context, id int64, ownerID int64) (*domain.Reservation, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
	ListByUser(ctx context.Context, userID int64) ([]repository.ReservationWithSalon, error)
	ListAllDetailed(ctx context.Context) ([]repository.ReservationDetails, error)
}

// SalonRepository is the slice of the salon store used to validate that a
// booked salon exists.
type SalonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
}

// EventPublisher receives reservation lifecycle events for the live feed.
// A nil publisher is allowed; delivery is best effort and never fails the
// operation.
type EventPublisher interface {
	ReservationCreated(r *domain.Reservation)
	ReservationUpdated(r *domain.Reservation)
	ReservationDeleted(r *domain.Reservation)
}
