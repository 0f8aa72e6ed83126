package reservation

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"salonbook/internal/domain"
	"salonbook/internal/repository"
)

const defaultDurationMinutes = 60

// Service decides whether a proposed reservation is legal and computes
// bookable slots. It holds no state of its own; every cross-request
// invariant lives in the store, whose unique index on active
// (salon, date, time) rows is the authoritative double-booking guard.
type Service struct {
	reservations ReservationRepository
	salons       SalonRepository
	events       EventPublisher
}

func NewService(reservations ReservationRepository, salons SalonRepository, events EventPublisher) *Service {
	return &Service{
		reservations: reservations,
		salons:       salons,
		events:       events,
	}
}

// CheckConflict reports whether a booking of durationMinutes at date/clock
// would overlap an active reservation of the salon. excludeID, when
// non-zero, is left out of the comparison so a reservation can keep its
// own slot during an update.
func (s *Service) CheckConflict(ctx context.Context, salonID int64, date, clock string, durationMinutes int, excludeID int64) (bool, error) {
	if durationMinutes <= 0 {
		return false, ErrValidation
	}
	if _, err := parseDate(date); err != nil {
		return false, ErrValidation
	}
	start, err := parseClock(clock)
	if err != nil {
		return false, ErrValidation
	}

	active, err := s.reservations.FindActiveBySalonAndDate(ctx, salonID, date, excludeID)
	if err != nil {
		return false, err
	}

	for _, r := range active {
		bookedStart, err := parseClock(r.Time)
		if err != nil {
			return false, err
		}
		if overlaps(start, durationMinutes, bookedStart, r.DurationMinutes) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Reservation, error) {
	if req.SalonID == 0 || req.ServiceType == "" || req.Date == "" || req.Time == "" {
		return nil, ErrValidation
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = defaultDurationMinutes
	}
	if duration < 0 {
		return nil, ErrValidation
	}

	when, err := combineDateTime(req.Date, req.Time)
	if err != nil {
		return nil, ErrValidation
	}
	if !when.After(time.Now()) {
		return nil, ErrValidation
	}

	if _, err := s.salons.GetByID(ctx, req.SalonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSalonNotFound
		}
		return nil, err
	}

	conflict, err := s.CheckConflict(ctx, req.SalonID, req.Date, req.Time, duration, 0)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrConflict
	}

	r := &domain.Reservation{
		UserID:          req.UserID,
		SalonID:         req.SalonID,
		ServiceType:     req.ServiceType,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: duration,
		Status:          domain.ReservationPending,
		Notes:           req.Notes,
	}

	if err := s.reservations.Insert(ctx, r); err != nil {
		// Two requests may pass the pre-check simultaneously; the
		// store's unique index resolves the race and the loser gets
		// the same Conflict as a pre-check failure.
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	if s.events != nil {
		s.events.ReservationCreated(r)
	}
	return r, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest, requesterID int64, requesterIsAdmin bool) (*domain.Reservation, error) {
	existing, err := s.findVisible(ctx, id, requesterID, requesterIsAdmin)
	if err != nil {
		return nil, err
	}

	date := existing.Date
	if req.Date != nil {
		date = *req.Date
	}
	clock := existing.Time
	if req.Time != nil {
		clock = *req.Time
	}
	duration := existing.DurationMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}
	if duration <= 0 {
		return nil, ErrValidation
	}
	if req.Status != nil && !domain.ReservationStatus(*req.Status).Valid() {
		return nil, ErrValidation
	}

	if date != existing.Date || clock != existing.Time {
		conflict, err := s.CheckConflict(ctx, existing.SalonID, date, clock, duration, id)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, ErrConflict
		}
	}

	fields := map[string]any{}
	if req.ServiceType != nil {
		fields["service_type"] = *req.ServiceType
	}
	if req.Date != nil {
		if _, err := parseDate(*req.Date); err != nil {
			return nil, ErrValidation
		}
		fields["reservation_date"] = *req.Date
	}
	if req.Time != nil {
		if _, err := parseClock(*req.Time); err != nil {
			return nil, ErrValidation
		}
		fields["reservation_time"] = *req.Time
	}
	if req.DurationMinutes != nil {
		fields["duration"] = *req.DurationMinutes
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	updated, err := s.reservations.Update(ctx, id, fields)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	if s.events != nil {
		s.events.ReservationUpdated(updated)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64, requesterID int64, requesterIsAdmin bool) error {
	existing, err := s.findVisible(ctx, id, requesterID, requesterIsAdmin)
	if err != nil {
		return err
	}

	if err := s.reservations.Delete(ctx, id); err != nil {
		return err
	}

	if s.events != nil {
		s.events.ReservationDeleted(existing)
	}
	return nil
}

// AvailableSlots lists the free grid slots of a salon for a date, plus
// the raw booked intervals for display. Intentionally unauthenticated:
// visitors may inspect availability before logging in.
func (s *Service) AvailableSlots(ctx context.Context, salonID int64, date string) (*AvailabilityResponse, error) {
	if salonID == 0 {
		return nil, ErrValidation
	}
	if _, err := parseDate(date); err != nil {
		return nil, ErrValidation
	}

	active, err := s.reservations.FindActiveBySalonAndDate(ctx, salonID, date, 0)
	if err != nil {
		return nil, err
	}

	booked := make([]BookedSlot, 0, len(active))
	type interval struct{ start, dur int }
	intervals := make([]interval, 0, len(active))
	for _, r := range active {
		start, err := parseClock(r.Time)
		if err != nil {
			return nil, err
		}
		booked = append(booked, BookedSlot{Time: r.Time, DurationMinutes: r.DurationMinutes})
		intervals = append(intervals, interval{start: start, dur: r.DurationMinutes})
	}

	available := make([]string, 0)
	for _, slot := range SlotGrid() {
		slotStart, _ := parseClock(slot)
		free := true
		for _, iv := range intervals {
			if within(slotStart, iv.start, iv.dur) {
				free = false
				break
			}
		}
		if free {
			available = append(available, slot)
		}
	}

	return &AvailabilityResponse{
		Date:           date,
		SalonID:        salonID,
		AvailableSlots: available,
		BookedSlots:    booked,
	}, nil
}

func (s *Service) ListForUser(ctx context.Context, userID int64) ([]repository.ReservationWithSalon, error) {
	return s.reservations.ListByUser(ctx, userID)
}

func (s *Service) ListAll(ctx context.Context) ([]repository.ReservationDetails, error) {
	return s.reservations.ListAllDetailed(ctx)
}

// findVisible fetches a reservation with the ownership filter folded into
// the lookup. Non-owners get NotFound rather than Forbidden, so the
// existence of other users' reservations is never confirmed.
func (s *Service) findVisible(ctx context.Context, id, requesterID int64, requesterIsAdmin bool) (*domain.Reservation, error) {
	ownerFilter := requesterID
	if requesterIsAdmin {
		ownerFilter = 0
	}

	r, err := s.reservations.FindByID(ctx, id, ownerFilter)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func combineDateTime(date, clock string) (time.Time, error) {
	d, err := parseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	mins, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), mins/60, mins%60, 0, 0, time.Local), nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
