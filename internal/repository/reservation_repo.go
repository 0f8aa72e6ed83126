package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"salonbook/internal/domain"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	UserID          int64     `gorm:"column:user_id;index"`
	SalonID         int64     `gorm:"column:salon_id;index"`
	ServiceType     string    `gorm:"column:service_type;size:100"`
	Date            string    `gorm:"column:reservation_date;size:10"`
	Time            string    `gorm:"column:reservation_time;size:5"`
	DurationMinutes int       `gorm:"column:duration;default:60"`
	Status          string    `gorm:"column:status;size:20;default:pending;index"`
	Notes           *string   `gorm:"column:notes;type:text"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) *domain.Reservation {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Reservation{
		ID:              m.ID,
		UserID:          m.UserID,
		SalonID:         m.SalonID,
		ServiceType:     m.ServiceType,
		Date:            m.Date,
		Time:            m.Time,
		DurationMinutes: m.DurationMinutes,
		Status:          domain.ReservationStatus(m.Status),
		Notes:           notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toReservationModel(r *domain.Reservation) reservationModel {
	var notes *string
	if r.Notes != "" {
		v := r.Notes
		notes = &v
	}

	return reservationModel{
		ID:              r.ID,
		UserID:          r.UserID,
		SalonID:         r.SalonID,
		ServiceType:     r.ServiceType,
		Date:            r.Date,
		Time:            r.Time,
		DurationMinutes: r.DurationMinutes,
		Status:          string(r.Status),
		Notes:           notes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// ReservationWithSalon is a reservation joined with salon display fields,
// used for a user's own reservation list.
type ReservationWithSalon struct {
	ID              int64     `json:"id" gorm:"column:id"`
	ServiceType     string    `json:"service_type" gorm:"column:service_type"`
	Date            string    `json:"reservation_date" gorm:"column:reservation_date"`
	Time            string    `json:"reservation_time" gorm:"column:reservation_time"`
	DurationMinutes int       `json:"duration" gorm:"column:duration"`
	Status          string    `json:"status" gorm:"column:status"`
	Notes           string    `json:"notes,omitempty" gorm:"column:notes"`
	CreatedAt       time.Time `json:"created_at" gorm:"column:created_at"`
	SalonName       string    `json:"salon_name" gorm:"column:salon_name"`
	SalonCategory   string    `json:"salon_category" gorm:"column:salon_category"`
}

// ReservationDetails additionally carries the booking owner, for the
// admin table.
type ReservationDetails struct {
	ReservationWithSalon
	Username string `json:"username" gorm:"column:username"`
	Email    string `json:"email" gorm:"column:email"`
}

// FindActiveBySalonAndDate returns the pending/confirmed reservations for
// a salon on a date, ordered by time. excludeID, when non-zero, removes a
// reservation from the result so an update does not conflict with itself.
func (r *ReservationRepository) FindActiveBySalonAndDate(ctx context.Context, salonID int64, date string, excludeID int64) ([]domain.Reservation, error) {
	q := r.db.WithContext(ctx).
		Where("salon_id = ? AND reservation_date = ?", salonID, date).
		Where("status IN ?", []string{string(domain.ReservationPending), string(domain.ReservationConfirmed)}).
		Order("reservation_time")
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var rows []reservationModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

func (r *ReservationRepository) Insert(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(res)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*res = *toDomainReservation(m)
	return nil
}

// FindByID looks up a reservation. A non-zero ownerID folds the ownership
// check into the query, so callers cannot distinguish "missing" from
// "owned by someone else".
func (r *ReservationRepository) FindByID(ctx context.Context, id int64, ownerID int64) (*domain.Reservation, error) {
	q := r.db.WithContext(ctx).Where("id = ?", id)
	if ownerID != 0 {
		q = q.Where("user_id = ?", ownerID)
	}

	var m reservationModel
	if err := q.First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainReservation(m), nil
}

// Update applies only the given columns, stamps updated_at and returns
// the fresh row.
func (r *ReservationRepository) Update(ctx context.Context, id int64, fields map[string]any) (*domain.Reservation, error) {
	fields["updated_at"] = time.Now()
	tx := r.db.WithContext(ctx).Model(&reservationModel{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return r.FindByID(ctx, id, 0)
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&reservationModel{}, id).Error
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID int64) ([]ReservationWithSalon, error) {
	var rows []ReservationWithSalon
	tx := r.db.WithContext(ctx).
		Table("reservations r").
		Select(`r.id, r.service_type, r.reservation_date, r.reservation_time,
			r.duration, r.status, r.notes, r.created_at,
			s.salon AS salon_name, s.category AS salon_category`).
		Joins("JOIN salons s ON r.salon_id = s.id").
		Where("r.user_id = ?", userID).
		Order("r.reservation_date DESC, r.reservation_time DESC").
		Scan(&rows)
	return rows, tx.Error
}

func (r *ReservationRepository) ListAllDetailed(ctx context.Context) ([]ReservationDetails, error) {
	var rows []ReservationDetails
	tx := r.db.WithContext(ctx).
		Table("reservations r").
		Select(`r.id, r.service_type, r.reservation_date, r.reservation_time,
			r.duration, r.status, r.notes, r.created_at,
			s.salon AS salon_name, s.category AS salon_category,
			u.username, u.email`).
		Joins("JOIN salons s ON r.salon_id = s.id").
		Joins("JOIN users u ON r.user_id = u.id").
		Order("r.reservation_date DESC, r.reservation_time DESC").
		Scan(&rows)
	return rows, tx.Error
}
