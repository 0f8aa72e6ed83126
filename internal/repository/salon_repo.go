package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"salonbook/internal/domain"
)

type SalonRepository struct {
	db *gorm.DB
}

func NewSalonRepository(db *gorm.DB) *SalonRepository {
	return &SalonRepository{db: db}
}

type salonModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:salon;size:100;uniqueIndex"`
	Category  string    `gorm:"column:category"`
	Rating    int       `gorm:"column:rating;default:1"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (salonModel) TableName() string { return "salons" }

func toDomainSalon(m salonModel) *domain.Salon {
	return &domain.Salon{
		ID:        m.ID,
		Name:      m.Name,
		Category:  m.Category,
		Rating:    m.Rating,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toSalonModel(s *domain.Salon) salonModel {
	return salonModel{
		ID:        s.ID,
		Name:      s.Name,
		Category:  s.Category,
		Rating:    s.Rating,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// CategoryCount is one row of the per-category salon statistics.
type CategoryCount struct {
	Category string `json:"category" gorm:"column:category"`
	Count    int64  `json:"count" gorm:"column:count"`
}

func (r *SalonRepository) Create(ctx context.Context, s *domain.Salon) error {
	m := toSalonModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSalon(m)
	return nil
}

func (r *SalonRepository) GetByID(ctx context.Context, id int64) (*domain.Salon, error) {
	var m salonModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSalon(m), nil
}

// List returns salons newest first, optionally filtered by category.
func (r *SalonRepository) List(ctx context.Context, category string) ([]domain.Salon, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var rows []salonModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Salon, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainSalon(m))
	}
	return out, nil
}

func (r *SalonRepository) Update(ctx context.Context, id int64, fields map[string]any) (*domain.Salon, error) {
	fields["updated_at"] = time.Now()
	tx := r.db.WithContext(ctx).Model(&salonModel{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return r.GetByID(ctx, id)
}

func (r *SalonRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&salonModel{}, id).Error
}

func (r *SalonRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	tx := r.db.WithContext(ctx).Model(&salonModel{}).Count(&total)
	return total, tx.Error
}

func (r *SalonRepository) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	var rows []CategoryCount
	tx := r.db.WithContext(ctx).Model(&salonModel{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Scan(&rows)
	return rows, tx.Error
}
