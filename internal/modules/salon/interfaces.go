package salon

import (
	"context"

	"salonbook/internal/domain"
	"salonbook/internal/repository"
)

type SalonRepository interface {
	Create(ctx context.Context, s *domain.Salon) error
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
	List(ctx context.Context, category string) ([]domain.Salon, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*domain.Salon, error)
	Delete(ctx context.Context, id int64) error
	CountAll(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context) ([]repository.CategoryCount, error)
}
