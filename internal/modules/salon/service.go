package salon

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"salonbook/internal/domain"
)

const (
	minRating = 1
	maxRating = 5
)

type Service struct {
	salons SalonRepository
}

func NewService(salons SalonRepository) *Service {
	return &Service{salons: salons}
}

func (s *Service) List(ctx context.Context, category string) ([]domain.Salon, error) {
	return s.salons.List(ctx, category)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Salon, error) {
	salon, err := s.salons.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return salon, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Salon, error) {
	rating := req.Rating
	if rating == 0 {
		rating = minRating
	}
	if rating < minRating || rating > maxRating {
		return nil, ErrValidation
	}

	salon := &domain.Salon{
		Name:     req.Name,
		Category: req.Category,
		Rating:   rating,
	}

	if err := s.salons.Create(ctx, salon); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return salon, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.Salon, error) {
	if req.Rating != nil && (*req.Rating < minRating || *req.Rating > maxRating) {
		return nil, ErrValidation
	}

	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Name != nil && *req.Name != "" {
		fields["salon"] = *req.Name
	}
	if req.Category != nil && *req.Category != "" {
		fields["category"] = *req.Category
	}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}

	updated, err := s.salons.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.salons.Delete(ctx, id)
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	total, err := s.salons.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.salons.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{Total: total, ByCategory: byCategory}, nil
}
