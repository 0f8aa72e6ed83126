package user

import (
	"context"

	"salonbook/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, role string) ([]domain.User, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
