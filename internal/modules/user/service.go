package user

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"salonbook/internal/domain"
)

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

func (s *Service) List(ctx context.Context, role string) ([]domain.User, error) {
	users, err := s.users.List(ctx, role)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

func (s *Service) SearchByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

// Update applies a partial patch. Only administrators may change a role;
// an email change is rejected when another account already uses it.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest, requesterIsAdmin bool) (*domain.User, error) {
	existing, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	fields := map[string]any{}

	if req.Username != nil && *req.Username != "" {
		fields["username"] = strings.TrimSpace(*req.Username)
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != "" && email != existing.Email {
			if _, err := s.users.GetByEmail(ctx, email); err == nil {
				return nil, ErrEmailTaken
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			fields["email"] = email
		}
	}

	if req.Role != nil && domain.UserRole(*req.Role) != existing.Role {
		if !requesterIsAdmin {
			return nil, ErrForbidden
		}
		if !domain.UserRole(*req.Role).Valid() {
			return nil, ErrForbidden
		}
		fields["role"] = *req.Role
	}

	if len(fields) == 0 {
		existing.PasswordHash = ""
		return existing, nil
	}

	updated, err := s.users.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	updated.PasswordHash = ""
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}
