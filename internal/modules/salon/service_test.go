package salon

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"salonbook/internal/domain"
	"salonbook/internal/repository"
)

type MockSalonRepository struct {
	mock.Mock
}

func (m *MockSalonRepository) Create(ctx context.Context, s *domain.Salon) error {
	args := m.Called(ctx, s)
	if s != nil && args.Error(0) == nil {
		s.ID = 77
	}
	return args.Error(0)
}

func (m *MockSalonRepository) GetByID(ctx context.Context, id int64) (*domain.Salon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Salon), args.Error(1)
}

func (m *MockSalonRepository) List(ctx context.Context, category string) ([]domain.Salon, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Salon), args.Error(1)
}

func (m *MockSalonRepository) Update(ctx context.Context, id int64, fields map[string]any) (*domain.Salon, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Salon), args.Error(1)
}

func (m *MockSalonRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSalonRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSalonRepository) CountByCategory(ctx context.Context) ([]repository.CategoryCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CategoryCount), args.Error(1)
}

func TestService_Create_DefaultsRating(t *testing.T) {
	repo := new(MockSalonRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Salon) bool {
		return s.Rating == 1
	})).Return(nil)

	service := NewService(repo)

	s, err := service.Create(context.Background(), CreateRequest{Name: "Grožio Namai", Category: "hair"})

	assert.NoError(t, err)
	assert.Equal(t, int64(77), s.ID)
	assert.Equal(t, 1, s.Rating)
}

func TestService_Create_RatingOutOfRange(t *testing.T) {
	repo := new(MockSalonRepository)
	service := NewService(repo)

	_, err := service.Create(context.Background(), CreateRequest{Name: "X", Category: "hair", Rating: 6})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.Create(context.Background(), CreateRequest{Name: "X", Category: "hair", Rating: -1})
	assert.ErrorIs(t, err, ErrValidation)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_DuplicateName(t *testing.T) {
	repo := new(MockSalonRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	service := NewService(repo)

	_, err := service.Create(context.Background(), CreateRequest{Name: "Grožio Namai", Category: "hair", Rating: 4})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(MockSalonRepository)
	repo.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo)

	rating := 3
	_, err := service.Update(context.Background(), 9, UpdateRequest{Rating: &rating})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_PartialPatch(t *testing.T) {
	repo := new(MockSalonRepository)
	existing := &domain.Salon{ID: 9, Name: "Old", Category: "hair", Rating: 2}
	updated := &domain.Salon{ID: 9, Name: "Old", Category: "hair", Rating: 5}

	repo.On("GetByID", mock.Anything, int64(9)).Return(existing, nil)
	repo.On("Update", mock.Anything, int64(9), mock.MatchedBy(func(fields map[string]any) bool {
		_, hasName := fields["salon"]
		return fields["rating"] == 5 && !hasName
	})).Return(updated, nil)

	service := NewService(repo)

	rating := 5
	s, err := service.Update(context.Background(), 9, UpdateRequest{Rating: &rating})

	assert.NoError(t, err)
	assert.Equal(t, 5, s.Rating)
}

func TestService_List_PassesCategory(t *testing.T) {
	repo := new(MockSalonRepository)
	repo.On("List", mock.Anything, "spa").Return([]domain.Salon{{ID: 1, Name: "SPA Centras", Category: "spa"}}, nil)

	service := NewService(repo)

	salons, err := service.List(context.Background(), "spa")

	assert.NoError(t, err)
	assert.Len(t, salons, 1)
	repo.AssertCalled(t, "List", mock.Anything, "spa")
}

func TestService_Stats(t *testing.T) {
	repo := new(MockSalonRepository)
	repo.On("CountAll", mock.Anything).Return(int64(4), nil)
	repo.On("CountByCategory", mock.Anything).Return([]repository.CategoryCount{
		{Category: "hair", Count: 2},
		{Category: "spa", Count: 2},
	}, nil)

	service := NewService(repo)

	stats, err := service.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(4), stats.Total)
	assert.Len(t, stats.ByCategory, 2)
}
