package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"glambook/internal/domain"
)

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	if s != nil {
		s.ID = 20
	}
	return args.Error(0)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) ListByArtist(ctx context.Context, artistID int64) ([]domain.Service, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockServiceRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateService(t *testing.T) {
	repo := new(MockServiceRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	svc := NewService(repo)

	out, err := svc.Create(context.Background(), 1, CreateServiceRequest{
		ServiceName: "Bridal glam",
		ServiceType: "bridal",
		BasePrice:   15000,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.ArtistID)
	assert.Equal(t, 15000.0, out.BasePrice)
}

func TestUpdateService_PartialFields(t *testing.T) {
	repo := new(MockServiceRepository)
	repo.On("GetByID", mock.Anything, int64(20)).Return(&domain.Service{
		ID:          20,
		ArtistID:    1,
		ServiceName: "Bridal glam",
		ServiceType: "bridal",
		BasePrice:   15000,
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.Service) bool {
		return s.BasePrice == 18000 && s.ServiceName == "Bridal glam"
	})).Return(nil)
	svc := NewService(repo)

	price := 18000.0
	out, err := svc.Update(context.Background(), 1, 20, UpdateServiceRequest{BasePrice: &price})

	assert.NoError(t, err)
	assert.Equal(t, 18000.0, out.BasePrice)
	repo.AssertExpectations(t)
}

func TestUpdateService_OtherArtistForbidden(t *testing.T) {
	repo := new(MockServiceRepository)
	repo.On("GetByID", mock.Anything, int64(20)).Return(&domain.Service{
		ID:       20,
		ArtistID: 1,
	}, nil)
	svc := NewService(repo)

	price := 1.0
	_, err := svc.Update(context.Background(), 77, 20, UpdateServiceRequest{BasePrice: &price})

	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateService_NegativePrice(t *testing.T) {
	repo := new(MockServiceRepository)
	repo.On("GetByID", mock.Anything, int64(20)).Return(&domain.Service{
		ID:          20,
		ArtistID:    1,
		ServiceName: "Bridal glam",
		ServiceType: "bridal",
	}, nil)
	svc := NewService(repo)

	price := -5.0
	_, err := svc.Update(context.Background(), 1, 20, UpdateServiceRequest{BasePrice: &price})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteService_NotFound(t *testing.T) {
	repo := new(MockServiceRepository)
	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)
	svc := NewService(repo)

	err := svc.Delete(context.Background(), 1, 404)

	assert.ErrorIs(t, err, ErrNotFound)
}
