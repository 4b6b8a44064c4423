package upload

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"glambook/internal/domain"
)

type MockPortfolioRepository struct {
	mock.Mock
}

func (m *MockPortfolioRepository) Create(ctx context.Context, p *domain.PortfolioPhoto) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPortfolioRepository) GetByID(ctx context.Context, id int64) (*domain.PortfolioPhoto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortfolioPhoto), args.Error(1)
}

func (m *MockPortfolioRepository) ListByArtist(ctx context.Context, artistID int64) ([]domain.PortfolioPhoto, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PortfolioPhoto), args.Error(1)
}

func (m *MockPortfolioRepository) CountByArtist(ctx context.Context, artistID int64) (int64, error) {
	args := m.Called(ctx, artistID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPortfolioRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProfilePictureWriter struct {
	mock.Mock
}

func (m *MockProfilePictureWriter) UpdatePictureURL(ctx context.Context, userID int64, url string) error {
	args := m.Called(ctx, userID, url)
	return args.Error(0)
}

func newUploadService(t *testing.T, repo *MockPortfolioRepository) *Service {
	t.Helper()
	store := NewStore(t.TempDir(), "/static/uploads")
	return NewService(store, repo, new(MockProfilePictureWriter), logrus.New())
}

func TestUploadPortfolio_FullGalleryRejected(t *testing.T) {
	repo := new(MockPortfolioRepository)
	repo.On("CountByArtist", mock.Anything, int64(1)).Return(int64(domain.MaxPortfolioPhotos), nil)

	svc := newUploadService(t, repo)

	_, err := svc.UploadPortfolio(context.Background(), 1, nil)

	assert.ErrorIs(t, err, ErrPortfolioFull)
}

func TestDeletePortfolioPhoto_OwnershipEnforced(t *testing.T) {
	repo := new(MockPortfolioRepository)
	repo.On("GetByID", mock.Anything, int64(9)).Return(&domain.PortfolioPhoto{
		ID:       9,
		ArtistID: 1,
	}, nil)

	svc := newUploadService(t, repo)

	err := svc.DeletePortfolioPhoto(context.Background(), 77, 9)

	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeletePortfolioPhoto_Missing(t *testing.T) {
	repo := new(MockPortfolioRepository)
	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := newUploadService(t, repo)

	err := svc.DeletePortfolioPhoto(context.Background(), 1, 404)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePortfolioPhoto_Success(t *testing.T) {
	repo := new(MockPortfolioRepository)
	repo.On("GetByID", mock.Anything, int64(9)).Return(&domain.PortfolioPhoto{
		ID:       9,
		ArtistID: 1,
		FilePath: "", // nothing on disk to remove
	}, nil)
	repo.On("Delete", mock.Anything, int64(9)).Return(nil)

	svc := newUploadService(t, repo)

	err := svc.DeletePortfolioPhoto(context.Background(), 1, 9)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
