package upload

import (
	"context"

	"glambook/internal/domain"
)

type PortfolioRepository interface {
	Create(ctx context.Context, p *domain.PortfolioPhoto) error
	GetByID(ctx context.Context, id int64) (*domain.PortfolioPhoto, error)
	ListByArtist(ctx context.Context, artistID int64) ([]domain.PortfolioPhoto, error)
	CountByArtist(ctx context.Context, artistID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type ProfilePictureWriter interface {
	UpdatePictureURL(ctx context.Context, userID int64, url string) error
}
