package profile

import (
	"context"

	"glambook/internal/domain"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) error
	ListArtists(ctx context.Context, city string, limit, offset int) ([]domain.Profile, error)
}

type RatingReader interface {
	ListByArtist(ctx context.Context, artistID int64) ([]domain.Rating, error)
}
