package repository

import (
	"context"

	"gorm.io/gorm"

	"glambook/internal/domain"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Create inserts the rating. The unique index on booking_id makes a
// second rating for the same booking fail with a unique violation.
func (r *RatingRepository) Create(ctx context.Context, rt *domain.Rating) error {
	return r.db.WithContext(ctx).Create(rt).Error
}

func (r *RatingRepository) ExistsForBooking(ctx context.Context, bookingID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.Rating{}).
		Where("booking_id = ?", bookingID).
		Count(&cnt)
	return cnt > 0, tx.Error
}

func (r *RatingRepository) ListByArtist(ctx context.Context, artistID int64) ([]domain.Rating, error) {
	var out []domain.Rating
	tx := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("created_at DESC").
		Find(&out)
	return out, tx.Error
}

func (r *RatingRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Rating, error) {
	var out []domain.Rating
	tx := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&out)
	return out, tx.Error
}
