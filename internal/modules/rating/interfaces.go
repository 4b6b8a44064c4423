package rating

import (
	"context"

	"glambook/internal/domain"
)

type RatingRepository interface {
	Create(ctx context.Context, rt *domain.Rating) error
	ExistsForBooking(ctx context.Context, bookingID int64) (bool, error)
	ListByArtist(ctx context.Context, artistID int64) ([]domain.Rating, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Rating, error)
}

type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type NotificationSender interface {
	NotifyNewRating(ctx context.Context, artistID, bookingID int64, stars int) error
}
