package booking

import (
	"context"

	"glambook/internal/domain"
)

// BookingRepository defines the persistence operations the lifecycle
// manager needs. The repo's update methods write fixed column sets;
// none of them can touch original_price.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Confirm(ctx context.Context, id int64, negotiatedPrice *float64, artistNotes string) error
	Cancel(ctx context.Context, id int64, artistNotes string) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	ListByArtist(ctx context.Context, artistID int64) ([]domain.Booking, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Booking, error)
}

// ServiceReader resolves the offering being booked.
type ServiceReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// ProfileReader resolves counterpart names for booking listings.
type ProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error)
}

// RatingReader feeds the artist dashboard aggregates.
type RatingReader interface {
	ListByArtist(ctx context.Context, artistID int64) ([]domain.Rating, error)
}

// NotificationSender pushes lifecycle events into the recipient's feed.
type NotificationSender interface {
	NotifyBookingCreated(ctx context.Context, artistID, bookingID int64) error
	NotifyBookingConfirmed(ctx context.Context, clientID, bookingID int64) error
	NotifyBookingCancelled(ctx context.Context, clientID, bookingID int64, reason string) error
	NotifyBookingCompleted(ctx context.Context, userID, bookingID int64) error
}
