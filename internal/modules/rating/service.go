package rating

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"glambook/internal/domain"
	"glambook/internal/repository"
)

type Service struct {
	ratings  RatingRepository
	bookings BookingReader
	notifs   NotificationSender
}

func NewService(ratings RatingRepository, bookings BookingReader, notifs NotificationSender) *Service {
	return &Service{ratings: ratings, bookings: bookings, notifs: notifs}
}

// Create records the client's one-time review of a completed booking.
func (s *Service) Create(ctx context.Context, clientID int64, req CreateRatingRequest) (*domain.Rating, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrValidation
	}
	if req.TipAmount != nil && *req.TipAmount < 0 {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.ClientID != clientID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingCompleted {
		return nil, ErrBookingNotRatable
	}

	taken, err := s.ratings.ExistsForBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrAlreadyRated
	}

	rt := &domain.Rating{
		BookingID: req.BookingID,
		ArtistID:  b.ArtistID,
		ClientID:  clientID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		TipAmount: req.TipAmount,
	}
	if err := s.ratings.Create(ctx, rt); err != nil {
		// Concurrent double-submit slips past the exists check and
		// lands on the unique index instead.
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyRated
		}
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyNewRating(ctx, b.ArtistID, b.ID, rt.Rating)
	}

	return rt, nil
}

func (s *Service) ListByArtist(ctx context.Context, artistID int64) ([]domain.Rating, error) {
	return s.ratings.ListByArtist(ctx, artistID)
}

func (s *Service) ListByClient(ctx context.Context, clientID int64) ([]domain.Rating, error) {
	return s.ratings.ListByClient(ctx, clientID)
}

func (s *Service) ArtistSummary(ctx context.Context, artistID int64) (*ArtistSummary, error) {
	rows, err := s.ratings.ListByArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	out := &ArtistSummary{RatingCount: len(rows)}
	var sum float64
	for i := range rows {
		sum += float64(rows[i].Rating)
		if rows[i].TipAmount != nil {
			out.TipTotal += *rows[i].TipAmount
		}
	}
	if len(rows) > 0 {
		out.AverageRating = sum / float64(len(rows))
	}
	return out, nil
}
