package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"glambook/internal/domain"
)

type Service struct {
	bookings BookingRepository
	services ServiceReader
	profiles ProfileReader
	ratings  RatingReader
	notifs   NotificationSender
}

func NewService(
	bookings BookingRepository,
	services ServiceReader,
	profiles ProfileReader,
	ratings RatingReader,
	notifs NotificationSender,
) *Service {
	return &Service{
		bookings: bookings,
		services: services,
		profiles: profiles,
		ratings:  ratings,
		notifs:   notifs,
	}
}

// Create opens a booking request. The service's current base price is
// captured as original_price and the status is forced to pending no
// matter what the caller sends.
func (s *Service) Create(ctx context.Context, clientID int64, req CreateBookingRequest) (*domain.Booking, error) {
	if clientID == req.ArtistID {
		return nil, ErrValidation
	}
	if req.BookingDate.Before(time.Now()) {
		return nil, ErrValidation
	}

	svc, err := s.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}
	if svc.ArtistID != req.ArtistID {
		return nil, ErrValidation
	}

	b := &domain.Booking{
		ArtistID:      req.ArtistID,
		ClientID:      clientID,
		ServiceID:     req.ServiceID,
		BookingDate:   req.BookingDate,
		Status:        domain.BookingPending,
		OriginalPrice: svc.BasePrice,
		ClientNotes:   req.ClientNotes,
		TravelAddress: req.TravelAddress,
		PaymentStatus: domain.PaymentUnpaid,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCreated(ctx, b.ArtistID, b.ID)
	}

	return b, nil
}

// Accept moves pending -> confirmed. Only the booking's artist may call
// it; the optional negotiated price overrides the original for every
// later price computation.
func (s *Service) Accept(ctx context.Context, artistID, bookingID int64, req AcceptBookingRequest) (*domain.Booking, error) {
	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.ArtistID != artistID {
		return nil, ErrForbidden
	}
	if req.NegotiatedPrice != nil && *req.NegotiatedPrice < 0 {
		return nil, ErrValidation
	}
	if !domain.CanTransition(b.Status, domain.BookingConfirmed) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.Confirm(ctx, bookingID, req.NegotiatedPrice, req.ArtistNotes); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingConfirmed(ctx, b.ClientID, b.ID)
	}

	return s.bookings.GetByID(ctx, bookingID)
}

// Decline moves pending -> cancelled with the artist's optional reason.
func (s *Service) Decline(ctx context.Context, artistID, bookingID int64, req DeclineBookingRequest) (*domain.Booking, error) {
	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.ArtistID != artistID {
		return nil, ErrForbidden
	}
	if !domain.CanTransition(b.Status, domain.BookingCancelled) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.Cancel(ctx, bookingID, req.ArtistNotes); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCancelled(ctx, b.ClientID, b.ID, req.ArtistNotes)
	}

	return s.bookings.GetByID(ctx, bookingID)
}

// Complete moves confirmed -> completed. Either party may close out an
// engagement that took place.
func (s *Service) Complete(ctx context.Context, actorID, bookingID int64) (*domain.Booking, error) {
	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.IsParty(actorID) {
		return nil, ErrForbidden
	}
	if !domain.CanTransition(b.Status, domain.BookingCompleted) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingCompleted); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		other := b.ArtistID
		if actorID == b.ArtistID {
			other = b.ClientID
		}
		_ = s.notifs.NotifyBookingCompleted(ctx, other, b.ID)
	}

	return s.bookings.GetByID(ctx, bookingID)
}

// GetForUser returns one booking, visible only to its two parties.
func (s *Service) GetForUser(ctx context.Context, actorID, bookingID int64) (*BookingDetails, error) {
	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.IsParty(actorID) {
		return nil, ErrForbidden
	}
	d := s.toDetails(ctx, b)
	return &d, nil
}

// ListForUser returns the actor's bookings, artist side or client side
// depending on role.
func (s *Service) ListForUser(ctx context.Context, userID int64, role domain.UserRole) ([]BookingDetails, error) {
	var (
		rows []domain.Booking
		err  error
	)
	if role == domain.RoleArtist {
		rows, err = s.bookings.ListByArtist(ctx, userID)
	} else {
		rows, err = s.bookings.ListByClient(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	out := make([]BookingDetails, 0, len(rows))
	for i := range rows {
		out = append(out, s.toDetails(ctx, &rows[i]))
	}
	return out, nil
}

// ArtistStats recomputes the dashboard aggregates from a full scan of
// the artist's bookings and ratings. No caching, idempotent under
// re-fetch.
func (s *Service) ArtistStats(ctx context.Context, artistID int64) (*ArtistStats, error) {
	rows, err := s.bookings.ListByArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	stats := &ArtistStats{TotalBookings: len(rows)}
	for i := range rows {
		b := &rows[i]
		switch b.Status {
		case domain.BookingPending:
			stats.PendingBookings++
		case domain.BookingCompleted:
			stats.CompletedBookings++
		}
		if b.Status != domain.BookingCancelled {
			stats.TotalRevenue += b.EffectivePrice()
		}
	}
	if stats.TotalBookings > 0 {
		stats.CompletionRate = float64(stats.CompletedBookings) / float64(stats.TotalBookings)
	}

	ratings, err := s.ratings.ListByArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}
	stats.RatingCount = len(ratings)
	var sum float64
	for i := range ratings {
		sum += float64(ratings[i].Rating)
		if ratings[i].TipAmount != nil {
			stats.TipTotal += *ratings[i].TipAmount
		}
	}
	if len(ratings) > 0 {
		stats.AverageRating = sum / float64(len(ratings))
	}

	return stats, nil
}

func (s *Service) ClientStats(ctx context.Context, clientID int64) (*ClientStats, error) {
	rows, err := s.bookings.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	stats := &ClientStats{TotalBookings: len(rows)}
	for i := range rows {
		b := &rows[i]
		switch b.Status {
		case domain.BookingPending:
			stats.PendingBookings++
		case domain.BookingCompleted:
			stats.CompletedBookings++
		}
		if b.Status != domain.BookingCancelled {
			stats.TotalSpent += b.EffectivePrice()
		}
	}
	return stats, nil
}

func (s *Service) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load booking: %w", err)
	}
	return b, nil
}

func (s *Service) toDetails(ctx context.Context, b *domain.Booking) BookingDetails {
	d := BookingDetails{
		ID:              b.ID,
		Status:          string(b.Status),
		BookingDate:     b.BookingDate,
		ServiceID:       b.ServiceID,
		ArtistID:        b.ArtistID,
		ClientID:        b.ClientID,
		OriginalPrice:   b.OriginalPrice,
		NegotiatedPrice: b.NegotiatedPrice,
		EffectivePrice:  b.EffectivePrice(),
		PlatformFee:     b.PlatformFee(),
		TotalDue:        b.TotalDue(),
		PaymentStatus:   string(b.PaymentStatus),
		ClientNotes:     b.ClientNotes,
		ArtistNotes:     b.ArtistNotes,
		TravelAddress:   b.TravelAddress,
		CreatedAt:       b.CreatedAt,
	}

	if svc, err := s.services.GetByID(ctx, b.ServiceID); err == nil {
		d.ServiceName = svc.ServiceName
		d.ServiceType = svc.ServiceType
	}
	if p, err := s.profiles.GetByUserID(ctx, b.ArtistID); err == nil {
		d.ArtistName = p.FullName()
	}
	if p, err := s.profiles.GetByUserID(ctx, b.ClientID); err == nil {
		d.ClientName = p.FullName()
	}
	return d
}
