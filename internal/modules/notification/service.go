package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"glambook/internal/domain"
)

// Service persists notifications and nudges online users over the
// websocket hub. It implements the sender interfaces of the booking,
// rating, chat and payment modules so those packages stay decoupled
// from storage and transport.
type Service struct {
	repo   NotificationRepository
	pusher Pusher
	log    *logrus.Logger
}

func NewService(repo NotificationRepository, pusher Pusher, log *logrus.Logger) *Service {
	return &Service{repo: repo, pusher: pusher, log: log}
}

func (s *Service) NotifyBookingCreated(ctx context.Context, artistID, bookingID int64) error {
	return s.emit(ctx, artistID, domain.NotifBookingCreated,
		"New booking request",
		"A client requested one of your services.",
		map[string]any{"booking_id": bookingID})
}

func (s *Service) NotifyBookingConfirmed(ctx context.Context, clientID, bookingID int64) error {
	return s.emit(ctx, clientID, domain.NotifBookingConfirmed,
		"Booking confirmed",
		"Your artist accepted the booking.",
		map[string]any{"booking_id": bookingID})
}

func (s *Service) NotifyBookingCancelled(ctx context.Context, clientID, bookingID int64, reason string) error {
	body := "Your booking was declined."
	if reason != "" {
		body = fmt.Sprintf("Your booking was declined: %s", reason)
	}
	return s.emit(ctx, clientID, domain.NotifBookingCancelled,
		"Booking declined", body,
		map[string]any{"booking_id": bookingID})
}

func (s *Service) NotifyBookingCompleted(ctx context.Context, userID, bookingID int64) error {
	return s.emit(ctx, userID, domain.NotifBookingCompleted,
		"Booking completed",
		"The booking has been marked as completed.",
		map[string]any{"booking_id": bookingID})
}

func (s *Service) NotifyPaymentReceived(ctx context.Context, artistID, bookingID int64, amount float64) error {
	return s.emit(ctx, artistID, domain.NotifPaymentReceived,
		"Payment received",
		fmt.Sprintf("A payment of %.2f was confirmed for your booking.", amount),
		map[string]any{"booking_id": bookingID, "amount": amount})
}

func (s *Service) NotifyNewRating(ctx context.Context, artistID, bookingID int64, stars int) error {
	return s.emit(ctx, artistID, domain.NotifNewRating,
		"New rating",
		fmt.Sprintf("A client left you a %d-star rating.", stars),
		map[string]any{"booking_id": bookingID, "rating": stars})
}

func (s *Service) NotifyNewMessage(ctx context.Context, userID, conversationID int64) error {
	return s.emit(ctx, userID, domain.NotifNewMessage,
		"New message",
		"You have a new message.",
		map[string]any{"conversation_id": conversationID})
}

func (s *Service) List(ctx context.Context, userID int64, limit, offset int) ([]domain.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, userID, id int64) error {
	return s.repo.MarkRead(ctx, userID, id)
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *Service) emit(ctx context.Context, userID int64, typ domain.NotificationType, title, body string, data map[string]any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	n := &domain.Notification{
		UserID: userID,
		Type:   typ,
		Title:  title,
		Body:   body,
		Data:   string(payload),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		s.log.WithError(err).WithField("type", typ).Warn("failed to store notification")
		return err
	}

	if s.pusher != nil {
		s.pusher.Push(userID, map[string]any{
			"kind":         "notification",
			"notification": n,
		})
	}
	return nil
}
