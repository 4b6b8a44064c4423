package notification

import (
	"context"

	"glambook/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, userID, id int64) error
	MarkAllRead(ctx context.Context, userID int64) error
}

// Pusher delivers a realtime nudge to a connected user. Implemented by
// the chat hub; delivery is best effort.
type Pusher interface {
	Push(userID int64, payload any) bool
}
