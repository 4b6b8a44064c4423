package chat

import (
	"context"

	"glambook/internal/domain"
)

type ChatRepository interface {
	CreateConversation(ctx context.Context, c *domain.Conversation) error
	GetConversationByID(ctx context.Context, id int64) (*domain.Conversation, error)
	GetConversationByBookingID(ctx context.Context, bookingID int64) (*domain.Conversation, error)
	ListConversations(ctx context.Context, userID int64, limit, offset int) ([]domain.Conversation, error)
	CreateMessage(ctx context.Context, m *domain.Message) error
	GetMessages(ctx context.Context, conversationID int64, limit int, beforeID *int64) ([]domain.Message, error)
	UpdateLastMessageAt(ctx context.Context, conversationID int64) error
	CountUnread(ctx context.Context, conversationID, userID int64) (int64, error)
	MarkMessagesAsRead(ctx context.Context, conversationID, readerID int64) (int64, error)
}

type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type ProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error)
}

type NotificationSender interface {
	NotifyNewMessage(ctx context.Context, userID, conversationID int64) error
}
