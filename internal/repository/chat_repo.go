package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"glambook/internal/domain"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) CreateConversation(ctx context.Context, c *domain.Conversation) error {
	if c.LastMessageAt.IsZero() {
		c.LastMessageAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ChatRepository) GetConversationByID(ctx context.Context, id int64) (*domain.Conversation, error) {
	var c domain.Conversation
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ChatRepository) GetConversationByBookingID(ctx context.Context, bookingID int64) (*domain.Conversation, error) {
	var c domain.Conversation
	tx := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&c)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *ChatRepository) ListConversations(ctx context.Context, userID int64, limit, offset int) ([]domain.Conversation, error) {
	var out []domain.Conversation
	tx := r.db.WithContext(ctx).
		Where("artist_id = ? OR client_id = ?", userID, userID).
		Order("last_message_at DESC").
		Limit(limit).Offset(offset).
		Find(&out)
	return out, tx.Error
}

func (r *ChatRepository) CreateMessage(ctx context.Context, m *domain.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// GetMessages returns newest-first, optionally older than beforeID.
func (r *ChatRepository) GetMessages(ctx context.Context, conversationID int64, limit int, beforeID *int64) ([]domain.Message, error) {
	q := r.db.WithContext(ctx).Where("conversation_id = ?", conversationID)
	if beforeID != nil {
		q = q.Where("id < ?", *beforeID)
	}
	var out []domain.Message
	tx := q.Order("created_at DESC").Limit(limit).Find(&out)
	return out, tx.Error
}

func (r *ChatRepository) UpdateLastMessageAt(ctx context.Context, conversationID int64) error {
	return r.db.WithContext(ctx).Model(&domain.Conversation{}).
		Where("id = ?", conversationID).
		Update("last_message_at", time.Now()).Error
}

func (r *ChatRepository) CountUnread(ctx context.Context, conversationID, userID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, userID, false).
		Count(&cnt)
	return cnt, tx.Error
}

func (r *ChatRepository) MarkMessagesAsRead(ctx context.Context, conversationID, readerID int64) (int64, error) {
	now := time.Now()
	tx := r.db.WithContext(ctx).Model(&domain.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, readerID, false).
		Updates(map[string]any{"is_read": true, "read_at": now})
	return tx.RowsAffected, tx.Error
}
