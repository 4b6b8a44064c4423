package chat

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"glambook/internal/domain"
	"glambook/internal/repository"
)

type Service struct {
	chats    ChatRepository
	bookings BookingReader
	profiles ProfileReader
	hub      *Hub
	notifs   NotificationSender
}

func NewService(chats ChatRepository, bookings BookingReader, profiles ProfileReader, hub *Hub, notifs NotificationSender) *Service {
	return &Service{
		chats:    chats,
		bookings: bookings,
		profiles: profiles,
		hub:      hub,
		notifs:   notifs,
	}
}

// GetOrCreateByBooking returns the booking's thread, creating it on
// first access. Concurrent first-openers race on the unique booking
// index; the loser re-fetches the winner's row.
func (s *Service) GetOrCreateByBooking(ctx context.Context, userID, bookingID int64) (*domain.Conversation, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !b.IsParty(userID) {
		return nil, ErrNotParticipant
	}

	conv, err := s.chats.GetConversationByBookingID(ctx, bookingID)
	if err == nil {
		return conv, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	conv = &domain.Conversation{
		ArtistID:  b.ArtistID,
		ClientID:  b.ClientID,
		BookingID: &bookingID,
	}
	if err := s.chats.CreateConversation(ctx, conv); err != nil {
		if repository.IsUniqueViolation(err) {
			return s.chats.GetConversationByBookingID(ctx, bookingID)
		}
		return nil, err
	}
	return conv, nil
}

// ListConversations returns the user's threads enriched with the
// counterpart profile, unread count and last message preview.
func (s *Service) ListConversations(ctx context.Context, userID int64, limit, offset int) ([]domain.Conversation, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.chats.ListConversations(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		c := &rows[i]
		if p, err := s.profiles.GetByUserID(ctx, c.OtherParticipant(userID)); err == nil {
			c.OtherUser = p
		}
		if cnt, err := s.chats.CountUnread(ctx, c.ID, userID); err == nil {
			c.UnreadCount = int(cnt)
		}
		if msgs, err := s.chats.GetMessages(ctx, c.ID, 1, nil); err == nil && len(msgs) > 0 {
			c.LastMessage = &msgs[0]
		}
	}
	return rows, nil
}

// GetMessages pages newest-first. hasMore signals an older page exists.
func (s *Service) GetMessages(ctx context.Context, userID, conversationID int64, limit int, beforeID *int64) ([]domain.Message, bool, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	if _, err := s.participantConversation(ctx, userID, conversationID); err != nil {
		return nil, false, err
	}

	msgs, err := s.chats.GetMessages(ctx, conversationID, limit+1, beforeID)
	if err != nil {
		return nil, false, err
	}

	hasMore := len(msgs) > limit
	if hasMore {
		msgs = msgs[:limit]
	}
	return msgs, hasMore, nil
}

func (s *Service) SendMessage(ctx context.Context, userID, conversationID int64, req SendMessageRequest) (*domain.Message, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrValidation
	}

	conv, err := s.participantConversation(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	msg := &domain.Message{
		ConversationID: conversationID,
		SenderID:       userID,
		Content:        content,
	}
	if err := s.chats.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	_ = s.chats.UpdateLastMessageAt(ctx, conversationID)

	recipient := conv.OtherParticipant(userID)
	delivered := false
	if s.hub != nil {
		s.hub.Push(userID, map[string]any{"kind": "message", "message": msg})
		delivered = s.hub.Push(recipient, map[string]any{"kind": "message", "message": msg})
	}
	if !delivered && s.notifs != nil {
		_ = s.notifs.NotifyNewMessage(ctx, recipient, conversationID)
	}

	return msg, nil
}

func (s *Service) MarkAsRead(ctx context.Context, userID, conversationID int64) (int64, error) {
	if _, err := s.participantConversation(ctx, userID, conversationID); err != nil {
		return 0, err
	}
	return s.chats.MarkMessagesAsRead(ctx, conversationID, userID)
}

func (s *Service) participantConversation(ctx context.Context, userID, conversationID int64) (*domain.Conversation, error) {
	conv, err := s.chats.GetConversationByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !conv.IsParticipant(userID) {
		return nil, ErrNotParticipant
	}
	return conv, nil
}
