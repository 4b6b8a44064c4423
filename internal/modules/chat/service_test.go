package chat

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"glambook/internal/domain"
)

type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) CreateConversation(ctx context.Context, c *domain.Conversation) error {
	args := m.Called(ctx, c)
	if c != nil && args.Error(0) == nil {
		c.ID = 100
	}
	return args.Error(0)
}

func (m *MockChatRepository) GetConversationByID(ctx context.Context, id int64) (*domain.Conversation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}

func (m *MockChatRepository) GetConversationByBookingID(ctx context.Context, bookingID int64) (*domain.Conversation, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}

func (m *MockChatRepository) ListConversations(ctx context.Context, userID int64, limit, offset int) ([]domain.Conversation, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Conversation), args.Error(1)
}

func (m *MockChatRepository) CreateMessage(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	if msg != nil {
		msg.ID = 500
	}
	return args.Error(0)
}

func (m *MockChatRepository) GetMessages(ctx context.Context, conversationID int64, limit int, beforeID *int64) ([]domain.Message, error) {
	args := m.Called(ctx, conversationID, limit, beforeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

func (m *MockChatRepository) UpdateLastMessageAt(ctx context.Context, conversationID int64) error {
	args := m.Called(ctx, conversationID)
	return args.Error(0)
}

func (m *MockChatRepository) CountUnread(ctx context.Context, conversationID, userID int64) (int64, error) {
	args := m.Called(ctx, conversationID, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChatRepository) MarkMessagesAsRead(ctx context.Context, conversationID, readerID int64) (int64, error) {
	args := m.Called(ctx, conversationID, readerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockProfileReader struct {
	mock.Mock
}

func (m *MockProfileReader) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyNewMessage(ctx context.Context, userID, conversationID int64) error {
	args := m.Called(ctx, userID, conversationID)
	return args.Error(0)
}

func booking() *domain.Booking {
	return &domain.Booking{
		ID:       5,
		ArtistID: 1,
		ClientID: 2,
		Status:   domain.BookingConfirmed,
	}
}

func TestGetOrCreateByBooking_CreatesOnFirstOpen(t *testing.T) {
	chats := new(MockChatRepository)
	bookings := new(MockBookingReader)

	bookings.On("GetByID", mock.Anything, int64(5)).Return(booking(), nil)
	chats.On("GetConversationByBookingID", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound)
	chats.On("CreateConversation", mock.Anything, mock.MatchedBy(func(c *domain.Conversation) bool {
		return c.ArtistID == 1 && c.ClientID == 2 && c.BookingID != nil && *c.BookingID == 5
	})).Return(nil)

	svc := NewService(chats, bookings, new(MockProfileReader), nil, nil)

	conv, err := svc.GetOrCreateByBooking(context.Background(), 2, 5)

	assert.NoError(t, err)
	assert.Equal(t, int64(100), conv.ID)
}

func TestGetOrCreateByBooking_ReturnsExisting(t *testing.T) {
	chats := new(MockChatRepository)
	bookings := new(MockBookingReader)

	bookings.On("GetByID", mock.Anything, int64(5)).Return(booking(), nil)
	existing := &domain.Conversation{ID: 100, ArtistID: 1, ClientID: 2}
	chats.On("GetConversationByBookingID", mock.Anything, int64(5)).Return(existing, nil)

	svc := NewService(chats, bookings, new(MockProfileReader), nil, nil)

	conv, err := svc.GetOrCreateByBooking(context.Background(), 1, 5)

	assert.NoError(t, err)
	assert.Equal(t, existing, conv)
	chats.AssertNotCalled(t, "CreateConversation", mock.Anything, mock.Anything)
}

func TestGetOrCreateByBooking_LosingRacerRefetches(t *testing.T) {
	chats := new(MockChatRepository)
	bookings := new(MockBookingReader)

	bookings.On("GetByID", mock.Anything, int64(5)).Return(booking(), nil)
	winner := &domain.Conversation{ID: 100, ArtistID: 1, ClientID: 2}
	chats.On("GetConversationByBookingID", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound).Once()
	chats.On("CreateConversation", mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "23505"})
	chats.On("GetConversationByBookingID", mock.Anything, int64(5)).Return(winner, nil).Once()

	svc := NewService(chats, bookings, new(MockProfileReader), nil, nil)

	conv, err := svc.GetOrCreateByBooking(context.Background(), 2, 5)

	assert.NoError(t, err)
	assert.Equal(t, winner, conv)
}

func TestGetOrCreateByBooking_StrangerRejected(t *testing.T) {
	chats := new(MockChatRepository)
	bookings := new(MockBookingReader)

	bookings.On("GetByID", mock.Anything, int64(5)).Return(booking(), nil)

	svc := NewService(chats, bookings, new(MockProfileReader), nil, nil)

	_, err := svc.GetOrCreateByBooking(context.Background(), 77, 5)

	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestSendMessage_OfflineRecipientGetsNotification(t *testing.T) {
	chats := new(MockChatRepository)
	notifs := new(MockNotificationSender)

	chats.On("GetConversationByID", mock.Anything, int64(100)).Return(&domain.Conversation{
		ID:       100,
		ArtistID: 1,
		ClientID: 2,
	}, nil)
	chats.On("CreateMessage", mock.Anything, mock.Anything).Return(nil)
	chats.On("UpdateLastMessageAt", mock.Anything, int64(100)).Return(nil)
	notifs.On("NotifyNewMessage", mock.Anything, int64(1), int64(100)).Return(nil)

	svc := NewService(chats, new(MockBookingReader), new(MockProfileReader), NewHub(), notifs)

	msg, err := svc.SendMessage(context.Background(), 2, 100, SendMessageRequest{Content: "hi there"})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), msg.SenderID)
	notifs.AssertExpectations(t)
}

func TestSendMessage_EmptyContent(t *testing.T) {
	svc := NewService(new(MockChatRepository), new(MockBookingReader), new(MockProfileReader), nil, nil)

	_, err := svc.SendMessage(context.Background(), 2, 100, SendMessageRequest{Content: "   "})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestSendMessage_NonParticipant(t *testing.T) {
	chats := new(MockChatRepository)

	chats.On("GetConversationByID", mock.Anything, int64(100)).Return(&domain.Conversation{
		ID:       100,
		ArtistID: 1,
		ClientID: 2,
	}, nil)

	svc := NewService(chats, new(MockBookingReader), new(MockProfileReader), nil, nil)

	_, err := svc.SendMessage(context.Background(), 77, 100, SendMessageRequest{Content: "hi"})

	assert.ErrorIs(t, err, ErrNotParticipant)
	chats.AssertNotCalled(t, "CreateMessage", mock.Anything, mock.Anything)
}

func TestGetMessages_HasMorePaging(t *testing.T) {
	chats := new(MockChatRepository)

	chats.On("GetConversationByID", mock.Anything, int64(100)).Return(&domain.Conversation{
		ID:       100,
		ArtistID: 1,
		ClientID: 2,
	}, nil)
	// limit 2 requested, repo asked for 3, 3 returned -> one page more
	chats.On("GetMessages", mock.Anything, int64(100), 3, (*int64)(nil)).Return([]domain.Message{
		{ID: 30}, {ID: 29}, {ID: 28},
	}, nil)

	svc := NewService(chats, new(MockBookingReader), new(MockProfileReader), nil, nil)

	msgs, hasMore, err := svc.GetMessages(context.Background(), 1, 100, 2, nil)

	assert.NoError(t, err)
	assert.Len(t, msgs, 2)
	assert.True(t, hasMore)
}

func TestHub_PushToOffline(t *testing.T) {
	hub := NewHub()

	assert.False(t, hub.Push(42, map[string]any{"kind": "ping"}))
	assert.False(t, hub.IsOnline(42))
	assert.Equal(t, 0, hub.OnlineCount())
}
