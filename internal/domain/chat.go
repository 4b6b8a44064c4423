package domain

import "time"

// Conversation is a thread between one artist and one client, usually
// bound to a booking. The unique index on booking_id makes
// find-or-create by booking idempotent: concurrent creators race on the
// insert and the loser re-fetches the winner's row.
type Conversation struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	ArtistID      int64     `json:"artist_id" gorm:"index;not null"`
	ClientID      int64     `json:"client_id" gorm:"index;not null"`
	BookingID     *int64    `json:"booking_id,omitempty" gorm:"uniqueIndex:uq_conversations_booking"`
	LastMessageAt time.Time `json:"last_message_at"`
	CreatedAt     time.Time `json:"created_at"`

	OtherUser   *Profile `json:"other_user,omitempty" gorm:"-"`
	Booking     *Booking `json:"booking,omitempty" gorm:"-"`
	LastMessage *Message `json:"last_message,omitempty" gorm:"-"`
	UnreadCount int      `json:"unread_count" gorm:"-"`
}

func (Conversation) TableName() string { return "conversations" }

func (c *Conversation) IsParticipant(userID int64) bool {
	return c.ArtistID == userID || c.ClientID == userID
}

func (c *Conversation) OtherParticipant(userID int64) int64 {
	if c.ArtistID == userID {
		return c.ClientID
	}
	return c.ArtistID
}

// Message is append-only, ordered by creation time.
type Message struct {
	ID             int64      `json:"id" gorm:"primaryKey"`
	ConversationID int64      `json:"conversation_id" gorm:"index;not null"`
	SenderID       int64      `json:"sender_id" gorm:"not null"`
	Content        string     `json:"content" gorm:"not null"`
	IsRead         bool       `json:"is_read" gorm:"default:false"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`

	Sender *Profile `json:"sender,omitempty" gorm:"-"`
}

func (Message) TableName() string { return "messages" }
