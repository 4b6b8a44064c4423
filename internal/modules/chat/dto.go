package chat

type OpenConversationRequest struct {
	BookingID int64 `json:"booking_id" binding:"required"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}
