package chat

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"glambook/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Auth happens in middleware, cross-origin upgrades are fine.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Handler struct {
	service *Service
	hub     *Hub
	log     *logrus.Logger
}

func NewHandler(service *Service, hub *Hub, log *logrus.Logger) *Handler {
	return &Handler{service: service, hub: hub, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	chatGroup := rg.Group("/chat")
	{
		chatGroup.POST("/conversations", h.OpenConversation)
		chatGroup.GET("/conversations", h.ListConversations)
		chatGroup.GET("/conversations/:id/messages", h.GetMessages)
		chatGroup.POST("/conversations/:id/messages", h.SendMessage)
		chatGroup.POST("/conversations/:id/read", h.MarkAsRead)
		chatGroup.GET("/ws", h.WebSocket)
	}
}

func (h *Handler) OpenConversation(c *gin.Context) {
	var req OpenConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	conv, err := h.service.GetOrCreateByBooking(c.Request.Context(), c.GetInt64("user_id"), req.BookingID)
	if err != nil {
		h.writeError(c, err, "Failed to open conversation")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"conversation": conv})
}

func (h *Handler) ListConversations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	rows, err := h.service.ListConversations(c.Request.Context(), c.GetInt64("user_id"), limit, offset)
	if err != nil {
		h.writeError(c, err, "Failed to list conversations")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"conversations": rows})
}

func (h *Handler) GetMessages(c *gin.Context) {
	conversationID, ok := pathID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	var beforeID *int64
	if v := c.Query("before_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "before_id must be an integer")
			return
		}
		beforeID = &id
	}

	msgs, hasMore, err := h.service.GetMessages(c.Request.Context(), c.GetInt64("user_id"), conversationID, limit, beforeID)
	if err != nil {
		h.writeError(c, err, "Failed to load messages")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"messages": msgs,
		"has_more": hasMore,
	})
}

func (h *Handler) SendMessage(c *gin.Context) {
	conversationID, ok := pathID(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	msg, err := h.service.SendMessage(c.Request.Context(), c.GetInt64("user_id"), conversationID, req)
	if err != nil {
		h.writeError(c, err, "Failed to send message")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": msg})
}

func (h *Handler) MarkAsRead(c *gin.Context) {
	conversationID, ok := pathID(c)
	if !ok {
		return
	}

	updated, err := h.service.MarkAsRead(c.Request.Context(), c.GetInt64("user_id"), conversationID)
	if err != nil {
		h.writeError(c, err, "Failed to mark messages as read")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": updated})
}

// WebSocket upgrades the connection and parks it in the hub until the
// client hangs up. Inbound frames are only read to detect the close.
func (h *Handler) WebSocket(c *gin.Context) {
	userID := c.GetInt64("user_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	h.hub.Register(userID, conn)
	defer h.hub.Unregister(userID)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Message content must not be empty")
	case errors.Is(err, ErrNotParticipant):
		response.Error(c, http.StatusForbidden, "NOT_PARTICIPANT", "You are not a participant of this conversation")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Conversation not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid conversation id")
		return 0, false
	}
	return id, true
}
