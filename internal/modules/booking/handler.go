package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"glambook/internal/domain"
	"glambook/internal/middleware"
	"glambook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", middleware.ClientOnly(), h.Create)
	rg.GET("/bookings", h.List)
	rg.GET("/bookings/stats", h.Stats)
	rg.GET("/bookings/:id", h.Get)
	rg.POST("/bookings/:id/accept", middleware.ArtistOnly(), h.Accept)
	rg.POST("/bookings/:id/decline", middleware.ArtistOnly(), h.Decline)
	rg.POST("/bookings/:id/complete", h.Complete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), userID(c), req)
	if err != nil {
		h.writeError(c, err, "Failed to create booking")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":             b.ID,
		"status":         b.Status,
		"original_price": b.OriginalPrice,
	})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	d, err := h.service.GetForUser(c.Request.Context(), userID(c), id)
	if err != nil {
		h.writeError(c, err, "Failed to load booking")
		return
	}

	response.Success(c, http.StatusOK, d)
}

func (h *Handler) List(c *gin.Context) {
	role := domain.UserRole(c.GetString("role"))

	rows, err := h.service.ListForUser(c.Request.Context(), userID(c), role)
	if err != nil {
		h.writeError(c, err, "Failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": rows})
}

func (h *Handler) Accept(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req AcceptBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Accept(c.Request.Context(), userID(c), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to accept booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"id":               b.ID,
		"status":           b.Status,
		"negotiated_price": b.NegotiatedPrice,
		"effective_price":  b.EffectivePrice(),
		"platform_fee":     b.PlatformFee(),
		"total_due":        b.TotalDue(),
	})
}

func (h *Handler) Decline(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req DeclineBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Decline(c.Request.Context(), userID(c), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to decline booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"id":     b.ID,
		"status": b.Status,
	})
}

func (h *Handler) Complete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	b, err := h.service.Complete(c.Request.Context(), userID(c), id)
	if err != nil {
		h.writeError(c, err, "Failed to complete booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"id":     b.ID,
		"status": b.Status,
	})
}

func (h *Handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	if domain.UserRole(c.GetString("role")) == domain.RoleArtist {
		stats, err := h.service.ArtistStats(ctx, uid)
		if err != nil {
			h.writeError(c, err, "Failed to compute stats")
			return
		}
		response.Success(c, http.StatusOK, stats)
		return
	}

	stats, err := h.service.ClientStats(ctx, uid)
	if err != nil {
		h.writeError(c, err, "Failed to compute stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not a party to this booking")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", "Booking is not in a state that allows this action")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func userID(c *gin.Context) int64 {
	return c.GetInt64("user_id")
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return 0, false
	}
	return id, true
}
