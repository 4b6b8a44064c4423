package rating

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"glambook/internal/middleware"
	"glambook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/artists/:id/ratings", h.ListByArtist)
	rg.GET("/artists/:id/ratings/summary", h.ArtistSummary)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/ratings", middleware.ClientOnly(), h.Create)
	rg.GET("/ratings/mine", middleware.ClientOnly(), h.ListMine)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rt, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be 1-5 and tip non-negative")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the booking's client can rate it")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrBookingNotRatable):
			response.Error(c, http.StatusConflict, "NOT_RATABLE", "Only completed bookings can be rated")
		case errors.Is(err, ErrAlreadyRated):
			response.Error(c, http.StatusConflict, "ALREADY_RATED", "This booking has already been rated")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create rating")
		}
		return
	}

	response.Success(c, http.StatusCreated, rt)
}

func (h *Handler) ListByArtist(c *gin.Context) {
	id, ok := artistID(c)
	if !ok {
		return
	}

	rows, err := h.service.ListByArtist(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list ratings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ratings": rows})
}

func (h *Handler) ArtistSummary(c *gin.Context) {
	id, ok := artistID(c)
	if !ok {
		return
	}

	sum, err := h.service.ArtistSummary(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute summary")
		return
	}
	response.Success(c, http.StatusOK, sum)
}

func (h *Handler) ListMine(c *gin.Context) {
	rows, err := h.service.ListByClient(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list ratings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ratings": rows})
}

func artistID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid artist id")
		return 0, false
	}
	return id, true
}
