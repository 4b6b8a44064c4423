package profile

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"glambook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/artists", h.BrowseArtists)
	rg.GET("/artists/:id", h.GetArtist)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.GetMe)
	rg.PUT("/profile", h.UpdateMe)
}

func (h *Handler) GetMe(c *gin.Context) {
	p, err := h.service.GetMe(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err, "Failed to load profile")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.UpdateMe(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err, "Failed to update profile")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) GetArtist(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid artist id")
		return
	}

	card, err := h.service.GetArtist(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to load artist")
		return
	}
	response.Success(c, http.StatusOK, card)
}

func (h *Handler) BrowseArtists(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	cards, err := h.service.BrowseArtists(c.Request.Context(), c.Query("city"), limit, offset)
	if err != nil {
		h.writeError(c, err, "Failed to browse artists")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"artists": cards})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, ErrNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Profile not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
}
