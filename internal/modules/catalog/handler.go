package catalog

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

// Reading the catalog is public, browsing happens before sign-up.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/artists/:id/services", h.ListByArtist)
	rg.GET("/services/:id", h.Get)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/services", middleware.ArtistOnly(), h.Create)
	rg.PUT("/services/:id", middleware.ArtistOnly(), h.Update)
	rg.DELETE("/services/:id", middleware.ArtistOnly(), h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err, "Failed to create service")
		return
	}

	response.Success(c, http.StatusCreated, svc)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to load service")
		return
	}

	response.Success(c, http.StatusOK, svc)
}

func (h *Handler) ListByArtist(c *gin.Context) {
	artistID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || artistID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid artist id")
		return
	}

	rows, err := h.service.ListByArtist(c.Request.Context(), artistID)
	if err != nil {
		h.writeError(c, err, "Failed to list services")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"services": rows})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc, err := h.service.Update(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update service")
		return
	}

	response.Success(c, http.StatusOK, svc)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		h.writeError(c, err, "Failed to delete service")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid service data")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only manage your own services")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid service id")
		return 0, false
	}
	return id, true
}
