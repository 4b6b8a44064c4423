package upload

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
	rg.GET("/artists/:id/portfolio", h.ListPortfolio)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads/profile-picture", h.UploadProfilePicture)
	rg.POST("/uploads/portfolio", middleware.ArtistOnly(), h.UploadPortfolio)
	rg.DELETE("/uploads/portfolio/:id", middleware.ArtistOnly(), h.DeletePortfolioPhoto)
}

func (h *Handler) UploadProfilePicture(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "Image file is required")
		return
	}

	url, err := h.service.UploadProfilePicture(c.Request.Context(), c.GetInt64("user_id"), fh)
	if err != nil {
		h.writeError(c, err, "Failed to upload profile picture")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"url": url})
}

func (h *Handler) UploadPortfolio(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "Multipart form with images is required")
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "At least one image is required")
		return
	}

	results, err := h.service.UploadPortfolio(c.Request.Context(), c.GetInt64("user_id"), files)
	if err != nil {
		h.writeError(c, err, "Failed to upload portfolio photos")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"results": results})
}

func (h *Handler) ListPortfolio(c *gin.Context) {
	artistID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || artistID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid artist id")
		return
	}

	photos, err := h.service.ListPortfolio(c.Request.Context(), artistID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list portfolio")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"photos": photos})
}

func (h *Handler) DeletePortfolioPhoto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid photo id")
		return
	}

	if err := h.service.DeletePortfolioPhoto(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		h.writeError(c, err, "Failed to delete photo")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrFileTooLarge):
		response.Error(c, http.StatusBadRequest, "FILE_TOO_LARGE", "File exceeds the 5 MB limit")
	case errors.Is(err, ErrBadFileType):
		response.Error(c, http.StatusBadRequest, "INVALID_FORMAT", "Only jpeg, png and webp images are allowed")
	case errors.Is(err, ErrPortfolioFull):
		response.Error(c, http.StatusConflict, "PORTFOLIO_FULL", "Portfolio already holds the maximum number of photos")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only manage your own portfolio")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Photo not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
