package payment

import (
	"errors"
	"net/http"

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

// The callback endpoint is public: the gateway authenticates itself
// with the HMAC signature, not a user token.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/callback", h.Callback)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/init", middleware.ClientOnly(), h.Init)
	rg.GET("/payments/:reference", h.GetStatus)
}

func (h *Handler) Init(c *gin.Context) {
	var req InitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Init(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the booking's client can pay for it")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrNotPayable):
			response.Error(c, http.StatusConflict, "NOT_PAYABLE", "Booking must be confirmed and unpaid")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to initialise payment")
		}
		return
	}

	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) Callback(c *gin.Context) {
	var cb GatewayCallback
	if err := c.ShouldBindJSON(&cb); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid callback body")
		return
	}

	if err := h.service.HandleCallback(c.Request.Context(), cb); err != nil {
		switch {
		case errors.Is(err, ErrInvalidSignature):
			response.Error(c, http.StatusUnauthorized, "INVALID_SIGNATURE", "Callback signature verification failed")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Unknown payment reference")
		case errors.Is(err, ErrAmountMismatch):
			response.Error(c, http.StatusUnprocessableEntity, "AMOUNT_MISMATCH", "Callback amount does not match the booking")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process callback")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"processed": true})
}

func (h *Handler) GetStatus(c *gin.Context) {
	ref := c.Param("reference")
	if ref == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing payment reference")
		return
	}

	p, err := h.service.GetStatus(c.Request.Context(), c.GetInt64("user_id"), ref)
	if err != nil {
		switch {
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not a party to this payment")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load payment")
		}
		return
	}

	response.Success(c, http.StatusOK, p)
}
