package payment

type InitPaymentRequest struct {
	BookingID int64 `json:"booking_id" binding:"required"`
}

type InitPaymentResponse struct {
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"`
	Signature string  `json:"signature"`
}

// GatewayCallback is the server-to-server confirmation from the payment
// provider. The signature is an HMAC over reference|amount|status.
type GatewayCallback struct {
	Reference string  `json:"reference" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	Status    string  `json:"status" binding:"required"`
	Signature string  `json:"signature" binding:"required"`
	Reason    string  `json:"reason"`
}
