package domain

import "time"

type GatewayPaymentStatus string

const (
	GatewayPaymentCreated GatewayPaymentStatus = "created"
	GatewayPaymentPaid    GatewayPaymentStatus = "paid"
	GatewayPaymentFailed  GatewayPaymentStatus = "failed"
)

// GatewayPayment records one payment attempt against a booking. The
// booking is only marked paid after the gateway callback's signature and
// amount check out server-side; a client "success" screen proves nothing.
type GatewayPayment struct {
	ID          int64                `json:"id" gorm:"primaryKey"`
	BookingID   int64                `json:"booking_id" gorm:"index;not null"`
	Reference   string               `json:"reference" gorm:"uniqueIndex;not null"`
	Amount      float64              `json:"amount" gorm:"not null"`
	Status      GatewayPaymentStatus `json:"status" gorm:"not null;default:'created'"`
	Signature   string               `json:"-"`
	RawCallback string               `json:"-" gorm:"type:text"`
	FailReason  string               `json:"fail_reason,omitempty"`
	PaidAt      *time.Time           `json:"paid_at,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

func (GatewayPayment) TableName() string { return "gateway_payments" }
