package domain

import (
	"math"
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// PlatformFeeRate is the marketplace surcharge applied when a booking
// carries no explicit fee override.
const PlatformFeeRate = 0.05

type Booking struct {
	ID          int64         `json:"id" gorm:"primaryKey"`
	ArtistID    int64         `json:"artist_id" gorm:"index;not null"`
	ClientID    int64         `json:"client_id" gorm:"index;not null"`
	ServiceID   int64         `json:"service_id" gorm:"not null"`
	BookingDate time.Time     `json:"booking_date" gorm:"not null"`
	Status      BookingStatus `json:"status" gorm:"not null;default:'pending'"`

	// OriginalPrice is the service's base price captured at creation.
	// It is never written again by any transition.
	OriginalPrice   float64  `json:"original_price" gorm:"not null"`
	NegotiatedPrice *float64 `json:"negotiated_price,omitempty"`
	PlatformFeeOvr  *float64 `json:"platform_fee,omitempty" gorm:"column:platform_fee"`

	ClientNotes   string        `json:"client_notes,omitempty" gorm:"type:text"`
	ArtistNotes   string        `json:"artist_notes,omitempty" gorm:"type:text"`
	TravelAddress string        `json:"travel_address,omitempty"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"default:'unpaid'"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	Artist  *Profile `json:"artist,omitempty" gorm:"-"`
	Client  *Profile `json:"client,omitempty" gorm:"-"`
	Service *Service `json:"service,omitempty" gorm:"-"`
}

func (Booking) TableName() string { return "bookings" }

// EffectivePrice is the negotiated price when the artist set one,
// otherwise the original price.
func (b *Booking) EffectivePrice() float64 {
	if b.NegotiatedPrice != nil {
		return *b.NegotiatedPrice
	}
	return b.OriginalPrice
}

// PlatformFee is the explicit override when present, otherwise 5% of the
// effective price rounded to the nearest whole currency unit (half away
// from zero).
func (b *Booking) PlatformFee() float64 {
	if b.PlatformFeeOvr != nil {
		return *b.PlatformFeeOvr
	}
	return math.Round(b.EffectivePrice() * PlatformFeeRate)
}

// TotalDue is what the client pays: effective price plus platform fee.
// Every surface that shows or charges a price goes through this.
func (b *Booking) TotalDue() float64 {
	return b.EffectivePrice() + b.PlatformFee()
}

func (b *Booking) IsParty(userID int64) bool {
	return b.ArtistID == userID || b.ClientID == userID
}

// CanTransition reports whether the status edge is in the allowed set:
// pending -> confirmed | cancelled, confirmed -> completed.
// cancelled and completed are terminal.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case BookingPending:
		return to == BookingConfirmed || to == BookingCancelled
	case BookingConfirmed:
		return to == BookingCompleted
	default:
		return false
	}
}
