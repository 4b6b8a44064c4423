package booking

import "time"

type CreateBookingRequest struct {
	ArtistID      int64     `json:"artist_id" binding:"required"`
	ServiceID     int64     `json:"service_id" binding:"required"`
	BookingDate   time.Time `json:"booking_date" binding:"required"`
	ClientNotes   string    `json:"client_notes"`
	TravelAddress string    `json:"travel_address"`
}

type AcceptBookingRequest struct {
	NegotiatedPrice *float64 `json:"negotiated_price"`
	ArtistNotes     string   `json:"artist_notes"`
}

type DeclineBookingRequest struct {
	ArtistNotes string `json:"artist_notes"`
}

// BookingDetails is the listing row. All three price figures come from
// the domain pricing functions so every surface shows the same numbers.
type BookingDetails struct {
	ID          int64     `json:"id"`
	Status      string    `json:"status"`
	BookingDate time.Time `json:"booking_date"`

	ServiceID   int64  `json:"service_id"`
	ServiceName string `json:"service_name"`
	ServiceType string `json:"service_type"`

	ArtistID   int64  `json:"artist_id"`
	ArtistName string `json:"artist_name"`
	ClientID   int64  `json:"client_id"`
	ClientName string `json:"client_name"`

	OriginalPrice   float64  `json:"original_price"`
	NegotiatedPrice *float64 `json:"negotiated_price,omitempty"`
	EffectivePrice  float64  `json:"effective_price"`
	PlatformFee     float64  `json:"platform_fee"`
	TotalDue        float64  `json:"total_due"`

	PaymentStatus string `json:"payment_status"`
	ClientNotes   string `json:"client_notes,omitempty"`
	ArtistNotes   string `json:"artist_notes,omitempty"`
	TravelAddress string `json:"travel_address,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type ArtistStats struct {
	TotalBookings     int     `json:"total_bookings"`
	PendingBookings   int     `json:"pending_bookings"`
	CompletedBookings int     `json:"completed_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
	CompletionRate    float64 `json:"completion_rate"`
	AverageRating     float64 `json:"average_rating"`
	RatingCount       int     `json:"rating_count"`
	TipTotal          float64 `json:"tip_total"`
}

type ClientStats struct {
	TotalBookings     int     `json:"total_bookings"`
	PendingBookings   int     `json:"pending_bookings"`
	CompletedBookings int     `json:"completed_bookings"`
	TotalSpent        float64 `json:"total_spent"`
}
