package rating

type CreateRatingRequest struct {
	BookingID int64    `json:"booking_id" binding:"required"`
	Rating    int      `json:"rating" binding:"required,gte=1,lte=5"`
	Comment   string   `json:"comment"`
	TipAmount *float64 `json:"tip_amount"`
}

type ArtistSummary struct {
	RatingCount   int     `json:"rating_count"`
	AverageRating float64 `json:"average_rating"`
	TipTotal      float64 `json:"tip_total"`
}
