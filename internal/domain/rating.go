package domain

import "time"

// Rating is a client's post-completion review of an artist. One per
// booking, immutable after creation: there is no update or delete path.
type Rating struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	BookingID int64     `json:"booking_id" gorm:"uniqueIndex:uq_ratings_booking;not null"`
	ArtistID  int64     `json:"artist_id" gorm:"index;not null"`
	ClientID  int64     `json:"client_id" gorm:"index;not null"`
	Rating    int       `json:"rating" gorm:"not null" validate:"gte=1,lte=5"`
	Comment   string    `json:"comment,omitempty" gorm:"type:text"`
	TipAmount *float64  `json:"tip_amount,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	Booking *Booking `json:"booking,omitempty" gorm:"-"`
	Client  *Profile `json:"client_profile,omitempty" gorm:"-"`
	Artist  *Profile `json:"artist_profile,omitempty" gorm:"-"`
}

func (Rating) TableName() string { return "ratings" }
