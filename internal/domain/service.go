package domain

import "time"

// Service is an offering published by an artist. Bookings snapshot its
// base price at creation time, so later edits never touch past bookings.
type Service struct {
	ID                   int64     `json:"id" gorm:"primaryKey"`
	ArtistID             int64     `json:"artist_id" gorm:"index;not null"`
	ServiceName          string    `json:"service_name" gorm:"not null" validate:"required"`
	ServiceType          string    `json:"service_type" gorm:"not null" validate:"required"`
	Description          string    `json:"description,omitempty" gorm:"type:text"`
	BasePrice            float64   `json:"base_price" validate:"gte=0"`
	MaxPeople            int       `json:"max_people,omitempty"`
	TravelRequired       bool      `json:"travel_required" gorm:"default:false"`
	IncludesBridalShower bool      `json:"includes_bridal_shower" gorm:"default:false"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (Service) TableName() string { return "services" }
