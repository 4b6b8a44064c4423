package domain

import "time"

// MaxPortfolioPhotos caps an artist's gallery.
const MaxPortfolioPhotos = 5

type PortfolioPhoto struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	ArtistID  int64     `json:"artist_id" gorm:"index;not null"`
	FilePath  string    `json:"-" gorm:"not null"`
	URL       string    `json:"url" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (PortfolioPhoto) TableName() string { return "portfolio_photos" }
