package profile

import "glambook/internal/domain"

type UpdateProfileRequest struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	PhoneNumber     *string `json:"phone_number"`
	Bio             *string `json:"bio"`
	LocationCity    *string `json:"location_city"`
	LocationState   *string `json:"location_state"`
	LocationCountry *string `json:"location_country"`
	WorkAddress     *string `json:"work_address"`
	InstagramHandle *string `json:"instagram_handle"`
	FacebookPage    *string `json:"facebook_page"`
	BankName        *string `json:"bank_name"`
	AccountNumber   *string `json:"account_number"`
	AccountName     *string `json:"account_name"`
}

// ArtistCard is the public browse view. Payout details and phone are
// owner-only and never appear here.
type ArtistCard struct {
	UserID            int64   `json:"user_id"`
	FullName          string  `json:"full_name"`
	Bio               string  `json:"bio,omitempty"`
	LocationCity      string  `json:"location_city,omitempty"`
	LocationState     string  `json:"location_state,omitempty"`
	InstagramHandle   string  `json:"instagram_handle,omitempty"`
	ProfilePictureURL string  `json:"profile_picture_url,omitempty"`
	IsVerified        bool    `json:"is_verified"`
	AverageRating     float64 `json:"average_rating"`
	RatingCount       int     `json:"rating_count"`
}

func cardFrom(p *domain.Profile) ArtistCard {
	return ArtistCard{
		UserID:            p.UserID,
		FullName:          p.FullName(),
		Bio:               p.Bio,
		LocationCity:      p.LocationCity,
		LocationState:     p.LocationState,
		InstagramHandle:   p.InstagramHandle,
		ProfilePictureURL: p.ProfilePictureURL,
		IsVerified:        p.IsVerified,
	}
}
