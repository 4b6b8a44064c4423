package domain

import (
	"strings"
	"time"
)

// Profile is the public marketplace identity behind a user account.
// Created once at first sign-up and mutated only by its owner.
type Profile struct {
	ID                int64  `json:"id" gorm:"primaryKey"`
	UserID            int64  `json:"user_id" gorm:"uniqueIndex;not null"`
	UserType          UserRole `json:"user_type" gorm:"not null"`
	FirstName         string `json:"first_name,omitempty"`
	LastName          string `json:"last_name,omitempty"`
	PhoneNumber       string `json:"phone_number,omitempty"`
	Bio               string `json:"bio,omitempty" gorm:"type:text"`
	LocationCity      string `json:"location_city,omitempty"`
	LocationState     string `json:"location_state,omitempty"`
	LocationCountry   string `json:"location_country,omitempty"`
	WorkAddress       string `json:"work_address,omitempty"`
	InstagramHandle   string `json:"instagram_handle,omitempty"`
	FacebookPage      string `json:"facebook_page,omitempty"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
	IsVerified        bool   `json:"is_verified" gorm:"default:false"`

	SubscriptionActive    bool       `json:"subscription_active" gorm:"default:false"`
	SubscriptionExpiresAt *time.Time `json:"subscription_expires_at,omitempty"`

	// Payout details, artists only.
	BankName      string `json:"bank_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	AccountName   string `json:"account_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

func (p *Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
