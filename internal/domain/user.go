package domain

import "time"

type UserRole string

const (
	RoleArtist UserRole = "artist"
	RoleClient UserRole = "client"
)

func (r UserRole) Valid() bool {
	return r == RoleArtist || r == RoleClient
}

type User struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	PasswordHash  string    `json:"-" gorm:"not null"`
	Role          UserRole  `json:"role" gorm:"not null"`
	EmailVerified bool      `json:"email_verified" gorm:"default:false"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// EmailVerification holds a pending sign-up confirmation code (hashed).
type EmailVerification struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"index;not null"`
	CodeHash  string    `json:"-" gorm:"not null"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (EmailVerification) TableName() string { return "email_verifications" }

// RefreshToken is an opaque session token, stored hashed. Rotated on use.
type RefreshToken struct {
	ID        int64      `json:"id" gorm:"primaryKey"`
	UserID    int64      `json:"user_id" gorm:"index;not null"`
	TokenHash string     `json:"-" gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (RefreshToken) TableName() string { return "refresh_tokens" }
