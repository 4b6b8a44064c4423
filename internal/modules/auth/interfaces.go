package auth

import (
	"context"

	"glambook/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	MarkEmailVerified(ctx context.Context, userID int64) error
}

type ProfileWriter interface {
	Create(ctx context.Context, p *domain.Profile) error
	GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error)
}

type VerificationRepository interface {
	Create(ctx context.Context, v *domain.EmailVerification) error
	GetActive(ctx context.Context, userID int64) (*domain.EmailVerification, error)
	DeleteForUser(ctx context.Context, userID int64) error
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, t *domain.RefreshToken) error
	GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error)
	Revoke(ctx context.Context, id int64) error
	RevokeByUser(ctx context.Context, userID int64) error
}

type TokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}

type Mailer interface {
	SendVerificationCode(to, code string) error
}
