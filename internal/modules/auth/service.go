package auth

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"glambook/internal/domain"
)

const verificationTTL = 24 * time.Hour

type Service struct {
	users         UserRepository
	profiles      ProfileWriter
	verifications VerificationRepository
	refreshTokens RefreshTokenRepository
	tokens        TokenIssuer
	mailer        Mailer
	refreshTTL    time.Duration
	pepper        string
}

func NewService(
	users UserRepository,
	profiles ProfileWriter,
	verifications VerificationRepository,
	refreshTokens RefreshTokenRepository,
	tokens TokenIssuer,
	mailer Mailer,
	refreshTTL time.Duration,
	pepper string,
) *Service {
	return &Service{
		users:         users,
		profiles:      profiles,
		verifications: verifications,
		refreshTokens: refreshTokens,
		tokens:        tokens,
		mailer:        mailer,
		refreshTTL:    refreshTTL,
		pepper:        pepper,
	}
}

// Register creates the user with its profile and mails a confirmation
// code. The account cannot log in until the code is confirmed.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	role := domain.UserRole(req.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	taken, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &domain.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	p := &domain.Profile{
		UserID:      u.ID,
		UserType:    role,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.Phone,
	}
	if err := s.profiles.Create(ctx, p); err != nil {
		return nil, err
	}

	if err := s.issueVerificationCode(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// VerifyEmail confirms the code and logs the user in.
func (s *Service) VerifyEmail(ctx context.Context, req VerifyEmailRequest) (*AuthResponse, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidVerificationCode
		}
		return nil, err
	}

	v, err := s.verifications.GetActive(ctx, u.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidVerificationCode
		}
		return nil, err
	}

	if !hmac.Equal([]byte(v.CodeHash), []byte(s.hashSecret(req.Code))) {
		return nil, ErrInvalidVerificationCode
	}

	if err := s.users.MarkEmailVerified(ctx, u.ID); err != nil {
		return nil, err
	}
	_ = s.verifications.DeleteForUser(ctx, u.ID)
	u.EmailVerified = true

	pair, err := s.issueTokenPair(ctx, u)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: u, Tokens: *pair}, nil
}

// ResendCode replaces any pending code with a fresh one. Unknown emails
// get the same nil so the endpoint cannot be used to probe accounts.
func (s *Service) ResendCode(ctx context.Context, email string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if u.EmailVerified {
		return nil
	}
	if err := s.verifications.DeleteForUser(ctx, u.ID); err != nil {
		return err
	}
	return s.issueVerificationCode(ctx, u)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	pair, err := s.issueTokenPair(ctx, u)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: u, Tokens: *pair}, nil
}

// Refresh rotates the refresh token. Presenting an already-revoked
// token revokes every live session for that user.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	row, err := s.refreshTokens.GetByHash(ctx, s.hashSecret(refreshToken))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	if row.RevokedAt != nil {
		_ = s.refreshTokens.RevokeByUser(ctx, row.UserID)
		return nil, ErrInvalidRefreshToken
	}
	if time.Now().After(row.ExpiresAt) {
		return nil, ErrInvalidRefreshToken
	}

	u, err := s.users.GetByID(ctx, row.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.refreshTokens.Revoke(ctx, row.ID); err != nil {
		return nil, err
	}

	pair, err := s.issueTokenPair(ctx, u)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: u, Tokens: *pair}, nil
}

// Logout revokes the session. Unknown tokens are a no-op.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	row, err := s.refreshTokens.GetByHash(ctx, s.hashSecret(refreshToken))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.refreshTokens.Revoke(ctx, row.ID)
}

func (s *Service) Me(ctx context.Context, userID int64) (*MeResponse, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := &MeResponse{User: u}
	if p, err := s.profiles.GetByUserID(ctx, userID); err == nil {
		out.Profile = p
	}
	return out, nil
}

func (s *Service) issueVerificationCode(ctx context.Context, u *domain.User) error {
	code, err := sixDigitCode()
	if err != nil {
		return err
	}

	v := &domain.EmailVerification{
		UserID:    u.ID,
		CodeHash:  s.hashSecret(code),
		ExpiresAt: time.Now().Add(verificationTTL),
	}
	if err := s.verifications.Create(ctx, v); err != nil {
		return err
	}

	return s.mailer.SendVerificationCode(u.Email, code)
}

func (s *Service) issueTokenPair(ctx context.Context, u *domain.User) (*TokenPair, error) {
	access, err := s.tokens.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}
	refresh := hex.EncodeToString(raw)

	row := &domain.RefreshToken{
		UserID:    u.ID,
		TokenHash: s.hashSecret(refresh),
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}
	if err := s.refreshTokens.Create(ctx, row); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// hashSecret is used for both refresh tokens and verification codes so
// a database dump alone cannot impersonate a session.
func (s *Service) hashSecret(v string) string {
	sum := sha256.Sum256([]byte(s.pepper + v))
	return hex.EncodeToString(sum[:])
}

func sixDigitCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
