package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"glambook/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 42
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) MarkEmailVerified(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockProfileWriter struct {
	mock.Mock
}

func (m *MockProfileWriter) Create(ctx context.Context, p *domain.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileWriter) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) Create(ctx context.Context, v *domain.EmailVerification) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVerificationRepository) GetActive(ctx context.Context, userID int64) (*domain.EmailVerification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmailVerification), args.Error(1)
}

func (m *MockVerificationRepository) DeleteForUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, t *domain.RefreshToken) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Revoke(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) RevokeByUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

type MockMailer struct {
	mock.Mock

	lastCode string
}

func (m *MockMailer) SendVerificationCode(to, code string) error {
	m.lastCode = code
	args := m.Called(to, code)
	return args.Error(0)
}

type authMocks struct {
	users         *MockUserRepository
	profiles      *MockProfileWriter
	verifications *MockVerificationRepository
	refresh       *MockRefreshTokenRepository
	tokens        *MockTokenIssuer
	mailer        *MockMailer
}

func newAuthService() (*Service, *authMocks) {
	m := &authMocks{
		users:         new(MockUserRepository),
		profiles:      new(MockProfileWriter),
		verifications: new(MockVerificationRepository),
		refresh:       new(MockRefreshTokenRepository),
		tokens:        new(MockTokenIssuer),
		mailer:        new(MockMailer),
	}
	svc := NewService(m.users, m.profiles, m.verifications, m.refresh, m.tokens, m.mailer, 720*time.Hour, "test-pepper")
	return svc, m
}

func TestRegister_CreatesUserProfileAndCode(t *testing.T) {
	svc, m := newAuthService()

	m.users.On("ExistsByEmail", mock.Anything, "ada@example.com").Return(false, nil)
	m.users.On("Create", mock.Anything, mock.Anything).Return(nil)
	m.profiles.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
		return p.UserID == 42 && p.UserType == domain.RoleArtist && p.FirstName == "Ada"
	})).Return(nil)
	m.verifications.On("Create", mock.Anything, mock.Anything).Return(nil)
	m.mailer.On("SendVerificationCode", "ada@example.com", mock.Anything).Return(nil)

	u, err := svc.Register(context.Background(), RegisterRequest{
		Email:     "ada@example.com",
		Password:  "supersecret",
		Role:      "artist",
		FirstName: "Ada",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), u.ID)
	assert.False(t, u.EmailVerified)
	assert.NotEqual(t, "supersecret", u.PasswordHash)
	assert.Len(t, m.mailer.lastCode, 6)
	m.profiles.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, m := newAuthService()

	m.users.On("ExistsByEmail", mock.Anything, "ada@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:     "ada@example.com",
		Password:  "supersecret",
		Role:      "client",
		FirstName: "Ada",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	m.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_BadRole(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:     "ada@example.com",
		Password:  "supersecret",
		Role:      "admin",
		FirstName: "Ada",
	})

	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestVerifyEmail_Success(t *testing.T) {
	svc, m := newAuthService()

	u := &domain.User{ID: 42, Email: "ada@example.com", Role: domain.RoleArtist}
	m.users.On("GetByEmail", mock.Anything, "ada@example.com").Return(u, nil)
	m.verifications.On("GetActive", mock.Anything, int64(42)).Return(&domain.EmailVerification{
		UserID:    42,
		CodeHash:  svc.hashSecret("123456"),
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	m.users.On("MarkEmailVerified", mock.Anything, int64(42)).Return(nil)
	m.verifications.On("DeleteForUser", mock.Anything, int64(42)).Return(nil)
	m.tokens.On("GenerateToken", int64(42), "artist").Return("access.jwt", nil)
	m.refresh.On("Create", mock.Anything, mock.Anything).Return(nil)

	res, err := svc.VerifyEmail(context.Background(), VerifyEmailRequest{
		Email: "ada@example.com",
		Code:  "123456",
	})

	assert.NoError(t, err)
	assert.True(t, res.User.EmailVerified)
	assert.Equal(t, "access.jwt", res.Tokens.AccessToken)
	assert.NotEmpty(t, res.Tokens.RefreshToken)
}

func TestVerifyEmail_WrongCode(t *testing.T) {
	svc, m := newAuthService()

	u := &domain.User{ID: 42, Email: "ada@example.com"}
	m.users.On("GetByEmail", mock.Anything, "ada@example.com").Return(u, nil)
	m.verifications.On("GetActive", mock.Anything, int64(42)).Return(&domain.EmailVerification{
		UserID:    42,
		CodeHash:  svc.hashSecret("123456"),
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	_, err := svc.VerifyEmail(context.Background(), VerifyEmailRequest{
		Email: "ada@example.com",
		Code:  "654321",
	})

	assert.ErrorIs(t, err, ErrInvalidVerificationCode)
	m.users.AssertNotCalled(t, "MarkEmailVerified", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	svc, m := newAuthService()

	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	m.users.On("GetByEmail", mock.Anything, "ada@example.com").Return(&domain.User{
		ID:            42,
		Email:         "ada@example.com",
		PasswordHash:  string(hash),
		Role:          domain.RoleClient,
		EmailVerified: true,
	}, nil)
	m.tokens.On("GenerateToken", int64(42), "client").Return("access.jwt", nil)
	m.refresh.On("Create", mock.Anything, mock.Anything).Return(nil)

	res, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ada@example.com",
		Password: "supersecret",
	})

	assert.NoError(t, err)
	assert.Equal(t, "access.jwt", res.Tokens.AccessToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, m := newAuthService()

	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	m.users.On("GetByEmail", mock.Anything, "ada@example.com").Return(&domain.User{
		ID:            42,
		PasswordHash:  string(hash),
		EmailVerified: true,
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	svc, m := newAuthService()

	m.users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnverifiedEmail(t *testing.T) {
	svc, m := newAuthService()

	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	m.users.On("GetByEmail", mock.Anything, "ada@example.com").Return(&domain.User{
		ID:           42,
		PasswordHash: string(hash),
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ada@example.com",
		Password: "supersecret",
	})

	assert.ErrorIs(t, err, ErrEmailNotVerified)
}

func TestRefresh_RotatesToken(t *testing.T) {
	svc, m := newAuthService()

	m.refresh.On("GetByHash", mock.Anything, svc.hashSecret("old-token")).Return(&domain.RefreshToken{
		ID:        7,
		UserID:    42,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	m.users.On("GetByID", mock.Anything, int64(42)).Return(&domain.User{
		ID: 42, Role: domain.RoleClient, EmailVerified: true,
	}, nil)
	m.refresh.On("Revoke", mock.Anything, int64(7)).Return(nil)
	m.tokens.On("GenerateToken", int64(42), "client").Return("new.jwt", nil)
	m.refresh.On("Create", mock.Anything, mock.Anything).Return(nil)

	res, err := svc.Refresh(context.Background(), "old-token")

	assert.NoError(t, err)
	assert.NotEqual(t, "old-token", res.Tokens.RefreshToken)
	m.refresh.AssertCalled(t, "Revoke", mock.Anything, int64(7))
}

func TestRefresh_ReusedTokenKillsAllSessions(t *testing.T) {
	svc, m := newAuthService()

	revoked := time.Now().Add(-time.Minute)
	m.refresh.On("GetByHash", mock.Anything, svc.hashSecret("leaked")).Return(&domain.RefreshToken{
		ID:        7,
		UserID:    42,
		ExpiresAt: time.Now().Add(time.Hour),
		RevokedAt: &revoked,
	}, nil)
	m.refresh.On("RevokeByUser", mock.Anything, int64(42)).Return(nil)

	_, err := svc.Refresh(context.Background(), "leaked")

	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	m.refresh.AssertCalled(t, "RevokeByUser", mock.Anything, int64(42))
}

func TestRefresh_Expired(t *testing.T) {
	svc, m := newAuthService()

	m.refresh.On("GetByHash", mock.Anything, svc.hashSecret("stale")).Return(&domain.RefreshToken{
		ID:        7,
		UserID:    42,
		ExpiresAt: time.Now().Add(-time.Hour),
	}, nil)

	_, err := svc.Refresh(context.Background(), "stale")

	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestLogout_UnknownTokenIsNoop(t *testing.T) {
	svc, m := newAuthService()

	m.refresh.On("GetByHash", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Logout(context.Background(), "never-issued")

	assert.NoError(t, err)
}
