package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"agroform_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength defines the minimum number of password characters.
	minPasswordLength = 8

	// refreshTokenTTL is how long a refresh-token session stays usable.
	refreshTokenTTL = 7 * 24 * time.Hour

	// maxSessionsPerUser caps concurrent sessions; the oldest one is
	// evicted when a login would exceed it.
	maxSessionsPerUser = 5
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailAlreadyExists or ErrUsernameAlreadyExists on a
	// uniqueness violation.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// JWTGenerator defines the interface for access-token generation.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/jwt).
type JWTGenerator interface {
	// GenerateToken creates a signed access token for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

// TokenPair is the access/refresh credential pair issued at login and refresh.
type TokenPair struct {
	Access  string
	Refresh string
}

// LoginMeta carries client metadata recorded on the session for auditing.
type LoginMeta struct {
	UserAgent string
	IPAddress string
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users        UserRepository
	sessions     SessionRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		sessions:     sessions,
		jwtGenerator: jwtGenerator,
	}
}

// validatePassword checks that the password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Signup registers a new user with a hashed password.
func (u *authUsecase) Signup(ctx context.Context, email, username, password string) error {
	return u.createUser(ctx, email, username, password, false, false)
}

// CreateSuperuser registers a new user with the staff and superuser
// flags forced true. Used by the createadmin command.
func (u *authUsecase) CreateSuperuser(ctx context.Context, email, username, password string) error {
	return u.createUser(ctx, email, username, password, true, true)
}

func (u *authUsecase) createUser(ctx context.Context, email, username, password string, staff, superuser bool) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{
		Email:       email,
		Username:    username,
		Password:    string(hashed),
		IsActive:    true,
		IsStaff:     staff,
		IsSuperuser: superuser,
	}
	return u.users.Create(ctx, user)
}

// Login authenticates a user and issues an access/refresh token pair.
// A bcrypt comparison runs even when the user does not exist so that
// response timing does not reveal which factor failed.
func (u *authUsecase) Login(ctx context.Context, email, password string, meta LoginMeta) (*TokenPair, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the path for
	// unknown users (timing-attack mitigation).
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	// Inactive accounts fail with the same generic error as bad credentials.
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	return u.issueTokenPair(ctx, user, meta)
}

// Refresh rotates a refresh-token session and issues a new token pair.
// Presenting a revoked token revokes every session of that user, since
// it means the token leaked or an old rotation was replayed.
func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	session, err := u.sessions.FindByID(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	if session.IsRevoked() {
		if err := u.sessions.RevokeAllByUserID(ctx, session.UserID); err != nil {
			return nil, fmt.Errorf("failed to revoke sessions after token reuse: %w", err)
		}
		return nil, ErrSessionRevoked
	}
	if session.IsExpired() {
		return nil, ErrSessionExpired
	}

	user, err := u.users.FindByID(ctx, session.UserID)
	if err != nil || !user.IsActive {
		return nil, ErrInvalidRefreshToken
	}

	if err := u.sessions.Revoke(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("failed to rotate session: %w", err)
	}

	return u.issueTokenPair(ctx, user, LoginMeta{UserAgent: session.UserAgent, IPAddress: session.IPAddress})
}

// Logout revokes the session identified by the refresh token.
func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	if err := u.sessions.Revoke(ctx, refreshToken); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return ErrInvalidRefreshToken
		}
		return err
	}
	return nil
}

// issueTokenPair creates a refresh-token session and a signed access token.
func (u *authUsecase) issueTokenPair(ctx context.Context, user *entity.User, meta LoginMeta) (*TokenPair, error) {
	count, err := u.sessions.CountByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}
	if count >= maxSessionsPerUser {
		if err := u.sessions.DeleteOldestByUserID(ctx, user.ID); err != nil {
			return nil, fmt.Errorf("failed to evict oldest session: %w", err)
		}
	}

	refresh, err := newSessionID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &entity.Session{
		ID:        refresh,
		UserID:    user.ID,
		UserAgent: meta.UserAgent,
		IPAddress: meta.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(refreshTokenTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	access, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// newSessionID returns a 64-character hex refresh token value.
func newSessionID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
