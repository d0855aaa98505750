// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"agroform_backend/internal/feature/auth/domain/entity"
	"agroform_backend/internal/feature/auth/usecase"
)

// pgUniqueViolation is the PostgreSQL error code for a duplicate key.
const pgUniqueViolation = "23505"

// userPostgres is a PostgreSQL implementation of the UserRepository interface.
type userPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure userPostgres implements UserRepository.
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres creates a new instance of userPostgres with the given gorm.DB connection.
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create inserts the user into the database.
// Uniqueness violations are translated to usecase.ErrEmailAlreadyExists
// or usecase.ErrUsernameAlreadyExists depending on the violated index.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return translateUniqueViolation(err)
	}
	return nil
}

// FindByEmail retrieves a user by email address.
// Returns usecase.ErrUserNotFound if the user does not exist.
func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID.
// Returns usecase.ErrUserNotFound if the user does not exist.
func (r *userPostgres) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// translateUniqueViolation maps driver-level duplicate-key errors to the
// usecase sentinels. PostgreSQL reports the violated constraint name;
// SQLite (used by tests) only reports the column in the message.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		if strings.Contains(pgErr.ConstraintName, "username") {
			return usecase.ErrUsernameAlreadyExists
		}
		return usecase.ErrEmailAlreadyExists
	}
	if msg := err.Error(); strings.Contains(msg, "UNIQUE constraint") {
		if strings.Contains(msg, "username") {
			return usecase.ErrUsernameAlreadyExists
		}
		return usecase.ErrEmailAlreadyExists
	}
	return err
}
