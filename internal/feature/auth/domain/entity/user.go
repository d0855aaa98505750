// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account.
// It carries the credentials used for authentication plus the account
// flags that admin tooling manages.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the login identifier. It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Username is the display identifier. It must be unique across all users.
	Username string `gorm:"uniqueIndex;size:150;not null"`

	// Password is the bcrypt hash of the user's password.
	// Plaintext passwords are never stored.
	Password string `gorm:"size:255;not null"`

	// IsActive marks whether the account may log in. Inactive accounts
	// are rejected at login even with correct credentials.
	IsActive bool `gorm:"not null;default:true"`

	// IsStaff marks accounts managed through admin tooling.
	IsStaff bool `gorm:"not null;default:false"`

	// IsSuperuser marks accounts with every permission.
	IsSuperuser bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
