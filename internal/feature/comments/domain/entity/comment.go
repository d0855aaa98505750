// Package entity defines the domain entities for the comments feature.
package entity

import "time"

// Comment is a reply attached to a form. FormID is set server-side from
// the URL path and never changes after creation.
type Comment struct {
	ID        uint   `gorm:"primaryKey"`
	FormID    uint   `gorm:"index;not null"`
	Text      string `gorm:"type:text;not null"`
	CreatedAt time.Time
}
