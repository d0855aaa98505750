package dto

import (
	"time"

	"agroform_backend/internal/feature/comments/domain/entity"
)

// CommentItem is the serialized comment: {id, form, text, created_at}.
// The form reference is read-only and server-assigned.
type CommentItem struct {
	ID        uint      `json:"id"`
	Form      uint      `json:"form"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentItemFromEntity converts a domain entity to its response shape.
func CommentItemFromEntity(c *entity.Comment) CommentItem {
	return CommentItem{
		ID:        c.ID,
		Form:      c.FormID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}
