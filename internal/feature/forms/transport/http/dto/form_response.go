package dto

import (
	"time"

	"agroform_backend/internal/feature/forms/domain/entity"
)

// FormItem is the serialized form: {id, email, region, place, topic, question, created_at}.
// The owner reference is internal and never serialized.
type FormItem struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Region    string    `json:"region"`
	Place     string    `json:"place"`
	Topic     string    `json:"topic"`
	Question  string    `json:"question"`
	CreatedAt time.Time `json:"created_at"`
}

// FormItemFromEntity converts a domain entity to its response shape.
func FormItemFromEntity(f *entity.Form) FormItem {
	return FormItem{
		ID:        f.ID,
		Email:     f.Email,
		Region:    f.Region,
		Place:     f.Place,
		Topic:     f.Topic,
		Question:  f.Question,
		CreatedAt: f.CreatedAt,
	}
}
