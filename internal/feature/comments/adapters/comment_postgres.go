// Package adapters provides repository implementations for the comments feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"agroform_backend/internal/feature/comments/domain/entity"
	"agroform_backend/internal/feature/comments/usecase"
)

// commentPostgres is the SQL implementation of the CommentRepository interface.
type commentPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure commentPostgres implements CommentRepository.
var _ usecase.CommentRepository = (*commentPostgres)(nil)

// NewCommentPostgres creates a new instance of commentPostgres with the given gorm.DB connection.
func NewCommentPostgres(db *gorm.DB) *commentPostgres {
	return &commentPostgres{db: db}
}

// Create persists a new comment to the database.
func (r *commentPostgres) Create(ctx context.Context, comment *entity.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// ListByForm returns the comments of a form in insertion order.
func (r *commentPostgres) ListByForm(ctx context.Context, formID uint) ([]entity.Comment, error) {
	var comments []entity.Comment
	if err := r.db.WithContext(ctx).
		Where("form_id = ?", formID).
		Order("id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
