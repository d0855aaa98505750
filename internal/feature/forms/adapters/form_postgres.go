// Package adapters provides repository implementations for the forms feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"agroform_backend/internal/feature/forms/domain/entity"
	"agroform_backend/internal/feature/forms/usecase"
)

// formPostgres is the SQL implementation of the FormRepository interface.
type formPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure formPostgres implements FormRepository.
var _ usecase.FormRepository = (*formPostgres)(nil)

// NewFormPostgres creates a new instance of formPostgres with the given gorm.DB connection.
func NewFormPostgres(db *gorm.DB) *formPostgres {
	return &formPostgres{db: db}
}

// Create persists a new form to the database.
func (r *formPostgres) Create(ctx context.Context, form *entity.Form) error {
	return r.db.WithContext(ctx).Create(form).Error
}

// List returns all forms in insertion order.
func (r *formPostgres) List(ctx context.Context) ([]entity.Form, error) {
	var forms []entity.Form
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}

// FindByID retrieves a form by ID.
// Returns usecase.ErrFormNotFound if the form does not exist.
func (r *formPostgres) FindByID(ctx context.Context, id uint) (*entity.Form, error) {
	var form entity.Form
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&form).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrFormNotFound
		}
		return nil, err
	}
	return &form, nil
}

// Update applies the column updates and returns the updated row.
func (r *formPostgres) Update(ctx context.Context, id uint, updates map[string]any) (*entity.Form, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Form{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, usecase.ErrFormNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete removes the form and all of its comments in one transaction,
// so a form row can never outlive the cascade.
func (r *formPostgres) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM comments WHERE form_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&entity.Form{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return usecase.ErrFormNotFound
		}
		return nil
	})
}

// Exists reports whether a form with the given ID exists.
// It backs the comments feature's parent-form check.
func (r *formPostgres) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Form{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
