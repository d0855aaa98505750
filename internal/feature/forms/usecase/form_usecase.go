package usecase

import (
	"context"

	"agroform_backend/internal/feature/forms/domain/entity"
)

// FormRepository abstracts the persistence layer for form entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type FormRepository interface {
	// Create persists a new form to the storage.
	Create(ctx context.Context, form *entity.Form) error

	// List returns all forms in insertion order.
	List(ctx context.Context) ([]entity.Form, error)

	// FindByID retrieves a form by ID, returning ErrFormNotFound on a miss.
	FindByID(ctx context.Context, id uint) (*entity.Form, error)

	// Update applies the given column updates to the form and returns
	// the updated row. Returns ErrFormNotFound on a miss.
	Update(ctx context.Context, id uint, updates map[string]any) (*entity.Form, error)

	// Delete removes the form and all of its comments.
	// Returns ErrFormNotFound on a miss.
	Delete(ctx context.Context, id uint) error
}

// CreateFormInput carries the caller-supplied fields of a new form.
type CreateFormInput struct {
	Email    string
	Region   string
	Place    string
	Topic    string
	Question string
}

// UpdateFormInput carries a partial update; nil fields are left unchanged.
type UpdateFormInput struct {
	Email    *string
	Region   *string
	Place    *string
	Topic    *string
	Question *string
}

// FormUsecase provides the business logic for form operations.
type FormUsecase struct {
	repo FormRepository
}

// NewFormUsecase creates a new FormUsecase with the given repository.
func NewFormUsecase(repo FormRepository) *FormUsecase {
	return &FormUsecase{repo: repo}
}

// Create validates the topic and persists a new form owned by ownerID.
func (u *FormUsecase) Create(ctx context.Context, ownerID uint, in CreateFormInput) (*entity.Form, error) {
	if !entity.ValidTopic(in.Topic) {
		return nil, ErrInvalidTopic
	}

	form := &entity.Form{
		UserID:   ownerID,
		Email:    in.Email,
		Region:   in.Region,
		Place:    in.Place,
		Topic:    in.Topic,
		Question: in.Question,
	}
	if err := u.repo.Create(ctx, form); err != nil {
		return nil, err
	}
	return form, nil
}

// List returns all forms in insertion order.
func (u *FormUsecase) List(ctx context.Context) ([]entity.Form, error) {
	return u.repo.List(ctx)
}

// GetByID returns the form with the given ID.
func (u *FormUsecase) GetByID(ctx context.Context, id uint) (*entity.Form, error) {
	return u.repo.FindByID(ctx, id)
}

// Update applies a partial update to the form.
// Only the owner may update; a supplied topic is revalidated against
// the allowed set.
func (u *FormUsecase) Update(ctx context.Context, id, actorID uint, in UpdateFormInput) (*entity.Form, error) {
	form, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanAccess(actorID, form) {
		return nil, ErrNotOwner
	}
	if in.Topic != nil && !entity.ValidTopic(*in.Topic) {
		return nil, ErrInvalidTopic
	}

	updates := make(map[string]any)
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.Region != nil {
		updates["region"] = *in.Region
	}
	if in.Place != nil {
		updates["place"] = *in.Place
	}
	if in.Topic != nil {
		updates["topic"] = *in.Topic
	}
	if in.Question != nil {
		updates["question"] = *in.Question
	}
	if len(updates) == 0 {
		return form, nil
	}

	return u.repo.Update(ctx, id, updates)
}

// Delete removes the form and its comments. Only the owner may delete.
func (u *FormUsecase) Delete(ctx context.Context, id, actorID uint) error {
	form, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !CanAccess(actorID, form) {
		return ErrNotOwner
	}
	return u.repo.Delete(ctx, id)
}
