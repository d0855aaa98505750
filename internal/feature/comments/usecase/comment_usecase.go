package usecase

import (
	"context"

	"agroform_backend/internal/feature/comments/domain/entity"
)

// CommentRepository abstracts the persistence layer for comment entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CommentRepository interface {
	// Create persists a new comment to the storage.
	Create(ctx context.Context, comment *entity.Comment) error

	// ListByForm returns the comments of a form in insertion order.
	ListByForm(ctx context.Context, formID uint) ([]entity.Comment, error)
}

// FormFinder answers whether a parent form exists. Implemented by the
// forms feature's repository.
type FormFinder interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// CommentUsecase provides the business logic for comment operations.
type CommentUsecase struct {
	repo  CommentRepository
	forms FormFinder
}

// NewCommentUsecase creates a new CommentUsecase.
func NewCommentUsecase(repo CommentRepository, forms FormFinder) *CommentUsecase {
	return &CommentUsecase{repo: repo, forms: forms}
}

// ListByForm returns the comments of a form in insertion order.
// A missing parent form is an error, mirroring the forms feature's
// not-found semantics.
func (u *CommentUsecase) ListByForm(ctx context.Context, formID uint) ([]entity.Comment, error) {
	if err := u.requireForm(ctx, formID); err != nil {
		return nil, err
	}
	return u.repo.ListByForm(ctx, formID)
}

// Create attaches a new comment to the form identified by formID.
// The association always comes from the URL path; callers never supply it.
func (u *CommentUsecase) Create(ctx context.Context, formID uint, text string) (*entity.Comment, error) {
	if err := u.requireForm(ctx, formID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{FormID: formID, Text: text}
	if err := u.repo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (u *CommentUsecase) requireForm(ctx context.Context, formID uint) error {
	exists, err := u.forms.Exists(ctx, formID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrFormNotFound
	}
	return nil
}
