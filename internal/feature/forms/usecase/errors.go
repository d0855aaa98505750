// Package usecase implements the business logic for the forms feature.
package usecase

import "errors"

var (
	// ErrFormNotFound is returned when no form exists with the given ID.
	ErrFormNotFound = errors.New("form not found")

	// ErrInvalidTopic is returned when the topic is not one of the allowed values.
	ErrInvalidTopic = errors.New("topic is not a valid choice")

	// ErrNotOwner is returned when the acting user does not own the form
	// it tries to mutate.
	ErrNotOwner = errors.New("user does not own this form")
)
