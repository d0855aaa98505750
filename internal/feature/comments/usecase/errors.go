// Package usecase implements the business logic for the comments feature.
package usecase

import "errors"

// ErrFormNotFound is returned when the parent form of a comment
// operation does not exist.
var ErrFormNotFound = errors.New("form not found")
