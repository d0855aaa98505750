// Package dto defines data transfer objects for the forms feature's HTTP transport layer.
package dto

// CreateFormReq represents the request body for the /create-form endpoint.
// The topic enumeration is checked by the usecase, not by binding, so
// the error can name the offending value.
type CreateFormReq struct {
	Email    string `json:"email" binding:"required,email"`
	Region   string `json:"region" binding:"required,max=100"`
	Place    string `json:"place" binding:"required,max=100"`
	Topic    string `json:"topic" binding:"required,max=50"`
	Question string `json:"question" binding:"required"`
}

// UpdateFormReq represents the partial-update body for PUT /form/:id.
// Nil fields are left unchanged.
type UpdateFormReq struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Region   *string `json:"region" binding:"omitempty,max=100"`
	Place    *string `json:"place" binding:"omitempty,max=100"`
	Topic    *string `json:"topic" binding:"omitempty,max=50"`
	Question *string `json:"question" binding:"omitempty"`
}
