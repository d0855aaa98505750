// Package dto defines data transfer objects for the comments feature's HTTP transport layer.
package dto

// CreateCommentReq represents the request body for POST /form/:id/comments.
// Only the text is read. A "form" field in the payload, if present, is
// ignored; the parent form always comes from the URL path.
type CreateCommentReq struct {
	Text string `json:"text" binding:"required"`
}
