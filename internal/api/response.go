// Package api defines the shared HTTP response shapes used by all handlers.
package api

// ErrorResponse is the generic error body: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the generic success body: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenPairResponse is returned by /login and /refresh.
// Message is only set on login.
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	Message string `json:"message,omitempty"`
}
