package dto

// RefreshReq represents the request body for the /refresh and /logout endpoints.
type RefreshReq struct {
	Refresh string `json:"refresh" binding:"required"`
}
