package web

// ErrorResponse is the type for our error responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates a new error response from the passed in error
func NewErrorResponse(err error) *ErrorResponse {
	return &ErrorResponse{Error: err.Error()}
}
