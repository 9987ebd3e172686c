package common

// ErrorResponse is the wire shape for every failure: a human-readable
// message, nothing else.
type ErrorResponse struct {
	Message string `json:"message"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		Message: message,
	}
}
