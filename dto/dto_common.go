package dto

// ErrorResponse is the uniform error body; clients only ever see a message.
type ErrorResponse struct {
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
