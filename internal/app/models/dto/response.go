package dto

// APIResponse is the envelope of every API response
type APIResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message" example:"Operation completed successfully"`
	Data    interface{} `json:"data"`
}

// NewSuccessResponse wraps data in a successful envelope
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewFailureResponse builds a failed envelope carrying only a message
func NewFailureResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
	}
}
