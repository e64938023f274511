package dto

// Status values used in every response envelope.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is the single envelope every endpoint returns. The legacy
// backend used a different shape per script; the dashboard only ever reads
// status, message and data, so they are unified here.
type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success wraps data in a success envelope.
func Success(data interface{}) APIResponse {
	return APIResponse{Status: StatusSuccess, Data: data}
}

// SuccessMessage returns a success envelope carrying only a message.
func SuccessMessage(message string) APIResponse {
	return APIResponse{Status: StatusSuccess, Message: message}
}

// Error returns an error envelope with a user-facing message.
func Error(message string) APIResponse {
	return APIResponse{Status: StatusError, Message: message}
}
