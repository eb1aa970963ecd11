package model

// Response is the envelope every endpoint answers with. Success is true
// exactly when the HTTP status is 2xx.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func OK(message string) Response {
	return Response{Success: true, Message: message}
}
