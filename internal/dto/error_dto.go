// FILE: internal/dto/error_dto.go
package dto

// ErrorResponse is the error envelope the remote API sends with non-2xx
// statuses. Different endpoints populate "error" or "message"; "code" is a
// stable machine-readable tag (e.g. INVALID_CREDENTIALS, EMAIL_EXISTS).
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// BestMessage picks the human-readable message in priority order:
// error field, then message field. Empty when neither is present.
func (e *ErrorResponse) BestMessage() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}
