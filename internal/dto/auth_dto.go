// FILE: internal/dto/auth_dto.go
package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the bearer token plus whatever profile fields the
// server decides to inline. Revisions of the backend disagree on the extras,
// so everything beyond the token is optional.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType,omitempty"`
	ExpiresIn int64  `json:"expiresIn,omitempty"`
	ExpiresAt string `json:"expiresAt,omitempty"`

	RawProfile
}
