package api

import (
	"context"
	"net/http"

	"fintech-hub-client/internal/dto"
)

// Login exchanges credentials for a bearer token. The response may or may
// not inline profile fields; callers that need the profile follow up with Me.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	in := dto.LoginRequest{Email: email, Password: password}
	var out dto.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, "", in, &out, KindCredentialsRejected); err != nil {
		return nil, err
	}
	return &out, nil
}
