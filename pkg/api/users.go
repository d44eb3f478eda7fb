package api

import (
	"context"
	"net/http"
	"net/url"

	"fintech-hub-client/internal/dto"
)

// Register creates a new account. The profile comes back raw; normalization
// is the caller's job.
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	var out dto.RegisterResponse
	if err := c.do(ctx, http.MethodPost, "/users/register", nil, "", req, &out, KindCredentialsRejected); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me fetches the profile belonging to token. The token is explicit here (not
// taken from the token source) so a login flow can verify a fresh token
// before committing it.
func (c *Client) Me(ctx context.Context, token string) (*dto.RawProfile, error) {
	var out dto.RawProfile
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, token, nil, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UserByID(ctx context.Context, id string) (*dto.RawProfile, error) {
	var out dto.RawProfile
	if err := c.do(ctx, http.MethodGet, "/users/"+id, nil, c.token(), nil, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers returns all users, optionally filtered by role.
func (c *Client) ListUsers(ctx context.Context, role string) ([]dto.RawProfile, error) {
	query := url.Values{}
	if role != "" {
		query.Set("role", role)
	}
	var out []dto.RawProfile
	if err := c.do(ctx, http.MethodGet, "/users", query, c.token(), nil, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, req dto.UpdateUserRequest) (*dto.RawProfile, error) {
	var out dto.RawProfile
	if err := c.do(ctx, http.MethodPut, "/users/"+id, nil, c.token(), req, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+id, nil, c.token(), nil, nil, KindRequestRejected)
}
