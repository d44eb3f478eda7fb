package api

import (
	"context"
	"net/http"
	"net/url"

	"fintech-hub-client/internal/dto"
	"fintech-hub-client/internal/entity"
)

// ListStartups returns startups filtered by stage/industry plus a free-text
// query over name, pitch and description.
func (c *Client) ListStartups(ctx context.Context, filter dto.StartupFilter) ([]entity.Startup, error) {
	query := url.Values{}
	if filter.Stage != "" {
		query.Set("stage", filter.Stage)
	}
	if filter.Industry != "" {
		query.Set("industry", filter.Industry)
	}
	if filter.Query != "" {
		query.Set("q", filter.Query)
	}
	var out []entity.Startup
	if err := c.do(ctx, http.MethodGet, "/startups", query, c.token(), nil, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetStartup(ctx context.Context, id string) (*entity.Startup, error) {
	var out entity.Startup
	if err := c.do(ctx, http.MethodGet, "/startups/"+id, nil, c.token(), nil, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateStartup registers a startup; the server derives a unique slug when
// the request leaves it blank.
func (c *Client) CreateStartup(ctx context.Context, req dto.StartupRequest) (*entity.Startup, error) {
	var out entity.Startup
	if err := c.do(ctx, http.MethodPost, "/startups", nil, c.token(), req, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateStartup(ctx context.Context, id string, req dto.StartupRequest) (*entity.Startup, error) {
	var out entity.Startup
	if err := c.do(ctx, http.MethodPut, "/startups/"+id, nil, c.token(), req, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteStartup(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/startups/"+id, nil, c.token(), nil, nil, KindRequestRejected)
}
