package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"fintech-hub-client/internal/dto"
	"fintech-hub-client/internal/entity"
)

// CreateInvestor provisions the investor profile companion to a user.
// token is explicit: during registration the session holds no committed
// token yet, only a freshly obtained one.
func (c *Client) CreateInvestor(ctx context.Context, token string, investor entity.Investor) (*entity.Investor, error) {
	var out entity.Investor
	if err := c.do(ctx, http.MethodPost, "/investors", nil, token, investor, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return &out, nil
}

// InvestorByUser resolves the investor profile linked to a user id.
func (c *Client) InvestorByUser(ctx context.Context, userId string) (*entity.Investor, error) {
	var out entity.Investor
	if err := c.do(ctx, http.MethodGet, "/investors/user/"+userId, nil, c.token(), nil, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchInvestors filters investors by type, preferred industry/stage and
// check range.
func (c *Client) SearchInvestors(ctx context.Context, filter dto.InvestorFilter) ([]entity.Investor, error) {
	query := url.Values{}
	if filter.Type != "" {
		query.Set("type", filter.Type)
	}
	if filter.Industry != "" {
		query.Set("industry", filter.Industry)
	}
	if filter.Stage != "" {
		query.Set("stage", filter.Stage)
	}
	if filter.MinCheck != nil {
		query.Set("minCheck", strconv.Itoa(*filter.MinCheck))
	}
	if filter.MaxCheck != nil {
		query.Set("maxCheck", strconv.Itoa(*filter.MaxCheck))
	}
	var out []entity.Investor
	if err := c.do(ctx, http.MethodGet, "/investors", query, c.token(), nil, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateInvestorByUser replaces the investor profile linked to a user id,
// creating it when none exists yet.
func (c *Client) UpdateInvestorByUser(ctx context.Context, userId string, investor entity.Investor) (*entity.Investor, error) {
	var out entity.Investor
	if err := c.do(ctx, http.MethodPut, "/investors/user/"+userId, nil, c.token(), investor, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteInvestor(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/investors/"+id, nil, c.token(), nil, nil, KindRequestRejected)
}
