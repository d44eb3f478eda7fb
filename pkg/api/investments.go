package api

import (
	"context"
	"net/http"

	"fintech-hub-client/internal/entity"
)

func (c *Client) ListInvestments(ctx context.Context) ([]entity.Investment, error) {
	var out []entity.Investment
	if err := c.do(ctx, http.MethodGet, "/investments", nil, c.token(), nil, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetInvestment(ctx context.Context, id string) (*entity.Investment, error) {
	var out entity.Investment
	if err := c.do(ctx, http.MethodGet, "/investments/"+id, nil, c.token(), nil, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) InvestmentsByInvestor(ctx context.Context, investorId string) ([]entity.Investment, error) {
	var out []entity.Investment
	if err := c.do(ctx, http.MethodGet, "/investments/investor/"+investorId, nil, c.token(), nil, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) InvestmentsByStartup(ctx context.Context, startupId string) ([]entity.Investment, error) {
	var out []entity.Investment
	if err := c.do(ctx, http.MethodGet, "/investments/startup/"+startupId, nil, c.token(), nil, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateInvestment(ctx context.Context, investment entity.Investment) (*entity.Investment, error) {
	var out entity.Investment
	if err := c.do(ctx, http.MethodPost, "/investments", nil, c.token(), investment, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateInvestment(ctx context.Context, id string, investment entity.Investment) (*entity.Investment, error) {
	var out entity.Investment
	if err := c.do(ctx, http.MethodPut, "/investments/"+id, nil, c.token(), investment, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteInvestment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/investments/"+id, nil, c.token(), nil, nil, KindRequestRejected)
}
