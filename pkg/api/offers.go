package api

import (
	"context"
	"net/http"
	"net/url"

	"fintech-hub-client/internal/dto"
	"fintech-hub-client/internal/entity"
)

// ListOffers returns offers filtered by startup, investor, status or
// visibility. The server applies the first filter it finds, in that order.
func (c *Client) ListOffers(ctx context.Context, filter dto.OfferFilter) ([]entity.Offer, error) {
	query := url.Values{}
	if filter.StartupId != "" {
		query.Set("startupId", filter.StartupId)
	}
	if filter.InvestorId != "" {
		query.Set("investorId", filter.InvestorId)
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Visibility != "" {
		query.Set("visibility", filter.Visibility)
	}
	var out []entity.Offer
	if err := c.do(ctx, http.MethodGet, "/offers", query, c.token(), nil, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetOffer(ctx context.Context, id string) (*entity.Offer, error) {
	var out entity.Offer
	if err := c.do(ctx, http.MethodGet, "/offers/"+id, nil, c.token(), nil, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOffer(ctx context.Context, offer entity.Offer) (*entity.Offer, error) {
	var out entity.Offer
	if err := c.do(ctx, http.MethodPost, "/offers", nil, c.token(), offer, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOffer(ctx context.Context, id string, offer entity.Offer) (*entity.Offer, error) {
	var out entity.Offer
	if err := c.do(ctx, http.MethodPut, "/offers/"+id, nil, c.token(), offer, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOfferStatus flips an offer's status (accept/reject/counter).
// Accepting makes the server record the matching investment and refresh the
// startup's post-money valuation as a side effect.
func (c *Client) UpdateOfferStatus(ctx context.Context, id string, update dto.OfferStatusUpdate) (*entity.Offer, error) {
	var out entity.Offer
	if err := c.do(ctx, http.MethodPatch, "/offers/"+id+"/status", nil, c.token(), update, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteOffer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/offers/"+id, nil, c.token(), nil, nil, KindRequestRejected)
}
