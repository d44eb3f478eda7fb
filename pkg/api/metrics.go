package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"fintech-hub-client/internal/dto"
	"fintech-hub-client/internal/entity"
)

// ListMetrics returns the metric time series for a startup, newest first,
// optionally bounded by an ISO-8601 date range.
func (c *Client) ListMetrics(ctx context.Context, filter dto.MetricFilter) ([]entity.StartupMetric, error) {
	query := url.Values{}
	if filter.StartupId != "" {
		query.Set("startupId", filter.StartupId)
	}
	if !filter.From.IsZero() {
		query.Set("from", filter.From.UTC().Format(time.RFC3339))
	}
	if !filter.To.IsZero() {
		query.Set("to", filter.To.UTC().Format(time.RFC3339))
	}
	var out []entity.StartupMetric
	if err := c.do(ctx, http.MethodGet, "/startup-metrics", query, c.token(), nil, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetMetric(ctx context.Context, id string) (*entity.StartupMetric, error) {
	var out entity.StartupMetric
	if err := c.do(ctx, http.MethodGet, "/startup-metrics/"+id, nil, c.token(), nil, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateMetric(ctx context.Context, metric entity.StartupMetric) (*entity.StartupMetric, error) {
	var out entity.StartupMetric
	if err := c.do(ctx, http.MethodPost, "/startup-metrics", nil, c.token(), metric, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMetric(ctx context.Context, id string, metric entity.StartupMetric) (*entity.StartupMetric, error) {
	var out entity.StartupMetric
	if err := c.do(ctx, http.MethodPut, "/startup-metrics/"+id, nil, c.token(), metric, &out, KindRequestRejected); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMetric(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/startup-metrics/"+id, nil, c.token(), nil, nil, KindRequestRejected)
}
