package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fintech-hub-client/internal/dto"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const DefaultTimeout = 30 * time.Second

// Client talks to the Fintech Hub HTTP API. It holds no session state of its
// own; the bearer token is pulled from the installed token source per call.
type Client struct {
	baseURL string
	client  *http.Client
	tokenFn func() string
	tracer  trace.Tracer
}

// New creates a client for the given base URL (including the /api prefix).
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		tracer: otel.Tracer("fintech-hub-client/api"),
	}
}

// SetTokenSource installs the callback the client consults for the current
// bearer token before each request. An empty result means unauthenticated.
func (c *Client) SetTokenSource(fn func() string) {
	c.tokenFn = fn
}

func (c *Client) token() string {
	if c.tokenFn != nil {
		return c.tokenFn()
	}
	return ""
}

// do performs one JSON round trip. in is marshaled when non-nil, out is
// decoded into when non-nil. Non-2xx statuses become an *Error of rejectKind
// with the message extracted from the body (error field, then message field,
// then raw text, then a generic fallback).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, in, out interface{}, rejectKind Kind) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return &Error{Kind: KindMalformedResponse, Message: FallbackMessage, Err: fmt.Errorf("marshal request: %w", err)}
		}
		body = bytes.NewReader(payload)
	}

	ctx, span := c.tracer.Start(ctx, method+" "+path)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return &Error{Kind: KindNetworkUnavailable, Message: FallbackMessage, Err: fmt.Errorf("create request: %w", err)}
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		span.RecordError(err)
		return &Error{Kind: KindNetworkUnavailable, Message: FallbackMessage, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return &Error{Kind: KindNetworkUnavailable, Message: FallbackMessage, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Kind: rejectKind, Status: resp.StatusCode, Message: extractMessage(raw)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &Error{Kind: KindMalformedResponse, Status: resp.StatusCode, Message: FallbackMessage, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}

func extractMessage(raw []byte) string {
	var envelope dto.ErrorResponse
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if msg := envelope.BestMessage(); msg != "" {
			return msg
		}
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return FallbackMessage
}
