package api_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"fintech-hub-client/internal/dto"
	"fintech-hub-client/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	query, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return query
}

func TestLoginDecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		assert.Empty(t, r.Header.Get("Authorization"), "login never sends a stale token")
		fmt.Fprint(w, `{"token":"tok-1","tokenType":"Bearer","expiresIn":3600}`)
	}))
	defer server.Close()

	client := api.New(server.URL+"/api/", time.Second)
	resp, err := client.Login(context.Background(), "ana@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", resp.Token)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
}

func TestErrorMessageExtraction(t *testing.T) {
	cases := []struct {
		label string
		body  string
		want  string
	}{
		{"error field wins", `{"error":"boom","message":"ignored"}`, "boom"},
		{"message field", `{"message":"Invalid credentials","code":"AUTH_INVALID"}`, "Invalid credentials"},
		{"plain text body", `service unavailable`, "service unavailable"},
		{"empty body", ``, api.FallbackMessage},
		{"empty envelope", `{}`, api.FallbackMessage},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				fmt.Fprint(w, tc.body)
			}))
			defer server.Close()

			client := api.New(server.URL, time.Second)
			_, err := client.Login(context.Background(), "a@b.co", "pw")
			require.Error(t, err)
			assert.True(t, api.IsKind(err, api.KindCredentialsRejected))
			assert.Equal(t, tc.want, api.Message(err))
		})
	}
}

func TestNetworkErrorKind(t *testing.T) {
	server := httptest.NewServer(http.NewServeMux())
	server.Close()

	client := api.New(server.URL, time.Second)
	_, err := client.Login(context.Background(), "a@b.co", "pw")
	require.Error(t, err)
	assert.True(t, api.IsKind(err, api.KindNetworkUnavailable))
	assert.Equal(t, api.FallbackMessage, api.Message(err))
}

func TestMalformedResponseKind(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>definitely not json</html>`)
	}))
	defer server.Close()

	client := api.New(server.URL, time.Second)
	_, err := client.Login(context.Background(), "a@b.co", "pw")
	require.Error(t, err)
	assert.True(t, api.IsKind(err, api.KindMalformedResponse))
}

func TestTokenSourceAttachesBearer(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	client := api.New(server.URL, time.Second)
	client.SetTokenSource(func() string { return "tok-1" })

	_, err := client.ListStartups(context.Background(), dto.StartupFilter{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestEmptyTokenSendsNoHeader(t *testing.T) {
	var hasAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	client := api.New(server.URL, time.Second)
	client.SetTokenSource(func() string { return "" })

	_, err := client.ListStartups(context.Background(), dto.StartupFilter{})
	require.NoError(t, err)
	assert.False(t, hasAuth)
}

func TestInvestorFilterQuery(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	client := api.New(server.URL, time.Second)
	min, max := 50000, 250000
	_, err := client.SearchInvestors(context.Background(), dto.InvestorFilter{
		Type:     "vc",
		Industry: "fintech",
		MinCheck: &min,
		MaxCheck: &max,
	})
	require.NoError(t, err)

	query := mustParseQuery(t, gotQuery)
	assert.Equal(t, "vc", query.Get("type"))
	assert.Equal(t, "fintech", query.Get("industry"))
	assert.Equal(t, "50000", query.Get("minCheck"))
	assert.Equal(t, "250000", query.Get("maxCheck"))
	assert.False(t, query.Has("stage"), "unset filters stay out of the query")
}

func TestMetricFilterQuery(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	client := api.New(server.URL, time.Second)
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := client.ListMetrics(context.Background(), dto.MetricFilter{
		StartupId: "s1",
		From:      from,
	})
	require.NoError(t, err)

	query := mustParseQuery(t, gotQuery)
	assert.Equal(t, "s1", query.Get("startupId"))
	assert.Equal(t, "2026-01-01T00:00:00Z", query.Get("from"))
	assert.False(t, query.Has("to"))
}

func TestUpdateOfferStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/offers/o1/status", r.URL.Path)
		fmt.Fprint(w, `{"id":"o1","status":"accepted"}`)
	}))
	defer server.Close()

	client := api.New(server.URL, time.Second)
	offer, err := client.UpdateOfferStatus(context.Background(), "o1", dto.OfferStatusUpdate{Status: "accepted"})
	require.NoError(t, err)
	assert.Equal(t, "accepted", offer.Status)
}
