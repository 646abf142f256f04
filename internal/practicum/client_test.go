package practicum

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hwbot/internal/homework"
	logx "hwbot/pkg/logx"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Config{Endpoint: srv.URL + "/api/user_api/homework_statuses/", Token: "secret", Timeout: 2 * time.Second}, srv.Client(), logx.Nop())
}

func TestFetchSendsAuthAndTimestamp(t *testing.T) {
	t.Parallel()
	var gotAuth, gotFrom, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotFrom = r.URL.Query().Get("from_date")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"homeworks":[{"homework_name":"hw1","status":"approved"}],"current_date":100}`))
	})

	body, err := c.Fetch(context.Background(), 1700000000)
	require.NoError(t, err)
	assert.Equal(t, "OAuth secret", gotAuth)
	assert.Equal(t, "1700000000", gotFrom)
	assert.Equal(t, "/api/user_api/homework_statuses/", gotPath)

	obj, ok := body.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("100"), obj["current_date"])
	list, err := homework.CheckResponse(body)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestFetchUnexpectedStatus(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	})

	_, err := c.Fetch(context.Background(), 0)
	var status *UnexpectedStatusCodeError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, http.StatusServiceUnavailable, status.StatusCode)
}

func TestFetchInvalidJSON(t *testing.T) {
	t.Parallel()
	for _, payload := range []string{`{"homeworks":`, `{} {}`} {
		payload := payload
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(payload))
		})
		_, err := c.Fetch(context.Background(), 0)
		var malformed *homework.MalformedResponseError
		require.ErrorAs(t, err, &malformed, "payload %q", payload)
	}
}

func TestFetchTransportError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	c := New(Config{Endpoint: endpoint, Token: "secret", Timeout: time.Second}, nil, logx.Nop())
	_, err := c.Fetch(context.Background(), 0)
	var transport *TransportError
	require.ErrorAs(t, err, &transport)
	assert.Error(t, transport.Unwrap())
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()
	c := New(Config{Token: "x"}, nil, logx.Logger{})
	assert.Equal(t, DefaultEndpoint, c.cfg.Endpoint)
	assert.Equal(t, 30*time.Second, c.cfg.Timeout)
	assert.Equal(t, 30*time.Second, c.http.Timeout)
}
