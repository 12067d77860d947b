package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
	require.NoError(t, err)
	return client
}

func TestResolveSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "東京都小金井市", r.URL.Query().Get("address"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [
				{
					"formatted_address": "Koganei, Tokyo, Japan",
					"geometry": {"location": {"lat": 35.6995, "lng": 139.4814}}
				}
			]
		}`))
	})

	got, err := client.Resolve(context.Background(), "東京都小金井市")
	require.NoError(t, err)
	assert.Equal(t, "Koganei, Tokyo, Japan", got.FormattedAddress)
	assert.Equal(t, 35.6995, got.Lat)
	assert.Equal(t, 139.4814, got.Lng)
}

func TestResolveNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	_, err := client.Resolve(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveEmptyResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "OK", "results": []}`))
	})

	_, err := client.Resolve(context.Background(), "somewhere")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveNonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED"}`))
	})

	_, err := client.Resolve(context.Background(), "somewhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestResolveEmptyAddress(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	})

	_, err := client.Resolve(context.Background(), "")
	assert.Error(t, err)
}
