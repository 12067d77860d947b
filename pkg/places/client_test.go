package places

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

	return NewClient(Config{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
}

func TestNearbySearchSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/nearbysearch/json", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "supermarket", r.URL.Query().Get("type"))
		assert.Equal(t, "1000", r.URL.Query().Get("radius"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [
				{
					"name": "Maruetsu",
					"place_id": "p1",
					"rating": 4.1,
					"user_ratings_total": 230,
					"types": ["supermarket", "store"],
					"geometry": {"location": {"lat": 35.70, "lng": 139.48}}
				},
				{
					"name": "No Geometry Mart",
					"place_id": "p2",
					"types": ["supermarket"]
				}
			]
		}`))
	})

	got, err := client.NearbySearch(context.Background(), 35.6995, 139.4814, "supermarket", 1000)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Maruetsu", got[0].Name)
	assert.Equal(t, "p1", got[0].PlaceID)
	assert.Equal(t, 4.1, got[0].Rating)
	assert.Equal(t, 230, got[0].UserRatingsTotal)
	require.NotNil(t, got[0].Location)
	assert.Equal(t, 35.70, got[0].Location.Lat)

	// Geometry omitted upstream stays nil for the caller to drop.
	assert.Nil(t, got[1].Location)
}

func TestNearbySearchZeroResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	got, err := client.NearbySearch(context.Background(), 35.7, 139.5, "aquarium", 2500)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNearbySearchNonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "OVER_QUERY_LIMIT", "error_message": "quota exceeded"}`))
	})

	_, err := client.NearbySearch(context.Background(), 35.7, 139.5, "park", 1000)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OVER_QUERY_LIMIT")
}

func TestNearbySearchHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "backend down", http.StatusInternalServerError)
	})

	_, err := client.NearbySearch(context.Background(), 35.7, 139.5, "park", 1000)
	require.Error(t, err)
}

func TestNearbySearchNoCredential(t *testing.T) {
	client := NewClient(Config{})
	assert.False(t, client.Configured())

	_, err := client.NearbySearch(context.Background(), 35.7, 139.5, "park", 1000)
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestNearbySearchInvalidParams(t *testing.T) {
	client := NewClient(Config{APIKey: "k"})

	_, err := client.NearbySearch(context.Background(), 35.7, 139.5, "", 1000)
	assert.Error(t, err)

	_, err = client.NearbySearch(context.Background(), 35.7, 139.5, "park", 0)
	assert.Error(t, err)
}
