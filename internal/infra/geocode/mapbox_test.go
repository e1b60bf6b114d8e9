package geocode

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"scout/config"
	"scout/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server
}

func newTestClient(baseURL string) *Client {
	cfg := &config.Config{
		Providers: &config.ProvidersConfig{
			Geocoding: config.GeocodingConfig{
				BaseURL:     baseURL,
				AccessToken: "test-token",
			},
		},
	}

	return NewClient(cfg, slog.New(slog.DiscardHandler)).(*Client)
}

func TestSearchMapsCenterToLatLng(t *testing.T) {
	var gotQuery map[string][]string
	server := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"features": [
				{"place_name": "Bern, Switzerland", "place_type": ["place"], "center": [7.4474, 46.9480]},
				{"place_name": "Bernstrasse", "place_type": ["address"], "center": [7.5, 47.0]}
			]
		}`))
	})

	client := newTestClient(server.URL)

	results, err := client.Search(context.Background(), "bern", 5)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Wire centers are [lng, lat]; the domain coordinate must be swapped.
	assert.Equal(t, "Bern, Switzerland", results[0].Label)
	assert.InDelta(t, 46.9480, results[0].Location.Lat, 1e-9)
	assert.InDelta(t, 7.4474, results[0].Location.Lng, 1e-9)
	assert.Equal(t, "place", results[0].PlaceType)
	assert.Equal(t, "address", results[1].PlaceType)

	assert.Equal(t, []string{"test-token"}, gotQuery["access_token"])
	assert.Equal(t, []string{"5"}, gotQuery["limit"])
}

func TestSearchSkipsFeaturesWithoutCenter(t *testing.T) {
	server := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"features": [
				{"place_name": "Broken", "place_type": ["place"], "center": []},
				{"place_name": "Zurich", "place_type": ["place"], "center": [8.5417, 47.3769]}
			]
		}`))
	})

	client := newTestClient(server.URL)

	results, err := client.Search(context.Background(), "zurich", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Zurich", results[0].Label)
}

func TestSearchReturnsErrorOnBadStatus(t *testing.T) {
	server := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "Not Authorized"}`))
	})

	client := newTestClient(server.URL)

	_, err := client.Search(context.Background(), "bern", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestReverseReturnsFirstLabel(t *testing.T) {
	server := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"features": [{"place_name": "Bundesplatz 3, Bern", "place_type": ["address"], "center": [7.444, 46.946]}]
		}`))
	})

	client := newTestClient(server.URL)

	label, err := client.Reverse(context.Background(), entity.Coordinate{Lat: 46.946, Lng: 7.444})
	require.NoError(t, err)
	assert.Equal(t, "Bundesplatz 3, Bern", label)
}

func TestReverseWithoutMatchReturnsEmptyLabel(t *testing.T) {
	server := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"features": []}`))
	})

	client := newTestClient(server.URL)

	label, err := client.Reverse(context.Background(), entity.Coordinate{Lat: 0, Lng: 0})
	require.NoError(t, err)
	assert.Empty(t, label)
}
