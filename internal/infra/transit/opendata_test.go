package transit

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"scout/config"
	"scout/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	cfg := &config.Config{
		Providers: &config.ProvidersConfig{
			Transit: config.TransitConfig{BaseURL: baseURL},
		},
	}

	return NewClient(cfg, slog.New(slog.DiscardHandler)).(*Client)
}

func TestStopsNearFiltersByRadiusAndID(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{
			"stations": [
				{"id": "8507000", "name": "Bern", "coordinate": {"x": 46.9490, "y": 7.4390}},
				{"id": "", "name": "Unresolvable query echo", "coordinate": {"x": 46.9490, "y": 7.4390}},
				{"id": "8503000", "name": "Zuerich HB", "coordinate": {"x": 47.3779, "y": 8.5403}}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	center := entity.Coordinate{Lat: 46.9480, Lng: 7.4474}
	stops, err := client.StopsNear(context.Background(), center, 2000)
	require.NoError(t, err)

	// Zurich is ~95km away and the ID-less echo entry is dropped.
	require.Len(t, stops, 1)
	assert.Equal(t, "8507000", stops[0].PlaceID)
	assert.Equal(t, "Bern", stops[0].Name)
	assert.InDelta(t, 46.9490, stops[0].Location.Lat, 1e-9)
	assert.InDelta(t, 7.4390, stops[0].Location.Lng, 1e-9)

	// The endpoint labels latitude "x" and longitude "y".
	assert.True(t, len(gotQuery.Get("x")) > 0)
	assert.Equal(t, "station", gotQuery.Get("type"))
}

func TestStopsNearReturnsErrorOnBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.StopsNear(context.Background(), entity.Coordinate{Lat: 46.948, Lng: 7.4474}, 2000)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
