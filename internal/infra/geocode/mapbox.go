// Package geocode implements the forward/reverse geocoding port against the
// Mapbox Geocoding v5 API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"scout/config"
	"scout/internal/domain/entity"
	"scout/internal/domain/service"
	"scout/internal/errors"
)

// Client calls the Mapbox geocoding endpoint.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	logger      *slog.Logger
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	providerCfg := cfg.Providers.Geocoding

	return &Client{
		httpClient:  &http.Client{Timeout: providerCfg.Timeout},
		baseURL:     providerCfg.BaseURL,
		accessToken: providerCfg.AccessToken,
		logger:      logger,
	}
}

// geocodingResponse is the wire shape of a Mapbox geocoding response.
type geocodingResponse struct {
	Features []struct {
		PlaceName string    `json:"place_name"`
		PlaceType []string  `json:"place_type"`
		Center    []float64 `json:"center"` // [lng, lat]
	} `json:"features"`
}

type statusError struct {
	statusCode int
	body       string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("geocoding request failed with status %d: %s", e.statusCode, e.body)
}

// Search resolves a free-text query to ranked candidates.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]service.SearchResult, error) {
	endpoint := fmt.Sprintf("%s/%s.json", c.baseURL, url.PathEscape(query))

	wire, err := c.get(ctx, endpoint, url.Values{
		"access_token": {c.accessToken},
		"limit":        {strconv.Itoa(limit)},
	})
	if err != nil {
		return nil, err
	}

	results := make([]service.SearchResult, 0, len(wire.Features))
	for _, feature := range wire.Features {
		if len(feature.Center) < 2 {
			continue
		}

		placeType := ""
		if len(feature.PlaceType) > 0 {
			placeType = feature.PlaceType[0]
		}

		results = append(results, service.SearchResult{
			Label: feature.PlaceName,
			// Mapbox centers are [lng, lat].
			Location:  entity.Coordinate{Lat: feature.Center[1], Lng: feature.Center[0]},
			PlaceType: placeType,
		})
	}

	return results, nil
}

// Reverse resolves a coordinate to a human-readable label. An empty label
// with nil error means the provider had no match for the coordinate.
func (c *Client) Reverse(ctx context.Context, coord entity.Coordinate) (string, error) {
	endpoint := fmt.Sprintf("%s/%f,%f.json", c.baseURL, coord.Lng, coord.Lat)

	wire, err := c.get(ctx, endpoint, url.Values{
		"access_token": {c.accessToken},
		"limit":        {"1"},
	})
	if err != nil {
		return "", err
	}

	if len(wire.Features) == 0 {
		return "", nil
	}

	return wire.Features[0].PlaceName, nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values) (*geocodingResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build geocoding request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "geocoding request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read geocoding response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{statusCode: resp.StatusCode, body: string(body)}
	}

	var wire geocodingResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, errors.Wrap(err, "failed to decode geocoding response")
	}

	return &wire, nil
}
