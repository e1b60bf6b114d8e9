// Package isochrone implements the reachability-polygon port against the
// Mapbox Isochrone API.
package isochrone

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"scout/config"
	"scout/internal/domain/entity"
	"scout/internal/domain/service"
	"scout/internal/errors"

	"github.com/paulmach/orb/geojson"
)

// Client calls the isochrone endpoint.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config) service.IsochroneProvider {
	providerCfg := cfg.Providers.Isochrone

	return &Client{
		httpClient:  &http.Client{Timeout: providerCfg.Timeout},
		baseURL:     providerCfg.BaseURL,
		accessToken: providerCfg.AccessToken,
	}
}

type statusError struct {
	statusCode int
	body       string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("isochrone request failed with status %d: %s", e.statusCode, e.body)
}

// Isochrone returns the reachability polygon(s) for one coordinate. Any
// provider failure propagates to the caller untouched.
func (c *Client) Isochrone(ctx context.Context, center entity.Coordinate, params entity.IsochroneParams) (*geojson.FeatureCollection, error) {
	query := url.Values{
		"polygons":     {"true"},
		"access_token": {c.accessToken},
	}
	switch params.ContourUnit {
	case entity.ContourMeters:
		query.Set("contours_meters", strconv.Itoa(params.ContourValue))
	default:
		query.Set("contours_minutes", strconv.Itoa(params.ContourValue))
	}

	endpoint := fmt.Sprintf("%s/%s/%f,%f?%s",
		c.baseURL, params.Profile, center.Lng, center.Lat, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build isochrone request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "isochrone request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read isochrone response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{statusCode: resp.StatusCode, body: string(body)}
	}

	collection, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode isochrone geometry")
	}

	return collection, nil
}
