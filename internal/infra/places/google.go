// Package places implements the nearby-places port against the Google Places
// Nearby Search API, optionally routed through a CORS passthrough proxy.
package places

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

// Client calls the places nearby-search endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	proxyURL   string
	logger     *slog.Logger
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config, logger *slog.Logger) service.PlaceSearcher {
	providerCfg := cfg.Providers.Places

	return &Client{
		httpClient: &http.Client{Timeout: providerCfg.Timeout},
		baseURL:    providerCfg.BaseURL,
		apiKey:     providerCfg.APIKey,
		proxyURL:   providerCfg.ProxyURL,
		logger:     logger,
	}
}

// nearbyResponse is the wire shape of a nearby-search response.
type nearbyResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID  string `json:"place_id"`
		Name     string `json:"name"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		Vicinity string   `json:"vicinity"`
		Rating   float64  `json:"rating"`
		Types    []string `json:"types"`
	} `json:"results"`
}

// proxyEnvelope is the passthrough proxy's wrapper around the upstream body.
type proxyEnvelope struct {
	Contents string `json:"contents"`
}

type statusError struct {
	statusCode int
	body       string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("places request failed with status %d: %s", e.statusCode, e.body)
}

// NearbyType searches by the provider's place type (e.g. "hospital").
func (c *Client) NearbyType(ctx context.Context, center entity.Coordinate, radiusMeter int, placeType string) ([]entity.Place, error) {
	return c.nearby(ctx, center, radiusMeter, url.Values{"type": {placeType}})
}

// NearbyKeyword searches by free-text keyword (e.g. a retail chain name).
func (c *Client) NearbyKeyword(ctx context.Context, center entity.Coordinate, radiusMeter int, keyword string) ([]entity.Place, error) {
	return c.nearby(ctx, center, radiusMeter, url.Values{"keyword": {keyword}})
}

func (c *Client) nearby(ctx context.Context, center entity.Coordinate, radiusMeter int, extra url.Values) ([]entity.Place, error) {
	query := url.Values{
		"location": {fmt.Sprintf("%f,%f", center.Lat, center.Lng)},
		"radius":   {strconv.Itoa(radiusMeter)},
		"key":      {c.apiKey},
	}
	for key, values := range extra {
		query[key] = values
	}

	target := c.baseURL + "/nearbysearch/json?" + query.Encode()
	if c.proxyURL != "" {
		target = c.proxyURL + url.QueryEscape(target)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build places request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "places request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read places response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{statusCode: resp.StatusCode, body: string(body)}
	}

	if c.proxyURL != "" {
		var envelope proxyEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, errors.Wrap(err, "failed to decode proxy envelope")
		}
		body = []byte(envelope.Contents)
	}

	var wire nearbyResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, errors.Wrap(err, "failed to decode places response")
	}

	// ZERO_RESULTS is a legitimate empty answer; every other non-OK status is
	// logged and treated as empty so one provider hiccup never fails a fetch.
	if wire.Status != "OK" && wire.Status != "ZERO_RESULTS" {
		c.logger.WarnContext(ctx, "places provider returned non-OK status",
			slog.String("status", wire.Status),
		)

		return []entity.Place{}, nil
	}

	places := make([]entity.Place, 0, len(wire.Results))
	for _, result := range wire.Results {
		places = append(places, entity.Place{
			PlaceID:  result.PlaceID,
			Name:     result.Name,
			Location: entity.Coordinate{Lat: result.Geometry.Location.Lat, Lng: result.Geometry.Location.Lng},
			Vicinity: result.Vicinity,
			Rating:   result.Rating,
			Types:    result.Types,
		})
	}

	return places, nil
}
