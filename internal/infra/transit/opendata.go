// Package transit implements the transit-stop port against the Swiss open
// transport data API.
package transit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"scout/config"
	"scout/internal/domain/entity"
	"scout/internal/domain/service"
	"scout/internal/errors"

	"github.com/paulmach/orb/geo"
)

// Client calls the open-data station-board locations endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config, logger *slog.Logger) service.TransitSource {
	providerCfg := cfg.Providers.Transit

	return &Client{
		httpClient: &http.Client{Timeout: providerCfg.Timeout},
		baseURL:    providerCfg.BaseURL,
		logger:     logger,
	}
}

// locationsResponse is the wire shape of an open-data locations response.
type locationsResponse struct {
	Stations []struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Coordinate struct {
			// The open-data API labels latitude "x" and longitude "y".
			X float64 `json:"x"`
			Y float64 `json:"y"`
		} `json:"coordinate"`
	} `json:"stations"`
}

type statusError struct {
	statusCode int
	body       string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("transit request failed with status %d: %s", e.statusCode, e.body)
}

// StopsNear returns transit stops within radiusMeter of center. The endpoint
// has no radius parameter, so the cut is applied client-side.
func (c *Client) StopsNear(ctx context.Context, center entity.Coordinate, radiusMeter int) ([]entity.Place, error) {
	query := url.Values{
		"x":    {fmt.Sprintf("%f", center.Lat)},
		"y":    {fmt.Sprintf("%f", center.Lng)},
		"type": {"station"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/locations?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build transit request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "transit request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read transit response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{statusCode: resp.StatusCode, body: string(body)}
	}

	var wire locationsResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, errors.Wrap(err, "failed to decode transit response")
	}

	places := make([]entity.Place, 0, len(wire.Stations))
	for _, station := range wire.Stations {
		if station.ID == "" {
			continue
		}

		location := entity.Coordinate{Lat: station.Coordinate.X, Lng: station.Coordinate.Y}
		if geo.Distance(center.Point(), location.Point()) > float64(radiusMeter) {
			continue
		}

		places = append(places, entity.Place{
			PlaceID:  station.ID,
			Name:     station.Name,
			Location: location,
		})
	}

	return places, nil
}
