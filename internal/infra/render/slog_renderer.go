// Package render provides the server-side stand-in for the map rendering
// surface, which in a browser deployment is backed by an external map SDK.
package render

import (
	"log/slog"

	"scout/internal/domain/entity"
	"scout/internal/domain/service"
)

// SlogRenderer logs view transitions instead of driving a map SDK. It keeps
// the rendering port exercised in headless deployments.
type SlogRenderer struct {
	logger *slog.Logger
}

// NewSlogRenderer is the constructor for SlogRenderer.
func NewSlogRenderer(logger *slog.Logger) service.ViewRenderer {
	return &SlogRenderer{logger: logger}
}

// RenderView records the new view state.
func (r *SlogRenderer) RenderView(view entity.ViewState) {
	attrs := []any{
		slog.Float64("lat", view.Center.Lat),
		slog.Float64("lng", view.Center.Lng),
		slog.Float64("zoom", view.NumericZoom),
		slog.String("namedZoom", string(view.NamedZoom)),
	}
	if view.SelectedID != nil {
		attrs = append(attrs, slog.String("selectedId", view.SelectedID.String()))
	}

	r.logger.Debug("map view updated", attrs...)
}
