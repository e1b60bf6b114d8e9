package router

import (
	"log/slog"
	"testing"

	"scout/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutesExposesDocumentedPaths(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	r := NewRouter(RouterParams{
		PropertyHandler:  handler.NewPropertyHandler(handler.PropertyHandlerParams{Logger: logger}),
		POIHandler:       handler.NewPOIHandler(handler.POIHandlerParams{Logger: logger}),
		SearchHandler:    handler.NewSearchHandler(handler.SearchHandlerParams{Logger: logger}),
		DiscoveryHandler: handler.NewDiscoveryHandler(handler.DiscoveryHandlerParams{Logger: logger}),
		IsochroneHandler: handler.NewIsochroneHandler(handler.IsochroneHandlerParams{Logger: logger}),
		ViewStateHandler: handler.NewViewStateHandler(handler.ViewStateHandlerParams{Logger: logger}),
		SheetHandler:     handler.NewSheetHandler(handler.SheetHandlerParams{Logger: logger}),
	})

	e := echo.New()
	r.RegisterRoutes(e)

	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"POST /api/properties",
		"GET /api/properties",
		"GET /api/properties/type/:type",
		"GET /api/properties/radius/:lat/:lng/:radius",
		"GET /api/properties/:id",
		"PUT /api/properties/:id",
		"DELETE /api/properties/:id",
		"POST /api/poi",
		"GET /api/poi",
		"GET /api/poi/type/:type",
		"GET /api/poi/radius/:lat/:lng/:radius",
		"GET /api/poi/radius/:lat/:lng/:radius/type/:type",
		"GET /api/poi/:id",
		"PUT /api/poi/:id",
		"DELETE /api/poi/:id",
		"GET /api/search",
		"GET /api/geocode/reverse",
		"POST /api/discover",
		"GET /api/discover/latest",
		"POST /api/isochrone",
		"POST /api/isochrone/batch",
		"GET /api/view",
		"PUT /api/view",
		"PUT /api/view/zoom",
		"POST /api/view/select/:id",
		"DELETE /api/view/select",
		"POST /api/sheet/import",
		"GET /api/sheet/export",
	} {
		assert.True(t, registered[want], "route %s not registered", want)
	}
}
