// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"scout/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PropertyHandler  *handler.PropertyHandler
	POIHandler       *handler.POIHandler
	SearchHandler    *handler.SearchHandler
	DiscoveryHandler *handler.DiscoveryHandler
	IsochroneHandler *handler.IsochroneHandler
	ViewStateHandler *handler.ViewStateHandler
	SheetHandler     *handler.SheetHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	propertyHandler  *handler.PropertyHandler
	poiHandler       *handler.POIHandler
	searchHandler    *handler.SearchHandler
	discoveryHandler *handler.DiscoveryHandler
	isochroneHandler *handler.IsochroneHandler
	viewStateHandler *handler.ViewStateHandler
	sheetHandler     *handler.SheetHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		propertyHandler:  params.PropertyHandler,
		poiHandler:       params.POIHandler,
		searchHandler:    params.SearchHandler,
		discoveryHandler: params.DiscoveryHandler,
		isochroneHandler: params.IsochroneHandler,
		viewStateHandler: params.ViewStateHandler,
		sheetHandler:     params.SheetHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	propertyGroup := api.Group("/properties")
	{
		propertyGroup.POST("", r.propertyHandler.Create)
		propertyGroup.GET("", r.propertyHandler.List)
		propertyGroup.GET("/type/:type", r.propertyHandler.ListByTypePath)
		propertyGroup.GET("/radius/:lat/:lng/:radius", r.propertyHandler.ListInRadiusPath)
		propertyGroup.GET("/:id", r.propertyHandler.Get)
		propertyGroup.PUT("/:id", r.propertyHandler.Update)
		propertyGroup.DELETE("/:id", r.propertyHandler.Delete)
	}

	poiGroup := api.Group("/poi")
	{
		poiGroup.POST("", r.poiHandler.Create)
		poiGroup.GET("", r.poiHandler.List)
		poiGroup.GET("/type/:type", r.poiHandler.ListByTypePath)
		poiGroup.GET("/radius/:lat/:lng/:radius", r.poiHandler.ListInRadiusPath)
		poiGroup.GET("/radius/:lat/:lng/:radius/type/:type", r.poiHandler.ListInRadiusPath)
		poiGroup.GET("/:id", r.poiHandler.Get)
		poiGroup.PUT("/:id", r.poiHandler.Update)
		poiGroup.DELETE("/:id", r.poiHandler.Delete)
	}

	api.GET("/search", r.searchHandler.Search)
	api.GET("/geocode/reverse", r.searchHandler.Reverse)

	api.POST("/discover", r.discoveryHandler.Discover)
	api.GET("/discover/latest", r.discoveryHandler.Latest)

	api.POST("/isochrone", r.isochroneHandler.FetchOne)
	api.POST("/isochrone/batch", r.isochroneHandler.FetchBatch)

	viewGroup := api.Group("/view")
	{
		viewGroup.GET("", r.viewStateHandler.Get)
		viewGroup.PUT("", r.viewStateHandler.Set)
		viewGroup.PUT("/zoom", r.viewStateHandler.SetNamedZoom)
		viewGroup.POST("/select/:id", r.viewStateHandler.SelectProperty)
		viewGroup.DELETE("/select", r.viewStateHandler.ClearSelection)
	}

	sheetGroup := api.Group("/sheet")
	{
		sheetGroup.POST("/import", r.sheetHandler.Import)
		sheetGroup.GET("/export", r.sheetHandler.Export)
	}
}
