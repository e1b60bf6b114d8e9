package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"

	"scout/internal/delivery/http/response"
	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/sheet"
	"scout/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SheetHandlerParams holds dependencies for SheetHandler, injected by Fx.
type SheetHandlerParams struct {
	fx.In

	PropertyUC usecase.PropertyUsecase
	Logger     *slog.Logger
}

// SheetHandler imports and exports the scouting sheet as CSV.
type SheetHandler struct {
	propertyUC usecase.PropertyUsecase
	logger     *slog.Logger
}

// NewSheetHandler is the constructor for SheetHandler
func NewSheetHandler(params SheetHandlerParams) *SheetHandler {
	return &SheetHandler{
		propertyUC: params.PropertyUC,
		logger:     params.Logger,
	}
}

// importResult summarizes one sheet import.
type importResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// Import reads a CSV body and creates one property per usable row. Rows
// without an address or a resolvable coordinate are skipped and reported.
func (h *SheetHandler) Import(c echo.Context) error {
	rows, err := sheet.Import(c.Request().Body)
	if err != nil {
		return domainerrors.ErrSheetParseFailed.WithDetails(err.Error())
	}

	ctx := c.Request().Context()
	result := importResult{}
	for i, row := range rows {
		if row.Address == "" || row.Coordinate == nil {
			result.Skipped++

			continue
		}

		input := &usecase.CreatePropertyInput{
			Title:       row.Address,
			Type:        entity.PropertySale,
			Price:       parseFloatCell(row.Price),
			Sqft:        parseFloatCell(row.Area),
			Bedrooms:    int(parseFloatCell(row.Rooms)),
			Lat:         row.Coordinate.Lat,
			Lng:         row.Coordinate.Lng,
			Description: row.Notes,
			Address:     entity.PostalAddress{Street: row.Address},
		}

		if _, err := h.propertyUC.CreateProperty(ctx, input); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, "row "+strconv.Itoa(i+1)+": "+err.Error())

			continue
		}
		result.Imported++
	}

	return response.Success(c, http.StatusOK, result, "Sheet imported successfully")
}

// Export streams the stored properties as a CSV sheet.
func (h *SheetHandler) Export(c echo.Context) error {
	properties, err := h.propertyUC.ListProperties(c.Request().Context())
	if err != nil {
		return handleAppError(err)
	}

	rows := make([]sheet.Row, 0, len(properties))
	for _, property := range properties {
		coordinate := property.Coordinates
		rows = append(rows, sheet.Row{
			Address:    property.Title,
			Price:      strconv.FormatFloat(property.Price, 'f', -1, 64),
			Rooms:      strconv.Itoa(property.Bedrooms),
			Area:       strconv.FormatFloat(property.Sqft, 'f', -1, 64),
			Coordinate: &coordinate,
			Notes:      property.Description,
		})
	}

	var buf bytes.Buffer
	if err := sheet.Export(&buf, rows); err != nil {
		return handleAppError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="scouting-sheet.csv"`)

	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

func parseFloatCell(cell string) float64 {
	value, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0
	}

	return value
}
