package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"scout/internal/domain/entity"
	"scout/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePOIUsecase records the filter arguments the handlers pass down.
type fakePOIUsecase struct {
	byTypeArg    entity.POIType
	radiusCenter entity.Coordinate
	radiusKm     float64
	typeFilter   *entity.POIType
}

func (f *fakePOIUsecase) CreatePOI(_ context.Context, _ *usecase.CreatePOIInput) (*entity.POI, error) {
	return &entity.POI{}, nil
}

func (f *fakePOIUsecase) GetPOI(_ context.Context, _ uuid.UUID) (*entity.POI, error) {
	return &entity.POI{}, nil
}

func (f *fakePOIUsecase) ListPOIs(_ context.Context) ([]*entity.POI, error) {
	return []*entity.POI{}, nil
}

func (f *fakePOIUsecase) ListPOIsByType(_ context.Context, poiType entity.POIType) ([]*entity.POI, error) {
	f.byTypeArg = poiType

	return []*entity.POI{}, nil
}

func (f *fakePOIUsecase) ListPOIsInRadius(_ context.Context, center entity.Coordinate, radiusKm float64, poiType *entity.POIType) ([]*entity.POI, error) {
	f.radiusCenter = center
	f.radiusKm = radiusKm
	f.typeFilter = poiType

	return []*entity.POI{}, nil
}

func (f *fakePOIUsecase) UpdatePOI(_ context.Context, _ uuid.UUID, _ *usecase.UpdatePOIInput) (*entity.POI, error) {
	return &entity.POI{}, nil
}

func (f *fakePOIUsecase) DeletePOI(_ context.Context, _ uuid.UUID) error {
	return nil
}

func newPOITestContext(t *testing.T, path string, names, values []string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	return c, rec
}

func TestPOIHandler_ListByTypePath(t *testing.T) {
	fakeUC := &fakePOIUsecase{}
	h := NewPOIHandler(POIHandlerParams{POIUC: fakeUC, Logger: slog.New(slog.DiscardHandler)})

	c, rec := newPOITestContext(t, "/api/poi/type/transport", []string{"type"}, []string{"transport"})
	require.NoError(t, h.ListByTypePath(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.POIType("transport"), fakeUC.byTypeArg)
}

func TestPOIHandler_ListInRadiusPathWithoutType(t *testing.T) {
	fakeUC := &fakePOIUsecase{}
	h := NewPOIHandler(POIHandlerParams{POIUC: fakeUC, Logger: slog.New(slog.DiscardHandler)})

	c, rec := newPOITestContext(t, "/api/poi/radius/46.948/7.447/5",
		[]string{"lat", "lng", "radius"}, []string{"46.948", "7.447", "5"})
	require.NoError(t, h.ListInRadiusPath(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 46.948, fakeUC.radiusCenter.Lat, 1e-9)
	assert.InDelta(t, 5.0, fakeUC.radiusKm, 1e-9)
	assert.Nil(t, fakeUC.typeFilter)
}

func TestPOIHandler_ListInRadiusPathWithType(t *testing.T) {
	fakeUC := &fakePOIUsecase{}
	h := NewPOIHandler(POIHandlerParams{POIUC: fakeUC, Logger: slog.New(slog.DiscardHandler)})

	c, rec := newPOITestContext(t, "/api/poi/radius/46.948/7.447/5/type/hospitals",
		[]string{"lat", "lng", "radius", "type"}, []string{"46.948", "7.447", "5", "hospitals"})
	require.NoError(t, h.ListInRadiusPath(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, fakeUC.typeFilter)
	assert.Equal(t, entity.POIType("hospitals"), *fakeUC.typeFilter)
}
