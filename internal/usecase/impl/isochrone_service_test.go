package impl

import (
	"context"
	"testing"

	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walkingParams() entity.IsochroneParams {
	return entity.IsochroneParams{
		Profile:      entity.ProfileWalking,
		ContourUnit:  entity.ContourMinutes,
		ContourValue: 15,
	}
}

func TestIsochroneService_FetchOne_Success(t *testing.T) {
	provider := &fakeIsochroneProvider{}
	service := NewIsochroneService(provider, testConfig(), discardLogger())

	isochrone, err := service.FetchOne(context.Background(), testCenter, walkingParams())
	require.NoError(t, err)
	require.NotNil(t, isochrone)
	assert.NotNil(t, isochrone.Geometry)
	assert.Equal(t, "rgba(86, 197, 150, 0.35)", isochrone.FillColor)
}

func TestIsochroneService_FetchOne_InvalidParams(t *testing.T) {
	provider := &fakeIsochroneProvider{}
	service := NewIsochroneService(provider, testConfig(), discardLogger())

	params := walkingParams()
	params.Profile = "teleport"

	isochrone, err := service.FetchOne(context.Background(), testCenter, params)
	assert.Nil(t, isochrone)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidIsochroneParams.ErrorCode(), appErr.ErrorCode())
	assert.Zero(t, provider.callCount())
}

func TestIsochroneService_FetchOne_ProviderErrorPropagates(t *testing.T) {
	provider := &fakeIsochroneProvider{
		failLats: map[float64]error{testCenter.Lat: errors.New("upstream 500")},
	}
	service := NewIsochroneService(provider, testConfig(), discardLogger())

	isochrone, err := service.FetchOne(context.Background(), testCenter, walkingParams())
	assert.Nil(t, isochrone)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrIsochroneFetchFailed.ErrorCode(), appErr.ErrorCode())
}

func TestIsochroneService_FetchForPlaces_BatchesAndPublishes(t *testing.T) {
	provider := &fakeIsochroneProvider{}
	service := NewIsochroneService(provider, testConfig(), discardLogger())

	places := make([]entity.Place, 0, 7)
	for i := range 7 {
		places = append(places, entity.Place{
			PlaceID:  string(rune('a' + i)),
			Category: entity.CategoryHospitals,
			Location: entity.Coordinate{Lat: 47.0 + float64(i)*0.01, Lng: 8.5},
		})
	}

	var publishedSizes []int
	results, err := service.FetchForPlaces(context.Background(), places, walkingParams(), func(snapshot []entity.Isochrone) {
		publishedSizes = append(publishedSizes, len(snapshot))
	})
	require.NoError(t, err)

	// Batch size two: snapshots grow 2, 4, 6, 7.
	assert.Equal(t, []int{2, 4, 6, 7}, publishedSizes)
	require.Len(t, results, 7)
	assert.Equal(t, "a", results[0].PlaceID)
	assert.Equal(t, entity.CategoryHospitals, results[0].Category)
	assert.Equal(t, 7, provider.callCount())
}

func TestIsochroneService_FetchForPlaces_SkipsFailedPlace(t *testing.T) {
	failing := 47.02
	provider := &fakeIsochroneProvider{
		failLats: map[float64]error{failing: errors.New("no route")},
	}
	service := NewIsochroneService(provider, testConfig(), discardLogger())

	places := []entity.Place{
		{PlaceID: "a", Location: entity.Coordinate{Lat: 47.00, Lng: 8.5}},
		{PlaceID: "b", Location: entity.Coordinate{Lat: failing, Lng: 8.5}},
		{PlaceID: "c", Location: entity.Coordinate{Lat: 47.04, Lng: 8.5}},
	}

	results, err := service.FetchForPlaces(context.Background(), places, walkingParams(), nil)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].PlaceID)
	assert.Equal(t, "c", results[1].PlaceID)
}

func TestIsochroneService_FetchForPlaces_InvalidParams(t *testing.T) {
	provider := &fakeIsochroneProvider{}
	service := NewIsochroneService(provider, testConfig(), discardLogger())

	params := walkingParams()
	params.ContourValue = 0

	results, err := service.FetchForPlaces(context.Background(), []entity.Place{{PlaceID: "a"}}, params, nil)
	assert.Nil(t, results)
	require.Error(t, err)
	assert.Zero(t, provider.callCount())
}
