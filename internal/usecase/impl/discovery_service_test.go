package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/errors"
	"scout/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCenter = entity.Coordinate{Lat: 47.3769, Lng: 8.5417}

func TestDiscoveryService_DispatchPerCategory(t *testing.T) {
	places := newFakePlaceSearcher()
	places.byKeyword["Migros"] = []entity.Place{{PlaceID: "m1", Name: "Migros City"}}
	places.byType["hospital"] = []entity.Place{{PlaceID: "h1", Name: "Triemli"}}
	transit := &fakeTransitSource{}

	discovery := NewDiscoveryService(places, transit, testConfig(), discardLogger())
	collection, err := discovery.Discover(context.Background(), &usecase.DiscoverInput{
		Center:     testCenter,
		Categories: []entity.PlaceCategory{entity.CategoryMigros, entity.CategoryHospitals},
	})
	require.NoError(t, err)

	require.Len(t, collection[entity.CategoryMigros], 1)
	require.Len(t, collection[entity.CategoryHospitals], 1)
	// Every place carries the category it was fetched for.
	assert.Equal(t, entity.CategoryMigros, collection[entity.CategoryMigros][0].Category)
	assert.Equal(t, entity.CategoryHospitals, collection[entity.CategoryHospitals][0].Category)
}

func TestDiscoveryService_FailingCategoryYieldsEmpty(t *testing.T) {
	places := newFakePlaceSearcher()
	places.byType["shopping_mall"] = []entity.Place{{PlaceID: "s1", Name: "Sihlcity"}}
	places.errByType["hospital"] = errors.New("quota exceeded")
	transit := &fakeTransitSource{}

	discovery := NewDiscoveryService(places, transit, testConfig(), discardLogger())
	collection, err := discovery.Discover(context.Background(), &usecase.DiscoverInput{
		Center:     testCenter,
		Categories: []entity.PlaceCategory{entity.CategoryHospitals, entity.CategoryMalls},
	})
	require.NoError(t, err)

	assert.Empty(t, collection[entity.CategoryHospitals])
	assert.Len(t, collection[entity.CategoryMalls], 1)
}

func TestDiscoveryService_InvalidCategory(t *testing.T) {
	discovery := NewDiscoveryService(newFakePlaceSearcher(), &fakeTransitSource{}, testConfig(), discardLogger())

	collection, err := discovery.Discover(context.Background(), &usecase.DiscoverInput{
		Center:     testCenter,
		Categories: []entity.PlaceCategory{"casinos"},
	})
	assert.Nil(t, collection)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidCategory.ErrorCode(), appErr.ErrorCode())
}

func TestDiscoveryService_CoordinateOutOfRange(t *testing.T) {
	discovery := NewDiscoveryService(newFakePlaceSearcher(), &fakeTransitSource{}, testConfig(), discardLogger())

	_, err := discovery.Discover(context.Background(), &usecase.DiscoverInput{
		Center: entity.Coordinate{Lat: 91, Lng: 0},
	})
	assert.Equal(t, domainerrors.ErrCoordinateOutOfRange, err)
}

func TestDiscoveryService_BusStopsPreferOpenData(t *testing.T) {
	places := newFakePlaceSearcher()
	transit := &fakeTransitSource{
		stops: []entity.Place{{PlaceID: "8503000", Name: "Zürich HB"}},
	}

	discovery := NewDiscoveryService(places, transit, testConfig(), discardLogger())
	collection, err := discovery.Discover(context.Background(), &usecase.DiscoverInput{
		Center:     testCenter,
		Categories: []entity.PlaceCategory{entity.CategoryBusStop},
	})
	require.NoError(t, err)

	require.Len(t, collection[entity.CategoryBusStop], 1)
	assert.Equal(t, "Zürich HB", collection[entity.CategoryBusStop][0].Name)
	// The commercial API was never consulted.
	assert.Empty(t, places.recordedCalls())
}

func TestDiscoveryService_BusStopsFallBackOnEmptyPrimary(t *testing.T) {
	places := newFakePlaceSearcher()
	places.byType["bus_station"] = []entity.Place{{PlaceID: "b1", Name: "Bushof"}}
	transit := &fakeTransitSource{}

	discovery := NewDiscoveryService(places, transit, testConfig(), discardLogger())
	collection, err := discovery.Discover(context.Background(), &usecase.DiscoverInput{
		Center:     testCenter,
		Categories: []entity.PlaceCategory{entity.CategoryBusStop},
	})
	require.NoError(t, err)

	require.Len(t, collection[entity.CategoryBusStop], 1)
	assert.Equal(t, "Bushof", collection[entity.CategoryBusStop][0].Name)
	require.Len(t, places.recordedCalls(), 1)
	assert.Equal(t, placeCall{kind: "type", value: "bus_station"}, places.recordedCalls()[0])
}

func TestDiscoveryService_BusStopsFallBackOnPrimaryError(t *testing.T) {
	places := newFakePlaceSearcher()
	places.byType["bus_station"] = []entity.Place{{PlaceID: "b1", Name: "Bushof"}}
	transit := &fakeTransitSource{err: errors.New("gateway timeout")}

	discovery := NewDiscoveryService(places, transit, testConfig(), discardLogger())
	collection, err := discovery.Discover(context.Background(), &usecase.DiscoverInput{
		Center:     testCenter,
		Categories: []entity.PlaceCategory{entity.CategoryBusStop},
	})
	require.NoError(t, err)
	require.Len(t, collection[entity.CategoryBusStop], 1)
}

func TestDiscoveryService_DenylistFiltersImplausibleMatches(t *testing.T) {
	places := newFakePlaceSearcher()
	places.byKeyword["Coop"] = []entity.Place{
		{PlaceID: "c1", Name: "Coop Supermarkt", Types: []string{"supermarket", "grocery_or_supermarket"}},
		{PlaceID: "c2", Name: "Coop Restaurant", Types: []string{"restaurant", "food"}},
	}
	transit := &fakeTransitSource{}

	discovery := NewDiscoveryService(places, transit, testConfig(), discardLogger())
	collection, err := discovery.Discover(context.Background(), &usecase.DiscoverInput{
		Center:     testCenter,
		Categories: []entity.PlaceCategory{entity.CategoryCoop},
	})
	require.NoError(t, err)

	require.Len(t, collection[entity.CategoryCoop], 1)
	assert.Equal(t, "c1", collection[entity.CategoryCoop][0].PlaceID)
}

func TestDiscoveryService_MemoizesIdenticalRequests(t *testing.T) {
	places := newFakePlaceSearcher()
	places.byType["hospital"] = []entity.Place{{PlaceID: "h1", Name: "Triemli"}}
	transit := &fakeTransitSource{}

	discovery := NewDiscoveryService(places, transit, testConfig(), discardLogger())
	input := &usecase.DiscoverInput{
		Center:     testCenter,
		Categories: []entity.PlaceCategory{entity.CategoryHospitals},
	}

	_, err := discovery.Discover(context.Background(), input)
	require.NoError(t, err)
	_, err = discovery.Discover(context.Background(), input)
	require.NoError(t, err)

	// Second round is served from the TTL cache.
	assert.Len(t, places.recordedCalls(), 1)
}

// gatedPlaceSearcher blocks NearbyType calls until released.
type gatedPlaceSearcher struct {
	gate   chan struct{}
	places []entity.Place

	mu    sync.Mutex
	calls int
}

func (g *gatedPlaceSearcher) NearbyType(ctx context.Context, _ entity.Coordinate, _ int, _ string) ([]entity.Place, error) {
	g.mu.Lock()
	g.calls++
	first := g.calls == 1
	g.mu.Unlock()

	if first {
		select {
		case <-g.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return g.places, nil
}

func (g *gatedPlaceSearcher) NearbyKeyword(context.Context, entity.Coordinate, int, string) ([]entity.Place, error) {
	return nil, nil
}

func TestDiscoveryService_StaleRoundDoesNotOverwriteSnapshot(t *testing.T) {
	gated := &gatedPlaceSearcher{
		gate:   make(chan struct{}),
		places: []entity.Place{{PlaceID: "h1", Name: "Triemli"}},
	}
	discovery := NewDiscoveryService(gated, &fakeTransitSource{}, testConfig(), discardLogger())

	slowInput := &usecase.DiscoverInput{
		Center:     entity.Coordinate{Lat: 47.0, Lng: 8.0},
		Categories: []entity.PlaceCategory{entity.CategoryHospitals},
	}
	fastInput := &usecase.DiscoverInput{
		Center:     entity.Coordinate{Lat: 46.0, Lng: 7.0},
		Categories: []entity.PlaceCategory{entity.CategoryHospitals},
	}

	var wg sync.WaitGroup
	wg.Add(1)
	started := make(chan struct{})
	go func() {
		defer wg.Done()
		close(started)
		_, err := discovery.Discover(context.Background(), slowInput)
		assert.NoError(t, err)
	}()
	<-started

	// Wait until the slow round is inside the provider call, then run a
	// newer round to completion before releasing it.
	for {
		gated.mu.Lock()
		inFlight := gated.calls == 1
		gated.mu.Unlock()
		if inFlight {
			break
		}
		time.Sleep(time.Millisecond)
	}

	fast, err := discovery.Discover(context.Background(), fastInput)
	require.NoError(t, err)
	require.Len(t, fast[entity.CategoryHospitals], 1)

	close(gated.gate)
	wg.Wait()

	// The slower, older round finished last but must not win.
	latest := discovery.Latest()
	assert.Equal(t, fast, latest)
}
