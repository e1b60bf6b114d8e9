package impl

import (
	"context"
	"sync"
	"time"

	"scout/config"
	"scout/internal/domain/entity"
	"scout/internal/domain/repository"
	"scout/internal/domain/service"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// testConfig returns a config with short windows so tests run fast.
func testConfig() *config.Config {
	cfg := &config.Config{
		Providers: &config.ProvidersConfig{},
		Map: &config.MapConfig{
			DefaultLat:       46.8182,
			DefaultLng:       8.2275,
			DefaultZoomLevel: "country",
		},
	}
	cfg.Providers.Geocoding.ResultLimit = 5
	cfg.Providers.Geocoding.MinQueryLength = 3
	cfg.Providers.Geocoding.DebounceWindow = 20 * time.Millisecond
	cfg.Providers.Places.DefaultRadiusMeter = 5000
	cfg.Providers.Places.CacheTTL = time.Minute
	cfg.Providers.Isochrone.BatchSize = 2
	cfg.Providers.Isochrone.BatchInterval = time.Millisecond

	return cfg
}

// fakePropertyRepo is an in-memory PropertyRepository.
type fakePropertyRepo struct {
	mu         sync.Mutex
	properties map[uuid.UUID]*entity.Property
	err        error
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{properties: make(map[uuid.UUID]*entity.Property)}
}

func (f *fakePropertyRepo) Create(_ context.Context, property *entity.Property) error {
	if f.err != nil {
		return f.err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if property.ID == uuid.Nil {
		property.ID = uuid.New()
	}
	stored := *property
	f.properties[property.ID] = &stored

	return nil
}

func (f *fakePropertyRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Property, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	property, ok := f.properties[id]
	if !ok {
		return nil, repository.ErrPropertyNotFound
	}
	found := *property

	return &found, nil
}

func (f *fakePropertyRepo) FindAll(_ context.Context) ([]*entity.Property, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]*entity.Property, 0, len(f.properties))
	for _, property := range f.properties {
		found := *property
		all = append(all, &found)
	}

	return all, nil
}

func (f *fakePropertyRepo) FindByType(ctx context.Context, propertyType entity.PropertyType) ([]*entity.Property, error) {
	all, err := f.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*entity.Property, 0, len(all))
	for _, property := range all {
		if property.Type == propertyType {
			matched = append(matched, property)
		}
	}

	return matched, nil
}

func (f *fakePropertyRepo) FindInRadius(ctx context.Context, _ entity.Coordinate, _ float64) ([]*entity.Property, error) {
	return f.FindAll(ctx)
}

func (f *fakePropertyRepo) Update(_ context.Context, property *entity.Property) error {
	if f.err != nil {
		return f.err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.properties[property.ID]; !ok {
		return repository.ErrPropertyNotFound
	}
	stored := *property
	f.properties[property.ID] = &stored

	return nil
}

func (f *fakePropertyRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.properties[id]; !ok {
		return repository.ErrPropertyNotFound
	}
	delete(f.properties, id)

	return nil
}

// fakePOIRepo is an in-memory POIRepository.
type fakePOIRepo struct {
	mu   sync.Mutex
	pois map[uuid.UUID]*entity.POI
	err  error
}

func newFakePOIRepo() *fakePOIRepo {
	return &fakePOIRepo{pois: make(map[uuid.UUID]*entity.POI)}
}

func (f *fakePOIRepo) Create(_ context.Context, poi *entity.POI) error {
	if f.err != nil {
		return f.err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if poi.ID == uuid.Nil {
		poi.ID = uuid.New()
	}
	stored := *poi
	f.pois[poi.ID] = &stored

	return nil
}

func (f *fakePOIRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.POI, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	poi, ok := f.pois[id]
	if !ok {
		return nil, repository.ErrPOINotFound
	}
	found := *poi

	return &found, nil
}

func (f *fakePOIRepo) FindAll(_ context.Context) ([]*entity.POI, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]*entity.POI, 0, len(f.pois))
	for _, poi := range f.pois {
		found := *poi
		all = append(all, &found)
	}

	return all, nil
}

func (f *fakePOIRepo) FindByType(ctx context.Context, poiType entity.POIType) ([]*entity.POI, error) {
	all, err := f.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*entity.POI, 0, len(all))
	for _, poi := range all {
		if poi.Type == poiType {
			matched = append(matched, poi)
		}
	}

	return matched, nil
}

func (f *fakePOIRepo) FindInRadius(ctx context.Context, _ entity.Coordinate, _ float64, poiType *entity.POIType) ([]*entity.POI, error) {
	if poiType != nil {
		return f.FindByType(ctx, *poiType)
	}

	return f.FindAll(ctx)
}

func (f *fakePOIRepo) Update(_ context.Context, poi *entity.POI) error {
	if f.err != nil {
		return f.err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.pois[poi.ID]; !ok {
		return repository.ErrPOINotFound
	}
	stored := *poi
	f.pois[poi.ID] = &stored

	return nil
}

func (f *fakePOIRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.pois[id]; !ok {
		return repository.ErrPOINotFound
	}
	delete(f.pois, id)

	return nil
}

// fakeGeocoder records queries and returns canned results.
type fakeGeocoder struct {
	mu            sync.Mutex
	queries       []string
	results       []service.SearchResult
	err           error
	reverseCoords []entity.Coordinate
	reverseLabel  string
	reverseErr    error
}

func (f *fakeGeocoder) Search(_ context.Context, query string, _ int) ([]service.SearchResult, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	return f.results, nil
}

func (f *fakeGeocoder) Reverse(_ context.Context, coord entity.Coordinate) (string, error) {
	f.mu.Lock()
	f.reverseCoords = append(f.reverseCoords, coord)
	f.mu.Unlock()

	if f.reverseErr != nil {
		return "", f.reverseErr
	}

	return f.reverseLabel, nil
}

func (f *fakeGeocoder) recordedReverseCoords() []entity.Coordinate {
	f.mu.Lock()
	defer f.mu.Unlock()
	coords := make([]entity.Coordinate, len(f.reverseCoords))
	copy(coords, f.reverseCoords)

	return coords
}

func (f *fakeGeocoder) recordedQueries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	queries := make([]string, len(f.queries))
	copy(queries, f.queries)

	return queries
}

// placeCall records one nearby-search invocation.
type placeCall struct {
	kind  string // "type" or "keyword"
	value string
}

// fakePlaceSearcher returns canned places per type/keyword value.
type fakePlaceSearcher struct {
	mu        sync.Mutex
	calls     []placeCall
	byType    map[string][]entity.Place
	byKeyword map[string][]entity.Place
	errByType map[string]error
}

func newFakePlaceSearcher() *fakePlaceSearcher {
	return &fakePlaceSearcher{
		byType:    make(map[string][]entity.Place),
		byKeyword: make(map[string][]entity.Place),
		errByType: make(map[string]error),
	}
}

func (f *fakePlaceSearcher) NearbyType(_ context.Context, _ entity.Coordinate, _ int, placeType string) ([]entity.Place, error) {
	f.mu.Lock()
	f.calls = append(f.calls, placeCall{kind: "type", value: placeType})
	f.mu.Unlock()

	if err := f.errByType[placeType]; err != nil {
		return nil, err
	}

	return f.byType[placeType], nil
}

func (f *fakePlaceSearcher) NearbyKeyword(_ context.Context, _ entity.Coordinate, _ int, keyword string) ([]entity.Place, error) {
	f.mu.Lock()
	f.calls = append(f.calls, placeCall{kind: "keyword", value: keyword})
	f.mu.Unlock()

	return f.byKeyword[keyword], nil
}

func (f *fakePlaceSearcher) recordedCalls() []placeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	calls := make([]placeCall, len(f.calls))
	copy(calls, f.calls)

	return calls
}

// fakeTransitSource returns canned stops.
type fakeTransitSource struct {
	mu    sync.Mutex
	calls int
	stops []entity.Place
	err   error
}

func (f *fakeTransitSource) StopsNear(_ context.Context, _ entity.Coordinate, _ int) ([]entity.Place, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	return f.stops, nil
}

// fakeIsochroneProvider returns an empty collection per call and can fail for
// selected coordinates.
type fakeIsochroneProvider struct {
	mu       sync.Mutex
	calls    int
	failLats map[float64]error
}

func (f *fakeIsochroneProvider) Isochrone(_ context.Context, center entity.Coordinate, _ entity.IsochroneParams) (*geojson.FeatureCollection, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if err := f.failLats[center.Lat]; err != nil {
		return nil, err
	}

	return geojson.NewFeatureCollection(), nil
}

func (f *fakeIsochroneProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls
}

// fakeRenderer records rendered views.
type fakeRenderer struct {
	mu    sync.Mutex
	views []entity.ViewState
}

func (f *fakeRenderer) RenderView(view entity.ViewState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.views = append(f.views, view)
}

func (f *fakeRenderer) renderedViews() []entity.ViewState {
	f.mu.Lock()
	defer f.mu.Unlock()
	views := make([]entity.ViewState, len(f.views))
	copy(views, f.views)

	return views
}
