package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"scout/config"
	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/service"
	"scout/internal/usecase"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// chainKeywords maps each retail-chain category to the keyword sent to the
// places provider.
var chainKeywords = map[entity.PlaceCategory]string{
	entity.CategoryMigros: "Migros",
	entity.CategoryCoop:   "Coop",
	entity.CategoryAldi:   "Aldi",
	entity.CategoryLidl:   "Lidl",
}

// placeTypes maps each type-searched category to the provider place type.
var placeTypes = map[entity.PlaceCategory]string{
	entity.CategoryHospitals:    "hospital",
	entity.CategoryMalls:        "shopping_mall",
	entity.CategoryTrainStation: "train_station",
	entity.CategoryBusStop:      "bus_station",
}

// typeDenylist drops provider matches that cannot plausibly belong to any of
// the searched categories. Keyword searches in particular are loose: a query
// for a grocery chain happily returns restaurants named after it.
var typeDenylist = []string{
	"restaurant",
	"cafe",
	"bar",
	"night_club",
	"lodging",
	"gas_station",
	"car_dealer",
	"car_repair",
	"car_wash",
}

type cachedPlaces struct {
	places    []entity.Place
	expiresAt time.Time
}

type discoveryService struct {
	places  service.PlaceSearcher
	transit service.TransitSource
	config  *config.Config
	logger  *slog.Logger

	// flight collapses concurrent identical category fetches; cache holds
	// their results for the configured TTL.
	flight  singleflight.Group
	cacheMu sync.Mutex
	cache   map[string]cachedPlaces

	// mu guards the round counter and the latest snapshot. A round that
	// finishes after a newer one never overwrites the snapshot.
	mu            sync.Mutex
	rounds        uint64
	snapshotRound uint64
	snapshot      entity.PlaceCollection
}

// NewDiscoveryService creates a new discovery service instance
func NewDiscoveryService(
	places service.PlaceSearcher,
	transit service.TransitSource,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DiscoveryUsecase {
	return &discoveryService{
		places:  places,
		transit: transit,
		config:  cfg,
		logger:  logger,
		cache:   make(map[string]cachedPlaces),
	}
}

// Discover fetches every requested category around center in parallel and
// merges the results. A failed category is logged and contributes an empty
// slice; only context cancellation fails the whole round.
func (s *discoveryService) Discover(ctx context.Context, input *usecase.DiscoverInput) (entity.PlaceCollection, error) {
	if !input.Center.Valid() {
		return nil, domainerrors.ErrCoordinateOutOfRange
	}

	categories := input.Categories
	if len(categories) == 0 {
		categories = entity.AllCategories()
	}
	for _, category := range categories {
		if !category.Valid() {
			return nil, domainerrors.ErrInvalidCategory.WithDetails(string(category))
		}
	}

	radiusMeter := input.RadiusMeter
	if radiusMeter <= 0 {
		radiusMeter = s.config.Providers.Places.DefaultRadiusMeter
	}

	s.mu.Lock()
	s.rounds++
	myRound := s.rounds
	s.mu.Unlock()

	collection := make(entity.PlaceCollection, len(categories))
	var collectionMu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	for _, category := range categories {
		group.Go(func() error {
			places, err := s.fetchCategory(groupCtx, category, input.Center, radiusMeter)
			if err != nil {
				// One failing category never fails the round.
				s.logger.WarnContext(groupCtx, "category fetch failed",
					slog.String("category", string(category)),
					slog.Any("error", err),
				)
				places = []entity.Place{}
			}

			collectionMu.Lock()
			collection[category] = places
			collectionMu.Unlock()

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if myRound > s.snapshotRound {
		s.snapshotRound = myRound
		s.snapshot = collection.Clone()
	} else {
		s.logger.DebugContext(ctx, "discarding stale discovery round",
			slog.Uint64("round", myRound),
			slog.Uint64("snapshotRound", s.snapshotRound),
		)
	}
	s.mu.Unlock()

	return collection, nil
}

// Latest returns the snapshot of the most recent completed round.
func (s *discoveryService) Latest() entity.PlaceCollection {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot.Clone()
}

// fetchCategory resolves one category, memoizing identical in-flight and
// recent requests.
func (s *discoveryService) fetchCategory(ctx context.Context, category entity.PlaceCategory, center entity.Coordinate, radiusMeter int) ([]entity.Place, error) {
	key := fmt.Sprintf("%s|%.6f|%.6f|%d", category, center.Lat, center.Lng, radiusMeter)

	result, err, _ := s.flight.Do(key, func() (any, error) {
		s.cacheMu.Lock()
		if entry, ok := s.cache[key]; ok && time.Now().Before(entry.expiresAt) {
			s.cacheMu.Unlock()

			return entry.places, nil
		}
		s.cacheMu.Unlock()

		places, err := s.fetchCategoryFresh(ctx, category, center, radiusMeter)
		if err != nil {
			return nil, err
		}

		s.cacheMu.Lock()
		s.cache[key] = cachedPlaces{
			places:    places,
			expiresAt: time.Now().Add(s.config.Providers.Places.CacheTTL),
		}
		s.cacheMu.Unlock()

		return places, nil
	})
	if err != nil {
		return nil, err
	}

	places, _ := result.([]entity.Place)

	return places, nil
}

func (s *discoveryService) fetchCategoryFresh(ctx context.Context, category entity.PlaceCategory, center entity.Coordinate, radiusMeter int) ([]entity.Place, error) {
	var places []entity.Place
	var err error

	switch {
	case category.GroceryChain():
		places, err = s.places.NearbyKeyword(ctx, center, radiusMeter, chainKeywords[category])
	case category == entity.CategoryBusStop:
		places, err = s.fetchBusStops(ctx, center, radiusMeter)
	default:
		places, err = s.places.NearbyType(ctx, center, radiusMeter, placeTypes[category])
	}
	if err != nil {
		return nil, err
	}

	return tagAndFilter(places, category), nil
}

// fetchBusStops tries the open-data transit endpoint first and only falls
// back to the commercial places API when the primary errors or comes back
// empty.
func (s *discoveryService) fetchBusStops(ctx context.Context, center entity.Coordinate, radiusMeter int) ([]entity.Place, error) {
	stops, err := s.transit.StopsNear(ctx, center, radiusMeter)
	if err == nil && len(stops) > 0 {
		return stops, nil
	}
	if err != nil {
		s.logger.WarnContext(ctx, "open-data transit lookup failed, falling back to places API",
			slog.Any("error", err),
		)
	}

	return s.places.NearbyType(ctx, center, radiusMeter, placeTypes[entity.CategoryBusStop])
}

// tagAndFilter stamps the category onto each place and drops matches whose
// provider type tags place them outside the category.
func tagAndFilter(places []entity.Place, category entity.PlaceCategory) []entity.Place {
	filtered := make([]entity.Place, 0, len(places))
	for _, place := range places {
		if denylisted(place) {
			continue
		}
		place.Category = category
		filtered = append(filtered, place)
	}

	return filtered
}

func denylisted(place entity.Place) bool {
	for _, tag := range place.Types {
		tag = strings.ToLower(tag)
		for _, banned := range typeDenylist {
			if tag == banned {
				return true
			}
		}
	}

	return false
}
