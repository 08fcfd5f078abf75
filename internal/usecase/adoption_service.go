package usecase

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/petscout/backend/internal/domain"
	"github.com/petscout/backend/internal/infrastructure/cache"
	"github.com/rs/zerolog"
)

// defaultLocationKey is the organization-cache slot for "no location given"
const defaultLocationKey = "default"

// AdoptionService is the facade the rest of the application talks to.
// Every lookup consults the matching cache table first, then falls through
// to either the live provider client or the mock generator depending on
// mode. Mock results pass through the same caches as live ones, so call
// sites cannot tell the sources apart.
type AdoptionService struct {
	caches *cache.Store
	live   domain.AnimalSource
	mock   domain.AnimalSource

	hasCredentials bool
	forceMock      atomic.Bool

	logger zerolog.Logger
}

// NewAdoptionService wires the facade. live may be nil only when
// hasCredentials is false; mock is always required.
func NewAdoptionService(
	caches *cache.Store,
	live domain.AnimalSource,
	mock domain.AnimalSource,
	hasCredentials bool,
	logger zerolog.Logger,
) *AdoptionService {
	return &AdoptionService{
		caches:         caches,
		live:           live,
		mock:           mock,
		hasCredentials: hasCredentials,
		logger:         logger,
	}
}

// mockActive reports whether requests are currently served from mock data:
// either credentials are missing or the developer override is on.
func (s *AdoptionService) mockActive() bool {
	return !s.hasCredentials || s.forceMock.Load()
}

// source picks the data source for the current mode
func (s *AdoptionService) source() domain.AnimalSource {
	if s.mockActive() {
		return s.mock
	}
	return s.live
}

// ListAnimals returns animals matching the filter, cache-first
func (s *AdoptionService) ListAnimals(ctx context.Context, filter domain.SearchFilter) ([]domain.Animal, error) {
	key := filter.CacheKey()

	if animals, err := s.caches.Searches.Get(key); err == nil {
		return animals, nil
	}

	animals, err := s.source().SearchAnimals(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.caches.Searches.Set(key, animals)
	return animals, nil
}

// GetAnimal returns one animal by ID, or (nil, nil) when the provider
// confirms it does not exist. Not-found outcomes are not cached.
func (s *AdoptionService) GetAnimal(ctx context.Context, id int64) (*domain.Animal, error) {
	key := strconv.FormatInt(id, 10)

	if animal, err := s.caches.Animals.Get(key); err == nil {
		return &animal, nil
	}

	animal, err := s.source().GetAnimal(ctx, id)
	if err != nil {
		return nil, err
	}
	if animal == nil {
		return nil, nil
	}

	s.caches.Animals.Set(key, *animal)
	return animal, nil
}

// ListOrganizations returns listing organizations, cache-first, keyed by
// location (or a default slot when no location is given)
func (s *AdoptionService) ListOrganizations(ctx context.Context, location string) ([]domain.Organization, error) {
	key := location
	if key == "" {
		key = defaultLocationKey
	}

	if orgs, err := s.caches.Organizations.Get(key); err == nil {
		return orgs, nil
	}

	orgs, err := s.source().ListOrganizations(ctx, location)
	if err != nil {
		return nil, err
	}

	s.caches.Organizations.Set(key, orgs)
	return orgs, nil
}

// SearchNearby searches distance-sorted around a location. When a live
// search comes back empty it retries once with a broader recency-sorted
// query, so a caller is not shown an empty screen just because distance
// sorting excluded everything. Mock mode never falls back.
func (s *AdoptionService) SearchNearby(ctx context.Context, location string, filter domain.SearchFilter) ([]domain.Animal, error) {
	filter.Location = location
	filter.Sort = domain.SortDistance

	animals, err := s.ListAnimals(ctx, filter)
	if err != nil {
		return nil, err
	}

	if len(animals) == 0 && !s.mockActive() {
		s.logger.Debug().Str("location", location).Msg("nearby search empty, falling back to recency-sorted query")

		fallback := filter
		fallback.Location = ""
		fallback.Distance = 0
		fallback.Sort = domain.SortRecent
		return s.ListAnimals(ctx, fallback)
	}

	return animals, nil
}

// SetForceMockMode toggles the developer mock override. Changing modes
// clears every cache table so no cross-mode data survives the switch.
func (s *AdoptionService) SetForceMockMode(enabled bool) {
	previous := s.forceMock.Swap(enabled)
	if previous != enabled {
		s.caches.ClearAll()
		s.logger.Info().Bool("enabled", enabled).Msg("force-mock mode toggled, caches cleared")
	}
}

// ForceMockMode reports the developer mock override flag
func (s *AdoptionService) ForceMockMode() bool {
	return s.forceMock.Load()
}

// HasCredentials reports whether real provider credentials are configured
func (s *AdoptionService) HasCredentials() bool {
	return s.hasCredentials
}

// ClearCache empties all cache tables
func (s *AdoptionService) ClearCache() {
	s.caches.ClearAll()
	s.logger.Info().Msg("caches cleared")
}
