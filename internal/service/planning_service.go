package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/tripjournal/trip-wizard-backend/internal/domain"
	"github.com/tripjournal/trip-wizard-backend/internal/planner"
	"github.com/tripjournal/trip-wizard-backend/internal/repository/ports"
)

var (
	ErrNoDestinationData  = errors.New("no destination data available")
	ErrPlanningValidation = errors.New("invalid planning request")

	ErrDestinationNotFound = planner.ErrDestinationNotFound
)

const (
	cacheKeyDestinations = "catalog:destinations"
	cacheKeyAttractions  = "catalog:attractions"

	defaultNearbyRadiusKM = 350
)

// PlanningService runs the in-process planning engine against the catalog.
// Catalog reads are cached with a TTL so every request does not hit the
// repository.
type PlanningService struct {
	catalog  ports.CatalogRepository
	cache    *cache.Cache
	cacheTTL time.Duration
}

func NewPlanningService(catalog ports.CatalogRepository, cacheTTL time.Duration) *PlanningService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &PlanningService{
		catalog:  catalog,
		cache:    cache.New(cacheTTL, 10*time.Minute),
		cacheTTL: cacheTTL,
	}
}

// Recommend ranks the catalog against the preference set.
func (s *PlanningService) Recommend(ctx context.Context, prefs domain.PreferenceSet) ([]domain.Destination, error) {
	if prefs.TopK < 0 || prefs.TopK > domain.PreferenceTopKMax {
		return nil, fmt.Errorf("%w: top_k must be between %d and %d", ErrPlanningValidation, domain.PreferenceTopKMin, domain.PreferenceTopKMax)
	}

	destinations, err := s.destinations(ctx)
	if err != nil {
		return nil, err
	}
	if len(destinations) == 0 {
		return nil, ErrNoDestinationData
	}
	return planner.RankDestinations(destinations, prefs), nil
}

// GenerateItinerary builds a day plan for the requested destination.
func (s *PlanningService) GenerateItinerary(ctx context.Context, req planner.ItineraryRequest) (*domain.Itinerary, error) {
	if req.Days < 1 || req.Days > 30 {
		return nil, fmt.Errorf("%w: days must be between 1 and 30", ErrPlanningValidation)
	}
	if req.Budget < 0 {
		return nil, fmt.Errorf("%w: budget must not be negative", ErrPlanningValidation)
	}
	if req.Pace == "" {
		req.Pace = domain.PaceModerate
	}
	if !domain.ValidPace(req.Pace) {
		return nil, fmt.Errorf("%w: unknown pace %q", ErrPlanningValidation, req.Pace)
	}

	destinations, err := s.destinations(ctx)
	if err != nil {
		return nil, err
	}
	attractions, err := s.attractions(ctx)
	if err != nil {
		return nil, err
	}
	return planner.BuildItinerary(destinations, attractions, req)
}

// NearbyExpansions lists expansion candidates around the requested
// destination.
func (s *PlanningService) NearbyExpansions(ctx context.Context, req planner.NearbyRequest) (*planner.NearbyResponse, error) {
	if req.ExtraDays < 0 || req.ExtraBudget < 0 {
		return nil, fmt.Errorf("%w: extra_days and extra_budget must not be negative", ErrPlanningValidation)
	}
	if req.RadiusKM <= 0 {
		req.RadiusKM = defaultNearbyRadiusKM
	}

	destinations, err := s.destinations(ctx)
	if err != nil {
		return nil, err
	}
	return planner.SuggestNearby(destinations, req)
}

func (s *PlanningService) destinations(ctx context.Context) ([]domain.Destination, error) {
	if v, ok := s.cache.Get(cacheKeyDestinations); ok {
		return v.([]domain.Destination), nil
	}
	destinations, err := s.catalog.ListDestinations(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(cacheKeyDestinations, destinations, s.cacheTTL)
	return destinations, nil
}

func (s *PlanningService) attractions(ctx context.Context) ([]domain.Attraction, error) {
	if v, ok := s.cache.Get(cacheKeyAttractions); ok {
		return v.([]domain.Attraction), nil
	}
	attractions, err := s.catalog.ListAttractions(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(cacheKeyAttractions, attractions, s.cacheTTL)
	return attractions, nil
}
