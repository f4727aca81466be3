package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tripjournal/trip-wizard-backend/internal/domain"
	"github.com/tripjournal/trip-wizard-backend/internal/mapview"
	"github.com/tripjournal/trip-wizard-backend/internal/planner"
	"github.com/tripjournal/trip-wizard-backend/internal/session"
	"github.com/tripjournal/trip-wizard-backend/internal/wizard"
)

var (
	ErrPreferenceValidation    = errors.New("invalid preferences")
	ErrCustomizationValidation = errors.New("invalid customization")
	ErrRecommendations         = errors.New("could not fetch destination recommendations")
	ErrStageConflict           = errors.New("stage prerequisites no longer met")
)

const itineraryErrMessage = "Could not generate itinerary from API."

// plannerAPI is the slice of the planning client the wizard needs.
type plannerAPI interface {
	RecommendDestinations(ctx context.Context, prefs domain.PreferenceSet) ([]domain.Destination, error)
	GenerateItinerary(ctx context.Context, req planner.ItineraryRequest) (*domain.Itinerary, error)
	NearbyExpansions(ctx context.Context, req planner.NearbyRequest) ([]domain.NearbySuggestion, error)
}

// TripService orchestrates the wizard: it applies stage submissions to the
// trip session and runs the stage fetches against the planning service.
type TripService struct {
	planner plannerAPI
}

func NewTripService(p plannerAPI) *TripService {
	return &TripService{planner: p}
}

// SubmitPreferences applies the stage-one submission. As in the wizard UI,
// starting over clears the selected destination and seeds a default
// customization carrying the chosen tags.
func (s *TripService) SubmitPreferences(trip *session.Trip, prefs domain.PreferenceSet) error {
	if prefs.TopK == 0 {
		prefs.TopK = domain.PreferenceTopKDefault
	}
	if prefs.TopK < domain.PreferenceTopKMin || prefs.TopK > domain.PreferenceTopKMax {
		return fmt.Errorf("%w: top_k must be between %d and %d", ErrPreferenceValidation, domain.PreferenceTopKMin, domain.PreferenceTopKMax)
	}

	trip.CancelFetch()
	trip.SetPreferences(prefs)
	trip.SetDestination(nil)
	trip.SetCustomization(domain.Customization{
		Days:            3,
		BudgetPerDayINR: 12000,
		Pace:            domain.PaceModerate,
		Interests:       prefs.Tags,
	})
	return nil
}

// Recommendations runs the stage-two fetch. A failure here is surfaced to the
// caller; the stage stays usable for another attempt.
func (s *TripService) Recommendations(ctx context.Context, trip *session.Trip) ([]domain.Destination, error) {
	// The guard ran on an earlier snapshot; a concurrent reset may have
	// cleared the session since.
	prefs := trip.Preferences()
	if prefs == nil {
		return nil, ErrStageConflict
	}
	destinations, err := s.planner.RecommendDestinations(ctx, *prefs)
	if err != nil {
		return nil, ErrRecommendations
	}
	return destinations, nil
}

// SelectDestination records the traveler's pick. Downstream customization and
// itinerary state are intentionally left untouched.
func (s *TripService) SelectDestination(trip *session.Trip, dest domain.Destination) {
	trip.CancelFetch()
	trip.SetDestination(&dest)
}

// ClearDestination drops the selection without touching other fields.
func (s *TripService) ClearDestination(trip *session.Trip) {
	trip.CancelFetch()
	trip.SetDestination(nil)
}

// SubmitCustomization applies the stage-three submission.
func (s *TripService) SubmitCustomization(trip *session.Trip, c domain.Customization) error {
	if c.Days < domain.TripDaysMin || c.Days > domain.TripDaysMax {
		return fmt.Errorf("%w: days must be between %d and %d", ErrCustomizationValidation, domain.TripDaysMin, domain.TripDaysMax)
	}
	if c.BudgetPerDayINR < domain.BudgetPerDayINRMin || c.BudgetPerDayINR > domain.BudgetPerDayINRMax {
		return fmt.Errorf("%w: budget_per_day_inr must be between %d and %d", ErrCustomizationValidation, domain.BudgetPerDayINRMin, domain.BudgetPerDayINRMax)
	}
	if c.Pace == "" {
		c.Pace = domain.PaceModerate
	}
	if !domain.ValidPace(c.Pace) {
		return fmt.Errorf("%w: unknown pace %q", ErrCustomizationValidation, c.Pace)
	}

	trip.CancelFetch()
	trip.SetCustomization(c)
	return nil
}

// FetchItinerary runs the stage-four fetches: itinerary generation and nearby
// expansions as two independent, concurrently launched calls with no joint
// transaction. An itinerary failure is recorded on the session and surfaced;
// a nearby failure is swallowed, the suggestion list simply stays empty. Both
// calls share one fetch context that a later stage change or reset cancels; a
// cancelled call writes nothing back.
func (s *TripService) FetchItinerary(ctx context.Context, trip *session.Trip) (session.Snapshot, error) {
	snap := trip.Snapshot()
	if snap.Preferences == nil || snap.Destination == nil || snap.Customization == nil {
		// The guard ran on an earlier snapshot; a concurrent reset may have
		// cleared the session since.
		return session.Snapshot{}, ErrStageConflict
	}
	itineraryReq := wizard.BuildItineraryRequest(*snap.Destination, *snap.Customization, *snap.Preferences)
	nearbyReq := wizard.BuildNearbyRequest(*snap.Destination, *snap.Customization)

	fetchCtx := trip.BeginFetch(ctx)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		itinerary, err := s.planner.GenerateItinerary(fetchCtx, itineraryReq)
		if fetchCtx.Err() != nil {
			return // session moved on; drop the result
		}
		if err != nil {
			trip.SetItineraryError(itineraryErrMessage)
			return
		}
		trip.SetItinerary(itinerary)
	}()
	go func() {
		defer wg.Done()
		suggestions, err := s.planner.NearbyExpansions(fetchCtx, nearbyReq)
		if fetchCtx.Err() != nil || err != nil {
			return // optional call, failures stay silent
		}
		trip.SetNearby(suggestions)
	}()
	wg.Wait()

	return trip.Snapshot(), nil
}

// MapView projects the cached itinerary onto the session's map viewport. The
// viewport revision bumps whenever the destination coordinate changed since
// the last rendered view.
func (s *TripService) MapView(trip *session.Trip) mapview.View {
	snap := trip.Snapshot()
	if snap.Itinerary == nil || snap.Destination == nil {
		return mapview.View{Placeholder: true, Message: "Map will appear once itinerary is generated.", Markers: []mapview.Marker{}}
	}

	lat, lng := snap.Destination.Latitude, snap.Destination.Longitude
	view := mapview.Build(snap.Itinerary.DestinationName, mapview.Center{Latitude: lat, Longitude: lng}, snap.Itinerary.Days)
	if !view.Placeholder {
		center := trip.Viewport().Recenter(lat, lng)
		view.Center = &center
	}
	return view
}

// Reset clears the whole session atomically.
func (s *TripService) Reset(trip *session.Trip) {
	trip.Reset()
}
