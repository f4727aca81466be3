package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tripjournal/trip-wizard-backend/internal/domain"
	"github.com/tripjournal/trip-wizard-backend/internal/planner"
	"github.com/tripjournal/trip-wizard-backend/internal/session"
)

type fakePlanner struct {
	destinations []domain.Destination
	recommendErr error

	itinerary    *domain.Itinerary
	itineraryErr error
	onGenerate   func()

	nearby    []domain.NearbySuggestion
	nearbyErr error

	lastItineraryReq planner.ItineraryRequest
	lastNearbyReq    planner.NearbyRequest
}

func (f *fakePlanner) RecommendDestinations(ctx context.Context, prefs domain.PreferenceSet) ([]domain.Destination, error) {
	return f.destinations, f.recommendErr
}

func (f *fakePlanner) GenerateItinerary(ctx context.Context, req planner.ItineraryRequest) (*domain.Itinerary, error) {
	f.lastItineraryReq = req
	if f.onGenerate != nil {
		f.onGenerate()
	}
	return f.itinerary, f.itineraryErr
}

func (f *fakePlanner) NearbyExpansions(ctx context.Context, req planner.NearbyRequest) ([]domain.NearbySuggestion, error) {
	f.lastNearbyReq = req
	return f.nearby, f.nearbyErr
}

func readyTrip() *session.Trip {
	trip := session.NewTrip()
	trip.SetPreferences(domain.PreferenceSet{Tags: []string{"beach"}, TopK: 5})
	trip.SetDestination(&domain.Destination{ID: 3, Name: "Goa", Latitude: 15.2993, Longitude: 74.1240})
	trip.SetCustomization(domain.Customization{Days: 4, BudgetPerDayINR: 10000, Pace: domain.PaceModerate, Interests: []string{"beach"}})
	return trip
}

func TestSubmitPreferences_SeedsDownstreamState(t *testing.T) {
	svc := NewTripService(&fakePlanner{})
	trip := session.NewTrip()
	trip.SetDestination(&domain.Destination{ID: 9, Name: "Munnar"})

	err := svc.SubmitPreferences(trip, domain.PreferenceSet{Tags: []string{"nature", "hill station"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := trip.Snapshot()
	if snap.Destination != nil {
		t.Fatalf("submitting preferences must clear the selected destination")
	}
	if snap.Preferences.TopK != domain.PreferenceTopKDefault {
		t.Fatalf("expected top_k defaulted to %d, got %d", domain.PreferenceTopKDefault, snap.Preferences.TopK)
	}
	c := snap.Customization
	if c == nil {
		t.Fatalf("expected a seeded default customization")
	}
	if c.Days != 3 || c.BudgetPerDayINR != 12000 || c.Pace != domain.PaceModerate {
		t.Fatalf("unexpected seeded customization: %+v", c)
	}
	if len(c.Interests) != 2 || c.Interests[0] != "nature" {
		t.Fatalf("seeded interests should carry the chosen tags, got %v", c.Interests)
	}
}

func TestSubmitPreferences_TopKBounds(t *testing.T) {
	svc := NewTripService(&fakePlanner{})
	trip := session.NewTrip()

	err := svc.SubmitPreferences(trip, domain.PreferenceSet{TopK: domain.PreferenceTopKMax + 1})
	if !errors.Is(err, ErrPreferenceValidation) {
		t.Fatalf("expected ErrPreferenceValidation, got %v", err)
	}
	if trip.Preferences() != nil {
		t.Fatalf("rejected submission must not touch the session")
	}
}

func TestRecommendations(t *testing.T) {
	fake := &fakePlanner{destinations: []domain.Destination{{ID: 1, Name: "Jaipur"}}}
	svc := NewTripService(fake)
	trip := readyTrip()

	dests, err := svc.Recommendations(context.Background(), trip)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dests) != 1 || dests[0].Name != "Jaipur" {
		t.Fatalf("unexpected destinations: %+v", dests)
	}
}

func TestRecommendations_FailureIsRetryable(t *testing.T) {
	fake := &fakePlanner{recommendErr: planner.ErrPlannerUnavailable}
	svc := NewTripService(fake)
	trip := readyTrip()

	if _, err := svc.Recommendations(context.Background(), trip); !errors.Is(err, ErrRecommendations) {
		t.Fatalf("expected ErrRecommendations, got %v", err)
	}
	if trip.Preferences() == nil {
		t.Fatalf("a failed fetch must leave the session intact")
	}
}

func TestSelectDestination_LeavesDownstreamState(t *testing.T) {
	svc := NewTripService(&fakePlanner{})
	trip := readyTrip()
	trip.SetItinerary(&domain.Itinerary{DestinationID: 3, DestinationName: "Goa"})

	svc.SelectDestination(trip, domain.Destination{ID: 5, Name: "Rishikesh"})

	snap := trip.Snapshot()
	if snap.Destination == nil || snap.Destination.ID != 5 {
		t.Fatalf("expected destination 5 selected, got %+v", snap.Destination)
	}
	if snap.Customization == nil || snap.Itinerary == nil {
		t.Fatalf("changing destination must not clear customization or itinerary")
	}
}

func TestSubmitCustomization_Validation(t *testing.T) {
	svc := NewTripService(&fakePlanner{})
	trip := readyTrip()

	cases := []domain.Customization{
		{Days: domain.TripDaysMin - 1, BudgetPerDayINR: 10000, Pace: domain.PaceModerate},
		{Days: domain.TripDaysMax + 1, BudgetPerDayINR: 10000, Pace: domain.PaceModerate},
		{Days: 5, BudgetPerDayINR: domain.BudgetPerDayINRMin - 1, Pace: domain.PaceModerate},
		{Days: 5, BudgetPerDayINR: domain.BudgetPerDayINRMax + 1, Pace: domain.PaceModerate},
		{Days: 5, BudgetPerDayINR: 10000, Pace: domain.Pace("sprint")},
	}
	for i, c := range cases {
		if err := svc.SubmitCustomization(trip, c); !errors.Is(err, ErrCustomizationValidation) {
			t.Fatalf("case %d: expected ErrCustomizationValidation, got %v", i, err)
		}
	}
}

func TestSubmitCustomization_EmptyPaceDefaults(t *testing.T) {
	svc := NewTripService(&fakePlanner{})
	trip := readyTrip()

	if err := svc.SubmitCustomization(trip, domain.Customization{Days: 5, BudgetPerDayINR: 8000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := trip.Customization().Pace; got != domain.PaceModerate {
		t.Fatalf("expected pace defaulted to moderate, got %q", got)
	}
}

func TestFetchItinerary_Success(t *testing.T) {
	fake := &fakePlanner{
		itinerary: &domain.Itinerary{DestinationID: 3, DestinationName: "Goa", Days: []domain.ItineraryDay{{Day: 1}}},
		nearby:    []domain.NearbySuggestion{{DestinationID: 7, Name: "Gokarna"}},
	}
	svc := NewTripService(fake)
	trip := readyTrip()

	snap, err := svc.FetchItinerary(context.Background(), trip)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Itinerary == nil || snap.Itinerary.DestinationName != "Goa" {
		t.Fatalf("expected itinerary recorded, got %+v", snap.Itinerary)
	}
	if snap.ItineraryErr != "" {
		t.Fatalf("unexpected itinerary error %q", snap.ItineraryErr)
	}
	if len(snap.Nearby) != 1 || snap.Nearby[0].Name != "Gokarna" {
		t.Fatalf("expected nearby suggestions recorded, got %+v", snap.Nearby)
	}

	if fake.lastItineraryReq.Budget != 40000 {
		t.Fatalf("expected budget 4*10000, got %v", fake.lastItineraryReq.Budget)
	}
	if fake.lastNearbyReq.ExtraDays != 2 || fake.lastNearbyReq.RadiusKM != 600 {
		t.Fatalf("unexpected nearby request: %+v", fake.lastNearbyReq)
	}
}

func TestFetchItinerary_ItineraryFailureRecorded(t *testing.T) {
	fake := &fakePlanner{
		itineraryErr: planner.ErrPlannerUnavailable,
		nearby:       []domain.NearbySuggestion{{DestinationID: 7, Name: "Gokarna"}},
	}
	svc := NewTripService(fake)
	trip := readyTrip()

	snap, err := svc.FetchItinerary(context.Background(), trip)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Itinerary != nil {
		t.Fatalf("expected no itinerary on failure")
	}
	if snap.ItineraryErr != itineraryErrMessage {
		t.Fatalf("expected %q, got %q", itineraryErrMessage, snap.ItineraryErr)
	}
	if len(snap.Nearby) != 1 {
		t.Fatalf("nearby fetch is independent of the itinerary failure")
	}
}

func TestFetchItinerary_NearbyFailureIsSilent(t *testing.T) {
	fake := &fakePlanner{
		itinerary: &domain.Itinerary{DestinationID: 3, DestinationName: "Goa"},
		nearbyErr: planner.ErrPlannerUnavailable,
	}
	svc := NewTripService(fake)
	trip := readyTrip()

	snap, err := svc.FetchItinerary(context.Background(), trip)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Itinerary == nil {
		t.Fatalf("expected itinerary despite the nearby failure")
	}
	if snap.Nearby != nil {
		t.Fatalf("a failed nearby fetch must leave the list empty, got %+v", snap.Nearby)
	}
	if snap.ItineraryErr != "" {
		t.Fatalf("nearby failures must not surface an error, got %q", snap.ItineraryErr)
	}
}

func TestFetchItinerary_CancelledFetchWritesNothing(t *testing.T) {
	trip := readyTrip()
	fake := &fakePlanner{
		itinerary: &domain.Itinerary{DestinationID: 3, DestinationName: "Goa"},
	}
	// Simulate the session moving on while the call is in flight.
	fake.onGenerate = func() { trip.CancelFetch() }
	svc := NewTripService(fake)

	snap, err := svc.FetchItinerary(context.Background(), trip)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Itinerary != nil {
		t.Fatalf("a cancelled fetch must not write its result back")
	}
	if snap.ItineraryErr != "" {
		t.Fatalf("a cancelled fetch must not record an error, got %q", snap.ItineraryErr)
	}
}

func TestRecommendations_ResetDuringRequestConflicts(t *testing.T) {
	svc := NewTripService(&fakePlanner{destinations: []domain.Destination{{ID: 1}}})
	trip := readyTrip()
	trip.Reset()

	if _, err := svc.Recommendations(context.Background(), trip); !errors.Is(err, ErrStageConflict) {
		t.Fatalf("expected ErrStageConflict after a reset, got %v", err)
	}
}

func TestFetchItinerary_ResetDuringRequestConflicts(t *testing.T) {
	svc := NewTripService(&fakePlanner{itinerary: &domain.Itinerary{DestinationID: 3}})
	trip := readyTrip()
	trip.Reset()

	if _, err := svc.FetchItinerary(context.Background(), trip); !errors.Is(err, ErrStageConflict) {
		t.Fatalf("expected ErrStageConflict after a reset, got %v", err)
	}

	// A cleared single field is enough to conflict.
	trip = readyTrip()
	trip.SetDestination(nil)
	if _, err := svc.FetchItinerary(context.Background(), trip); !errors.Is(err, ErrStageConflict) {
		t.Fatalf("expected ErrStageConflict without a destination, got %v", err)
	}
}

func TestMapView_PlaceholderBeforeItinerary(t *testing.T) {
	svc := NewTripService(&fakePlanner{})
	trip := readyTrip()

	view := svc.MapView(trip)
	if !view.Placeholder {
		t.Fatalf("expected a placeholder before the itinerary exists")
	}
	if view.Message != "Map will appear once itinerary is generated." {
		t.Fatalf("unexpected placeholder message %q", view.Message)
	}
	if view.Center != nil {
		t.Fatalf("placeholder views carry no center")
	}
}

func TestMapView_RecentersOnDestinationChange(t *testing.T) {
	svc := NewTripService(&fakePlanner{})
	trip := readyTrip()
	trip.SetItinerary(&domain.Itinerary{
		DestinationID:   3,
		DestinationName: "Goa",
		Days: []domain.ItineraryDay{{
			Day: 1,
			Activities: []domain.ItineraryActivity{
				{AttractionID: 1, Name: "Baga Beach", Latitude: 15.5524, Longitude: 73.7519},
			},
		}},
	})

	first := svc.MapView(trip)
	if first.Center == nil {
		t.Fatalf("expected a centered view")
	}
	again := svc.MapView(trip)
	if again.Center.Revision != first.Center.Revision {
		t.Fatalf("unchanged coordinates must not bump the revision: %d vs %d", again.Center.Revision, first.Center.Revision)
	}

	trip.SetDestination(&domain.Destination{ID: 5, Name: "Rishikesh", Latitude: 30.0869, Longitude: 78.2676})
	moved := svc.MapView(trip)
	if moved.Center.Revision <= again.Center.Revision {
		t.Fatalf("a coordinate change must bump the revision: %d vs %d", moved.Center.Revision, again.Center.Revision)
	}
	if moved.Center.Latitude != 30.0869 {
		t.Fatalf("expected the view centered on the new destination, got %v", moved.Center.Latitude)
	}
}

func TestReset(t *testing.T) {
	svc := NewTripService(&fakePlanner{})
	trip := readyTrip()
	trip.SetItinerary(&domain.Itinerary{DestinationID: 3})

	svc.Reset(trip)

	snap := trip.Snapshot()
	if snap.Preferences != nil || snap.Destination != nil || snap.Customization != nil || snap.Itinerary != nil {
		t.Fatalf("reset must clear the whole session: %+v", snap)
	}
}
