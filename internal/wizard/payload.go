package wizard

import (
	"github.com/tripjournal/trip-wizard-backend/internal/domain"
	"github.com/tripjournal/trip-wizard-backend/internal/planner"
)

// Nearby-expansion parameters are fixed; making them configurable would have
// to be threaded through Customization.
const (
	NearbyExtraDays = 2
	NearbyRadiusKM  = 600
)

// BuildItineraryRequest derives the generate-itinerary body from session
// state. The budget is always days times the daily budget, interests fall
// back to the stage-one tags when the customization left them empty, and
// pace is pinned to moderate no matter what the session stores.
func BuildItineraryRequest(dest domain.Destination, c domain.Customization, prefs domain.PreferenceSet) planner.ItineraryRequest {
	interests := c.Interests
	if len(interests) == 0 {
		interests = prefs.Tags
	}

	return planner.ItineraryRequest{
		DestinationID: dest.ID,
		Days:          c.Days,
		Budget:        float64(c.Days * c.BudgetPerDayINR),
		Interests:     interests,
		Pace:          domain.PaceModerate,
	}
}

// BuildNearbyRequest derives the nearby-expansions body from session state.
func BuildNearbyRequest(dest domain.Destination, c domain.Customization) planner.NearbyRequest {
	return planner.NearbyRequest{
		DestinationID: dest.ID,
		ExtraDays:     NearbyExtraDays,
		ExtraBudget:   float64(NearbyExtraDays * c.BudgetPerDayINR),
		RadiusKM:      NearbyRadiusKM,
	}
}
