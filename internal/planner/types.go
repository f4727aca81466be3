package planner

import (
	"github.com/tripjournal/trip-wizard-backend/internal/domain"
)

// ItineraryRequest is the body of POST /generate-itinerary. The recommend
// endpoint takes a domain.PreferenceSet verbatim and needs no wrapper here.
type ItineraryRequest struct {
	DestinationID int64       `json:"destination_id"`
	Days          int         `json:"days"`
	Budget        float64     `json:"budget"`
	Interests     []string    `json:"interests"`
	Pace          domain.Pace `json:"pace"`
}

// NearbyRequest is the body of POST /nearby-expansions.
type NearbyRequest struct {
	DestinationID int64   `json:"destination_id"`
	ExtraDays     int     `json:"extra_days"`
	ExtraBudget   float64 `json:"extra_budget"`
	RadiusKM      float64 `json:"radius_km"`
}

// NearbyResponse wraps the suggestion list as the planning service returns it.
type NearbyResponse struct {
	OriginDestinationID int64                     `json:"origin_destination_id,omitempty"`
	Suggestions         []domain.NearbySuggestion `json:"suggestions"`
}
