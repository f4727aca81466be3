package planner

import (
	"fmt"
	"math"
	"sort"

	"github.com/tripjournal/trip-wizard-backend/internal/domain"
)

// SuggestNearby lists catalog destinations within the request radius of the
// origin, each flagged with a feasibility heuristic: at least one extra day
// and an extra budget of 200 or more counts as doable.
func SuggestNearby(destinations []domain.Destination, req NearbyRequest) (*NearbyResponse, error) {
	origin, ok := findDestination(destinations, req.DestinationID)
	if !ok {
		return nil, ErrDestinationNotFound
	}

	feasible := req.ExtraDays >= 1 && req.ExtraBudget >= 200

	suggestions := []domain.NearbySuggestion{}
	for _, d := range destinations {
		if d.ID == origin.ID {
			continue
		}
		distance := haversineKM(origin.Latitude, origin.Longitude, d.Latitude, d.Longitude)
		if distance > req.RadiusKM {
			continue
		}

		notes := fmt.Sprintf("%.1f km away; doable with provided buffer", distance)
		if !feasible {
			notes = fmt.Sprintf("%.1f km away; might need more days/budget", distance)
		}

		suggestions = append(suggestions, domain.NearbySuggestion{
			DestinationID: d.ID,
			Name:          d.Name,
			Country:       d.Country,
			DistanceKM:    math.Round(distance*10) / 10,
			Feasible:      feasible,
			Notes:         notes,
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		return suggestions[i].DistanceKM < suggestions[j].DistanceKM
	})

	return &NearbyResponse{
		OriginDestinationID: origin.ID,
		Suggestions:         suggestions,
	}, nil
}
