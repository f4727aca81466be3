package planner

import (
	"errors"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/tripjournal/trip-wizard-backend/internal/domain"
)

var ErrDestinationNotFound = errors.New("destination not found")

var paceHours = map[domain.Pace]float64{
	domain.PaceRelaxed:  6,
	domain.PaceModerate: 8,
	domain.PaceFull:     10,
}

type scoredAttraction struct {
	attraction domain.Attraction
	score      float64
}

// BuildItinerary plans a day-partitioned itinerary for the requested
// destination. Attractions are scored against the traveler's interests,
// budget and distance from the destination center, then distributed greedily
// into days bounded by the pace's daily hours. Every requested day is
// emitted even when the catalog runs out of attractions.
func BuildItinerary(destinations []domain.Destination, attractions []domain.Attraction, req ItineraryRequest) (*domain.Itinerary, error) {
	dest, ok := findDestination(destinations, req.DestinationID)
	if !ok {
		return nil, ErrDestinationNotFound
	}

	destAttractions := lo.Filter(attractions, func(a domain.Attraction, _ int) bool {
		return a.DestinationID == dest.ID
	})
	scored := scoreAttractions(destAttractions, req, dest.Latitude, dest.Longitude)
	days := distributeIntoDays(scored, req, dest.Latitude, dest.Longitude)

	return &domain.Itinerary{
		DestinationID:   dest.ID,
		DestinationName: dest.Name,
		Days:            days,
	}, nil
}

func scoreAttractions(attractions []domain.Attraction, req ItineraryRequest, centerLat, centerLng float64) []scoredAttraction {
	perDayBudget := 0.0
	if req.Days > 0 {
		perDayBudget = req.Budget / float64(req.Days)
	}

	interests := make(map[string]struct{}, len(req.Interests))
	for _, i := range req.Interests {
		interests[strings.ToLower(i)] = struct{}{}
	}

	scored := make([]scoredAttraction, 0, len(attractions))
	for _, a := range attractions {
		interestScore := 0.4
		if _, ok := interests[strings.ToLower(a.Category)]; ok {
			interestScore = 1.0
		}

		costFit := 0.8
		if perDayBudget > 0 {
			costFit = 1 - a.CostINR/perDayBudget
			if costFit < 0 {
				costFit = 0
			}
		}

		distance := haversineKM(centerLat, centerLng, a.Latitude, a.Longitude)
		distanceEfficiency := 1 - distance/50
		if distanceEfficiency < 0 {
			distanceEfficiency = 0
		}

		score := 0.5*interestScore + 0.2*costFit + 0.2*distanceEfficiency + 0.1
		scored = append(scored, scoredAttraction{attraction: a, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	return scored
}

func distributeIntoDays(scored []scoredAttraction, req ItineraryRequest, centerLat, centerLng float64) []domain.ItineraryDay {
	maxHours, ok := paceHours[req.Pace]
	if !ok {
		maxHours = paceHours[domain.PaceModerate]
	}

	remaining := make([]scoredAttraction, len(scored))
	copy(remaining, scored)

	totalHours := lo.SumBy(scored, func(s scoredAttraction) float64 {
		return s.attraction.VisitDurationHours
	})
	targetHoursPerDay := maxHours
	if req.Days > 0 {
		targetHoursPerDay = totalHours / float64(req.Days)
	}

	days := make([]domain.ItineraryDay, 0, req.Days)
	for dayNum := 1; dayNum <= req.Days; dayNum++ {
		dayHours := 0.0
		activities := []domain.ItineraryActivity{}
		lastLat, lastLng := centerLat, centerLng

		// On the last day relax the target so leftover attractions still fit.
		targetForDay := maxHours
		if dayNum < req.Days {
			targetForDay = targetHoursPerDay * 1.3
			if targetForDay > maxHours {
				targetForDay = maxHours
			}
		}

		idx := 0
		for idx < len(remaining) {
			a := remaining[idx].attraction

			if dayHours+a.VisitDurationHours > maxHours {
				idx++
				continue
			}
			if dayHours >= targetForDay && dayNum < req.Days {
				break
			}

			distance := haversineKM(lastLat, lastLng, a.Latitude, a.Longitude)
			activities = append(activities, domain.ItineraryActivity{
				AttractionID:       a.ID,
				Name:               a.Name,
				Category:           a.Category,
				EstimatedTimeHours: a.VisitDurationHours,
				EstimatedCost:      a.CostINR,
				Latitude:           a.Latitude,
				Longitude:          a.Longitude,
				DistanceFromPrevKM: &distance,
			})
			dayHours += a.VisitDurationHours
			lastLat, lastLng = a.Latitude, a.Longitude
			remaining = append(remaining[:idx], remaining[idx+1:]...)
		}

		days = append(days, domain.ItineraryDay{
			Day:        dayNum,
			Activities: activities,
			EstimatedDayCost: lo.SumBy(activities, func(act domain.ItineraryActivity) float64 {
				return act.EstimatedCost
			}),
		})
	}

	return days
}

func findDestination(destinations []domain.Destination, id int64) (domain.Destination, bool) {
	for _, d := range destinations {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Destination{}, false
}
