package domain

// ItineraryActivity is one scheduled stop within an itinerary day.
type ItineraryActivity struct {
	AttractionID       int64    `json:"attraction_id"`
	Name               string   `json:"name"`
	Category           string   `json:"category"`
	EstimatedTimeHours float64  `json:"estimated_time_hours"`
	EstimatedCost      float64  `json:"estimated_cost"`
	Latitude           float64  `json:"latitude"`
	Longitude          float64  `json:"longitude"`
	DistanceFromPrevKM *float64 `json:"distance_from_prev_km,omitempty"`
}

// ItineraryDay groups the activities planned for one day. Day indices are
// 1-based.
type ItineraryDay struct {
	Day              int                 `json:"day"`
	Activities       []ItineraryActivity `json:"activities"`
	EstimatedDayCost float64             `json:"estimated_day_cost"`
}

// Itinerary is a day-partitioned activity plan for a single destination.
type Itinerary struct {
	DestinationID   int64          `json:"destination_id"`
	DestinationName string         `json:"destination_name"`
	Days            []ItineraryDay `json:"days"`
}
