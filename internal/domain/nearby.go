package domain

// NearbySuggestion is an expansion candidate within reach of the trip's main
// destination.
type NearbySuggestion struct {
	DestinationID int64   `json:"destination_id"`
	Name          string  `json:"name"`
	Country       string  `json:"country"`
	DistanceKM    float64 `json:"distance_km"`
	Feasible      bool    `json:"feasible"`
	Notes         string  `json:"notes"`
}
