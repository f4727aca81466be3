package domain

// Attraction is a point of interest belonging to one destination.
type Attraction struct {
	ID                 int64   `db:"id" json:"id"`
	DestinationID      int64   `db:"destination_id" json:"destination_id"`
	Name               string  `db:"name" json:"name"`
	Category           string  `db:"category" json:"category"`
	CostINR            float64 `db:"cost_inr" json:"cost"`
	Latitude           float64 `db:"latitude" json:"latitude"`
	Longitude          float64 `db:"longitude" json:"longitude"`
	VisitDurationHours float64 `db:"visit_duration_hours" json:"visit_duration"`
}
