package domain

// Destination is an entry in the travel catalog. Instances are immutable once
// loaded; the trip session copies the selected destination's data rather than
// re-fetching it.
type Destination struct {
	ID              int64    `db:"id" json:"id"`
	Name            string   `db:"name" json:"name"`
	Country         string   `db:"country" json:"country"`
	State           string   `db:"state" json:"state,omitempty"`
	Region          string   `db:"region" json:"region,omitempty"`
	Tags            []string `json:"tags"`
	BudgetLevel     string   `db:"budget_level" json:"budget_level"`
	AvgDailyCostINR int      `db:"avg_daily_cost_inr" json:"avg_daily_cost_inr,omitempty"`
	Climate         string   `db:"climate" json:"climate"`
	CrowdLevel      string   `db:"crowd_level" json:"crowd_level"`
	BestSeason      string   `db:"best_season" json:"best_season,omitempty"`
	TravelTypes     []string `json:"travel_type,omitempty"`
	Latitude        float64  `db:"latitude" json:"latitude"`
	Longitude       float64  `db:"longitude" json:"longitude"`
}
