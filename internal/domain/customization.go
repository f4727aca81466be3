package domain

// Pace controls how many daily hours the planner fills with activities.
type Pace string

const (
	PaceRelaxed  Pace = "relaxed"
	PaceModerate Pace = "moderate"
	PaceFull     Pace = "full"
)

// Customization holds the traveler's stage-three answers: trip length, daily
// budget and interest overrides for itinerary generation. Interests may
// diverge from the PreferenceSet tags chosen in stage one.
type Customization struct {
	Days            int      `json:"days"`
	BudgetPerDayINR int      `json:"budget_per_day_inr"`
	Pace            Pace     `json:"pace"`
	Interests       []string `json:"interests"`
}

const (
	TripDaysMin        = 2
	TripDaysMax        = 14
	BudgetPerDayINRMin = 5000
	BudgetPerDayINRMax = 25000
)

// ValidPace reports whether p is one of the three known pace values.
func ValidPace(p Pace) bool {
	switch p {
	case PaceRelaxed, PaceModerate, PaceFull:
		return true
	}
	return false
}
