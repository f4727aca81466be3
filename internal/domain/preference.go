package domain

// PreferenceSet holds the traveler's stage-one answers used to rank
// destinations. Tags are stored deduplicated; their order carries no meaning.
type PreferenceSet struct {
	Tags        []string `json:"tags"`
	BudgetLevel *string  `json:"budget_level"`
	Climate     *string  `json:"climate"`
	CrowdLevel  *string  `json:"crowd_level"`
	TopK        int      `json:"top_k"`
}

const (
	PreferenceTopKMin     = 1
	PreferenceTopKMax     = 20
	PreferenceTopKDefault = 5
)
