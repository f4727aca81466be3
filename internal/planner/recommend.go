package planner

import (
	"math"
	"sort"
	"strings"

	"github.com/tripjournal/trip-wizard-backend/internal/domain"
)

var (
	budgetLevels = []string{"budget", "mid", "premium"}
	climates     = []string{"cold", "moderate", "warm"}
	crowdLevels  = []string{"low", "medium", "high"}
	regions      = []string{"North", "South", "East", "West", "Northeast"}
)

// RankDestinations orders the catalog by content-based similarity to the
// preference set and cuts the list at TopK. Destinations and preferences are
// encoded into the same feature space (tag vocabulary plus budget, climate,
// crowd and region one-hots) and scored with cosine similarity.
func RankDestinations(destinations []domain.Destination, prefs domain.PreferenceSet) []domain.Destination {
	if len(destinations) == 0 {
		return nil
	}

	tagIndex := buildTagIndex(destinations)
	prefVec := encodePreferences(prefs, tagIndex)

	type scored struct {
		dest  domain.Destination
		score float64
	}
	ranked := make([]scored, 0, len(destinations))
	for _, d := range destinations {
		ranked = append(ranked, scored{dest: d, score: cosineSimilarity(prefVec, encodeDestination(d, tagIndex))})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	topK := prefs.TopK
	if topK <= 0 {
		topK = domain.PreferenceTopKDefault
	}
	if topK > len(ranked) {
		topK = len(ranked)
	}

	out := make([]domain.Destination, 0, topK)
	for _, r := range ranked[:topK] {
		out = append(out, r.dest)
	}
	return out
}

func buildTagIndex(destinations []domain.Destination) map[string]int {
	seen := map[string]struct{}{}
	for _, d := range destinations {
		for _, t := range d.Tags {
			seen[strings.ToLower(t)] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)

	index := make(map[string]int, len(tags))
	for i, t := range tags {
		index[t] = i
	}
	return index
}

func encodeDestination(d domain.Destination, tagIndex map[string]int) []float64 {
	vec := make([]float64, 0, len(tagIndex)+len(budgetLevels)+len(climates)+len(crowdLevels)+len(regions))

	tagVec := make([]float64, len(tagIndex))
	for _, t := range d.Tags {
		if idx, ok := tagIndex[strings.ToLower(t)]; ok {
			tagVec[idx] = 1
		}
	}
	vec = append(vec, tagVec...)
	vec = append(vec, oneHot(d.BudgetLevel, budgetLevels)...)
	vec = append(vec, oneHot(d.Climate, climates)...)
	vec = append(vec, oneHot(d.CrowdLevel, crowdLevels)...)
	vec = append(vec, oneHot(d.Region, regions)...)
	return vec
}

func encodePreferences(prefs domain.PreferenceSet, tagIndex map[string]int) []float64 {
	vec := make([]float64, 0, len(tagIndex)+len(budgetLevels)+len(climates)+len(crowdLevels)+len(regions))

	tagVec := make([]float64, len(tagIndex))
	for _, t := range prefs.Tags {
		if idx, ok := tagIndex[strings.ToLower(t)]; ok {
			tagVec[idx] = 1
		}
	}
	vec = append(vec, tagVec...)
	vec = append(vec, oneHot(normalizeBudgetLevel(prefs.BudgetLevel), budgetLevels)...)
	vec = append(vec, oneHot(deref(prefs.Climate), climates)...)
	vec = append(vec, oneHot(deref(prefs.CrowdLevel), crowdLevels)...)
	// No explicit region preference in the wizard; stays neutral.
	vec = append(vec, make([]float64, len(regions))...)
	return vec
}

// normalizeBudgetLevel maps the historic level names the UI still sends onto
// the catalog's tiers.
func normalizeBudgetLevel(level *string) string {
	if level == nil {
		return ""
	}
	switch strings.ToLower(*level) {
	case "low", "budget":
		return "budget"
	case "mid", "medium":
		return "mid"
	case "high", "premium":
		return "premium"
	default:
		return strings.ToLower(*level)
	}
}

// oneHot lowercases the value before matching it against the vocabulary.
// The region vocabulary is capitalized, so region bits never light up and
// regions stay out of the similarity score.
func oneHot(value string, allowed []string) []float64 {
	vec := make([]float64, len(allowed))
	if value == "" {
		return vec
	}
	lowered := strings.ToLower(value)
	for i, a := range allowed {
		if lowered == a {
			vec[i] = 1
			break
		}
	}
	return vec
}

func cosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
