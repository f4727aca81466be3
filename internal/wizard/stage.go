package wizard

import (
	"github.com/tripjournal/trip-wizard-backend/internal/session"
)

// Stage is one of the four sequential wizard steps.
type Stage string

const (
	StagePreferences     Stage = "preferences"
	StageRecommendations Stage = "recommendations"
	StageCustomize       Stage = "customize"
	StageItinerary       Stage = "itinerary"
)

// Path is the client-side route for the stage.
func (s Stage) Path() string {
	return "/" + string(s)
}

// prerequisite pairs a session predicate with the stage to fall back to when
// the predicate fails.
type prerequisite struct {
	met      func(session.Snapshot) bool
	fallback Stage
}

var (
	hasPreferences   = func(s session.Snapshot) bool { return s.Preferences != nil }
	hasDestination   = func(s session.Snapshot) bool { return s.Destination != nil }
	hasCustomization = func(s session.Snapshot) bool { return s.Customization != nil }
)

// stagePrerequisites is the transition table. Prerequisites are listed
// earliest stage first and evaluated in order; the first unmet one decides
// the redirect, so a completely empty session always lands on preferences.
var stagePrerequisites = map[Stage][]prerequisite{
	StagePreferences: nil,
	StageRecommendations: {
		{met: hasPreferences, fallback: StagePreferences},
	},
	StageCustomize: {
		{met: hasPreferences, fallback: StagePreferences},
		{met: hasDestination, fallback: StageRecommendations},
	},
	StageItinerary: {
		{met: hasPreferences, fallback: StagePreferences},
		{met: hasDestination, fallback: StageRecommendations},
		{met: hasCustomization, fallback: StageCustomize},
	},
}

// Check verifies the stage's prerequisites against the session snapshot. It
// returns ok when the stage may render; otherwise it names the earliest stage
// the traveler must return to.
func Check(stage Stage, snap session.Snapshot) (redirect Stage, ok bool) {
	for _, p := range stagePrerequisites[stage] {
		if !p.met(snap) {
			return p.fallback, false
		}
	}
	return "", true
}

// Current reports the furthest stage the session is allowed to render. The
// prefix chain is walked in order so a later field filled ahead of an earlier
// one (a seeded default customization, say) never skips the chain forward.
func Current(snap session.Snapshot) Stage {
	switch {
	case snap.Preferences == nil:
		return StagePreferences
	case snap.Destination == nil:
		return StageRecommendations
	case snap.Customization == nil:
		return StageCustomize
	default:
		return StageItinerary
	}
}
