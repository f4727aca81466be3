package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/tripjournal/trip-wizard-backend/internal/domain"
	"github.com/tripjournal/trip-wizard-backend/internal/mapview"
)

// Trip is the single mutable session object shared by every wizard stage. It
// is the sole source of truth for the four session fields; every mutator
// replaces its field wholesale under one lock, so readers never observe a
// partially updated session. Updates are last-write-wins.
//
// The trip also owns the cancellation handle for in-flight planner fetches:
// starting a new fetch or resetting the trip cancels whatever was still
// running, so a stale completion cannot write into a session that has moved
// on to a different stage.
type Trip struct {
	id uuid.UUID

	mu            sync.RWMutex
	preferences   *domain.PreferenceSet
	destination   *domain.Destination
	customization *domain.Customization
	itinerary     *domain.Itinerary
	nearby        []domain.NearbySuggestion
	itineraryErr  string

	cancelFetch context.CancelFunc
	viewport    mapview.Viewport
}

// Snapshot is one consistent read of the whole session.
type Snapshot struct {
	Preferences   *domain.PreferenceSet
	Destination   *domain.Destination
	Customization *domain.Customization
	Itinerary     *domain.Itinerary
	Nearby        []domain.NearbySuggestion
	ItineraryErr  string
}

func NewTrip() *Trip {
	return &Trip{id: uuid.New()}
}

func (t *Trip) ID() uuid.UUID {
	return t.id
}

// SetPreferences replaces the preference set wholesale; there are no merge
// semantics. Tags are deduplicated, keeping first occurrence.
func (t *Trip) SetPreferences(p domain.PreferenceSet) {
	p.Tags = lo.Uniq(p.Tags)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.preferences = &p
}

// SetDestination replaces the selected destination; nil clears the selection
// without touching any other field. Note that selecting a different
// destination deliberately does not clear downstream customization or
// itinerary state.
func (t *Trip) SetDestination(d *domain.Destination) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if d == nil {
		t.destination = nil
		return
	}
	copied := *d
	t.destination = &copied
}

// SetCustomization replaces the customization wholesale.
func (t *Trip) SetCustomization(c domain.Customization) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.customization = &c
}

// SetItinerary records the result of an itinerary fetch, clearing any error
// from a previous attempt.
func (t *Trip) SetItinerary(it *domain.Itinerary) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.itinerary = it
	t.itineraryErr = ""
}

// SetItineraryError records a failed itinerary fetch.
func (t *Trip) SetItineraryError(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.itineraryErr = msg
}

// SetNearby records the result of a nearby-expansions fetch. The itinerary
// and nearby fields are written independently; there is no joint transaction
// across the two.
func (t *Trip) SetNearby(suggestions []domain.NearbySuggestion) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nearby = suggestions
}

// Reset clears every session field in one atomic update and cancels any
// in-flight fetch.
func (t *Trip) Reset() {
	t.mu.Lock()
	cancel := t.cancelFetch
	t.cancelFetch = nil
	t.preferences = nil
	t.destination = nil
	t.customization = nil
	t.itinerary = nil
	t.nearby = nil
	t.itineraryErr = ""
	t.mu.Unlock()

	t.viewport.Reset()
	if cancel != nil {
		cancel()
	}
}

// Viewport is the session's map viewport tracker.
func (t *Trip) Viewport() *mapview.Viewport {
	return &t.viewport
}

// BeginFetch cancels any fetch still in flight and returns a context scoped
// to the new one.
func (t *Trip) BeginFetch(parent context.Context) context.Context {
	ctx, cancel := context.WithCancel(parent)

	t.mu.Lock()
	prev := t.cancelFetch
	t.cancelFetch = cancel
	t.mu.Unlock()

	if prev != nil {
		prev()
	}
	return ctx
}

// CancelFetch aborts the in-flight fetch, if any. Called on stage exit.
func (t *Trip) CancelFetch() {
	t.mu.Lock()
	cancel := t.cancelFetch
	t.cancelFetch = nil
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (t *Trip) Preferences() *domain.PreferenceSet {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.preferences
}

func (t *Trip) Destination() *domain.Destination {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.destination
}

func (t *Trip) Customization() *domain.Customization {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.customization
}

func (t *Trip) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return Snapshot{
		Preferences:   t.preferences,
		Destination:   t.destination,
		Customization: t.customization,
		Itinerary:     t.itinerary,
		Nearby:        t.nearby,
		ItineraryErr:  t.itineraryErr,
	}
}
