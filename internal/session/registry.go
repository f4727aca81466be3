package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Registry hands out trip sessions keyed by id. Sessions live in memory only
// and expire after the configured idle TTL; an unknown or expired id simply
// yields a fresh session, which matches losing wizard state on reload.
type Registry struct {
	sessions *cache.Cache
	ttl      time.Duration
}

func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Registry{
		sessions: cache.New(ttl, 10*time.Minute),
		ttl:      ttl,
	}
}

// Resolve returns the trip for the given id, or a freshly created one when
// the id is empty, malformed or expired. Resolving an existing trip renews
// its TTL.
func (r *Registry) Resolve(id string) *Trip {
	if id != "" {
		if _, err := uuid.Parse(id); err == nil {
			if v, ok := r.sessions.Get(id); ok {
				trip := v.(*Trip)
				r.sessions.Set(id, trip, r.ttl)
				return trip
			}
		}
	}

	trip := NewTrip()
	r.sessions.Set(trip.ID().String(), trip, r.ttl)
	return trip
}

// Lookup returns the trip for the given id without creating one.
func (r *Registry) Lookup(id string) (*Trip, bool) {
	v, ok := r.sessions.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*Trip), true
}
