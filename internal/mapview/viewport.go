package mapview

import "sync"

// Viewport tracks the last rendered center per session. The revision bumps on
// every coordinate change, so a client comparing revisions recenters each
// time the destination moves, not only on first render.
type Viewport struct {
	mu       sync.Mutex
	lat, lng float64
	revision int
	centered bool
}

// Recenter records the center and returns it with the current revision.
func (v *Viewport) Recenter(lat, lng float64) Center {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.centered || lat != v.lat || lng != v.lng {
		v.lat, v.lng = lat, lng
		v.revision++
		v.centered = true
	}
	return Center{Latitude: v.lat, Longitude: v.lng, Revision: v.revision}
}

// Reset forgets the tracked center.
func (v *Viewport) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.lat, v.lng = 0, 0
	v.revision = 0
	v.centered = false
}
