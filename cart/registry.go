package cart

import (
	"sync"
	"time"
)

const defaultSessionTTL = 2 * time.Hour

type session struct {
	state      State
	lastAccess time.Time
}

// Registry holds one cart per shopper session. Every handler goroutine goes
// through the mutex; the state inside a session only ever changes through
// Reduce, so the cart semantics stay those of the pure reducer.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*session
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

func NewRegistry() *Registry {
	r := &Registry{
		sessions: make(map[string]*session),
		ttl:      defaultSessionTTL,
		stop:     make(chan struct{}),
	}
	go r.sweep()
	return r
}

// Dispatch applies an action to the session's cart, creating the session on
// first use, and returns the resulting state.
func (r *Registry) Dispatch(sessionID string, action Action) State {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[sessionID]
	if !ok {
		entry = &session{}
		r.sessions[sessionID] = entry
	}
	entry.state = Reduce(entry.state, action)
	entry.lastAccess = time.Now()
	return entry.state
}

// Get returns the session's cart without extending its lifetime. A missing
// session reads as an empty cart.
func (r *Registry) Get(sessionID string) State {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if entry, ok := r.sessions[sessionID]; ok {
		return entry.state
	}
	return State{}
}

// Drop removes the session entirely, used after a successful checkout.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}

// Close stops the background sweeper.
func (r *Registry) Close() {
	r.stopOnce.Do(func() { close(r.stop) })
}

// sweep evicts carts that have been idle longer than the TTL, mirroring the
// original behaviour of carts not outliving a browser session.
func (r *Registry) sweep() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-r.ttl)
			r.mu.Lock()
			for id, entry := range r.sessions {
				if entry.lastAccess.Before(cutoff) {
					delete(r.sessions, id)
				}
			}
			r.mu.Unlock()
		case <-r.stop:
			return
		}
	}
}
