package services

import "sync"

// FilterState is the remembered filter selection of one view (a key/value
// bag: search text, selected class, day, and so on).
type FilterState map[string]string

// FilterRegistry keeps per-view filter state, creating a view's state lazily
// on first access. It is owned by the application wiring and injected into
// the handlers that need it; independent instances never share state, so
// tests can build their own.
type FilterRegistry struct {
	mu    sync.RWMutex
	views map[string]FilterState
}

func NewFilterRegistry() *FilterRegistry {
	return &FilterRegistry{views: make(map[string]FilterState)}
}

// Get returns a copy of the view's current filter state, creating the empty
// state on first access.
func (r *FilterRegistry) Get(view string) FilterState {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.views[view]
	if !ok {
		state = make(FilterState)
		r.views[view] = state
	}

	out := make(FilterState, len(state))
	for k, v := range state {
		out[k] = v
	}
	return out
}

// Set stores one filter value for a view. Empty values clear the key.
func (r *FilterRegistry) Set(view, key, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.views[view]
	if !ok {
		state = make(FilterState)
		r.views[view] = state
	}
	if value == "" {
		delete(state, key)
		return
	}
	state[key] = value
}

// Reset clears one view's filters.
func (r *FilterRegistry) Reset(view string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.views, view)
}

// ResetAll clears every view.
func (r *FilterRegistry) ResetAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = make(map[string]FilterState)
}
