package resolver

import "sync"

// Tracker sequences overlapping resolutions for one client so a superseded
// request can never replace the outcome of a later one.
type Tracker struct {
	mu        sync.Mutex
	issued    uint64
	committed uint64
	current   *Outcome
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Begin issues the ticket for a new request, superseding all earlier ones.
func (t *Tracker) Begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.issued++
	return t.issued
}

// Commit stores outcome if ticket is still the latest issued. It reports
// whether the outcome was kept.
func (t *Tracker) Commit(ticket uint64, outcome Outcome) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if ticket != t.issued || ticket <= t.committed {
		return false
	}

	t.committed = ticket
	t.current = &outcome
	return true
}

// Current returns the last committed outcome.
func (t *Tracker) Current() (Outcome, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil {
		return Outcome{}, false
	}
	return *t.current, true
}
