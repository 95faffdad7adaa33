package architectures

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/JaimeStill/blueprint/internal/resolver"
)

const (
	// DefaultSessionCapacity bounds the number of tracked sessions.
	DefaultSessionCapacity = 1024
	maxSessionIDLength     = 128
)

// Sessions holds one resolver.Tracker per client session. The least
// recently used session is evicted once capacity is reached.
type Sessions struct {
	mu    sync.Mutex
	cache *lru.Cache[string, *resolver.Tracker]
}

// NewSessions creates a session store holding at most capacity sessions.
func NewSessions(capacity int) (*Sessions, error) {
	if capacity < 1 {
		capacity = DefaultSessionCapacity
	}

	cache, err := lru.New[string, *resolver.Tracker](capacity)
	if err != nil {
		return nil, fmt.Errorf("create session cache: %w", err)
	}
	return &Sessions{cache: cache}, nil
}

// Tracker returns the tracker for id, creating it on first use.
func (s *Sessions) Tracker(id string) *resolver.Tracker {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.cache.Get(id); ok {
		return t
	}
	t := resolver.NewTracker()
	s.cache.Add(id, t)
	return t
}

// Lookup returns the tracker for id without creating one.
func (s *Sessions) Lookup(id string) (*resolver.Tracker, bool) {
	return s.cache.Get(id)
}

// Len returns the number of tracked sessions.
func (s *Sessions) Len() int {
	return s.cache.Len()
}

// ValidateSessionID accepts 1-128 printable ASCII characters without spaces.
func ValidateSessionID(id string) error {
	if id == "" || len(id) > maxSessionIDLength {
		return fmt.Errorf("%w: length must be 1-%d", ErrInvalidSession, maxSessionIDLength)
	}
	for i := 0; i < len(id); i++ {
		if c := id[i]; c <= ' ' || c > '~' {
			return fmt.Errorf("%w: unexpected character at %d", ErrInvalidSession, i)
		}
	}
	return nil
}
