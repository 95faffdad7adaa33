package architectures_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/JaimeStill/blueprint/internal/architectures"
	"github.com/JaimeStill/blueprint/internal/resolver"
)

func TestSessionsTrackerReuse(t *testing.T) {
	s, err := architectures.NewSessions(4)
	if err != nil {
		t.Fatal(err)
	}

	a := s.Tracker("client-a")
	if s.Tracker("client-a") != a {
		t.Error("same id returned a different tracker")
	}
	if _, ok := s.Lookup("client-b"); ok {
		t.Error("Lookup created a session")
	}
	if s.Len() != 1 {
		t.Errorf("Len: got %d, want 1", s.Len())
	}
}

func TestSessionsEviction(t *testing.T) {
	s, _ := architectures.NewSessions(2)

	first := s.Tracker("one")
	first.Commit(first.Begin(), resolver.Outcome{Source: resolver.SourceFallback})
	s.Tracker("two")
	s.Tracker("three")

	if _, ok := s.Lookup("one"); ok {
		t.Error("least recently used session not evicted")
	}
	if s.Len() != 2 {
		t.Errorf("Len: got %d, want 2", s.Len())
	}
}

func TestNewSessionsDefaultCapacity(t *testing.T) {
	s, err := architectures.NewSessions(0)
	if err != nil {
		t.Fatalf("NewSessions: %v", err)
	}
	s.Tracker("x")
	if s.Len() != 1 {
		t.Errorf("Len: got %d", s.Len())
	}
}

func TestValidateSessionID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"abc-123", true},
		{"0f8c1e2a-9d3b-4c5e-8f7a-6b5c4d3e2f1a", true},
		{strings.Repeat("a", 128), true},
		{"", false},
		{strings.Repeat("a", 129), false},
		{"has space", false},
		{"tab\there", false},
		{"ümlaut", false},
	}

	for _, tt := range tests {
		err := architectures.ValidateSessionID(tt.id)
		if tt.valid && err != nil {
			t.Errorf("ValidateSessionID(%q): unexpected %v", tt.id, err)
		}
		if !tt.valid && !errors.Is(err, architectures.ErrInvalidSession) {
			t.Errorf("ValidateSessionID(%q): got %v, want ErrInvalidSession", tt.id, err)
		}
	}
}
