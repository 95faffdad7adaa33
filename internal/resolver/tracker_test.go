package resolver_test

import (
	"sync"
	"testing"

	"github.com/JaimeStill/blueprint/internal/resolver"
)

func TestTrackerEmpty(t *testing.T) {
	tr := resolver.NewTracker()
	if _, ok := tr.Current(); ok {
		t.Error("Current() ok on empty tracker")
	}
}

func TestTrackerLatestWins(t *testing.T) {
	tr := resolver.NewTracker()

	first := tr.Begin()
	second := tr.Begin()

	if tr.Commit(first, resolver.Outcome{Source: resolver.SourceRemote}) {
		t.Error("superseded ticket committed")
	}
	if _, ok := tr.Current(); ok {
		t.Error("Current() set by superseded ticket")
	}

	if !tr.Commit(second, resolver.Outcome{Source: resolver.SourceFallback}) {
		t.Error("latest ticket rejected")
	}
	if tr.Commit(second, resolver.Outcome{Source: resolver.SourceRemote}) {
		t.Error("ticket committed twice")
	}

	got, ok := tr.Current()
	if !ok || got.Source != resolver.SourceFallback {
		t.Errorf("Current() = %+v, %v", got, ok)
	}
}

func TestTrackerOutOfOrderCompletion(t *testing.T) {
	tr := resolver.NewTracker()

	old := tr.Begin()
	latest := tr.Begin()

	if !tr.Commit(latest, resolver.Outcome{Reason: "latest"}) {
		t.Fatal("latest ticket rejected")
	}
	if tr.Commit(old, resolver.Outcome{Reason: "stale"}) {
		t.Error("stale ticket overwrote a later outcome")
	}

	got, _ := tr.Current()
	if got.Reason != "latest" {
		t.Errorf("Current().Reason = %q, want latest", got.Reason)
	}
}

func TestTrackerConcurrent(t *testing.T) {
	tr := resolver.NewTracker()

	var wg sync.WaitGroup
	tickets := make(chan uint64, 100)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tickets <- tr.Begin()
		}()
	}
	wg.Wait()
	close(tickets)

	seen := make(map[uint64]bool)
	var highest uint64
	for tk := range tickets {
		if seen[tk] {
			t.Fatalf("duplicate ticket %d", tk)
		}
		seen[tk] = true
		if tk > highest {
			highest = tk
		}
	}

	if !tr.Commit(highest, resolver.Outcome{}) {
		t.Error("highest ticket rejected")
	}
}
