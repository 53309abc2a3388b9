package store

import (
	"testing"

	"github.com/arjunmenon/klondikesolve/internal/fingerprint"
	"github.com/arjunmenon/klondikesolve/internal/game"
	"github.com/arjunmenon/klondikesolve/internal/solver"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLookupMissOnEmptyStore(t *testing.T) {
	s := openTestStore(t)
	var key DealKey
	key.Deal[0] = 1
	if _, found, err := s.Lookup(key); err != nil {
		t.Fatalf("Lookup: %v", err)
	} else if found {
		t.Error("expected a miss on an empty store")
	}
}

func TestRecordThenLookupRoundTrips(t *testing.T) {
	s := openTestStore(t)
	key := DealKey{DrawSetting: 1, RecycleLimit: -1}
	key.Deal = fingerprint.Key{1, 2, 3}

	res := solver.Result{
		Code:       solver.SolvedMinimal,
		Solution:   []game.Move{game.NewTalon(game.Waste, 1, 1, false)},
		StateCount: 42,
	}
	if err := s.Record(key, res); err != nil {
		t.Fatalf("Record: %v", err)
	}

	rec, found, err := s.Lookup(key)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !found {
		t.Fatal("expected a hit after Record")
	}
	if rec.Code != solver.SolvedMinimal {
		t.Errorf("rec.Code = %s, want %s", rec.Code, solver.SolvedMinimal)
	}
	if len(rec.Solution) != 1 {
		t.Errorf("len(rec.Solution) = %d, want 1", len(rec.Solution))
	}
	if rec.StateCount != 42 {
		t.Errorf("rec.StateCount = %d, want 42", rec.StateCount)
	}
}

func TestRecordUpdatesAggregateStats(t *testing.T) {
	s := openTestStore(t)

	key1 := DealKey{DrawSetting: 1, RecycleLimit: -1, Deal: fingerprint.Key{1}}
	key2 := DealKey{DrawSetting: 3, RecycleLimit: 2, Deal: fingerprint.Key{2}}

	if err := s.Record(key1, solver.Result{Code: solver.SolvedMinimal, StateCount: 10}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Record(key2, solver.Result{Code: solver.Impossible, StateCount: 5}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if stats.TotalSolves != 2 {
		t.Errorf("TotalSolves = %d, want 2", stats.TotalSolves)
	}
	if stats.TotalSolvedMinimal != 1 {
		t.Errorf("TotalSolvedMinimal = %d, want 1", stats.TotalSolvedMinimal)
	}
	if stats.TotalImpossible != 1 {
		t.Errorf("TotalImpossible = %d, want 1", stats.TotalImpossible)
	}
	if stats.TotalStatesExplored != 15 {
		t.Errorf("TotalStatesExplored = %d, want 15", stats.TotalStatesExplored)
	}
}
