package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/arjunmenon/klondikesolve/internal/fingerprint"
	"github.com/arjunmenon/klondikesolve/internal/game"
	"github.com/arjunmenon/klondikesolve/internal/solver"
)

const keyStats = "stats"

// DealKey identifies a specific deal under a specific rule set: the
// fingerprint of the freshly dealt (pre-move) game, plus the two rules
// that change what's solvable from it.
type DealKey struct {
	Deal         fingerprint.Key
	DrawSetting  int
	RecycleLimit int
}

func dealRecordKey(k DealKey) []byte {
	return []byte(fmt.Sprintf("deal:%x:%x:%x:%d:%d", k.Deal[0], k.Deal[1], k.Deal[2], k.DrawSetting, k.RecycleLimit))
}

// SolvedRecord is the cached outcome of solving a deal once.
type SolvedRecord struct {
	Code            solver.Code `json:"code"`
	Solution        []game.Move `json:"solution"`
	StateCount      int         `json:"state_count"`
	MoveTreeSize    int         `json:"move_tree_size"`
	FinalFringeSize int         `json:"final_fringe_size"`
	SolvedAt        time.Time   `json:"solved_at"`
}

// RunStats aggregates outcomes across every solve this store has recorded.
type RunStats struct {
	TotalSolves         int `json:"total_solves"`
	TotalSolvedMinimal  int `json:"total_solved_minimal"`
	TotalSolved         int `json:"total_solved"`
	TotalImpossible     int `json:"total_impossible"`
	TotalGaveUp         int `json:"total_gave_up"`
	TotalMemoryExceeded int `json:"total_memory_exceeded"`
	TotalStatesExplored int `json:"total_states_explored"`
}

// Store wraps a BadgerDB database holding solved-deal records and
// aggregate run statistics.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the store's database at the
// platform-specific data directory.
func Open() (*Store, error) {
	dir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dir)
}

// OpenAt opens the store's database at an explicit directory, primarily
// for tests.
func OpenAt(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Lookup returns a previously recorded solve for key, if any.
func (s *Store) Lookup(key DealKey) (SolvedRecord, bool, error) {
	var rec SolvedRecord
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(dealRecordKey(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	return rec, found, err
}

// Record saves res as the solve outcome for key and folds it into the
// running aggregate statistics.
func (s *Store) Record(key DealKey, res solver.Result) error {
	rec := SolvedRecord{
		Code:            res.Code,
		Solution:        res.Solution,
		StateCount:      res.StateCount,
		MoveTreeSize:    res.MoveTreeSize,
		FinalFringeSize: res.FinalFringeSize,
		SolvedAt:        time.Now(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	stats, err := s.LoadStats()
	if err != nil {
		return err
	}
	stats.TotalSolves++
	stats.TotalStatesExplored += res.StateCount
	switch res.Code {
	case solver.SolvedMinimal:
		stats.TotalSolvedMinimal++
	case solver.Solved:
		stats.TotalSolved++
	case solver.Impossible:
		stats.TotalImpossible++
	case solver.GaveUp:
		stats.TotalGaveUp++
	case solver.MemoryExceeded:
		stats.TotalMemoryExceeded++
	}
	statsData, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(dealRecordKey(key), data); err != nil {
			return err
		}
		return txn.Set([]byte(keyStats), statsData)
	})
}

// LoadStats returns the aggregate statistics recorded so far, or a zero
// RunStats if none have been recorded yet.
func (s *Store) LoadStats() (RunStats, error) {
	var stats RunStats
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &stats)
		})
	})
	return stats, err
}
