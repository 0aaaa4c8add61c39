// Package store persists the canonical event log and its reference tables in
// an embedded Badger database. The event table is the single source of truth;
// every derived table can be recomputed from it at any time.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/timshannon/badgerhold/v4"
)

// ErrNotFound is returned by point lookups when no row exists.
var ErrNotFound = badgerhold.ErrNotFound

// Store owns one open database handle. Callers open it for the duration of a
// batch run and close it when done; there is exactly one writer.
type Store struct {
	db      *badgerhold.Store
	nameSeq *badger.Sequence
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	options := badgerhold.DefaultOptions
	options.Dir = path
	options.ValueDir = path
	options.Logger = nil

	db, err := badgerhold.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open database at %s: %w", path, err)
	}

	nameSeq, err := db.Badger().GetSequence([]byte("handtrack.name_observations"), 128)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("open name observation sequence: %w", err)
	}

	return &Store{db: db, nameSeq: nameSeq}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.nameSeq != nil {
		if err := s.nameSeq.Release(); err != nil {
			s.db.Close()
			return err
		}
	}
	return s.db.Close()
}

// UpsertHand records a hand the first time it is seen. Re-ingesting the same
// hand id is a no-op; hands are never mutated.
func (s *Store) UpsertHand(h Hand) error {
	err := s.db.Insert(h.ID, h)
	if errors.Is(err, badgerhold.ErrKeyExists) {
		return nil
	}
	return err
}

// ObserveName counts one sighting of a display name for a player id.
func (s *Store) ObserveName(playerID, name string) error {
	key := playerID + "/" + name

	var obs NameObservation
	err := s.db.Get(key, &obs)
	switch {
	case errors.Is(err, badgerhold.ErrNotFound):
		first, err := s.nameSeq.Next()
		if err != nil {
			return fmt.Errorf("next name observation: %w", err)
		}
		obs = NameObservation{Key: key, PlayerID: playerID, Name: name, Count: 1, First: first}
		return s.db.Insert(key, obs)
	case err != nil:
		return err
	}

	obs.Count++
	return s.db.Update(key, obs)
}

// UpsertHoleCards records a revealed two-card hand; the first write wins.
func (s *Store) UpsertHoleCards(hc HoleCards) error {
	hc.Key = hc.HandID + "/" + hc.PlayerID
	err := s.db.Insert(hc.Key, hc)
	if errors.Is(err, badgerhold.ErrKeyExists) {
		return nil
	}
	return err
}

// AppendEvents appends normalized events in order, assigning each a
// store-wide sequence number.
func (s *Store) AppendEvents(events []Event) error {
	for i := range events {
		if err := s.db.Insert(badgerhold.NextSequence(), &events[i]); err != nil {
			return fmt.Errorf("append event for hand %s: %w", events[i].HandID, err)
		}
	}
	return nil
}

// AllEvents returns the full event log in sequence order.
func (s *Store) AllEvents() ([]Event, error) {
	var events []Event
	if err := s.db.Find(&events, badgerhold.Where(badgerhold.Key).Ge(uint64(0))); err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Seq < events[j].Seq })
	return events, nil
}

// HoleCardsForPlayer returns hand id → revealed hole cards for one player.
func (s *Store) HoleCardsForPlayer(playerID string) (map[string]string, error) {
	var rows []HoleCards
	if err := s.db.Find(&rows, badgerhold.Where("PlayerID").Eq(playerID).Index("PlayerID")); err != nil {
		return nil, fmt.Errorf("load hole cards: %w", err)
	}
	cards := make(map[string]string, len(rows))
	for _, row := range rows {
		cards[row.HandID] = row.Cards
	}
	return cards, nil
}

// DisplayNames resolves the canonical display name for every known player:
// the most frequently observed name, ties broken by earliest observation.
func (s *Store) DisplayNames() (map[string]string, error) {
	var rows []NameObservation
	if err := s.db.Find(&rows, badgerhold.Where("Count").Ge(0)); err != nil {
		return nil, fmt.Errorf("load name observations: %w", err)
	}

	best := make(map[string]NameObservation)
	for _, row := range rows {
		cur, ok := best[row.PlayerID]
		if !ok || row.Count > cur.Count || (row.Count == cur.Count && row.First < cur.First) {
			best[row.PlayerID] = row
		}
	}

	names := make(map[string]string, len(best))
	for pid, obs := range best {
		names[pid] = obs.Name
	}
	return names, nil
}

// SavePriors replaces the whole profile row for a player.
func (s *Store) SavePriors(p PlayerPriors) error {
	return s.db.Upsert(p.PlayerID, p)
}

// GetPriors returns one player's profile row, or ErrNotFound.
func (s *Store) GetPriors(playerID string) (*PlayerPriors, error) {
	var p PlayerPriors
	if err := s.db.Get(playerID, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// AllPriors returns every profile row, ordered by player id.
func (s *Store) AllPriors() ([]PlayerPriors, error) {
	var rows []PlayerPriors
	if err := s.db.Find(&rows, badgerhold.Where("TotalHands").Ge(0)); err != nil {
		return nil, fmt.Errorf("load priors: %w", err)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].PlayerID < rows[j].PlayerID })
	return rows, nil
}

// ExploitTargets filters the priors table to players with at least minHands
// observed hands, most showdown-happy first.
func (s *Store) ExploitTargets(minHands int) ([]PlayerPriors, error) {
	var rows []PlayerPriors
	err := s.db.Find(&rows, badgerhold.Where("TotalHands").Ge(minHands).SortBy("WTSDPct").Reverse())
	if err != nil {
		return nil, fmt.Errorf("load exploit targets: %w", err)
	}
	return rows, nil
}

// Hands returns all hand reference rows, newest first.
func (s *Store) Hands() ([]Hand, error) {
	var rows []Hand
	if err := s.db.Find(&rows, badgerhold.Where("ID").Ne("")); err != nil {
		return nil, fmt.Errorf("load hands: %w", err)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].StartedAt.After(rows[j].StartedAt) })
	return rows, nil
}
