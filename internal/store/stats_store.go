package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/abhisek/mathcards/internal/stats"
)

// Storage keys.
const (
	StatsKey    = "mathcards_stats"
	LanguageKey = "mathcards_language"
)

// State is the persisted snapshot of session history.
type State struct {
	Sessions []stats.Record `json:"sessions"`
}

// StatsStore owns the ordered session history and writes every change
// through to a KV.
type StatsStore struct {
	kv KV

	mu    sync.Mutex
	state State
}

// NewStatsStore returns a store with an empty history. Call Load to read
// the persisted one.
func NewStatsStore(kv KV) *StatsStore {
	return &StatsStore{kv: kv, state: State{Sessions: []stats.Record{}}}
}

// Load reads the persisted history. Missing, unreadable or malformed data
// yields an empty history; Load never fails. After a successful read the
// resulting state is written back so that storage always holds a
// well-formed document. A failed read leaves storage untouched.
func (s *StatsStore) Load(ctx context.Context) State {
	state := State{Sessions: []stats.Record{}}

	raw, ok, err := s.kv.Get(ctx, StatsKey)
	if err != nil {
		log.Printf("store: read stats: %v", err)
		s.mu.Lock()
		s.state = state
		s.mu.Unlock()
		return State{Sessions: []stats.Record{}}
	}
	switch {
	case ok:
		if sessions, err := decodeSessions([]byte(raw)); err != nil {
			log.Printf("store: discarding stored stats: %v", err)
		} else {
			state.Sessions = sessions
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	if err := s.persistLocked(ctx); err != nil {
		log.Printf("store: write stats: %v", err)
	}
	return State{Sessions: cloneSessions(state.Sessions)}
}

// Append adds a completed session to the end of the history.
func (s *StatsStore) Append(ctx context.Context, r stats.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Sessions = append(s.state.Sessions, r)
	return s.persistLocked(ctx)
}

// Replace substitutes the whole history. A nil slice is rejected with
// ErrInvalidImportShape and nothing changes.
func (s *StatsStore) Replace(ctx context.Context, sessions []stats.Record) error {
	if sessions == nil {
		return ErrInvalidImportShape
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{Sessions: cloneSessions(sessions)}
	return s.persistLocked(ctx)
}

// Import replaces the history with the sessions in an exported document.
// Documents that are not valid JSON or lack a sessions array are rejected
// with an error wrapping ErrInvalidImportShape.
func (s *StatsStore) Import(ctx context.Context, data []byte) error {
	if err := validateSnapshot(data); err != nil {
		return err
	}
	sessions, err := decodeSessions(data)
	if err != nil {
		return err
	}
	return s.Replace(ctx, sessions)
}

// Export serialises the history as indented JSON, the same document
// Import accepts.
func (s *StatsStore) Export() ([]byte, error) {
	state := State{Sessions: s.Sessions()}
	out, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode stats: %w", err)
	}
	return out, nil
}

// Sessions returns a copy of the history, oldest first.
func (s *StatsStore) Sessions() []stats.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSessions(s.state.Sessions)
}

// Summary aggregates the current history.
func (s *StatsStore) Summary() stats.Summary {
	return stats.Aggregate(s.Sessions())
}

func (s *StatsStore) persistLocked(ctx context.Context) error {
	out, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	if err := s.kv.Set(ctx, StatsKey, string(out)); err != nil {
		return fmt.Errorf("persist stats: %w", err)
	}
	return nil
}

// decodeSessions extracts the sessions array from a snapshot document.
func decodeSessions(data []byte) ([]stats.Record, error) {
	var doc struct {
		Sessions json.RawMessage `json:"sessions"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImportShape, err)
	}
	if t := bytes.TrimSpace(doc.Sessions); len(t) == 0 || t[0] != '[' {
		return nil, ErrInvalidImportShape
	}

	sessions := []stats.Record{}
	if err := json.Unmarshal(doc.Sessions, &sessions); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImportShape, err)
	}
	return sessions, nil
}

func cloneSessions(in []stats.Record) []stats.Record {
	out := make([]stats.Record, len(in))
	copy(out, in)
	return out
}
