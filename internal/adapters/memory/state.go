// Package memory holds the owned in-memory state of one game session.
// Stores are safe for concurrent use so the game loop's ticker and
// autosave can share a session.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/example/guildmaster/internal/core/guild"
	"github.com/example/guildmaster/internal/ports/secondary"
)

// StateStore owns the guild state and is the session's ledger.
type StateStore struct {
	mu    sync.RWMutex
	state guild.State
}

// NewStateStore creates a store holding initial.
func NewStateStore(initial guild.State) *StateStore {
	return &StateStore{state: initial}
}

// Get returns a copy of the current state.
func (s *StateStore) Get(ctx context.Context) (guild.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, nil
}

// Put replaces the current state.
func (s *StateStore) Put(ctx context.Context, state guild.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	return nil
}

// Update applies fn under the write lock and returns the new state.
func (s *StateStore) Update(ctx context.Context, fn func(*guild.State)) (guild.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
	return s.state, nil
}

// Gold returns the current purse.
func (s *StateStore) Gold(ctx context.Context) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Gold, nil
}

// Spend debits cost, or fails without touching the purse.
func (s *StateStore) Spend(ctx context.Context, cost int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.Debit(cost) {
		return fmt.Errorf("%w: need %d, have %.0f", secondary.ErrInsufficientFunds, cost, s.state.Gold)
	}
	return nil
}

// Credit adds earned gold.
func (s *StateStore) Credit(ctx context.Context, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Credit(amount)
	return nil
}

var (
	_ secondary.Ledger          = (*StateStore)(nil)
	_ secondary.StateRepository = (*StateStore)(nil)
)
