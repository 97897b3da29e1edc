package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/example/guildmaster/internal/core/adventurer"
	"github.com/example/guildmaster/internal/ports/secondary"
)

// Roster keeps the recruitment pool and the hired roster. Both lists are
// ordered; every adventurer is in exactly one of them.
type Roster struct {
	mu     sync.RWMutex
	roster []adventurer.Adventurer
	pool   []adventurer.Adventurer
}

// NewRoster creates a roster store.
func NewRoster(roster, pool []adventurer.Adventurer) *Roster {
	return &Roster{
		roster: slices.Clone(roster),
		pool:   slices.Clone(pool),
	}
}

// ListRecruits returns the pool.
func (r *Roster) ListRecruits(ctx context.Context) ([]adventurer.Adventurer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.pool), nil
}

// ListRoster returns hired adventurers.
func (r *Roster) ListRoster(ctx context.Context) ([]adventurer.Adventurer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.roster), nil
}

// GetByID looks in the roster, then the pool.
func (r *Roster) GetByID(ctx context.Context, id string) (adventurer.Adventurer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := indexOf(r.roster, id); i >= 0 {
		return r.roster[i], nil
	}
	if i := indexOf(r.pool, id); i >= 0 {
		return r.pool[i], nil
	}
	return adventurer.Adventurer{}, fmt.Errorf("adventurer %s: %w", id, secondary.ErrNotFound)
}

// Update stores a modified adventurer in whichever list holds it.
func (r *Roster) Update(ctx context.Context, a adventurer.Adventurer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := indexOf(r.roster, a.ID); i >= 0 {
		r.roster[i] = a
		return nil
	}
	if i := indexOf(r.pool, a.ID); i >= 0 {
		r.pool[i] = a
		return nil
	}
	return fmt.Errorf("adventurer %s: %w", a.ID, secondary.ErrNotFound)
}

// MoveToRoster removes a from the pool and appends it to the roster.
func (r *Roster) MoveToRoster(ctx context.Context, a adventurer.Adventurer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.pool, a.ID)
	if i < 0 {
		return fmt.Errorf("recruit %s: %w", a.ID, secondary.ErrNotFound)
	}
	r.pool = slices.Delete(r.pool, i, i+1)
	r.roster = append(r.roster, a)
	return nil
}

// AddRecruit appends a to the pool.
func (r *Roster) AddRecruit(ctx context.Context, a adventurer.Adventurer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if indexOf(r.pool, a.ID) >= 0 || indexOf(r.roster, a.ID) >= 0 {
		return fmt.Errorf("adventurer %s already exists", a.ID)
	}
	r.pool = append(r.pool, a)
	return nil
}

// ReplaceAll swaps in a whole roster and pool.
func (r *Roster) ReplaceAll(ctx context.Context, roster, pool []adventurer.Adventurer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roster = slices.Clone(roster)
	r.pool = slices.Clone(pool)
	return nil
}

func indexOf(list []adventurer.Adventurer, id string) int {
	return slices.IndexFunc(list, func(a adventurer.Adventurer) bool { return a.ID == id })
}

var _ secondary.AdventurerRepository = (*Roster)(nil)
