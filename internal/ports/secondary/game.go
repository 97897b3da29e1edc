package secondary

import (
	"context"
	"errors"

	"github.com/example/guildmaster/internal/core/adventurer"
	"github.com/example/guildmaster/internal/core/guild"
	"github.com/example/guildmaster/internal/core/quest"
)

// ErrNotFound is returned by repositories when a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrInsufficientFunds is returned by Ledger.Spend when the purse is short.
var ErrInsufficientFunds = errors.New("insufficient gold")

// Ledger is the only capability that moves gold.
type Ledger interface {
	// Gold returns the current purse.
	Gold(ctx context.Context) (float64, error)

	// Spend debits cost. It fails with ErrInsufficientFunds and changes
	// nothing when the purse is short.
	Spend(ctx context.Context, cost int64) error

	// Credit adds earned gold to the purse, totalEarnings and lifetimeEarnings.
	Credit(ctx context.Context, amount int64) error
}

// StateRepository holds the guild-wide state of the running session.
type StateRepository interface {
	// Get returns a copy of the current state.
	Get(ctx context.Context) (guild.State, error)

	// Put replaces the current state.
	Put(ctx context.Context, state guild.State) error

	// Update applies fn to the state under the store's lock and returns the
	// result. Concurrent ledger calls are never lost to it.
	Update(ctx context.Context, fn func(*guild.State)) (guild.State, error)
}

// QuestRepository is the quest board of the running session.
type QuestRepository interface {
	// List returns every quest in board order.
	List(ctx context.Context) ([]quest.Quest, error)

	// GetByID retrieves a quest. Unknown ids return ErrNotFound.
	GetByID(ctx context.Context, id string) (quest.Quest, error)

	// Update stores a modified quest. Unknown ids return ErrNotFound.
	Update(ctx context.Context, q quest.Quest) error

	// ReplaceAll swaps in a whole board, keeping the given order.
	ReplaceAll(ctx context.Context, quests []quest.Quest) error
}

// AdventurerRepository holds the recruitment pool and the hired roster.
// An adventurer lives in exactly one of the two.
type AdventurerRepository interface {
	// ListRecruits returns the recruitment pool in arrival order.
	ListRecruits(ctx context.Context) ([]adventurer.Adventurer, error)

	// ListRoster returns hired adventurers in hire order.
	ListRoster(ctx context.Context) ([]adventurer.Adventurer, error)

	// GetByID looks in the roster, then the pool. Unknown ids return ErrNotFound.
	GetByID(ctx context.Context, id string) (adventurer.Adventurer, error)

	// Update stores a modified adventurer wherever it lives.
	Update(ctx context.Context, a adventurer.Adventurer) error

	// MoveToRoster removes a from the pool and appends it to the roster.
	MoveToRoster(ctx context.Context, a adventurer.Adventurer) error

	// AddRecruit appends a to the pool.
	AddRecruit(ctx context.Context, a adventurer.Adventurer) error

	// ReplaceAll swaps in a whole roster and pool.
	ReplaceAll(ctx context.Context, roster, pool []adventurer.Adventurer) error
}
