package primary

import "context"

// ProgressionService advances quest timers.
type ProgressionService interface {
	// Tick advances every running quest by deltaMs, already scaled by the
	// time scale, and completes whatever ran out.
	Tick(ctx context.Context, deltaMs float64) (*TickResult, error)
}

// TickResult lists what one tick paid out.
type TickResult struct {
	Completions []Completion
	GoldEarned  int64
}

// Completion aggregates the runs of one quest that finished during a tick.
type Completion struct {
	QuestID string
	Times   int64
	Reward  int64 // per run
	Gold    int64 // Times * Reward
}
