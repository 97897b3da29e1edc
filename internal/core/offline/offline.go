// Package offline computes the gold a guild earns while nobody is playing.
// The calculation is pure: it reads quest records and never advances timers.
package offline

import (
	"math"
	"time"

	"github.com/example/guildmaster/internal/core/quest"
)

// MinAbsence is the shortest absence that earns anything.
const MinAbsence = 30 * time.Second

// Defaults for a new game.
const (
	DefaultMaxDurationMs int64   = 24 * 60 * 60 * 1000
	DefaultRate          float64 = 0.5
)

// Config is the offline-earnings section of the game state.
type Config struct {
	Enabled     bool    `json:"enabled"`
	MaxDuration int64   `json:"maxDuration"`
	Rate        float64 `json:"rate"`
}

// DefaultConfig returns the new-game offline settings. Offline earnings start
// disabled.
func DefaultConfig() Config {
	return Config{Enabled: false, MaxDuration: DefaultMaxDurationMs, Rate: DefaultRate}
}

// Result breaks an offline payout into its parts. Total is what gets
// credited.
type Result struct {
	ElapsedMs int64
	Managed   float64
	Baseline  float64
	Total     int64
}

// Calculate returns the offline payout for the absence between last and now.
//
// Each quest that is both managed and running contributes one reward per full
// cycle that fits in the elapsed time. A baseline of rate gold per second is
// added on top of that, so a managed guild is paid twice for the same
// absence. The sum is floored.
func Calculate(now, last time.Time, quests []quest.Quest, cfg Config) Result {
	if !cfg.Enabled {
		return Result{}
	}

	elapsed := now.Sub(last).Milliseconds()
	if elapsed < 0 {
		elapsed = 0
	}
	if cfg.MaxDuration >= 0 && elapsed > cfg.MaxDuration {
		elapsed = cfg.MaxDuration
	}
	if elapsed < MinAbsence.Milliseconds() {
		return Result{ElapsedMs: elapsed}
	}

	var managed float64
	for _, q := range quests {
		if !q.ManagerHired || !q.Running || q.BaseTimeMs <= 0 {
			continue
		}
		cycles := math.Floor(float64(elapsed) / q.BaseTimeMs)
		managed += cycles * float64(quest.Reward(q))
	}

	baseline := float64(elapsed) * cfg.Rate / 1000
	total := int64(math.Floor(managed + baseline))
	if total < 0 {
		total = 0
	}

	return Result{
		ElapsedMs: elapsed,
		Managed:   managed,
		Baseline:  baseline,
		Total:     total,
	}
}
