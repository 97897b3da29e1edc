package adventurer

import "github.com/example/guildmaster/internal/core/guard"

// HireContext provides context for hire guards.
type HireContext struct {
	AdventurerID string
	InPool       bool
	HireCost     int64
	Gold         float64
}

// AssignContext provides context for quest assignment guards.
type AssignContext struct {
	AdventurerID string
	InRoster     bool
	QuestID      string
	QuestExists  bool
}

// CanHire evaluates whether a recruit can be hired.
// Rules:
// - Adventurer must be in the recruitment pool
// - Gold must cover the hire cost
func CanHire(ctx HireContext) guard.Result {
	if !ctx.InPool {
		return guard.Deny(guard.ErrInvalidTransition, "adventurer %s is not in the recruitment pool", ctx.AdventurerID)
	}
	if float64(ctx.HireCost) > ctx.Gold {
		return guard.Deny(guard.ErrInsufficientFunds, "hiring %s costs %d gold (have %d)", ctx.AdventurerID, ctx.HireCost, int64(ctx.Gold))
	}
	return guard.Allow()
}

// CanAssign evaluates whether an adventurer can be assigned to manage a quest.
// Rules:
// - Adventurer must be hired (in the roster)
// - Quest must exist
func CanAssign(ctx AssignContext) guard.Result {
	if !ctx.InRoster {
		return guard.Deny(guard.ErrInvalidTransition, "adventurer %s is not on the roster", ctx.AdventurerID)
	}
	if !ctx.QuestExists {
		return guard.Deny(guard.ErrNotFound, "quest %s not found", ctx.QuestID)
	}
	return guard.Allow()
}

// ApplyHire marks a recruit as hired at the given unix-millisecond time.
func ApplyHire(a *Adventurer, hiredAtMs int64) {
	a.Hired = true
	a.HireDate = hiredAtMs
}
