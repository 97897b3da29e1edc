package quest

import "github.com/example/guildmaster/internal/core/guard"

// UnlockContext provides context for unlock guards.
type UnlockContext struct {
	QuestID    string
	Unlocked   bool
	UnlockCost int64
	Gold       float64
}

// StartContext provides context for manual start guards.
type StartContext struct {
	QuestID  string
	Unlocked bool
	Running  bool
}

// UpgradeContext provides context for upgrade guards.
type UpgradeContext struct {
	QuestID     string
	UpgradeCost int64
	Gold        float64
}

// ManagerContext provides context for manager assignment guards.
type ManagerContext struct {
	QuestID  string
	Unlocked bool
}

// CompleteContext provides context for completion guards.
type CompleteContext struct {
	QuestID string
	Running bool
}

// CanUnlockQuest evaluates whether a quest can be unlocked.
// Rules:
// - Quest must still be locked (never charge twice)
// - Gold must cover the unlock cost
func CanUnlockQuest(ctx UnlockContext) guard.Result {
	if ctx.Unlocked {
		return guard.Deny(guard.ErrInvalidTransition, "quest %s is already unlocked", ctx.QuestID)
	}
	if !CanAfford(ctx.Gold, ctx.UnlockCost) {
		return guard.Deny(guard.ErrInsufficientFunds, "unlocking %s costs %d gold (have %d)", ctx.QuestID, ctx.UnlockCost, int64(ctx.Gold))
	}
	return guard.Allow()
}

// CanStartQuest evaluates whether a quest can be started manually.
// Rules:
// - Quest must be unlocked
// - Quest must not already be running
func CanStartQuest(ctx StartContext) guard.Result {
	if !ctx.Unlocked {
		return guard.Deny(guard.ErrInvalidTransition, "quest %s is locked", ctx.QuestID)
	}
	if ctx.Running {
		return guard.Deny(guard.ErrInvalidTransition, "quest %s is already running", ctx.QuestID)
	}
	return guard.Allow()
}

// CanUpgradeQuest evaluates whether a quest can be upgraded.
// Rules:
// - Gold must cover the current upgrade cost
func CanUpgradeQuest(ctx UpgradeContext) guard.Result {
	if !CanAfford(ctx.Gold, ctx.UpgradeCost) {
		return guard.Deny(guard.ErrInsufficientFunds, "upgrading %s costs %d gold (have %d)", ctx.QuestID, ctx.UpgradeCost, int64(ctx.Gold))
	}
	return guard.Allow()
}

// CanCompleteQuest evaluates whether a quest can be completed.
// Rules:
// - Quest must be running
func CanCompleteQuest(ctx CompleteContext) guard.Result {
	if !ctx.Running {
		return guard.Deny(guard.ErrInvalidTransition, "quest %s is not running", ctx.QuestID)
	}
	return guard.Allow()
}

// CanAssignManager evaluates whether a quest can take a manager.
// Assignment force-starts the quest, so a locked quest cannot take one.
func CanAssignManager(ctx ManagerContext) guard.Result {
	if !ctx.Unlocked {
		return guard.Deny(guard.ErrInvalidTransition, "quest %s is locked", ctx.QuestID)
	}
	return guard.Allow()
}
