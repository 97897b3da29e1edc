package quest

import "math"

// Arm starts a fresh run with a full timer.
func Arm(q *Quest) {
	q.Running = true
	q.TimeRemainingMs = q.BaseTimeMs
}

// ApplyUnlock flips the unlocked gate. The caller has already debited gold.
func ApplyUnlock(q *Quest) {
	q.Unlocked = true
}

// ApplyUpgrade raises the level by one and compounds the upgrade cost.
// Returns the cost that was paid.
func ApplyUpgrade(q *Quest) int64 {
	paid := q.UpgradeCost
	q.Level++
	q.UpgradeCost = NextUpgradeCost(q.UpgradeCost, q.CostGrowth)
	return paid
}

// ApplyManager binds a manager and force-starts the quest, resetting the
// timer even if a run was already in progress.
func ApplyManager(q *Quest, adventurerID string) {
	q.ManagerHired = true
	q.ManagerID = adventurerID
	Arm(q)
}

// Complete ends the current run and returns its reward. Managed quests are
// re-armed immediately. Returns 0 and leaves the quest untouched when it is
// not running.
func Complete(q *Quest) int64 {
	if !q.Running {
		return 0
	}
	q.Running = false
	reward := Reward(*q)
	if q.ManagerHired {
		Arm(q)
	}
	return reward
}

// MaxCyclesPerElapse bounds how many managed completions one Elapse call
// can pay out, keeping reward totals inside int64.
const MaxCyclesPerElapse = 1_000_000_000

// Elapse advances a running quest by deltaMs and returns how many runs
// completed inside the window. Every run pays Reward, since the level cannot
// change mid-window. Negative and non-finite deltas count as 0.
//
// An unmanaged quest completes at most once and drops the overshoot. A
// managed quest carries the overshoot into its re-armed timer, so a delta of
// N full cycles completes it N times and leaves it mid-cycle.
func Elapse(q *Quest, deltaMs float64) int64 {
	if !q.Running {
		return 0
	}
	if deltaMs < 0 || math.IsNaN(deltaMs) || math.IsInf(deltaMs, 0) {
		deltaMs = 0
	}
	if math.IsNaN(q.TimeRemainingMs) {
		q.TimeRemainingMs = q.BaseTimeMs
	}

	q.TimeRemainingMs -= deltaMs
	if q.TimeRemainingMs > 0 {
		return 0
	}

	overshoot := -q.TimeRemainingMs
	Complete(q)
	if !q.Running || q.BaseTimeMs <= 0 {
		return 1
	}

	extra := math.Floor(overshoot / q.BaseTimeMs)
	if extra >= MaxCyclesPerElapse-1 {
		q.TimeRemainingMs = q.BaseTimeMs
		return MaxCyclesPerElapse
	}
	q.TimeRemainingMs = q.BaseTimeMs - math.Mod(overshoot, q.BaseTimeMs)
	return 1 + int64(extra)
}

// ReleaseManager removes automation from a quest. A running cycle still
// finishes; it just won't restart.
func ReleaseManager(q *Quest) {
	q.ManagerHired = false
	q.ManagerID = ""
}
