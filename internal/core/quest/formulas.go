package quest

import "math"

// Reward returns the gold paid out by one completion at the quest's
// current level: floor(baseGoldReward + level * goldPerUpgrade).
func Reward(q Quest) int64 {
	return RewardAt(q, q.Level)
}

// RewardAt returns the reward the quest would pay at the given level.
// Used for upgrade previews.
func RewardAt(q Quest, level int) int64 {
	if level < 0 {
		level = 0
	}
	r := math.Floor(q.BaseGoldReward + float64(level)*q.GoldPerUpgrade)
	if r < 0 {
		return 0
	}
	return int64(r)
}

// NextUpgradeCost applies one step of multiplicative cost growth:
// floor(cost * growth).
func NextUpgradeCost(cost int64, growth float64) int64 {
	next := math.Floor(float64(cost) * growth)
	if next < 0 {
		return 0
	}
	return int64(next)
}

// Progress returns the completion percentage of the current run, clamped
// to [0,100]. Idle and locked quests report 0.
func Progress(q Quest) float64 {
	if !q.Running || q.BaseTimeMs <= 0 {
		return 0
	}
	p := 100 * (1 - q.TimeRemainingMs/q.BaseTimeMs)
	if math.IsNaN(p) {
		return 0
	}
	return math.Max(0, math.Min(100, p))
}

// CanAfford reports whether a gold balance covers an integer cost.
func CanAfford(gold float64, cost int64) bool {
	return gold >= float64(cost)
}
