// Package quest contains the pure business logic for quests: the record
// shape, the seed catalog, cost and reward formulas, guards and the timer
// state machine. This is part of the Functional Core - no I/O, only pure
// functions over values.
package quest

// Status is the derived lifecycle state of a quest.
type Status string

const (
	StatusLocked  Status = "locked"
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
)

// Quest is a unit of repeatable, timed work. JSON field names match the
// persisted save format.
type Quest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LocationID  string `json:"locationId"`
	Description string `json:"description"`

	BaseGoldReward float64 `json:"baseGoldReward"`
	Level          int     `json:"level"`
	UpgradeCost    int64   `json:"upgradeCost"`
	GoldPerUpgrade float64 `json:"goldPerUpgrade"`
	CostGrowth     float64 `json:"costGrowth"`

	BaseTimeMs      float64 `json:"baseTimeMs"`
	Running         bool    `json:"running"`
	TimeRemainingMs float64 `json:"timeRemainingMs"`

	ManagerHired bool   `json:"managerHired"`
	ManagerID    string `json:"managerId"`

	Unlocked   bool  `json:"unlocked"`
	UnlockCost int64 `json:"unlockCost"`
}

// Status derives the lifecycle state from the unlocked and running flags.
func (q Quest) Status() Status {
	switch {
	case !q.Unlocked:
		return StatusLocked
	case q.Running:
		return StatusRunning
	default:
		return StatusIdle
	}
}

// Managed reports whether an adventurer is automating this quest.
func (q Quest) Managed() bool {
	return q.ManagerHired
}
