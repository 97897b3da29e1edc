package primary

import (
	"context"

	"github.com/example/guildmaster/internal/core/quest"
)

// QuestService defines the primary port for the quest board.
type QuestService interface {
	// ListQuests returns the board in catalog order.
	ListQuests(ctx context.Context, filters QuestFilters) ([]*Quest, error)

	// GetQuest retrieves one quest with its reward preview and progress.
	GetQuest(ctx context.Context, questID string) (*Quest, error)

	// UnlockQuest pays the unlock cost and opens the quest.
	UnlockQuest(ctx context.Context, questID string) (*Quest, error)

	// StartQuest arms the timer of an idle, unlocked quest.
	StartQuest(ctx context.Context, questID string) (*Quest, error)

	// UpgradeQuest pays the upgrade cost and raises the level.
	UpgradeQuest(ctx context.Context, questID string) (*UpgradeQuestResponse, error)

	// CompleteQuest finishes a running quest and credits its reward.
	// Returns 0 with ErrInvalidTransition when the quest is not running.
	CompleteQuest(ctx context.Context, questID string) (int64, error)

	// AssignManager binds a manager and force-starts the quest.
	AssignManager(ctx context.Context, questID, adventurerID string) error

	// ReleaseManager removes automation from a quest.
	ReleaseManager(ctx context.Context, questID string) error
}

// QuestFilters narrows ListQuests.
type QuestFilters struct {
	LocationID string
}

// UpgradeQuestResponse contains the result of an upgrade.
type UpgradeQuestResponse struct {
	Quest *Quest
	Paid  int64
}

// Quest is a quest at the port boundary, with derived values attached.
type Quest struct {
	quest.Quest
	Reward       int64
	NextReward   int64
	Progress     float64
	LocationName string
}
