package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/guildmaster/internal/core/guild"
	"github.com/example/guildmaster/internal/core/quest"
	"github.com/example/guildmaster/internal/ports/primary"
	"github.com/example/guildmaster/internal/ports/secondary"
)

// QuestServiceImpl implements the QuestService interface.
type QuestServiceImpl struct {
	ledger secondary.Ledger
	quests secondary.QuestRepository
	logger *zap.Logger
}

// NewQuestService creates a new QuestService with injected dependencies.
func NewQuestService(ledger secondary.Ledger, quests secondary.QuestRepository, logger *zap.Logger) *QuestServiceImpl {
	return &QuestServiceImpl{
		ledger: ledger,
		quests: quests,
		logger: logger,
	}
}

// ListQuests returns the board in catalog order, optionally filtered by location.
func (s *QuestServiceImpl) ListQuests(ctx context.Context, filters primary.QuestFilters) ([]*primary.Quest, error) {
	records, err := s.quests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quests: %w", err)
	}

	quests := make([]*primary.Quest, 0, len(records))
	for _, q := range records {
		if filters.LocationID != "" && q.LocationID != filters.LocationID {
			continue
		}
		quests = append(quests, toQuest(q))
	}
	return quests, nil
}

// GetQuest retrieves a quest by ID.
func (s *QuestServiceImpl) GetQuest(ctx context.Context, questID string) (*primary.Quest, error) {
	q, err := s.quests.GetByID(ctx, questID)
	if err != nil {
		return nil, questLookupError(questID, err)
	}
	return toQuest(q), nil
}

// UnlockQuest pays the unlock cost and opens the quest.
func (s *QuestServiceImpl) UnlockQuest(ctx context.Context, questID string) (*primary.Quest, error) {
	q, err := s.quests.GetByID(ctx, questID)
	if err != nil {
		return nil, questLookupError(questID, err)
	}
	gold, err := s.ledger.Gold(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read gold: %w", err)
	}

	result := quest.CanUnlockQuest(quest.UnlockContext{
		QuestID:    q.ID,
		Unlocked:   q.Unlocked,
		UnlockCost: q.UnlockCost,
		Gold:       gold,
	})
	if !result.Allowed {
		return nil, result.Error()
	}

	if err := s.ledger.Spend(ctx, q.UnlockCost); err != nil {
		return nil, spendError(err)
	}
	quest.ApplyUnlock(&q)
	if err := s.quests.Update(ctx, q); err != nil {
		return nil, fmt.Errorf("failed to update quest: %w", err)
	}

	s.logger.Info("quest unlocked", zap.String("quest", q.ID), zap.Int64("cost", q.UnlockCost))
	return toQuest(q), nil
}

// StartQuest arms the timer of an idle quest.
func (s *QuestServiceImpl) StartQuest(ctx context.Context, questID string) (*primary.Quest, error) {
	q, err := s.quests.GetByID(ctx, questID)
	if err != nil {
		return nil, questLookupError(questID, err)
	}

	result := quest.CanStartQuest(quest.StartContext{
		QuestID:  q.ID,
		Unlocked: q.Unlocked,
		Running:  q.Running,
	})
	if !result.Allowed {
		return nil, result.Error()
	}

	quest.Arm(&q)
	if err := s.quests.Update(ctx, q); err != nil {
		return nil, fmt.Errorf("failed to update quest: %w", err)
	}

	s.logger.Debug("quest started", zap.String("quest", q.ID), zap.Float64("durationMs", q.BaseTimeMs))
	return toQuest(q), nil
}

// UpgradeQuest pays the upgrade cost and raises the quest level.
func (s *QuestServiceImpl) UpgradeQuest(ctx context.Context, questID string) (*primary.UpgradeQuestResponse, error) {
	q, err := s.quests.GetByID(ctx, questID)
	if err != nil {
		return nil, questLookupError(questID, err)
	}
	gold, err := s.ledger.Gold(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read gold: %w", err)
	}

	result := quest.CanUpgradeQuest(quest.UpgradeContext{
		QuestID:     q.ID,
		UpgradeCost: q.UpgradeCost,
		Gold:        gold,
	})
	if !result.Allowed {
		return nil, result.Error()
	}

	if err := s.ledger.Spend(ctx, q.UpgradeCost); err != nil {
		return nil, spendError(err)
	}
	paid := quest.ApplyUpgrade(&q)
	if err := s.quests.Update(ctx, q); err != nil {
		return nil, fmt.Errorf("failed to update quest: %w", err)
	}

	s.logger.Info("quest upgraded",
		zap.String("quest", q.ID),
		zap.Int("level", q.Level),
		zap.Int64("paid", paid),
		zap.Int64("nextCost", q.UpgradeCost),
	)
	return &primary.UpgradeQuestResponse{Quest: toQuest(q), Paid: paid}, nil
}

// CompleteQuest finishes a running quest and credits its reward.
func (s *QuestServiceImpl) CompleteQuest(ctx context.Context, questID string) (int64, error) {
	q, err := s.quests.GetByID(ctx, questID)
	if err != nil {
		return 0, questLookupError(questID, err)
	}

	result := quest.CanCompleteQuest(quest.CompleteContext{QuestID: q.ID, Running: q.Running})
	if !result.Allowed {
		return 0, result.Error()
	}

	reward := quest.Complete(&q)
	if err := s.quests.Update(ctx, q); err != nil {
		return 0, fmt.Errorf("failed to update quest: %w", err)
	}
	if err := s.ledger.Credit(ctx, reward); err != nil {
		return 0, fmt.Errorf("failed to credit reward: %w", err)
	}

	s.logger.Info("quest completed", zap.String("quest", q.ID), zap.Int64("reward", reward))
	return reward, nil
}

// AssignManager binds a manager and force-starts the quest.
func (s *QuestServiceImpl) AssignManager(ctx context.Context, questID, adventurerID string) error {
	q, err := s.quests.GetByID(ctx, questID)
	if err != nil {
		return questLookupError(questID, err)
	}

	result := quest.CanAssignManager(quest.ManagerContext{QuestID: q.ID, Unlocked: q.Unlocked})
	if !result.Allowed {
		return result.Error()
	}

	quest.ApplyManager(&q, adventurerID)
	if err := s.quests.Update(ctx, q); err != nil {
		return fmt.Errorf("failed to update quest: %w", err)
	}

	s.logger.Info("manager assigned", zap.String("quest", q.ID), zap.String("adventurer", adventurerID))
	return nil
}

// ReleaseManager removes automation from a quest.
func (s *QuestServiceImpl) ReleaseManager(ctx context.Context, questID string) error {
	q, err := s.quests.GetByID(ctx, questID)
	if err != nil {
		return questLookupError(questID, err)
	}
	if !q.ManagerHired {
		return nil
	}

	quest.ReleaseManager(&q)
	if err := s.quests.Update(ctx, q); err != nil {
		return fmt.Errorf("failed to update quest: %w", err)
	}
	return nil
}

func toQuest(q quest.Quest) *primary.Quest {
	return &primary.Quest{
		Quest:        q,
		Reward:       quest.Reward(q),
		NextReward:   quest.RewardAt(q, q.Level+1),
		Progress:     quest.Progress(q),
		LocationName: guild.LocationDisplayName(q.LocationID),
	}
}

// Ensure QuestServiceImpl implements the interface.
var _ primary.QuestService = (*QuestServiceImpl)(nil)
