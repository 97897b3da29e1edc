package app

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/example/guildmaster/internal/core/quest"
	"github.com/example/guildmaster/internal/ports/primary"
	"github.com/example/guildmaster/internal/ports/secondary"
)

// ProgressionServiceImpl implements the ProgressionService interface.
type ProgressionServiceImpl struct {
	ledger secondary.Ledger
	quests secondary.QuestRepository
	logger *zap.Logger
}

// NewProgressionService creates a new ProgressionService with injected dependencies.
func NewProgressionService(ledger secondary.Ledger, quests secondary.QuestRepository, logger *zap.Logger) *ProgressionServiceImpl {
	return &ProgressionServiceImpl{
		ledger: ledger,
		quests: quests,
		logger: logger,
	}
}

// Tick makes one pass over the board in catalog order. Every running quest
// loses deltaMs; managed quests that overshoot by whole cycles complete once
// per cycle inside the same tick. Negative and non-finite deltas count as 0.
func (s *ProgressionServiceImpl) Tick(ctx context.Context, deltaMs float64) (*primary.TickResult, error) {
	if deltaMs < 0 || math.IsNaN(deltaMs) || math.IsInf(deltaMs, 0) {
		deltaMs = 0
	}

	board, err := s.quests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quests: %w", err)
	}

	result := &primary.TickResult{}
	for _, q := range board {
		if !q.Running {
			continue
		}

		times := quest.Elapse(&q, deltaMs)
		if err := s.quests.Update(ctx, q); err != nil {
			return result, fmt.Errorf("failed to update quest %s: %w", q.ID, err)
		}
		if times == 0 {
			continue
		}

		reward := quest.Reward(q)
		gold := int64(math.MaxInt64)
		if reward <= 0 || times <= math.MaxInt64/reward {
			gold = times * reward
		}
		if err := s.ledger.Credit(ctx, gold); err != nil {
			return result, fmt.Errorf("failed to credit quest %s: %w", q.ID, err)
		}
		result.Completions = append(result.Completions, primary.Completion{
			QuestID: q.ID,
			Times:   times,
			Reward:  reward,
			Gold:    gold,
		})
		result.GoldEarned += gold

		s.logger.Debug("quest completed",
			zap.String("quest", q.ID),
			zap.Int64("times", times),
			zap.Bool("managed", q.Managed()),
		)
	}
	return result, nil
}

// Ensure ProgressionServiceImpl implements the interface.
var _ primary.ProgressionService = (*ProgressionServiceImpl)(nil)
