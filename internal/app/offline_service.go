package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/example/guildmaster/internal/core/guild"
	"github.com/example/guildmaster/internal/core/offline"
	"github.com/example/guildmaster/internal/ports/primary"
	"github.com/example/guildmaster/internal/ports/secondary"
)

// OfflineEarningsServiceImpl implements the OfflineEarningsService interface.
type OfflineEarningsServiceImpl struct {
	state  secondary.StateRepository
	ledger secondary.Ledger
	quests secondary.QuestRepository
	clock  secondary.Clock
	logger *zap.Logger
}

// NewOfflineEarningsService creates a new OfflineEarningsService with injected dependencies.
func NewOfflineEarningsService(
	state secondary.StateRepository,
	ledger secondary.Ledger,
	quests secondary.QuestRepository,
	clock secondary.Clock,
	logger *zap.Logger,
) *OfflineEarningsServiceImpl {
	return &OfflineEarningsServiceImpl{
		state:  state,
		ledger: ledger,
		quests: quests,
		clock:  clock,
		logger: logger,
	}
}

// CalculateOfflineEarnings computes the payout for the time since the
// session was last persisted. Nothing is mutated.
func (s *OfflineEarningsServiceImpl) CalculateOfflineEarnings(ctx context.Context) (*primary.OfflineEarnings, error) {
	st, err := s.state.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read game state: %w", err)
	}
	board, err := s.quests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quests: %w", err)
	}

	r := offline.Calculate(s.clock.Now(), st.LastPersisted(), board, st.OfflineEarnings)
	return &primary.OfflineEarnings{
		Elapsed:  time.Duration(r.ElapsedMs) * time.Millisecond,
		Managed:  r.Managed,
		Baseline: r.Baseline,
		Total:    r.Total,
	}, nil
}

// ApplyOfflineEarnings credits a computed payout and marks the absence as
// settled by moving the state timestamp to now.
func (s *OfflineEarningsServiceImpl) ApplyOfflineEarnings(ctx context.Context, earnings *primary.OfflineEarnings) error {
	if earnings == nil {
		return nil
	}
	if earnings.Total > 0 {
		if err := s.ledger.Credit(ctx, earnings.Total); err != nil {
			return fmt.Errorf("failed to credit offline earnings: %w", err)
		}
		s.logger.Info("offline earnings applied",
			zap.Duration("away", earnings.Elapsed),
			zap.Int64("gold", earnings.Total),
		)
	}

	now := s.clock.Now().UnixMilli()
	if _, err := s.state.Update(ctx, func(st *guild.State) { st.Timestamp = now }); err != nil {
		return fmt.Errorf("failed to update game state: %w", err)
	}
	return nil
}

// Ensure OfflineEarningsServiceImpl implements the interface.
var _ primary.OfflineEarningsService = (*OfflineEarningsServiceImpl)(nil)
