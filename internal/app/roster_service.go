package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/example/guildmaster/internal/core/adventurer"
	"github.com/example/guildmaster/internal/ports/primary"
	"github.com/example/guildmaster/internal/ports/secondary"
)

// RecruitmentPoolSize is the standing number of recruits on offer.
const RecruitmentPoolSize = 3

// RosterServiceImpl implements the RosterService interface.
type RosterServiceImpl struct {
	ledger       secondary.Ledger
	adventurers  secondary.AdventurerRepository
	quests       secondary.QuestRepository
	questService primary.QuestService
	clock        secondary.Clock
	logger       *zap.Logger

	genMu     sync.Mutex
	generator *adventurer.Generator
}

// NewRosterService creates a new RosterService with injected dependencies.
func NewRosterService(
	ledger secondary.Ledger,
	adventurers secondary.AdventurerRepository,
	quests secondary.QuestRepository,
	questService primary.QuestService,
	generator *adventurer.Generator,
	clock secondary.Clock,
	logger *zap.Logger,
) *RosterServiceImpl {
	return &RosterServiceImpl{
		ledger:       ledger,
		adventurers:  adventurers,
		quests:       quests,
		questService: questService,
		generator:    generator,
		clock:        clock,
		logger:       logger,
	}
}

// ListRecruits returns the recruitment pool.
func (s *RosterServiceImpl) ListRecruits(ctx context.Context) ([]*primary.Adventurer, error) {
	records, err := s.adventurers.ListRecruits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recruits: %w", err)
	}
	return toAdventurers(records), nil
}

// ListRoster returns hired adventurers.
func (s *RosterServiceImpl) ListRoster(ctx context.Context) ([]*primary.Adventurer, error) {
	records, err := s.adventurers.ListRoster(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	return toAdventurers(records), nil
}

// GetAdventurer looks an adventurer up in the roster or the pool.
func (s *RosterServiceImpl) GetAdventurer(ctx context.Context, adventurerID string) (*primary.Adventurer, error) {
	a, err := s.adventurers.GetByID(ctx, adventurerID)
	if err != nil {
		return nil, adventurerLookupError(adventurerID, err)
	}
	return toAdventurer(a), nil
}

// AdventurersByQuest returns roster members assigned to a quest.
func (s *RosterServiceImpl) AdventurersByQuest(ctx context.Context, questID string) ([]*primary.Adventurer, error) {
	records, err := s.adventurers.ListRoster(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}

	var assigned []*primary.Adventurer
	for _, a := range records {
		if a.AssignedQuestID == questID {
			assigned = append(assigned, toAdventurer(a))
		}
	}
	return assigned, nil
}

// FillRecruitmentPool tops the pool up to RecruitmentPoolSize.
func (s *RosterServiceImpl) FillRecruitmentPool(ctx context.Context) ([]*primary.Adventurer, error) {
	pool, err := s.adventurers.ListRecruits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recruits: %w", err)
	}

	for len(pool) < RecruitmentPoolSize {
		recruit, err := s.newRecruit(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.adventurers.AddRecruit(ctx, recruit); err != nil {
			return nil, fmt.Errorf("failed to add recruit: %w", err)
		}
		pool = append(pool, recruit)
	}
	return toAdventurers(pool), nil
}

// Hire pays the hire cost, moves the recruit to the roster and replaces it
// in the pool with a freshly generated recruit.
func (s *RosterServiceImpl) Hire(ctx context.Context, adventurerID string) (*primary.HireResponse, error) {
	a, err := s.adventurers.GetByID(ctx, adventurerID)
	if err != nil {
		return nil, adventurerLookupError(adventurerID, err)
	}
	gold, err := s.ledger.Gold(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read gold: %w", err)
	}

	result := adventurer.CanHire(adventurer.HireContext{
		AdventurerID: a.ID,
		InPool:       !a.Hired,
		HireCost:     a.HireCost,
		Gold:         gold,
	})
	if !result.Allowed {
		return nil, result.Error()
	}

	replacement, err := s.newRecruit(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.Spend(ctx, a.HireCost); err != nil {
		return nil, spendError(err)
	}
	adventurer.ApplyHire(&a, s.clock.Now().UnixMilli())
	if err := s.adventurers.MoveToRoster(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to move %s to roster: %w", a.ID, err)
	}

	if err := s.adventurers.AddRecruit(ctx, replacement); err != nil {
		return nil, fmt.Errorf("failed to add replacement recruit: %w", err)
	}

	s.logger.Info("adventurer hired",
		zap.String("adventurer", a.ID),
		zap.String("name", a.Name),
		zap.Int64("cost", a.HireCost),
		zap.String("replacement", replacement.ID),
	)
	return &primary.HireResponse{
		Adventurer:  toAdventurer(a),
		Replacement: toAdventurer(replacement),
		Paid:        a.HireCost,
	}, nil
}

// AssignToQuest makes a roster member the manager of a quest. An adventurer
// manages at most one quest and a quest has at most one manager, so earlier
// bindings on either side are released.
func (s *RosterServiceImpl) AssignToQuest(ctx context.Context, adventurerID, questID string) error {
	a, err := s.adventurers.GetByID(ctx, adventurerID)
	if err != nil {
		return adventurerLookupError(adventurerID, err)
	}
	if _, err := s.quests.GetByID(ctx, questID); err != nil {
		return questLookupError(questID, err)
	}

	result := adventurer.CanAssign(adventurer.AssignContext{
		AdventurerID: a.ID,
		InRoster:     a.Hired,
		QuestID:      questID,
		QuestExists:  true,
	})
	if !result.Allowed {
		return result.Error()
	}

	if err := s.questService.AssignManager(ctx, questID, a.ID); err != nil {
		return err
	}

	if previous := a.AssignedQuestID; previous != "" && previous != questID {
		if err := s.questService.ReleaseManager(ctx, previous); err != nil {
			return fmt.Errorf("failed to release %s: %w", previous, err)
		}
	}
	if err := s.unassignOthers(ctx, questID, a.ID); err != nil {
		return err
	}

	a.AssignedQuestID = questID
	if err := s.adventurers.Update(ctx, a); err != nil {
		return fmt.Errorf("failed to update adventurer: %w", err)
	}
	return nil
}

func (s *RosterServiceImpl) unassignOthers(ctx context.Context, questID, keepID string) error {
	roster, err := s.adventurers.ListRoster(ctx)
	if err != nil {
		return fmt.Errorf("failed to list roster: %w", err)
	}
	for _, other := range roster {
		if other.ID == keepID || other.AssignedQuestID != questID {
			continue
		}
		other.AssignedQuestID = ""
		if err := s.adventurers.Update(ctx, other); err != nil {
			return fmt.Errorf("failed to update adventurer: %w", err)
		}
		s.logger.Debug("manager replaced", zap.String("quest", questID), zap.String("adventurer", other.ID))
	}
	return nil
}

// GiveGift applies a gift to an adventurer in the pool or the roster.
func (s *RosterServiceImpl) GiveGift(ctx context.Context, adventurerID string, gift adventurer.GiftType) (*primary.GiftResponse, error) {
	a, err := s.adventurers.GetByID(ctx, adventurerID)
	if err != nil {
		return nil, adventurerLookupError(adventurerID, err)
	}

	delta := adventurer.ReceiveGift(&a, gift)
	if err := s.adventurers.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to update adventurer: %w", err)
	}

	s.logger.Info("gift given",
		zap.String("adventurer", a.ID),
		zap.String("gift", string(gift)),
		zap.Int("delta", delta),
		zap.Int("affection", a.Social.Affection),
	)
	return &primary.GiftResponse{Adventurer: toAdventurer(a), Delta: delta}, nil
}

func (s *RosterServiceImpl) generate() adventurer.Adventurer {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	return s.generator.Generate()
}

// maxIDAttempts bounds how often a recruit is regenerated on an id clash.
const maxIDAttempts = 8

// newRecruit generates a recruit whose id is not taken by anyone in the
// roster or the pool.
func (s *RosterServiceImpl) newRecruit(ctx context.Context) (adventurer.Adventurer, error) {
	for range maxIDAttempts {
		recruit := s.generate()
		_, err := s.adventurers.GetByID(ctx, recruit.ID)
		if errors.Is(err, secondary.ErrNotFound) {
			return recruit, nil
		}
		if err != nil {
			return adventurer.Adventurer{}, fmt.Errorf("failed to check recruit id: %w", err)
		}
		s.logger.Debug("recruit id taken, regenerating", zap.String("adventurer", recruit.ID))
	}
	return adventurer.Adventurer{}, fmt.Errorf("no free adventurer id after %d attempts", maxIDAttempts)
}

func toAdventurer(a adventurer.Adventurer) *primary.Adventurer {
	view := &primary.Adventurer{Adventurer: a, ClassName: a.Class}
	if class, ok := adventurer.ClassByID(a.Class); ok {
		view.ClassName = class.Name
	}
	return view
}

func toAdventurers(records []adventurer.Adventurer) []*primary.Adventurer {
	out := make([]*primary.Adventurer, len(records))
	for i, a := range records {
		out[i] = toAdventurer(a)
	}
	return out
}

// Ensure RosterServiceImpl implements the interface.
var _ primary.RosterService = (*RosterServiceImpl)(nil)
