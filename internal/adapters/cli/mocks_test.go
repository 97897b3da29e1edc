package cli

import (
	"context"
	"os"
	"testing"

	"github.com/fatih/color"

	"github.com/example/guildmaster/internal/core/adventurer"
	"github.com/example/guildmaster/internal/core/offline"
	"github.com/example/guildmaster/internal/ports/primary"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// ============================================================================
// Mock Implementations
// ============================================================================

// mockQuestService implements primary.QuestService for testing.
type mockQuestService struct {
	listQuestsFn   func(ctx context.Context, filters primary.QuestFilters) ([]*primary.Quest, error)
	getQuestFn     func(ctx context.Context, questID string) (*primary.Quest, error)
	unlockQuestFn  func(ctx context.Context, questID string) (*primary.Quest, error)
	startQuestFn   func(ctx context.Context, questID string) (*primary.Quest, error)
	upgradeQuestFn func(ctx context.Context, questID string) (*primary.UpgradeQuestResponse, error)

	lastFilters primary.QuestFilters
}

func (m *mockQuestService) ListQuests(ctx context.Context, filters primary.QuestFilters) ([]*primary.Quest, error) {
	m.lastFilters = filters
	if m.listQuestsFn != nil {
		return m.listQuestsFn(ctx, filters)
	}
	return []*primary.Quest{}, nil
}

func (m *mockQuestService) GetQuest(ctx context.Context, questID string) (*primary.Quest, error) {
	if m.getQuestFn != nil {
		return m.getQuestFn(ctx, questID)
	}
	return nil, primary.ErrQuestNotFound
}

func (m *mockQuestService) UnlockQuest(ctx context.Context, questID string) (*primary.Quest, error) {
	if m.unlockQuestFn != nil {
		return m.unlockQuestFn(ctx, questID)
	}
	return nil, primary.ErrQuestNotFound
}

func (m *mockQuestService) StartQuest(ctx context.Context, questID string) (*primary.Quest, error) {
	if m.startQuestFn != nil {
		return m.startQuestFn(ctx, questID)
	}
	return nil, primary.ErrQuestNotFound
}

func (m *mockQuestService) UpgradeQuest(ctx context.Context, questID string) (*primary.UpgradeQuestResponse, error) {
	if m.upgradeQuestFn != nil {
		return m.upgradeQuestFn(ctx, questID)
	}
	return nil, primary.ErrQuestNotFound
}

func (m *mockQuestService) CompleteQuest(ctx context.Context, questID string) (int64, error) {
	return 0, primary.ErrInvalidTransition
}

func (m *mockQuestService) AssignManager(ctx context.Context, questID, adventurerID string) error {
	return nil
}

func (m *mockQuestService) ReleaseManager(ctx context.Context, questID string) error {
	return nil
}

// mockRosterService implements primary.RosterService for testing.
type mockRosterService struct {
	recruits []*primary.Adventurer
	roster   []*primary.Adventurer

	hireFn   func(ctx context.Context, adventurerID string) (*primary.HireResponse, error)
	assignFn func(ctx context.Context, adventurerID, questID string) error
	giftFn   func(ctx context.Context, adventurerID string, gift adventurer.GiftType) (*primary.GiftResponse, error)

	giftCalls int
}

func (m *mockRosterService) ListRecruits(ctx context.Context) ([]*primary.Adventurer, error) {
	return m.recruits, nil
}

func (m *mockRosterService) ListRoster(ctx context.Context) ([]*primary.Adventurer, error) {
	return m.roster, nil
}

func (m *mockRosterService) GetAdventurer(ctx context.Context, adventurerID string) (*primary.Adventurer, error) {
	for _, adv := range append(m.roster, m.recruits...) {
		if adv.ID == adventurerID {
			return adv, nil
		}
	}
	return nil, primary.ErrAdventurerNotFound
}

func (m *mockRosterService) AdventurersByQuest(ctx context.Context, questID string) ([]*primary.Adventurer, error) {
	return nil, nil
}

func (m *mockRosterService) FillRecruitmentPool(ctx context.Context) ([]*primary.Adventurer, error) {
	return m.recruits, nil
}

func (m *mockRosterService) Hire(ctx context.Context, adventurerID string) (*primary.HireResponse, error) {
	if m.hireFn != nil {
		return m.hireFn(ctx, adventurerID)
	}
	return nil, primary.ErrAdventurerNotFound
}

func (m *mockRosterService) AssignToQuest(ctx context.Context, adventurerID, questID string) error {
	if m.assignFn != nil {
		return m.assignFn(ctx, adventurerID, questID)
	}
	return nil
}

func (m *mockRosterService) GiveGift(ctx context.Context, adventurerID string, gift adventurer.GiftType) (*primary.GiftResponse, error) {
	m.giftCalls++
	if m.giftFn != nil {
		return m.giftFn(ctx, adventurerID, gift)
	}
	return nil, primary.ErrAdventurerNotFound
}

// mockGameService implements primary.GameService for testing.
type mockGameService struct {
	status    *primary.GameStatus
	loadResp  *primary.LoadGameResponse
	saves     []*primary.SaveInfo
	exportErr error

	lastExportPath string
}

func (m *mockGameService) NewGame(ctx context.Context) (*primary.GameStatus, error) {
	return m.status, nil
}

func (m *mockGameService) LoadGame(ctx context.Context) (*primary.LoadGameResponse, error) {
	return m.loadResp, nil
}

func (m *mockGameService) SaveGame(ctx context.Context) (*primary.SaveInfo, error) {
	return &primary.SaveInfo{ID: 1}, nil
}

func (m *mockGameService) ExportGame(ctx context.Context, path string) (string, error) {
	m.lastExportPath = path
	if m.exportErr != nil {
		return "", m.exportErr
	}
	if path == "" {
		path = "guild_master_save_1.json"
	}
	return path, nil
}

func (m *mockGameService) ImportGame(ctx context.Context, path string) (*primary.GameStatus, error) {
	return m.status, nil
}

func (m *mockGameService) ListSaves(ctx context.Context, limit int) ([]*primary.SaveInfo, error) {
	if limit > 0 && limit < len(m.saves) {
		return m.saves[:limit], nil
	}
	return m.saves, nil
}

func (m *mockGameService) Status(ctx context.Context) (*primary.GameStatus, error) {
	return m.status, nil
}

func (m *mockGameService) ConfigureOfflineEarnings(ctx context.Context, cfg offline.Config) error {
	return nil
}

func (m *mockGameService) SetTimeScale(ctx context.Context, scale float64) error {
	return nil
}

// mockProgressionService implements primary.ProgressionService for testing.
type mockProgressionService struct {
	result *primary.TickResult
	lastMs float64
}

func (m *mockProgressionService) Tick(ctx context.Context, deltaMs float64) (*primary.TickResult, error) {
	m.lastMs = deltaMs
	if m.result == nil {
		return &primary.TickResult{}, nil
	}
	return m.result, nil
}
