package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/example/guildmaster/internal/core/adventurer"
	"github.com/example/guildmaster/internal/core/guild"
	"github.com/example/guildmaster/internal/core/offline"
	"github.com/example/guildmaster/internal/ports/primary"
	"github.com/example/guildmaster/internal/ports/secondary"
)

// GameOptions configures a GameServiceImpl.
type GameOptions struct {
	Slot      string
	KeepSaves int
	ExportDir string

	// New-game settings.
	Offline   offline.Config
	TimeScale float64
}

// GameServiceImpl implements the GameService interface.
type GameServiceImpl struct {
	state       secondary.StateRepository
	quests      secondary.QuestRepository
	adventurers secondary.AdventurerRepository
	snapshots   secondary.SnapshotRepository
	files       secondary.SaveFileStore
	roster      primary.RosterService
	offline     primary.OfflineEarningsService
	clock       secondary.Clock
	opts        GameOptions
	logger      *zap.Logger
}

// NewGameService creates a new GameService with injected dependencies.
func NewGameService(
	state secondary.StateRepository,
	quests secondary.QuestRepository,
	adventurers secondary.AdventurerRepository,
	snapshots secondary.SnapshotRepository,
	files secondary.SaveFileStore,
	roster primary.RosterService,
	offlineService primary.OfflineEarningsService,
	clock secondary.Clock,
	opts GameOptions,
	logger *zap.Logger,
) *GameServiceImpl {
	return &GameServiceImpl{
		state:       state,
		quests:      quests,
		adventurers: adventurers,
		snapshots:   snapshots,
		files:       files,
		roster:      roster,
		offline:     offlineService,
		clock:       clock,
		opts:        opts,
		logger:      logger,
	}
}

// NewGame resets the session to new-game values and saves it.
func (s *GameServiceImpl) NewGame(ctx context.Context) (*primary.GameStatus, error) {
	snap := guild.NewGame(s.clock.Now())
	snap.OfflineEarnings = s.opts.Offline
	if s.opts.TimeScale > 0 {
		snap.Time.TimeScale = s.opts.TimeScale
	}

	if err := s.restore(ctx, snap); err != nil {
		return nil, err
	}
	if _, err := s.SaveGame(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("new game started", zap.String("slot", s.opts.Slot))
	return s.Status(ctx)
}

// LoadGame restores the newest save in the slot and settles offline
// earnings once. Without a save it starts a new game.
func (s *GameServiceImpl) LoadGame(ctx context.Context) (*primary.LoadGameResponse, error) {
	record, err := s.snapshots.LoadLatest(ctx, s.opts.Slot)
	if errors.Is(err, secondary.ErrNoSave) {
		status, err := s.NewGame(ctx)
		if err != nil {
			return nil, err
		}
		return &primary.LoadGameResponse{Status: status, Fresh: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load save: %w", err)
	}

	snap, err := guild.Migrate(record.Payload, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.restore(ctx, snap); err != nil {
		return nil, err
	}

	earnings, err := s.offline.CalculateOfflineEarnings(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.offline.ApplyOfflineEarnings(ctx, earnings); err != nil {
		return nil, err
	}
	if earnings.Total > 0 {
		// Persist the payout right away so the same absence is never paid twice.
		if _, err := s.SaveGame(ctx); err != nil {
			return nil, err
		}
	}

	s.logger.Debug("game loaded",
		zap.Int64("save", record.ID),
		zap.String("version", record.Version),
		zap.Int64("offlineGold", earnings.Total),
	)

	status, err := s.Status(ctx)
	if err != nil {
		return nil, err
	}
	return &primary.LoadGameResponse{Status: status, Offline: earnings}, nil
}

// SaveGame stamps the session and appends it to the slot history.
func (s *GameServiceImpl) SaveGame(ctx context.Context) (*primary.SaveInfo, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	data, err := guild.Marshal(snap)
	if err != nil {
		return nil, err
	}

	record := &secondary.SaveRecord{
		Slot:    s.opts.Slot,
		Version: snap.Version,
		Payload: data,
		SavedAt: snap.Timestamp,
	}
	if err := s.snapshots.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}
	if s.opts.KeepSaves > 0 {
		pruned, err := s.snapshots.Prune(ctx, s.opts.Slot, s.opts.KeepSaves)
		if err != nil {
			return nil, fmt.Errorf("failed to prune saves: %w", err)
		}
		if pruned > 0 {
			s.logger.Debug("old saves pruned", zap.Int64("count", pruned))
		}
	}

	s.logger.Debug("game saved", zap.Int64("save", record.ID), zap.Int("bytes", len(data)))
	return toSaveInfo(record), nil
}

// ExportGame writes the session to a save file. An empty path picks a
// timestamped name in the export directory.
func (s *GameServiceImpl) ExportGame(ctx context.Context, path string) (string, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return "", err
	}
	data, err := guild.Marshal(snap)
	if err != nil {
		return "", err
	}

	if path == "" {
		path = filepath.Join(s.opts.ExportDir, fmt.Sprintf("guild_master_save_%d.json", snap.Timestamp))
	}
	if err := s.files.Write(ctx, path, data); err != nil {
		return "", fmt.Errorf("failed to export save: %w", err)
	}

	s.logger.Info("save exported", zap.String("path", path))
	return path, nil
}

// ImportGame replaces the session with a save file and persists it.
func (s *GameServiceImpl) ImportGame(ctx context.Context, path string) (*primary.GameStatus, error) {
	data, err := s.files.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}
	snap, err := guild.Migrate(data, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.restore(ctx, snap); err != nil {
		return nil, err
	}
	if _, err := s.SaveGame(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("save imported", zap.String("path", path))
	return s.Status(ctx)
}

// ListSaves returns the newest stored snapshots in the slot.
func (s *GameServiceImpl) ListSaves(ctx context.Context, limit int) ([]*primary.SaveInfo, error) {
	records, err := s.snapshots.List(ctx, s.opts.Slot, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}
	saves := make([]*primary.SaveInfo, len(records))
	for i, r := range records {
		saves[i] = toSaveInfo(r)
	}
	return saves, nil
}

// Status summarizes the session.
func (s *GameServiceImpl) Status(ctx context.Context) (*primary.GameStatus, error) {
	st, err := s.state.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read game state: %w", err)
	}
	board, err := s.quests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quests: %w", err)
	}
	roster, err := s.adventurers.ListRoster(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	pool, err := s.adventurers.ListRecruits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recruits: %w", err)
	}

	status := &primary.GameStatus{
		Version:          st.Version,
		Gold:             st.Gold,
		TotalEarnings:    st.TotalEarnings,
		LifetimeEarnings: st.LifetimeEarnings,
		Influence:        st.Influence,
		GuildFame:        st.GuildFame,
		PrestigeLevel:    st.PrestigeLevel,
		Location:         st.CurrentLocation,
		LocationName:     guild.LocationDisplayName(st.CurrentLocation),
		TimeScale:        st.Time.TimeScale,
		Offline:          st.OfflineEarnings,
		QuestsTotal:      len(board),
		RosterSize:       len(roster),
		Recruits:         len(pool),
		LastSaved:        st.LastPersisted(),
	}
	for _, q := range board {
		if q.Unlocked {
			status.QuestsUnlocked++
		}
		if q.Running {
			status.QuestsRunning++
		}
		if q.Managed() {
			status.QuestsManaged++
		}
	}
	return status, nil
}

// ConfigureOfflineEarnings changes the offline-earnings settings.
func (s *GameServiceImpl) ConfigureOfflineEarnings(ctx context.Context, cfg offline.Config) error {
	if cfg.MaxDuration < 0 || cfg.Rate < 0 {
		return fmt.Errorf("offline earnings: max duration and rate must not be negative")
	}
	if _, err := s.state.Update(ctx, func(st *guild.State) { st.OfflineEarnings = cfg }); err != nil {
		return fmt.Errorf("failed to update game state: %w", err)
	}
	return nil
}

// SetTimeScale changes the real-time speed factor.
func (s *GameServiceImpl) SetTimeScale(ctx context.Context, scale float64) error {
	if scale <= 0 {
		return fmt.Errorf("time scale must be positive, got %v", scale)
	}
	if _, err := s.state.Update(ctx, func(st *guild.State) { st.Time.TimeScale = scale }); err != nil {
		return fmt.Errorf("failed to update game state: %w", err)
	}
	return nil
}

// snapshot collects the session into one value and stamps it with now.
// The stamp is written back so the live state matches what gets stored.
func (s *GameServiceImpl) snapshot(ctx context.Context) (guild.Snapshot, error) {
	board, err := s.quests.List(ctx)
	if err != nil {
		return guild.Snapshot{}, fmt.Errorf("failed to list quests: %w", err)
	}
	roster, err := s.adventurers.ListRoster(ctx)
	if err != nil {
		return guild.Snapshot{}, fmt.Errorf("failed to list roster: %w", err)
	}
	pool, err := s.adventurers.ListRecruits(ctx)
	if err != nil {
		return guild.Snapshot{}, fmt.Errorf("failed to list recruits: %w", err)
	}

	now := s.clock.Now().UnixMilli()
	st, err := s.state.Update(ctx, func(st *guild.State) {
		st.Timestamp = now
		st.Time.LastUpdate = now
	})
	if err != nil {
		return guild.Snapshot{}, fmt.Errorf("failed to update game state: %w", err)
	}

	return guild.Snapshot{
		State:           st,
		Quests:          board,
		Adventurers:     nonNil(roster),
		RecruitmentPool: nonNil(pool),
	}, nil
}

// restore loads a snapshot into the session stores and tops up the pool.
func (s *GameServiceImpl) restore(ctx context.Context, snap guild.Snapshot) error {
	if err := s.state.Put(ctx, snap.State); err != nil {
		return fmt.Errorf("failed to restore game state: %w", err)
	}
	if err := s.quests.ReplaceAll(ctx, snap.Quests); err != nil {
		return fmt.Errorf("failed to restore quests: %w", err)
	}
	if err := s.adventurers.ReplaceAll(ctx, snap.Adventurers, snap.RecruitmentPool); err != nil {
		return fmt.Errorf("failed to restore adventurers: %w", err)
	}
	if _, err := s.roster.FillRecruitmentPool(ctx); err != nil {
		return err
	}
	return nil
}

func nonNil(list []adventurer.Adventurer) []adventurer.Adventurer {
	if list == nil {
		return []adventurer.Adventurer{}
	}
	return list
}

func toSaveInfo(r *secondary.SaveRecord) *primary.SaveInfo {
	return &primary.SaveInfo{
		ID:      r.ID,
		Slot:    r.Slot,
		Version: r.Version,
		SavedAt: time.UnixMilli(r.SavedAt),
	}
}

// Ensure GameServiceImpl implements the interface.
var _ primary.GameService = (*GameServiceImpl)(nil)
