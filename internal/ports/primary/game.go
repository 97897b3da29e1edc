package primary

import (
	"context"
	"time"

	"github.com/example/guildmaster/internal/core/offline"
)

// OfflineEarningsService computes and applies the payout for time away.
// Calculate is pure; Apply credits the ledger and must run once per load.
type OfflineEarningsService interface {
	CalculateOfflineEarnings(ctx context.Context) (*OfflineEarnings, error)
	ApplyOfflineEarnings(ctx context.Context, earnings *OfflineEarnings) error
}

// OfflineEarnings is a computed offline payout.
type OfflineEarnings struct {
	Elapsed  time.Duration
	Managed  float64
	Baseline float64
	Total    int64
}

// GameService drives the session lifecycle: new game, load, save and
// save-file exchange.
type GameService interface {
	// NewGame resets the session to new-game values and saves it.
	NewGame(ctx context.Context) (*GameStatus, error)

	// LoadGame restores the latest save, or starts a new game when there is
	// none, and applies offline earnings once.
	LoadGame(ctx context.Context) (*LoadGameResponse, error)

	// SaveGame persists the session.
	SaveGame(ctx context.Context) (*SaveInfo, error)

	// ExportGame writes the session to a save file and returns its path.
	ExportGame(ctx context.Context, path string) (string, error)

	// ImportGame replaces the session with a save file and persists it.
	ImportGame(ctx context.Context, path string) (*GameStatus, error)

	// ListSaves returns the newest stored snapshots.
	ListSaves(ctx context.Context, limit int) ([]*SaveInfo, error)

	// Status summarizes the session.
	Status(ctx context.Context) (*GameStatus, error)

	// ConfigureOfflineEarnings changes the offline-earnings settings.
	ConfigureOfflineEarnings(ctx context.Context, cfg offline.Config) error

	// SetTimeScale changes the real-time speed factor.
	SetTimeScale(ctx context.Context, scale float64) error
}

// LoadGameResponse contains the result of a load.
type LoadGameResponse struct {
	Status  *GameStatus
	Fresh   bool
	Offline *OfflineEarnings
}

// SaveInfo describes one stored snapshot.
type SaveInfo struct {
	ID      int64
	Slot    string
	Version string
	SavedAt time.Time
}

// GameStatus summarizes a session.
type GameStatus struct {
	Version          string
	Gold             float64
	TotalEarnings    float64
	LifetimeEarnings float64
	Influence        float64
	GuildFame        float64
	PrestigeLevel    int
	Location         string
	LocationName     string
	TimeScale        float64
	Offline          offline.Config
	QuestsUnlocked   int
	QuestsRunning    int
	QuestsManaged    int
	QuestsTotal      int
	RosterSize       int
	Recruits         int
	LastSaved        time.Time
}
