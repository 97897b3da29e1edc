// Package wire provides dependency injection for the guildmaster application.
// It creates singleton services with lazy initialization.
package wire

import (
	"database/sql"
	"io"
	"sync"

	"go.uber.org/zap"

	cliadapter "github.com/example/guildmaster/internal/adapters/cli"
	"github.com/example/guildmaster/internal/adapters/clock"
	"github.com/example/guildmaster/internal/adapters/filesystem"
	"github.com/example/guildmaster/internal/adapters/memory"
	"github.com/example/guildmaster/internal/adapters/sqlite"
	"github.com/example/guildmaster/internal/app"
	"github.com/example/guildmaster/internal/config"
	"github.com/example/guildmaster/internal/core/adventurer"
	"github.com/example/guildmaster/internal/core/guild"
	"github.com/example/guildmaster/internal/db"
	"github.com/example/guildmaster/internal/ports/primary"
)

var (
	cfg    *config.Config
	logger = zap.NewNop()

	database           *sql.DB
	questService       primary.QuestService
	progressionService primary.ProgressionService
	rosterService      primary.RosterService
	offlineService     primary.OfflineEarningsService
	gameService        *app.GameServiceImpl
	once               sync.Once
)

// Configure sets the configuration and logger used to build services.
// It must be called before any service is requested.
func Configure(c *config.Config, l *zap.Logger) {
	cfg = c
	if l != nil {
		logger = l
	}
}

// GameService returns the singleton GameService instance.
func GameService() primary.GameService {
	once.Do(initServices)
	return gameService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	if cfg == nil {
		dir, err := config.DefaultDir()
		if err != nil {
			logger.Fatal("failed to resolve data directory", zap.Error(err))
		}
		cfg = config.Default(dir)
	}

	var err error
	database, err = db.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.String("path", cfg.DBPath), zap.Error(err))
	}

	realClock := clock.Real{}

	// Session state lives in memory; snapshots and save files are the
	// durable copies.
	game := guild.NewGame(realClock.Now())
	state := memory.NewStateStore(game.State)
	board := memory.NewQuestBoard(game.Quests)
	roster := memory.NewRoster(game.Adventurers, game.RecruitmentPool)

	saves := sqlite.NewSaveRepository(database)
	files := filesystem.NewSaveFileStore()

	rng := adventurer.NewRNG()
	if cfg.Seed != 0 {
		rng = adventurer.SeededRNG(cfg.Seed)
	}
	generator := adventurer.NewGenerator(rng, adventurer.NewID)

	questService = app.NewQuestService(state, board, logger.Named("quest"))
	progressionService = app.NewProgressionService(state, board, logger.Named("progression"))
	rosterService = app.NewRosterService(state, roster, board, questService, generator, realClock, logger.Named("roster"))
	offlineService = app.NewOfflineEarningsService(state, state, board, realClock, logger.Named("offline"))
	gameService = app.NewGameService(state, board, roster, saves, files, rosterService, offlineService, realClock, app.GameOptions{
		Slot:      cfg.Slot,
		KeepSaves: cfg.KeepSaves,
		ExportDir: cfg.ExportDir,
		Offline:   cfg.OfflineConfig(),
		TimeScale: cfg.TimeScale,
	}, logger.Named("game"))
}

// GameLoop returns a new real-time loop over the singleton services.
// A non-positive timeScale falls back to the configured one. onTick may be
// nil.
func GameLoop(timeScale float64, onTick func(*primary.TickResult)) *app.GameLoop {
	once.Do(initServices)
	if timeScale <= 0 {
		timeScale = cfg.TimeScale
	}
	return app.NewGameLoop(progressionService, gameService, clock.Real{}, app.GameLoopOptions{
		TickInterval:     cfg.TickInterval,
		AutosaveInterval: cfg.AutosaveInterval,
		TimeScale:        timeScale,
		OnTick:           onTick,
	}, logger.Named("loop"))
}

// Close releases the database handle if services were built.
func Close() error {
	if database == nil {
		return nil
	}
	return database.Close()
}

// QuestAdapterWithOutput returns a new QuestAdapter writing to the given output.
func QuestAdapterWithOutput(out io.Writer) *cliadapter.QuestAdapter {
	once.Do(initServices)
	return cliadapter.NewQuestAdapter(questService, out)
}

// RosterAdapterWithOutput returns a new RosterAdapter writing to the given output.
func RosterAdapterWithOutput(out io.Writer) *cliadapter.RosterAdapter {
	once.Do(initServices)
	return cliadapter.NewRosterAdapter(rosterService, out)
}

// GameAdapterWithOutput returns a new GameAdapter writing to the given output.
func GameAdapterWithOutput(out io.Writer) *cliadapter.GameAdapter {
	once.Do(initServices)
	return cliadapter.NewGameAdapter(gameService, progressionService, out)
}
