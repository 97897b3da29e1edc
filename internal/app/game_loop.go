package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/example/guildmaster/internal/ports/primary"
	"github.com/example/guildmaster/internal/ports/secondary"
)

// Saver persists the session. GameService satisfies it.
type Saver interface {
	SaveGame(ctx context.Context) (*primary.SaveInfo, error)
}

// GameLoopOptions configures a GameLoop.
type GameLoopOptions struct {
	TickInterval     time.Duration
	AutosaveInterval time.Duration
	TimeScale        float64

	// OnTick, when set, sees every tick result. It runs on the ticker
	// goroutine.
	OnTick func(*primary.TickResult)
}

// GameLoop is the real-time scheduler: it feeds wall-clock deltas to the
// progression engine and autosaves on a separate cadence.
type GameLoop struct {
	progression primary.ProgressionService
	saver       Saver
	clock       secondary.Clock
	opts        GameLoopOptions
	logger      *zap.Logger
}

// NewGameLoop creates a game loop.
func NewGameLoop(progression primary.ProgressionService, saver Saver, clock secondary.Clock, opts GameLoopOptions, logger *zap.Logger) *GameLoop {
	if opts.TimeScale <= 0 {
		opts.TimeScale = 1
	}
	return &GameLoop{
		progression: progression,
		saver:       saver,
		clock:       clock,
		opts:        opts,
		logger:      logger,
	}
}

// Run ticks and autosaves until ctx is cancelled or a goroutine fails, then
// saves one last time.
func (l *GameLoop) Run(ctx context.Context) error {
	if l.opts.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", l.opts.TickInterval)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return l.tickLoop(gctx) })
	if l.opts.AutosaveInterval > 0 {
		g.Go(func() error { return l.autosaveLoop(gctx) })
	}
	runErr := g.Wait()

	if _, err := l.saver.SaveGame(context.WithoutCancel(ctx)); err != nil {
		return errors.Join(runErr, fmt.Errorf("final save: %w", err))
	}
	l.logger.Debug("game loop stopped")
	return runErr
}

func (l *GameLoop) tickLoop(ctx context.Context) error {
	ticker := time.NewTicker(l.opts.TickInterval)
	defer ticker.Stop()

	last := l.clock.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			now := l.clock.Now()
			delta := float64(now.Sub(last)) / float64(time.Millisecond) * l.opts.TimeScale
			last = now

			result, err := l.progression.Tick(ctx, delta)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("tick: %w", err)
			}
			if len(result.Completions) > 0 {
				l.logger.Debug("tick paid out",
					zap.Int("completions", len(result.Completions)),
					zap.Int64("gold", result.GoldEarned),
				)
			}
			if l.opts.OnTick != nil {
				l.opts.OnTick(result)
			}
		}
	}
}

func (l *GameLoop) autosaveLoop(ctx context.Context) error {
	ticker := time.NewTicker(l.opts.AutosaveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			info, err := l.saver.SaveGame(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("autosave: %w", err)
			}
			l.logger.Debug("autosaved", zap.Int64("save", info.ID))
		}
	}
}
