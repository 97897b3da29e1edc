package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/guildmaster/internal/ports/primary"
)

// GameAdapter is a thin adapter for session lifecycle and progression commands.
type GameAdapter struct {
	game        primary.GameService
	progression primary.ProgressionService
	out         io.Writer
}

// NewGameAdapter creates a new GameAdapter with the given services.
func NewGameAdapter(game primary.GameService, progression primary.ProgressionService, out io.Writer) *GameAdapter {
	return &GameAdapter{
		game:        game,
		progression: progression,
		out:         out,
	}
}

// Load restores the session and reports offline earnings.
func (a *GameAdapter) Load(ctx context.Context) error {
	resp, err := a.game.LoadGame(ctx)
	if err != nil {
		return err
	}

	if resp.Fresh {
		fmt.Fprintf(a.out, "A new guild opens its doors at the %s with %s.\n", resp.Status.LocationName, gold(resp.Status.Gold))
		return nil
	}
	if resp.Offline != nil && resp.Offline.Total > 0 {
		fmt.Fprintf(a.out, "While you were away (%s) your guild earned %s.\n",
			humanDuration(resp.Offline.Elapsed), gold(float64(resp.Offline.Total)))
	}
	return nil
}

// New starts over.
func (a *GameAdapter) New(ctx context.Context) error {
	status, err := a.game.NewGame(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ New guild founded at the %s with %s\n", status.LocationName, gold(status.Gold))
	return nil
}

// Status prints a summary of the guild.
func (a *GameAdapter) Status(ctx context.Context) error {
	status, err := a.game.Status(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\n%s\n", status.LocationName)
	fmt.Fprintln(a.out, rule)
	fmt.Fprintf(a.out, "Gold:        %s\n", gold(status.Gold))
	fmt.Fprintf(a.out, "Earned:      %.0f (lifetime %.0f)\n", status.TotalEarnings, status.LifetimeEarnings)
	fmt.Fprintf(a.out, "Quests:      %d/%d unlocked, %d running, %d managed\n",
		status.QuestsUnlocked, status.QuestsTotal, status.QuestsRunning, status.QuestsManaged)
	fmt.Fprintf(a.out, "Roster:      %d hired, %d recruits waiting\n", status.RosterSize, status.Recruits)
	fmt.Fprintf(a.out, "Time scale:  x%g\n", status.TimeScale)
	if status.Offline.Enabled {
		fmt.Fprintf(a.out, "Offline:     %g gold/s, capped at %s\n", status.Offline.Rate, humanDuration(msDuration(status.Offline.MaxDuration)))
	} else {
		fmt.Fprintln(a.out, "Offline:     disabled")
	}
	fmt.Fprintf(a.out, "Last saved:  %s\n", status.LastSaved.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(a.out)

	return nil
}

// Advance moves game time forward by ms and reports completions.
func (a *GameAdapter) Advance(ctx context.Context, ms float64) error {
	result, err := a.progression.Tick(ctx, ms)
	if err != nil {
		return err
	}

	a.ReportTick(result)
	if len(result.Completions) == 0 {
		fmt.Fprintln(a.out, "Nothing finished.")
	}
	return nil
}

// ReportTick prints the completions of one tick.
func (a *GameAdapter) ReportTick(result *primary.TickResult) {
	for _, c := range result.Completions {
		if c.Times > 1 {
			fmt.Fprintf(a.out, "✓ %s completed %d times: %s\n", c.QuestID, c.Times, gold(float64(c.Gold)))
			continue
		}
		fmt.Fprintf(a.out, "✓ %s completed: %s\n", c.QuestID, gold(float64(c.Gold)))
	}
}

// Export writes a save file.
func (a *GameAdapter) Export(ctx context.Context, path string) error {
	written, err := a.game.ExportGame(ctx, path)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Exported save to %s\n", written)
	return nil
}

// Import replaces the session with a save file.
func (a *GameAdapter) Import(ctx context.Context, path string) error {
	status, err := a.game.ImportGame(ctx, path)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Imported %s: %s, %d adventurers\n", path, gold(status.Gold), status.RosterSize)
	return nil
}

// Saves prints the save history.
func (a *GameAdapter) Saves(ctx context.Context, limit int) error {
	saves, err := a.game.ListSaves(ctx, limit)
	if err != nil {
		return err
	}

	if len(saves) == 0 {
		fmt.Fprintln(a.out, "No saves found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-6s %-10s %-8s %s\n", "ID", "SLOT", "VERSION", "SAVED AT")
	fmt.Fprintln(a.out, rule)
	for _, s := range saves {
		fmt.Fprintf(a.out, "%-6d %-10s %-8s %s\n", s.ID, s.Slot, s.Version, s.SavedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintln(a.out)

	return nil
}
