package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/guildmaster/internal/core/offline"
	"github.com/example/guildmaster/internal/wire"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new guild, replacing the current one",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.GameAdapterWithOutput(cmd.OutOrStdout()).New(cmd.Context())
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show guild status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context) error {
			return wire.GameAdapterWithOutput(cmd.OutOrStdout()).Status(ctx)
		})
	},
}

var advanceCmd = &cobra.Command{
	Use:   "advance [ms]",
	Short: "Advance game time by a number of milliseconds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ms, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid milliseconds %q: %w", args[0], err)
		}
		if math.IsNaN(ms) || math.IsInf(ms, 0) || ms < 0 {
			return fmt.Errorf("invalid milliseconds %q: must be a finite, non-negative number", args[0])
		}
		return withSession(cmd, func(ctx context.Context) error {
			return wire.GameAdapterWithOutput(cmd.OutOrStdout()).Advance(ctx, ms)
		})
	},
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the guild in real time until interrupted",
	Long: `Runs quests in real time, printing completions as they happen and
autosaving on the configured interval. Stops on Ctrl-C or after --for.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		duration, _ := cmd.Flags().GetDuration("for")

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		if duration > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, duration)
			defer cancel()
		}

		adapter := wire.GameAdapterWithOutput(cmd.OutOrStdout())
		if err := adapter.Load(ctx); err != nil {
			return err
		}

		status, err := wire.GameService().Status(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Guild is open (x%g). Press Ctrl-C to close up shop.\n", status.TimeScale)
		err = wire.GameLoop(status.TimeScale, adapter.ReportTick).Run(ctx)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		return err
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Write the guild to a save file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		return withSession(cmd, func(ctx context.Context) error {
			return wire.GameAdapterWithOutput(cmd.OutOrStdout()).Export(ctx, path)
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Replace the guild with a save file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.GameAdapterWithOutput(cmd.OutOrStdout()).Import(cmd.Context(), args[0])
	},
}

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List stored snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return wire.GameAdapterWithOutput(cmd.OutOrStdout()).Saves(cmd.Context(), limit)
	},
}

var offlineCmd = &cobra.Command{
	Use:   "offline [on|off]",
	Short: "Turn offline earnings on or off",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var enabled bool
		switch args[0] {
		case "on":
			enabled = true
		case "off":
		default:
			return fmt.Errorf("expected on or off, got %q", args[0])
		}
		rate, _ := cmd.Flags().GetFloat64("rate")
		maxDuration, _ := cmd.Flags().GetDuration("max")

		return withSession(cmd, func(ctx context.Context) error {
			status, err := wire.GameService().Status(ctx)
			if err != nil {
				return err
			}
			cfg := status.Offline
			cfg.Enabled = enabled
			if cmd.Flags().Changed("rate") {
				cfg.Rate = rate
			}
			if cmd.Flags().Changed("max") {
				cfg.MaxDuration = maxDuration.Milliseconds()
			}
			if err := wire.GameService().ConfigureOfflineEarnings(ctx, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Offline earnings %s\n", args[0])
			return nil
		})
	},
}

var timeScaleCmd = &cobra.Command{
	Use:   "timescale [factor]",
	Short: "Set how fast game time runs during play",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scale, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid time scale %q: %w", args[0], err)
		}
		return withSession(cmd, func(ctx context.Context) error {
			if err := wire.GameService().SetTimeScale(ctx, scale); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Time scale set to x%g\n", scale)
			return nil
		})
	},
}

// NewCmd returns the new-game command.
func NewCmd() *cobra.Command { return newCmd }

// StatusCmd returns the status command.
func StatusCmd() *cobra.Command { return statusCmd }

// AdvanceCmd returns the advance command.
func AdvanceCmd() *cobra.Command { return advanceCmd }

// PlayCmd returns the play command.
func PlayCmd() *cobra.Command {
	playCmd.Flags().Duration("for", 0, "Stop after this long (default: run until interrupted)")
	return playCmd
}

// ExportCmd returns the export command.
func ExportCmd() *cobra.Command { return exportCmd }

// ImportCmd returns the import command.
func ImportCmd() *cobra.Command { return importCmd }

// SavesCmd returns the saves command.
func SavesCmd() *cobra.Command {
	savesCmd.Flags().IntP("limit", "n", 10, "Number of saves to show")
	return savesCmd
}

// OfflineCmd returns the offline command.
func OfflineCmd() *cobra.Command {
	offlineCmd.Flags().Float64("rate", offline.DefaultRate, "Baseline gold per second while away")
	offlineCmd.Flags().Duration("max", time.Duration(offline.DefaultMaxDurationMs)*time.Millisecond, "Longest absence that pays")
	return offlineCmd
}

// TimeScaleCmd returns the timescale command.
func TimeScaleCmd() *cobra.Command { return timeScaleCmd }
