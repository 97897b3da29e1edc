package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/example/guildmaster/internal/cli"
	"github.com/example/guildmaster/internal/config"
	"github.com/example/guildmaster/internal/version"
	"github.com/example/guildmaster/internal/wire"
)

var (
	verbose bool
	dataDir string

	logger *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "guildmaster",
		Short:   "Guild Master - an idle adventurers' guild",
		Version: version.String(),
		Long: `Guild Master runs an adventurers' guild. Quests earn gold on timers,
upgrades raise their rewards, and hired adventurers manage quests so they
restart on their own. Progress is saved locally after every command.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zcfg := zap.NewProductionConfig()
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = zcfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			if dataDir == "" {
				if dataDir, err = config.DefaultDir(); err != nil {
					return err
				}
			}
			cfg, err := config.LoadConfig(dataDir)
			if err != nil {
				return err
			}
			wire.Configure(cfg, logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if err := wire.Close(); err != nil && logger != nil {
				logger.Warn("failed to close database", zap.Error(err))
			}
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding config.yaml and the save database (default: ~/.guildmaster)")

	// Session
	rootCmd.AddCommand(cli.NewCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.AdvanceCmd())
	rootCmd.AddCommand(cli.PlayCmd())
	rootCmd.AddCommand(cli.OfflineCmd())
	rootCmd.AddCommand(cli.TimeScaleCmd())

	// Quests
	rootCmd.AddCommand(cli.QuestsCmd())
	rootCmd.AddCommand(cli.QuestCmd())

	// Adventurers
	rootCmd.AddCommand(cli.RecruitsCmd())
	rootCmd.AddCommand(cli.RosterCmd())
	rootCmd.AddCommand(cli.AdventurerCmd())
	rootCmd.AddCommand(cli.HireCmd())
	rootCmd.AddCommand(cli.AssignCmd())
	rootCmd.AddCommand(cli.GiftCmd())

	// Save files
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.ImportCmd())
	rootCmd.AddCommand(cli.SavesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
