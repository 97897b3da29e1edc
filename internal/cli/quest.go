package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/guildmaster/internal/wire"
)

var questsCmd = &cobra.Command{
	Use:   "quests",
	Short: "Show the quest board",
	RunE: func(cmd *cobra.Command, args []string) error {
		location, _ := cmd.Flags().GetString("location")
		return withSession(cmd, func(ctx context.Context) error {
			return wire.QuestAdapterWithOutput(cmd.OutOrStdout()).List(ctx, location)
		})
	},
}

var questCmd = &cobra.Command{
	Use:   "quest",
	Short: "Act on a single quest",
	Long:  "Start, upgrade, unlock or inspect one quest on the board",
}

var questShowCmd = &cobra.Command{
	Use:   "show [quest-id]",
	Short: "Show quest details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context) error {
			return wire.QuestAdapterWithOutput(cmd.OutOrStdout()).Show(ctx, args[0])
		})
	},
}

var questStartCmd = &cobra.Command{
	Use:   "start [quest-id]",
	Short: "Start an idle quest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context) error {
			return wire.QuestAdapterWithOutput(cmd.OutOrStdout()).Start(ctx, args[0])
		})
	},
}

var questUpgradeCmd = &cobra.Command{
	Use:   "upgrade [quest-id]",
	Short: "Pay to raise a quest's level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context) error {
			return wire.QuestAdapterWithOutput(cmd.OutOrStdout()).Upgrade(ctx, args[0])
		})
	},
}

var questUnlockCmd = &cobra.Command{
	Use:   "unlock [quest-id]",
	Short: "Pay to unlock a quest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context) error {
			return wire.QuestAdapterWithOutput(cmd.OutOrStdout()).Unlock(ctx, args[0])
		})
	},
}

// QuestsCmd returns the quest board command.
func QuestsCmd() *cobra.Command {
	questsCmd.Flags().StringP("location", "l", "", "Only show quests at this location")
	return questsCmd
}

// QuestCmd returns the quest command.
func QuestCmd() *cobra.Command {
	questCmd.AddCommand(questShowCmd)
	questCmd.AddCommand(questStartCmd)
	questCmd.AddCommand(questUpgradeCmd)
	questCmd.AddCommand(questUnlockCmd)

	return questCmd
}
