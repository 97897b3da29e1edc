package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/guildmaster/internal/core/adventurer"
	"github.com/example/guildmaster/internal/wire"
)

var recruitsCmd = &cobra.Command{
	Use:   "recruits",
	Short: "Show adventurers available for hire",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context) error {
			return wire.RosterAdapterWithOutput(cmd.OutOrStdout()).Recruits(ctx)
		})
	},
}

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Show hired adventurers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context) error {
			return wire.RosterAdapterWithOutput(cmd.OutOrStdout()).Roster(ctx)
		})
	},
}

var adventurerCmd = &cobra.Command{
	Use:   "adventurer [adventurer-id]",
	Short: "Show one adventurer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context) error {
			return wire.RosterAdapterWithOutput(cmd.OutOrStdout()).Show(ctx, args[0])
		})
	},
}

var hireCmd = &cobra.Command{
	Use:   "hire [adventurer-id]",
	Short: "Hire a recruit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context) error {
			return wire.RosterAdapterWithOutput(cmd.OutOrStdout()).Hire(ctx, args[0])
		})
	},
}

var assignCmd = &cobra.Command{
	Use:   "assign [adventurer-id] [quest-id]",
	Short: "Make an adventurer manage a quest",
	Long:  "Assigns a hired adventurer as the manager of a quest. Managed quests restart themselves.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context) error {
			return wire.RosterAdapterWithOutput(cmd.OutOrStdout()).Assign(ctx, args[0], args[1])
		})
	},
}

var giftCmd = &cobra.Command{
	Use:   "gift [adventurer-id] [gift-type]",
	Short: "Give an adventurer a gift",
	Long:  fmt.Sprintf("Gives a gift to an adventurer. Gift types: %s", giftTypeList()),
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context) error {
			return wire.RosterAdapterWithOutput(cmd.OutOrStdout()).Gift(ctx, args[0], args[1])
		})
	},
}

func giftTypeList() string {
	types := adventurer.GiftTypes()
	names := make([]string, len(types))
	for i, g := range types {
		names[i] = strings.ToLower(string(g))
	}
	return strings.Join(names, ", ")
}

// RecruitsCmd returns the recruits command.
func RecruitsCmd() *cobra.Command { return recruitsCmd }

// RosterCmd returns the roster command.
func RosterCmd() *cobra.Command { return rosterCmd }

// AdventurerCmd returns the adventurer command.
func AdventurerCmd() *cobra.Command { return adventurerCmd }

// HireCmd returns the hire command.
func HireCmd() *cobra.Command { return hireCmd }

// AssignCmd returns the assign command.
func AssignCmd() *cobra.Command { return assignCmd }

// GiftCmd returns the gift command.
func GiftCmd() *cobra.Command { return giftCmd }
