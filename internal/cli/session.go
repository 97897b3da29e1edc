package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/guildmaster/internal/wire"
)

// withSession loads the latest save (settling offline earnings once), runs
// fn and saves the result. A failed fn leaves the save untouched.
func withSession(cmd *cobra.Command, fn func(ctx context.Context) error) error {
	ctx := cmd.Context()
	adapter := wire.GameAdapterWithOutput(cmd.OutOrStdout())
	if err := adapter.Load(ctx); err != nil {
		return err
	}

	if err := fn(ctx); err != nil {
		return err
	}

	_, err := wire.GameService().SaveGame(ctx)
	return err
}
