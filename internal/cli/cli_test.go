package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/guildmaster/internal/config"
	"github.com/example/guildmaster/internal/wire"
)

// The wire singletons are process-wide, so the whole command flow runs in a
// single test against one temporary data directory.
func TestCommandFlow(t *testing.T) {
	color.NoColor = true

	dir := t.TempDir()
	cfg := config.Default(dir)
	cfg.Seed = 42
	cfg.ExportDir = dir
	wire.Configure(cfg, zap.NewNop())
	t.Cleanup(func() { _ = wire.Close() })

	root := &cobra.Command{Use: "guildmaster", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(StatusCmd(), AdvanceCmd(), QuestsCmd(), QuestCmd(), RecruitsCmd(), HireCmd(), ExportCmd(), SavesCmd())

	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs(args)
		err := root.ExecuteContext(context.Background())
		return out.String(), err
	}

	out, err := run("status")
	require.NoError(t, err)
	assert.Contains(t, out, "A new guild opens its doors at the Starter Shack with 100 gold.")
	assert.Contains(t, out, "Roster:      0 hired, 3 recruits waiting")

	out, err = run("quest", "start", "goblin_patrol")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Goblin Patrol started (8.0s)")

	out, err = run("advance", "8000")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ goblin_patrol completed: 25 gold")

	out, err = run("status")
	require.NoError(t, err)
	assert.Contains(t, out, "Gold:        125 gold")

	_, err = run("quest", "start", "rat_extermination")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked")

	_, err = run("advance", "soon")
	require.ErrorContains(t, err, "invalid milliseconds")
	for _, arg := range []string{"Inf", "NaN", "+Inf"} {
		_, err = run("advance", arg)
		require.ErrorContains(t, err, "must be a finite, non-negative number", arg)
	}

	exportPath := filepath.Join(dir, "export.json")
	out, err = run("export", exportPath)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Exported save to "+exportPath)

	out, err = run("saves")
	require.NoError(t, err)
	assert.Contains(t, out, "default")
}

func TestGiftTypeList(t *testing.T) {
	assert.Equal(t, "practical, magical, luxury, romantic, food, weapons", giftTypeList())
}
