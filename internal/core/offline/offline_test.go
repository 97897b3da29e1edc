package offline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/example/guildmaster/internal/core/quest"
)

var epoch = time.UnixMilli(1_700_000_000_000)

func enabled() Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	return cfg
}

func managedGoblin() quest.Quest {
	q, _ := quest.CatalogEntry("goblin_patrol")
	quest.ApplyManager(&q, "ADV-1")
	return q
}

func TestCalculate_Disabled(t *testing.T) {
	got := Calculate(epoch.Add(time.Hour), epoch, []quest.Quest{managedGoblin()}, DefaultConfig())
	assert.Equal(t, Result{}, got)
}

func TestCalculate_Threshold(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    int64
	}{
		{"just under threshold", 29 * time.Second, 0},
		{"exactly threshold", 30 * time.Second, 15},
		{"just over threshold", 31 * time.Second, 15},
		{"one minute", time.Minute, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(epoch.Add(tt.elapsed), epoch, nil, enabled())
			assert.Equal(t, tt.want, got.Total)
		})
	}
}

func TestCalculate_ManagedAndBaselineBothPay(t *testing.T) {
	// 80s is 10 goblin cycles at 25 gold plus 40 gold baseline.
	got := Calculate(epoch.Add(80*time.Second), epoch, []quest.Quest{managedGoblin()}, enabled())

	assert.Equal(t, int64(80_000), got.ElapsedMs)
	assert.Equal(t, 250.0, got.Managed)
	assert.Equal(t, 40.0, got.Baseline)
	assert.Equal(t, int64(290), got.Total)
}

func TestCalculate_IgnoresUnmanagedAndIdle(t *testing.T) {
	running, _ := quest.CatalogEntry("herb_collection")
	quest.Arm(&running)

	idleManaged := managedGoblin()
	idleManaged.Running = false

	got := Calculate(epoch.Add(time.Minute), epoch, []quest.Quest{running, idleManaged}, enabled())
	assert.Zero(t, got.Managed)
	assert.Equal(t, int64(30), got.Total)
}

func TestCalculate_CapsAtMaxDuration(t *testing.T) {
	cfg := enabled()
	cfg.MaxDuration = 60_000

	got := Calculate(epoch.Add(10*time.Hour), epoch, nil, cfg)
	assert.Equal(t, int64(60_000), got.ElapsedMs)
	assert.Equal(t, int64(30), got.Total)
}

func TestCalculate_ClockSkew(t *testing.T) {
	got := Calculate(epoch, epoch.Add(time.Hour), []quest.Quest{managedGoblin()}, enabled())
	assert.Equal(t, Result{}, got)
}

func TestCalculate_DoesNotTouchTimers(t *testing.T) {
	q := managedGoblin()
	q.TimeRemainingMs = 1234
	quests := []quest.Quest{q}

	Calculate(epoch.Add(time.Hour), epoch, quests, enabled())
	assert.Equal(t, 1234.0, quests[0].TimeRemainingMs)
}
