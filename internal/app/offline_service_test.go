package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/guildmaster/internal/core/quest"
)

func newTestOfflineService(away time.Duration, enabled bool) (*OfflineEarningsServiceImpl, *mockStateStore, *mockClock) {
	store := newMockStateStore(0)
	store.state.OfflineEarnings.Enabled = enabled
	goblin := catalogQuest("goblin_patrol")
	quest.ApplyManager(&goblin, "ADV-1")
	quests := newMockQuestRepository(goblin)
	clock := &mockClock{now: testEpoch.Add(away)}
	return NewOfflineEarningsService(store, store, quests, clock, zap.NewNop()), store, clock
}

func TestCalculateOfflineEarnings(t *testing.T) {
	service, store, _ := newTestOfflineService(80*time.Second, true)

	earnings, err := service.CalculateOfflineEarnings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 80*time.Second, earnings.Elapsed)
	assert.Equal(t, int64(290), earnings.Total)
	assert.Zero(t, store.state.Gold, "calculation must not credit")
}

func TestCalculateOfflineEarnings_Disabled(t *testing.T) {
	service, _, _ := newTestOfflineService(time.Hour, false)

	earnings, err := service.CalculateOfflineEarnings(context.Background())
	require.NoError(t, err)
	assert.Zero(t, earnings.Total)
}

func TestApplyOfflineEarnings_OncePerAbsence(t *testing.T) {
	service, store, clock := newTestOfflineService(31*time.Second, true)
	ctx := context.Background()

	earnings, err := service.CalculateOfflineEarnings(ctx)
	require.NoError(t, err)
	// Three goblin cycles (75) plus 15.5 baseline, floored.
	assert.Equal(t, int64(90), earnings.Total)
	require.NoError(t, service.ApplyOfflineEarnings(ctx, earnings))

	assert.Equal(t, 90.0, store.state.Gold)
	assert.Equal(t, 90.0, store.state.TotalEarnings)
	assert.Equal(t, 90.0, store.state.LifetimeEarnings)
	assert.Equal(t, clock.Now().UnixMilli(), store.state.Timestamp)

	again, err := service.CalculateOfflineEarnings(ctx)
	require.NoError(t, err)
	assert.Zero(t, again.Total, "settled absence must not pay again")
}

func TestApplyOfflineEarnings_Nil(t *testing.T) {
	service, store, _ := newTestOfflineService(time.Hour, true)
	require.NoError(t, service.ApplyOfflineEarnings(context.Background(), nil))
	assert.Zero(t, store.state.Gold)
}
