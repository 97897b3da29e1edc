package quest

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyUpgrade(t *testing.T) {
	q := catalogQuest(t, "goblin_patrol")

	paid := ApplyUpgrade(&q)
	assert.Equal(t, int64(35), paid)
	assert.Equal(t, 1, q.Level)
	assert.Equal(t, int64(47), q.UpgradeCost)

	paid = ApplyUpgrade(&q)
	assert.Equal(t, int64(47), paid)
	assert.Equal(t, 2, q.Level)
	assert.Equal(t, NextUpgradeCost(47, q.CostGrowth), q.UpgradeCost)
}

func TestApplyManagerForceStarts(t *testing.T) {
	q := catalogQuest(t, "goblin_patrol")
	ApplyManager(&q, "ADV-1")

	assert.True(t, q.ManagerHired)
	assert.Equal(t, "ADV-1", q.ManagerID)
	assert.True(t, q.Running)
	assert.Equal(t, q.BaseTimeMs, q.TimeRemainingMs)

	q.TimeRemainingMs = 100
	ApplyManager(&q, "ADV-2")
	assert.Equal(t, q.BaseTimeMs, q.TimeRemainingMs, "timer resets on reassignment")
}

func TestCompleteNotRunning(t *testing.T) {
	q := catalogQuest(t, "goblin_patrol")
	assert.Equal(t, int64(0), Complete(&q))
	assert.False(t, q.Running)
}

func TestCompleteUnmanagedStops(t *testing.T) {
	q := catalogQuest(t, "goblin_patrol")
	Arm(&q)
	assert.Equal(t, int64(25), Complete(&q))
	assert.False(t, q.Running)
	assert.Equal(t, StatusIdle, q.Status())
}

func TestCompleteManagedRearms(t *testing.T) {
	q := catalogQuest(t, "goblin_patrol")
	ApplyManager(&q, "ADV-1")
	q.TimeRemainingMs = -3

	assert.Equal(t, int64(25), Complete(&q))
	assert.True(t, q.Running)
	assert.Equal(t, q.BaseTimeMs, q.TimeRemainingMs)
}

func TestElapseCompletesOnceWhenDeltasSumToDuration(t *testing.T) {
	q := catalogQuest(t, "goblin_patrol")
	Arm(&q)

	var completions int64
	for _, d := range []float64{3000, 2500, 2500} {
		completions += Elapse(&q, d)
	}

	assert.Equal(t, int64(1), completions)
	assert.False(t, q.Running)
}

func TestElapseUnmanagedDropsOvershoot(t *testing.T) {
	q := catalogQuest(t, "goblin_patrol")
	Arm(&q)

	assert.Equal(t, int64(1), Elapse(&q, q.BaseTimeMs*5))
	assert.False(t, q.Running)
}

func TestElapseManagedThreeCycles(t *testing.T) {
	t.Run("three ticks of one cycle", func(t *testing.T) {
		q := catalogQuest(t, "goblin_patrol")
		ApplyManager(&q, "ADV-1")

		var completions int64
		for i := 0; i < 3; i++ {
			completions += Elapse(&q, q.BaseTimeMs)
		}
		assert.Equal(t, int64(3), completions)
		assert.True(t, q.Running)
		assert.Equal(t, q.BaseTimeMs, q.TimeRemainingMs)
	})

	t.Run("one tick of three cycles", func(t *testing.T) {
		q := catalogQuest(t, "goblin_patrol")
		ApplyManager(&q, "ADV-1")

		assert.Equal(t, int64(3), Elapse(&q, 3*q.BaseTimeMs))
		assert.True(t, q.Running)
		assert.Equal(t, q.BaseTimeMs, q.TimeRemainingMs)
	})

	t.Run("partial cycle carries over", func(t *testing.T) {
		q := catalogQuest(t, "goblin_patrol")
		ApplyManager(&q, "ADV-1")

		assert.Equal(t, int64(1), Elapse(&q, q.BaseTimeMs+1000))
		assert.Equal(t, q.BaseTimeMs-1000, q.TimeRemainingMs)
	})

	t.Run("mid-cycle start carries remainder", func(t *testing.T) {
		q := catalogQuest(t, "goblin_patrol")
		ApplyManager(&q, "ADV-1")
		q.TimeRemainingMs = 500

		assert.Equal(t, int64(3), Elapse(&q, 500+2*q.BaseTimeMs+250))
		assert.Equal(t, q.BaseTimeMs-250, q.TimeRemainingMs)
	})
}

func TestElapseHugeDeltaIsArithmetic(t *testing.T) {
	q := catalogQuest(t, "rat_extermination")
	q.Unlocked = true
	ApplyManager(&q, "ADV-1")

	done := make(chan int64, 1)
	go func() { done <- Elapse(&q, q.BaseTimeMs*5e7) }()

	select {
	case n := <-done:
		assert.Equal(t, int64(5e7), n)
		assert.True(t, q.Running)
		assert.Equal(t, q.BaseTimeMs, q.TimeRemainingMs)
	case <-time.After(time.Second):
		t.Fatal("Elapse did not return for a large delta")
	}
}

func TestElapseCapsCycles(t *testing.T) {
	q := catalogQuest(t, "goblin_patrol")
	ApplyManager(&q, "ADV-1")

	assert.Equal(t, int64(MaxCyclesPerElapse), Elapse(&q, math.MaxFloat64))
	assert.Equal(t, q.BaseTimeMs, q.TimeRemainingMs)
}

func TestElapseNonFiniteDeltaIsIgnored(t *testing.T) {
	for _, delta := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		q := catalogQuest(t, "goblin_patrol")
		ApplyManager(&q, "ADV-1")

		assert.Zero(t, Elapse(&q, delta))
		assert.True(t, q.Running)
		assert.Equal(t, q.BaseTimeMs, q.TimeRemainingMs)
		assert.Equal(t, 0.0, Progress(q))
	}
}

func TestElapseIdleQuestIsUntouched(t *testing.T) {
	q := catalogQuest(t, "goblin_patrol")
	assert.Zero(t, Elapse(&q, 10_000))
	assert.Equal(t, 0.0, q.TimeRemainingMs)
}

func TestElapseZeroDurationDoesNotSpin(t *testing.T) {
	q := catalogQuest(t, "goblin_patrol")
	q.BaseTimeMs = 0
	ApplyManager(&q, "ADV-1")

	assert.Equal(t, int64(1), Elapse(&q, 1))
}

func TestReleaseManager(t *testing.T) {
	q := catalogQuest(t, "goblin_patrol")
	ApplyManager(&q, "ADV-1")
	ReleaseManager(&q)

	if q.ManagerHired || q.ManagerID != "" {
		t.Fatalf("manager still set: %+v", q)
	}
	if !q.Running {
		t.Fatal("releasing a manager must not stop the current cycle")
	}
	if got := Elapse(&q, q.BaseTimeMs); got != 1 || q.Running {
		t.Errorf("Elapse() = %d running=%v, want one completion and idle", got, q.Running)
	}
}
