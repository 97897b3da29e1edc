package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/guildmaster/internal/core/adventurer"
	"github.com/example/guildmaster/internal/ports/secondary"
)

func TestRoster_MoveToRoster(t *testing.T) {
	ctx := context.Background()
	r := NewRoster(nil, []adventurer.Adventurer{{ID: "ADV-1"}, {ID: "ADV-2"}})

	a, err := r.GetByID(ctx, "ADV-1")
	require.NoError(t, err)
	a.Hired = true
	require.NoError(t, r.MoveToRoster(ctx, a))

	pool, _ := r.ListRecruits(ctx)
	roster, _ := r.ListRoster(ctx)
	require.Len(t, pool, 1)
	require.Len(t, roster, 1)
	assert.Equal(t, "ADV-2", pool[0].ID)
	assert.Equal(t, "ADV-1", roster[0].ID)
	assert.True(t, roster[0].Hired)

	err = r.MoveToRoster(ctx, a)
	assert.True(t, errors.Is(err, secondary.ErrNotFound), "already hired adventurer is not in the pool")
}

func TestRoster_UpdateFindsEitherList(t *testing.T) {
	ctx := context.Background()
	r := NewRoster([]adventurer.Adventurer{{ID: "ADV-1"}}, []adventurer.Adventurer{{ID: "ADV-2"}})

	require.NoError(t, r.Update(ctx, adventurer.Adventurer{ID: "ADV-1", Rank: "Veteran"}))
	require.NoError(t, r.Update(ctx, adventurer.Adventurer{ID: "ADV-2", Rank: "Recruit"}))

	a, _ := r.GetByID(ctx, "ADV-1")
	assert.Equal(t, "Veteran", a.Rank)
	b, _ := r.GetByID(ctx, "ADV-2")
	assert.Equal(t, "Recruit", b.Rank)

	err := r.Update(ctx, adventurer.Adventurer{ID: "ADV-9"})
	assert.True(t, errors.Is(err, secondary.ErrNotFound))
}

func TestRoster_AddRecruitRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	r := NewRoster([]adventurer.Adventurer{{ID: "ADV-1"}}, nil)

	require.NoError(t, r.AddRecruit(ctx, adventurer.Adventurer{ID: "ADV-2"}))
	assert.Error(t, r.AddRecruit(ctx, adventurer.Adventurer{ID: "ADV-1"}))
	assert.Error(t, r.AddRecruit(ctx, adventurer.Adventurer{ID: "ADV-2"}))
}
