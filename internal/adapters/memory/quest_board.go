package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/example/guildmaster/internal/core/quest"
	"github.com/example/guildmaster/internal/ports/secondary"
)

// QuestBoard keeps quests keyed by id and remembers board order.
type QuestBoard struct {
	mu     sync.RWMutex
	order  []string
	quests map[string]quest.Quest
}

// NewQuestBoard creates a board holding quests in the given order.
func NewQuestBoard(quests []quest.Quest) *QuestBoard {
	b := &QuestBoard{}
	b.load(quests)
	return b
}

func (b *QuestBoard) load(quests []quest.Quest) {
	b.order = make([]string, 0, len(quests))
	b.quests = make(map[string]quest.Quest, len(quests))
	for _, q := range quests {
		if _, dup := b.quests[q.ID]; !dup {
			b.order = append(b.order, q.ID)
		}
		b.quests[q.ID] = q
	}
}

// List returns every quest in board order.
func (b *QuestBoard) List(ctx context.Context) ([]quest.Quest, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]quest.Quest, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.quests[id])
	}
	return out, nil
}

// GetByID retrieves a quest.
func (b *QuestBoard) GetByID(ctx context.Context, id string) (quest.Quest, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	q, ok := b.quests[id]
	if !ok {
		return quest.Quest{}, fmt.Errorf("quest %s: %w", id, secondary.ErrNotFound)
	}
	return q, nil
}

// Update stores a modified quest.
func (b *QuestBoard) Update(ctx context.Context, q quest.Quest) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.quests[q.ID]; !ok {
		return fmt.Errorf("quest %s: %w", q.ID, secondary.ErrNotFound)
	}
	b.quests[q.ID] = q
	return nil
}

// ReplaceAll swaps in a whole board.
func (b *QuestBoard) ReplaceAll(ctx context.Context, quests []quest.Quest) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.load(quests)
	return nil
}

var _ secondary.QuestRepository = (*QuestBoard)(nil)
