package app

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/example/guildmaster/internal/core/adventurer"
	"github.com/example/guildmaster/internal/core/guild"
	"github.com/example/guildmaster/internal/core/quest"
	"github.com/example/guildmaster/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockStateStore implements secondary.Ledger and secondary.StateRepository.
type mockStateStore struct {
	mu       sync.Mutex
	state    guild.State
	spendErr error
	credits  int
}

func newMockStateStore(gold float64) *mockStateStore {
	st := guild.NewState(testEpoch)
	st.Gold = gold
	return &mockStateStore{state: st}
}

func (m *mockStateStore) Gold(ctx context.Context) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Gold, nil
}

func (m *mockStateStore) Spend(ctx context.Context, cost int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.spendErr != nil {
		return m.spendErr
	}
	if !m.state.Debit(cost) {
		return secondary.ErrInsufficientFunds
	}
	return nil
}

func (m *mockStateStore) Credit(ctx context.Context, amount int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Credit(amount)
	m.credits++
	return nil
}

func (m *mockStateStore) Get(ctx context.Context) (guild.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, nil
}

func (m *mockStateStore) Put(ctx context.Context, state guild.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
	return nil
}

func (m *mockStateStore) Update(ctx context.Context, fn func(*guild.State)) (guild.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.state)
	return m.state, nil
}

// mockQuestRepository implements secondary.QuestRepository.
type mockQuestRepository struct {
	mu        sync.Mutex
	order     []string
	quests    map[string]quest.Quest
	updateErr error
}

func newMockQuestRepository(quests ...quest.Quest) *mockQuestRepository {
	m := &mockQuestRepository{}
	m.set(quests)
	return m
}

func (m *mockQuestRepository) set(quests []quest.Quest) {
	m.order = nil
	m.quests = make(map[string]quest.Quest)
	for _, q := range quests {
		m.order = append(m.order, q.ID)
		m.quests[q.ID] = q
	}
}

func (m *mockQuestRepository) List(ctx context.Context) ([]quest.Quest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]quest.Quest, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.quests[id])
	}
	return out, nil
}

func (m *mockQuestRepository) GetByID(ctx context.Context, id string) (quest.Quest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.quests[id]
	if !ok {
		return quest.Quest{}, secondary.ErrNotFound
	}
	return q, nil
}

func (m *mockQuestRepository) Update(ctx context.Context, q quest.Quest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.quests[q.ID]; !ok {
		return secondary.ErrNotFound
	}
	m.quests[q.ID] = q
	return nil
}

func (m *mockQuestRepository) ReplaceAll(ctx context.Context, quests []quest.Quest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.set(quests)
	return nil
}

func (m *mockQuestRepository) get(id string) quest.Quest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.quests[id]
}

// mockAdventurerRepository implements secondary.AdventurerRepository.
type mockAdventurerRepository struct {
	roster []adventurer.Adventurer
	pool   []adventurer.Adventurer
}

func newMockAdventurerRepository(roster, pool []adventurer.Adventurer) *mockAdventurerRepository {
	return &mockAdventurerRepository{roster: roster, pool: pool}
}

func findAdventurer(list []adventurer.Adventurer, id string) int {
	return slices.IndexFunc(list, func(a adventurer.Adventurer) bool { return a.ID == id })
}

func (m *mockAdventurerRepository) ListRecruits(ctx context.Context) ([]adventurer.Adventurer, error) {
	return slices.Clone(m.pool), nil
}

func (m *mockAdventurerRepository) ListRoster(ctx context.Context) ([]adventurer.Adventurer, error) {
	return slices.Clone(m.roster), nil
}

func (m *mockAdventurerRepository) GetByID(ctx context.Context, id string) (adventurer.Adventurer, error) {
	if i := findAdventurer(m.roster, id); i >= 0 {
		return m.roster[i], nil
	}
	if i := findAdventurer(m.pool, id); i >= 0 {
		return m.pool[i], nil
	}
	return adventurer.Adventurer{}, secondary.ErrNotFound
}

func (m *mockAdventurerRepository) Update(ctx context.Context, a adventurer.Adventurer) error {
	if i := findAdventurer(m.roster, a.ID); i >= 0 {
		m.roster[i] = a
		return nil
	}
	if i := findAdventurer(m.pool, a.ID); i >= 0 {
		m.pool[i] = a
		return nil
	}
	return secondary.ErrNotFound
}

func (m *mockAdventurerRepository) MoveToRoster(ctx context.Context, a adventurer.Adventurer) error {
	i := findAdventurer(m.pool, a.ID)
	if i < 0 {
		return secondary.ErrNotFound
	}
	m.pool = slices.Delete(m.pool, i, i+1)
	m.roster = append(m.roster, a)
	return nil
}

func (m *mockAdventurerRepository) AddRecruit(ctx context.Context, a adventurer.Adventurer) error {
	if findAdventurer(m.pool, a.ID) >= 0 || findAdventurer(m.roster, a.ID) >= 0 {
		return fmt.Errorf("adventurer %s already exists", a.ID)
	}
	m.pool = append(m.pool, a)
	return nil
}

func (m *mockAdventurerRepository) ReplaceAll(ctx context.Context, roster, pool []adventurer.Adventurer) error {
	m.roster = slices.Clone(roster)
	m.pool = slices.Clone(pool)
	return nil
}

// mockSnapshotRepository implements secondary.SnapshotRepository.
type mockSnapshotRepository struct {
	mu      sync.Mutex
	records []*secondary.SaveRecord
	nextID  int64
	saveErr error
	saves   int
}

func newMockSnapshotRepository() *mockSnapshotRepository {
	return &mockSnapshotRepository{}
}

func (m *mockSnapshotRepository) Save(ctx context.Context, record *secondary.SaveRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.nextID++
	m.saves++
	record.ID = m.nextID
	stored := *record
	stored.Payload = slices.Clone(record.Payload)
	m.records = append(m.records, &stored)
	return nil
}

func (m *mockSnapshotRepository) LoadLatest(ctx context.Context, slot string) (*secondary.SaveRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.records) - 1; i >= 0; i-- {
		if m.records[i].Slot == slot {
			return m.records[i], nil
		}
	}
	return nil, secondary.ErrNoSave
}

func (m *mockSnapshotRepository) List(ctx context.Context, slot string, limit int) ([]*secondary.SaveRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*secondary.SaveRecord
	for _, r := range m.records {
		if r.Slot == slot {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockSnapshotRepository) Prune(ctx context.Context, slot string, keep int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.records) <= keep {
		return 0, nil
	}
	pruned := int64(len(m.records) - keep)
	m.records = m.records[len(m.records)-keep:]
	return pruned, nil
}

func (m *mockSnapshotRepository) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// mockSaveFileStore implements secondary.SaveFileStore.
type mockSaveFileStore struct {
	files map[string][]byte
}

func newMockSaveFileStore() *mockSaveFileStore {
	return &mockSaveFileStore{files: make(map[string][]byte)}
}

func (m *mockSaveFileStore) Write(ctx context.Context, path string, data []byte) error {
	m.files[path] = slices.Clone(data)
	return nil
}

func (m *mockSaveFileStore) Read(ctx context.Context, path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("open %s: no such file", path)
	}
	return data, nil
}

// mockClock implements secondary.Clock.
type mockClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *mockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *mockClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var testEpoch = time.UnixMilli(1_700_000_000_000)

func catalogQuest(id string) quest.Quest {
	q, ok := quest.CatalogEntry(id)
	if !ok {
		panic("unknown catalog quest " + id)
	}
	return q
}
