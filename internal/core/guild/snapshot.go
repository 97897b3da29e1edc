package guild

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/example/guildmaster/internal/core/adventurer"
	"github.com/example/guildmaster/internal/core/quest"
)

// ErrInvalidSave is returned when snapshot bytes cannot be decoded.
var ErrInvalidSave = errors.New("invalid save file")

// Snapshot is the complete persisted session. It marshals to a flat JSON
// object: the state fields sit next to the three collections.
type Snapshot struct {
	State
	Quests          []quest.Quest           `json:"quests"`
	Adventurers     []adventurer.Adventurer `json:"adventurers"`
	RecruitmentPool []adventurer.Adventurer `json:"recruitmentPool"`
}

// NewGame returns a new-game snapshot with the seed catalog, an empty
// roster and an empty recruitment pool. Filling the pool needs randomness
// and is left to the caller.
func NewGame(now time.Time) Snapshot {
	return Snapshot{
		State:           NewState(now),
		Quests:          quest.SeedCatalog(),
		Adventurers:     []adventurer.Adventurer{},
		RecruitmentPool: []adventurer.Adventurer{},
	}
}

// Marshal encodes the snapshot as indented JSON.
func Marshal(s Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Migrate decodes a stored snapshot and brings it up to the current shape.
// Missing top-level fields take new-game values, a missing or empty quest
// list becomes the seed catalog, a missing roster becomes empty, and every
// record is healed so its invariants hold.
func Migrate(data []byte, now time.Time) (Snapshot, error) {
	s := Snapshot{State: NewState(now)}
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidSave, err)
	}
	s.heal()
	return s, nil
}

func (s *Snapshot) heal() {
	s.State.heal()

	if len(s.Quests) == 0 {
		s.Quests = quest.SeedCatalog()
	}
	known := make(map[string]bool, len(s.Quests))
	quests := make([]quest.Quest, 0, len(s.Quests))
	for _, q := range s.Quests {
		if q.ID == "" || known[q.ID] {
			continue
		}
		known[q.ID] = true
		quests = append(quests, quest.Heal(q))
	}
	s.Quests = quests

	seen := map[string]bool{}
	s.Adventurers = healAdventurers(s.Adventurers, true, known, seen)
	s.RecruitmentPool = healAdventurers(s.RecruitmentPool, false, known, seen)
}

// healAdventurers keeps each id once across roster and pool, with the roster
// winning, and keeps the hired flag and quest assignments consistent.
func healAdventurers(list []adventurer.Adventurer, hired bool, quests, seen map[string]bool) []adventurer.Adventurer {
	out := make([]adventurer.Adventurer, 0, len(list))
	for _, a := range list {
		if a.ID == "" || seen[a.ID] {
			continue
		}
		seen[a.ID] = true

		a.Hired = hired
		if !hired || !quests[a.AssignedQuestID] {
			a.AssignedQuestID = ""
		}
		a.Social.Affection = min(max(a.Social.Affection, adventurer.MinAffection), adventurer.MaxAffection)
		out = append(out, a)
	}
	return out
}
