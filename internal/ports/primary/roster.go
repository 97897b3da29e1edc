package primary

import (
	"context"

	"github.com/example/guildmaster/internal/core/adventurer"
)

// RosterService defines the primary port for recruiting and managing
// adventurers.
type RosterService interface {
	// ListRecruits returns the recruitment pool.
	ListRecruits(ctx context.Context) ([]*Adventurer, error)

	// ListRoster returns hired adventurers.
	ListRoster(ctx context.Context) ([]*Adventurer, error)

	// GetAdventurer looks an adventurer up in the roster or the pool.
	GetAdventurer(ctx context.Context, adventurerID string) (*Adventurer, error)

	// AdventurersByQuest returns roster members assigned to a quest.
	AdventurersByQuest(ctx context.Context, questID string) ([]*Adventurer, error)

	// FillRecruitmentPool tops the pool up to its standing size.
	FillRecruitmentPool(ctx context.Context) ([]*Adventurer, error)

	// Hire pays the hire cost, moves the recruit to the roster and
	// generates a replacement recruit.
	Hire(ctx context.Context, adventurerID string) (*HireResponse, error)

	// AssignToQuest makes a roster member the manager of a quest.
	AssignToQuest(ctx context.Context, adventurerID, questID string) error

	// GiveGift applies a gift and reports the affection change.
	GiveGift(ctx context.Context, adventurerID string, gift adventurer.GiftType) (*GiftResponse, error)
}

// HireResponse contains the result of a hire.
type HireResponse struct {
	Adventurer  *Adventurer
	Replacement *Adventurer
	Paid        int64
}

// GiftResponse contains the result of giving a gift.
type GiftResponse struct {
	Adventurer *Adventurer
	Delta      int
}

// Adventurer is an adventurer at the port boundary.
type Adventurer struct {
	adventurer.Adventurer
	ClassName string
}
