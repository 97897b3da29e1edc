package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/example/guildmaster/internal/core/adventurer"
	"github.com/example/guildmaster/internal/ports/primary"
)

// RosterAdapter is a thin adapter that translates CLI operations to RosterService calls.
type RosterAdapter struct {
	service primary.RosterService
	out     io.Writer
}

// NewRosterAdapter creates a new RosterAdapter with the given service.
func NewRosterAdapter(service primary.RosterService, out io.Writer) *RosterAdapter {
	return &RosterAdapter{
		service: service,
		out:     out,
	}
}

// Recruits prints the recruitment pool.
func (a *RosterAdapter) Recruits(ctx context.Context) error {
	recruits, err := a.service.ListRecruits(ctx)
	if err != nil {
		return err
	}
	a.printTable(recruits, "No recruits available", func(adv *primary.Adventurer) string {
		return fmt.Sprintf("%d gold", adv.HireCost)
	}, "HIRE COST")
	return nil
}

// Roster prints hired adventurers.
func (a *RosterAdapter) Roster(ctx context.Context) error {
	roster, err := a.service.ListRoster(ctx)
	if err != nil {
		return err
	}
	a.printTable(roster, "Nobody has been hired yet", func(adv *primary.Adventurer) string {
		if adv.AssignedQuestID == "" {
			return "-"
		}
		return adv.AssignedQuestID
	}, "QUEST")
	return nil
}

func (a *RosterAdapter) printTable(list []*primary.Adventurer, empty string, last func(*primary.Adventurer) string, lastHeader string) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, empty)
		return
	}

	fmt.Fprintf(a.out, "\n%-13s %-24s %-22s %4s %4s %4s %4s %4s  %s\n",
		"ID", "NAME", "CLASS", "STR", "AGI", "INT", "CHA", "AFF", lastHeader)
	fmt.Fprintln(a.out, rule)
	for _, adv := range list {
		class := fmt.Sprintf("%s/%s", adv.ClassName, adv.Specialization)
		fmt.Fprintf(a.out, "%-13s %-24s %-22s %4d %4d %4d %4d %4d  %s\n",
			adv.ID, adv.Name, class,
			adv.Stats.Strength, adv.Stats.Agility, adv.Stats.Intellect, adv.Stats.Charisma,
			adv.Social.Affection, last(adv))
	}
	fmt.Fprintln(a.out)
}

// Show prints one adventurer in detail.
func (a *RosterAdapter) Show(ctx context.Context, adventurerID string) error {
	adv, err := a.service.GetAdventurer(ctx, adventurerID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\n%s (%s)\n", adv.Name, adv.ID)
	fmt.Fprintf(a.out, "%s\n", adv.Bio)
	fmt.Fprintf(a.out, "Rank:      %s\n", adv.Rank)
	fmt.Fprintf(a.out, "Traits:    %s\n", strings.Join(adv.PersonalityTraits, ", "))
	fmt.Fprintf(a.out, "Hobbies:   %s\n", strings.Join(adv.Hobbies, ", "))
	fmt.Fprintf(a.out, "Social:    affection %d, comfort %d, trust %d, loyalty %d\n",
		adv.Social.Affection, adv.Social.Comfort, adv.Social.Trust, adv.Social.Loyalty)
	fmt.Fprintf(a.out, "Loves:     %s\n", joinGifts(adv.GiftPreferences.Loves))
	fmt.Fprintf(a.out, "Hates:     %s\n", joinGifts(adv.GiftPreferences.Hates))
	if adv.Hired {
		fmt.Fprintf(a.out, "Salary:    %d gold\n", adv.Salary)
		if adv.AssignedQuestID != "" {
			fmt.Fprintf(a.out, "Managing:  %s\n", adv.AssignedQuestID)
		}
	} else {
		fmt.Fprintf(a.out, "Hire cost: %d gold\n", adv.HireCost)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Hire hires a recruit.
func (a *RosterAdapter) Hire(ctx context.Context, adventurerID string) error {
	resp, err := a.service.Hire(ctx, adventurerID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Hired %s for %d gold\n", resp.Adventurer.Name, resp.Paid)
	fmt.Fprintf(a.out, "  New recruit: %s (%s, %s)\n", resp.Replacement.Name, resp.Replacement.ID, resp.Replacement.ClassName)
	return nil
}

// Assign makes an adventurer manage a quest.
func (a *RosterAdapter) Assign(ctx context.Context, adventurerID, questID string) error {
	if err := a.service.AssignToQuest(ctx, adventurerID, questID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ %s now manages %s\n", adventurerID, questID)
	return nil
}

// Gift gives an adventurer a gift.
func (a *RosterAdapter) Gift(ctx context.Context, adventurerID, giftType string) error {
	gift, err := adventurer.ParseGiftType(giftType)
	if err != nil {
		return err
	}

	resp, err := a.service.GiveGift(ctx, adventurerID, gift)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ %s received %s: affection %s (now %d)\n",
		resp.Adventurer.Name, gift, signed(resp.Delta), resp.Adventurer.Social.Affection)
	return nil
}

func joinGifts(gifts []adventurer.GiftType) string {
	if len(gifts) == 0 {
		return "-"
	}
	names := make([]string, len(gifts))
	for i, g := range gifts {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}
