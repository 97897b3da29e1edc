package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/guildmaster/internal/ports/primary"
)

// QuestAdapter is a thin adapter that translates CLI operations to QuestService calls.
type QuestAdapter struct {
	service primary.QuestService
	out     io.Writer
}

// NewQuestAdapter creates a new QuestAdapter with the given service.
func NewQuestAdapter(service primary.QuestService, out io.Writer) *QuestAdapter {
	return &QuestAdapter{
		service: service,
		out:     out,
	}
}

// List prints the quest board, optionally for one location.
func (a *QuestAdapter) List(ctx context.Context, locationID string) error {
	quests, err := a.service.ListQuests(ctx, primary.QuestFilters{LocationID: locationID})
	if err != nil {
		return err
	}

	if len(quests) == 0 {
		fmt.Fprintln(a.out, "No quests found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-20s %-8s %3s %7s %9s  %-18s %s\n", "QUEST", "STATUS", "LV", "REWARD", "UPGRADE", "PROGRESS", "MANAGER")
	fmt.Fprintln(a.out, rule)
	for _, q := range quests {
		progress := fmt.Sprintf("%s %3.0f%%", progressBar(q.Progress, 10), q.Progress)
		if !q.Unlocked {
			progress = fmt.Sprintf("unlock: %d gold", q.UnlockCost)
		}
		manager := "-"
		if q.ManagerHired {
			manager = q.ManagerID
		}
		fmt.Fprintf(a.out, "%-20s %s %3d %7d %9d  %-18s %s\n",
			q.ID, statusLabel(q.Status()), q.Level, q.Reward, q.UpgradeCost, progress, manager)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show prints one quest in detail.
func (a *QuestAdapter) Show(ctx context.Context, questID string) error {
	q, err := a.service.GetQuest(ctx, questID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nQuest:    %s (%s)\n", q.Name, q.ID)
	fmt.Fprintf(a.out, "Location: %s\n", q.LocationName)
	if q.Description != "" {
		fmt.Fprintf(a.out, "About:    %s\n", q.Description)
	}
	fmt.Fprintf(a.out, "Status:   %s\n", statusLabel(q.Status()))
	fmt.Fprintf(a.out, "Level:    %d (reward %d, next %d)\n", q.Level, q.Reward, q.NextReward)
	fmt.Fprintf(a.out, "Upgrade:  %d gold\n", q.UpgradeCost)
	fmt.Fprintf(a.out, "Duration: %.1fs\n", q.BaseTimeMs/1000)
	if q.Running {
		fmt.Fprintf(a.out, "Progress: %s %.0f%%\n", progressBar(q.Progress, 20), q.Progress)
	}
	if q.ManagerHired {
		fmt.Fprintf(a.out, "Manager:  %s\n", q.ManagerID)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Start starts an idle quest.
func (a *QuestAdapter) Start(ctx context.Context, questID string) error {
	q, err := a.service.StartQuest(ctx, questID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ %s started (%.1fs)\n", q.Name, q.BaseTimeMs/1000)
	return nil
}

// Upgrade raises a quest's level.
func (a *QuestAdapter) Upgrade(ctx context.Context, questID string) error {
	resp, err := a.service.UpgradeQuest(ctx, questID)
	if err != nil {
		return err
	}

	q := resp.Quest
	fmt.Fprintf(a.out, "✓ %s upgraded to level %d for %d gold (reward now %d, next upgrade %d)\n",
		q.Name, q.Level, resp.Paid, q.Reward, q.UpgradeCost)
	return nil
}

// Unlock opens a locked quest.
func (a *QuestAdapter) Unlock(ctx context.Context, questID string) error {
	q, err := a.service.UnlockQuest(ctx, questID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ %s unlocked for %d gold\n", q.Name, q.UnlockCost)
	return nil
}
