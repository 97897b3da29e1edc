package app

import (
	"errors"
	"fmt"

	"github.com/example/guildmaster/internal/ports/primary"
	"github.com/example/guildmaster/internal/ports/secondary"
)

// questLookupError maps repository lookups onto the port sentinels.
func questLookupError(id string, err error) error {
	if errors.Is(err, secondary.ErrNotFound) {
		return fmt.Errorf("%w: %s", primary.ErrQuestNotFound, id)
	}
	return fmt.Errorf("failed to get quest %s: %w", id, err)
}

func adventurerLookupError(id string, err error) error {
	if errors.Is(err, secondary.ErrNotFound) {
		return fmt.Errorf("%w: %s", primary.ErrAdventurerNotFound, id)
	}
	return fmt.Errorf("failed to get adventurer %s: %w", id, err)
}

func spendError(err error) error {
	if errors.Is(err, secondary.ErrInsufficientFunds) {
		return fmt.Errorf("%w: %v", primary.ErrInsufficientFunds, err)
	}
	return fmt.Errorf("failed to spend gold: %w", err)
}
