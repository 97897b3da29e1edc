package primary

import (
	"fmt"

	"github.com/example/guildmaster/internal/core/guard"
	"github.com/example/guildmaster/internal/core/guild"
)

// Sentinel errors returned by the services. Failures never mutate state;
// callers branch on them with errors.Is.
var (
	ErrInsufficientFunds  = guard.ErrInsufficientFunds
	ErrInvalidTransition  = guard.ErrInvalidTransition
	ErrQuestNotFound      = fmt.Errorf("quest %w", guard.ErrNotFound)
	ErrAdventurerNotFound = fmt.Errorf("adventurer %w", guard.ErrNotFound)
	ErrInvalidSave        = guild.ErrInvalidSave
)
