package adventurer

import (
	"strings"

	"github.com/google/uuid"
)

// IDSource produces adventurer ids.
type IDSource func() string

// NewID generates an adventurer ID of the form ADV-XXXXXXXX.
func NewID() string {
	return "ADV-" + strings.ToUpper(uuid.New().String()[:8])
}
