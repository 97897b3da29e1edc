package adventurer

import (
	"fmt"
	"slices"
	"strings"
)

// GiftType is one of the fixed gift categories.
type GiftType string

const (
	GiftPractical GiftType = "PRACTICAL"
	GiftMagical   GiftType = "MAGICAL"
	GiftLuxury    GiftType = "LUXURY"
	GiftRomantic  GiftType = "ROMANTIC"
	GiftFood      GiftType = "FOOD"
	GiftWeapons   GiftType = "WEAPONS"
)

// Affection deltas per preference bucket.
const (
	LovedGiftAffection   = 15
	NeutralGiftAffection = 5
	HatedGiftAffection   = -10
)

// GiftTypes returns the six gift categories in table order.
func GiftTypes() []GiftType {
	return []GiftType{GiftPractical, GiftMagical, GiftLuxury, GiftRomantic, GiftFood, GiftWeapons}
}

// ParseGiftType normalizes user input into a known gift type.
func ParseGiftType(s string) (GiftType, error) {
	g := GiftType(strings.ToUpper(strings.TrimSpace(s)))
	if slices.Contains(GiftTypes(), g) {
		return g, nil
	}
	return "", fmt.Errorf("unknown gift type %q", s)
}

// GiftPreferences partitions gift types into buckets. A generated
// adventurer has one loved, three neutral and one hated type; the sixth type
// falls in no bucket.
type GiftPreferences struct {
	Loves   []GiftType `json:"loves"`
	Neutral []GiftType `json:"neutral"`
	Hates   []GiftType `json:"hates"`
}

// AffectionDelta returns the affection change a gift causes.
// Loved beats neutral beats hated; anything unbucketed is 0.
func AffectionDelta(prefs GiftPreferences, gift GiftType) int {
	switch {
	case slices.Contains(prefs.Loves, gift):
		return LovedGiftAffection
	case slices.Contains(prefs.Neutral, gift):
		return NeutralGiftAffection
	case slices.Contains(prefs.Hates, gift):
		return HatedGiftAffection
	default:
		return 0
	}
}

// ReceiveGift applies a gift to the adventurer's affection, clamped to
// [0,100], and returns the unclamped delta.
func ReceiveGift(a *Adventurer, gift GiftType) int {
	delta := AffectionDelta(a.GiftPreferences, gift)
	a.Social.Affection = clamp(a.Social.Affection+delta, MinAffection, MaxAffection)
	return delta
}
