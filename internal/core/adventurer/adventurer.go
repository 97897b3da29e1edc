// Package adventurer contains the pure business logic for adventurers:
// the record shape, the fixed generation tables, the randomized generator,
// gift affection rules and hire/assign guards.
package adventurer

// Rank every recruit starts with.
const RankRecruit = "Recruit"

// Career defaults for a freshly generated recruit.
const (
	DefaultHireCost int64 = 100
	DefaultSalary   int64 = 50
)

// Social stat bounds and defaults.
const (
	MinAffection = 0
	MaxAffection = 100

	DefaultAffection = 0
	DefaultComfort   = 50
	DefaultTrust     = 50
	DefaultLoyalty   = 50
)

// Stats are the four core attributes rolled at generation.
type Stats struct {
	Strength  int `json:"strength"`
	Agility   int `json:"agility"`
	Intellect int `json:"intellect"`
	Charisma  int `json:"charisma"`
}

// Social holds the bounded relationship attributes.
type Social struct {
	Affection int `json:"affection"`
	Comfort   int `json:"comfort"`
	Trust     int `json:"trust"`
	Loyalty   int `json:"loyalty"`
}

// Skill is one progression track. No rule advances skills yet; the fields
// are carried so saves keep them.
type Skill struct {
	Level int `json:"level"`
	XP    int `json:"xp"`
	MaxXP int `json:"maxXp"`
}

// Skills groups the three skill tracks.
type Skills struct {
	Combat     Skill `json:"combat"`
	Survival   Skill `json:"survival"`
	Leadership Skill `json:"leadership"`
}

// Adventurer is a recruitable character. JSON field names match the
// persisted save format.
type Adventurer struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Class          string `json:"class"`
	Specialization string `json:"specialization"`
	Bio            string `json:"bio"`

	Stats  Stats  `json:"stats"`
	Social Social `json:"social"`
	Skills Skills `json:"skills"`

	PersonalityTraits []string        `json:"personalityTraits"`
	Hobbies           []string        `json:"hobbies"`
	GiftPreferences   GiftPreferences `json:"giftPreferences"`

	Salary          int64  `json:"salary"`
	Rank            string `json:"rank"`
	AssignedQuestID string `json:"assignedQuestId"`
	HireCost        int64  `json:"hireCost"`
	Hired           bool   `json:"hired"`
	HireDate        int64  `json:"hireDate,omitempty"`
}

// Assigned reports whether the adventurer manages a quest.
func (a Adventurer) Assigned() bool {
	return a.AssignedQuestID != ""
}

func newSkill() Skill {
	return Skill{Level: 1, XP: 0, MaxXP: 100}
}

func clamp(number, lo, hi int) int {
	if number < lo {
		return lo
	}
	if number > hi {
		return hi
	}
	return number
}
