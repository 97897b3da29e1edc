package adventurer

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Core stats are rolled uniformly from [statMin, statMin+statSpan).
const (
	statMin  = 40
	statSpan = 30
)

// Picks per generated adventurer.
const (
	traitPicks = 2
	hobbyPicks = 2
)

// Generator produces randomized recruits from the fixed tables.
type Generator struct {
	rng   *rand.Rand
	newID IDSource
}

// NewGenerator creates a generator. A nil rng gets an entropy-seeded one and
// a nil id source defaults to NewID.
func NewGenerator(rng *rand.Rand, ids IDSource) *Generator {
	if rng == nil {
		rng = NewRNG()
	}
	if ids == nil {
		ids = NewID
	}
	return &Generator{rng: rng, newID: ids}
}

// Generate rolls one recruit.
func (g *Generator) Generate() Adventurer {
	first := firstNames[g.rng.IntN(len(firstNames))]
	last := lastNames[g.rng.IntN(len(lastNames))]
	class := classes[g.rng.IntN(len(classes))]
	specialty := class.Specialties[g.rng.IntN(len(class.Specialties))]

	return Adventurer{
		ID:             g.newID(),
		Name:           first + " " + last,
		Class:          class.ID,
		Specialization: specialty,
		Bio:            fmt.Sprintf("A %s specializing in %s.", strings.ToLower(class.Name), strings.ToLower(specialty)),
		Stats: Stats{
			Strength:  g.rollStat(),
			Agility:   g.rollStat(),
			Intellect: g.rollStat(),
			Charisma:  g.rollStat(),
		},
		Social: Social{
			Affection: DefaultAffection,
			Comfort:   DefaultComfort,
			Trust:     DefaultTrust,
			Loyalty:   DefaultLoyalty,
		},
		Skills: Skills{
			Combat:     newSkill(),
			Survival:   newSkill(),
			Leadership: newSkill(),
		},
		PersonalityTraits: g.sample(traits, traitPicks),
		Hobbies:           g.sample(hobbies, hobbyPicks),
		GiftPreferences:   g.giftPreferences(),
		Salary:            DefaultSalary,
		Rank:              RankRecruit,
		HireCost:          DefaultHireCost,
	}
}

// GenerateN rolls n recruits.
func (g *Generator) GenerateN(n int) []Adventurer {
	out := make([]Adventurer, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.Generate())
	}
	return out
}

func (g *Generator) rollStat() int {
	return statMin + g.rng.IntN(statSpan)
}

// sample draws n distinct entries without replacement. n is capped at the
// list size.
func (g *Generator) sample(list []string, n int) []string {
	n = min(n, len(list))
	perm := g.rng.Perm(len(list))
	out := make([]string, 0, n)
	for _, i := range perm[:n] {
		out = append(out, list[i])
	}
	return out
}

// giftPreferences shuffles the six gift types and buckets them by position:
// 0 loved, 1-3 neutral, 5 hated. Position 4 is left out of every bucket.
func (g *Generator) giftPreferences() GiftPreferences {
	types := GiftTypes()
	g.rng.Shuffle(len(types), func(i, j int) { types[i], types[j] = types[j], types[i] })

	return GiftPreferences{
		Loves:   []GiftType{types[0]},
		Neutral: append([]GiftType(nil), types[1:4]...),
		Hates:   []GiftType{types[5]},
	}
}
