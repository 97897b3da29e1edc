package quest

// LocationStarterShack is the location every seed quest belongs to.
const LocationStarterShack = "starter_shack"

// DefaultCostGrowth is used when a restored quest carries no usable growth
// factor and has no catalog entry to fall back on.
const DefaultCostGrowth = 1.25

// DefaultBaseTimeMs is used when a restored quest carries no usable duration
// and has no catalog entry to fall back on.
const DefaultBaseTimeMs = 5000

// SeedCatalog returns the quests a new game starts with, in board order.
// Each call returns fresh values.
func SeedCatalog() []Quest {
	return []Quest{
		{
			ID:             "goblin_patrol",
			Name:           "Goblin Patrol",
			LocationID:     LocationStarterShack,
			Description:    "Clear goblins from the forest path",
			BaseGoldReward: 25,
			UpgradeCost:    35,
			GoldPerUpgrade: 2,
			BaseTimeMs:     8000,
			CostGrowth:     1.35,
			Unlocked:       true,
			UnlockCost:     0,
		},
		{
			ID:             "herb_collection",
			Name:           "Herb Collection",
			LocationID:     LocationStarterShack,
			Description:    "Gather medicinal herbs for the town healer",
			BaseGoldReward: 15,
			UpgradeCost:    25,
			GoldPerUpgrade: 1.5,
			BaseTimeMs:     5000,
			CostGrowth:     1.3,
			Unlocked:       true,
			UnlockCost:     50,
		},
		{
			ID:             "rat_extermination",
			Name:           "Rat Extermination",
			LocationID:     LocationStarterShack,
			Description:    "Clear rats from the town cellar",
			BaseGoldReward: 10,
			UpgradeCost:    20,
			GoldPerUpgrade: 1,
			BaseTimeMs:     4000,
			CostGrowth:     1.25,
			Unlocked:       false,
			UnlockCost:     30,
		},
	}
}

// CatalogEntry returns the seed definition for id, if there is one.
func CatalogEntry(id string) (Quest, bool) {
	for _, q := range SeedCatalog() {
		if q.ID == id {
			return q, true
		}
	}
	return Quest{}, false
}

// Heal repairs a restored quest so the record invariants hold:
// positive duration, growth above 1, non-negative level and costs, and
// never running while locked. Missing definitions come from the catalog.
func Heal(q Quest) Quest {
	seed, known := CatalogEntry(q.ID)

	if q.BaseTimeMs <= 0 {
		q.BaseTimeMs = DefaultBaseTimeMs
		if known {
			q.BaseTimeMs = seed.BaseTimeMs
		}
	}
	if q.CostGrowth <= 1 {
		q.CostGrowth = DefaultCostGrowth
		if known {
			q.CostGrowth = seed.CostGrowth
		}
	}
	if known {
		if q.Name == "" {
			q.Name = seed.Name
		}
		if q.Description == "" {
			q.Description = seed.Description
		}
		if q.LocationID == "" {
			q.LocationID = seed.LocationID
		}
	}
	if q.Level < 0 {
		q.Level = 0
	}
	if q.UpgradeCost < 0 {
		q.UpgradeCost = 0
	}
	if q.UnlockCost < 0 {
		q.UnlockCost = 0
	}
	if q.Running && !q.Unlocked {
		q.Running = false
	}
	if !q.Running {
		q.TimeRemainingMs = 0
	} else if q.TimeRemainingMs > q.BaseTimeMs {
		q.TimeRemainingMs = q.BaseTimeMs
	}
	return q
}
