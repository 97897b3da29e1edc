package adventurer

// Class is a generation table entry: an id, a display name and the
// specializations available to it.
type Class struct {
	ID          string
	Name        string
	Specialties []string
}

var firstNames = []string{"Kaelen", "Lyra", "Thorne", "Elara", "Garrick", "Sylvia", "Dorian", "Isolde", "Finn", "Morgan"}

var lastNames = []string{"Ironheart", "Swiftarrow", "Stormweaver", "Blackwood", "Brightblade", "Frostmane", "Shadowstep", "Runebreaker"}

var classes = []Class{
	{ID: "warrior", Name: "Warrior", Specialties: []string{"Vanguard", "Berserker", "Guardian"}},
	{ID: "mage", Name: "Mage", Specialties: []string{"Elementalist", "Necromancer", "Illusionist"}},
	{ID: "rogue", Name: "Rogue", Specialties: []string{"Assassin", "Scout", "Trickster"}},
	{ID: "ranger", Name: "Ranger", Specialties: []string{"Beastmaster", "Sharpshooter", "Survivalist"}},
}

var traits = []string{"Brave", "Cautious", "Ambitious", "Loyal", "Reckless", "Witty", "Stoic", "Cheerful"}

var hobbies = []string{"Weapon Maintenance", "Reading", "Fishing", "Cooking", "Music", "Herbology", "Gambling"}

// ClassByID looks up a class table entry.
func ClassByID(id string) (Class, bool) {
	for _, c := range classes {
		if c.ID == id {
			return c, true
		}
	}
	return Class{}, false
}
