package guild

// LocationDisplayName maps a location tag to the name shown to players.
func LocationDisplayName(id string) string {
	switch id {
	case "starter_shack":
		return "Starter Shack"
	case "town_hall":
		return "Town Hall Office"
	case "fortified_keep":
		return "Fortified Keep"
	default:
		return "Guild Hall"
	}
}
