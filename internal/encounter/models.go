package encounter

// SpawnRing bounds the radii at which enemies spawn around the player.
type SpawnRing struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Def is a generated enemy encounter: an ordered list of fighter archetype
// ids (one per enemy) and the spawn ring sized for the group.
type Def struct {
	Seed       uint64    `json:"seed,string"`
	LayerID    string    `json:"layer_id"`
	SystemID   string    `json:"system_id"`
	Count      int       `json:"count"`
	Archetypes []string  `json:"archetypes"`
	SpawnRing  SpawnRing `json:"spawn_ring"`
}
