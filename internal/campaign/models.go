package campaign

// Info describes the campaign served by this process. The seed is exposed as
// decimal text so arbitrary-precision clients can consume it safely.
type Info struct {
	Name              string `json:"name"`
	Seed              string `json:"seed"`
	SectorArchetypes  int    `json:"sector_archetypes"`
	SystemArchetypes  int    `json:"system_archetypes"`
	FighterArchetypes int    `json:"fighter_archetypes"`
}
