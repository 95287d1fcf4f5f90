package sector

import (
	"slices"

	"sectors-server/internal/archetype"
	"sectors-server/internal/spatial"
)

// SystemStub is one entry in a sector's ordered system list. A stub may carry
// a pre-assigned seed (story-authored systems); when HasSeed is false the
// system seed is derived from the sector seed and the stub index on demand.
type SystemStub struct {
	Index    int          `json:"index"`
	LocalPos spatial.Vec3 `json:"local_pos"`
	Seed     uint64       `json:"seed,string"`
	HasSeed  bool         `json:"has_seed"`
}

// Def is a fully generated sector record. It is a value computed fresh per
// call and never mutated after generation.
type Def struct {
	ID           string            `json:"id"`
	Coord        spatial.Coord     `json:"coord"`
	Seed         uint64            `json:"seed,string"`
	ArchetypeID  string            `json:"archetype_id"`
	Era          archetype.Era     `json:"era"`
	Faction      archetype.Faction `json:"faction"`
	HazardScalar float64           `json:"hazard_scalar"`
	Tags         []string          `json:"tags"`
	SystemCount  int               `json:"system_count"`
	Systems      []SystemStub      `json:"systems"`
}

// HasTag reports whether the sector carries the given tag.
func (d Def) HasTag(tag string) bool {
	return slices.Contains(d.Tags, tag)
}
