package system

import (
	"slices"

	"sectors-server/internal/archetype"
	"sectors-server/internal/spatial"
)

// Economy is a system's economic profile. Every field is clamped into [0,1].
type Economy struct {
	Wealth   float64 `json:"wealth"`
	Industry float64 `json:"industry"`
	Security float64 `json:"security"`
}

// Def is a fully generated system record, determined entirely by the owning
// sector's identity and the system index. Values are computed fresh per call
// and never mutated.
type Def struct {
	ID                string              `json:"id"`
	Seed              uint64              `json:"seed,string"`
	SectorID          string              `json:"sector_id"`
	SectorCoord       spatial.Coord       `json:"sector_coord"`
	LocalPos          spatial.Vec3        `json:"local_pos"`
	GalaxyPos         spatial.Vec3        `json:"galaxy_pos"`
	ArchetypeID       string              `json:"archetype_id"`
	Tags              []string            `json:"tags"`
	StarClass         archetype.StarClass `json:"star_class"`
	PlanetCount       int                 `json:"planet_count"`
	POIDensity        float64             `json:"poi_density"`
	Faction           archetype.Faction   `json:"faction"`
	Economy           Economy             `json:"economy"`
	StoryAnchorChance float64             `json:"story_anchor_chance"`
}

// HasTag reports whether the system carries the given tag.
func (d Def) HasTag(tag string) bool {
	return slices.Contains(d.Tags, tag)
}
