package system

import (
	"errors"
	"fmt"
	"math"

	"sectors-server/internal/archetype"
	"sectors-server/internal/procgen"
	"sectors-server/internal/sector"
)

// ErrIndexOutOfRange indicates a system index with no corresponding entry in
// the sector's system list.
var ErrIndexOutOfRange = errors.New("system index out of range")

// Generate produces the system at index inside sec.
//
// The stub's pre-assigned seed is honored when present; otherwise the system
// seed is derived from the sector seed and the index. Archetype selection
// uses an independent stream seeded from the system seed, created solely for
// that single pick and discarded; every numeric draw that follows comes from
// a second stream seeded from the same value. The streams never share state,
// so the archetype choice is statistically independent of the numeric draws.
// Collapsing them into one shared stream would change every generated system
// and is intentionally not done.
func Generate(sec sector.Def, index int, cat *archetype.Catalog) (Def, error) {
	if index < 0 || index >= len(sec.Systems) {
		return Def{}, fmt.Errorf("%w: %d of %d in %s", ErrIndexOutOfRange, index, len(sec.Systems), sec.ID)
	}
	stub := sec.Systems[index]

	seed := stub.Seed
	if !stub.HasSeed {
		seed = procgen.DeriveSeed(sec.Seed, "system", index)
	}

	archStream := procgen.NewStream(seed)
	arch, err := procgen.Pick(archStream, cat.Systems)
	if err != nil {
		return Def{}, fmt.Errorf("pick system archetype: %w", err)
	}

	rng := procgen.NewStream(seed)

	starClass, err := procgen.WeightedPick(rng, cat.StarClassWeights(arch))
	if err != nil {
		return Def{}, fmt.Errorf("pick star class: %w", err)
	}

	planetCount := int(math.Floor(rng.Range(float64(arch.PlanetCountRange[0]), float64(arch.PlanetCountRange[1]+1))))
	poiDensity := rng.Range(arch.POIDensityRange[0], arch.POIDensityRange[1])

	wealth := procgen.Clamp(0, 1, (1-sec.HazardScalar)*rng.Range(0.6, 1.0))
	industry := rng.Range(0.2, 0.9)

	securityBase := 0.3
	if sec.HasTag("high_patrol") {
		securityBase = 0.7
	}
	security := procgen.Clamp(0, 1, securityBase+rng.Range(-0.2, 0.3))

	anchorScale := 1.0
	if sec.HasTag("ruins") {
		anchorScale = 1.5
	}
	storyAnchorChance := rng.Range(0.02, 0.12) * anchorScale

	tags := make([]string, len(arch.Tags))
	copy(tags, arch.Tags)

	return Def{
		ID:                fmt.Sprintf("%s_sys_%d", sec.ID, index),
		Seed:              seed,
		SectorID:          sec.ID,
		SectorCoord:       sec.Coord,
		LocalPos:          stub.LocalPos,
		GalaxyPos:         sec.Coord.Vec3().Add(stub.LocalPos),
		ArchetypeID:       arch.ID,
		Tags:              tags,
		StarClass:         starClass,
		PlanetCount:       planetCount,
		POIDensity:        poiDensity,
		Faction:           sec.Faction,
		Economy: Economy{
			Wealth:   wealth,
			Industry: industry,
			Security: security,
		},
		StoryAnchorChance: storyAnchorChance,
	}, nil
}
