package sector

import (
	"fmt"
	"math"

	"sectors-server/internal/archetype"
	"sectors-server/internal/procgen"
	"sectors-server/internal/spatial"
)

// Generate produces the sector at coord for a campaign. The sector seed is
// derived from the campaign seed and the coordinate, so the same campaign
// always reproduces the identical sector at the same coordinate.
//
// Archetype selection uses its own stream seeded from the sector seed and
// discarded after the single pick; every subsequent draw comes from a second
// stream seeded from the same value. The two streams never share state, which
// keeps archetype choice statistically independent of the numeric draws.
func Generate(campaignSeed uint64, coord spatial.Coord, cat *archetype.Catalog) (Def, error) {
	seed := procgen.DeriveSeed(campaignSeed, "sector", coord.X, coord.Y, coord.Z)

	archStream := procgen.NewStream(seed)
	arch, err := procgen.Pick(archStream, cat.Sectors)
	if err != nil {
		return Def{}, fmt.Errorf("pick sector archetype: %w", err)
	}

	rng := procgen.NewStream(seed)

	era, err := procgen.WeightedPick(rng, cat.EraWeights(arch))
	if err != nil {
		return Def{}, fmt.Errorf("pick era: %w", err)
	}
	faction, err := procgen.WeightedPick(rng, cat.FactionWeights(arch))
	if err != nil {
		return Def{}, fmt.Errorf("pick faction: %w", err)
	}

	hazard := rng.Range(arch.HazardRange[0], arch.HazardRange[1])
	systemCount := int(math.Floor(rng.Range(float64(arch.SystemCountRange[0]), float64(arch.SystemCountRange[1]+1))))

	systems := make([]SystemStub, 0, systemCount)
	for i := 0; i < systemCount; i++ {
		systems = append(systems, SystemStub{
			Index: i,
			LocalPos: spatial.Vec3{
				X: rng.Range(0, 1),
				Y: rng.Range(0, 1),
				Z: rng.Range(0, 1),
			},
		})
	}

	tags := make([]string, len(arch.Tags))
	copy(tags, arch.Tags)

	return Def{
		ID:           fmt.Sprintf("sector_%d_%d_%d", coord.X, coord.Y, coord.Z),
		Coord:        coord,
		Seed:         seed,
		ArchetypeID:  arch.ID,
		Era:          era,
		Faction:      faction,
		HazardScalar: hazard,
		Tags:         tags,
		SystemCount:  systemCount,
		Systems:      systems,
	}, nil
}
