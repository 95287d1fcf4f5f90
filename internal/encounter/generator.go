package encounter

import (
	"fmt"
	"math"

	"sectors-server/internal/archetype"
	"sectors-server/internal/procgen"
	"sectors-server/internal/system"
)

// DefaultLayerID identifies the baseline progression layer.
const DefaultLayerID = "v0"

// Generate produces the encounter for a system and progression layer. The
// enemy count scales with POI density, then exactly count weighted picks are
// drawn in order from the faction's enemy table; pick order is part of the
// reproducibility contract.
func Generate(sys system.Def, layerID string, cat *archetype.Catalog) (Def, error) {
	if layerID == "" {
		layerID = DefaultLayerID
	}

	seed := procgen.DeriveSeed(sys.Seed, "encounter", layerID)
	rng := procgen.NewStream(seed)

	densityScalar := 0.8 + sys.POIDensity*0.6
	rawCount := rng.Range(2, 6) * densityScalar
	count := int(math.Round(rawCount))
	if count < 1 {
		count = 1
	}

	table := cat.EnemyWeights(sys.Faction)
	archetypes := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := procgen.WeightedPick(rng, table)
		if err != nil {
			return Def{}, fmt.Errorf("pick enemy archetype: %w", err)
		}
		archetypes = append(archetypes, id)
	}

	return Def{
		Seed:       seed,
		LayerID:    layerID,
		SystemID:   sys.ID,
		Count:      count,
		Archetypes: archetypes,
		SpawnRing: SpawnRing{
			Min: 260 + float64(count)*30,
			Max: 650 + float64(count)*60,
		},
	}, nil
}
