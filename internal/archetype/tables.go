package archetype

import "sectors-server/internal/procgen"

// Default returns the built-in catalog.
func Default() *Catalog {
	c := &Catalog{
		Sectors: []SectorArchetype{
			{
				ID:   "core_worlds",
				Tags: []string{"core", "high_patrol"},
				EraWeights: map[Era]float64{
					EraExpansion: 5,
					EraCollapse:  1,
				},
				FactionWeights: map[Faction]float64{
					FactionDominion:  6,
					FactionFreeHolds: 2,
				},
				SystemCountRange: [2]int{8, 14},
				HazardRange:      [2]float64{0.0, 0.25},
			},
			{
				ID:   "frontier_reach",
				Tags: []string{"rim"},
				EraWeights: map[Era]float64{
					EraExpansion:   3,
					EraReclamation: 2,
				},
				FactionWeights: map[Faction]float64{
					FactionFreeHolds: 4,
					FactionUnaligned: 3,
				},
				SystemCountRange: [2]int{4, 9},
				HazardRange:      [2]float64{0.2, 0.55},
			},
			{
				ID:   "shattered_belt",
				Tags: []string{"rim", "ruins"},
				EraWeights: map[Era]float64{
					EraCollapse: 6,
				},
				FactionWeights: map[Faction]float64{
					FactionSyndicate: 5,
					FactionUnaligned: 2,
				},
				SystemCountRange: [2]int{3, 7},
				HazardRange:      [2]float64{0.45, 0.85},
			},
			{
				ID:   "contested_marches",
				Tags: []string{"contested"},
				EraWeights: map[Era]float64{
					EraReclamation: 4,
				},
				FactionWeights: map[Faction]float64{
					FactionDominion:  3,
					FactionSyndicate: 3,
				},
				SystemCountRange: [2]int{5, 11},
				HazardRange:      [2]float64{0.3, 0.7},
			},
		},
		Systems: []SystemArchetype{
			{
				ID:   "settled_system",
				Tags: []string{"settled"},
				StarClassWeights: map[StarClass]float64{
					StarClassG: 5,
					StarClassK: 4,
					StarClassF: 2,
				},
				PlanetCountRange: [2]int{3, 8},
				POIDensityRange:  [2]float64{0.3, 0.7},
			},
			{
				ID:   "mining_system",
				Tags: []string{"industrial"},
				StarClassWeights: map[StarClass]float64{
					StarClassM: 5,
					StarClassK: 3,
				},
				PlanetCountRange: [2]int{1, 5},
				POIDensityRange:  [2]float64{0.5, 0.9},
			},
			{
				ID:   "dead_system",
				Tags: []string{"derelict"},
				StarClassWeights: map[StarClass]float64{
					StarClassB: 2,
					StarClassO: 1,
				},
				PlanetCountRange: [2]int{0, 3},
				POIDensityRange:  [2]float64{0.1, 0.4},
			},
			{
				ID:   "nebula_system",
				Tags: []string{"nebula"},
				StarClassWeights: map[StarClass]float64{
					StarClassA: 3,
					StarClassF: 3,
				},
				PlanetCountRange: [2]int{1, 4},
				POIDensityRange:  [2]float64{0.4, 0.8},
			},
		},
		Fighters: map[string]FighterArchetype{
			"dominion_interceptor": {ID: "dominion_interceptor", Name: "Dominion Interceptor", Faction: FactionDominion, Hull: 40, Speed: 1.3, Firepower: 0.8},
			"dominion_lancer":      {ID: "dominion_lancer", Name: "Dominion Lancer", Faction: FactionDominion, Hull: 70, Speed: 1.0, Firepower: 1.1},
			"freehold_skiff":       {ID: "freehold_skiff", Name: "Freehold Skiff", Faction: FactionFreeHolds, Hull: 50, Speed: 1.1, Firepower: 0.7},
			"freehold_warden":      {ID: "freehold_warden", Name: "Freehold Warden", Faction: FactionFreeHolds, Hull: 90, Speed: 0.8, Firepower: 1.0},
			"syndicate_razor":      {ID: "syndicate_razor", Name: "Syndicate Razor", Faction: FactionSyndicate, Hull: 35, Speed: 1.5, Firepower: 0.9},
			"syndicate_bruiser":    {ID: "syndicate_bruiser", Name: "Syndicate Bruiser", Faction: FactionSyndicate, Hull: 110, Speed: 0.7, Firepower: 1.3},
			"drifter_hulk":         {ID: "drifter_hulk", Name: "Drifter Hulk", Faction: FactionUnaligned, Hull: 60, Speed: 0.9, Firepower: 0.6},
			"drifter_stinger":      {ID: "drifter_stinger", Name: "Drifter Stinger", Faction: FactionUnaligned, Hull: 30, Speed: 1.4, Firepower: 0.7},
		},
	}

	c.enemyTables = map[Faction][]procgen.Weighted[string]{
		FactionDominion: {
			{Item: "dominion_interceptor", Weight: 70},
			{Item: "dominion_lancer", Weight: 30},
		},
		FactionFreeHolds: {
			{Item: "freehold_skiff", Weight: 65},
			{Item: "freehold_warden", Weight: 35},
		},
		FactionSyndicate: {
			{Item: "syndicate_razor", Weight: 60},
			{Item: "syndicate_bruiser", Weight: 25},
			{Item: "drifter_stinger", Weight: 15},
		},
	}
	c.defaultEnemies = []procgen.Weighted[string]{
		{Item: "drifter_hulk", Weight: 50},
		{Item: "drifter_stinger", Weight: 50},
	}

	return c
}
