package archetype

import (
	"errors"
	"testing"
)

func TestDefaultCatalogTables(t *testing.T) {
	c := Default()

	if len(c.Sectors) == 0 {
		t.Fatal("default catalog has no sector archetypes")
	}
	if len(c.Systems) == 0 {
		t.Fatal("default catalog has no system archetypes")
	}
	if len(c.Fighters) == 0 {
		t.Fatal("default catalog has no fighter archetypes")
	}

	for _, a := range c.Sectors {
		if a.SystemCountRange[0] > a.SystemCountRange[1] {
			t.Fatalf("sector archetype %q has inverted system count range", a.ID)
		}
		if a.HazardRange[0] > a.HazardRange[1] {
			t.Fatalf("sector archetype %q has inverted hazard range", a.ID)
		}
	}
	for _, a := range c.Systems {
		if a.PlanetCountRange[0] > a.PlanetCountRange[1] {
			t.Fatalf("system archetype %q has inverted planet count range", a.ID)
		}
	}
}

// TestWeightExpansionFollowsCanonicalOrder checks that sparse weight maps are
// expanded over the canonical category lists, with weight 1 for omitted
// categories, independent of map iteration order.
func TestWeightExpansionFollowsCanonicalOrder(t *testing.T) {
	c := Default()
	a := SectorArchetype{
		ID:         "partial",
		EraWeights: map[Era]float64{EraCollapse: 9},
	}

	pairs := c.EraWeights(a)
	if len(pairs) != len(Eras) {
		t.Fatalf("expanded %d era pairs, want %d", len(pairs), len(Eras))
	}
	for i, era := range Eras {
		if pairs[i].Item != era {
			t.Fatalf("pair %d is %q, want canonical %q", i, pairs[i].Item, era)
		}
	}
	if pairs[0].Weight != DefaultWeight {
		t.Fatalf("omitted era weight = %v, want default %v", pairs[0].Weight, DefaultWeight)
	}
	if pairs[1].Weight != 9 {
		t.Fatalf("collapse weight = %v, want 9", pairs[1].Weight)
	}
}

func TestStarClassWeightsNeverZero(t *testing.T) {
	c := Default()
	for _, a := range c.Systems {
		for _, p := range c.StarClassWeights(a) {
			if p.Weight <= 0 {
				t.Fatalf("archetype %q star class %q has non-positive weight %v", a.ID, p.Item, p.Weight)
			}
		}
	}
}

func TestEnemyWeightsFallback(t *testing.T) {
	c := Default()

	for _, f := range Factions {
		table := c.EnemyWeights(f)
		if len(table) == 0 {
			t.Fatalf("faction %q has an empty enemy table", f)
		}
		for _, p := range table {
			if _, err := c.GetFighterArchetype(p.Item); err != nil {
				t.Fatalf("enemy table for %q references unknown fighter %q", f, p.Item)
			}
		}
	}

	// Unknown factions share the default table.
	if len(c.EnemyWeights(Faction("ghost_fleet"))) == 0 {
		t.Fatal("unknown faction should fall back to the default enemy table")
	}
}

func TestGetFighterArchetype(t *testing.T) {
	c := Default()

	a, err := c.GetFighterArchetype("syndicate_razor")
	if err != nil {
		t.Fatalf("GetFighterArchetype returned error: %v", err)
	}
	if a.Faction != FactionSyndicate {
		t.Fatalf("syndicate_razor faction = %q, want %q", a.Faction, FactionSyndicate)
	}

	if _, err := c.GetFighterArchetype("no_such_fighter"); !errors.Is(err, ErrUnknownArchetype) {
		t.Fatalf("unknown id error = %v, want %v", err, ErrUnknownArchetype)
	}
}
