package encounter

import (
	"reflect"
	"testing"

	"sectors-server/internal/archetype"
	"sectors-server/internal/procgen"
	"sectors-server/internal/sector"
	"sectors-server/internal/spatial"
	"sectors-server/internal/system"
)

func testSystem(t *testing.T) system.Def {
	t.Helper()
	cat := archetype.Default()
	sec, err := sector.Generate(procgen.Hash64("campaign", "encounter-tests"), spatial.Coord{X: 7, Y: -3, Z: 0}, cat)
	if err != nil {
		t.Fatalf("sector.Generate returned error: %v", err)
	}
	sys, err := system.Generate(sec, 0, cat)
	if err != nil {
		t.Fatalf("system.Generate returned error: %v", err)
	}
	return sys
}

func TestGenerateIsDeterministic(t *testing.T) {
	cat := archetype.Default()
	sys := testSystem(t)

	a, err := Generate(sys, "v0", cat)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	b, err := Generate(sys, "v0", cat)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("repeated generation diverged:\n%+v\n%+v", a, b)
	}
}

func TestGenerateLayersDiverge(t *testing.T) {
	cat := archetype.Default()
	sys := testSystem(t)

	a, err := Generate(sys, "v0", cat)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	b, err := Generate(sys, "v1", cat)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if a.Seed == b.Seed {
		t.Fatal("different layers derived the same encounter seed")
	}
}

func TestGenerateDefaultsLayer(t *testing.T) {
	cat := archetype.Default()
	sys := testSystem(t)

	def, err := Generate(sys, "", cat)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if def.LayerID != DefaultLayerID {
		t.Fatalf("layer = %q, want default %q", def.LayerID, DefaultLayerID)
	}

	explicit, err := Generate(sys, DefaultLayerID, cat)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !reflect.DeepEqual(def, explicit) {
		t.Fatal("empty layer id should behave exactly like the default layer id")
	}
}

func TestGenerateInvariants(t *testing.T) {
	cat := archetype.Default()
	campaign := procgen.Hash64("campaign", "encounter-invariants")

	for x := 0; x < 8; x++ {
		sec, err := sector.Generate(campaign, spatial.Coord{X: x, Y: x, Z: 1}, cat)
		if err != nil {
			t.Fatalf("sector.Generate returned error: %v", err)
		}
		for i := range sec.Systems {
			sys, err := system.Generate(sec, i, cat)
			if err != nil {
				t.Fatalf("system.Generate returned error: %v", err)
			}
			def, err := Generate(sys, "v0", cat)
			if err != nil {
				t.Fatalf("Generate returned error: %v", err)
			}

			if def.Count < 1 {
				t.Fatalf("count = %d, want >= 1", def.Count)
			}
			if len(def.Archetypes) != def.Count {
				t.Fatalf("archetype list length %d != count %d", len(def.Archetypes), def.Count)
			}
			if def.SpawnRing.Min >= def.SpawnRing.Max {
				t.Fatalf("spawn ring min %v not below max %v", def.SpawnRing.Min, def.SpawnRing.Max)
			}
			for _, id := range def.Archetypes {
				if _, err := cat.GetFighterArchetype(id); err != nil {
					t.Fatalf("encounter references unknown fighter %q: %v", id, err)
				}
			}
		}
	}
}

// TestGeneratePickOrder replays the documented draw sequence: one range call
// for the raw count, then exactly count in-order weighted picks from the
// faction's table.
func TestGeneratePickOrder(t *testing.T) {
	cat := archetype.Default()
	sys := testSystem(t)

	def, err := Generate(sys, "v0", cat)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	rng := procgen.NewStream(def.Seed)
	rng.Range(2, 6)
	table := cat.EnemyWeights(sys.Faction)
	for i := 0; i < def.Count; i++ {
		id, err := procgen.WeightedPick(rng, table)
		if err != nil {
			t.Fatalf("WeightedPick returned error: %v", err)
		}
		if def.Archetypes[i] != id {
			t.Fatalf("archetype %d = %q, want replay %q", i, def.Archetypes[i], id)
		}
	}
}
