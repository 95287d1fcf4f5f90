// Package archetype holds the static weighted templates consulted by the
// content generators: sector archetypes, system archetypes, per-faction enemy
// tables, and the fighter archetype registry. The tables are loaded once and
// read-only thereafter; nothing in this package is random.
package archetype

import (
	"errors"
	"fmt"

	"sectors-server/internal/procgen"
)

// ErrUnknownArchetype indicates a lookup for an id absent from the static tables.
var ErrUnknownArchetype = errors.New("unknown archetype id")

// Era is a named historical period a sector can belong to.
type Era string

const (
	EraExpansion   Era = "expansion"
	EraCollapse    Era = "collapse"
	EraReclamation Era = "reclamation"
)

// Eras is the canonical ordered era list. Weighted selection always iterates
// this list, never map order, so tie-breaking stays reproducible.
var Eras = []Era{EraExpansion, EraCollapse, EraReclamation}

// Faction is a named controlling power.
type Faction string

const (
	FactionDominion  Faction = "dominion"
	FactionFreeHolds Faction = "free_holds"
	FactionSyndicate Faction = "syndicate"
	FactionUnaligned Faction = "unaligned"
)

// Factions is the canonical ordered faction list.
var Factions = []Faction{FactionDominion, FactionFreeHolds, FactionSyndicate, FactionUnaligned}

// StarClass is a stellar classification letter.
type StarClass string

const (
	StarClassO StarClass = "O"
	StarClassB StarClass = "B"
	StarClassA StarClass = "A"
	StarClassF StarClass = "F"
	StarClassG StarClass = "G"
	StarClassK StarClass = "K"
	StarClassM StarClass = "M"
)

// StarClasses is the canonical ordered star class list.
var StarClasses = []StarClass{StarClassO, StarClassB, StarClassA, StarClassF, StarClassG, StarClassK, StarClassM}

// SectorArchetype is a weighted template for sector generation. Weight maps
// are sparse: a category missing from a map gets DefaultWeight at lookup time.
type SectorArchetype struct {
	ID               string              `json:"id"`
	Tags             []string            `json:"tags"`
	EraWeights       map[Era]float64     `json:"era_weights"`
	FactionWeights   map[Faction]float64 `json:"faction_weights"`
	SystemCountRange [2]int              `json:"system_count_range"`
	HazardRange      [2]float64          `json:"hazard_range"`
}

// SystemArchetype is a weighted template for system generation.
type SystemArchetype struct {
	ID               string                `json:"id"`
	Tags             []string              `json:"tags"`
	StarClassWeights map[StarClass]float64 `json:"star_class_weights"`
	PlanetCountRange [2]int                `json:"planet_count_range"`
	POIDensityRange  [2]float64            `json:"poi_density_range"`
}

// FighterArchetype describes one enemy fighter template referenced by
// encounter tables.
type FighterArchetype struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Faction  Faction `json:"faction"`
	Hull     int     `json:"hull"`
	Speed    float64 `json:"speed"`
	Firepower float64 `json:"firepower"`
}

// DefaultWeight is the weight assumed for any category absent from a sparse
// weight map. Lookups never error and never return zero.
const DefaultWeight = 1.0

// Catalog bundles the static tables consumed by the generators.
type Catalog struct {
	Sectors  []SectorArchetype
	Systems  []SystemArchetype
	Fighters map[string]FighterArchetype

	enemyTables map[Faction][]procgen.Weighted[string]
	defaultEnemies []procgen.Weighted[string]
}

// EraWeights expands a sector archetype's sparse era map over the canonical
// era list, in canonical order.
func (c *Catalog) EraWeights(a SectorArchetype) []procgen.Weighted[Era] {
	pairs := make([]procgen.Weighted[Era], 0, len(Eras))
	for _, era := range Eras {
		pairs = append(pairs, procgen.Weighted[Era]{Item: era, Weight: weightOrDefault(a.EraWeights, era)})
	}
	return pairs
}

// FactionWeights expands a sector archetype's sparse faction map over the
// canonical faction list, in canonical order.
func (c *Catalog) FactionWeights(a SectorArchetype) []procgen.Weighted[Faction] {
	pairs := make([]procgen.Weighted[Faction], 0, len(Factions))
	for _, f := range Factions {
		pairs = append(pairs, procgen.Weighted[Faction]{Item: f, Weight: weightOrDefault(a.FactionWeights, f)})
	}
	return pairs
}

// StarClassWeights expands a system archetype's sparse star class map over
// the canonical star class list, in canonical order.
func (c *Catalog) StarClassWeights(a SystemArchetype) []procgen.Weighted[StarClass] {
	pairs := make([]procgen.Weighted[StarClass], 0, len(StarClasses))
	for _, sc := range StarClasses {
		pairs = append(pairs, procgen.Weighted[StarClass]{Item: sc, Weight: weightOrDefault(a.StarClassWeights, sc)})
	}
	return pairs
}

// EnemyWeights returns the weighted fighter archetype table for a faction.
// Factions without a bespoke table share the default table.
func (c *Catalog) EnemyWeights(f Faction) []procgen.Weighted[string] {
	if table, ok := c.enemyTables[f]; ok {
		return table
	}
	return c.defaultEnemies
}

// GetFighterArchetype looks up a fighter archetype by id.
func (c *Catalog) GetFighterArchetype(id string) (FighterArchetype, error) {
	a, ok := c.Fighters[id]
	if !ok {
		return FighterArchetype{}, fmt.Errorf("%w: %q", ErrUnknownArchetype, id)
	}
	return a, nil
}

func weightOrDefault[K comparable](m map[K]float64, key K) float64 {
	if w, ok := m[key]; ok {
		return w
	}
	return DefaultWeight
}
