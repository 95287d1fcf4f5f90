package encounter

import (
	"context"
	"log/slog"

	"sectors-server/internal/archetype"
	"sectors-server/internal/spatial"
	"sectors-server/internal/system"
)

// Service resolves the target system and generates encounters fresh on every
// call; encounters are cheap to derive and never cached.
type Service struct {
	systems *system.Service
	catalog *archetype.Catalog
	logger  *slog.Logger
}

func NewService(systems *system.Service, catalog *archetype.Catalog, logger *slog.Logger) *Service {
	logger.Debug("Initializing encounter service")

	return &Service{
		systems: systems,
		catalog: catalog,
		logger:  logger,
	}
}

// Get returns the encounter for the system at (coord, index) on the given layer.
func (s *Service) Get(ctx context.Context, coord spatial.Coord, index int, layerID string) (Def, error) {
	sys, err := s.systems.Get(ctx, coord, index)
	if err != nil {
		return Def{}, err
	}

	def, err := Generate(sys, layerID, s.catalog)
	if err != nil {
		return Def{}, err
	}

	s.logger.Debug("Encounter generated", "system_id", sys.ID, "layer", def.LayerID, "count", def.Count)
	return def, nil
}

// FighterArchetype resolves a fighter archetype id from the static table.
func (s *Service) FighterArchetype(id string) (archetype.FighterArchetype, error) {
	return s.catalog.GetFighterArchetype(id)
}
