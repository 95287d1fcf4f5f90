package campaign

import (
	"log/slog"

	"sectors-server/internal/archetype"
	"sectors-server/internal/procgen"
)

// Service exposes campaign identity. All content is re-derivable from the
// campaign seed, so this is the only identity the server carries.
type Service struct {
	name    string
	seed    uint64
	catalog *archetype.Catalog
	logger  *slog.Logger
}

func NewService(name string, seed uint64, catalog *archetype.Catalog, logger *slog.Logger) *Service {
	logger.Debug("Initializing campaign service", "campaign", name, "seed", procgen.FormatSeed(seed))

	return &Service{
		name:    name,
		seed:    seed,
		catalog: catalog,
		logger:  logger,
	}
}

// Info returns the campaign descriptor.
func (s *Service) Info() Info {
	return Info{
		Name:              s.name,
		Seed:              procgen.FormatSeed(s.seed),
		SectorArchetypes:  len(s.catalog.Sectors),
		SystemArchetypes:  len(s.catalog.Systems),
		FighterArchetypes: len(s.catalog.Fighters),
	}
}
