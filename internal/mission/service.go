package mission

import (
	"context"
	"log/slog"

	"sectors-server/internal/spatial"
	"sectors-server/internal/system"
)

// Service resolves the target system and generates missions fresh on every
// call; missions are cheap to derive and never cached.
type Service struct {
	systems *system.Service
	logger  *slog.Logger
}

func NewService(systems *system.Service, logger *slog.Logger) *Service {
	logger.Debug("Initializing mission service")

	return &Service{
		systems: systems,
		logger:  logger,
	}
}

// Get returns the mission for the system at (coord, index) and the given tier.
func (s *Service) Get(ctx context.Context, coord spatial.Coord, index, tier int) (Def, error) {
	sys, err := s.systems.Get(ctx, coord, index)
	if err != nil {
		return Def{}, err
	}

	def := Generate(sys, tier)
	s.logger.Debug("Mission generated", "mission_id", def.ID, "tier", tier, "goal_kills", def.GoalKills)
	return def, nil
}
