package system

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"sectors-server/internal/procgen"
	"sectors-server/internal/sector"
	"sectors-server/internal/shared/redis"
	"sectors-server/internal/spatial"
)

const cacheTTL = time.Hour

// Service resolves systems on demand: sector via the sector service, then
// pure generation, windowed through the cache and snapshot layers.
type Service struct {
	sectors *sector.Service
	repo    *Repository
	cache   *redis.Client
	logger  *slog.Logger
}

func NewService(sectors *sector.Service, repo *Repository, cache *redis.Client, logger *slog.Logger) *Service {
	logger.Debug("Initializing system service")

	return &Service{
		sectors: sectors,
		repo:    repo,
		cache:   cache,
		logger:  logger,
	}
}

// Get returns the system at index inside the sector at coord.
func (s *Service) Get(ctx context.Context, coord spatial.Coord, index int) (Def, error) {
	logger := s.logger.With("operation", "get_system", "coord", coord.String(), "index", index)

	key := s.cacheKey(coord, index)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			var def Def
			if err := json.Unmarshal(raw, &def); err == nil {
				logger.Debug("System served from cache")
				return def, nil
			}
			logger.Warn("Discarding undecodable cached system", "error", err)
		}
	}

	sec, err := s.sectors.Get(ctx, coord)
	if err != nil {
		return Def{}, err
	}

	def, err := Generate(sec, index, s.sectors.Catalog())
	if err != nil {
		return Def{}, err
	}

	payload, err := json.Marshal(def)
	if err != nil {
		return Def{}, fmt.Errorf("failed to encode system: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, payload, cacheTTL).Err(); err != nil {
			logger.Warn("Failed to cache system", "error", err)
		}
	}
	if s.repo != nil {
		if err := s.repo.SaveSnapshot(ctx, s.sectors.CampaignSeed(), coord, index, payload); err != nil {
			logger.Warn("Failed to snapshot system", "error", err)
		}
	}

	logger.Debug("System generated", "archetype", def.ArchetypeID, "star_class", def.StarClass)
	return def, nil
}

func (s *Service) cacheKey(coord spatial.Coord, index int) string {
	return fmt.Sprintf("system:%s:%s:%d", procgen.FormatSeed(s.sectors.CampaignSeed()), coord, index)
}
