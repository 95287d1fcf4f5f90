package sector

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"sectors-server/internal/archetype"
	"sectors-server/internal/procgen"
	"sectors-server/internal/shared/redis"
	"sectors-server/internal/spatial"
)

const cacheTTL = time.Hour

// Service generates sectors on demand and windows them through the cache and
// snapshot layers. Generation itself is pure; the cache is an optimization
// outside the deterministic core.
type Service struct {
	campaignSeed uint64
	catalog      *archetype.Catalog
	repo         *Repository
	cache        *redis.Client
	logger       *slog.Logger
}

func NewService(campaignSeed uint64, catalog *archetype.Catalog, repo *Repository, cache *redis.Client, logger *slog.Logger) *Service {
	logger.Debug("Initializing sector service", "campaign_seed", procgen.FormatSeed(campaignSeed))

	return &Service{
		campaignSeed: campaignSeed,
		catalog:      catalog,
		repo:         repo,
		cache:        cache,
		logger:       logger,
	}
}

// CampaignSeed exposes the campaign root seed for downstream services.
func (s *Service) CampaignSeed() uint64 {
	return s.campaignSeed
}

// Catalog exposes the archetype catalog for downstream services.
func (s *Service) Catalog() *archetype.Catalog {
	return s.catalog
}

// Get returns the sector at coord, from cache when possible.
func (s *Service) Get(ctx context.Context, coord spatial.Coord) (Def, error) {
	logger := s.logger.With("operation", "get_sector", "coord", coord.String())

	key := s.cacheKey(coord)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			var def Def
			if err := json.Unmarshal(raw, &def); err == nil {
				logger.Debug("Sector served from cache")
				return def, nil
			}
			logger.Warn("Discarding undecodable cached sector", "error", err)
		}
	}

	def, err := Generate(s.campaignSeed, coord, s.catalog)
	if err != nil {
		return Def{}, fmt.Errorf("failed to generate sector at %s: %w", coord, err)
	}

	payload, err := json.Marshal(def)
	if err != nil {
		return Def{}, fmt.Errorf("failed to encode sector: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, payload, cacheTTL).Err(); err != nil {
			logger.Warn("Failed to cache sector", "error", err)
		}
	}
	if s.repo != nil {
		if err := s.repo.SaveSnapshot(ctx, s.campaignSeed, coord, payload); err != nil {
			logger.Warn("Failed to snapshot sector", "error", err)
		}
	}

	logger.Debug("Sector generated", "archetype", def.ArchetypeID, "systems", def.SystemCount)
	return def, nil
}

func (s *Service) cacheKey(coord spatial.Coord) string {
	return fmt.Sprintf("sector:%s:%s", procgen.FormatSeed(s.campaignSeed), coord)
}
