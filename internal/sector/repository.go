package sector

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"sectors-server/internal/procgen"
	"sectors-server/internal/shared/database"
	"sectors-server/internal/spatial"
)

// Repository persists sector snapshots keyed by (campaign seed, coordinate).
// Snapshots are a windowing convenience for the galaxy map; the engine can
// always re-derive the same sector from scratch.
type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing sector repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

// SaveSnapshot upserts the serialized sector for a campaign coordinate.
func (r *Repository) SaveSnapshot(ctx context.Context, campaignSeed uint64, coord spatial.Coord, payload []byte) error {
	logger := slog.With(
		"component", "sector_repository",
		"operation", "save_snapshot",
		"coord", coord.String(),
	)
	logger.Debug("Saving sector snapshot")

	query := `
		INSERT INTO sector_snapshots (campaign_seed, x, y, z, payload, generated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (campaign_seed, x, y, z)
		DO UPDATE SET payload = EXCLUDED.payload, generated_at = NOW()
	`

	if _, err := r.db.ExecContext(ctx, query, procgen.FormatSeed(campaignSeed), coord.X, coord.Y, coord.Z, payload); err != nil {
		logger.Error("Failed to save sector snapshot", "error", err)
		return fmt.Errorf("failed to save sector snapshot: %w", err)
	}

	logger.Debug("Sector snapshot saved")
	return nil
}

// GetSnapshot returns the stored payload for a campaign coordinate, or
// (nil, nil) when none exists.
func (r *Repository) GetSnapshot(ctx context.Context, campaignSeed uint64, coord spatial.Coord) ([]byte, error) {
	logger := slog.With(
		"component", "sector_repository",
		"operation", "get_snapshot",
		"coord", coord.String(),
	)

	query := `
		SELECT payload
		FROM sector_snapshots
		WHERE campaign_seed = $1 AND x = $2 AND y = $3 AND z = $4
	`

	var payload []byte
	err := r.db.QueryRowContext(ctx, query, procgen.FormatSeed(campaignSeed), coord.X, coord.Y, coord.Z).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("Failed to query sector snapshot", "error", err)
		return nil, fmt.Errorf("failed to query sector snapshot: %w", err)
	}

	return payload, nil
}
