package system

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"sectors-server/internal/procgen"
	"sectors-server/internal/shared/database"
	"sectors-server/internal/spatial"
)

// Repository persists system snapshots keyed by (campaign seed, sector
// coordinate, system index). Like sector snapshots, these are a windowing
// convenience; the engine re-derives identical systems on demand.
type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing system repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

// SaveSnapshot upserts the serialized system for a campaign coordinate/index.
func (r *Repository) SaveSnapshot(ctx context.Context, campaignSeed uint64, coord spatial.Coord, index int, payload []byte) error {
	logger := slog.With(
		"component", "system_repository",
		"operation", "save_snapshot",
		"coord", coord.String(),
		"index", index,
	)
	logger.Debug("Saving system snapshot")

	query := `
		INSERT INTO system_snapshots (campaign_seed, x, y, z, system_index, payload, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (campaign_seed, x, y, z, system_index)
		DO UPDATE SET payload = EXCLUDED.payload, generated_at = NOW()
	`

	if _, err := r.db.ExecContext(ctx, query, procgen.FormatSeed(campaignSeed), coord.X, coord.Y, coord.Z, index, payload); err != nil {
		logger.Error("Failed to save system snapshot", "error", err)
		return fmt.Errorf("failed to save system snapshot: %w", err)
	}

	logger.Debug("System snapshot saved")
	return nil
}

// GetSnapshot returns the stored payload, or (nil, nil) when none exists.
func (r *Repository) GetSnapshot(ctx context.Context, campaignSeed uint64, coord spatial.Coord, index int) ([]byte, error) {
	logger := slog.With(
		"component", "system_repository",
		"operation", "get_snapshot",
		"coord", coord.String(),
		"index", index,
	)

	query := `
		SELECT payload
		FROM system_snapshots
		WHERE campaign_seed = $1 AND x = $2 AND y = $3 AND z = $4 AND system_index = $5
	`

	var payload []byte
	err := r.db.QueryRowContext(ctx, query, procgen.FormatSeed(campaignSeed), coord.X, coord.Y, coord.Z, index).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("Failed to query system snapshot", "error", err)
		return nil, fmt.Errorf("failed to query system snapshot: %w", err)
	}

	return payload, nil
}
