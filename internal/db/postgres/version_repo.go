package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Verdant/internal/core/versions"
)

type postgresVersionRepo struct {
	db *sql.DB
}

// NewVersionRepository creates a new PostgreSQL version repository
func NewVersionRepository(db *sql.DB) versions.Repository {
	return &postgresVersionRepo{db: db}
}

// Create inserts a new version row. A missing plant surfaces as the foreign
// key violation on plant_id, mapped to ErrPlantNotFound.
func (r *postgresVersionRepo) Create(ctx context.Context, version *versions.Version) (*versions.Version, error) {
	query := `
		INSERT INTO versions (plant_id, user_id, updated_health_status, updated_image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, plant_id, user_id, updated_health_status, updated_image, created_at`

	err := r.db.QueryRowContext(ctx, query,
		version.PlantID, version.UserID, version.UpdatedHealthStatus, version.UpdatedImage).
		Scan(&version.ID, &version.PlantID, &version.UserID,
			&version.UpdatedHealthStatus, &version.UpdatedImage, &version.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "violates foreign key constraint") &&
			strings.Contains(err.Error(), "plant_id") {
			return nil, versions.ErrPlantNotFound
		}
		return nil, fmt.Errorf("failed to create version: %w", err)
	}

	return version, nil
}

// GetByID retrieves a version by id
func (r *postgresVersionRepo) GetByID(ctx context.Context, id int64) (*versions.Version, error) {
	version := &versions.Version{}
	query := `
		SELECT id, plant_id, user_id, updated_health_status, updated_image, created_at
		FROM versions WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&version.ID, &version.PlantID, &version.UserID,
			&version.UpdatedHealthStatus, &version.UpdatedImage, &version.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, versions.ErrVersionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get version by id: %w", err)
	}

	return version, nil
}

// ListByPlant returns a plant's versions, most recent first
func (r *postgresVersionRepo) ListByPlant(ctx context.Context, plantID int64) ([]versions.Version, error) {
	query := `
		SELECT id, plant_id, user_id, updated_health_status, updated_image, created_at
		FROM versions WHERE plant_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, plantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query versions: %w", err)
	}
	defer closeRows(rows, "versions")

	result := []versions.Version{}
	for rows.Next() {
		var v versions.Version
		if err := rows.Scan(&v.ID, &v.PlantID, &v.UserID,
			&v.UpdatedHealthStatus, &v.UpdatedImage, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan version row: %w", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating version rows: %w", err)
	}

	return result, nil
}

// Delete removes a version
func (r *postgresVersionRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM versions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete version=%d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected for version=%d: %w", id, err)
	}
	if rowsAffected == 0 {
		return versions.ErrVersionNotFound
	}

	return nil
}
