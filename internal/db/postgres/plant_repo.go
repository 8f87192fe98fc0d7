package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Verdant/internal/core/plants"
	"Verdant/internal/core/versions"
)

type postgresPlantRepo struct {
	db *sql.DB
}

// NewPlantRepository creates a new PostgreSQL plant repository
func NewPlantRepository(db *sql.DB) plants.Repository {
	return &postgresPlantRepo{db: db}
}

// Create inserts a new plant
func (r *postgresPlantRepo) Create(ctx context.Context, plant *plants.Plant) (*plants.Plant, error) {
	query := `
		INSERT INTO plants (name, health_status, description, plant_image, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, health_status, description, plant_image, user_id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		plant.Name, plant.HealthStatus, plant.Description, plant.Image, plant.OwnerID).
		Scan(&plant.ID, &plant.Name, &plant.HealthStatus, &plant.Description,
			&plant.Image, &plant.OwnerID, &plant.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create plant: %w", err)
	}

	return plant, nil
}

// GetByID retrieves a plant by id, without its versions
func (r *postgresPlantRepo) GetByID(ctx context.Context, id int64) (*plants.Plant, error) {
	plant := &plants.Plant{}
	query := `
		SELECT id, name, health_status, description, plant_image, user_id, created_at
		FROM plants WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&plant.ID, &plant.Name, &plant.HealthStatus, &plant.Description,
			&plant.Image, &plant.OwnerID, &plant.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, plants.ErrPlantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plant by id: %w", err)
	}

	return plant, nil
}

// List returns a user's plants with their versions, newest plants first
func (r *postgresPlantRepo) List(ctx context.Context, ownerID int64) ([]plants.Plant, error) {
	query := `
		SELECT id, name, health_status, description, plant_image, user_id, created_at
		FROM plants WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query plants: %w", err)
	}
	defer closeRows(rows, "plants")

	var result []plants.Plant
	index := make(map[int64]int)
	for rows.Next() {
		var p plants.Plant
		if err := rows.Scan(&p.ID, &p.Name, &p.HealthStatus, &p.Description,
			&p.Image, &p.OwnerID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan plant row: %w", err)
		}
		p.Versions = []versions.Version{}
		index[p.ID] = len(result)
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plant rows: %w", err)
	}
	if len(result) == 0 {
		return result, nil
	}

	versionQuery := `
		SELECT v.id, v.plant_id, v.user_id, v.updated_health_status, v.updated_image, v.created_at
		FROM versions v
		JOIN plants p ON p.id = v.plant_id
		WHERE p.user_id = $1
		ORDER BY v.created_at DESC`

	vrows, err := r.db.QueryContext(ctx, versionQuery, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query plant versions: %w", err)
	}
	defer closeRows(vrows, "versions")

	for vrows.Next() {
		var v versions.Version
		if err := vrows.Scan(&v.ID, &v.PlantID, &v.UserID, &v.UpdatedHealthStatus,
			&v.UpdatedImage, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan version row: %w", err)
		}
		if i, ok := index[v.PlantID]; ok {
			result[i].Versions = append(result[i].Versions, v)
		}
	}
	if err := vrows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating version rows: %w", err)
	}

	return result, nil
}

// Update applies a partial update built from the non-nil request fields
func (r *postgresPlantRepo) Update(ctx context.Context, id int64, req plants.UpdatePlantRequest) (*plants.Plant, error) {
	setClauses := []string{}
	args := []interface{}{}
	argNum := 1

	if req.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argNum))
		args = append(args, *req.Name)
		argNum++
	}
	if req.HealthStatus != nil {
		setClauses = append(setClauses, fmt.Sprintf("health_status = $%d", argNum))
		args = append(args, *req.HealthStatus)
		argNum++
	}
	if req.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", argNum))
		args = append(args, *req.Description)
		argNum++
	}
	if req.Image != nil {
		setClauses = append(setClauses, fmt.Sprintf("plant_image = $%d", argNum))
		if len(*req.Image) == 0 {
			// Empty upload clears the image rather than storing zero bytes
			args = append(args, nil)
		} else {
			args = append(args, *req.Image)
		}
		argNum++
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE plants
		SET %s
		WHERE id = $%d
		RETURNING id, name, health_status, description, plant_image, user_id, created_at`,
		strings.Join(setClauses, ", "), argNum)

	plant := &plants.Plant{}
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&plant.ID, &plant.Name, &plant.HealthStatus, &plant.Description,
			&plant.Image, &plant.OwnerID, &plant.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, plants.ErrPlantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update plant: %w", err)
	}

	return plant, nil
}

// Delete removes a plant together with its versions and referencing posts
func (r *postgresPlantRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction for plant=%d: %w", id, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE plant_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete posts for plant=%d: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM versions WHERE plant_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete versions for plant=%d: %w", id, err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM plants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete plant=%d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected for plant=%d: %w", id, err)
	}
	if rowsAffected == 0 {
		return plants.ErrPlantNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit plant delete for plant=%d: %w", id, err)
	}
	return nil
}

// LatestVersionImage returns the image of the plant's most recently created
// version. (nil, nil) means the plant has no versions or the latest one has
// no image; ties on created_at are broken arbitrarily.
func (r *postgresPlantRepo) LatestVersionImage(ctx context.Context, plantID int64) ([]byte, error) {
	var image []byte
	query := `
		SELECT updated_image
		FROM versions
		WHERE plant_id = $1
		ORDER BY created_at DESC
		LIMIT 1`

	err := r.db.QueryRowContext(ctx, query, plantID).Scan(&image)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest version image: %w", err)
	}

	return image, nil
}
