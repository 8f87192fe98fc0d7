package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Verdant/internal/core/plants"
	"Verdant/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

const postViewColumns = `
	p.id, p.title, p.description, p.photo, p.liked, p.user_id, p.plant_id, p.created_at,
	pl.id, pl.name, pl.health_status, pl.description, pl.user_id, pl.created_at,
	u.id, u.name, u.email, u.role`

func scanPostView(scan func(dest ...interface{}) error) (*posts.PostView, error) {
	view := &posts.PostView{
		Plant:  &plants.Plant{},
		Author: &posts.Author{},
	}
	err := scan(
		&view.ID, &view.Title, &view.Description, &view.Photo, &view.Liked,
		&view.AuthorID, &view.PlantID, &view.CreatedAt,
		&view.Plant.ID, &view.Plant.Name, &view.Plant.HealthStatus,
		&view.Plant.Description, &view.Plant.OwnerID, &view.Plant.CreatedAt,
		&view.Author.ID, &view.Author.Name, &view.Author.Email, &view.Author.Role,
	)
	if err != nil {
		return nil, err
	}
	return view, nil
}

// List returns posts joined with plant and author, newest first.
// The plant's image bytes are left out of listings; the post carries its own
// photo snapshot and the full plant is available via the plant endpoints.
func (r *postgresPostRepo) List(ctx context.Context, opts posts.ListOptions) ([]posts.PostView, error) {
	var sb strings.Builder
	args := []interface{}{}

	sb.WriteString(`
		SELECT ` + postViewColumns + `
		FROM posts p
		JOIN plants pl ON pl.id = p.plant_id
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC`)

	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}
	if opts.Offset > 0 {
		args = append(args, opts.Offset)
		sb.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer closeRows(rows, "posts")

	result := []posts.PostView{}
	for rows.Next() {
		view, err := scanPostView(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		result = append(result, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return result, nil
}

// GetByID returns a single post joined with plant and author
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.PostView, error) {
	query := `
		SELECT ` + postViewColumns + `
		FROM posts p
		JOIN plants pl ON pl.id = p.plant_id
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1`

	view, err := scanPostView(r.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return view, nil
}

// Create inserts a new post with its photo snapshot
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (title, description, photo, liked, user_id, plant_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, title, description, photo, liked, user_id, plant_id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		post.Title, post.Description, post.Photo, post.Liked, post.AuthorID, post.PlantID).
		Scan(&post.ID, &post.Title, &post.Description, &post.Photo, &post.Liked,
			&post.AuthorID, &post.PlantID, &post.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "violates foreign key constraint") &&
			strings.Contains(err.Error(), "plant_id") {
			return nil, fmt.Errorf("plant disappeared during post creation: %w", err)
		}
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return post, nil
}

// Update persists title, description and liked
func (r *postgresPostRepo) Update(ctx context.Context, id int64, req posts.UpdatePostRequest) (*posts.Post, error) {
	post := &posts.Post{}
	query := `
		UPDATE posts
		SET title = $2, description = $3, liked = $4
		WHERE id = $1
		RETURNING id, title, description, photo, liked, user_id, plant_id, created_at`

	err := r.db.QueryRowContext(ctx, query, id, req.Title, req.Description, req.Liked).
		Scan(&post.ID, &post.Title, &post.Description, &post.Photo, &post.Liked,
			&post.AuthorID, &post.PlantID, &post.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// UpdateLiked persists only the liked flag
func (r *postgresPostRepo) UpdateLiked(ctx context.Context, id int64, liked bool) (*posts.Post, error) {
	post := &posts.Post{}
	query := `
		UPDATE posts
		SET liked = $2
		WHERE id = $1
		RETURNING id, title, description, photo, liked, user_id, plant_id, created_at`

	err := r.db.QueryRowContext(ctx, query, id, liked).
		Scan(&post.ID, &post.Title, &post.Description, &post.Photo, &post.Liked,
			&post.AuthorID, &post.PlantID, &post.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update liked: %w", err)
	}

	return post, nil
}

// Delete removes a post; a missing row reports ErrPostNotFound, not a fault
func (r *postgresPostRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post=%d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected for post=%d: %w", id, err)
	}
	if rowsAffected == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}
