package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"Verdant/internal/core/plants"
	"Verdant/internal/core/posts"
	"Verdant/internal/core/users"
	"Verdant/internal/core/versions"

	"github.com/lib/pq"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

// Create inserts a new user into the users table
func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, password_hash, role, created_at`

	err := r.db.QueryRowContext(ctx, query, user.Name, user.Email, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "users_email_key") {
			return nil, users.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by id
func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	user := &users.User{}
	query := `SELECT id, name, email, password_hash, role, created_at FROM users WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email
func (r *postgresUserRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	user := &users.User{}
	query := `SELECT id, name, email, password_hash, role, created_at FROM users WHERE email = $1`

	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// List returns all users, each joined with their plants, versions and posts.
// Owned rows are fetched in three batch queries keyed by user id rather than
// one query per user.
func (r *postgresUserRepo) List(ctx context.Context) ([]users.UserDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, password_hash, role, created_at FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer closeRows(rows, "users")

	var details []users.UserDetail
	var ids []int64
	index := make(map[int64]int)
	for rows.Next() {
		var u users.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		index[u.ID] = len(details)
		ids = append(ids, u.ID)
		details = append(details, users.UserDetail{
			User:     u,
			Plants:   []plants.Plant{},
			Versions: []versions.Version{},
			Posts:    []posts.Post{},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	if len(details) == 0 {
		return details, nil
	}

	if err := r.attachPlants(ctx, ids, func(ownerID int64, p plants.Plant) {
		i := index[ownerID]
		details[i].Plants = append(details[i].Plants, p)
	}); err != nil {
		return nil, err
	}
	if err := r.attachVersions(ctx, ids, func(userID int64, v versions.Version) {
		i := index[userID]
		details[i].Versions = append(details[i].Versions, v)
	}); err != nil {
		return nil, err
	}
	if err := r.attachPosts(ctx, ids, func(authorID int64, p posts.Post) {
		i := index[authorID]
		details[i].Posts = append(details[i].Posts, p)
	}); err != nil {
		return nil, err
	}

	return details, nil
}

// GetDetail returns one user joined with their plants, versions and posts
func (r *postgresUserRepo) GetDetail(ctx context.Context, id int64) (*users.UserDetail, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &users.UserDetail{
		User:     *user,
		Plants:   []plants.Plant{},
		Versions: []versions.Version{},
		Posts:    []posts.Post{},
	}

	ids := []int64{id}
	if err := r.attachPlants(ctx, ids, func(_ int64, p plants.Plant) {
		detail.Plants = append(detail.Plants, p)
	}); err != nil {
		return nil, err
	}
	if err := r.attachVersions(ctx, ids, func(_ int64, v versions.Version) {
		detail.Versions = append(detail.Versions, v)
	}); err != nil {
		return nil, err
	}
	if err := r.attachPosts(ctx, ids, func(_ int64, p posts.Post) {
		detail.Posts = append(detail.Posts, p)
	}); err != nil {
		return nil, err
	}

	return detail, nil
}

func (r *postgresUserRepo) attachPlants(ctx context.Context, userIDs []int64, add func(int64, plants.Plant)) error {
	query := `
		SELECT id, name, health_status, description, plant_image, user_id, created_at
		FROM plants WHERE user_id = ANY($1) ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(userIDs))
	if err != nil {
		return fmt.Errorf("failed to query plants for users: %w", err)
	}
	defer closeRows(rows, "plants")

	for rows.Next() {
		var p plants.Plant
		if err := rows.Scan(&p.ID, &p.Name, &p.HealthStatus, &p.Description, &p.Image, &p.OwnerID, &p.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan plant row: %w", err)
		}
		add(p.OwnerID, p)
	}
	return rows.Err()
}

func (r *postgresUserRepo) attachVersions(ctx context.Context, userIDs []int64, add func(int64, versions.Version)) error {
	query := `
		SELECT id, plant_id, user_id, updated_health_status, updated_image, created_at
		FROM versions WHERE user_id = ANY($1) ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(userIDs))
	if err != nil {
		return fmt.Errorf("failed to query versions for users: %w", err)
	}
	defer closeRows(rows, "versions")

	for rows.Next() {
		var v versions.Version
		if err := rows.Scan(&v.ID, &v.PlantID, &v.UserID, &v.UpdatedHealthStatus, &v.UpdatedImage, &v.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan version row: %w", err)
		}
		add(v.UserID, v)
	}
	return rows.Err()
}

func (r *postgresUserRepo) attachPosts(ctx context.Context, userIDs []int64, add func(int64, posts.Post)) error {
	query := `
		SELECT id, title, description, photo, liked, user_id, plant_id, created_at
		FROM posts WHERE user_id = ANY($1) ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(userIDs))
	if err != nil {
		return fmt.Errorf("failed to query posts for users: %w", err)
	}
	defer closeRows(rows, "posts")

	for rows.Next() {
		var p posts.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Photo, &p.Liked, &p.AuthorID, &p.PlantID, &p.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan post row: %w", err)
		}
		add(p.AuthorID, p)
	}
	return rows.Err()
}

// Update applies a partial update built from the non-nil input fields
func (r *postgresUserRepo) Update(ctx context.Context, id int64, input users.UpdateUserInput) (*users.User, error) {
	setClauses := []string{}
	args := []interface{}{}
	argNum := 1

	if input.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argNum))
		args = append(args, *input.Name)
		argNum++
	}
	if input.Email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", argNum))
		args = append(args, *input.Email)
		argNum++
	}
	if input.PasswordHash != nil {
		setClauses = append(setClauses, fmt.Sprintf("password_hash = $%d", argNum))
		args = append(args, *input.PasswordHash)
		argNum++
	}
	if input.Role != nil {
		setClauses = append(setClauses, fmt.Sprintf("role = $%d", argNum))
		args = append(args, *input.Role)
		argNum++
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $%d
		RETURNING id, name, email, password_hash, role, created_at`,
		strings.Join(setClauses, ", "), argNum)

	user := &users.User{}
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "users_email_key") {
			return nil, users.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// Delete removes a user and everything they own in one transaction.
// Order matters: posts and versions reference plants, plants reference the user.
func (r *postgresUserRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction for user=%d: %w", id, err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("failed to rollback user delete",
				slog.Int64("user_id", id),
				slog.String("error", err.Error()),
			)
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete posts for user=%d: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM versions WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete versions for user=%d: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM plants WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete plants for user=%d: %w", id, err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user=%d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected for user=%d: %w", id, err)
	}
	if rowsAffected == 0 {
		return users.ErrUserNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit user delete for user=%d: %w", id, err)
	}

	return nil
}

// closeRows closes a result set, logging instead of failing on error
func closeRows(rows *sql.Rows, what string) {
	if err := rows.Close(); err != nil {
		slog.Warn("failed to close rows", slog.String("query", what), slog.String("error", err.Error()))
	}
}
