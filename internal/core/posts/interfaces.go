package posts

import "context"

// Repository defines the interface for post persistence
type Repository interface {
	// List returns posts joined with plant and author, newest first
	List(ctx context.Context, opts ListOptions) ([]PostView, error)
	// GetByID returns a single post joined with plant and author
	GetByID(ctx context.Context, id int64) (*PostView, error)
	Create(ctx context.Context, post *Post) (*Post, error)
	// Update persists title, description and liked for a post
	Update(ctx context.Context, id int64, req UpdatePostRequest) (*Post, error)
	// UpdateLiked persists only the liked flag
	UpdateLiked(ctx context.Context, id int64, liked bool) (*Post, error)
	Delete(ctx context.Context, id int64) error
}

// ImageResolver supplies the authoritative image for a plant at post creation.
// Satisfied by plants.Service.
type ImageResolver interface {
	ResolveImage(ctx context.Context, plantID int64) ([]byte, error)
}

// Service defines the interface for post business logic
type Service interface {
	List(ctx context.Context, opts ListOptions) ([]PostView, error)
	Get(ctx context.Context, id int64) (*PostView, error)
	Create(ctx context.Context, callerID int64, req CreatePostRequest) (*Post, error)
	Update(ctx context.Context, callerID, postID int64, req UpdatePostRequest) (*Post, error)
	UpdateLiked(ctx context.Context, callerID, postID int64, liked *bool) (*Post, error)
	Delete(ctx context.Context, postID int64) error
}
