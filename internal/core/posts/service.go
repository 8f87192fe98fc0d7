package posts

import (
	"context"
	"fmt"
	"log"
	"strings"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

type postService struct {
	repo     Repository
	resolver ImageResolver
}

// NewPostService creates a new post service
func NewPostService(repo Repository, resolver ImageResolver) Service {
	return &postService{
		repo:     repo,
		resolver: resolver,
	}
}

// List returns all posts newest-first, joined with plant and author.
// The result set is unbounded unless the caller asks for a limit.
func (s *postService) List(ctx context.Context, opts ListOptions) ([]PostView, error) {
	if opts.Limit < 0 || opts.Offset < 0 {
		return nil, NewValidationError("limit", "limit and offset must not be negative")
	}
	return s.repo.List(ctx, opts)
}

func (s *postService) Get(ctx context.Context, id int64) (*PostView, error) {
	if id <= 0 {
		return nil, ErrPostNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Create creates a post on behalf of the authenticated caller.
// Flow:
//  1. Require identity
//  2. Validate input
//  3. Resolve the plant's authoritative image (plant image, else latest
//     version image); failures propagate before anything is written
//  4. Persist the post with the photo snapshot and liked=false
//
// Steps 3 and 4 are two independent store round trips, not one transaction:
// a version deleted between them can leave the snapshot pointing at an image
// that no longer exists anywhere else. Known limitation.
func (s *postService) Create(ctx context.Context, callerID int64, req CreatePostRequest) (*Post, error) {
	if callerID <= 0 {
		return nil, ErrAuthRequired
	}
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	photo, err := s.resolver.ResolveImage(ctx, req.PlantID)
	if err != nil {
		// ErrPlantNotFound and ErrNoImageAvailable pass through unchanged
		return nil, err
	}

	post := &Post{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Photo:       append([]byte(nil), photo...), // snapshot, not a live reference
		Liked:       false,
		AuthorID:    callerID,
		PlantID:     req.PlantID,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	log.Printf("[POST-CREATE] author=%d plant=%d post=%d", callerID, req.PlantID, created.ID)
	return created, nil
}

// Update applies a full update to a post. Only the post's author may update it.
func (s *postService) Update(ctx context.Context, callerID, postID int64, req UpdatePostRequest) (*Post, error) {
	if callerID <= 0 {
		return nil, ErrAuthRequired
	}

	existing, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := assertOwner(existing.AuthorID, callerID); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, postID, req)
}

// UpdateLiked toggles the liked flag on a post. Any authenticated caller may
// toggle any post; there is deliberately no ownership check here.
func (s *postService) UpdateLiked(ctx context.Context, callerID, postID int64, liked *bool) (*Post, error) {
	if callerID <= 0 {
		return nil, ErrAuthRequired
	}

	if _, err := s.repo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	// liked must be an explicit boolean, not merely absent
	if liked == nil {
		return nil, ErrLikedRequired
	}

	return s.repo.UpdateLiked(ctx, postID, *liked)
}

// Delete removes a post. No ownership check is performed; authentication is
// enforced at the route level only.
func (s *postService) Delete(ctx context.Context, postID int64) error {
	if postID <= 0 {
		return ErrPostNotFound
	}
	return s.repo.Delete(ctx, postID)
}

// assertOwner compares a resource's recorded owner against the caller
func assertOwner(ownerID, callerID int64) error {
	if ownerID != callerID {
		return ErrNotPostAuthor
	}
	return nil
}

func validateCreateRequest(req CreatePostRequest) error {
	if req.PlantID <= 0 {
		return NewValidationError("plantId", "plantId is required")
	}
	if strings.TrimSpace(req.Title) == "" {
		return NewValidationError("title", "title is required")
	}
	if len(req.Title) > maxTitleLength {
		return NewValidationError("title",
			fmt.Sprintf("title too long (max %d bytes)", maxTitleLength))
	}
	if len(req.Description) > maxDescriptionLength {
		return NewValidationError("description",
			fmt.Sprintf("description too long (max %d bytes)", maxDescriptionLength))
	}
	return nil
}
