package posts

import (
	"time"

	"Verdant/internal/core/plants"
)

// Post is a social share referencing a plant.
// Photo is a snapshot taken at creation time from the plant's resolved image;
// later changes to the plant or its versions never alter it.
type Post struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Photo       []byte    `json:"photo,omitempty"`
	Liked       bool      `json:"liked"`
	AuthorID    int64     `json:"userId"`
	PlantID     int64     `json:"plantId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Author is the subset of the post author exposed on joined reads
type Author struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// PostView is a post joined with its plant and author for display
type PostView struct {
	Post
	Plant  *plants.Plant `json:"plant,omitempty"`
	Author *Author       `json:"user,omitempty"`
}

// CreatePostRequest is the input for creating a post.
// The photo is not part of the request; it is derived from the plant.
type CreatePostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PlantID     int64  `json:"plantId"`
}

// UpdatePostRequest is the input for a full post update by its author
type UpdatePostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Liked       bool   `json:"liked"`
}

// ListOptions controls pagination of post listings.
// A zero Limit means no limit; ordering is always newest-first.
type ListOptions struct {
	Limit  int
	Offset int
}
