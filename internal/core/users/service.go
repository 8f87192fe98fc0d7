package users

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
)

type userService struct {
	repo   Repository
	hasher CredentialHasher
}

// NewUserService creates a new user service
func NewUserService(repo Repository, hasher CredentialHasher) Service {
	return &userService{
		repo:   repo,
		hasher: hasher,
	}
}

// Register creates a new client account with a hashed credential
func (s *userService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(strings.ToLower(req.Email))

	if name == "" {
		return nil, &ValidationError{Message: "name is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid email address: %q", req.Email)}
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	user := &User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         RoleClient,
	}

	// Repository maps the unique constraint on email to ErrEmailTaken
	return s.repo.Create(ctx, user)
}

// VerifyCredentials checks an email/password pair.
// A missing user and a wrong password both return ErrInvalidCredentials so
// the response does not reveal which accounts exist.
func (s *userService) VerifyCredentials(ctx context.Context, email, password string) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err == ErrUserNotFound {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *userService) List(ctx context.Context) ([]UserDetail, error) {
	return s.repo.List(ctx)
}

func (s *userService) Get(ctx context.Context, id int64) (*UserDetail, error) {
	if id <= 0 {
		return nil, ErrUserNotFound
	}
	return s.repo.GetDetail(ctx, id)
}

// Update applies a partial update to a user. The role is validated at this
// boundary and a new password is hashed before anything reaches the store.
func (s *userService) Update(ctx context.Context, id int64, req UpdateUserRequest) (*User, error) {
	if id <= 0 {
		return nil, ErrUserNotFound
	}

	input := UpdateUserInput{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, &ValidationError{Message: "name must not be empty"}
		}
		input.Name = &name
	}
	if req.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*req.Email))
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("invalid email address: %q", *req.Email)}
		}
		input.Email = &email
	}
	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, &ValidationError{Message: err.Error()}
		}
		input.PasswordHash = &hash
	}
	if req.Role != nil {
		role := Role(strings.ToLower(strings.TrimSpace(*req.Role)))
		if !role.Valid() {
			return nil, &InvalidRoleError{Role: *req.Role}
		}
		input.Role = &role
	}

	return s.repo.Update(ctx, id, input)
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrUserNotFound
	}
	return s.repo.Delete(ctx, id)
}
