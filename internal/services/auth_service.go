package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/talenthuntpro/backend/internal/dto"
	"github.com/talenthuntpro/backend/internal/models"
	"github.com/talenthuntpro/backend/internal/password"
	"github.com/talenthuntpro/backend/internal/store"
)

type AuthService struct {
	users  store.Users
	hasher *password.Hasher
}

func NewAuthService(users store.Users, hasher *password.Hasher) *AuthService {
	return &AuthService{users: users, hasher: hasher}
}

// Register creates a user and returns the assigned ID. The pre-insert
// existence check gives the common case a clean error; the email
// unique constraint is what actually decides concurrent registrations,
// so the duplicate-key error from Create maps to ErrUserExists too.
func (s *AuthService) Register(req *dto.RegisterRequest) (string, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return "", ErrMissingFields
	}

	role := req.Role
	if role == "" {
		role = models.RoleGuest
	}
	if !models.ValidRole(role) {
		return "", ErrInvalidRole
	}

	if _, err := s.users.FindByEmail(req.Email); err == nil {
		return "", ErrUserExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  hash,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.users.Create(&user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return "", ErrUserExists
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	return user.ID.String(), nil
}

// Login verifies credentials and returns the public view. Unknown
// email and wrong password both come back as ErrInvalidCredentials so
// responses do not reveal which emails are registered.
func (s *AuthService) Login(req *dto.LoginRequest) (*models.UserView, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.hasher.Verify(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	view := user.PublicView()
	return &view, nil
}
