package usecase

import (
	"context"
	"log/slog"

	"jokeshare/src/core/domain"
	"jokeshare/src/core/ports"
)

// AuthService handles registration and credential checks.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	log    *slog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, log *slog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, log: log}
}

// Register hashes password and persists a new user.
// A taken username surfaces as a conflict error from the repository.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.CreateUser(ctx, username, hash)
	if err != nil {
		return nil, err
	}

	s.log.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login verifies the credentials and returns the matching user.
// Unknown usernames and wrong passwords produce the same unauthorized error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, invalidCredentials()
		}
		return nil, err
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, invalidCredentials()
	}
	return user, nil
}

// UsernameTaken reports whether a user with username already exists.
func (s *AuthService) UsernameTaken(ctx context.Context, username string) (bool, error) {
	_, err := s.users.FindUserByUsername(ctx, username)
	switch {
	case err == nil:
		return true, nil
	case domain.IsNotFound(err):
		return false, nil
	default:
		return false, err
	}
}

// UserByID loads a user by id.
func (s *AuthService) UserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindUserByID(ctx, id)
}

func invalidCredentials() error {
	return domain.NewUnauthorizedError("invalid credentials")
}
