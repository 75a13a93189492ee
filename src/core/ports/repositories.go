// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"jokeshare/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// UserRepository persists users.
type UserRepository interface {
	// CreateUser inserts a user. It fails with a conflict error if the username is taken.
	CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUserByID(ctx context.Context, id string) (*domain.User, error)
}

// JokeRepository persists jokes.
//
// Lookups return a not found error when nothing matches.
type JokeRepository interface {
	CreateJoke(ctx context.Context, name, content, jokesterID string) (*domain.Joke, error)
	FindJokeByID(ctx context.Context, id string) (*domain.Joke, error)
	// ListJokes returns at most limit list items ordered by creation time.
	ListJokes(ctx context.Context, limit int, newestFirst bool) ([]domain.JokeListItem, error)
	CountJokes(ctx context.Context) (int, error)
	// FindJokeByOffset returns the joke at offset in oldest-first order.
	FindJokeByOffset(ctx context.Context, offset int) (*domain.Joke, error)
	DeleteJoke(ctx context.Context, id string) error
}

// Store is the composite data access layer backing the application.
type Store interface {
	Repository
	UserRepository
	JokeRepository
}
