package usecase

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"jokeshare/src/core/domain"
	"jokeshare/src/core/ports"
)

// JokeService handles listing, reading, creating and deleting jokes.
type JokeService struct {
	store ports.Store
	log   *slog.Logger

	// intn picks the random offset; replaced in tests.
	intn func(n int) int
}

func NewJokeService(store ports.Store, log *slog.Logger) *JokeService {
	return &JokeService{store: store, log: log, intn: rand.IntN}
}

// RandomJoke is a randomly picked joke and its author.
type RandomJoke struct {
	Joke *domain.Joke
	// Jokester is nil if the author no longer exists.
	Jokester *domain.User
}

// JokeView is a joke as seen by a particular viewer.
type JokeView struct {
	Joke    *domain.Joke
	IsOwner bool
}

// Recent returns the titles of the most recently created jokes.
func (s *JokeService) Recent(ctx context.Context) ([]domain.JokeListItem, error) {
	return s.store.ListJokes(ctx, domain.RecentJokesLimit, true)
}

// Random picks a joke at a uniformly random offset.
// It returns a not found error when there are no jokes.
func (s *JokeService) Random(ctx context.Context) (*RandomJoke, error) {
	count, err := s.store.CountJokes(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, domain.NewNotFoundError("no random joke found")
	}

	// The joke at this offset may have been deleted since the count; that
	// surfaces as not found as well.
	joke, err := s.store.FindJokeByOffset(ctx, s.intn(count))
	if err != nil {
		return nil, err
	}

	jokester, err := s.store.FindUserByID(ctx, joke.JokesterID)
	if err != nil && !domain.IsNotFound(err) {
		return nil, err
	}
	return &RandomJoke{Joke: joke, Jokester: jokester}, nil
}

// Get loads a joke and flags whether viewerID owns it.
func (s *JokeService) Get(ctx context.Context, id, viewerID string) (*JokeView, error) {
	joke, err := s.store.FindJokeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &JokeView{Joke: joke, IsOwner: joke.IsOwnedBy(viewerID)}, nil
}

// Create validates and stores a joke owned by jokesterID.
func (s *JokeService) Create(ctx context.Context, jokesterID, name, content string) (*domain.Joke, error) {
	if err := domain.ValidateJoke(name, content).Err(); err != nil {
		return nil, err
	}

	if _, err := s.store.FindUserByID(ctx, jokesterID); err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewUnauthorizedError("jokester does not exist")
		}
		return nil, err
	}

	joke, err := s.store.CreateJoke(ctx, name, content, jokesterID)
	if err != nil {
		return nil, err
	}

	s.log.Info("joke created", "joke_id", joke.ID, "jokester_id", jokesterID)
	return joke, nil
}

// Delete removes a joke on behalf of userID, who must be its jokester.
func (s *JokeService) Delete(ctx context.Context, id, userID string) error {
	joke, err := s.store.FindJokeByID(ctx, id)
	if err != nil {
		return err
	}
	if !joke.IsOwnedBy(userID) {
		return domain.NewForbiddenError("not the jokester")
	}

	if err := s.store.DeleteJoke(ctx, id); err != nil {
		return err
	}

	s.log.Info("joke deleted", "joke_id", id, "jokester_id", userID)
	return nil
}
