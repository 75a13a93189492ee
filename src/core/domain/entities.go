package domain

import "time"

// User is a registered jokester.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Joke is a joke submitted by a user.
type Joke struct {
	ID         string
	Name       string
	Content    string
	JokesterID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsOwnedBy reports whether userID is the jokester of j.
// An empty userID never owns anything.
func (j *Joke) IsOwnedBy(userID string) bool {
	return userID != "" && j.JokesterID == userID
}

// JokeListItem is the lightweight projection used by navigation lists.
type JokeListItem struct {
	ID   string
	Name string
}
