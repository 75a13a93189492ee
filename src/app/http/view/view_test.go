package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jokeshare/src/core/domain"
)

func TestJokeDocument(t *testing.T) {
	doc := JokeDocument(&domain.Joke{Name: "Road worker"})
	assert.Equal(t, "Road worker joke", doc.Title)
	assert.Equal(t, `Enjoy the "Road worker" joke and much more`, doc.Description)

	missing := JokeDocument(nil)
	assert.Equal(t, "No joke", missing.Title)
	assert.Equal(t, "No joke found", missing.Description)
}

func TestStatusDocument(t *testing.T) {
	assert.Equal(t, "404 Not Found", StatusDocument(404, "Not Found").Title)
	assert.Equal(t, "Uh-oh!", CrashDocument().Title)
	assert.Equal(t, "Remix Jokes | Login", LoginDocument().Title)
}
