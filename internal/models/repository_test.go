package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swfz/qlaunch/internal/models"
)

func TestRepository(t *testing.T) {
	t.Parallel()

	t.Run("should strip the owner from the name", func(t *testing.T) {
		t.Parallel()

		// given
		repo := models.NewRepository("octocat/hello-world", "https://github.com/octocat/hello-world")

		// then
		assert.Equal(t, "hello-world", repo.Name())
	})

	t.Run("should fall back to the full name without an owner", func(t *testing.T) {
		t.Parallel()

		// given
		repo := models.NewRepository("orphan", "https://github.com/orphan")

		// then
		assert.Equal(t, "orphan", repo.Name())
	})
}

func TestFindURL(t *testing.T) {
	t.Parallel()

	repos := []models.Repository{
		models.NewRepository("octocat/a", "https://github.com/octocat/a"),
		models.NewRepository("octocat/b", "https://github.com/octocat/b"),
		models.NewRepository("octocat/a", "https://example.com/duplicate"),
	}

	t.Run("should return the first exact match", func(t *testing.T) {
		t.Parallel()

		// when
		url, ok := models.FindURL(repos, "octocat/a")

		// then
		assert.True(t, ok)
		assert.Equal(t, "https://github.com/octocat/a", url)
	})

	t.Run("should not match partial names", func(t *testing.T) {
		t.Parallel()

		// when
		url, ok := models.FindURL(repos, "octocat")

		// then
		assert.False(t, ok)
		assert.Empty(t, url)
	})

	t.Run("should handle an empty list", func(t *testing.T) {
		t.Parallel()

		_, ok := models.FindURL(nil, "octocat/a")
		assert.False(t, ok)
	})
}
