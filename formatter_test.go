package digest_test

import (
	"testing"

	"github.com/fwojciec/digest"
	"github.com/stretchr/testify/assert"
)

func TestStuffDocuments(t *testing.T) {
	t.Parallel()

	t.Run("returns content of a single document", func(t *testing.T) {
		t.Parallel()

		docs := []*digest.Document{
			{Title: "Getting Started", Content: "Welcome to the docs."},
		}

		assert.Equal(t, "Welcome to the docs.", digest.StuffDocuments(docs))
	})

	t.Run("joins multiple documents with blank line separator", func(t *testing.T) {
		t.Parallel()

		docs := []*digest.Document{
			{Content: "First part."},
			{Content: "Second part."},
		}

		assert.Equal(t, "First part.\n\nSecond part.", digest.StuffDocuments(docs))
	})

	t.Run("skips blank documents", func(t *testing.T) {
		t.Parallel()

		docs := []*digest.Document{
			{Content: "  \n"},
			{Content: "Only this."},
			nil,
		}

		assert.Equal(t, "Only this.", digest.StuffDocuments(docs))
	})

	t.Run("returns empty string for no documents", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, digest.StuffDocuments(nil))
	})
}
