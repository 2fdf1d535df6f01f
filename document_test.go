package digest_test

import (
	"testing"

	"github.com/fwojciec/digest"
	"github.com/stretchr/testify/assert"
)

func TestDocument_IsEmpty(t *testing.T) {
	t.Parallel()

	var nilDoc *digest.Document
	assert.True(t, nilDoc.IsEmpty())
	assert.True(t, (&digest.Document{}).IsEmpty())
	assert.True(t, (&digest.Document{Title: "Title only", Content: " \t\n"}).IsEmpty())
	assert.False(t, (&digest.Document{Content: "text"}).IsEmpty())
}

func TestNonEmpty(t *testing.T) {
	t.Parallel()

	a := &digest.Document{Content: "a"}
	b := &digest.Document{Content: "b"}

	got := digest.NonEmpty([]*digest.Document{nil, a, {Content: ""}, b})

	assert.Equal(t, []*digest.Document{a, b}, got)
	assert.Empty(t, digest.NonEmpty(nil))
}
