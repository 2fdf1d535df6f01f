package goquery_test

import (
	"testing"

	"github.com/fwojciec/digest"
	"github.com/fwojciec/digest/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("puts block elements on their own lines", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Spring Sale</h1><p>All shovels are   half price.</p><ul><li>Shovels</li><li>Rakes</li></ul>`

		text, err := goquery.NewTextConverter().Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "Spring Sale\nAll shovels are half price.\nShovels\nRakes", text)
	})

	t.Run("keeps inline elements on the same line", func(t *testing.T) {
		t.Parallel()

		text, err := goquery.NewTextConverter().Convert(`<p>Read <a href="/x">the <em>full</em> story</a> now.</p>`)

		require.NoError(t, err)
		assert.Equal(t, "Read the full story now.", text)
	})

	t.Run("drops scripts and styles", func(t *testing.T) {
		t.Parallel()

		text, err := goquery.NewTextConverter().Convert(`<p>Visible</p><script>var x = 1;</script><style>p{}</style>`)

		require.NoError(t, err)
		assert.Equal(t, "Visible", text)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewTextConverter().Convert("\n")

		require.Error(t, err)
		assert.Equal(t, digest.EINVALID, digest.ErrorCode(err))
	})
}
