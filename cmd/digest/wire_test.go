package main

import (
	"testing"

	"github.com/fwojciec/digest/goquery"
	"github.com/fwojciec/digest/htmltomarkdown"
	"github.com/fwojciec/digest/readability"
	"github.com/fwojciec/digest/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticExtraction(t *testing.T) {
	t.Parallel()

	t.Run("goquery honors strip chrome", func(t *testing.T) {
		t.Parallel()

		ext, conv := staticExtraction(&CLI{Extractor: "goquery", StripChrome: true})

		g, ok := ext.(*goquery.Extractor)
		require.True(t, ok)
		assert.True(t, g.StripChrome)
		assert.IsType(t, &goquery.TextConverter{}, conv)
	})

	t.Run("trafilatura honors keep comments", func(t *testing.T) {
		t.Parallel()

		ext, conv := staticExtraction(&CLI{Extractor: "trafilatura", KeepComments: true})

		tr, ok := ext.(*trafilatura.Extractor)
		require.True(t, ok)
		assert.True(t, tr.KeepComments)
		assert.IsType(t, &htmltomarkdown.Converter{}, conv)
	})

	t.Run("readability", func(t *testing.T) {
		t.Parallel()

		ext, _ := staticExtraction(&CLI{Extractor: "readability"})

		assert.IsType(t, &readability.Extractor{}, ext)
	})

	t.Run("unset name falls back to goquery", func(t *testing.T) {
		t.Parallel()

		ext, _ := staticExtraction(&CLI{})

		assert.IsType(t, &goquery.Extractor{}, ext)
	})
}
