package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18n"
)

func TestMatchLocale(t *testing.T) {
	t.Parallel()

	newLoc := func(t *testing.T) *i18n.Localizer {
		t.Helper()
		loc, err := i18n.New(
			i18n.WithDefaultLocale("en"),
			i18n.WithCurrentLocale("en"),
			i18n.WithSupportedLocales("en", "pt", "pt-br", "de"),
		)
		require.NoError(t, err)
		return loc
	}

	t.Run("exact match wins", func(t *testing.T) {
		t.Parallel()
		loc := newLoc(t)
		assert.Equal(t, "pt-br", loc.MatchLocale("pt-BR,pt;q=0.9,en;q=0.8"))
	})

	t.Run("quality ordering decides between matches", func(t *testing.T) {
		t.Parallel()
		loc := newLoc(t)
		assert.Equal(t, "de", loc.MatchLocale("de;q=0.9,pt;q=0.5"))
	})

	t.Run("base language matches region variants", func(t *testing.T) {
		t.Parallel()
		loc := newLoc(t)
		assert.Equal(t, "de", loc.MatchLocale("de-AT"))
	})

	t.Run("no match falls back to the current locale", func(t *testing.T) {
		t.Parallel()
		loc := newLoc(t)
		assert.Equal(t, "en", loc.MatchLocale("ja,ko;q=0.8"))
		assert.Equal(t, "en", loc.MatchLocale(""))
	})

	t.Run("wildcard and malformed parts are ignored", func(t *testing.T) {
		t.Parallel()
		loc := newLoc(t)
		assert.Equal(t, "pt", loc.MatchLocale("*,pt;q=broken"))
	})

	t.Run("oversized headers are truncated not rejected", func(t *testing.T) {
		t.Parallel()
		loc := newLoc(t)
		header := strings.Repeat("xx,", 4096) + "de"
		assert.Equal(t, "en", loc.MatchLocale(header))
	})
}
