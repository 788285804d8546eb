package i18n_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18n"
)

// fixtureCatalogs is the shared static catalog set used across tests:
// "pt" and "en" both hold shared_key, only "en" holds default_only.
func fixtureCatalogs() map[string]map[string]map[string]string {
	return map[string]map[string]map[string]string{
		"en": {
			"tests": {
				"bye":          "Bye!",
				"hello":        "Hello, {0}!",
				"shared_key":   "english value",
				"default_only": "only in english",
			},
		},
		"pt": {
			"tests": {
				"shared_key": "portuguese value",
			},
		},
		"pt-br": {
			"tests": {
				"local_key": "brazilian value",
			},
		},
	}
}

func newFixtureLocalizer(t *testing.T, opts ...i18n.Option) *i18n.Localizer {
	t.Helper()
	base := []i18n.Option{
		i18n.WithDefaultLocale("en"),
		i18n.WithSupportedLocales("en", "pt", "pt-br"),
		i18n.WithLoader(i18n.NewStaticLoader(fixtureCatalogs())),
	}
	loc, err := i18n.New(append(base, opts...)...)
	require.NoError(t, err)
	return loc
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		loc, err := i18n.New()
		require.NoError(t, err)
		require.Equal(t, "en", loc.DefaultLocale())
		require.Equal(t, "en", loc.CurrentLocale())
		require.Equal(t, []string{"en"}, loc.SupportedLocales())
		require.Equal(t, i18n.FallbackDefault, loc.Fallback())
	})

	t.Run("current locale defaults to the default locale", func(t *testing.T) {
		t.Parallel()

		loc, err := i18n.New(i18n.WithDefaultLocale("de"))
		require.NoError(t, err)
		require.Equal(t, "de", loc.CurrentLocale())
	})

	t.Run("supported set always contains default and current", func(t *testing.T) {
		t.Parallel()

		loc, err := i18n.New(
			i18n.WithDefaultLocale("en"),
			i18n.WithCurrentLocale("pt-br"),
			i18n.WithSupportedLocales("de"),
		)
		require.NoError(t, err)
		require.Equal(t, []string{"de", "en", "pt-br"}, loc.SupportedLocales())
	})

	t.Run("rejects empty locales", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.New(i18n.WithDefaultLocale(""))
		require.ErrorIs(t, err, i18n.ErrEmptyLocale)

		_, err = i18n.New(i18n.WithCurrentLocale(""))
		require.ErrorIs(t, err, i18n.ErrEmptyLocale)
	})

	t.Run("rejects invalid fallback", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.New(i18n.WithFallback(i18n.Fallback(7)))
		require.ErrorIs(t, err, i18n.ErrInvalidFallback)
	})

	t.Run("rejects nil collaborators", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.New(i18n.WithLoader(nil))
		require.ErrorIs(t, err, i18n.ErrNilLoader)

		_, err = i18n.New(i18n.WithFormatter(nil))
		require.ErrorIs(t, err, i18n.ErrNilFormatter)

		_, err = i18n.New(i18n.WithObserver(nil))
		require.ErrorIs(t, err, i18n.ErrNilObserver)
	})

	t.Run("rejects missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.New(i18n.WithDirectories(t.TempDir(), "/definitely/not/there"))
		require.ErrorIs(t, err, i18n.ErrInvalidDirectory)
	})

	t.Run("lines injected at construction win over loaded catalogs", func(t *testing.T) {
		t.Parallel()

		loc := newFixtureLocalizer(t, i18n.WithLines("en", "tests", map[string]string{"bye": "Injected bye"}))
		assert.Equal(t, "Injected bye", loc.T("tests", "bye"))
		assert.Equal(t, "Hello, Mary!", loc.T("tests", "hello", "Mary"))
	})
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("resolves and formats positional arguments", func(t *testing.T) {
		t.Parallel()

		loc := newFixtureLocalizer(t)
		assert.Equal(t, "Hello, Mary!", loc.T("tests", "hello", "Mary"))
		assert.Equal(t, "Bye!", loc.T("tests", "bye"))
	})

	t.Run("unset key returns the sentinel", func(t *testing.T) {
		t.Parallel()

		loc := newFixtureLocalizer(t)
		assert.Equal(t, "tests.unknown", loc.T("tests", "unknown"))
	})

	t.Run("sentinel for every supported locale with no data", func(t *testing.T) {
		t.Parallel()

		loc, err := i18n.New(
			i18n.WithSupportedLocales("en", "fr", "pt-br"),
			i18n.WithFallback(i18n.FallbackDefault),
		)
		require.NoError(t, err)

		for _, locale := range loc.SupportedLocales() {
			assert.Equal(t, "tests.unset", loc.TIn(locale, "tests", "unset"))
		}
	})

	t.Run("named arguments", func(t *testing.T) {
		t.Parallel()

		loc := newFixtureLocalizer(t, i18n.WithLines("en", "tests", map[string]string{
			"greet": "Welcome back, {name}!",
		}))
		assert.Equal(t, "Welcome back, John!", loc.T("tests", "greet", i18n.M{"name": "John"}))
	})

	t.Run("formatting failure falls back to the raw template", func(t *testing.T) {
		t.Parallel()

		loc := newFixtureLocalizer(t)
		// No argument for {0}: the formatter errors, the raw template wins.
		assert.Equal(t, "Hello, {0}!", loc.T("tests", "hello"))
	})

	t.Run("dotted reference", func(t *testing.T) {
		t.Parallel()

		loc := newFixtureLocalizer(t)
		assert.Equal(t, "Hello, Mary!", loc.TDotted("tests.hello", "Mary"))
		assert.Equal(t, "nodot", loc.TDotted("nodot"))
		assert.Equal(t, ".leading", loc.TDotted(".leading"))
	})

	t.Run("loader failure surfaces from Render", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("disk on fire")
		loc, err := i18n.New(i18n.WithLoader(failingLoader{err: boom}))
		require.NoError(t, err)

		text, err := loc.Render(context.Background(), "tests", "hello")
		require.ErrorIs(t, err, boom)
		require.Equal(t, "tests.hello", text)

		// The string convenience degrades to the sentinel.
		assert.Equal(t, "tests.hello", loc.T("tests", "hello"))
	})
}

func TestFallbackChain(t *testing.T) {
	t.Parallel()

	t.Run("parent wins over default", func(t *testing.T) {
		t.Parallel()

		loc := newFixtureLocalizer(t, i18n.WithCurrentLocale("pt-br"))
		// Both "pt" and "en" hold shared_key; the parent must win.
		assert.Equal(t, "portuguese value", loc.T("tests", "shared_key"))
	})

	t.Run("default locale is the last resort", func(t *testing.T) {
		t.Parallel()

		loc := newFixtureLocalizer(t, i18n.WithCurrentLocale("pt-br"))
		assert.Equal(t, "only in english", loc.T("tests", "default_only"))
	})

	t.Run("requested locale itself wins first", func(t *testing.T) {
		t.Parallel()

		loc := newFixtureLocalizer(t, i18n.WithCurrentLocale("pt-br"))
		assert.Equal(t, "brazilian value", loc.T("tests", "local_key"))
	})

	t.Run("parent policy does not reach the default locale", func(t *testing.T) {
		t.Parallel()

		loc := newFixtureLocalizer(t,
			i18n.WithCurrentLocale("pt-br"),
			i18n.WithFallback(i18n.FallbackParent),
		)
		assert.Equal(t, "tests.default_only", loc.T("tests", "default_only"))
		assert.Equal(t, "portuguese value", loc.T("tests", "shared_key"))
	})

	t.Run("none policy consults only the requested locale", func(t *testing.T) {
		t.Parallel()

		loc := newFixtureLocalizer(t,
			i18n.WithCurrentLocale("pt-br"),
			i18n.WithFallback(i18n.FallbackNone),
		)
		assert.Equal(t, "brazilian value", loc.T("tests", "local_key"))
		assert.Equal(t, "tests.shared_key", loc.T("tests", "shared_key"))
	})

	t.Run("locale without separator skips the parent step", func(t *testing.T) {
		t.Parallel()

		loc := newFixtureLocalizer(t, i18n.WithCurrentLocale("pt"))
		assert.Equal(t, "portuguese value", loc.T("tests", "shared_key"))
		assert.Equal(t, "only in english", loc.T("tests", "default_only"))
	})

	t.Run("unsupported locale resolves through fallback only", func(t *testing.T) {
		t.Parallel()

		loc := newFixtureLocalizer(t)
		// "fr" is not supported: its catalogs are never scanned, but the
		// default step still applies.
		assert.Equal(t, "Bye!", loc.TIn("fr", "tests", "bye"))
		assert.Equal(t, "tests.local_key", loc.TIn("fr", "tests", "local_key"))
	})
}

func TestHasLine(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("reports resolution including fallback", func(t *testing.T) {
		t.Parallel()

		loc := newFixtureLocalizer(t, i18n.WithCurrentLocale("pt-br"))
		assert.True(t, loc.HasLine(ctx, "tests", "local_key"))
		assert.True(t, loc.HasLine(ctx, "tests", "shared_key"))
		assert.True(t, loc.HasLine(ctx, "tests", "default_only"))
		assert.False(t, loc.HasLine(ctx, "tests", "unknown"))
	})

	t.Run("honors the fallback policy", func(t *testing.T) {
		t.Parallel()

		loc := newFixtureLocalizer(t,
			i18n.WithCurrentLocale("pt-br"),
			i18n.WithFallback(i18n.FallbackNone),
		)
		assert.True(t, loc.HasLine(ctx, "tests", "local_key"))
		assert.False(t, loc.HasLine(ctx, "tests", "default_only"))
	})

	t.Run("explicit locale", func(t *testing.T) {
		t.Parallel()

		loc := newFixtureLocalizer(t)
		assert.True(t, loc.HasLineIn(ctx, "pt", "tests", "shared_key"))
		assert.False(t, loc.HasLineIn(ctx, "pt-br", "tests", "nope"))
	})
}

func TestInjectedLines(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("injection after load overrides", func(t *testing.T) {
		t.Parallel()

		loc := newFixtureLocalizer(t)
		assert.Equal(t, "Bye!", loc.T("tests", "bye"))

		require.NoError(t, loc.AddLines(ctx, "en", "tests", map[string]string{"bye": "Adios"}))
		assert.Equal(t, "Adios", loc.T("tests", "bye"))
	})

	t.Run("injection before first load also wins", func(t *testing.T) {
		t.Parallel()

		count := newCountingLoader(i18n.NewStaticLoader(fixtureCatalogs()))
		loc, err := i18n.New(
			i18n.WithDefaultLocale("en"),
			i18n.WithLoader(count),
		)
		require.NoError(t, err)

		require.NoError(t, loc.AddLines(ctx, "en", "tests", map[string]string{"bye": "Adios"}))
		// The injection itself triggered the scan, so file-backed keys are
		// present next to the override.
		assert.Equal(t, "Adios", loc.T("tests", "bye"))
		assert.Equal(t, "Hello, Mary!", loc.T("tests", "hello", "Mary"))
	})

	t.Run("injected lines work for unsupported locales", func(t *testing.T) {
		t.Parallel()

		loc := newFixtureLocalizer(t)
		require.NoError(t, loc.AddLines(ctx, "fr", "tests", map[string]string{"bye": "Au revoir"}))
		assert.Equal(t, "Au revoir", loc.TIn("fr", "tests", "bye"))
	})

	t.Run("rejects empty identifiers", func(t *testing.T) {
		t.Parallel()

		loc := newFixtureLocalizer(t)
		require.ErrorIs(t, loc.AddLines(ctx, "", "tests", nil), i18n.ErrEmptyLocale)
		require.ErrorIs(t, loc.AddLines(ctx, "en", "", nil), i18n.ErrEmptyNamespace)
		require.ErrorIs(t, loc.AddLines(ctx, "en", "tests", map[string]string{"": "x"}), i18n.ErrEmptyKey)
	})

	t.Run("Lines exposes a deep copy", func(t *testing.T) {
		t.Parallel()

		loc := newFixtureLocalizer(t)
		loc.T("tests", "bye")

		lines := loc.Lines()
		require.Equal(t, "Bye!", lines["en"]["tests"]["bye"])

		lines["en"]["tests"]["bye"] = "mutated"
		assert.Equal(t, "Bye!", loc.T("tests", "bye"))
	})

	t.Run("ResetLines drops injected overrides", func(t *testing.T) {
		t.Parallel()

		loc := newFixtureLocalizer(t)
		require.NoError(t, loc.AddLines(ctx, "en", "tests", map[string]string{"bye": "Adios"}))
		require.Equal(t, "Adios", loc.T("tests", "bye"))

		loc.ResetLines()
		assert.Equal(t, "Bye!", loc.T("tests", "bye"))
	})

	t.Run("Reset keeps injected overrides", func(t *testing.T) {
		t.Parallel()

		loc := newFixtureLocalizer(t)
		require.NoError(t, loc.AddLines(ctx, "en", "tests", map[string]string{"bye": "Adios"}))

		loc.Reset()
		assert.Equal(t, "Adios", loc.T("tests", "bye"))
		assert.Equal(t, "Hello, Mary!", loc.T("tests", "hello", "Mary"))
	})
}

func TestScanMemoization(t *testing.T) {
	t.Parallel()

	t.Run("each pair is scanned once", func(t *testing.T) {
		t.Parallel()

		count := newCountingLoader(i18n.NewStaticLoader(fixtureCatalogs()))
		root := t.TempDir()
		loc, err := i18n.New(
			i18n.WithDefaultLocale("en"),
			i18n.WithSupportedLocales("en", "pt"),
			i18n.WithDirectories(root),
			i18n.WithLoader(count),
		)
		require.NoError(t, err)

		loc.T("tests", "bye")
		loc.T("tests", "hello", "x")
		loc.T("tests", "bye")
		assert.Equal(t, 1, count.calls["en:tests"])
	})

	t.Run("new namespaces under a scanned locale still load", func(t *testing.T) {
		t.Parallel()

		catalogs := fixtureCatalogs()
		catalogs["en"]["emails"] = map[string]string{"subject": "Hi"}
		count := newCountingLoader(i18n.NewStaticLoader(catalogs))
		root := t.TempDir()
		loc, err := i18n.New(
			i18n.WithDefaultLocale("en"),
			i18n.WithDirectories(root),
			i18n.WithLoader(count),
		)
		require.NoError(t, err)

		assert.Equal(t, "Bye!", loc.T("tests", "bye"))
		assert.Equal(t, "Hi", loc.T("emails", "subject"))
		assert.Equal(t, 1, count.calls["en:tests"])
		assert.Equal(t, 1, count.calls["en:emails"])
	})

	t.Run("unsupported locales are never scanned", func(t *testing.T) {
		t.Parallel()

		count := newCountingLoader(i18n.NewStaticLoader(fixtureCatalogs()))
		root := t.TempDir()
		loc, err := i18n.New(
			i18n.WithDefaultLocale("en"),
			i18n.WithDirectories(root),
			i18n.WithLoader(count),
		)
		require.NoError(t, err)

		loc.TIn("pt-br", "tests", "local_key")
		assert.Zero(t, count.calls["pt-br:tests"])
		assert.Equal(t, 1, count.calls["en:tests"])
	})
}

func TestObserver(t *testing.T) {
	t.Parallel()

	recorder := i18n.NewRecorder()
	loc := newFixtureLocalizer(t,
		i18n.WithCurrentLocale("pt-br"),
		i18n.WithObserver(recorder),
	)

	loc.T("tests", "shared_key")
	loc.T("tests", "missing_key")

	events := recorder.Events()
	require.Len(t, events, 2)

	first := events[0]
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "tests", first.Namespace)
	assert.Equal(t, "shared_key", first.Key)
	assert.Equal(t, "pt-br", first.RequestedLocale)
	assert.Equal(t, "pt", first.ResolvedLocale)
	assert.Equal(t, "portuguese value", first.Text)
	assert.True(t, first.Resolved)
	assert.False(t, first.FinishedAt.Before(first.StartedAt))

	second := events[1]
	assert.False(t, second.Resolved)
	assert.Equal(t, "tests.missing_key", second.Text)
	assert.NotEqual(t, first.ID, second.ID)

	recorder.Reset()
	assert.Empty(t, recorder.Events())
}
