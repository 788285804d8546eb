package i18n

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/dmitrymomot/i18n/format"
)

// DefaultLocale is used when no default locale is configured.
const DefaultLocale = "en"

// M is a convenience alias for named formatting arguments.
type M map[string]any

// Formatter interpolates a message template for a locale. Arguments are
// supplied positionally, by name, or both; the template grammar is owned
// entirely by the formatter implementation.
type Formatter interface {
	Format(locale, template string, positional []any, named map[string]any) (string, error)
}

// Localizer resolves localized messages from lazily scanned catalogs.
//
// It owns the locale registry (default/current/supported locales, search
// directories, fallback policy) and the catalog cache. A single mutex
// guards all state: lookups mutate the scanned-locale set as a side effect,
// so reads and writes share one exclusion boundary.
//
// Multiple Localizer instances coexist with fully isolated state.
type Localizer struct {
	mu sync.Mutex

	cat       *catalog
	loader    Loader
	formatter Formatter
	observer  Observer

	defaultLocale string
	currentLocale string
	supported     []string
	directories   []string
	fallback      Fallback

	pending []pendingLines
}

type pendingLines struct {
	locale    string
	namespace string
	lines     map[string]string
}

// Option configures a Localizer during construction.
type Option func(*Localizer) error

// New creates a Localizer with the given options.
//
// The default locale falls back to DefaultLocale, the current locale to the
// default locale, and the supported set always contains both. The file
// loader and the x/text message-format engine are used unless replaced.
func New(opts ...Option) (*Localizer, error) {
	l := &Localizer{
		cat:           newCatalog(),
		loader:        NewFileLoader(),
		formatter:     format.New(),
		defaultLocale: DefaultLocale,
		fallback:      FallbackDefault,
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, fmt.Errorf("i18n: failed to apply option: %w", err)
		}
	}

	if l.currentLocale == "" {
		l.currentLocale = l.defaultLocale
	}
	l.supported = unionSorted(l.supported, l.defaultLocale, l.currentLocale)

	for _, p := range l.pending {
		if err := l.addLinesLocked(context.Background(), p.locale, p.namespace, p.lines); err != nil {
			return nil, err
		}
	}
	l.pending = nil

	return l, nil
}

// WithDefaultLocale sets the default (last-resort fallback) locale.
func WithDefaultLocale(locale string) Option {
	return func(l *Localizer) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		l.defaultLocale = locale
		return nil
	}
}

// WithCurrentLocale sets the locale used when render calls do not name one.
func WithCurrentLocale(locale string) Option {
	return func(l *Localizer) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		l.currentLocale = locale
		return nil
	}
}

// WithSupportedLocales sets the locales eligible for catalog scanning.
// The default and current locales are always added to the set.
func WithSupportedLocales(locales ...string) Option {
	return func(l *Localizer) error {
		l.supported = unionSorted(nil, locales...)
		return nil
	}
}

// WithDirectories sets the catalog search paths. Every path must resolve to
// an existing directory or the option fails.
func WithDirectories(dirs ...string) Option {
	return func(l *Localizer) error {
		normalized, err := normalizeDirectories(dirs)
		if err != nil {
			return err
		}
		l.directories = normalized
		return nil
	}
}

// WithFallback sets the fallback policy.
func WithFallback(f Fallback) Option {
	return func(l *Localizer) error {
		if !f.valid() {
			return fmt.Errorf("%w: %d", ErrInvalidFallback, int(f))
		}
		l.fallback = f
		return nil
	}
}

// WithLoader replaces the catalog loader.
func WithLoader(loader Loader) Option {
	return func(l *Localizer) error {
		if loader == nil {
			return ErrNilLoader
		}
		l.loader = loader
		return nil
	}
}

// WithFormatter replaces the message-format engine.
func WithFormatter(f Formatter) Option {
	return func(l *Localizer) error {
		if f == nil {
			return ErrNilFormatter
		}
		l.formatter = f
		return nil
	}
}

// WithObserver attaches a render-event observer.
func WithObserver(o Observer) Option {
	return func(l *Localizer) error {
		if o == nil {
			return ErrNilObserver
		}
		l.observer = o
		return nil
	}
}

// WithLines injects override lines for a (locale, namespace) pair. The
// lines are applied after all other options, so they win over any catalog
// content loaded during construction.
func WithLines(locale, namespace string, lines map[string]string) Option {
	return func(l *Localizer) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}
		l.pending = append(l.pending, pendingLines{locale: locale, namespace: namespace, lines: lines})
		return nil
	}
}

// DefaultLocale returns the configured default locale.
func (l *Localizer) DefaultLocale() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.defaultLocale
}

// CurrentLocale returns the locale used when render calls do not name one.
func (l *Localizer) CurrentLocale() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.currentLocale
}

// SupportedLocales returns the sorted supported-locale set.
func (l *Localizer) SupportedLocales() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.supported)
}

// Directories returns the configured catalog search paths in consultation
// order (earlier entries take precedence on conflicting keys).
func (l *Localizer) Directories() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.directories)
}

// Fallback returns the active fallback policy.
func (l *Localizer) Fallback() Fallback {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fallback
}

// ensureScannedLocked loads the (locale, namespace) catalog from every
// configured directory unless the pair was already scanned. Directories are
// consulted in list order with first-writer-wins merging, then journaled
// override lines are replayed on top. Unsupported locales are never scanned.
func (l *Localizer) ensureScannedLocked(ctx context.Context, locale, namespace string) error {
	if l.cat.isScanned(locale, namespace) {
		return nil
	}
	if !containsLocale(l.supported, locale) {
		return nil
	}

	dirs := l.directories
	if len(dirs) == 0 {
		// Non-filesystem loaders ignore the directory argument; consult
		// the loader once so database-backed sources work without any
		// search paths configured.
		dirs = []string{""}
	}

	for _, dir := range dirs {
		lines, err := l.loader.Load(ctx, locale, namespace, dir)
		if err != nil {
			return err
		}
		l.cat.merge(locale, namespace, lines, false)
	}
	l.cat.markScanned(locale, namespace)

	if overrides := l.cat.injectedFor(locale, namespace); len(overrides) > 0 {
		l.cat.merge(locale, namespace, overrides, true)
	}

	return nil
}

// reindexLocked drops all loaded catalogs and rescans every previously
// touched (locale, namespace) pair against the current configuration.
// Injected lines survive via the journal. Never-touched namespaces are left
// to lazy scanning on first request.
func (l *Localizer) reindexLocked(ctx context.Context) error {
	pairs := l.cat.touched()
	l.cat.reset()

	for _, pair := range pairs {
		if err := l.ensureScannedLocked(ctx, pair.locale, pair.namespace); err != nil {
			return err
		}
		// Pairs only ever touched by injection are not rescanned by
		// ensureScanned when the locale is unsupported; replay directly.
		if overrides := l.cat.injectedFor(pair.locale, pair.namespace); len(overrides) > 0 {
			l.cat.merge(pair.locale, pair.namespace, overrides, true)
		}
	}
	return nil
}

func (l *Localizer) addLinesLocked(ctx context.Context, locale, namespace string, lines map[string]string) error {
	// Scan first so file-backed content is present before being overridden;
	// injected lines must win regardless of call order.
	if err := l.ensureScannedLocked(ctx, locale, namespace); err != nil {
		return err
	}
	l.cat.inject(locale, namespace, lines)
	return nil
}

// normalizeDirectories validates that every path resolves to an existing
// directory, converts to absolute form and deduplicates preserving order.
// Fails atomically: any invalid entry rejects the whole list.
func normalizeDirectories(dirs []string) ([]string, error) {
	out := make([]string, 0, len(dirs))
	seen := make(map[string]struct{}, len(dirs))

	for _, dir := range dirs {
		if dir == "" {
			return nil, fmt.Errorf("%w: empty path", ErrInvalidDirectory)
		}

		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %s", ErrInvalidDirectory, dir, err)
		}

		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("%w: %q is not an existing directory", ErrInvalidDirectory, dir)
		}

		if _, dup := seen[abs]; dup {
			continue
		}
		seen[abs] = struct{}{}
		out = append(out, abs)
	}

	return out, nil
}
