package i18n

import (
	"context"
	"fmt"
	"slices"
)

// SetDefaultLocale changes the default locale, adds it to the
// supported-locale set and reindexes already-touched catalogs.
func (l *Localizer) SetDefaultLocale(ctx context.Context, locale string) error {
	if locale == "" {
		return ErrEmptyLocale
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.defaultLocale = locale
	l.supported = unionSorted(l.supported, locale)
	return l.reindexLocked(ctx)
}

// SetCurrentLocale changes the locale used when render calls do not name
// one, adds it to the supported-locale set and reindexes. The default
// locale is left untouched.
func (l *Localizer) SetCurrentLocale(ctx context.Context, locale string) error {
	if locale == "" {
		return ErrEmptyLocale
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentLocale = locale
	l.supported = unionSorted(l.supported, locale)
	return l.reindexLocked(ctx)
}

// SetSupportedLocales replaces the supported-locale set. The default locale
// is always re-added; the set is deduplicated and sorted. Passing no
// locales resets the set to exactly the default locale.
func (l *Localizer) SetSupportedLocales(ctx context.Context, locales ...string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.supported = unionSorted(locales, l.defaultLocale)
	return l.reindexLocked(ctx)
}

// SetDirectories replaces the catalog search paths. Every path must resolve
// to an existing directory; on any invalid entry the previous list stays
// active. Earlier entries take precedence on conflicting keys.
func (l *Localizer) SetDirectories(ctx context.Context, dirs ...string) error {
	normalized, err := normalizeDirectories(dirs)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.directories = normalized
	return l.reindexLocked(ctx)
}

// AddDirectory prepends a search path to the directory list, giving it the
// highest precedence on conflicting keys. The path must resolve to an
// existing directory.
func (l *Localizer) AddDirectory(ctx context.Context, dir string) error {
	normalized, err := normalizeDirectories([]string{dir})
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	merged := normalized
	for _, existing := range l.directories {
		if !slices.Contains(merged, existing) {
			merged = append(merged, existing)
		}
	}
	l.directories = merged
	return l.reindexLocked(ctx)
}

// SetFallback changes the fallback policy. Resolution-time only; cached
// catalogs are unaffected, so no reindex happens.
func (l *Localizer) SetFallback(f Fallback) error {
	if !f.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidFallback, int(f))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.fallback = f
	return nil
}

// AddLines force-merges externally supplied lines into the catalog for the
// pair, overwriting existing keys. The pair is scanned first when needed,
// so injected lines win regardless of call order relative to file loads.
// Injected lines survive reindexing. Line keys must be non-empty.
func (l *Localizer) AddLines(ctx context.Context, locale, namespace string, lines map[string]string) error {
	if locale == "" {
		return ErrEmptyLocale
	}
	if namespace == "" {
		return ErrEmptyNamespace
	}
	for key := range lines {
		if key == "" {
			return ErrEmptyKey
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.addLinesLocked(ctx, locale, namespace, lines)
}

// Lines returns a deep copy of all loaded and injected catalogs as
// locale -> namespace -> key -> text.
func (l *Localizer) Lines() map[string]map[string]map[string]string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cat.snapshot()
}

// ResetLines drops every catalog, the scanned-locale state and the
// injected-line journal. Catalogs are rebuilt lazily on the next lookup.
func (l *Localizer) ResetLines() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cat.clear()
}

// Reset drops loaded catalogs and scan state but keeps injected lines,
// which are replayed when the affected pairs are scanned again.
func (l *Localizer) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cat.reset()
}
