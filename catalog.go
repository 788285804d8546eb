package i18n

import "maps"

// localePair identifies one catalog.
type localePair struct {
	locale    string
	namespace string
}

// catalog is the in-memory message store: locale -> namespace -> key -> text.
// It memoizes which (locale, namespace) pairs have been scanned against the
// configured directory list and journals externally injected lines so they
// survive a reindex. All access is serialized by the owning Localizer.
type catalog struct {
	lines    map[string]map[string]map[string]string
	scanned  map[string]map[string]struct{}
	injected map[string]map[string]map[string]string
}

func newCatalog() *catalog {
	return &catalog{
		lines:    make(map[string]map[string]map[string]string),
		scanned:  make(map[string]map[string]struct{}),
		injected: make(map[string]map[string]map[string]string),
	}
}

// lookup is a pure map probe; it never touches the backing store.
func (c *catalog) lookup(locale, namespace, key string) (string, bool) {
	text, ok := c.lines[locale][namespace][key]
	return text, ok
}

func (c *catalog) isScanned(locale, namespace string) bool {
	_, ok := c.scanned[locale][namespace]
	return ok
}

func (c *catalog) markScanned(locale, namespace string) {
	if c.scanned[locale] == nil {
		c.scanned[locale] = make(map[string]struct{})
	}
	c.scanned[locale][namespace] = struct{}{}
}

// merge adds lines into the catalog for the pair. When overwrite is false
// existing keys are kept (first writer wins); when true the given lines
// replace existing keys.
func (c *catalog) merge(locale, namespace string, lines map[string]string, overwrite bool) {
	if len(lines) == 0 {
		return
	}
	if c.lines[locale] == nil {
		c.lines[locale] = make(map[string]map[string]string)
	}
	if c.lines[locale][namespace] == nil {
		c.lines[locale][namespace] = make(map[string]string, len(lines))
	}

	dst := c.lines[locale][namespace]
	for key, text := range lines {
		if _, exists := dst[key]; exists && !overwrite {
			continue
		}
		dst[key] = text
	}
}

// inject journals externally supplied lines and applies them on top of the
// current catalog. Journaled lines are replayed after every rescan so they
// always win over file-loaded content.
func (c *catalog) inject(locale, namespace string, lines map[string]string) {
	if len(lines) == 0 {
		return
	}
	if c.injected[locale] == nil {
		c.injected[locale] = make(map[string]map[string]string)
	}
	if c.injected[locale][namespace] == nil {
		c.injected[locale][namespace] = make(map[string]string, len(lines))
	}
	maps.Copy(c.injected[locale][namespace], lines)
	c.merge(locale, namespace, lines, true)
}

// injectedFor returns the journaled overrides for the pair, if any.
func (c *catalog) injectedFor(locale, namespace string) map[string]string {
	return c.injected[locale][namespace]
}

// reset clears all catalogs and scan state but keeps the injected-line
// journal, so a subsequent rescan reproduces the override semantics.
func (c *catalog) reset() {
	c.lines = make(map[string]map[string]map[string]string)
	c.scanned = make(map[string]map[string]struct{})
}

// clear drops everything, including the injected-line journal.
func (c *catalog) clear() {
	c.reset()
	c.injected = make(map[string]map[string]map[string]string)
}

// touched returns every (locale, namespace) pair present in the catalog or
// in the injected journal. Used by reindex to replay scans.
func (c *catalog) touched() []localePair {
	seen := make(map[localePair]struct{})
	for locale, namespaces := range c.lines {
		for namespace := range namespaces {
			seen[localePair{locale, namespace}] = struct{}{}
		}
	}
	for locale, namespaces := range c.injected {
		for namespace := range namespaces {
			seen[localePair{locale, namespace}] = struct{}{}
		}
	}

	pairs := make([]localePair, 0, len(seen))
	for pair := range seen {
		pairs = append(pairs, pair)
	}
	return pairs
}

// snapshot returns a deep copy of the catalogs for external inspection.
func (c *catalog) snapshot() map[string]map[string]map[string]string {
	out := make(map[string]map[string]map[string]string, len(c.lines))
	for locale, namespaces := range c.lines {
		out[locale] = make(map[string]map[string]string, len(namespaces))
		for namespace, lines := range namespaces {
			out[locale][namespace] = maps.Clone(lines)
		}
	}
	return out
}
