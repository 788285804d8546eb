package i18n

import (
	"context"
	"fmt"
	"io"
	"sort"
)

// Report writes a textual diagnostic summary: the configured directories,
// the supported-locale set, and every namespace/key pair reachable across
// all supported locales with its fallback classification relative to the
// current locale:
//
//	none         resolves in the current locale itself
//	parent       resolves only via the current locale's parent
//	default      resolves only via the default locale
//	unclassified does not resolve for the current locale at all
//
// Every known namespace is scanned for every supported locale first, so
// the report covers file-backed content that was never requested.
func (l *Localizer) Report(ctx context.Context, w io.Writer) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	namespaces := make(map[string]struct{})
	for _, pair := range l.cat.touched() {
		namespaces[pair.namespace] = struct{}{}
	}
	for _, locale := range l.supported {
		for namespace := range namespaces {
			if err := l.ensureScannedLocked(ctx, locale, namespace); err != nil {
				return err
			}
		}
	}

	fmt.Fprintf(w, "fallback policy: %s\n", l.fallback)
	fmt.Fprintf(w, "default locale: %s\n", l.defaultLocale)
	fmt.Fprintf(w, "current locale: %s\n", l.currentLocale)

	fmt.Fprintln(w, "directories:")
	for _, dir := range l.directories {
		fmt.Fprintf(w, "  %s\n", dir)
	}

	fmt.Fprintln(w, "supported locales:")
	for _, locale := range l.supported {
		fmt.Fprintf(w, "  %s (%s)\n", locale, DirectionOf(locale))
	}

	fmt.Fprintln(w, "keys:")
	for _, ref := range l.knownKeysLocked() {
		fmt.Fprintf(w, "  %s.%s: %s\n", ref.namespace, ref.key, l.classifyLocked(ref.namespace, ref.key))
	}

	return nil
}

type keyRef struct {
	namespace string
	key       string
}

// knownKeysLocked returns every namespace/key pair present in any loaded
// catalog, sorted for deterministic output.
func (l *Localizer) knownKeysLocked() []keyRef {
	seen := make(map[keyRef]struct{})
	for _, namespaces := range l.cat.lines {
		for namespace, lines := range namespaces {
			for key := range lines {
				seen[keyRef{namespace, key}] = struct{}{}
			}
		}
	}

	refs := make([]keyRef, 0, len(seen))
	for ref := range seen {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].namespace != refs[j].namespace {
			return refs[i].namespace < refs[j].namespace
		}
		return refs[i].key < refs[j].key
	})
	return refs
}

// classifyLocked computes the fallback level the current locale needs to
// resolve the key. Pure map probes; scanning happened before.
func (l *Localizer) classifyLocked(namespace, key string) string {
	if _, ok := l.cat.lookup(l.currentLocale, namespace, key); ok {
		return "none"
	}
	if parent := ParentLocale(l.currentLocale); parent != "" {
		if _, ok := l.cat.lookup(parent, namespace, key); ok {
			return "parent"
		}
	}
	if _, ok := l.cat.lookup(l.defaultLocale, namespace, key); ok {
		return "default"
	}
	return "unclassified"
}
