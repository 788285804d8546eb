package i18n

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Render resolves and formats a message using the current locale.
//
// Resolution walks the fallback chain (requested locale, then its parent,
// then the default locale, subject to the fallback policy). A resolved
// template is formatted with the locale it was found under; if formatting
// fails the raw template is returned instead. When no template resolves at
// all the result is the diagnostic sentinel "namespace.key" and a nil
// error. Errors are reserved for backing-store I/O failures raised by the
// scan the lookup may trigger.
func (l *Localizer) Render(ctx context.Context, namespace, key string, args ...any) (string, error) {
	return l.RenderIn(ctx, "", namespace, key, args...)
}

// RenderIn is Render with an explicit locale. An empty locale means the
// current locale.
func (l *Localizer) RenderIn(ctx context.Context, locale, namespace, key string, args ...any) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.renderLocked(ctx, locale, namespace, key, args)
}

// T is a string-only convenience around Render: scan failures degrade to
// the sentinel instead of surfacing an error.
func (l *Localizer) T(namespace, key string, args ...any) string {
	text, _ := l.Render(context.Background(), namespace, key, args...)
	return text
}

// TIn is T with an explicit locale.
func (l *Localizer) TIn(locale, namespace, key string, args ...any) string {
	text, _ := l.RenderIn(context.Background(), locale, namespace, key, args...)
	return text
}

// TDotted resolves a combined "namespace.key" reference. The namespace is
// the segment before the first dot; the rest is the key (which may itself
// contain dots). References without a namespace segment are returned
// unchanged.
func (l *Localizer) TDotted(dotted string, args ...any) string {
	namespace, key, ok := strings.Cut(dotted, ".")
	if !ok || namespace == "" || key == "" {
		return dotted
	}
	return l.T(namespace, key, args...)
}

// HasLine reports whether the key resolves for the current locale,
// including fallback. It performs resolution only, no formatting.
func (l *Localizer) HasLine(ctx context.Context, namespace, key string) bool {
	return l.HasLineIn(ctx, "", namespace, key)
}

// HasLineIn is HasLine with an explicit locale.
func (l *Localizer) HasLineIn(ctx context.Context, locale, namespace, key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if locale == "" {
		locale = l.currentLocale
	}
	_, _, found, err := l.resolveLocked(ctx, locale, namespace, key)
	return err == nil && found
}

// resolveLocked walks the fallback chain for one request and returns the
// locale the text was resolved under. On failure it reports the last-tried
// locale.
func (l *Localizer) resolveLocked(ctx context.Context, locale, namespace, key string) (string, string, bool, error) {
	if err := l.ensureScannedLocked(ctx, locale, namespace); err != nil {
		return locale, "", false, err
	}
	if text, ok := l.cat.lookup(locale, namespace, key); ok {
		return locale, text, true, nil
	}

	last := locale

	if l.fallback >= FallbackParent {
		if parent := ParentLocale(locale); parent != "" {
			if err := l.ensureScannedLocked(ctx, parent, namespace); err != nil {
				return parent, "", false, err
			}
			if text, ok := l.cat.lookup(parent, namespace, key); ok {
				return parent, text, true, nil
			}
			last = parent
		}
	}

	// Skip the default step when the chain already ended on the default
	// locale; a repeat lookup cannot succeed.
	if l.fallback >= FallbackDefault && last != l.defaultLocale {
		if err := l.ensureScannedLocked(ctx, l.defaultLocale, namespace); err != nil {
			return l.defaultLocale, "", false, err
		}
		if text, ok := l.cat.lookup(l.defaultLocale, namespace, key); ok {
			return l.defaultLocale, text, true, nil
		}
		last = l.defaultLocale
	}

	return last, "", false, nil
}

func (l *Localizer) renderLocked(ctx context.Context, locale, namespace, key string, args []any) (string, error) {
	start := time.Now()
	requested := locale
	if requested == "" {
		requested = l.currentLocale
	}

	resolved, template, found, err := l.resolveLocked(ctx, requested, namespace, key)
	if err != nil {
		return sentinel(namespace, key), err
	}

	text := sentinel(namespace, key)
	if found {
		positional, named := splitArgs(args)
		if formatted, ferr := l.formatter.Format(resolved, template, positional, named); ferr == nil {
			text = formatted
		} else {
			// Malformed template or argument mismatch: surface the raw
			// template rather than an error.
			text = template
		}
	}

	if l.observer != nil {
		l.observer.ObserveRender(Event{
			ID:              uuid.NewString(),
			Namespace:       namespace,
			Key:             key,
			RequestedLocale: requested,
			ResolvedLocale:  resolved,
			Text:            text,
			Resolved:        found,
			StartedAt:       start,
			FinishedAt:      time.Now(),
		})
	}

	return text, nil
}

// sentinel is the resolution-miss marker: it keeps the namespace and key
// visible so missing translations are never silently empty.
func sentinel(namespace, key string) string {
	return namespace + "." + key
}

// splitArgs separates render arguments into positional values and named
// maps. A map argument (M, map[string]any or map[string]string) contributes
// named values; everything else is positional in call order.
func splitArgs(args []any) ([]any, map[string]any) {
	var positional []any
	var named map[string]any

	addNamed := func(m map[string]any) {
		if named == nil {
			named = make(map[string]any, len(m))
		}
		for k, v := range m {
			named[k] = v
		}
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case M:
			addNamed(v)
		case map[string]any:
			addNamed(v)
		case map[string]string:
			m := make(map[string]any, len(v))
			for k, s := range v {
				m[k] = s
			}
			addNamed(m)
		default:
			positional = append(positional, arg)
		}
	}

	return positional, named
}
