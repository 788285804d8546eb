package i18n

import "fmt"

// Fallback controls how many additional locales are consulted when a key
// is missing from the requested locale's catalogs.
type Fallback int

const (
	// FallbackNone consults only the requested locale.
	FallbackNone Fallback = iota

	// FallbackParent additionally consults the parent locale
	// (e.g. "pt" for "pt-br"). One level only, never the grandparent.
	FallbackParent

	// FallbackDefault additionally consults the default locale after the
	// parent lookup fails.
	FallbackDefault
)

// FallbackFromInt converts a plain integer into a Fallback level.
// Out-of-range values are rejected with ErrInvalidFallback.
func FallbackFromInt(v int) (Fallback, error) {
	if v < int(FallbackNone) || v > int(FallbackDefault) {
		return FallbackNone, fmt.Errorf("%w: %d", ErrInvalidFallback, v)
	}
	return Fallback(v), nil
}

// String returns the textual token for the fallback level.
func (f Fallback) String() string {
	switch f {
	case FallbackNone:
		return "none"
	case FallbackParent:
		return "parent"
	case FallbackDefault:
		return "default"
	default:
		return "unknown"
	}
}

func (f Fallback) valid() bool {
	return f >= FallbackNone && f <= FallbackDefault
}
