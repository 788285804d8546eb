package i18n

import (
	"slices"
	"sort"
	"strings"
)

// ParentLocale returns the parent of a locale identifier, derived by
// truncating at the first separator ("pt-br" -> "pt", "uz_af" -> "uz").
// Returns an empty string when the locale has no separator.
func ParentLocale(locale string) string {
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		return locale[:i]
	}
	return ""
}

// unionSorted merges extra locales into the set, deduplicates and sorts
// lexicographically for deterministic enumeration.
func unionSorted(locales []string, extra ...string) []string {
	set := make(map[string]struct{}, len(locales)+len(extra))
	for _, l := range locales {
		if l != "" {
			set[l] = struct{}{}
		}
	}
	for _, l := range extra {
		if l != "" {
			set[l] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

func containsLocale(locales []string, locale string) bool {
	return slices.Contains(locales, locale)
}
