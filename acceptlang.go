package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength bounds header parsing against oversized input.
const maxAcceptLanguageLength = 4096

type acceptedTag struct {
	tag     string
	quality float64
}

// MatchLocale picks the best supported locale for an Accept-Language
// header. Exact tag matches are preferred over base-language matches at the
// same quality. Returns the current locale when nothing matches or the
// header is empty.
func (l *Localizer) MatchLocale(header string) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if match := matchAcceptLanguage(header, l.supported); match != "" {
		return match
	}
	return l.currentLocale
}

// matchAcceptLanguage matches parsed header tags against the available
// locales. Tags are tried in descending quality order; the first exact
// match wins, a base-language match ("en" vs "en-us") is kept as a
// lower-preference candidate.
func matchAcceptLanguage(header string, available []string) string {
	if header == "" || len(available) == 0 {
		return ""
	}

	var partial string
	for _, tag := range parseAcceptLanguage(header) {
		for _, avail := range available {
			norm := normalizeTag(avail)
			if tag.tag == norm {
				return avail
			}
			if partial == "" && baseTag(tag.tag) == baseTag(norm) {
				partial = avail
			}
		}
	}
	return partial
}

func parseAcceptLanguage(header string) []acceptedTag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []acceptedTag
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		lang, qPart, hasQuality := strings.Cut(part, ";")
		lang = strings.TrimSpace(lang)

		if hasQuality {
			qPart = strings.TrimSpace(qPart)
			if strings.HasPrefix(qPart, "q=") {
				if q, err := strconv.ParseFloat(qPart[2:], 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if lang == "" || lang == "*" {
			continue
		}
		tags = append(tags, acceptedTag{tag: normalizeTag(lang), quality: quality})
	}

	slices.SortStableFunc(tags, func(a, b acceptedTag) int {
		return cmp.Compare(b.quality, a.quality)
	})
	return tags
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(tag, "_", "-")))
}

func baseTag(tag string) string {
	base, _, _ := strings.Cut(tag, "-")
	return base
}
