package i18n

import "strings"

// Direction is the writing direction of a locale's script.
type Direction int

const (
	LTR Direction = iota
	RTL
)

// String returns "ltr" or "rtl".
func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// rtlLocales lists locales written right-to-left. Region-specific entries
// cover languages whose direction depends on the script used in that
// region (e.g. Uzbek in Afghanistan uses the Arabic script).
var rtlLocales = map[string]struct{}{
	"ar":    {},
	"arc":   {},
	"ckb":   {},
	"dv":    {},
	"fa":    {},
	"glk":   {},
	"he":    {},
	"khw":   {},
	"ks":    {},
	"ku":    {},
	"mzn":   {},
	"pa-pk": {},
	"ps":    {},
	"sd":    {},
	"syr":   {},
	"ug":    {},
	"ur":    {},
	"uz-af": {},
	"yi":    {},
}

// DirectionOf reports the writing direction for a locale using a static
// lookup table. Unknown locales default to LTR. The lookup tries the exact
// locale first, then its parent.
func DirectionOf(locale string) Direction {
	locale = strings.ToLower(strings.ReplaceAll(locale, "_", "-"))
	if _, ok := rtlLocales[locale]; ok {
		return RTL
	}
	if parent := ParentLocale(locale); parent != "" {
		if _, ok := rtlLocales[parent]; ok {
			return RTL
		}
	}
	return LTR
}
