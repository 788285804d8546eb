package format

import (
	"fmt"
	"time"
)

// Layouts holds the Go time layouts used for the date and time format
// kinds of one locale.
type Layouts struct {
	DateShort  string
	DateMedium string
	DateLong   string
	Time       string
}

// defaultLayouts covers common locales; month and weekday names render in
// English (Go time layouts), so non-English locales use numeric layouts.
var defaultLayouts = map[string]Layouts{
	"en":    {DateShort: "1/2/06", DateMedium: "Jan 2, 2006", DateLong: "January 2, 2006", Time: "3:04 PM"},
	"en-gb": {DateShort: "02/01/2006", DateMedium: "02 Jan 2006", DateLong: "2 January 2006", Time: "15:04"},
	"de":    {DateShort: "02.01.06", DateMedium: "02.01.2006", DateLong: "02.01.2006", Time: "15:04"},
	"fr":    {DateShort: "02/01/2006", DateMedium: "02/01/2006", DateLong: "02/01/2006", Time: "15:04"},
	"es":    {DateShort: "02/01/2006", DateMedium: "02/01/2006", DateLong: "02/01/2006", Time: "15:04"},
	"pt":    {DateShort: "02/01/2006", DateMedium: "02/01/2006", DateLong: "02/01/2006", Time: "15:04"},
	"it":    {DateShort: "02/01/2006", DateMedium: "02/01/2006", DateLong: "02/01/2006", Time: "15:04"},
	"ru":    {DateShort: "02.01.2006", DateMedium: "02.01.2006", DateLong: "02.01.2006", Time: "15:04"},
	"pl":    {DateShort: "02.01.2006", DateMedium: "02.01.2006", DateLong: "02.01.2006", Time: "15:04"},
	"uk":    {DateShort: "02.01.2006", DateMedium: "02.01.2006", DateLong: "02.01.2006", Time: "15:04"},
	"ja":    {DateShort: "2006/01/02", DateMedium: "2006/01/02", DateLong: "2006/01/02", Time: "15:04"},
	"zh":    {DateShort: "2006/01/02", DateMedium: "2006/01/02", DateLong: "2006/01/02", Time: "15:04"},
	"ko":    {DateShort: "2006. 01. 02.", DateMedium: "2006. 01. 02.", DateLong: "2006. 01. 02.", Time: "15:04"},
	"nl":    {DateShort: "02-01-2006", DateMedium: "02-01-2006", DateLong: "02-01-2006", Time: "15:04"},
	"tr":    {DateShort: "02.01.2006", DateMedium: "02.01.2006", DateLong: "02.01.2006", Time: "15:04"},
	"ar":    {DateShort: "02/01/2006", DateMedium: "02/01/2006", DateLong: "02/01/2006", Time: "15:04"},
}

// layoutsFor resolves the layout set for a locale: exact match, then the
// base language, then English.
func (e *Engine) layoutsFor(locale string) Layouts {
	norm := normalizeLocale(locale)
	if l, ok := e.layouts[norm]; ok {
		return l
	}
	if base, _, found := cutLocale(norm); found {
		if l, ok := e.layouts[base]; ok {
			return l
		}
	}
	return e.layouts["en"]
}

func cutLocale(locale string) (base, rest string, found bool) {
	for i := 0; i < len(locale); i++ {
		if locale[i] == '-' {
			return locale[:i], locale[i+1:], true
		}
	}
	return locale, "", false
}

func (f *formatter) formatDateTime(arg any, kind, style string) (string, error) {
	t, ok := arg.(time.Time)
	if !ok {
		return "", fmt.Errorf("%w: %s needs a time.Time, got %T", ErrBadArgument, kind, arg)
	}
	return f.formatTimeValue(t, kind, style), nil
}

func (f *formatter) formatTimeValue(t time.Time, kind, style string) string {
	layouts := f.eng.layoutsFor(f.locale)

	if kind == "time" {
		return t.Format(layouts.Time)
	}

	switch style {
	case "short":
		return t.Format(layouts.DateShort)
	case "long":
		return t.Format(layouts.DateLong)
	default:
		return t.Format(layouts.DateMedium)
	}
}
