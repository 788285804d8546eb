package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Engine formats ICU-style message templates for a locale.
// It is immutable after creation and safe for concurrent use.
type Engine struct {
	layouts map[string]Layouts
}

// Option configures an Engine during construction.
type Option func(*Engine)

// WithLayouts sets or overrides the date/time layouts for a locale.
// Zero-valued fields keep the built-in defaults.
func WithLayouts(locale string, l Layouts) Option {
	return func(e *Engine) {
		base := e.layoutsFor(locale)
		if l.DateShort == "" {
			l.DateShort = base.DateShort
		}
		if l.DateMedium == "" {
			l.DateMedium = base.DateMedium
		}
		if l.DateLong == "" {
			l.DateLong = base.DateLong
		}
		if l.Time == "" {
			l.Time = base.Time
		}
		e.layouts[normalizeLocale(locale)] = l
	}
}

// New creates a message-format engine.
func New(opts ...Option) *Engine {
	e := &Engine{layouts: make(map[string]Layouts, len(defaultLayouts))}
	for locale, l := range defaultLayouts {
		e.layouts[locale] = l
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Format interpolates the template for the locale. Positional arguments
// satisfy numeric references ({0}), named arguments satisfy name
// references ({name}). Unknown references, branch sets without an 'other'
// fallback and unbalanced braces are errors; the caller decides whether to
// recover (the i18n renderer falls back to the raw template).
func (e *Engine) Format(locale, template string, positional []any, named map[string]any) (string, error) {
	if !strings.ContainsAny(template, "{'") {
		return template, nil
	}

	tag := language.Make(locale)
	f := &formatter{
		eng:        e,
		locale:     locale,
		tag:        tag,
		printer:    message.NewPrinter(tag),
		positional: positional,
		named:      named,
	}
	return f.eval(template, nil)
}

type formatter struct {
	eng        *Engine
	locale     string
	tag        language.Tag
	printer    *message.Printer
	positional []any
	named      map[string]any
}

// eval renders a template fragment. pluralValue carries the numeric
// argument of an enclosing plural branch for '#' substitution.
func (f *formatter) eval(template string, pluralValue *float64) (string, error) {
	var b strings.Builder

	i := 0
	for i < len(template) {
		switch c := template[i]; {
		case c == '\'':
			text, consumed := unquote(template[i:])
			b.WriteString(text)
			i += consumed

		case c == '{':
			end, ok := matchBrace(template, i)
			if !ok {
				return "", fmt.Errorf("%w: unbalanced braces in %q", ErrBadTemplate, template)
			}
			rendered, err := f.evalPlaceholder(template[i+1:end], pluralValue)
			if err != nil {
				return "", err
			}
			b.WriteString(rendered)
			i = end + 1

		case c == '}':
			return "", fmt.Errorf("%w: unmatched '}' in %q", ErrBadTemplate, template)

		case c == '#' && pluralValue != nil:
			b.WriteString(f.decimal(*pluralValue))
			i++

		default:
			b.WriteByte(c)
			i++
		}
	}

	return b.String(), nil
}

func (f *formatter) evalPlaceholder(content string, pluralValue *float64) (string, error) {
	ref, kind, style, err := splitPlaceholder(content)
	if err != nil {
		return "", err
	}

	arg, err := f.lookupArg(ref)
	if err != nil {
		return "", err
	}

	switch kind {
	case "":
		return f.formatDefault(arg)
	case "number":
		return f.formatNumber(arg, style)
	case "date", "time":
		return f.formatDateTime(arg, kind, style)
	case "ordinal":
		return f.formatOrdinal(arg)
	case "plural":
		return f.evalPlural(arg, style)
	case "select":
		return f.evalSelect(arg, style, pluralValue)
	default:
		return "", fmt.Errorf("%w: unknown format type %q", ErrBadTemplate, kind)
	}
}

func (f *formatter) lookupArg(ref string) (any, error) {
	if idx, err := strconv.Atoi(ref); err == nil {
		if idx < 0 || idx >= len(f.positional) {
			return nil, fmt.Errorf("%w: positional {%d}", ErrUnknownArgument, idx)
		}
		return f.positional[idx], nil
	}

	if arg, ok := f.named[ref]; ok {
		return arg, nil
	}
	return nil, fmt.Errorf("%w: named {%s}", ErrUnknownArgument, ref)
}

func (f *formatter) formatDefault(arg any) (string, error) {
	switch v := arg.(type) {
	case string:
		return v, nil
	case time.Time:
		return f.formatTimeValue(v, "date", "medium") + " " + f.formatTimeValue(v, "time", ""), nil
	default:
		if n, ok := toFloat(arg); ok {
			return f.decimal(n), nil
		}
		return fmt.Sprint(arg), nil
	}
}

// splitPlaceholder splits placeholder content into argument reference,
// format kind and style at the first two top-level commas. The style part
// is kept verbatim so branch sets survive intact.
func splitPlaceholder(content string) (ref, kind, style string, err error) {
	first := topLevelComma(content, 0)
	if first < 0 {
		ref = strings.TrimSpace(content)
	} else {
		ref = strings.TrimSpace(content[:first])
		rest := content[first+1:]
		second := topLevelComma(rest, 0)
		if second < 0 {
			kind = strings.TrimSpace(rest)
		} else {
			kind = strings.TrimSpace(rest[:second])
			style = strings.TrimSpace(rest[second+1:])
		}
	}

	if ref == "" {
		return "", "", "", fmt.Errorf("%w: empty argument reference", ErrBadTemplate)
	}
	return ref, kind, style, nil
}

// topLevelComma returns the index of the first comma outside braces and
// quotes, or -1.
func topLevelComma(s string, from int) int {
	depth := 0
	for i := from; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// matchBrace returns the index of the brace closing the one at open.
func matchBrace(s string, open int) (int, bool) {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '\'':
			_, consumed := unquote(s[i:])
			i += consumed - 1
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// unquote consumes an apostrophe sequence at the start of s. A doubled
// apostrophe is a literal one; an apostrophe followed by a syntax
// character quotes literal text up to the next apostrophe; anything else
// is a plain apostrophe.
func unquote(s string) (text string, consumed int) {
	if len(s) >= 2 && s[1] == '\'' {
		return "'", 2
	}
	if len(s) >= 2 && (s[1] == '{' || s[1] == '}' || s[1] == '#') {
		if end := strings.IndexByte(s[1:], '\''); end >= 0 {
			return s[1 : 1+end], end + 2
		}
		return s[1:], len(s)
	}
	return "'", 1
}

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(locale, "_", "-"))
}

func toFloat(arg any) (float64, bool) {
	switch v := arg.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		n, err := strconv.ParseFloat(v, 64)
		return n, err == nil
	default:
		return 0, false
	}
}
