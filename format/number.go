package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/number"
)

func (f *formatter) formatNumber(arg any, style string) (string, error) {
	n, ok := toFloat(arg)
	if !ok {
		return "", fmt.Errorf("%w: %T is not numeric", ErrBadArgument, arg)
	}

	switch style {
	case "":
		return f.decimal(n), nil
	case "integer":
		return f.printer.Sprint(number.Decimal(n, number.MaxFractionDigits(0))), nil
	case "percent":
		return f.printer.Sprint(number.Percent(n)), nil
	case "currency":
		return f.printer.Sprint(currency.Symbol(f.currencyUnit().Amount(n))), nil
	default:
		return "", fmt.Errorf("%w: unknown number style %q", ErrBadTemplate, style)
	}
}

func (f *formatter) decimal(n float64) string {
	return f.printer.Sprint(number.Decimal(n))
}

// currencyUnit derives the currency from the locale's region, defaulting
// to USD when the region is unknown.
func (f *formatter) currencyUnit() currency.Unit {
	if region, conf := f.tag.Region(); conf > language.No {
		if unit, ok := currency.FromRegion(region); ok {
			return unit
		}
	}
	return currency.USD
}

// formatOrdinal renders an ordinal number. English gets CLDR-driven
// suffixes; other locales use the period convention.
func (f *formatter) formatOrdinal(arg any) (string, error) {
	n, ok := toFloat(arg)
	if !ok || n != math.Trunc(n) {
		return "", fmt.Errorf("%w: ordinal needs an integer, got %v", ErrBadArgument, arg)
	}

	num := f.printer.Sprint(number.Decimal(int64(n)))

	if base, _ := f.tag.Base(); base.String() == "en" {
		switch matchForm(plural.Ordinal, f.tag, n) {
		case plural.One:
			return num + "st", nil
		case plural.Two:
			return num + "nd", nil
		case plural.Few:
			return num + "rd", nil
		default:
			return num + "th", nil
		}
	}
	return num + ".", nil
}

func (f *formatter) evalPlural(arg any, style string) (string, error) {
	n, ok := toFloat(arg)
	if !ok {
		return "", fmt.Errorf("%w: plural needs a number, got %T", ErrBadArgument, arg)
	}

	branches, err := parseBranches(style)
	if err != nil {
		return "", err
	}

	// Exact '=N' selectors take precedence over CLDR categories.
	for _, br := range branches {
		if strings.HasPrefix(br.selector, "=") {
			if exact, err := strconv.ParseFloat(br.selector[1:], 64); err == nil && exact == n {
				return f.eval(br.body, &n)
			}
		}
	}

	form := formName(matchForm(plural.Cardinal, f.tag, n))
	if br, ok := findBranch(branches, form); ok {
		return f.eval(br.body, &n)
	}
	if br, ok := findBranch(branches, "other"); ok {
		return f.eval(br.body, &n)
	}
	return "", fmt.Errorf("%w: plural without matching branch or 'other'", ErrBadTemplate)
}

func (f *formatter) evalSelect(arg any, style string, pluralValue *float64) (string, error) {
	branches, err := parseBranches(style)
	if err != nil {
		return "", err
	}

	value := fmt.Sprint(arg)
	if br, ok := findBranch(branches, value); ok {
		return f.eval(br.body, pluralValue)
	}
	if br, ok := findBranch(branches, "other"); ok {
		return f.eval(br.body, pluralValue)
	}
	return "", fmt.Errorf("%w: select %q without matching branch or 'other'", ErrBadTemplate, value)
}

// matchForm resolves the CLDR plural form of n for the locale, feeding the
// visible fraction digits into the rule match.
func matchForm(rules *plural.Rules, tag language.Tag, n float64) plural.Form {
	abs := math.Abs(n)
	i := int(abs)

	v, frac := 0, 0
	formatted := strconv.FormatFloat(abs, 'f', -1, 64)
	if dot := strings.IndexByte(formatted, '.'); dot >= 0 {
		dec := formatted[dot+1:]
		v = len(dec)
		frac, _ = strconv.Atoi(dec)
	}

	return rules.MatchPlural(tag, i, v, v, frac, frac)
}

func formName(form plural.Form) string {
	switch form {
	case plural.Zero:
		return "zero"
	case plural.One:
		return "one"
	case plural.Two:
		return "two"
	case plural.Few:
		return "few"
	case plural.Many:
		return "many"
	default:
		return "other"
	}
}

type branch struct {
	selector string
	body     string
}

func findBranch(branches []branch, selector string) (branch, bool) {
	for _, br := range branches {
		if br.selector == selector {
			return br, true
		}
	}
	return branch{}, false
}

// parseBranches parses a "selector {body} selector {body} ..." sequence.
func parseBranches(s string) ([]branch, error) {
	var branches []branch

	i := 0
	for i < len(s) {
		for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
			i++
		}
		if i >= len(s) {
			break
		}

		start := i
		for i < len(s) && s[i] != '{' && s[i] != ' ' && s[i] != '\t' && s[i] != '\n' {
			i++
		}
		selector := s[start:i]
		if selector == "" {
			return nil, fmt.Errorf("%w: missing branch selector in %q", ErrBadTemplate, s)
		}

		for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
			i++
		}
		if i >= len(s) || s[i] != '{' {
			return nil, fmt.Errorf("%w: branch %q without body", ErrBadTemplate, selector)
		}

		end, ok := matchBrace(s, i)
		if !ok {
			return nil, fmt.Errorf("%w: unbalanced branch body for %q", ErrBadTemplate, selector)
		}
		branches = append(branches, branch{selector: selector, body: s[i+1 : end]})
		i = end + 1
	}

	if len(branches) == 0 {
		return nil, fmt.Errorf("%w: empty branch set", ErrBadTemplate)
	}
	return branches, nil
}
