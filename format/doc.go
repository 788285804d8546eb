// Package format implements an ICU-style message-format engine on top of
// golang.org/x/text.
//
// Templates mix literal text with placeholders in braces. Arguments are
// referenced by position ({0}, {1}) or by name ({name}):
//
//	"Hello, {0}!"
//	"{count, plural, one {# message} other {# messages}}"
//	"{total, number, currency} due {due, date, long}"
//
// Supported placeholder kinds:
//
//	{arg}                        default formatting per argument type
//	{arg, number}                locale-aware decimal
//	{arg, number, integer}       decimal without fraction digits
//	{arg, number, percent}       percentage (0.5 -> "50%")
//	{arg, number, currency}      amount in the locale's regional currency
//	{arg, date}                  medium date; styles short|medium|long
//	{arg, time}                  locale time-of-day
//	{arg, ordinal}               ordinal number ("1st", "2.", ...)
//	{arg, plural, ...}           CLDR cardinal branch selection; '#' in a
//	                             branch is the formatted argument; '=N'
//	                             selectors match exact values
//	{arg, select, ...}           literal branch selection with an 'other'
//	                             fallback
//
// An apostrophe escapes the syntax characters '{', '}' and '#'
// ('{' renders a literal brace); '' renders a literal apostrophe. Other
// apostrophes are plain text.
//
// Number, percent and currency output uses x/text printers for the
// requested locale; plural and ordinal category selection uses the CLDR
// rules from x/text/feature/plural. Date and time layouts come from a
// per-language table that can be extended with WithLayouts. Ordinal
// suffixes are produced for English; other locales fall back to the
// period convention ("2.").
package format
