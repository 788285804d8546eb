// Package i18n resolves localized messages from lazily scanned, file-backed
// catalogs with locale fallback chains and ICU-style message formatting.
//
// A Localizer owns the locale registry (default/current/supported locales,
// catalog search directories, fallback policy) and an in-memory catalog
// cache. Catalogs live on disk as one file per namespace under one
// subdirectory per locale:
//
//	locales/
//	  en/
//	    tests.json
//	    emails.yaml
//	  pt-br/
//	    tests.json
//
// Directories are scanned lazily: the first lookup for a (locale,
// namespace) pair reads that namespace's catalog from every configured
// directory and memoizes the result. Earlier directories take precedence on
// conflicting keys.
//
// # Basic Usage
//
//	loc, err := i18n.New(
//		i18n.WithDefaultLocale("en"),
//		i18n.WithSupportedLocales("en", "pt", "pt-br"),
//		i18n.WithDirectories("./locales"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	loc.T("tests", "hello", "Mary")        // "Hello, Mary!"
//	loc.TIn("pt-br", "tests", "bye")       // "Tchau!"
//	loc.TDotted("tests.hello", "Mary")     // "Hello, Mary!"
//
// Missing keys are never silently empty: resolution misses return the
// diagnostic sentinel "namespace.key".
//
// # Fallback
//
// Resolution walks at most three locales, controlled by the Fallback
// policy: the requested locale, its parent (the part before the first
// separator, so "pt-br" falls back to "pt"), and finally the default
// locale. FallbackNone and FallbackParent cut the chain short.
//
// # Message Formatting
//
// Templates use the format subpackage's ICU-style grammar with positional
// and named placeholders:
//
//	"Hello, {0}!"
//	"{name} owes {amount, number, currency}"
//	"{0, plural, one {# message} other {# messages}}"
//
// Positional arguments are plain variadic values; named arguments are
// passed as an i18n.M map. When formatting fails the raw template text is
// returned instead of an error.
//
// # Injected Lines
//
// AddLines force-merges externally supplied lines (for example from an
// admin override store) into a catalog. Injected lines always win over
// file-loaded content, regardless of call order, and survive
// reconfiguration of directories or locales.
//
// # Catalog Sources
//
// The Loader interface is the extension point for catalog storage. The
// built-in FileLoader reads JSON/YAML files, StaticLoader serves fixed
// in-memory catalogs, and CompositeLoader chains several sources. The
// postgres and redisstore subpackages load catalogs from a translations
// table or a Redis hash.
//
// # Diagnostics
//
// An optional Observer receives a record of every render call. Recorder
// collects events in memory, SlogObserver logs them through log/slog, and
// Report writes a summary of directories, supported locales and the
// fallback classification of every known key.
//
// # Concurrency
//
// One mutex per Localizer guards all state: lookups mutate the
// scanned-locale set as a side effect, so reads and writes share a single
// exclusion boundary. Independent Localizer instances are fully isolated.
package i18n
