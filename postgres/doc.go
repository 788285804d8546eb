// Package postgres loads message catalogs from a PostgreSQL translations
// table via pgx.
//
// Expected schema (the host application owns migrations):
//
//	CREATE TABLE translations (
//	    locale    text NOT NULL,
//	    namespace text NOT NULL,
//	    key       text NOT NULL,
//	    message   text NOT NULL,
//	    PRIMARY KEY (locale, namespace, key)
//	);
//
// The loader plugs into an i18n.Localizer directly or behind an
// i18n.CompositeLoader so database rows override or supplement file
// catalogs:
//
//	pool, err := pgxpool.New(ctx, os.Getenv("DATABASE_URL"))
//	// ...
//	loc, err := i18n.New(
//	    i18n.WithLoader(i18n.NewCompositeLoader(
//	        postgres.NewLoader(pool),
//	        i18n.NewFileLoader(),
//	    )),
//	    i18n.WithDirectories("./locales"),
//	)
package postgres
