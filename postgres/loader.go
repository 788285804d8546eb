package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

var (
	ErrNilQuerier  = errors.New("postgres: querier cannot be nil")
	ErrQueryFailed = errors.New("postgres: translations query failed")
)

// Querier is the subset of pgxpool.Pool the loader needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Loader reads catalogs from a translations table. It satisfies
// i18n.Loader; the directory argument is ignored since rows are not
// file-backed.
type Loader struct {
	db    Querier
	table string
}

// Option configures a Loader during construction.
type Option func(*Loader)

// WithTable overrides the translations table name (default "translations").
func WithTable(table string) Option {
	return func(l *Loader) {
		if table != "" {
			l.table = table
		}
	}
}

// NewLoader creates a database-backed catalog loader.
// Panics on a nil querier, matching constructor misuse semantics.
func NewLoader(db Querier, opts ...Option) *Loader {
	if db == nil {
		panic(ErrNilQuerier)
	}
	l := &Loader{db: db, table: "translations"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches every key/message row for the pair. No matching rows yield
// an empty map, not an error.
func (l *Loader) Load(ctx context.Context, locale, namespace, _ string) (map[string]string, error) {
	query := fmt.Sprintf(
		`SELECT key, message FROM %s WHERE locale = $1 AND namespace = $2`,
		pgx.Identifier{l.table}.Sanitize(),
	)

	rows, err := l.db.Query(ctx, query, locale, namespace)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	defer rows.Close()

	lines := make(map[string]string)
	for rows.Next() {
		var key, message string
		if err := rows.Scan(&key, &message); err != nil {
			return nil, errors.Join(ErrQueryFailed, err)
		}
		lines[key] = message
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}

	return lines, nil
}
