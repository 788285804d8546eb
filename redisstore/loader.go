package redisstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

var (
	ErrNilClient   = errors.New("redisstore: client cannot be nil")
	ErrFetchFailed = errors.New("redisstore: catalog fetch failed")
)

// Loader reads catalogs from Redis hashes. It satisfies i18n.Loader; the
// directory argument is ignored since hashes are not file-backed.
type Loader struct {
	client redis.UniversalClient
	prefix string
}

// Option configures a Loader during construction.
type Option func(*Loader)

// WithPrefix overrides the hash key prefix (default "i18n").
func WithPrefix(prefix string) Option {
	return func(l *Loader) {
		if prefix != "" {
			l.prefix = prefix
		}
	}
}

// NewLoader creates a Redis-backed catalog loader.
// Panics on a nil client, matching constructor misuse semantics.
func NewLoader(client redis.UniversalClient, opts ...Option) *Loader {
	if client == nil {
		panic(ErrNilClient)
	}
	l := &Loader{client: client, prefix: "i18n"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches the hash for the pair. A missing hash yields an empty map,
// not an error.
func (l *Loader) Load(ctx context.Context, locale, namespace, _ string) (map[string]string, error) {
	lines, err := l.client.HGetAll(ctx, l.key(locale, namespace)).Result()
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}
	return lines, nil
}

func (l *Loader) key(locale, namespace string) string {
	return l.prefix + ":" + locale + ":" + namespace
}
