package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader reads the message catalog for one (locale, namespace) pair from a
// backing store. Implementations must return an empty map, not an error,
// when no matching catalog exists; errors are reserved for I/O failures.
//
// The dir argument is the search-path root currently being consulted.
// Non-filesystem loaders may ignore it.
type Loader interface {
	Load(ctx context.Context, locale, namespace, dir string) (map[string]string, error)
}

// FileLoader reads catalogs from the conventional directory layout
// <dir>/<locale>/<namespace>.<ext>. JSON and YAML codecs are registered by
// default; additional extensions can be added with WithCodec.
//
// Nested mappings are flattened to dotted keys, so
//
//	buttons:
//	  save: "Save"
//
// becomes the key "buttons.save".
type FileLoader struct {
	codecs map[string]func(data []byte, v any) error
	exts   []string
}

// FileLoaderOption configures a FileLoader during construction.
type FileLoaderOption func(*FileLoader)

// WithCodec registers an unmarshal function for a file extension.
// The extension must include the leading dot (".toml").
func WithCodec(ext string, unmarshal func(data []byte, v any) error) FileLoaderOption {
	return func(l *FileLoader) {
		if ext == "" || unmarshal == nil {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, exists := l.codecs[ext]; !exists {
			l.exts = append(l.exts, ext)
		}
		l.codecs[ext] = unmarshal
	}
}

// NewFileLoader creates a file-backed catalog loader.
func NewFileLoader(opts ...FileLoaderOption) *FileLoader {
	l := &FileLoader{
		codecs: map[string]func([]byte, any) error{
			".json": json.Unmarshal,
			".yaml": yaml.Unmarshal,
			".yml":  yaml.Unmarshal,
		},
		exts: []string{".json", ".yaml", ".yml"},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads <dir>/<locale>/<namespace>.<ext> for every registered
// extension. Missing files yield an empty map; when several extensions are
// present for the same namespace the earlier-registered one wins on
// conflicting keys.
func (l *FileLoader) Load(_ context.Context, locale, namespace, dir string) (map[string]string, error) {
	lines := make(map[string]string)
	if dir == "" {
		return lines, nil
	}

	for _, ext := range l.exts {
		path := filepath.Join(dir, locale, namespace+ext)

		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("i18n: reading %q: %w", path, err)
		}

		var raw map[string]any
		if err := l.codecs[ext](data, &raw); err != nil {
			return nil, fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, path, err)
		}

		for key, value := range flattenLines(raw, "") {
			if _, exists := lines[key]; !exists {
				lines[key] = value
			}
		}
	}

	return lines, nil
}

// CompositeLoader consults several loaders in order and merges their
// catalogs. The first loader to provide a key wins on conflicts, matching
// the directory precedence rule of the cache.
type CompositeLoader struct {
	loaders []Loader
}

// NewCompositeLoader creates a loader that merges the results of the given
// loaders. Nil entries are ignored.
func NewCompositeLoader(loaders ...Loader) *CompositeLoader {
	clean := make([]Loader, 0, len(loaders))
	for _, l := range loaders {
		if l != nil {
			clean = append(clean, l)
		}
	}
	return &CompositeLoader{loaders: clean}
}

// Load merges the catalogs returned by each underlying loader,
// first-source-wins. Any loader error aborts the merge.
func (c *CompositeLoader) Load(ctx context.Context, locale, namespace, dir string) (map[string]string, error) {
	merged := make(map[string]string)

	for _, l := range c.loaders {
		lines, err := l.Load(ctx, locale, namespace, dir)
		if err != nil {
			return nil, err
		}
		for key, value := range lines {
			if _, exists := merged[key]; !exists {
				merged[key] = value
			}
		}
	}

	return merged, nil
}

// StaticLoader serves a fixed in-memory catalog set. Useful for tests and
// for applications that ship translations compiled into the binary.
type StaticLoader struct {
	// locale -> namespace -> lines
	catalogs map[string]map[string]map[string]string
}

// NewStaticLoader creates a loader over a fixed locale -> namespace -> lines
// mapping. The mapping is used as-is and must not be mutated afterwards.
func NewStaticLoader(catalogs map[string]map[string]map[string]string) *StaticLoader {
	return &StaticLoader{catalogs: catalogs}
}

// Load returns a copy of the configured lines for the pair, or an empty map.
func (s *StaticLoader) Load(_ context.Context, locale, namespace, _ string) (map[string]string, error) {
	lines := s.catalogs[locale][namespace]
	out := make(map[string]string, len(lines))
	maps.Copy(out, lines)
	return out, nil
}

func flattenLines(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenLines(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}
