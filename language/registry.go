package language

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/arjunmahishi/tshl/theme"
)

const (
	configFile     = "config.toml"
	highlightsFile = "highlights.scm"
)

// Registry is an ordered, fixed set of languages. Registration order breaks
// ties when more than one language matches a path.
type Registry struct {
	languages []*Language
	logger    *slog.Logger
}

// NewRegistry builds a registry from already constructed languages, in the
// given order.
func NewRegistry(languages ...*Language) *Registry {
	return &Registry{
		languages: languages,
		logger:    slog.Default(),
	}
}

// Load builds a registry from a resource bundle. Any missing or malformed
// resource fails the whole load.
func Load(opts ...Option) (*Registry, error) {
	o := buildOptions(opts)

	names := o.names
	if len(names) == 0 {
		entries, err := fs.ReadDir(o.fsys, ".")
		if err != nil {
			return nil, fmt.Errorf("%w: read bundle: %w", ErrMissingResource, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				names = append(names, e.Name())
			}
		}
	}

	seen := make(map[string]string, len(names))
	languages := make([]*Language, 0, len(names))
	for _, dir := range names {
		l, err := loadLanguage(o, dir)
		if err != nil {
			return nil, fmt.Errorf("load language %s: %w", dir, err)
		}
		if prev, ok := seen[l.Name()]; ok {
			return nil, fmt.Errorf("load language %s: %w: %q also defined by %s",
				dir, ErrDuplicateLanguage, l.Name(), prev)
		}
		seen[l.Name()] = dir

		o.logger.Debug("registered language",
			"name", l.Name(),
			"suffixes", l.config.PathSuffixes,
			"captures", len(l.query.captureNames),
		)
		languages = append(languages, l)
	}

	return &Registry{
		languages: languages,
		logger:    o.logger,
	}, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(opts ...Option) *Registry {
	r, err := Load(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func loadLanguage(o options, dir string) (*Language, error) {
	data, err := readResource(o.fsys, path.Join(dir, configFile))
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path.Join(dir, configFile), err)
	}
	if cfg.Grammar == "" {
		cfg.Grammar = dir
	}

	grammar, ok := o.grammars[cfg.Grammar]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGrammar, cfg.Grammar)
	}

	src, err := readResource(o.fsys, path.Join(dir, highlightsFile))
	if err != nil {
		return nil, err
	}
	l, err := New(cfg, grammar(), string(src))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path.Join(dir, highlightsFile), err)
	}
	return l, nil
}

func readResource(fsys fs.FS, name string) ([]byte, error) {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %w", ErrMissingResource, name, err)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// Languages returns the registered languages in registration order.
func (r *Registry) Languages() []*Language {
	out := make([]*Language, len(r.languages))
	copy(out, r.languages)
	return out
}

// Get returns a language by name, or nil if not found.
func (r *Registry) Get(name string) *Language {
	for _, l := range r.languages {
		if l.config.Name == name {
			return l
		}
	}
	return nil
}

// Select returns the first registered language with a path suffix equal to
// the path's filename or extension, or nil if none matches. Matching is exact:
// "rs" does not match "a.cars".
func (r *Registry) Select(p string) *Language {
	filename, extension := pathKeys(p)
	if filename == "" {
		return nil
	}
	for _, l := range r.languages {
		if l.config.matches(filename, extension) {
			return l
		}
	}
	return nil
}

// pathKeys splits a path into its filename and extension. A name whose only
// dot is the leading one, like ".bashrc", has no extension.
func pathKeys(p string) (filename, extension string) {
	p = filepath.ToSlash(p)
	p = strings.TrimRight(p, "/")
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		p = p[i+1:]
	}
	if p == "" || p == "." || p == ".." {
		return "", ""
	}
	filename = p
	if i := strings.LastIndexByte(filename, '.'); i > 0 {
		extension = filename[i+1:]
	}
	return filename, extension
}

// SetTheme applies t to every language in registration order.
func (r *Registry) SetTheme(t *theme.Theme) {
	for _, l := range r.languages {
		l.SetTheme(t)
	}
	if t != nil {
		r.logger.Info("theme applied", "theme", t.Name(), "languages", len(r.languages))
	}
}
