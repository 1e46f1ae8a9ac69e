package language

import (
	"io/fs"
	"log/slog"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/arjunmahishi/tshl/lang"
)

// options configures Load.
type options struct {
	// fsys is the resource bundle. Defaults to lang.Bundle.
	fsys fs.FS

	// grammars resolves a config's grammar name. Defaults to lang.Grammars().
	grammars map[string]func() *sitter.Language

	// names fixes which bundle directories are loaded and in what order.
	// If empty, every top-level directory is loaded in lexical order.
	names []string

	logger *slog.Logger
}

// Option configures Load.
type Option func(*options)

// WithFS loads language resources from fsys instead of the embedded bundle.
func WithFS(fsys fs.FS) Option {
	return func(o *options) { o.fsys = fsys }
}

// WithGrammars replaces the grammar table.
func WithGrammars(grammars map[string]func() *sitter.Language) Option {
	return func(o *options) { o.grammars = grammars }
}

// WithLanguages loads only the named bundle directories, registered in the
// given order.
func WithLanguages(names ...string) Option {
	return func(o *options) { o.names = names }
}

// WithLogger sets the logger used during construction and theme changes.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func buildOptions(opts []Option) options {
	o := options{
		fsys:     lang.Bundle,
		grammars: lang.Grammars(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
