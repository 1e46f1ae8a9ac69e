// Package language loads language definitions and selects the one that
// applies to a file path.
package language

import (
	"context"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/arjunmahishi/tshl/theme"
)

// Language is a grammar, its highlight query and the current theme mapping
// for that query. Only the theme mapping changes after construction.
type Language struct {
	config  Config
	grammar *sitter.Language
	query   *Query

	mu       sync.Mutex
	themeMap theme.Map
}

// New compiles querySource against grammar and returns a language with an
// empty theme mapping.
func New(cfg Config, grammar *sitter.Language, querySource string) (*Language, error) {
	query, err := NewQuery(querySource, grammar)
	if err != nil {
		return nil, err
	}
	return &Language{
		config:   cfg,
		grammar:  grammar,
		query:    query,
		themeMap: theme.Map{},
	}, nil
}

// Name returns the language name.
func (l *Language) Name() string {
	return l.config.Name
}

// Config returns the language configuration.
func (l *Language) Config() Config {
	cfg := l.config
	cfg.PathSuffixes = append([]string(nil), l.config.PathSuffixes...)
	return cfg
}

// Grammar returns the tree-sitter grammar.
func (l *Language) Grammar() *sitter.Language {
	return l.grammar
}

// HighlightQuery returns the compiled highlight query.
func (l *Language) HighlightQuery() *Query {
	return l.query
}

// Parse parses source into a syntax tree.
func (l *Language) Parse(ctx context.Context, source []byte) (*sitter.Tree, error) {
	return parse(ctx, l.grammar, source)
}

// ThemeMapping returns a snapshot of the current theme mapping.
func (l *Language) ThemeMapping() theme.Map {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.themeMap.Clone()
}

// SetTheme rebuilds the theme mapping from t and replaces the current one.
func (l *Language) SetTheme(t *theme.Theme) {
	m := theme.NewMap(l.query.captureNames, t)

	l.mu.Lock()
	l.themeMap = m
	l.mu.Unlock()
}
