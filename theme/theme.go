// Package theme defines syntax themes and the per-query mapping from capture
// names to styles.
package theme

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidTheme is returned when a theme document cannot be used.
var ErrInvalidTheme = errors.New("invalid theme")

// Style is the display style for one highlight category.
type Style struct {
	Color      string `toml:"color" json:"color,omitempty"`
	Background string `toml:"background" json:"background,omitempty"`
	Bold       bool   `toml:"bold" json:"bold,omitempty"`
	Italic     bool   `toml:"italic" json:"italic,omitempty"`
	Underline  bool   `toml:"underline" json:"underline,omitempty"`
}

// IsZero reports whether the style carries no attributes.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Lipgloss converts the style to a lipgloss style for terminal rendering.
func (s Style) Lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if s.Color != "" {
		st = st.Foreground(lipgloss.Color(s.Color))
	}
	if s.Background != "" {
		st = st.Background(lipgloss.Color(s.Background))
	}
	return st.Bold(s.Bold).Italic(s.Italic).Underline(s.Underline)
}

type entry struct {
	key   string
	parts []string
	style Style
}

// Theme is a named set of syntax styles keyed by dot-separated categories
// such as "keyword" or "function.method".
type Theme struct {
	name   string
	syntax []entry
}

// New builds a theme from a category → style table.
func New(name string, syntax map[string]Style) *Theme {
	t := &Theme{name: name, syntax: make([]entry, 0, len(syntax))}
	for key, style := range syntax {
		t.syntax = append(t.syntax, entry{
			key:   key,
			parts: strings.Split(key, "."),
			style: style,
		})
	}
	sort.Slice(t.syntax, func(i, j int) bool {
		return t.syntax[i].key < t.syntax[j].key
	})
	return t
}

// Name returns the theme name.
func (t *Theme) Name() string {
	return t.name
}

// Keys returns the syntax categories in sorted order.
func (t *Theme) Keys() []string {
	keys := make([]string, len(t.syntax))
	for i, e := range t.syntax {
		keys[i] = e.key
	}
	return keys
}

// Resolve returns the style for a capture name.
//
// A key matches when each of its dot-separated parts occurs among the
// capture's parts. The key with the most parts wins; ties go to the key that
// sorts first.
func (t *Theme) Resolve(capture string) (Style, bool) {
	captureParts := strings.Split(capture, ".")

	best, bestLen := -1, 0
	for i, e := range t.syntax {
		if !containsAll(captureParts, e.parts) {
			continue
		}
		if len(e.parts) > bestLen {
			best, bestLen = i, len(e.parts)
		}
	}
	if best < 0 {
		return Style{}, false
	}
	return t.syntax[best].style, true
}

func containsAll(haystack, needles []string) bool {
	for _, n := range needles {
		found := false
		for _, h := range haystack {
			if h == n {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

type document struct {
	Name   string           `toml:"name"`
	Syntax map[string]Style `toml:"syntax"`
}

// Parse decodes a TOML theme document:
//
//	name = "one-dark"
//
//	[syntax]
//	keyword = { color = "#c678dd" }
//	"function.method" = { color = "#61afef", italic = true }
func Parse(data []byte) (*Theme, error) {
	var doc document
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTheme, err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidTheme)
	}
	for key, style := range doc.Syntax {
		if err := validateColour(style.Color); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidTheme, key, err)
		}
		if err := validateColour(style.Background); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidTheme, key, err)
		}
	}
	return New(doc.Name, doc.Syntax), nil
}

func validateColour(c string) error {
	if c == "" {
		return nil
	}
	if !chroma.ParseColour(c).IsSet() {
		return fmt.Errorf("bad colour %q", c)
	}
	return nil
}
