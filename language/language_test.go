package language

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/smacker/go-tree-sitter/rust"
	"github.com/stretchr/testify/require"

	"github.com/arjunmahishi/tshl/theme"
)

const rustQuery = `
(block_comment) @comment
(string_literal) @string
(function_item name: (identifier) @function)
["fn" "let"] @keyword
`

func newRustLanguage(t *testing.T) *Language {
	t.Helper()
	l, err := New(Config{Name: "Rust", PathSuffixes: []string{"rs"}}, rust.GetLanguage(), rustQuery)
	require.NoError(t, err)
	return l
}

func TestNewQueryCaptureNames(t *testing.T) {
	q, err := NewQuery(rustQuery, rust.GetLanguage())
	require.NoError(t, err)
	require.Equal(t, []string{"comment", "string", "function", "keyword"}, q.CaptureNames())

	// callers get a copy
	names := q.CaptureNames()
	names[0] = "changed"
	require.Equal(t, "comment", q.CaptureNames()[0])

	empty, err := NewQuery("", rust.GetLanguage())
	require.NoError(t, err)
	require.Empty(t, empty.CaptureNames())
}

func TestNewInvalidQuery(t *testing.T) {
	_, err := New(Config{Name: "Rust"}, rust.GetLanguage(), "(not_a_rust_node) @x")
	require.ErrorIs(t, err, ErrInvalidQuery)
}

func TestParseAndCaptures(t *testing.T) {
	l := newRustLanguage(t)
	source := []byte("/* hi */\nfn main() { let s = \"x\"; }\n")

	tree, err := l.Parse(context.Background(), source)
	require.NoError(t, err)
	require.Equal(t, "source_file", tree.RootNode().Type())

	var got []string
	l.HighlightQuery().Captures(tree, source, func(c Capture) bool {
		got = append(got, fmt.Sprintf("@%s %s", c.Name, c.Node.Content(source)))
		return true
	})
	require.Equal(t, []string{
		"@comment /* hi */",
		"@keyword fn",
		"@function main",
		"@keyword let",
		`@string "x"`,
	}, got)

	// stop early
	count := 0
	l.HighlightQuery().Captures(tree, source, func(Capture) bool {
		count++
		return false
	})
	require.Equal(t, 1, count)
}

func TestThemeMappingBeforeTheme(t *testing.T) {
	l := newRustLanguage(t)
	m := l.ThemeMapping()
	require.NotNil(t, m)
	require.Empty(t, m)
	_, ok := m.Lookup("keyword")
	require.False(t, ok)
}

func TestSetThemeCoversEveryCapture(t *testing.T) {
	l := newRustLanguage(t)
	l.SetTheme(theme.New("t", map[string]theme.Style{
		"keyword": {Color: "#ff0000"},
	}))

	m := l.ThemeMapping()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	require.Equal(t, []string{"comment", "function", "keyword", "string"}, keys)
	require.Equal(t, "#ff0000", m["keyword"].Color)
	require.True(t, m["comment"].IsZero())
}

func TestSetThemeIdempotent(t *testing.T) {
	l := newRustLanguage(t)
	th := theme.New("t", map[string]theme.Style{
		"keyword":  {Color: "#ff0000", Bold: true},
		"function": {Color: "#00ff00"},
	})

	l.SetTheme(th)
	first := l.ThemeMapping()
	l.SetTheme(th)
	second := l.ThemeMapping()
	require.Equal(t, first, second)
}

func TestSetThemeReplacesMapping(t *testing.T) {
	l := newRustLanguage(t)
	l.SetTheme(theme.New("a", map[string]theme.Style{"keyword": {Color: "#aaaaaa"}}))
	l.SetTheme(theme.New("b", map[string]theme.Style{"string": {Color: "#bbbbbb"}}))

	m := l.ThemeMapping()
	require.True(t, m["keyword"].IsZero())
	require.Equal(t, "#bbbbbb", m["string"].Color)

	l.SetTheme(nil)
	require.Empty(t, l.ThemeMapping())
}

func TestThemeMappingIsSnapshot(t *testing.T) {
	l := newRustLanguage(t)
	l.SetTheme(theme.New("t", map[string]theme.Style{"keyword": {Color: "#ff0000"}}))

	m := l.ThemeMapping()
	m["keyword"] = theme.Style{Color: "#000000"}
	delete(m, "string")

	again := l.ThemeMapping()
	require.Equal(t, "#ff0000", again["keyword"].Color)
	require.Contains(t, again, "string")
}

func TestConfigIsCopied(t *testing.T) {
	l := newRustLanguage(t)
	cfg := l.Config()
	cfg.PathSuffixes[0] = "go"
	require.Equal(t, []string{"rs"}, l.Config().PathSuffixes)
}

// TestConcurrentThemeSwitch checks readers never see a torn mapping.
// Run with -race flag to detect data races: go test -race
func TestConcurrentThemeSwitch(t *testing.T) {
	l := newRustLanguage(t)
	captures := l.HighlightQuery().CaptureNames()

	themes := []*theme.Theme{
		theme.New("red", map[string]theme.Style{"keyword": {Color: "#ff0000"}, "comment": {Italic: true}}),
		theme.New("blue", map[string]theme.Style{"keyword": {Color: "#0000ff"}, "string": {Color: "#00ffff"}}),
	}
	l.SetTheme(themes[0])

	var wg sync.WaitGroup
	for w := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				l.SetTheme(themes[(w+i)%len(themes)])
			}
		}()
	}

	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 500 {
				m := l.ThemeMapping()
				if len(m) != len(captures) {
					errs <- fmt.Errorf("mapping has %d keys, want %d", len(m), len(captures))
					return
				}
				for _, name := range captures {
					if _, ok := m[name]; !ok {
						errs <- fmt.Errorf("mapping missing %q", name)
						return
					}
				}
				// a mapping comes from exactly one theme
				kw := m["keyword"].Color
				if kw == "#ff0000" && !m["string"].IsZero() {
					errs <- fmt.Errorf("torn mapping: %v", m)
					return
				}
				if kw == "#0000ff" && m["comment"].Italic {
					errs <- fmt.Errorf("torn mapping: %v", m)
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

func TestConcurrentSelect(t *testing.T) {
	registry := NewRegistry(
		newTestLanguage(t, "Rust", "rs"),
		newTestLanguage(t, "Make", "Makefile", "mk"),
	)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if l := registry.Select("zed/lib.rs"); l == nil || l.Name() != "Rust" {
					t.Error("expected Rust")
					return
				}
				if registry.Select("zed/sumk") != nil {
					t.Error("expected no match")
					return
				}
			}
		}()
	}
	wg.Wait()
}
