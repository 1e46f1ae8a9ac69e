package theme

import (
	"testing"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	th := New("t", map[string]Style{
		"function":        {Color: "#000001"},
		"function.method": {Color: "#000002"},
		"method":          {Color: "#000003"},
		"keyword":         {Color: "#000004"},
		"type.builtin":    {Color: "#000005"},
	})

	tests := []struct {
		capture string
		want    string
		ok      bool
	}{
		{"keyword", "#000004", true},
		{"keyword.control", "#000004", true},
		{"function", "#000001", true},
		{"function.method", "#000002", true},
		{"method.function", "#000002", true},
		{"method.call.function", "#000002", true},
		{"function.macro", "#000001", true},
		{"type", "", false},
		{"type.builtin", "#000005", true},
		{"string", "", false},
		{"keywordish", "", false},
	}
	for _, tc := range tests {
		style, ok := th.Resolve(tc.capture)
		require.Equal(t, tc.ok, ok, tc.capture)
		require.Equal(t, tc.want, style.Color, tc.capture)
	}
}

func TestResolveTieBreak(t *testing.T) {
	th := New("t", map[string]Style{
		"method":   {Color: "#000003"},
		"function": {Color: "#000001"},
	})
	style, ok := th.Resolve("function.method")
	require.True(t, ok)
	require.Equal(t, "#000001", style.Color)
	require.Equal(t, []string{"function", "method"}, th.Keys())
}

func TestParse(t *testing.T) {
	th, err := Parse([]byte(`
name = "demo"

[syntax]
keyword = { color = "#c678dd", bold = true }
"function.method" = { color = "#61afef", italic = true, underline = true }
string = { background = "#282c34" }
`))
	require.NoError(t, err)
	require.Equal(t, "demo", th.Name())
	require.Equal(t, []string{"function.method", "keyword", "string"}, th.Keys())

	style, ok := th.Resolve("function.method")
	require.True(t, ok)
	require.Equal(t, Style{Color: "#61afef", Italic: true, Underline: true}, style)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"malformed":     `name = `,
		"missing_name":  "[syntax]\nkeyword = { color = \"#ffffff\" }\n",
		"unknown_field": "name = \"x\"\n[syntax]\nkeyword = { colour = \"#ffffff\" }\n",
		"bad_colour":    "name = \"x\"\n[syntax]\nkeyword = { color = \"blue-ish\" }\n",
		"bad_bg":        "name = \"x\"\n[syntax]\nkeyword = { background = \"#zzzzzz\" }\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.ErrorIs(t, err, ErrInvalidTheme)
		})
	}
}

func TestBuiltin(t *testing.T) {
	require.Equal(t, []string{"one-dark", "one-light"}, BuiltinNames())

	for _, name := range BuiltinNames() {
		th, err := Builtin(name)
		require.NoError(t, err)
		require.Equal(t, name, th.Name())
		_, ok := th.Resolve("keyword")
		require.True(t, ok)
	}

	_, err := Builtin("nope")
	require.Error(t, err)

	th, err := Builtin(DefaultName)
	require.NoError(t, err)
	style, _ := th.Resolve("type.builtin")
	require.True(t, style.Bold)
}

func TestFromChroma(t *testing.T) {
	style := styles.Get("monokai")
	th := FromChroma(style)
	require.Equal(t, "monokai", th.Name())

	kw, ok := th.Resolve("keyword")
	require.True(t, ok)
	require.NotEmpty(t, kw.Color)
	require.Regexp(t, `^#[0-9a-f]{6}$`, kw.Color)
}

func TestNamed(t *testing.T) {
	th, err := Named("one-light")
	require.NoError(t, err)
	require.Equal(t, "one-light", th.Name())

	th, err = Named("dracula")
	require.NoError(t, err)
	require.Equal(t, "dracula", th.Name())

	_, err = Named("no-such-theme")
	require.Error(t, err)

	names := Names()
	require.Equal(t, "one-dark", names[0])
	require.Contains(t, names, "monokai")
}

func TestStyleLipgloss(t *testing.T) {
	st := Style{Color: "#ff0000", Bold: true, Italic: true}.Lipgloss()
	require.True(t, st.GetBold())
	require.True(t, st.GetItalic())
	require.False(t, st.GetUnderline())
}
