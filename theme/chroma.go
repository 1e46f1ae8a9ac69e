package theme

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// chromaTokens maps theme categories to the chroma token types whose style
// they borrow.
var chromaTokens = map[string]chroma.TokenType{
	"comment":             chroma.Comment,
	"constant":            chroma.NameConstant,
	"constant.builtin":    chroma.KeywordConstant,
	"function":            chroma.NameFunction,
	"function.macro":      chroma.NameFunctionMagic,
	"function.method":     chroma.NameFunction,
	"keyword":             chroma.Keyword,
	"namespace":           chroma.NameNamespace,
	"number":              chroma.LiteralNumber,
	"operator":            chroma.Operator,
	"property":            chroma.NameAttribute,
	"punctuation":         chroma.Punctuation,
	"punctuation.bracket": chroma.Punctuation,
	"string":              chroma.LiteralString,
	"type":                chroma.KeywordType,
	"type.builtin":        chroma.KeywordType,
	"variable":            chroma.Name,
}

// FromChroma converts a chroma style into a theme.
func FromChroma(style *chroma.Style) *Theme {
	syntax := make(map[string]Style, len(chromaTokens))
	for key, tt := range chromaTokens {
		e := style.Get(tt)
		s := Style{
			Bold:      e.Bold == chroma.Yes,
			Italic:    e.Italic == chroma.Yes,
			Underline: e.Underline == chroma.Yes,
		}
		if e.Colour.IsSet() {
			s.Color = e.Colour.String()
		}
		if s.IsZero() {
			continue
		}
		syntax[key] = s
	}
	return New(style.Name, syntax)
}

// Named returns a built-in theme, or failing that a chroma style of the same
// name.
func Named(name string) (*Theme, error) {
	if t, err := Builtin(name); err == nil {
		return t, nil
	}
	if style, ok := styles.Registry[name]; ok {
		return FromChroma(style), nil
	}
	return nil, fmt.Errorf("unknown theme %q", name)
}

// Names lists built-in themes followed by the chroma styles.
func Names() []string {
	return append(BuiltinNames(), styles.Names()...)
}
